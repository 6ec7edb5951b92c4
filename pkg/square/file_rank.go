// Copyright © 2024 The Corvid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package square

// File represents a file (column) on a chessboard, a through h.
type File int8

// constants representing every file.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files on a chessboard.
const FileN = 8

// FileFrom parses a File from its ascii letter, 'a' through 'h'.
func FileFrom(c byte) File {
	return File(c - 'a')
}

// String converts a File into its single letter representation.
func (f File) String() string {
	return string(rune('a') + rune(f))
}

// Rank represents a rank (row) on a chessboard, numbered from black's
// back rank (0) to white's back rank (7).
type Rank int8

// constants representing every rank.
const (
	Rank8 Rank = iota
	Rank7
	Rank6
	Rank5
	Rank4
	Rank3
	Rank2
	Rank1
)

// RankN is the number of ranks on a chessboard.
const RankN = 8

// RankFrom parses a Rank from its ascii digit, '1' through '8'.
func RankFrom(c byte) Rank {
	return Rank('8' - c)
}

// String converts a Rank into its single digit representation.
func (r Rank) String() string {
	return string(rune('8') - rune(r))
}
