// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package board

import "corvid/internal/util"

// IsRepetition reports whether the current position's hash has occurred
// before since the last pawn move or capture (the moves that reset
// DrawClock). A search treats a single
// repeat as enough to avoid the line, since reaching it again makes the
// position drawable by the player on move.
func (b *Board) IsRepetition() bool {
	n := util.Min(b.DrawClock, b.Plys)
	for i := b.Plys - 2; i >= b.Plys-n; i -= 2 {
		if i < 0 {
			break
		}
		if b.History[i].Hash == b.Hash {
			return true
		}
	}

	return false
}

// IsDraw reports whether the current position is a draw by the fifty-move
// rule or repetition.
func (b *Board) IsDraw() bool {
	return b.DrawClock >= 100 || b.IsRepetition()
}
