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

// Command corvid is a small scratch binary for poking at pkg/board
// from the command line; it is not the UCI engine (see the root
// main.go for that) and isn't meant to be shipped.
package main

import (
	"fmt"

	"corvid/pkg/board"
	"corvid/pkg/square"
)

func main() {
	b := board.New("rnbqkbnr/pppppppp/8/8/3Q4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	fmt.Println()
	fmt.Println(b)
	fmt.Println(movesFrom(b, square.D4))
}

// movesFrom filters the board's legal moves down to those starting on
// the given square.
func movesFrom(b *board.Board, from square.Square) []string {
	var moves []string
	for _, m := range b.GenerateMoves() {
		if m.Source() == from {
			moves = append(moves, m.String())
		}
	}
	return moves
}
