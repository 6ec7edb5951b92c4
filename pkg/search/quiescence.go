// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package search

import (
	"corvid/internal/util"
	"corvid/pkg/move"
	"corvid/pkg/search/eval"
)

// quiescence search is a type of limited search which only evaluates
// 'quiet' positions, i.e. positions with no tactical moves like captures
// or promotions. This search is needed to avoid the horizon effect, where
// a search cut off in the middle of a tactical sequence misjudges the
// position.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	search.nodes++

	if search.shouldStop() {
		return 0
	}

	// stand-pat: assume the position is at least as good as its static
	// evaluation, since a side is never forced to make a capture
	standPat := search.score()
	alpha = util.Max(alpha, standPat)
	if alpha >= beta {
		return beta
	}

	moves := search.Board.GenerateMoves()
	if len(moves) == 0 {
		if search.Board.IsInCheck(search.Board.SideToMove) {
			return eval.MatedIn(plys)
		}

		return eval.Draw
	}

	if search.Board.IsDraw() {
		return search.draw()
	}

	best := standPat

	list := move.ScoreMoves(moves, eval.OfMove(search.Board, move.Null))
	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		if !m.IsCapture() && !m.IsPromotion() {
			// moves are ordered by MVV-LVA so quiet moves sort last;
			// once one is seen the rest are quiet too
			break
		}

		if m.IsCapture() && !eval.SEE(search.Board, m, 0) {
			// capture loses material outright; a quiet position should
			// never be worse than just not making this exchange
			continue
		}

		search.Board.MakeMove(m)
		score := -search.quiescence(plys+1, -beta, -alpha)
		search.Board.UnmakeMove()

		if score > best {
			best = score

			if score > alpha {
				alpha = score

				if alpha >= beta {
					break // fail high
				}
			}
		}
	}

	return alpha
}
