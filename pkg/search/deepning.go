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

package search

import (
	"fmt"

	"corvid/pkg/move"
	"corvid/pkg/search/eval"
)

// iterativeDeepening is the main search function. It implements an iterative
// deepening loop which call's the negamax search function for each iteration.
// It returns the principal variation and it's evaluation.
// https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	var score eval.Eval
	var pv move.Variation

	// previous iteration's score for each pv slot, used to seed that
	// slot's aspiration window on the next iteration
	pvScores := make([]eval.Eval, search.limits.MultiPV)

	// iterative deepening loop, starting from 1, call negamax for each depth
	// until the depth limit is reached or time runs out. This allows us to
	// search to any depth depending on the allocated time. Previous iterations
	// also populate the transposition table with scores and pv moves which makes
	// iterative deepening to a depth faster that directly searching that depth.
	for search.depth = 1; search.depth <= search.limits.Depth; search.depth++ {
		search.selDepth = 0
		search.checkExtensions = 0

		// multi-pv: after finishing a variation, its best move is
		// excluded from the root so the next search finds the
		// next-best one instead. the exclusion list is rebuilt every
		// iteration, so it never carries over across depths
		search.excludedRoot = search.excludedRoot[:0]

		var iterationPV move.Variation
		var iterationScore eval.Eval
		stoppedMidIteration := false

		for pvIndex := 0; pvIndex < search.limits.MultiPV; pvIndex++ {
			// the new pv isn't directly stored into the pv variable since it will
			// pollute the correct pv if the next search is incomplete. Instead the
			// old pv is overwritten only if the search is found to be complete.
			var childPV move.Variation
			var childScore eval.Eval

			if search.depth > 1 {
				childScore, childPV = search.aspirationWindow(search.depth, pvScores[pvIndex])
			} else {
				childScore = search.negamax(0, search.depth, -eval.Inf, eval.Inf, &childPV, true)
			}

			if search.stopped {
				// don't use the new pv if search was stopped since the
				// search is probably unfinished

				// search.shouldStop is not used since the new pv is
				// only bad if the search was stopped in the middle
				// of the iteration, and not in here
				stoppedMidIteration = true
				break
			}

			pvScores[pvIndex] = childScore
			if bestMove := childPV.Move(0); bestMove != move.Null {
				search.excludedRoot = append(search.excludedRoot, bestMove)
			}

			if pvIndex == 0 {
				// the first variation is the actual best move and score
				iterationPV, iterationScore = childPV, childScore
			}

			// print a UCI info line reporting this variation's results
			fmt.Println(search.GenerateReport(pvIndex+1, childScore, childPV).String())
		}

		if stoppedMidIteration {
			break
		}

		// search successfully completed, so update pv
		pv, score = iterationPV, iterationScore
		search.pv, search.pvScore = pv, score

		if !search.limits.Infinite && search.limits.Time.OptimisticExpired() {
			// the soft (optimum) deadline has passed; finishing another
			// iteration isn't worth the risk of running past the hard
			// deadline mid-search
			break
		}
	}

	return pv, score
}
