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

package search

import (
	"corvid/internal/util"
	"corvid/pkg/search/eval"
)

// constants governing the forward-pruning and extension heuristics used
// by negamax. They are grouped here the same way reductions.go groups
// the late move reduction table: negamax.go wires the behaviour, this
// file carries the tuning knobs.
const (
	// razoring drops straight to quiescence when the static eval is
	// so far below beta that even a generous margin won't save it.
	razorMaxDepth = 3
	razorMargin   = 300

	// futility pruning skips quiet moves that can't plausibly raise
	// alpha once the static eval already looks hopeless.
	futilityMaxDepth = 3
	futilityPerDepth = 165

	// null-move pruning's reduction grows with how far the static eval
	// is beating beta, capped to avoid a runaway reduction.
	nullMoveMinDepth  = 2
	nullMoveEvalScale = 168
	nullMoveEvalCap   = 7

	// ProbCut looks for a shallow, null-window confirmation that a
	// capture is already winning by more than a small margin.
	probCutMinDepth  = 4
	probCutReduction = 4
	probCutMargin    = 200

	// internal iterative deepening fills in a missing TT move by
	// searching a reduced depth first.
	iidMinDepth  = 5
	iidReduction = 5

	// check extensions are capped relative to the root iteration's
	// depth so a perpetual-check line can't blow up the search tree.
	checkExtensionDepthFactor = 2
)

// razorMarginFor returns the razoring margin for the given depth.
func razorMarginFor(depth int) eval.Eval {
	return eval.Eval(razorMargin * depth)
}

// futilityMarginFor returns the futility pruning margin for the given
// depth.
func futilityMarginFor(depth int) eval.Eval {
	return eval.Eval(futilityPerDepth * depth)
}

// nullMoveReduction computes the null-move search's depth reduction R,
// which grows with both the node's depth and how far the static eval
// beats beta.
func nullMoveReduction(staticEval, beta eval.Eval, depth int) int {
	evalBonus := util.Min(int(staticEval-beta)/nullMoveEvalScale, nullMoveEvalCap)
	return evalBonus + depth/3 + 3
}

// lateMovePruningThreshold returns the move count beyond which quiet,
// non-critical moves are skipped without search.
func lateMovePruningThreshold(depth int, improving bool) int {
	if improving {
		return 3 + depth*depth
	}
	return 3 + depth*depth/2
}
