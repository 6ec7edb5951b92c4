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

// Package search implements various functions used to search a
// position for the best move.
package search

import (
	"errors"
	"time"

	"corvid/internal/util"
	"corvid/pkg/board"
	"corvid/pkg/move"
	"corvid/pkg/piece"
	"corvid/pkg/search/eval"
	"corvid/pkg/search/eval/classical"
	searchtime "corvid/pkg/search/time"
	"corvid/pkg/search/tt"
)

// maximum depth to search to
const MaxDepth = 256

// NewContext creates a new Context from the given board.
func NewContext(board *board.Board) Context {
	return Context{
		Board:   board,
		tt:      tt.NewTable(16),
		stopped: true,
	}
}

// Context stores various options, state, and debug variables regarding a
// particular search. During multiple searches on the same position, the
// internal board (*Context).Board should be switched out, while NewGame
// resets the Context between different games.
type Context struct {
	// search state
	Board   *board.Board
	tt      *tt.Table
	depth   int
	stopped bool

	// stats
	ttHits   int
	nodes    int
	selDepth int

	// move ordering heuristics
	killers [MaxDepth][2]move.Move
	history [piece.NColor][64][64]eval.Move

	// per-node static eval, kept per ply so a node can compare its eval
	// against its grandparent's to decide if the position is improving
	staticEval [MaxDepth]eval.Eval

	// checkExtensions counts the check extensions granted so far in the
	// current iterative deepening iteration, capped relative to that
	// iteration's root depth
	checkExtensions int

	// excludedRoot holds the root moves already reported as a principal
	// variation earlier in the current multi-pv iteration
	excludedRoot []move.Move

	// search limits
	limits Limits

	// latest completed iteration's principal variation and stats, used
	// both to answer bestmove requests and to build info reports
	pv          move.Variation
	pvScore     eval.Eval
	searchStart time.Time
}

// Limits contains the various limits which decide how long a search can
// run for. It should be passed to the main search function when starting
// a new search.
type Limits struct {
	// search tree limits
	Nodes int
	Depth int

	// number of principal variations to search for and report, via the
	// `go multipv K` UCI extension; 1 searches only for the best move
	MultiPV int

	// TODO: implement searching selected moves
	// Moves []move.Move

	// search time limits
	Infinite bool
	Time     searchtime.Manager
}

// Search initializes the context for a new search and calls the main
// iterative deepening function. It checks if the position is illegal
// and cleans up the context after the search finishes.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {

	search.start(limits)
	defer search.Stop()

	// illegal position check; king can be captured
	if search.Board.IsInCheck(search.Board.SideToMove.Other()) {
		return move.Variation{}, eval.Inf, errors.New("search move: position is illegal")
	}

	pv, score := search.iterativeDeepening()
	search.pv, search.pvScore = pv, score
	return pv, score, nil
}

// InProgress reports whether a search is in progress on the given context.
func (search *Context) InProgress() bool {
	return !search.stopped
}

// Stop stops any ongoing search on the given context. The main search
// function will immediately return after this function is called.
func (search *Context) Stop() {
	search.stopped = true
}

// start initializes search variables during the start of a search.
func (search *Context) start(limits Limits) {
	// init limits
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	if limits.MultiPV < 1 {
		limits.MultiPV = 1
	}
	search.limits = limits

	// reset counters
	search.nodes = 0
	search.ttHits = 0
	search.selDepth = 0
	search.checkExtensions = 0
	search.excludedRoot = nil
	search.searchStart = time.Now()

	// start search
	search.stopped = false // search not stopped
	if !limits.Infinite {
		search.limits.Time.GetDeadline() // get search deadline
	}
}

// shouldStop checks the various limits provided for the search and
// reports if the search should be stopped at that moment. It is checked
// periodically deep inside the search tree, so it only tests the hard
// (maximum) time limit; the soft (optimum) limit is only consulted
// between iterative-deepening iterations, where abandoning an
// in-progress iteration would be wasteful.
func (search *Context) shouldStop() bool {
	switch {
	case search.stopped:
		// search already stopped
		// no checking necessary
		return true

	case search.nodes&2047 != 0, search.limits.Infinite:
		// only check once every 2048 nodes to prevent
		// spending too much time here

		// if search is infinite never stop

		return false

	case search.nodes > search.limits.Nodes, search.limits.Time.PessimisticExpired():
		// node limit or hard time limit crossed
		search.Stop()
		return true

	default:
		// no search stopping clause reached
		return false
	}
}

// UpdateLimits replaces the limits of an in-progress search, establishing
// a fresh deadline if the new limits are time-bound. It is used to switch
// a ponder search onto its real time control after a ponderhit.
func (search *Context) UpdateLimits(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	if limits.MultiPV < 1 {
		limits.MultiPV = 1
	}
	search.limits = limits

	if !limits.Infinite {
		search.limits.Time.GetDeadline()
	}
}

// ResizeTT resizes the search's transposition table to the given size
// in megabytes.
func (search *Context) ResizeTT(mbs int) {
	search.tt.Resize(mbs)
}

// NewGame resets state that shouldn't carry over between games (the
// transposition table, killer moves, and history scores), while leaving
// the board itself untouched.
func (search *Context) NewGame() {
	search.tt.Clear()
	search.tt.NextEpoch()
	search.killers = [MaxDepth][2]move.Move{}
	search.history = [piece.NColor][64][64]eval.Move{}
}

// score return the static evaluation of the current context's internal
// board. Any changes to the evaluation function should be done here.
func (search *Context) score() eval.Eval {
	evaluator := classical.EfficientlyUpdatable{Board: search.Board}
	return evaluator.Accumulate(search.Board.SideToMove)
}

// draw returns a randomized draw score to prevent threefold-repetition
// blindness while searching.
func (search *Context) draw() eval.Eval {
	return eval.RandDraw(search.nodes)
}
