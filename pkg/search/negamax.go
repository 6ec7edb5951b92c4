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
	"corvid/pkg/board/bitboard"
	"corvid/pkg/move"
	"corvid/pkg/piece"
	"corvid/pkg/search/eval"
	"corvid/pkg/search/tt"
	"corvid/pkg/square"
)

// negamax is a simplified version of the minmax searching algorithm, which
// uses a single function for both the maximizing and minimizing players.
// This can be achieved because chess is a zero-sum game and one player's
// advantage is the other's disadvantage.
// https://www.chessprogramming.org/Negamax
//
// This function also implements alpha-beta pruning to reduce the amount of
// nodes that need to be searched, due to the fact that a single refutation
// is enough to mark a position as worse compared to an already found one.
// https://www.chessprogramming.org/Alpha-Beta
//
// doNull reports whether null-move pruning is allowed at this node. It is
// turned off for the node immediately below a null move, so the search
// never plays two null moves in a row.
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation, doNull bool) eval.Eval {
	search.nodes++
	search.selDepth = util.Max(search.selDepth, plys)

	// quick exit clauses
	switch {
	case search.shouldStop():
		// some search limit has been breached
		// the return value doesn't matter since this search's result
		// will be trashed and the previous iteration's pv will be used
		return 0

	case plys > 0 && search.Board.IsDraw():
		// below the root, a draw by the 50-move rule or repetition scores 0
		return eval.Draw

	case depth <= 0, plys >= MaxDepth:
		// depth 0 reached, drop to quiescence search to prevent
		// the horizon effect from making the evaluation bad
		return search.quiescence(plys, alpha, beta)
	}

	isRoot := plys == 0

	// mate distance pruning: even finding a mate on the very next move
	// can't beat a shorter mate already found higher up the tree, and
	// getting mated here can't be worse than a shorter mate above, so
	// the window can be clamped to the range of scores still reachable
	// https://www.chessprogramming.org/Mate_Distance_Pruning
	alpha = util.Max(alpha, eval.MatedIn(plys))
	beta = util.Min(beta, -eval.MatedIn(plys+1))
	if alpha >= beta {
		return alpha
	}

	// node properties
	isPVNode := beta-alpha != 1 // beta = alpha + 1 during PVS
	inCheck := search.Board.IsInCheck(search.Board.SideToMove)

	// keep track of the original value of alpha for determining whether
	// the score will act as an upper bound entry in the transposition table
	originalAlpha := alpha

	// keep track of best move and score
	bestMove := move.Null
	bestEval := -eval.Inf

	// check for transposition table hits
	ttMove := move.Null
	ttHit := false
	if entry, hit := search.tt.Probe(search.Board.Hash); hit {
		ttHit = true
		ttMove = entry.Move
		bestMove = entry.Move

		// only use entry if current node is not a pv node and
		// entry depth is >= current depth (not worse quality)
		if !isPVNode && entry.Depth >= depth {
			search.ttHits++
			value := entry.Value.Eval(plys)

			switch entry.Type {
			case tt.ExactEntry:
				return value
			case tt.LowerBound:
				alpha = util.Max(alpha, value)
			case tt.UpperBound:
				beta = util.Min(beta, value)
			}

			if alpha >= beta {
				return value // fail high
			}
		}
	}

	// static evaluation of the position, and whether it is improving on
	// the position two plys ago (i.e. this side's previous move). a
	// position in check has no meaningful static eval, so it is recorded
	// as a very low sentinel that can never look "improving" later on
	if inCheck {
		search.staticEval[plys] = -eval.Inf
	} else {
		search.staticEval[plys] = search.score()
	}
	staticEval := search.staticEval[plys]
	improving := !inCheck && plys >= 2 && staticEval > search.staticEval[plys-2]

	// forward pruning is unsound against the exact score a pv node (and
	// the root above all of them) needs to back up, so it is restricted
	// to non-pv nodes away from the root
	canPrune := !isRoot && !isPVNode && !inCheck

	if canPrune {
		// razoring: the static eval is so bad that only a tactical shot
		// could save the position, so drop straight to quiescence and
		// trust its verdict unless it somehow does worse than the eval
		// https://www.chessprogramming.org/Razoring
		if depth <= razorMaxDepth {
			if razorEval := staticEval + razorMarginFor(depth); razorEval < beta {
				qEval := search.quiescence(plys, alpha, beta)
				if qEval > razorEval {
					razorEval = qEval
				}
				if razorEval < beta {
					return razorEval
				}
			}
		}

		// null-move pruning: if the side to move could pass entirely and
		// still be doing at least as well as beta, the position is so
		// good that a real move will do better, so prune without
		// searching it any further. skipped if non-pawn material is
		// absent, since zugzwang makes passing unsound in those endgames
		// https://www.chessprogramming.org/Null_Move_Pruning
		hasNonPawnMaterial := search.Board.ColorBBs[search.Board.SideToMove]&^
			(search.Board.PieceBBs[piece.Pawn]|search.Board.PieceBBs[piece.King]) != bitboard.Empty

		if doNull && depth > nullMoveMinDepth && staticEval >= beta && hasNonPawnMaterial {
			r := nullMoveReduction(staticEval, beta, depth)

			search.Board.MakeMove(move.Null)
			var nullPV move.Variation
			nullEval := -search.negamax(plys+1, depth-1-r, -beta, -beta+1, &nullPV, false)
			search.Board.UnmakeMove()

			if nullEval >= beta {
				// don't trust unproven mate scores from the null window;
				// report beta itself
				return beta
			}
		}

		// ProbCut: a capture that beats beta by a healthy margin even
		// under a shallow, reduced-depth search is extremely likely to
		// beat beta with a full search too, so accept it early
		// https://www.chessprogramming.org/ProbCut
		if depth > probCutMinDepth && beta < eval.WinInMaxPly {
			probBeta := beta + probCutMargin

			captures := move.ScoreMoves(search.Board.GenerateMoves(), eval.OfMove(search.Board, move.Null))
			for i := 0; i < captures.Length; i++ {
				m := captures.PickMove(i)
				if !m.IsCapture() && !m.IsPromotion() {
					break // captures/promotions sort first
				}
				if !eval.SEE(search.Board, m, probBeta-staticEval) {
					continue // unlikely to reach probBeta
				}

				search.Board.MakeMove(m)
				var probPV move.Variation
				probScore := -search.quiescence(plys+1, -probBeta, -probBeta+1)
				if probScore >= probBeta {
					probScore = -search.negamax(plys+1, depth-probCutReduction, -probBeta, -probBeta+1, &probPV, true)
				}
				search.Board.UnmakeMove()

				if probScore >= probBeta {
					search.tt.Store(tt.Entry{
						Hash:  search.Board.Hash,
						Value: tt.EvalFrom(probScore, plys),
						Move:  m,
						Depth: depth - probCutReduction + 1,
						Type:  tt.LowerBound,
					})
					return probScore
				}
			}
		}
	}

	// internal iterative deepening: a node worth searching this deep but
	// with no tt move to order by is probably missing one because it has
	// never been searched; do a reduced search first purely to populate
	// the transposition table with a move to try first
	// https://www.chessprogramming.org/Internal_Iterative_Deepening
	if !ttHit && depth > iidMinDepth {
		var iidPV move.Variation
		search.negamax(plys, depth-iidReduction, alpha, beta, &iidPV, doNull)

		if entry, hit := search.tt.Probe(search.Board.Hash); hit {
			bestMove = entry.Move
		}
	}

	// futility pruning: if the position looks hopeless enough that a
	// quiet move can't plausibly raise alpha, stop searching quiet moves
	// that don't give check once the first move has been tried
	// https://www.chessprogramming.org/Futility_Pruning
	futilityPruning := canPrune && depth < futilityMaxDepth && staticEval+futilityMarginFor(depth) <= alpha

	// generate all moves
	moves := search.Board.GenerateMoves()
	if len(moves) == 0 {
		// no legal moves, so some type of mate

		if inCheck {
			return eval.MatedIn(plys) // checkmate
		}

		return eval.Draw // stalemate
	}

	singleReply := len(moves) == 1

	// move ordering; score the generated moves, preferring the tt move,
	// then captures/promotions by MVV-LVA, then killers, then history
	pvScore := eval.OfMove(search.Board, bestMove)
	killer1, killer2 := search.killers[plys][0], search.killers[plys][1]
	scorer := func(m move.Move) eval.Move {
		if s := pvScore(m); s != eval.DefaultMove {
			return s
		}

		switch m {
		case killer1:
			return eval.MvvLvaOffset + 9
		case killer2:
			return eval.MvvLvaOffset + 8
		default:
			return search.history[search.Board.SideToMove][m.Source()][m.Target()]
		}
	}

	list := move.ScoreMoves(moves, scorer)

	seeQuietMargin, seeNoisyMargin := seeMargins(depth)

	legalMoves := 0
	for i := 0; i < list.Length; i++ {
		var childPV move.Variation

		m := list.PickMove(i)

		// root-only: multi-pv excludes previously reported best moves so
		// the next search iteration finds the next-best one instead
		if isRoot && search.isExcludedRoot(m) {
			continue
		}

		isCapture := m.IsCapture() || m.IsPromotion()
		isKiller := m == killer1 || m == killer2
		critical := m == ttMove || isKiller

		// SEE pruning: moves that lose material by more than the
		// depth-scaled threshold are unlikely to be worth searching
		// https://www.chessprogramming.org/Static_Exchange_Evaluation
		if canPrune && legalMoves > 0 && !critical {
			margin := seeQuietMargin
			if isCapture {
				margin = seeNoisyMargin
			}
			if !eval.SEE(search.Board, m, margin) {
				continue
			}
		}

		search.Board.MakeMove(m)
		legalMoves++

		givesCheck := search.Board.IsInCheck(search.Board.SideToMove)

		// futility pruning's move-skip: quiet, non-checking moves after
		// the first are assumed unable to raise alpha
		if futilityPruning && legalMoves > 1 && !isCapture && !givesCheck && !critical {
			search.Board.UnmakeMove()
			continue
		}

		// late move pruning: quiet moves searched very late in a node
		// with little depth left are unlikely to be the best move
		if canPrune && !isCapture && !givesCheck && !critical &&
			legalMoves > lateMovePruningThreshold(depth, improving) {
			search.Board.UnmakeMove()
			continue
		}

		// search extensions: checks, pawn pushes to the 7th rank (one
		// step from promoting), and positions with only one legal reply
		// are all tactically forcing enough to warrant a deeper look
		extension := 0
		switch {
		case givesCheck && search.checkExtensions < checkExtensionDepthFactor*search.depth:
			extension = 1
			search.checkExtensions++

		case m.FromPiece().Type() == piece.Pawn && isSeventhRankPush(m, search.Board.SideToMove.Other()):
			extension = 1

		case singleReply:
			extension = 1
		}

		newDepth := depth - 1 + extension

		// Principal Variation Search

		var score eval.Eval

		if !isPVNode || legalMoves > 1 {
			// late move reductions: quiet moves searched late in a node are
			// less likely to raise alpha, so search them to a reduced depth
			// first and only re-search at full depth if that beats alpha
			// https://www.chessprogramming.org/Late_Move_Reductions
			reduction := 0
			if depth >= 3 && legalMoves >= 4 && !isCapture && extension == 0 {
				reduction = util.Min(reductions[depth][util.Min(legalMoves, 127)], newDepth-1)
				if !improving {
					reduction++
				}
				reduction = util.Max(reduction, 0)
			}

			// null window search for non-pv nodes
			score = -search.negamax(plys+1, newDepth-reduction, -alpha-1, -alpha, &childPV, true)

			if reduction > 0 && score > alpha {
				// reduced search beat alpha; verify at full depth
				score = -search.negamax(plys+1, newDepth, -alpha-1, -alpha, &childPV, true)
			}
		}

		if isPVNode && ((score > alpha && score < beta) || legalMoves == 1) {
			// full window search for pv nodes
			score = -search.negamax(plys+1, newDepth, -beta, -alpha, &childPV, true)
		}

		search.Board.UnmakeMove()

		// update score and bounds
		if score > bestEval {
			// better move found
			bestMove = m
			bestEval = score

			// check if move is new pv move
			if score > alpha {
				// new pv so alpha increases
				alpha = score

				// update parent pv
				pv.Update(m, childPV)

				if alpha >= beta {
					// move caused a beta cutoff; remember it as a killer and
					// reward its history score if it wasn't a capture, since
					// those are already well ordered by MVV-LVA
					if !m.IsCapture() {
						search.storeKiller(plys, m)
						search.updateHistory(m, depthBonus(depth))
					}

					break // fail high
				}
			}
		}
	}

	if legalMoves == 0 {
		// every move was pruned away; fall back to the static eval so
		// the position isn't mistaken for checkmate or stalemate
		return staticEval
	}

	// if search is stopped, score may be of a bad quality and
	// thus can pollute the transposition table for future searches
	if !search.stopped {
		var entryType tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			// if score <= alpha, it is a worse position for the max player than
			// a previously explored line, since the move's exact score is at
			// most score. Therefore, it is an upperbound on the exact score.
			entryType = tt.UpperBound
		case bestEval >= beta:
			// if score >= beta, it is a worse position for the min player than
			// a previously explored line, singe the move's exact score is at
			// least score. Therefore, it is a lowerbound on the exact score.
			entryType = tt.LowerBound
		default:
			// if score is inside the bounds of alpha and beta, both the players
			// have been able to improve their position and it is an exact score.
			entryType = tt.ExactEntry
		}

		// update transposition table
		search.tt.Store(tt.Entry{
			Hash:  search.Board.Hash,
			Value: tt.EvalFrom(bestEval, plys),
			Move:  bestMove,
			Depth: depth,
			Type:  entryType,
		})
	}

	// fail-hard: a cutoff returns beta, otherwise alpha
	if bestEval >= beta {
		return beta
	}
	return alpha
}

// isSeventhRankPush reports whether m pushes a pawn to the rank just
// short of promotion for the side that played it (the 7th rank from
// that side's own perspective).
func isSeventhRankPush(m move.Move, justMoved piece.Color) bool {
	if justMoved == piece.White {
		return m.Target().Rank() == square.Rank7
	}
	return m.Target().Rank() == square.Rank2
}

// isExcludedRoot reports whether m is one of the root moves already
// reported as a principal variation earlier in the current multi-pv
// iteration, and so should be skipped to find the next-best move.
func (search *Context) isExcludedRoot(m move.Move) bool {
	for _, excluded := range search.excludedRoot {
		if excluded == m {
			return true
		}
	}
	return false
}
