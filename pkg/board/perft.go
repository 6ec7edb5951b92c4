package board

import "corvid/pkg/move"

// Perft counts the number of leaf nodes reachable from the position
// described by fen in exactly depth plies, by exhaustively playing out
// every possible line. It is used to validate move generator
// correctness against known node counts.
// https://www.chessprogramming.org/Perft
func Perft(fen string, depth int) int {
	return perft(New(fen), depth)
}

func perft(b *Board, depth int) int {
	if depth == 0 {
		return 1
	}

	var nodes int
	for _, m := range b.GenerateMoves() {
		b.MakeMove(m)
		nodes += perft(b, depth-1)
		b.UnmakeMove()
	}

	return nodes
}

// MoveCount is the node count perft found below one particular root move.
type MoveCount struct {
	Move  move.Move
	Nodes int
}

// Divide runs perft broken down by root move, implementing the `go
// perft` UCI extension: it reports the node count contributed by each
// legal move in the current position, along with the grand total.
func Divide(b *Board, depth int) ([]MoveCount, int) {
	moves := b.GenerateMoves()
	counts := make([]MoveCount, 0, len(moves))

	var total int
	for _, m := range moves {
		b.MakeMove(m)
		nodes := perft(b, depth-1)
		b.UnmakeMove()

		counts = append(counts, MoveCount{Move: m, Nodes: nodes})
		total += nodes
	}

	return counts, total
}
