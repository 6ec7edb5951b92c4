package classical_test

import (
	"testing"

	"corvid/pkg/board"
	"corvid/pkg/piece"
	"corvid/pkg/search/eval/classical"
)

func BenchmarkAccumulate(b *testing.B) {
	chessboard := board.NewBoard(board.StartFEN)
	evaluator := classical.EfficientlyUpdatable{Board: chessboard}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		evaluator.Accumulate(piece.White)
	}
}
