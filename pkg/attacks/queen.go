package attacks

import (
	"corvid/pkg/board/bitboard"
	"corvid/pkg/square"
)

func Queen(s square.Square, friends, occ bitboard.Board) bitboard.Board {
	return Rook(s, friends, occ) | Bishop(s, friends, occ)
}
