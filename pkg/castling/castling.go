// Package castling provides types and lookup tables used for tracking
// and applying castling rights and rook movement during castling moves.
package castling

import (
	"corvid/pkg/piece"
	"corvid/pkg/square"
)

type Rights byte

func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	N = 16
)

func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}

	if c&WhiteQueenside != 0 {
		str += "Q"
	}

	if c&BlackKingside != 0 {
		str += "k"
	}

	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// RightUpdates maps each square to the castling rights that need to be
// cleared when a piece moves from or to that square. Squares not
// occupied by a king or a rook in their starting position carry None.
var RightUpdates = [square.N]Rights{
	square.A8: BlackQueenside, square.H8: BlackKingside, square.E8: Black,
	square.A1: WhiteQueenside, square.H1: WhiteKingside, square.E1: White,
}

// RookInfo describes the rook movement accompanying a castling move.
type RookInfo struct {
	From, To square.Square
	RookType piece.Piece
}

// Rooks is indexed by the king's target square during castling and
// describes where the rook starts and ends up. Squares which are not a
// king's castling target square hold the zero value.
var Rooks = [square.N]RookInfo{
	square.G1: {From: square.H1, To: square.F1, RookType: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, RookType: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, RookType: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, RookType: piece.BlackRook},
}
