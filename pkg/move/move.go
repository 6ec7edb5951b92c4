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

// Package move declares types and constants pertaining to chess moves.
package move

import (
	"corvid/pkg/piece"
	"corvid/pkg/square"
)

// Move represents a chess move. It contains various metadata regarding
// the move including the source and target squares, the moving piece,
// the promoted piece and whether the move is a capture.
//
// Format: MSB -> LSB
// [20 isCapture bool 20] \
// [19 toPiece piece.Piece 16][15 fromPiece piece.Piece 12] \
// [11 target square.Square 6][05 source square.Square  00]
//
// Packing a move into a single uint32 keeps move lists cheap to
// allocate and copy; search hot paths push thousands of these per ply.
type Move uint32

// MaxN is the maximum number of plys tracked per search line.
const MaxN = 1024

// Null represents a "do nothing" move, used for null-move pruning and
// as the zero value signifying the absence of a move.
const Null Move = 0

const (
	sourceWidth = 6
	targetWidth = 6
	fPieceWidth = 4
	tPieceWidth = 4
	tacticWidth = 1

	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	fPieceOffset = targetOffset + targetWidth
	tPieceOffset = fPieceOffset + fPieceWidth
	tacticOffset = tPieceOffset + tPieceWidth

	sourceMask = (1 << sourceWidth) - 1
	targetMask = (1 << targetWidth) - 1
	fPieceMask = (1 << fPieceWidth) - 1
	tPieceMask = (1 << tPieceWidth) - 1
	tacticMask = (1 << tacticWidth) - 1
)

// New creates a new Move value populated with the provided data. The
// promotion field is left equal to fPiece; use SetPromotion to change it.
func New(source, target square.Square, fPiece piece.Piece, isCapture bool) Move {
	m := Move(source) << sourceOffset
	m |= Move(target) << targetOffset
	m |= Move(fPiece) << fPieceOffset
	m |= Move(fPiece) << tPieceOffset
	if isCapture {
		m |= tacticMask << tacticOffset
	}
	return m
}

// String converts a move to its long algebraic notation form, e.g.
// "e2e4", "e1g1" (castling), "d7d8q" (promotion), "0000" (null).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.Source().String() + m.Target().String()
	if m.IsPromotion() {
		s += m.ToPiece().Type().String()
	}

	return s
}

// SetPromotion sets the promotion field of the move to the given piece.
func (m Move) SetPromotion(p piece.Piece) Move {
	m &^= tPieceMask << tPieceOffset
	m |= Move(p) << tPieceOffset
	return m
}

// Source returns the source square of the move.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the target square of the move.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// FromPiece returns the piece that is being moved.
func (m Move) FromPiece() piece.Piece {
	return piece.Piece((m >> fPieceOffset) & fPieceMask)
}

// ToPiece returns the piece after moving. For normal moves this is the
// same as FromPiece; for promotions it is the promoted piece.
func (m Move) ToPiece() piece.Piece {
	return piece.Piece((m >> tPieceOffset) & tPieceMask)
}

// IsCapture reports whether the move is a capture.
func (m Move) IsCapture() bool {
	return (m>>tacticOffset)&tacticMask != 0
}

// IsPromotion reports whether the move is a promotion.
func (m Move) IsPromotion() bool {
	return m.FromPiece() != m.ToPiece()
}

// IsEnPassant reports whether the move is an en passant capture, given
// the en passant target square of the position it is played from.
func (m Move) IsEnPassant(ep square.Square) bool {
	return m.Target() == ep && m.FromPiece().Type() == piece.Pawn
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	if m.FromPiece().Type() != piece.King {
		return false
	}
	from, to := m.Source(), m.Target()
	diff := int(from) - int(to)
	return diff == 2 || diff == -2
}

// IsReversible reports whether the move can be "undone" for repetition
// purposes. Captures and pawn moves reset the fifty-move clock and are
// not reversible.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.FromPiece().Type() != piece.Pawn
}
