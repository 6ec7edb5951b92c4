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

// Package book implements a reader for the binary opening book format:
// a flat stream of { position zobrist key, move16 } records. A reply
// recorded once for every game that played it in the source corpus, so
// repeats of the same pair encode move frequency without a separate
// weight field.
package book

import (
	"encoding/binary"
	"io"
	"math/rand"

	"corvid/pkg/move"
	"corvid/pkg/piece"
	"corvid/pkg/square"
	"corvid/pkg/zobrist"
)

// Move16 is the compact on-disk encoding of a move: source square
// (bits 0..5), target square (bits 6..11), and promotion piece type
// (bits 12..14, piece.NoType if the move isn't a promotion).
type Move16 uint16

const (
	move16SourceMask = 0x3F
	move16TargetMask = 0x3F
	move16PromoMask  = 0x7
)

// NewMove16 packs a move.Move down into its book-file encoding.
func NewMove16(m move.Move) Move16 {
	var promo piece.Type
	if m.IsPromotion() {
		promo = m.ToPiece().Type()
	}

	return Move16(m.Source()) |
		Move16(m.Target())<<6 |
		Move16(promo)<<12
}

// Source returns the move's source square.
func (m Move16) Source() square.Square { return square.Square(m & move16SourceMask) }

// Target returns the move's target square.
func (m Move16) Target() square.Square { return square.Square((m >> 6) & move16TargetMask) }

// Promotion returns the move's promotion piece type, or piece.NoType.
func (m Move16) Promotion() piece.Type { return piece.Type((m >> 12) & move16PromoMask) }

// Matches reports whether candidate is the legal move this Move16 was
// recorded for.
func (m Move16) Matches(candidate move.Move) bool {
	var promo piece.Type
	if candidate.IsPromotion() {
		promo = candidate.ToPiece().Type()
	}

	return candidate.Source() == m.Source() &&
		candidate.Target() == m.Target() &&
		promo == m.Promotion()
}

// record is the on-disk layout of a single book entry.
type record struct {
	Key    uint64
	Move16 uint16
}

// reply is one weighted move recorded for a position in memory.
type reply struct {
	move16 Move16
	weight int
}

// Book is an in-memory opening book loaded from the binary format.
type Book struct {
	replies map[zobrist.Key][]reply
}

// Load reads a Book from a stream of binary {key, move16} records.
func Load(r io.Reader) (*Book, error) {
	book := &Book{replies: make(map[zobrist.Key][]reply)}

	var rec record
	for {
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			if err == io.EOF {
				return book, nil
			}
			return nil, err
		}

		key := zobrist.Key(rec.Key)
		m16 := Move16(rec.Move16)

		replies := book.replies[key]

		added := false
		for i := range replies {
			if replies[i].move16 == m16 {
				replies[i].weight++
				added = true
				break
			}
		}
		if !added {
			replies = append(replies, reply{move16: m16, weight: 1})
		}

		book.replies[key] = replies
	}
}

// Probe looks up the position's recorded replies among its currently
// legal moves and picks one weighted by recorded frequency. The second
// return value is false if the book has no entry for key, or none of
// its recorded replies are legal in this position.
func (b *Book) Probe(key zobrist.Key, legal []move.Move, rng *rand.Rand) (move.Move, bool) {
	replies, ok := b.replies[key]
	if !ok {
		return move.Null, false
	}

	type candidate struct {
		move   move.Move
		weight int
	}

	var candidates []candidate
	total := 0

	for _, r := range replies {
		for _, m := range legal {
			if r.move16.Matches(m) {
				candidates = append(candidates, candidate{move: m, weight: r.weight})
				total += r.weight
				break
			}
		}
	}

	if total == 0 {
		return move.Null, false
	}

	pick := rng.Intn(total)
	for _, c := range candidates {
		if pick < c.weight {
			return c.move, true
		}
		pick -= c.weight
	}

	return move.Null, false
}
