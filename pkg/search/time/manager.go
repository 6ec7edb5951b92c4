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

// Package time implements various types and functions used to manage
// search time while searching a position.
package time

import (
	"math"
	"time"

	"corvid/pkg/piece"
)

// Manager represents a time manager. A search checks OptimisticExpired
// after every completed iterative-deepening iteration to decide whether
// another iteration is worth starting, and checks PessimisticExpired
// periodically inside the search tree as a hard cutoff that can abort
// mid-iteration.
type Manager interface {
	// GetDeadline calculates the optimal (soft) and maximum (hard) amount
	// of time to be used and sets deadlines internally for the search's
	// end.
	GetDeadline()

	// ExtendDeadline is called when the engine want's to extend the
	// search's length, e.g. because the best move changed late into an
	// iteration. A deadline extension may fail.
	ExtendDeadline()

	// OptimisticExpired reports whether the soft (optimum) deadline has
	// passed; the search should not start a new iteration past this.
	OptimisticExpired() bool

	// PessimisticExpired reports whether the hard (maximum) deadline has
	// passed; the search must abort immediately past this.
	PessimisticExpired() bool
}

// skew-logistic importance weights used to bias time allocation towards
// the moves where search depth matters most, per the formula:
//
//	weight(ply) = 1 / (1 + e^(-(ply-XShift)/XScale)) ^ Skew
const (
	xscale = 6.85
	xshift = 64.5
	skew   = 0.171
)

// importance returns the skew-logistic importance weight of the move
// at the given ply (half-move) count of the game.
func importance(ply int) float64 {
	return math.Pow(1+math.Exp(-(float64(ply)-xshift)/xscale), -skew)
}

// NormalManager is the standard time manager which uses the wtime, btime,
// winc, binc, and movestogo provided by the GUI to calculate the optimal
// search time.
type NormalManager struct {
	Us piece.Color // side to move

	Time, Increment [piece.NColor]int
	MovesToGo       int // moves to next time control
	Ply             int // current game ply, used for skew-logistic weighting

	optimum, maximum time.Time
}

// compile time check that NormalManager implements Manager
var _ Manager = (*NormalManager)(nil)

func (c *NormalManager) GetDeadline() {
	total := time.Duration(c.Time[c.Us]) * time.Millisecond
	inc := time.Duration(c.Increment[c.Us]) * time.Millisecond

	movesToGo := c.MovesToGo
	if movesToGo == 0 {
		movesToGo = 50 - c.Ply/2
		if movesToGo < 20 {
			movesToGo = 20
		}
	}

	budget := total/time.Duration(movesToGo) + inc/2
	weight := importance(c.Ply)

	optimum := time.Duration(float64(budget) * weight)
	maximum := optimum * 4

	// never plan to use more than half the clock on a single move
	if half := total / 2; maximum > half {
		maximum = half
	}

	now := time.Now()
	c.optimum = now.Add(optimum)
	c.maximum = now.Add(maximum)
}

func (c *NormalManager) ExtendDeadline() {
	c.optimum = c.optimum.Add(c.optimum.Sub(time.Now()) / 2)
}

func (c *NormalManager) OptimisticExpired() bool {
	return time.Now().After(c.optimum)
}

func (c *NormalManager) PessimisticExpired() bool {
	return time.Now().After(c.maximum)
}

// MoveManager is the time manager used when the gui wants to time a search
// by move-time. Extending it's deadline is not possible.
type MoveManager struct {
	Duration int
	deadline time.Time
}

// compile time check that MoveManager implements Manager
var _ Manager = (*MoveManager)(nil)

func (c *MoveManager) GetDeadline() {
	c.deadline = time.Now().Add(time.Duration(c.Duration) * time.Millisecond)
}

func (c *MoveManager) ExtendDeadline() {
	// can't extend deadline: search time is fixed
}

func (c *MoveManager) OptimisticExpired() bool {
	return time.Now().After(c.deadline)
}

func (c *MoveManager) PessimisticExpired() bool {
	return time.Now().After(c.deadline)
}
