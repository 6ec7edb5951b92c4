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

package search

import (
	"fmt"
	"time"

	"corvid/internal/util"
	"corvid/pkg/move"
	"corvid/pkg/search/eval"
)

// GenerateReport generates a statistics report for one principal
// variation of the current search context. multipv is the 1-based index
// of the variation being reported, and score/pv are that variation's
// result; the node/time/hashfull stats are shared across all of a
// depth's variations since they describe the whole search so far.
func (search *Context) GenerateReport(multipv int, score eval.Eval, pv move.Variation) Report {
	searchTime := time.Since(search.searchStart)

	return Report{
		Depth:    search.depth,
		SelDepth: search.selDepth,
		MultiPV:  multipv,

		Nodes: search.nodes,
		Nps:   float64(search.nodes) / util.Max(0.001, searchTime.Seconds()),

		Hashfull: search.tt.Fullness(),

		Time: searchTime,

		Score: score,
		PV:    pv,
	}
}

// Report represents a report of various statistics about a search.
type Report struct {
	// depth stats
	Depth    int // current id depth
	SelDepth int // max depth reached
	MultiPV  int // 1-based index of the reported variation

	// node stats
	Nodes int
	Nps   float64

	// tt stats
	Hashfull float64

	// search time stats
	Time time.Duration

	// principal variation stats
	Score eval.Eval
	PV    move.Variation
}

// String converts a Report into an UCI compatible info string.
func (report Report) String() string {
	return fmt.Sprintf(
		"info depth %d seldepth %d multipv %d score %s nodes %d nps %.f hashfull %.f tbhits 0 time %d pv %s",
		report.Depth, report.SelDepth, report.MultiPV, report.Score, report.Nodes, report.Nps,
		report.Hashfull*1000, // convert fraction to per-mille
		report.Time.Milliseconds(), report.PV,
	)
}
