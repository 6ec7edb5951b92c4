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

package context

import (
	"math/rand"
	"os"
	"time"

	"corvid/pkg/book"
	"corvid/pkg/move"
	"corvid/pkg/search"
	"corvid/pkg/uci"
	"corvid/pkg/uci/option"
)

// Engine represents the context containing the engine's information which
// is shared among it's UCI commands to store state.
type Engine struct {
	// engine's uci client
	Client uci.Client

	// current search context
	Search    *search.Context
	Searching bool

	Pondering    bool
	PonderLimits search.Limits

	// opening book, loaded from the BookFile option
	book    *book.Book
	bookRng *rand.Rand

	// uci options
	OptionSchema option.Schema
	Options      options
}

// options contains the values of the UCI options supported by the engine.
type options struct {
	Ponder  bool // name Ponder type check
	Hash    int  // name Hash type spin
	Threads int  // name Threads type spin
	OwnBook bool // name OwnBook type check
}

// LoadBook loads a binary opening book from path, replacing any
// previously loaded book. An empty path clears the loaded book.
func (engine *Engine) LoadBook(path string) error {
	if path == "" {
		engine.book = nil
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	loaded, err := book.Load(f)
	if err != nil {
		return err
	}

	engine.book = loaded
	if engine.bookRng == nil {
		engine.bookRng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return nil
}

// ProbeBook looks up a book reply for the current search position, if
// OwnBook is enabled and a book is loaded. The second return value is
// false if no book move applies.
func (engine *Engine) ProbeBook() (move.Move, bool) {
	if !engine.Options.OwnBook || engine.book == nil {
		return move.Null, false
	}

	legal := engine.Search.Board.GenerateMoves()
	return engine.book.Probe(engine.Search.Board.Hash, legal, engine.bookRng)
}
