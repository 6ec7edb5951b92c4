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

// Package engine assembles the UCI command schema and option set on top
// of the search core, wiring corvid/internal/engine/context.Engine into
// a ready to use corvid/pkg/uci.Client.
package engine

import (
	"corvid/internal/engine/cmd"
	"corvid/internal/engine/context"
	"corvid/internal/engine/options"
	"corvid/pkg/board"
	"corvid/pkg/search"
	"corvid/pkg/uci"
	"corvid/pkg/uci/option"
)

// NewClient creates an UCI client with the engine's commands and options
// registered, ready to have its Start method called.
func NewClient() uci.Client {
	searchContext := search.NewContext(board.NewBoard(board.StartFEN))

	engine := &context.Engine{
		Client: uci.NewClient(),
		Search: &searchContext,
	}
	engine.OptionSchema = newOptionSchema(engine)

	if err := engine.OptionSchema.SetDefaults(); err != nil {
		// schema defaults are fixed at compile time; this would be a
		// programmer error, not a runtime condition to recover from
		panic(err)
	}

	engine.Client.AddCommand(cmd.NewD(engine))
	engine.Client.AddCommand(cmd.NewUci(engine))
	engine.Client.AddCommand(cmd.NewUciNewGame(engine))
	engine.Client.AddCommand(cmd.NewPosition(engine))
	engine.Client.AddCommand(cmd.NewGo(engine))
	engine.Client.AddCommand(cmd.NewStop(engine))
	engine.Client.AddCommand(cmd.NewPonderHit(engine))
	engine.Client.AddCommand(cmd.NewSetOption(engine))

	return engine.Client
}

// newOptionSchema builds the schema of UCI options the engine supports.
func newOptionSchema(engine *context.Engine) option.Schema {
	schema := option.NewSchema()

	schema.AddOption("Hash", options.NewHash(engine))
	schema.AddOption("Threads", options.NewThreads(engine))
	schema.AddOption("Ponder", options.NewPonder(engine))
	schema.AddOption("OwnBook", options.NewOwnBook(engine))
	schema.AddOption("BookFile", options.NewBookFile(engine))

	return schema
}
