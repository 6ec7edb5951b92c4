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

package options

import (
	"corvid/internal/engine/context"
	"corvid/pkg/uci/option"
)

// UCI option OwnBook, type check
//
// Whether the engine should play moves from its compiled opening book
// (see BookFile) when the current position has a recorded reply,
// instead of searching.
func NewOwnBook(engine *context.Engine) option.Option {
	return &option.Check{
		Default: false,
		Storage: func(use bool) error {
			engine.Options.OwnBook = use
			return nil
		},
	}
}

// UCI option BookFile, type string
//
// Path to a binary opening book compiled by cmd/corvidbook. Setting
// this loads the book into memory; OwnBook still controls whether it
// is consulted during search.
func NewBookFile(engine *context.Engine) option.Option {
	return &option.String{
		Default: "",
		Storage: func(path string) error {
			return engine.LoadBook(path)
		},
	}
}
