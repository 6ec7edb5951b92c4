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

package main

import (
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
	"github.com/rivo/uniseg"
)

// fitToWidth truncates text to at most width terminal columns, counting
// display width rather than byte or rune count so that any wide runes
// relayed through an `info string` line (engine author names, unicode
// move annotations from a GUI) don't overrun the widget.
func fitToWidth(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

// wrapHelp wraps the command's usage text at whitespace to the given
// width for the -help output, then passes the result through a
// grapheme-cluster iterator that reassembles it unchanged.
func wrapHelp(text string, width uint) string {
	wrapped := wordwrap.WrapString(text, width)

	segments := uniseg.NewGraphemes(wrapped)
	var out []rune
	for segments.Next() {
		out = append(out, segments.Runes()...)
	}

	return string(out)
}
