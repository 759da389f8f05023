// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quotedstring

import (
	"fmt"
	"strings"
)

// debugChecks enables the grammar contract cross-check in [QuoteIfNeeded].
// Off in normal builds so the fast path classifies each character exactly
// once.
var debugChecks = false

// Quote encodes content into a quoted string.
//
// The result always begins and ends with a double quote; characters the
// grammar marks [NeedsEscape] are emitted behind a backslash. The first
// [InvalidChar] character fails the whole operation with the grammar's
// unquotable error and no partial output.
func Quote[G Grammar](g G, content string) (string, error) {
	var out strings.Builder
	out.Grow(len(content) + 2)
	out.WriteByte('"')
	if err := quoteInto(g, content, &out); err != nil {
		return "", err
	}
	out.WriteByte('"')
	return out.String(), nil
}

// quoteInto escapes content into out without adding the surrounding quotes.
func quoteInto[G Grammar](g G, content string, out *strings.Builder) error {
	for _, r := range content {
		switch g.ClassifyForQuoting(PartialCodePointOf(r)) {
		case Plain:
			out.WriteRune(r)
		case NeedsEscape:
			out.WriteByte('\\')
			out.WriteRune(r)
		default:
			return g.Unquotable(r)
		}
	}
	return nil
}

// QuoteIfNeeded produces the shortest correct representation of content:
// the input itself when the grammar accepts it bare, a quoted string
// otherwise.
//
// When no quoting is needed the input string is returned unchanged, with no
// allocation; callers must treat the result as copy-on-write and not assume a
// fresh buffer. Otherwise the characters before the first one to fail the
// unquoted check are copied verbatim and only the remainder is classified for
// escaping, so no character is examined twice.
func QuoteIfNeeded[G Grammar](g G, content string) (string, error) {
	validator := g.NewUnquotedValidator()
	quoteFrom := -1
	for idx, r := range content {
		if !validator.Next(PartialCodePointOf(r)) {
			quoteFrom = idx
			break
		}
		if debugChecks {
			if class := g.ClassifyForQuoting(PartialCodePointOf(r)); class != Plain {
				panic(fmt.Sprintf(
					"quotedstring: broken grammar %T: %q is valid without quotation but classifies as %v for quoting",
					g, r, class,
				))
			}
		}
	}

	if quoteFrom < 0 {
		if validator.End() {
			return content, nil
		}
		// Only the end-of-input check failed, so every character is already
		// known to be plain and can be wrapped without classification.
		var out strings.Builder
		out.Grow(len(content) + 2)
		out.WriteByte('"')
		out.WriteString(content)
		out.WriteByte('"')
		return out.String(), nil
	}

	var out strings.Builder
	out.Grow(len(content) + 3)
	out.WriteByte('"')
	out.WriteString(content[:quoteFrom])
	if err := quoteInto(g, content[quoteFrom:], &out); err != nil {
		return "", err
	}
	out.WriteByte('"')
	return out.String(), nil
}
