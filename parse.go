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
	"unicode/utf8"
)

// Parsed is the result of successfully parsing a quoted-string prefix. Both
// fields are sub-slices of the original input; nothing is copied.
type Parsed struct {
	// QuotedString is the matched token, surrounding quotes included.
	QuotedString string
	// Tail is the unconsumed remainder of the input.
	Tail string
}

// ParseError is the error type of [Parse], locating the failure inside the
// input.
type ParseError struct {
	// Offset is the byte offset at which parsing failed.
	Offset int
	// Err is the grammar's error for the character at Offset.
	Err error
}

// Error implements [error].
func (e *ParseError) Error() string {
	return fmt.Sprintf("quotedstring: at offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying grammar error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse matches a quoted string starting at the beginning of input but
// possibly ending before it does, returning the matched token and the
// unconsumed tail. To require that the entire input is one quoted string,
// check that the tail is empty, or use [Validate].
func Parse[G Grammar](g G, input string) (Parsed, error) {
	if len(input) == 0 || input[0] != '"' {
		return Parsed{}, &ParseError{Offset: 0, Err: g.MissingQuotes()}
	}

	validator := g.NewQuotedValidator()
	pendingEscape := false
	for idx := 1; idx < len(input); {
		r, size := utf8.DecodeRuneInString(input[idx:])
		switch {
		case pendingEscape:
			pendingEscape = false
			if err := validator.IsQuotable(r); err != nil {
				return Parsed{}, &ParseError{Offset: idx, Err: err}
			}
		case r == '"':
			return Parsed{
				QuotedString: input[:idx+1],
				Tail:         input[idx+1:],
			}, nil
		default:
			outcome, err := validator.Next(r)
			switch outcome {
			case Text, SemanticWS, NonSemanticWS:
			case Escape:
				pendingEscape = true
			case Quotable:
				return Parsed{}, &ParseError{Offset: idx, Err: g.UnescapedQuotable(r)}
			default:
				if err == nil {
					err = g.Unquotable(r)
				}
				return Parsed{}, &ParseError{Offset: idx, Err: err}
			}
		}
		idx += size
	}
	return Parsed{}, &ParseError{Offset: len(input), Err: g.MissingQuotes()}
}

// Validate reports whether input is exactly one valid quoted string, with
// nothing before or after it.
func Validate[G Grammar](g G, input string) bool {
	parsed, err := Parse(g, input)
	return err == nil && parsed.Tail == ""
}
