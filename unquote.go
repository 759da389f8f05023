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
	"strings"
	"unicode/utf8"
)

// StripQuotes removes exactly one leading and one trailing double quote,
// reporting false if either is absent. The result is a sub-slice of the
// input; nothing is copied.
func StripQuotes(quoted string) (string, bool) {
	if len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
		return "", false
	}
	return quoted[1 : len(quoted)-1], true
}

// ToContent decodes a quoted string into the content it represents.
//
// The input is assumed to be a complete quoted string (use [Parse] to locate
// one inside larger input first). When the interior contains no quoted-pairs
// and no non-semantic whitespace, the common case for header values, the
// returned string is a sub-slice of the input and nothing is allocated.
// Otherwise a single buffer is built: everything before the first
// transforming character is copied verbatim and the remainder is decoded
// through the same validator that scanned it, so no character is classified
// twice.
func ToContent[G Grammar](g G, quoted string) (string, error) {
	content, ok := StripQuotes(quoted)
	if !ok {
		return "", g.MissingQuotes()
	}

	validator := g.NewQuotedValidator()
	for idx, r := range content {
		outcome, err := validator.Next(r)
		switch outcome {
		case Text, SemanticWS:
			continue
		case Quotable:
			return "", g.UnescapedQuotable(r)
		case Invalid:
			if err == nil {
				err = g.Unquotable(r)
			}
			return "", err
		}
		// First character that changes the output: an escape or a dropped
		// non-semantic whitespace.
		return decodeFrom(g, validator, content, idx, outcome)
	}
	return content, nil
}

// decodeFrom builds the owned buffer for [ToContent] starting at the first
// transforming character. content[:idx] is known to pass through unchanged;
// outcome is the classification of the character at idx, which the validator
// has already consumed.
func decodeFrom[G Grammar](
	g G,
	validator QuotedValidator,
	content string,
	idx int,
	outcome Outcome,
) (string, error) {
	var buf strings.Builder
	buf.Grow(len(content))
	buf.WriteString(content[:idx])
	rest := content[idx:]

	switch outcome {
	case Escape:
		// rest[0] is the backslash; the next character is taken verbatim.
		after := rest[1:]
		if after == "" {
			if err := g.TrailingEscape(); err != nil {
				return "", err
			}
			buf.WriteByte('\\')
			rest = ""
		} else {
			escaped, size := utf8.DecodeRuneInString(after)
			buf.WriteRune(escaped)
			rest = after[size:]
		}
	default: // NonSemanticWS: dropped entirely.
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}

	chars := contentCharsFromParts(g, rest, validator)
	for {
		r, err := chars.Next()
		if err == ErrDone {
			return buf.String(), nil
		}
		if err != nil {
			return "", err
		}
		buf.WriteRune(r)
	}
}
