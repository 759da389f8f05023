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
	"unicode/utf8"

	"github.com/rustonaut/quoted-string/internal/ext/runesx"
)

// ContentChars is a lazy sequence of the decoded characters of a quoted
// string: quoted-pairs are resolved to the escaped character and
// non-semantic whitespace is dropped, without materializing a buffer.
//
// The sequence is single-pass and non-restartable. The comparison methods
// consume it; construct a fresh iterator per comparison.
type ContentChars[G Grammar] struct {
	grammar   G
	rest      string
	validator QuotedValidator
}

// NewContentChars returns an iterator over the content of quoted.
//
// The input is assumed to be a valid quoted string and is not fully validated
// up front, though most defects surface as errors during iteration. The
// surrounding quotes are stripped here; their absence is the only immediate
// error.
func NewContentChars[G Grammar](g G, quoted string) (*ContentChars[G], error) {
	content, ok := StripQuotes(quoted)
	if !ok {
		return nil, g.MissingQuotes()
	}
	return &ContentChars[G]{
		grammar:   g,
		rest:      content,
		validator: g.NewQuotedValidator(),
	}, nil
}

// contentCharsFromParts resumes iteration over the remaining interior of a
// quoted string using a validator that has already consumed everything before
// it. [ToContent] uses this to hand its scan state over to the decode phase
// without classifying any character twice.
func contentCharsFromParts[G Grammar](g G, rest string, validator QuotedValidator) *ContentChars[G] {
	return &ContentChars[G]{grammar: g, rest: rest, validator: validator}
}

// Next returns the next decoded character, or [ErrDone] once the content is
// exhausted. Any other error means the character at the current position is
// invalid for the grammar; the error for a given position is sticky in the
// sense that it does not consume input beyond the offending character.
func (c *ContentChars[G]) Next() (rune, error) {
	for c.rest != "" {
		r, size := utf8.DecodeRuneInString(c.rest)
		c.rest = c.rest[size:]

		outcome, err := c.validator.Next(r)
		switch outcome {
		case Text, SemanticWS:
			return r, nil
		case NonSemanticWS:
			continue
		case Escape:
			if c.rest == "" {
				if err := c.grammar.TrailingEscape(); err != nil {
					return 0, err
				}
				return '\\', nil
			}
			escaped, size := utf8.DecodeRuneInString(c.rest)
			c.rest = c.rest[size:]
			return escaped, nil
		case Quotable:
			return 0, c.grammar.UnescapedQuotable(r)
		default:
			if err == nil {
				err = c.grammar.Unquotable(r)
			}
			return 0, err
		}
	}
	return 0, ErrDone
}

// Equal reports whether the remaining content equals s, comparing character
// by character with early exit on the first mismatch or decode error. No
// buffer is materialized. The iterator is consumed.
func (c *ContentChars[G]) Equal(s string) bool {
	return zipEqual(c.Next, stringChars(s), func(a, b rune) bool { return a == b })
}

// EqualFold is [ContentChars.Equal] under ASCII case-insensitivity. Note that
// this is ASCII folding only; it does not attempt Unicode case folding.
func (c *ContentChars[G]) EqualFold(s string) bool {
	return zipEqual(c.Next, stringChars(s), runesx.EqualFoldASCII)
}

// EqualContent reports whether two content sequences decode to the same
// characters. Both iterators are consumed.
func EqualContent[G1, G2 Grammar](a *ContentChars[G1], b *ContentChars[G2]) bool {
	return zipEqual(a.Next, b.Next, func(x, y rune) bool { return x == y })
}

// EqualContentFold is [EqualContent] under ASCII case-insensitivity.
func EqualContentFold[G1, G2 Grammar](a *ContentChars[G1], b *ContentChars[G2]) bool {
	return zipEqual(a.Next, b.Next, runesx.EqualFoldASCII)
}

// stringChars adapts a plain string to the pull interface of
// [ContentChars.Next].
func stringChars(s string) func() (rune, error) {
	return func() (rune, error) {
		if s == "" {
			return 0, ErrDone
		}
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		return r, nil
	}
}

// zipEqual compares two character sequences pairwise. Sequences are equal
// only if both end at the same step with no decode errors before that.
func zipEqual(left, right func() (rune, error), same func(a, b rune) bool) bool {
	for {
		l, errL := left()
		r, errR := right()
		switch {
		case errL == ErrDone && errR == ErrDone:
			return true
		case errL != nil || errR != nil:
			return false
		case !same(l, r):
			return false
		}
	}
}
