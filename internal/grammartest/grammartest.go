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

// Package grammartest provides example [quotedstring.Grammar] implementations
// shared by the package tests.
//
// The grammars are deliberately simple but exercise every contract point:
// stateful unquoted validation, both trailing-escape policies, restricted
// quoted-pairs, and the automaton's custom sub-state.
package grammartest

import (
	"errors"

	quotedstring "github.com/rustonaut/quoted-string"
	"github.com/rustonaut/quoted-string/internal/ext/runesx"
)

// Simple is an ASCII-only grammar with the usual header-value shape:
//
//   - qtext is printable ASCII except backslash and double quote
//   - space and tab are semantic whitespace
//   - newline is non-semantic whitespace, dropped on decode
//   - backslash, double quote and NUL must be escaped
//   - everything else, non-ASCII included, is invalid
//
// Without quotes it accepts only a six-character run of letters and dots
// with no leading, trailing or doubled dot, an intentionally stateful rule.
// Trailing escapes are rejected (the [quotedstring.DefaultErrors] policy).
type Simple struct {
	quotedstring.DefaultErrors
}

// ClassifyForQuoting implements [quotedstring.Grammar].
func (Simple) ClassifyForQuoting(cp quotedstring.PartialCodePoint) quotedstring.CharClass {
	b, ok := cp.AsByte()
	if !ok {
		return quotedstring.InvalidChar
	}
	switch b {
	case '"', '\\', 0:
		return quotedstring.NeedsEscape
	case ' ', '\t':
		return quotedstring.Plain
	}
	if runesx.IsVisibleASCII(rune(b)) {
		return quotedstring.Plain
	}
	return quotedstring.InvalidChar
}

// NewQuotedValidator implements [quotedstring.Grammar].
func (Simple) NewQuotedValidator() quotedstring.QuotedValidator {
	return simpleQuoted{}
}

// NewUnquotedValidator implements [quotedstring.Grammar].
func (Simple) NewUnquotedValidator() quotedstring.UnquotedValidator {
	return &dotWord{lastWasDot: true}
}

type simpleQuoted struct{}

func (simpleQuoted) Next(r rune) (quotedstring.Outcome, error) {
	switch r {
	case '\\':
		return quotedstring.Escape, nil
	case '"', 0:
		return quotedstring.Quotable, nil
	case ' ', '\t':
		return quotedstring.SemanticWS, nil
	case '\n':
		return quotedstring.NonSemanticWS, nil
	}
	if runesx.IsVisibleASCII(r) {
		return quotedstring.Text, nil
	}
	return quotedstring.Invalid, (Simple{}).Unquotable(r)
}

func (simpleQuoted) End() error {
	return nil
}

func (v simpleQuoted) IsQuotable(r rune) error {
	return quotedstring.IsQuotableDefault(v, r)
}

// dotWord accepts exactly six letters-or-dots with no dot at the start, at
// the end, or doubled. The six-character rule makes the end check matter.
type dotWord struct {
	count      int
	lastWasDot bool
}

func (v *dotWord) Next(cp quotedstring.PartialCodePoint) bool {
	v.count++
	b, ok := cp.AsByte()
	if !ok {
		return false
	}
	if b == '.' {
		if v.lastWasDot {
			return false
		}
		v.lastWasDot = true
		return true
	}
	v.lastWasDot = false
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func (v *dotWord) End() bool {
	return v.count == 6 && !v.lastWasDot
}

// Lenient is [Simple] with the opposite trailing-escape policy: a dangling
// backslash decodes as a literal backslash instead of failing.
type Lenient struct {
	Simple
}

// TrailingEscape implements [quotedstring.Grammar].
func (Lenient) TrailingEscape() error {
	return nil
}

// Strict is [Simple] with quoted-pairs restricted to the characters that
// actually need them: escaping anything other than backslash, double quote
// or NUL is an error.
type Strict struct {
	Simple
}

// NewQuotedValidator implements [quotedstring.Grammar].
func (Strict) NewQuotedValidator() quotedstring.QuotedValidator {
	return strictQuoted{}
}

type strictQuoted struct {
	simpleQuoted
}

func (strictQuoted) IsQuotable(r rune) error {
	switch r {
	case '\\', '"', 0:
		return nil
	}
	return &quotedstring.Error{Kind: quotedstring.KindUnescapableChar, Rune: r}
}

// ErrDanglingFold is reported by [Folding] when quoted content ends in the
// middle of a CRLF folding sequence.
var ErrDanglingFold = errors.New("grammartest: quoted content ends inside folding whitespace")

// Folding is [Simple] extended with MIME-style folding whitespace: the
// interior may contain "\r\n " (or "\r\n\t"), where CR and LF are
// non-semantic and the following blank is semantic. A bare CR or LF in any
// other position is invalid. Its validator is stateful and also implements
// [quotedstring.SubStater], so it exercises the automaton's custom state.
type Folding struct {
	Simple
}

// NewQuotedValidator implements [quotedstring.Grammar].
func (Folding) NewQuotedValidator() quotedstring.QuotedValidator {
	return &foldingQuoted{}
}

const (
	foldNone = iota
	foldAfterCR
	foldAfterLF
)

type foldingQuoted struct {
	fold int
}

func (v *foldingQuoted) Next(r rune) (quotedstring.Outcome, error) {
	switch v.fold {
	case foldAfterCR:
		if r != '\n' {
			return quotedstring.Invalid, ErrDanglingFold
		}
		v.fold = foldAfterLF
		return quotedstring.NonSemanticWS, nil
	case foldAfterLF:
		if r != ' ' && r != '\t' {
			return quotedstring.Invalid, ErrDanglingFold
		}
		v.fold = foldNone
		return quotedstring.SemanticWS, nil
	}
	if r == '\r' {
		v.fold = foldAfterCR
		return quotedstring.NonSemanticWS, nil
	}
	if r == '\n' {
		return quotedstring.Invalid, (Simple{}).Unquotable(r)
	}
	return simpleQuoted{}.Next(r)
}

func (v *foldingQuoted) End() error {
	if v.fold != foldNone {
		return ErrDanglingFold
	}
	return nil
}

func (v *foldingQuoted) IsQuotable(r rune) error {
	return quotedstring.IsQuotableDefault(v, r)
}

// PendingSubState implements [quotedstring.SubStater]. When the automaton
// accepted a CR the rest of the folding sequence is scanned as a sub-state;
// the validator's own fold tracking is handed off to it.
func (v *foldingQuoted) PendingSubState() quotedstring.SubState {
	if v.fold != foldAfterCR {
		return nil
	}
	v.fold = foldNone
	return foldExpectLF{}
}

type foldExpectLF struct{}

func (foldExpectLF) Advance(r rune) (quotedstring.SubState, error) {
	if r != '\n' {
		return nil, ErrDanglingFold
	}
	return foldExpectBlank{}, nil
}

type foldExpectBlank struct{}

func (foldExpectBlank) Advance(r rune) (quotedstring.SubState, error) {
	if r != ' ' && r != '\t' {
		return nil, ErrDanglingFold
	}
	return nil, nil
}
