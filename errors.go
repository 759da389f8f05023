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
	"errors"
	"fmt"
)

var (
	// ErrScanAfterEnd is returned by [Automaton.Advance] once the closing
	// quote has been matched. The automaton never silently accepts further
	// input after completion.
	ErrScanAfterEnd = errors.New("quotedstring: automaton advanced after the quoted string ended")

	// ErrScanAfterFailure is returned by [Automaton.Advance] after any failed
	// transition. A failed automaton is permanently unusable and must be
	// discarded.
	ErrScanAfterFailure = errors.New("quotedstring: automaton advanced after entering the failed state")

	// ErrDone is returned by [ContentChars.Next] when the content is
	// exhausted.
	ErrDone = errors.New("quotedstring: no more content")
)

const (
	KindMissingQuotes     Kind = iota // Opening and/or closing quote absent.
	KindUnescapableChar               // Character after a backslash not permitted in a quoted-pair.
	KindUnescapedQuotable             // Character requiring an escape appeared bare.
	KindTrailingEscape                // Backslash with nothing left to escape.
	KindUnquotableChar                // Character unrepresentable in a quoted string.
	KindNonASCII                      // Non-ASCII input rejected by an ASCII-only grammar.
)

// Kind identifies which rule of a grammar an [Error] violated.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindMissingQuotes:
		return "MissingQuotes"
	case KindUnescapableChar:
		return "UnescapableChar"
	case KindUnescapedQuotable:
		return "UnescapedQuotable"
	case KindTrailingEscape:
		return "TrailingEscape"
	case KindUnquotableChar:
		return "UnquotableChar"
	case KindNonASCII:
		return "NonASCII"
	default:
		return fmt.Sprintf("quotedstring.Kind(%d)", int(k))
	}
}

// Error is a ready-made error type for the failure modes every quoted-string
// dialect shares, so each [Grammar] implementation does not have to define
// its own taxonomy. Grammars with richer diagnostics are free to return their
// own types instead; the engine only passes errors through.
type Error struct {
	Kind Kind
	// Rune is the offending character, where one exists. Zero for failures
	// like [KindMissingQuotes] that have no single culprit.
	Rune rune
}

// Error implements [error].
func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingQuotes:
		return "quoted string is missing its surrounding double quotes"
	case KindUnescapableChar:
		return fmt.Sprintf("character %q cannot follow a backslash in a quoted-pair", e.Rune)
	case KindUnescapedQuotable:
		return fmt.Sprintf("character %q must be escaped with a backslash inside a quoted string", e.Rune)
	case KindTrailingEscape:
		return "quoted string ends in a backslash with nothing to escape"
	case KindUnquotableChar:
		return fmt.Sprintf("character %q cannot be represented in a quoted string", e.Rune)
	case KindNonASCII:
		return fmt.Sprintf("non-ASCII character %q is not permitted", e.Rune)
	default:
		return fmt.Sprintf("quoted string is invalid (%v)", e.Kind)
	}
}

// Is makes [errors.Is] match on Kind, and on Rune only when the target
// specifies one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Rune == 0 || t.Rune == e.Rune)
}

// DefaultErrors implements the error-constructor half of [Grammar] in terms
// of [Error]. Grammar implementations embed it and override individual
// methods where their dialect differs; the stock [DefaultErrors.TrailingEscape]
// rejects dangling backslashes.
type DefaultErrors struct{}

// Unquotable implements [Grammar].
func (DefaultErrors) Unquotable(r rune) error {
	return &Error{Kind: KindUnquotableChar, Rune: r}
}

// UnescapedQuotable implements [Grammar].
func (DefaultErrors) UnescapedQuotable(r rune) error {
	return &Error{Kind: KindUnescapedQuotable, Rune: r}
}

// MissingQuotes implements [Grammar].
func (DefaultErrors) MissingQuotes() error {
	return &Error{Kind: KindMissingQuotes}
}

// TrailingEscape implements [Grammar].
func (DefaultErrors) TrailingEscape() error {
	return &Error{Kind: KindTrailingEscape}
}
