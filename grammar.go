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

import "fmt"

const (
	// Plain characters are emitted as-is when quoting.
	Plain CharClass = iota
	// NeedsEscape characters are emitted preceded by a backslash.
	NeedsEscape
	// InvalidChar characters cannot appear in a quoted string at all.
	InvalidChar
)

// CharClass is the classification of a single character while encoding
// content into a quoted string.
type CharClass byte

// String implements [fmt.Stringer].
func (c CharClass) String() string {
	switch c {
	case Plain:
		return "Plain"
	case NeedsEscape:
		return "NeedsEscape"
	case InvalidChar:
		return "InvalidChar"
	default:
		return fmt.Sprintf("quotedstring.CharClass(%d)", int(c))
	}
}

const (
	Text          Outcome = iota // Qtext, kept verbatim.
	SemanticWS                   // Whitespace that is part of the content.
	NonSemanticWS                // Whitespace dropped on decode, e.g. folding remnants.
	Escape                       // The backslash opening a quoted-pair.
	Quotable                     // Needs a preceding backslash but had none.
	Invalid                      // Cannot appear inside a quoted string.
)

// Outcome is the classification of a single character while scanning
// already-quoted content.
//
// The variants are split into disjoint groups rather than mirroring the
// grammar productions: a character that could legally appear in a quoted-pair
// but is also qtext reports [Text], not [Quotable]. [Quotable] is reserved for
// characters that are representable only behind a backslash.
type Outcome byte

// String implements [fmt.Stringer].
func (o Outcome) String() string {
	switch o {
	case Text:
		return "Text"
	case SemanticWS:
		return "SemanticWS"
	case NonSemanticWS:
		return "NonSemanticWS"
	case Escape:
		return "Escape"
	case Quotable:
		return "Quotable"
	case Invalid:
		return "Invalid"
	default:
		return fmt.Sprintf("quotedstring.Outcome(%d)", int(o))
	}
}

// Grammar is the pluggable definition of a protocol's quoted-string dialect.
//
// Quoted strings are very similar across header grammars but differ in
// detail: which characters are valid without quoting at all, which whitespace
// is semantic, and whether non-ASCII is permitted. A Grammar value captures
// exactly those decisions; everything else (scanning, escaping, span
// tracking) lives in this package.
//
// Implementations are expected to be small value types with no shared mutable
// state. All per-string state belongs in the validators returned by
// [Grammar.NewUnquotedValidator] and [Grammar.NewQuotedValidator], which are
// constructed fresh for every operation.
//
// A Grammar must uphold one cross-cutting obligation: any character its
// unquoted validator accepts must classify as [Plain] for quoting. Quoting a
// string must never turn a previously-legal bare character into an illegal
// one. The engine cross-checks this opportunistically when debug checks are
// enabled and panics on violation, since it indicates a broken Grammar rather
// than bad input.
type Grammar interface {
	// ClassifyForQuoting reports how cp must be emitted inside a quoted
	// string. Pure function.
	ClassifyForQuoting(cp PartialCodePoint) CharClass

	// NewUnquotedValidator returns fresh state for checking whether a string
	// is representable without surrounding quotes.
	NewUnquotedValidator() UnquotedValidator

	// NewQuotedValidator returns fresh state for scanning the interior of a
	// quoted string.
	NewQuotedValidator() QuotedValidator

	// Unquotable returns the grammar's error for a character that cannot be
	// represented in a quoted string under any escaping.
	Unquotable(r rune) error

	// UnescapedQuotable returns the grammar's error for a character that
	// required a preceding backslash but had none.
	UnescapedQuotable(r rune) error

	// MissingQuotes returns the grammar's error for input lacking an opening
	// or closing double quote.
	MissingQuotes() error

	// TrailingEscape resolves the grammar's policy for a backslash that is
	// the last character before the closing quote. Returning nil decodes the
	// dangling backslash as a literal backslash; returning an error rejects
	// the input.
	TrailingEscape() error
}

// QuotedValidator validates the interior of a quoted string one character at
// a time.
//
// Callers must feed every character in order without skipping any (except the
// backslash of a quoted-pair, which the engine consumes itself where noted),
// and must not reuse an instance across independent scans. Most grammars need
// no state and implement this on an empty struct; grammars like MIME, where a
// bare CR is only valid as part of a folding sequence, carry that context
// here.
//
// Next is also used while quoting, so it can be called with a character that
// needs escaping without a preceding backslash; it must report [Quotable]
// rather than misbehave.
type QuotedValidator interface {
	// Next classifies the next character. The error is non-nil exactly when
	// the outcome is [Invalid].
	Next(r rune) (Outcome, error)

	// End finishes the scan, catching states that only become invalid at
	// end-of-input (for example content ending in the middle of a folding
	// sequence).
	End() error

	// IsQuotable reports whether r may appear as the second character of a
	// quoted-pair. [IsQuotableDefault] implements the usual rule.
	IsQuotable(r rune) error
}

// UnquotedValidator checks whether a raw string is representable without
// surrounding quotes, one character at a time.
//
// The same single-pass, no-reuse contract as [QuotedValidator] applies. End
// exists because some conditions are only decidable at end-of-input, e.g. a
// dot-atom may contain dots but not end in one.
type UnquotedValidator interface {
	// Next reports whether the next character is valid given the characters
	// before it.
	Next(cp PartialCodePoint) bool

	// End reports whether the input as a whole was valid, assuming every
	// character passed Next.
	End() bool
}

// IsQuotableDefault is the default quoted-pair rule: any character the
// validator does not reject outright may be escaped. Grammars that forbid
// unnecessary quoted-pairs (say, permitting only `\"` and `\\`) implement
// their own IsQuotable instead.
//
// It advances v, so the escaped character still counts toward the
// validator's sequence.
func IsQuotableDefault(v QuotedValidator, r rune) error {
	_, err := v.Next(r)
	return err
}

// SubState is an opaque scanning sub-state a grammar parks the [Automaton] in
// when a character opens a multi-character sequence that the four core
// automaton states cannot express, such as MIME's CRLF folding.
type SubState interface {
	// Advance consumes the next character, returning the follow-up
	// sub-state. A nil SubState returns the automaton to its normal state; a
	// non-nil error moves it to the failed state.
	Advance(r rune) (SubState, error)
}

// SubStater is an optional extension of [QuotedValidator]. After the
// [Automaton] accepts a character in its normal state it asks the validator
// for a pending sub-state; a non-nil result routes subsequent characters
// through [SubState.Advance] until the sequence completes.
type SubStater interface {
	PendingSubState() SubState
}
