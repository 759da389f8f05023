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
	ScanStart  ScanState = iota // No input consumed yet; the opening quote is expected.
	ScanNormal                  // Inside the quoted string.
	ScanEscape                  // A backslash was consumed; the escaped character is expected.
	ScanCustom                  // Parked in a grammar-defined [SubState].
	ScanEnd                     // The closing quote was matched. Terminal.
	ScanFailed                  // A transition failed. Terminal and absorbing.
)

// ScanState is the state of an [Automaton].
type ScanState byte

// String implements [fmt.Stringer].
func (s ScanState) String() string {
	switch s {
	case ScanStart:
		return "Start"
	case ScanNormal:
		return "Normal"
	case ScanEscape:
		return "Escape"
	case ScanCustom:
		return "Custom"
	case ScanEnd:
		return "End"
	case ScanFailed:
		return "Failed"
	default:
		return fmt.Sprintf("quotedstring.ScanState(%d)", int(s))
	}
}

// Automaton is an explicit finite-state machine over the quoted-string
// grammar. It consumes one character per [Automaton.Advance] call, including
// both surrounding quotes, and accepts exactly the strings [Parse] would
// match in full. Use it where input arrives incrementally or where a
// self-contained acceptance check is preferable to ad-hoc validator state.
//
// The end and failed states are absorbing: once the closing quote has been
// matched, or any transition has failed, every further Advance returns
// [ErrScanAfterEnd] or [ErrScanAfterFailure]. Reusing a finished automaton is
// a caller bug, but it is reported as an ordinary error rather than a panic
// so that a stream-driven caller can surface it.
type Automaton[G Grammar] struct {
	grammar   G
	validator QuotedValidator
	state     ScanState
	sub       SubState
}

// NewAutomaton returns an automaton in the start state with a fresh quoted
// validator.
func NewAutomaton[G Grammar](g G) *Automaton[G] {
	return &Automaton[G]{grammar: g, validator: g.NewQuotedValidator()}
}

// State returns the current state.
func (a *Automaton[G]) State() ScanState {
	return a.state
}

// Done reports whether the closing quote has been matched.
func (a *Automaton[G]) Done() bool {
	return a.state == ScanEnd
}

// Advance consumes the next character of the candidate quoted string.
func (a *Automaton[G]) Advance(r rune) error {
	switch a.state {
	case ScanEnd:
		return ErrScanAfterEnd
	case ScanFailed:
		return ErrScanAfterFailure
	case ScanStart:
		if r != '"' {
			return a.fail(a.grammar.MissingQuotes())
		}
		a.state = ScanNormal
		return nil
	case ScanEscape:
		if err := a.validator.IsQuotable(r); err != nil {
			return a.fail(err)
		}
		a.state = ScanNormal
		return nil
	case ScanCustom:
		next, err := a.sub.Advance(r)
		if err != nil {
			return a.fail(err)
		}
		a.sub = next
		if next == nil {
			a.state = ScanNormal
		}
		return nil
	default:
		return a.advanceNormal(r)
	}
}

func (a *Automaton[G]) advanceNormal(r rune) error {
	switch r {
	case '"':
		a.state = ScanEnd
		return nil
	case '\\':
		a.state = ScanEscape
		return nil
	}

	outcome, err := a.validator.Next(r)
	switch outcome {
	case Text, SemanticWS, NonSemanticWS:
		if s, ok := a.validator.(SubStater); ok {
			if sub := s.PendingSubState(); sub != nil {
				a.sub = sub
				a.state = ScanCustom
			}
		}
		return nil
	case Escape:
		a.state = ScanEscape
		return nil
	case Quotable:
		return a.fail(a.grammar.UnescapedQuotable(r))
	default:
		if err == nil {
			err = a.grammar.Unquotable(r)
		}
		return a.fail(err)
	}
}

// Finish checks that the automaton consumed a complete quoted string. It must
// be called exactly once, after the last character: an automaton that never
// reached the end state yields the grammar's missing-quotes error, and the
// validator's end-of-input check runs here.
func (a *Automaton[G]) Finish() error {
	switch a.state {
	case ScanEnd:
		if err := a.validator.End(); err != nil {
			a.state = ScanFailed
			return err
		}
		return nil
	case ScanFailed:
		return ErrScanAfterFailure
	default:
		a.state = ScanFailed
		return a.grammar.MissingQuotes()
	}
}

func (a *Automaton[G]) fail(err error) error {
	a.state = ScanFailed
	a.sub = nil
	return err
}
