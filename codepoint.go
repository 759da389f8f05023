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

// NonASCII is the [PartialCodePoint] produced for every character outside the
// seven-bit range. The value is deliberately not a valid ASCII byte, so lookup
// tables indexed by a PartialCodePoint cannot confuse it with real input.
const NonASCII PartialCodePoint = 0xF8

// PartialCodePoint is a character restricted to the ASCII domain: either the
// character's own value (0x00–0x7F) or the [NonASCII] sentinel.
//
// Grammars classify characters for quoting through this type rather than
// through a full rune. Quoted-string dialects agree on the ASCII range and at
// most differ on whether non-ASCII is permitted wholesale, so a single byte is
// enough to drive a small, branch-predictable dispatch table.
type PartialCodePoint byte

// PartialCodePointOf reduces r to its ASCII-or-sentinel form.
func PartialCodePointOf(r rune) PartialCodePoint {
	if uint32(r) > 0x7F {
		return NonASCII
	}
	return PartialCodePoint(r)
}

// IsASCII reports whether this is an actual seven-bit code point rather than
// the [NonASCII] sentinel.
func (p PartialCodePoint) IsASCII() bool {
	return p <= 0x7F
}

// AsByte returns the underlying ASCII byte, or false for [NonASCII].
func (p PartialCodePoint) AsByte() (byte, bool) {
	if !p.IsASCII() {
		return 0, false
	}
	return byte(p), true
}

// String implements [fmt.Stringer].
func (p PartialCodePoint) String() string {
	if !p.IsASCII() {
		return "NonASCII"
	}
	return fmt.Sprintf("%q", rune(p))
}
