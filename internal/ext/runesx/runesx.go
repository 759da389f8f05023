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

// Package runesx contains small ASCII-domain rune helpers.
package runesx

// FoldASCII maps ASCII upper case to lower case and leaves every other rune,
// including non-ASCII letters with case, untouched.
func FoldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// EqualFoldASCII reports whether a and b are equal under ASCII case folding.
func EqualFoldASCII(a, b rune) bool {
	return FoldASCII(a) == FoldASCII(b)
}

// IsVisibleASCII reports whether r is a printable, non-space ASCII character
// ('!' through '~'), the usual qtext base set of header grammars.
func IsVisibleASCII(r rune) bool {
	return r >= '!' && r <= '~'
}
