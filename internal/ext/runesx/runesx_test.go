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

package runesx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustonaut/quoted-string/internal/ext/runesx"
)

func TestFoldASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want rune
	}{
		{in: 'A', want: 'a'},
		{in: 'Z', want: 'z'},
		{in: 'a', want: 'a'},
		{in: '0', want: '0'},
		{in: '[', want: '['},
		{in: 'Ä', want: 'Ä'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, runesx.FoldASCII(tt.in), "FoldASCII(%q)", tt.in)
	}
}

func TestEqualFoldASCII(t *testing.T) {
	t.Parallel()

	assert.True(t, runesx.EqualFoldASCII('a', 'A'))
	assert.True(t, runesx.EqualFoldASCII('z', 'z'))
	assert.False(t, runesx.EqualFoldASCII('a', 'b'))
	// '@' and '`' differ by 0x20 but are not letters.
	assert.False(t, runesx.EqualFoldASCII('@', '`'))
	assert.False(t, runesx.EqualFoldASCII('Ä', 'ä'))
}

func TestIsVisibleASCII(t *testing.T) {
	t.Parallel()

	assert.True(t, runesx.IsVisibleASCII('!'))
	assert.True(t, runesx.IsVisibleASCII('~'))
	assert.True(t, runesx.IsVisibleASCII('a'))
	assert.False(t, runesx.IsVisibleASCII(' '))
	assert.False(t, runesx.IsVisibleASCII('\t'))
	assert.False(t, runesx.IsVisibleASCII('\x7F'))
	assert.False(t, runesx.IsVisibleASCII('→'))
}
