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

package quotedstring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	quotedstring "github.com/rustonaut/quoted-string"
)

func TestPartialCodePointOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r     rune
		ascii bool
	}{
		{r: 0, ascii: true},
		{r: 'a', ascii: true},
		{r: '"', ascii: true},
		{r: 0x7F, ascii: true},
		{r: 0x80, ascii: false},
		{r: 'ß', ascii: false},
		{r: '→', ascii: false},
		{r: '\U0010FFFF', ascii: false},
	}
	for _, tt := range tests {
		tt := tt
		cp := quotedstring.PartialCodePointOf(tt.r)
		assert.Equal(t, tt.ascii, cp.IsASCII(), "PartialCodePointOf(%q)", tt.r)

		b, ok := cp.AsByte()
		assert.Equal(t, tt.ascii, ok, "AsByte of %q", tt.r)
		if tt.ascii {
			assert.Equal(t, byte(tt.r), b, "AsByte of %q", tt.r)
		} else {
			assert.Equal(t, quotedstring.NonASCII, cp, "PartialCodePointOf(%q)", tt.r)
		}
	}
}

func TestPartialCodePointString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `'a'`, quotedstring.PartialCodePointOf('a').String())
	assert.Equal(t, "NonASCII", quotedstring.NonASCII.String())
	assert.Equal(t, "NonASCII", quotedstring.PartialCodePointOf('→').String())
}
