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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	quotedstring "github.com/rustonaut/quoted-string"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind quotedstring.Kind
		want string
	}{
		{kind: quotedstring.KindMissingQuotes, want: "MissingQuotes"},
		{kind: quotedstring.KindUnescapableChar, want: "UnescapableChar"},
		{kind: quotedstring.KindUnescapedQuotable, want: "UnescapedQuotable"},
		{kind: quotedstring.KindTrailingEscape, want: "TrailingEscape"},
		{kind: quotedstring.KindUnquotableChar, want: "UnquotableChar"},
		{kind: quotedstring.KindNonASCII, want: "NonASCII"},
		{kind: quotedstring.Kind(42), want: "quotedstring.Kind(42)"},
	}
	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *quotedstring.Error
		want string
	}{
		{
			err:  &quotedstring.Error{Kind: quotedstring.KindMissingQuotes},
			want: "quoted string is missing its surrounding double quotes",
		},
		{
			err:  &quotedstring.Error{Kind: quotedstring.KindUnescapableChar, Rune: 'x'},
			want: `character 'x' cannot follow a backslash in a quoted-pair`,
		},
		{
			err:  &quotedstring.Error{Kind: quotedstring.KindUnescapedQuotable, Rune: '"'},
			want: `character '"' must be escaped with a backslash inside a quoted string`,
		},
		{
			err:  &quotedstring.Error{Kind: quotedstring.KindTrailingEscape},
			want: "quoted string ends in a backslash with nothing to escape",
		},
		{
			err:  &quotedstring.Error{Kind: quotedstring.KindUnquotableChar, Rune: '\n'},
			want: `character '\n' cannot be represented in a quoted string`,
		},
		{
			err:  &quotedstring.Error{Kind: quotedstring.KindNonASCII, Rune: '→'},
			want: `non-ASCII character '→' is not permitted`,
		},
	}
	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestErrorIs(t *testing.T) {
	t.Parallel()

	err := &quotedstring.Error{Kind: quotedstring.KindUnquotableChar, Rune: '→'}

	// Kind-only targets match any rune of that kind.
	assert.ErrorIs(t, err, &quotedstring.Error{Kind: quotedstring.KindUnquotableChar})
	assert.ErrorIs(t, err, &quotedstring.Error{Kind: quotedstring.KindUnquotableChar, Rune: '→'})

	assert.NotErrorIs(t, err, &quotedstring.Error{Kind: quotedstring.KindUnquotableChar, Rune: 'x'})
	assert.NotErrorIs(t, err, &quotedstring.Error{Kind: quotedstring.KindMissingQuotes})
	assert.NotErrorIs(t, err, errors.New("character '→' cannot be represented in a quoted string"))
}

func TestDefaultErrors(t *testing.T) {
	t.Parallel()

	var kit quotedstring.DefaultErrors

	assert.ErrorIs(t, kit.Unquotable('a'), &quotedstring.Error{Kind: quotedstring.KindUnquotableChar, Rune: 'a'})
	assert.ErrorIs(t, kit.UnescapedQuotable('"'), &quotedstring.Error{Kind: quotedstring.KindUnescapedQuotable, Rune: '"'})
	assert.ErrorIs(t, kit.MissingQuotes(), &quotedstring.Error{Kind: quotedstring.KindMissingQuotes})
	assert.ErrorIs(t, kit.TrailingEscape(), &quotedstring.Error{Kind: quotedstring.KindTrailingEscape})
}

func TestSentinels(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, quotedstring.ErrScanAfterEnd.Error(), quotedstring.ErrScanAfterFailure.Error())
	assert.NotErrorIs(t, quotedstring.ErrScanAfterEnd, quotedstring.ErrScanAfterFailure)
	assert.NotErrorIs(t, quotedstring.ErrDone, quotedstring.ErrScanAfterEnd)
}
