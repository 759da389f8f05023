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

// Package quotedstring parses, validates, quotes and unquotes the
// quoted-string tokens shared by mail and web header grammars, such as
//
//	quoted-string = DQUOTE *( *WSP qcontent ) *WSP DQUOTE
//
// The protocols that use quoted strings (MIME parameters, mail headers, HTTP
// media types) agree on the broad shape of the token but differ in detail:
// which characters may appear bare, which must be escaped in a quoted-pair,
// which whitespace is part of the content, and whether non-ASCII is
// permitted. This package implements everything those dialects share
// (scanning, escaping, decoding, span tracking) against a pluggable [Grammar]
// that supplies only the per-dialect decisions. It does not ship concrete
// protocol grammars.
//
// The operations are:
//
//   - [Quote] encodes content into a quoted string, escaping as the grammar
//     requires.
//   - [QuoteIfNeeded] returns the input unchanged when the grammar accepts it
//     bare, allocating only when quoting is actually needed.
//   - [ToContent] decodes a quoted string, returning a sub-slice of the
//     input whenever no quoted-pair or droppable whitespace occurs.
//   - [ContentChars] decodes lazily, character by character, and compares
//     decoded content against plain text without building a buffer.
//   - [Parse] locates a quoted-string prefix in larger input and reports the
//     unconsumed tail; [Validate] requires the whole input to match.
//   - [Automaton] is the underlying finite-state machine, usable directly
//     for incremental input.
//
// All operations are pure functions over their input: they either return
// sub-slices of it or build one fresh buffer per call, and they are safe for
// concurrent use as long as Grammar values are stateless, which they are
// expected to be.
package quotedstring
