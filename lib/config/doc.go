// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

// Package config implements the CNT configuration format: a
// self-describing tree of typed values loaded from and written to a
// human-editable text format.
//
// A document is a sequence of top-level "key: value" pairs. Values are
// None, integers, floats, booleans, double-quoted strings, single-quoted
// characters, objects ({...}), and arrays ([...]). Commas between
// elements and pairs are optional, // and /* */ comments are skipped
// (and discarded), and keys may be bare identifiers ([A-Za-z0-9_-]+) or
// quoted strings.
//
// Parsing is forgiving by design: unterminated strings, arrays, and
// objects produce truncated results rather than errors, and fragments
// that match no token are skipped. Only two conditions fail a parse: a
// numeric token that cannot be converted, and nesting beyond the
// documented depth limit.
//
// Key exports:
//
//   - [Value] -- the tagged union, with soft getters, the non-mutating
//     Lookup/Item accessors, the mutating Entry/Index accessors that
//     lazily materialize containers, and the strict At/AtIndex forms
//   - [Parse] and [ParseValue] -- text to Value trees
//   - [Writer] -- Value trees to text, with the inline/multi-line policy
//   - [Document] -- the top-level store with file lifecycle
//
// Values are shared by handle: copying a *Value aliases the subtree, and
// [Value.Clone] is the explicit deep copy. Nothing here locks; share
// trees across goroutines only with external synchronization.
//
// This package depends on no other CNT packages.
package config
