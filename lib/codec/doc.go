// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides binary serialization for configuration value
// trees.
//
// Values travel as CBOR in Core Deterministic Encoding, so the same
// tree always produces identical bytes. Every value carries an
// explicit kind tag on the wire, which preserves the distinctions the
// text format has but generic codecs lose (Character versus String,
// None versus absence).
//
// Key exports:
//
//   - EncodeValue / DecodeValue: a single value tree as CBOR.
//   - EncodeMapping / DecodeMapping: a whole document mapping.
//   - WriteSnapshot / ReadSnapshot: zstd-compressed document
//     snapshots behind a fixed header, with SaveSnapshot and
//     LoadSnapshot for atomic file handling.
//   - Marshal / Unmarshal: deterministic CBOR for arbitrary Go
//     values.
//
// This package depends only on the CNT config package.
package codec
