// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

// Package interop converts CNT value trees to and from JSON and YAML.
//
// The JSON reader accepts JSONC (comments and trailing commas are
// stripped before decoding), so hand-edited JSON configs convert
// without cleanup. Numbers become Integer when whole and representable
// in int64, Float otherwise.
//
// Conversion out of the CNT model is lossy in two places, both
// inherent to the target formats: Character values become length-1
// strings, and None becomes null, so a CNT→JSON→CNT round trip
// reads them back as String and None respectively. Everything else
// round-trips structurally.
//
// Key exports: [FromJSON], [ToJSON], [FromYAML], [ToYAML], all
// operating on the top-level key to Value mapping shape used by
// config.Document, and [ToNative] for handing a single value to other
// stdlib encoders.
package interop
