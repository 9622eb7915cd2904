// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

// Package gamever parses and compares game version strings under the two
// numbering standards the launcher supports.
//
// [Legacy] covers the original "1.minor.patch" scheme: the leading field
// is fixed at 1 and ordering is by minor then patch. [Modern] covers the
// year-based scheme adopted from major version 26 onward:
// "major.minor[.patch]" with major >= 26, ordered by major, minor,
// patch. The two standards are distinct types, so a Legacy and
// a Modern version are never comparable to each other.
//
// Both parsers validate strictly (regex match, integer fields, standard-
// specific major constraint) and return descriptive errors. Rendering is
// asymmetric between the standards: Legacy always prints all three
// fields, Modern omits a zero patch.
package gamever
