// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package gamever

import (
	"fmt"
	"regexp"
	"strconv"
)

// versionPattern matches both standards: two or three dot-separated
// decimal fields with no prefix or suffix.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?$`)

// Legacy is a game version under the pre-26 numbering standard. The
// leading field is always 1 and is not stored.
type Legacy struct {
	Minor int
	Patch int
}

// ParseLegacy parses "1.minor.patch" (patch optional, defaulting to 0).
// A leading field other than 1 is rejected.
func ParseLegacy(s string) (Legacy, error) {
	major, minor, patch, err := parseFields(s)
	if err != nil {
		return Legacy{}, fmt.Errorf("legacy version %q: %w", s, err)
	}
	if major != 1 {
		return Legacy{}, fmt.Errorf("legacy version %q: major must be 1", s)
	}
	return Legacy{Minor: minor, Patch: patch}, nil
}

// String renders the full three-field form, patch included even when 0.
func (v Legacy) String() string {
	return fmt.Sprintf("1.%d.%d", v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 ordering by minor then patch.
func (v Legacy) Compare(other Legacy) int {
	if v.Minor != other.Minor {
		return compareInt(v.Minor, other.Minor)
	}
	return compareInt(v.Patch, other.Patch)
}

// Modern is a game version under the year-based numbering standard
// introduced with major version 26.
type Modern struct {
	Major int
	Minor int
	Patch int
}

// ParseModern parses "major.minor" or "major.minor.patch" with
// major >= 26.
func ParseModern(s string) (Modern, error) {
	major, minor, patch, err := parseFields(s)
	if err != nil {
		return Modern{}, fmt.Errorf("modern version %q: %w", s, err)
	}
	if major < 26 {
		return Modern{}, fmt.Errorf("modern version %q: major must be 26 or greater", s)
	}
	return Modern{Major: major, Minor: minor, Patch: patch}, nil
}

// String renders "major.minor", appending ".patch" only when patch is
// nonzero.
func (v Modern) String() string {
	if v.Patch > 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns -1, 0, or 1 ordering by major, minor, then patch.
func (v Modern) Compare(other Modern) int {
	if v.Major != other.Major {
		return compareInt(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return compareInt(v.Minor, other.Minor)
	}
	return compareInt(v.Patch, other.Patch)
}

func parseFields(s string) (major, minor, patch int, err error) {
	matches := versionPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, 0, fmt.Errorf("want major.minor or major.minor.patch")
	}
	major, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, 0, err
	}
	minor, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, 0, err
	}
	if matches[3] != "" {
		patch, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return major, minor, patch, nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
