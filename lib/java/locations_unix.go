// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package java

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	executableName = "java"
	compilerName   = "javac"
)

// hasExecutableSuffix is a no-op on Unix; any file name qualifies.
func hasExecutableSuffix(string) bool { return true }

// commonLocations lists the standard installation roots scanned by
// SearchQuick.
func commonLocations() []string {
	locations := []string{
		"/usr/lib/jvm",
		"/usr/lib64/jvm",
		"/usr/local/lib/jvm",
		"/usr/java",
		"/usr/local/java",
		"/usr/lib/jvm/java",
		"/usr/lib/jvm/openjdk",
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".jdks"),
			filepath.Join(home, ".local", "share", "java"),
		)
	}
	return locations
}

// deepLocations extends commonLocations with roots where installations
// are unpacked by hand or by version managers.
func deepLocations() []string {
	locations := commonLocations()
	locations = append(locations, "/opt", "/usr/local", "/var/lib")
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".sdkman", "candidates", "java"))
	}
	return locations
}

// recurseLocation reports whether a deep scan should walk below the
// location's immediate children.
func recurseLocation(location string) bool {
	if strings.HasPrefix(location, "/home/") {
		return true
	}
	if location == "/opt" || location == "/usr/local" {
		return true
	}
	if strings.Contains(location, "/.sdkman/") {
		return true
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(location, home) {
		return true
	}
	return false
}
