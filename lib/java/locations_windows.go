// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package java

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	executableName = "java.exe"
	compilerName   = "javac.exe"
)

// hasExecutableSuffix requires the .exe extension on Windows.
func hasExecutableSuffix(name string) bool {
	return strings.HasSuffix(name, ".exe")
}

// commonLocations lists the standard installation roots scanned by
// SearchQuick.
func commonLocations() []string {
	var locations []string
	if programFiles := os.Getenv("ProgramFiles"); programFiles != "" {
		locations = append(locations, filepath.Join(programFiles, "Java"))
	}
	if programFilesX86 := os.Getenv("ProgramFiles(x86)"); programFilesX86 != "" {
		locations = append(locations, filepath.Join(programFilesX86, "Java"))
	}
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		locations = append(locations, filepath.Join(localAppData, "Programs", "Java"))
	}
	return locations
}

// deepLocations extends commonLocations with user folders where
// installations end up after manual downloads.
func deepLocations() []string {
	locations := commonLocations()
	if profile := os.Getenv("USERPROFILE"); profile != "" {
		locations = append(locations,
			filepath.Join(profile, "Downloads"),
			filepath.Join(profile, "Desktop"),
			filepath.Join(profile, "Documents"),
			filepath.Join(profile, "AppData", "Local", "Programs"),
		)
	}
	locations = append(locations, `C:\Program Files`, `C:\Program Files (x86)`)
	return locations
}

// recurseLocation reports whether a deep scan should walk below the
// location's immediate children.
func recurseLocation(location string) bool {
	lower := strings.ToLower(location)
	for _, marker := range []string{"download", "desktop", "document", "appdata"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
