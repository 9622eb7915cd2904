// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zeebo/blake3"
)

// Info describes one discovered Java installation.
type Info struct {
	// Name is the version label, taken from the installation
	// directory's name (e.g. "jdk-17.0.2").
	Name string

	// Publisher is the vendor inferred from the installation path
	// ("Oracle", "Adoptium", ...), or "Unknown".
	Publisher string

	// Structure is "JDK" or "JRE".
	Structure string

	// Path is the installation root: the directory containing bin/.
	// Two Infos with the same Path are the same installation.
	Path string

	// Digest is the hex BLAKE3 digest of the java executable, or empty
	// when the executable could not be read. Unlike Path it identifies
	// the runtime binary itself, so the same build found via two
	// locations (or a moved installation) can be recognized.
	Digest string
}

// maxScanDepth bounds recursive scans. Installations live at most a few
// levels below the roots we search; without the cap a deep scan of a
// home directory could walk an entire checkout forest.
const maxScanDepth = 6

// SearchQuick scans the platform's common installation directories and
// the PATH for Java installations. Directories are scanned one level
// deep. Results are deduplicated by path and sorted by path.
func SearchQuick() []Info {
	found := map[string]Info{}
	for _, location := range searchLocations(commonLocations()) {
		scanDirectory(location, false, found)
	}
	searchPath(found)
	return sorted(found)
}

// SearchDeep scans the common directories plus the platform's deeper
// search roots (user directories, /opt and the like), recursing where
// installations are typically unpacked by hand. Slower but more
// thorough than SearchQuick.
func SearchDeep() []Info {
	found := map[string]Info{}
	for _, location := range searchLocations(deepLocations()) {
		scanDirectory(location, recurseLocation(location), found)
	}
	searchPath(found)
	return sorted(found)
}

// searchLocations appends JAVA_HOME (when set and existing) to the
// platform location list.
func searchLocations(locations []string) []string {
	if home := os.Getenv("JAVA_HOME"); home != "" {
		if _, err := os.Stat(home); err == nil {
			locations = append(locations, home)
		}
	}
	return locations
}

// scanDirectory looks for installations under directory. Non-recursive
// scans examine only immediate children; recursive scans walk to
// maxScanDepth. Unreadable directories are skipped silently.
func scanDirectory(directory string, recursive bool, found map[string]Info) {
	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		return
	}

	if !recursive {
		entries, err := os.ReadDir(directory)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				recordInstallation(filepath.Join(directory, entry.Name()), found)
			}
		}
		return
	}

	root := filepath.Clean(directory)
	filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fs.SkipDir
		}
		if !entry.IsDir() {
			return nil
		}
		if depthBelow(root, path) > maxScanDepth {
			return fs.SkipDir
		}
		recordInstallation(path, found)
		return nil
	})
}

// searchPath checks every PATH entry for a java executable and records
// the surrounding installation.
func searchPath(found map[string]Info) {
	for _, directory := range filepath.SplitList(os.Getenv("PATH")) {
		if directory == "" {
			continue
		}
		executable := filepath.Join(directory, executableName)
		if !isJavaExecutable(executable) {
			continue
		}
		root := installRoot(executable)
		// Only record proper installations (root still reaches the
		// executable through bin/).
		if isJavaExecutable(filepath.Join(root, "bin", executableName)) {
			record(root, found)
		}
	}
}

// recordInstallation records candidate when it has the standard
// bin/java layout.
func recordInstallation(candidate string, found map[string]Info) {
	if isJavaExecutable(filepath.Join(candidate, "bin", executableName)) {
		record(candidate, found)
	}
}

func record(root string, found map[string]Info) {
	if _, ok := found[root]; ok {
		return
	}
	found[root] = Info{
		Name:      filepath.Base(root),
		Publisher: publisherFor(root),
		Structure: structureFor(root),
		Path:      root,
		Digest:    digestFile(filepath.Join(root, "bin", executableName)),
	}
}

// isJavaExecutable reports whether path is a regular file whose name
// contains "java" (plus the platform's executable suffix rule).
func isJavaExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	name := strings.ToLower(filepath.Base(path))
	if !hasExecutableSuffix(name) {
		return false
	}
	return strings.Contains(name, "java")
}

// installRoot maps an executable path to its installation root: the
// parent of the bin directory, or the executable's directory when the
// layout is nonstandard.
func installRoot(executable string) string {
	directory := filepath.Dir(executable)
	if filepath.Base(directory) == "bin" {
		return filepath.Dir(directory)
	}
	return directory
}

// publisherKeywords maps path substrings to vendor names, checked in
// order against the installation directory and two levels of parents.
var publisherKeywords = []struct {
	substring string
	publisher string
}{
	{"oracle", "Oracle"},
	{"adoptopenjdk", "AdoptOpenJDK"},
	{"openjdk", "OpenJDK"},
	{"adoptium", "Adoptium"},
	{"temurin", "Adoptium"},
	{"amazon", "Amazon Corretto"},
	{"corretto", "Amazon Corretto"},
	{"azul", "Azul Zulu"},
	{"zulu", "Azul Zulu"},
	{"microsoft", "Microsoft"},
	{"bellsoft", "BellSoft Liberica"},
	{"liberica", "BellSoft Liberica"},
	{"graalvm", "GraalVM"},
	{"java", "Java"},
}

func publisherFor(root string) string {
	current := root
	for i := 0; i < 3 && current != ""; i++ {
		part := strings.ToLower(filepath.Base(current))
		for _, keyword := range publisherKeywords {
			if strings.Contains(part, keyword.substring) {
				return keyword.publisher
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "Unknown"
}

// structureFor classifies an installation as JDK or JRE: first by the
// directory name, then by the presence of the javac compiler. JRE is
// the fallback when neither signal decides.
func structureFor(root string) string {
	name := strings.ToLower(filepath.Base(root))
	if strings.Contains(name, "jdk") {
		return "JDK"
	}
	if strings.Contains(name, "jre") {
		return "JRE"
	}
	if isJavaExecutable(filepath.Join(root, "bin", compilerName)) {
		return "JDK"
	}
	return "JRE"
}

// digestFile streams the file through BLAKE3 and returns the hex
// digest, or empty on any read failure.
func digestFile(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return ""
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(os.PathSeparator)) + 1
}

func sorted(found map[string]Info) []Info {
	result := make([]Info, 0, len(found))
	for _, info := range found {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result
}
