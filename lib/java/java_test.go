// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeInstallation creates dir/bin/<java executable> with the given
// contents and returns the installation root.
func fakeInstallation(t *testing.T, parent, name string, withCompiler bool) string {
	t.Helper()
	root := filepath.Join(parent, name)
	bin := filepath.Join(root, "bin")
	if err := os.MkdirAll(bin, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bin, executableName), []byte("fake java "+name), 0755); err != nil {
		t.Fatal(err)
	}
	if withCompiler {
		if err := os.WriteFile(filepath.Join(bin, compilerName), []byte("fake javac"), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestScanDirectoryFindsInstallations(t *testing.T) {
	parent := t.TempDir()
	fakeInstallation(t, parent, "jdk-17.0.2", true)
	fakeInstallation(t, parent, "zulu-21-jre", false)

	// A directory without the bin/java layout is ignored.
	if err := os.MkdirAll(filepath.Join(parent, "not-java", "lib"), 0755); err != nil {
		t.Fatal(err)
	}

	found := map[string]Info{}
	scanDirectory(parent, false, found)
	if len(found) != 2 {
		t.Fatalf("found %d installations, want 2", len(found))
	}

	results := sorted(found)
	if results[0].Name != "jdk-17.0.2" {
		t.Errorf("results[0].Name = %q", results[0].Name)
	}
	if results[0].Digest == "" {
		t.Error("digest not computed")
	}
	if results[0].Digest == results[1].Digest {
		t.Error("distinct executables produced the same digest")
	}
}

func TestScanDirectoryRecursive(t *testing.T) {
	parent := t.TempDir()
	nested := filepath.Join(parent, "downloads", "archive")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	fakeInstallation(t, nested, "jdk-21", true)

	found := map[string]Info{}
	scanDirectory(parent, false, found)
	if len(found) != 0 {
		t.Fatalf("non-recursive scan found nested installation")
	}

	scanDirectory(parent, true, found)
	if len(found) != 1 {
		t.Fatalf("recursive scan found %d installations, want 1", len(found))
	}
}

func TestScanDirectoryMissing(t *testing.T) {
	found := map[string]Info{}
	scanDirectory(filepath.Join(t.TempDir(), "nope"), false, found)
	if len(found) != 0 {
		t.Error("scan of missing directory produced results")
	}
}

func TestStructureClassification(t *testing.T) {
	parent := t.TempDir()

	jdkByName := fakeInstallation(t, parent, "my-jdk-17", false)
	jreByName := fakeInstallation(t, parent, "some-jre", true)
	jdkByCompiler := fakeInstallation(t, parent, "runtime-a", true)
	jreFallback := fakeInstallation(t, parent, "runtime-b", false)

	cases := []struct {
		root string
		want string
	}{
		{jdkByName, "JDK"},
		{jreByName, "JRE"}, // name wins over compiler presence
		{jdkByCompiler, "JDK"},
		{jreFallback, "JRE"},
	}
	for _, c := range cases {
		if got := structureFor(c.root); got != c.want {
			t.Errorf("structureFor(%s) = %q, want %q", filepath.Base(c.root), got, c.want)
		}
	}
}

func TestPublisherHeuristics(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/usr/lib/jvm/java-17-openjdk", "OpenJDK"},
		{"/opt/oracle/jdk-21", "Oracle"},
		{"/opt/amazon-corretto-17", "Amazon Corretto"},
		{"/usr/lib/jvm/zulu-21", "Azul Zulu"},
		{"/opt/graalvm-ce-21", "GraalVM"},
		{"/home/u/.jdks/temurin-21", "Adoptium"},
		{"/usr/lib/jvm/java-17", "Java"},
		{"/opt/runtimes/seventeen", "Unknown"},
	}
	for _, c := range cases {
		if got := publisherFor(filepath.FromSlash(c.path)); got != c.want {
			t.Errorf("publisherFor(%s) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestInstallRoot(t *testing.T) {
	if got := installRoot(filepath.FromSlash("/opt/jdk/bin/java")); got != filepath.FromSlash("/opt/jdk") {
		t.Errorf("installRoot = %q", got)
	}
	// Nonstandard layout: executable not under bin/.
	if got := installRoot(filepath.FromSlash("/opt/tools/java")); got != filepath.FromSlash("/opt/tools") {
		t.Errorf("installRoot (no bin) = %q", got)
	}
}

func TestSearchPath(t *testing.T) {
	parent := t.TempDir()
	root := fakeInstallation(t, parent, "path-jdk", false)
	t.Setenv("PATH", filepath.Join(root, "bin"))

	found := map[string]Info{}
	searchPath(found)
	if _, ok := found[root]; !ok {
		t.Fatalf("PATH scan missed installation at %s; found %v", root, found)
	}
}

func TestSearchPathIgnoresBareExecutable(t *testing.T) {
	// An executable directly in a PATH entry that is not a bin/
	// directory has no surrounding installation to record.
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, executableName), []byte("x"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	found := map[string]Info{}
	searchPath(found)
	if len(found) != 0 {
		t.Errorf("bare executable recorded: %v", found)
	}
}

func TestSearchQuickUsesJavaHome(t *testing.T) {
	parent := t.TempDir()
	root := fakeInstallation(t, parent, "home-jdk", true)

	// JAVA_HOME is scanned as a location, so it must point at the
	// directory containing installations, matching the scan contract.
	t.Setenv("JAVA_HOME", parent)
	t.Setenv("PATH", "")

	var hit bool
	for _, info := range SearchQuick() {
		if info.Path == root {
			hit = true
			if info.Structure != "JDK" {
				t.Errorf("Structure = %q, want JDK", info.Structure)
			}
		}
	}
	if !hit {
		t.Error("SearchQuick did not find the JAVA_HOME installation")
	}
}

func TestDedupAcrossLocations(t *testing.T) {
	parent := t.TempDir()
	root := fakeInstallation(t, parent, "dup-jdk", false)

	t.Setenv("JAVA_HOME", parent)
	t.Setenv("PATH", filepath.Join(root, "bin"))

	count := 0
	for _, info := range SearchQuick() {
		if info.Path == root {
			count++
		}
	}
	if count != 1 {
		t.Errorf("installation reported %d times, want 1", count)
	}
}

func TestIsJavaExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, executableName)
	if err := os.WriteFile(path, []byte("x"), 0755); err != nil {
		t.Fatal(err)
	}
	if !isJavaExecutable(path) {
		t.Error("valid executable rejected")
	}
	if isJavaExecutable(dir) {
		t.Error("directory accepted")
	}
	if isJavaExecutable(filepath.Join(dir, "missing")) {
		t.Error("missing file accepted")
	}

	if runtime.GOOS != "windows" {
		other := filepath.Join(dir, "python")
		os.WriteFile(other, []byte("x"), 0755)
		if isJavaExecutable(other) {
			t.Error("non-java name accepted")
		}
	}
}
