// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	libconfig "github.com/cnt-foundation/cnt/lib/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.cnt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestSetScalar(t *testing.T) {
	path := writeConfig(t, `fullscreen: false`)

	if err := setCommand().Execute([]string{path, "fullscreen", "true"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	doc := libconfig.NewDocument()
	if err := doc.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b, _ := doc.Get("fullscreen").AsBoolean(); !b {
		t.Error("fullscreen not updated to true")
	}
}

func TestSetObjectFragment(t *testing.T) {
	path := writeConfig(t, ``)

	err := setCommand().Execute([]string{path, "resolution", `{"width": 1920, "height": 1080}`})
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	doc := libconfig.NewDocument()
	if err := doc.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	width, ok := doc.Get("resolution").Lookup("width")
	if !ok {
		t.Fatal("resolution.width missing")
	}
	if n, _ := width.AsInteger(); n != 1920 {
		t.Errorf("width = %d, want 1920", n)
	}
}

func TestSetRejectsInvalidFragment(t *testing.T) {
	path := writeConfig(t, ``)
	if err := setCommand().Execute([]string{path, "bad", "1.2.3"}); err == nil {
		t.Error("set accepted an invalid number fragment")
	}
}

func TestSetAddAppendsToArray(t *testing.T) {
	path := writeConfig(t, `mods: ["first"]`)

	err := setCommand().Execute([]string{"--add", path, "mods", `"second"`})
	if err != nil {
		t.Fatalf("set --add: %v", err)
	}

	doc := libconfig.NewDocument()
	if err := doc.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	mods := doc.Get("mods")
	if mods.Size() != 2 {
		t.Fatalf("mods has %d elements, want 2", mods.Size())
	}
	second, _ := mods.Item(1)
	if s, _ := second.AsString(); s != "second" {
		t.Errorf("mods[1] = %q, want %q", s, "second")
	}
}

func TestRemove(t *testing.T) {
	path := writeConfig(t, "keep: 1,\ndrop: 2")

	if err := removeCommand().Execute([]string{path, "drop"}); err != nil {
		t.Fatalf("remove: %v", err)
	}

	doc := libconfig.NewDocument()
	if err := doc.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.Has("drop") {
		t.Error("drop still present after remove")
	}
	if !doc.Has("keep") {
		t.Error("keep lost by remove")
	}
}

func TestRemoveMissingKeyExitsNonZero(t *testing.T) {
	path := writeConfig(t, `keep: 1`)

	err := removeCommand().Execute([]string{path, "absent"})
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("remove returned %v, want ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
}

func TestGetMissingKeyExitsNonZero(t *testing.T) {
	path := writeConfig(t, `keep: 1`)

	err := getCommand().Execute([]string{path, "absent"})
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("get returned %v, want ExitError", err)
	}
}

func TestFmtWriteNormalizes(t *testing.T) {
	// Missing commas and unsorted keys are normalized by fmt.
	path := writeConfig(t, "zeta: 1\nalpha: {\"b\": 2 \"a\": 1}")

	if err := fmtCommand().Execute([]string{"--write", path}); err != nil {
		t.Fatalf("fmt --write: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "alpha: {") {
		t.Errorf("canonical output missing alpha entry:\n%s", text)
	}
	if strings.Index(text, "alpha:") > strings.Index(text, "zeta:") {
		t.Errorf("keys not sorted:\n%s", text)
	}

	// Canonical output parses back to the same document.
	doc := libconfig.NewDocument()
	if err := doc.Open(path); err != nil {
		t.Fatalf("Open after fmt: %v", err)
	}
	if n, _ := doc.Get("zeta").AsInteger(); n != 1 {
		t.Errorf("zeta = %d after fmt", n)
	}
}

func TestOpenMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.cnt")
	if _, err := openFile(missing); err == nil {
		t.Error("openFile succeeded on a missing file")
	}
}
