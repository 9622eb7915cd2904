// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cnt-foundation/cnt/lib/config"
)

func TestSnapshotRoundTrip(t *testing.T) {
	original := map[string]*config.Value{
		"settings": sampleTree(),
		"note":     config.Str("keep"),
	}

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, original); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	decoded, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if len(decoded) != len(original) {
		t.Fatalf("decoded %d keys, want %d", len(decoded), len(original))
	}
	for key, value := range original {
		if got := decoded[key]; got == nil || !value.Equal(got) {
			t.Errorf("key %q: got %v, want %v", key, got, value)
		}
	}
}

func TestReadSnapshotRejectsBadHeader(t *testing.T) {
	if _, err := ReadSnapshot(bytes.NewReader([]byte("NOTASNAP-rest"))); err == nil {
		t.Error("ReadSnapshot accepted wrong header")
	}
	if _, err := ReadSnapshot(bytes.NewReader([]byte("CNT"))); err == nil {
		t.Error("ReadSnapshot accepted truncated header")
	}
}

func TestSaveSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.snap")
	original := map[string]*config.Value{"answer": config.Int(42)}

	if err := SaveSnapshot(path, original); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	decoded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	value := decoded["answer"]
	if value == nil || !value.Equal(config.Int(42)) {
		t.Errorf("loaded %v, want Integer 42", value)
	}
}

func TestSaveSnapshotLeavesNoTempOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "state.snap")

	if err := SaveSnapshot(path, map[string]*config.Value{}); err == nil {
		t.Fatal("SaveSnapshot succeeded into a missing directory")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("directory not empty after failure: %v", entries)
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.snap")); err == nil {
		t.Error("LoadSnapshot succeeded on a missing file")
	}
}
