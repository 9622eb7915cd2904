// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package instance

import (
	"path/filepath"
	"testing"

	libinstance "github.com/cnt-foundation/cnt/lib/instance"
)

func TestCreateCommand(t *testing.T) {
	parent := t.TempDir()

	err := createCommand().Execute([]string{"--dir", parent, "--description", "main world", "survival"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	inst, err := libinstance.Load(filepath.Join(parent, "survival"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if inst.Description != "main world" {
		t.Errorf("Description = %q", inst.Description)
	}
}

func TestCreateCommandRequiresName(t *testing.T) {
	if err := createCommand().Execute([]string{"--dir", t.TempDir()}); err == nil {
		t.Error("create succeeded without a name")
	}
}

func TestListCommandRejectsPositionalArgs(t *testing.T) {
	if err := listCommand().Execute([]string{"extra"}); err == nil {
		t.Error("list accepted a positional argument")
	}
}
