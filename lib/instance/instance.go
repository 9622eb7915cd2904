// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/cnt-foundation/cnt/lib/config"
)

// DescriptorName is the file an instance directory is identified by.
const DescriptorName = "instance.cnt"

// namePattern restricts instance names to path-safe identifiers.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._-]*$`)

// Instance describes one managed game installation: a directory with
// an instance.cnt descriptor at its root.
type Instance struct {
	// Name identifies the instance. It doubles as the directory
	// name under the parent when created through Create.
	Name string

	// Description is free-form text shown in listings.
	Description string

	// Dir is the absolute path of the instance directory.
	Dir string
}

// descriptorPath returns the path of the instance's descriptor file.
func (inst *Instance) descriptorPath() string {
	return filepath.Join(inst.Dir, DescriptorName)
}

// ValidName reports whether name is acceptable as an instance name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Create makes a new instance directory under parent and writes its
// descriptor. The directory must not already exist.
func Create(parent, name, description string) (*Instance, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("invalid instance name %q", name)
	}
	dir := filepath.Join(parent, name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating instance directory: %w", err)
	}
	inst := &Instance{Name: name, Description: description, Dir: dir}
	if err := inst.Save(); err != nil {
		os.Remove(dir)
		return nil, err
	}
	return inst, nil
}

// Load reads the descriptor of the instance rooted at dir.
func Load(dir string) (*Instance, error) {
	doc := config.NewDocument()
	if err := doc.Open(filepath.Join(dir, DescriptorName)); err != nil {
		return nil, fmt.Errorf("loading instance at %s: %w", dir, err)
	}
	name, _ := doc.Get("name").AsString()
	if name == "" {
		return nil, fmt.Errorf("instance at %s has no name", dir)
	}
	description, _ := doc.Get("description").AsString()
	return &Instance{Name: name, Description: description, Dir: dir}, nil
}

// Save writes the instance descriptor to its directory.
func (inst *Instance) Save() error {
	doc := config.NewDocument()
	doc.Set("name", config.Str(inst.Name))
	doc.Set("description", config.Str(inst.Description))
	if err := doc.SaveTo(inst.descriptorPath()); err != nil {
		return fmt.Errorf("saving instance %s: %w", inst.Name, err)
	}
	return nil
}

// List returns the instances found directly under parent, sorted by
// directory order. Directories without a readable descriptor are
// skipped.
func List(parent string) ([]*Instance, error) {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, fmt.Errorf("listing instances: %w", err)
	}
	var instances []*Instance
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		inst, err := Load(filepath.Join(parent, entry.Name()))
		if err != nil {
			continue
		}
		instances = append(instances, inst)
	}
	return instances, nil
}
