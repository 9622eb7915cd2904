// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ErrNoPath is returned by Save when the document has no bound file path.
var ErrNoPath = errors.New("config: document has no bound path")

// Document is the top-level key to Value store, optionally bound to the
// file it was loaded from. The zero value is an empty, closed document.
type Document struct {
	data map[string]*Value
	path string
	open bool
}

// NewDocument returns an empty, closed document.
func NewDocument() *Document {
	return &Document{data: map[string]*Value{}}
}

// Open reads and parses the file at path, replacing the document's
// contents, binding the path, and marking the document open. On any read
// or parse failure the document is left exactly as it was.
func (d *Document) Open(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("opening config %s: %w", path, err)
	}
	data, err := Parse(src)
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	d.data = data
	d.path = path
	d.open = true
	return nil
}

// IsOpen reports whether the document is bound to a successfully
// loaded file.
func (d *Document) IsOpen() bool { return d.open }

// Path returns the bound file path, or the empty string.
func (d *Document) Path() string { return d.path }

// Close clears all top-level keys, unbinds the path, and marks the
// document closed.
func (d *Document) Close() {
	d.data = map[string]*Value{}
	d.path = ""
	d.open = false
}

// Save writes the document to its bound path. It returns ErrNoPath when
// the document was never opened or was closed.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.SaveTo(d.path)
}

// SaveTo writes the document to path without changing the binding. Each
// top-level key is written as "key: " followed by the multi-line
// rendering of its value, in lexicographic key order.
func (d *Document) SaveTo(path string) error {
	if err := os.WriteFile(path, []byte(d.Render()), 0644); err != nil {
		return fmt.Errorf("saving config %s: %w", path, err)
	}
	return nil
}

// Render returns the full document text in the persisted format.
func (d *Document) Render() string {
	return d.RenderWith(NewWriter())
}

// RenderWith renders the document with a caller-configured Writer.
func (d *Document) RenderWith(w *Writer) string {
	var b strings.Builder
	for _, key := range d.Keys() {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(w.Render(d.data[key]))
		b.WriteByte('\n')
	}
	return b.String()
}

// Mapping returns the underlying key to Value mapping. The map is
// shared with the document, not copied; mutating it mutates the
// document.
func (d *Document) Mapping() map[string]*Value {
	return d.data
}

// Get returns the Value stored under name, or a fresh None Value when the
// key is absent. It never creates the key.
func (d *Document) Get(name string) *Value {
	if v, ok := d.data[name]; ok {
		return v
	}
	return None()
}

// Has reports whether name exists at the top level.
func (d *Document) Has(name string) bool {
	_, ok := d.data[name]
	return ok
}

// Set stores value under name, replacing any previous entry.
func (d *Document) Set(name string, value *Value) {
	if d.data == nil {
		d.data = map[string]*Value{}
	}
	d.data[name] = value
}

// Add appends value to the array stored under name. When name is absent
// or holds anything other than an array, Add behaves exactly like Set:
// the existing entry is overwritten with the single new value, not
// wrapped into an array. This asymmetry is part of the format's contract.
func (d *Document) Add(name string, value *Value) {
	if existing, ok := d.data[name]; ok && existing.IsArray() {
		existing.Append(value)
		return
	}
	d.Set(name, value)
}

// Remove deletes name if present; absent keys are a no-op.
func (d *Document) Remove(name string) {
	delete(d.data, name)
}

// Keys returns the top-level keys in lexicographic order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.data))
	for key := range d.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of top-level keys.
func (d *Document) Len() int { return len(d.data) }
