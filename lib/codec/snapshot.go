// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/cnt-foundation/cnt/lib/config"
)

// snapshotMagic identifies a CNT snapshot file: deterministic CBOR of
// the document mapping, zstd-compressed, behind a fixed header.
var snapshotMagic = []byte("CNTSNAP1")

// WriteSnapshot serializes the document mapping and writes it to w.
func WriteSnapshot(w io.Writer, data map[string]*config.Value) error {
	encoded, err := EncodeMapping(data)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if _, err := w.Write(snapshotMagic); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating compressor: %w", err)
	}
	if _, err := enc.Write(encoded); err != nil {
		enc.Close()
		return fmt.Errorf("compressing snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot reads a snapshot written by WriteSnapshot and returns
// the document mapping it contains.
func ReadSnapshot(r io.Reader) (map[string]*config.Value, error) {
	header := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("reading snapshot header: %w", err)
	}
	if !bytes.Equal(header, snapshotMagic) {
		return nil, fmt.Errorf("not a CNT snapshot (header %q)", header)
	}
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}
	defer dec.Close()
	encoded, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decompressing snapshot: %w", err)
	}
	data, err := DecodeMapping(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return data, nil
}

// SaveSnapshot writes a snapshot to path through a temporary file in
// the same directory, so a failed write never clobbers an existing
// snapshot.
func SaveSnapshot(path string, data map[string]*config.Value) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating temporary snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if err := WriteSnapshot(tmp, data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temporary snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a snapshot file written by SaveSnapshot.
func LoadSnapshot(path string) (map[string]*config.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	defer f.Close()
	data, err := ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	return data, nil
}
