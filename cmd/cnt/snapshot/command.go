// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"fmt"

	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	"github.com/cnt-foundation/cnt/lib/codec"
	libconfig "github.com/cnt-foundation/cnt/lib/config"
)

// Command returns the "snapshot" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "snapshot",
		Summary: "Archive and restore configuration files",
		Description: `Archive a configuration file as a binary snapshot, or restore one.

A snapshot stores the document as deterministic CBOR, zstd-compressed.
Unlike the JSON/YAML conversions, snapshots preserve every value kind
exactly (Character stays Character, None stays None), so a snapshot
and restore cycle reproduces the document bit for bit.`,
		Subcommands: []*cli.Command{
			createCommand(),
			restoreCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Archive a configuration file",
				Command:     "cnt snapshot create settings.cnt settings.snap",
			},
			{
				Description: "Restore it elsewhere",
				Command:     "cnt snapshot restore settings.snap restored.cnt",
			},
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:    "create",
		Summary: "Write a snapshot of a configuration file",
		Usage:   "cnt snapshot create <file.cnt> <out.snap>",
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <file.cnt> <out.snap>, got %d arguments", len(args))
			}
			doc := libconfig.NewDocument()
			if err := doc.Open(args[0]); err != nil {
				return err
			}
			return codec.SaveSnapshot(args[1], doc.Mapping())
		},
	}
}

func restoreCommand() *cli.Command {
	return &cli.Command{
		Name:    "restore",
		Summary: "Restore a configuration file from a snapshot",
		Usage:   "cnt snapshot restore <in.snap> <out.cnt>",
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <in.snap> <out.cnt>, got %d arguments", len(args))
			}
			data, err := codec.LoadSnapshot(args[0])
			if err != nil {
				return err
			}
			doc := libconfig.NewDocument()
			for key, value := range data {
				doc.Set(key, value)
			}
			return doc.SaveTo(args[1])
		},
	}
}
