// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	libconfig "github.com/cnt-foundation/cnt/lib/config"
)

// Command returns the "config" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "config",
		Summary: "Read and edit configuration files",
		Description: `Read and edit CNT configuration files.

A configuration file is a sequence of top-level key/value entries in
the CNT text format. These subcommands parse the file, apply one
operation, and (for mutating operations) write the re-rendered file
back in canonical form: four-space indentation, sorted top-level keys.`,
		Subcommands: []*cli.Command{
			getCommand(),
			setCommand(),
			removeCommand(),
			keysCommand(),
			fmtCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Read a value",
				Command:     "cnt config get settings.cnt resolution",
			},
			{
				Description: "Set a value from a CNT fragment",
				Command:     `cnt config set settings.cnt resolution '{"width": 1920, "height": 1080}'`,
			},
			{
				Description: "Reformat a file in place",
				Command:     "cnt config fmt --write settings.cnt",
			},
		},
	}
}

// openFile opens path as a configuration document.
func openFile(path string) (*libconfig.Document, error) {
	doc := libconfig.NewDocument()
	if err := doc.Open(path); err != nil {
		return nil, err
	}
	return doc, nil
}

// renderValue renders a value in the canonical multi-line form.
func renderValue(v *libconfig.Value) string {
	return libconfig.NewWriter().Render(v)
}
