// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete cnt CLI command tree.
package commands

import (
	"fmt"

	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	configcmd "github.com/cnt-foundation/cnt/cmd/cnt/config"
	convertcmd "github.com/cnt-foundation/cnt/cmd/cnt/convert"
	downloadcmd "github.com/cnt-foundation/cnt/cmd/cnt/download"
	instancecmd "github.com/cnt-foundation/cnt/cmd/cnt/instance"
	javacmd "github.com/cnt-foundation/cnt/cmd/cnt/java"
	snapshotcmd "github.com/cnt-foundation/cnt/cmd/cnt/snapshot"
	"github.com/cnt-foundation/cnt/lib/version"
)

// Root builds and returns the complete cnt CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "cnt",
		Description: `cnt: configuration and game instance tooling.

Read, edit, convert, and archive CNT configuration files, manage game
instance directories, and discover Java runtimes.`,
		Subcommands: []*cli.Command{
			configcmd.Command(),
			convertcmd.Command(),
			snapshotcmd.Command(),
			instancecmd.Command(),
			javacmd.Command(),
			downloadcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("cnt %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Read a value from a configuration file",
				Command:     "cnt config get settings.cnt resolution",
			},
			{
				Description: "Reformat a hand-edited file",
				Command:     "cnt config fmt --write settings.cnt",
			},
			{
				Description: "Export a configuration as JSON",
				Command:     "cnt convert settings.cnt --to json",
			},
			{
				Description: "Archive a configuration with every kind preserved",
				Command:     "cnt snapshot create settings.cnt settings.snap",
			},
			{
				Description: "List the Java installations on this machine",
				Command:     "cnt java list",
			},
		},
	}
}
