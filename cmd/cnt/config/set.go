// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	libconfig "github.com/cnt-foundation/cnt/lib/config"
	"github.com/spf13/pflag"
)

type setParams struct {
	Add bool `flag:"add" desc:"append to an existing array instead of overwriting"`
}

func setCommand() *cli.Command {
	var params setParams

	return &cli.Command{
		Name:    "set",
		Summary: "Store a value under a key",
		Usage:   "cnt config set <file> <key> <value> [flags]",
		Description: `Store a value under a top-level key and rewrite the file.

The value argument is parsed as a CNT fragment, so scalars, objects,
and arrays all work: 42, 3.5, true, "text", 'c', None, {...}, [...].

With --add, when the key already holds an array the value is appended
to it; any other existing value is overwritten as usual.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("set", &params)
		},
		Run: func(args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("expected <file> <key> <value>, got %d arguments", len(args))
			}
			path, key := args[0], args[1]

			value, err := libconfig.ParseValue([]byte(args[2]))
			if err != nil {
				return fmt.Errorf("parsing value: %w", err)
			}

			doc, err := openFile(path)
			if err != nil {
				return err
			}
			if params.Add {
				doc.Add(key, value)
			} else {
				doc.Set(key, value)
			}
			return doc.Save()
		},
		Examples: []cli.Example{
			{
				Description: "Set a scalar",
				Command:     "cnt config set settings.cnt fullscreen true",
			},
			{
				Description: "Set a nested object",
				Command:     `cnt config set settings.cnt resolution '{"width": 1920, "height": 1080}'`,
			},
			{
				Description: "Append to an array",
				Command:     `cnt config set --add settings.cnt mods '"new-mod"'`,
			},
		},
	}
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:    "remove",
		Summary: "Delete a top-level key",
		Usage:   "cnt config remove <file> <key>",
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <file> <key>, got %d arguments", len(args))
			}
			doc, err := openFile(args[0])
			if err != nil {
				return err
			}
			key := args[1]
			if !doc.Has(key) {
				fmt.Fprintf(os.Stderr, "key %q not found in %s\n", key, args[0])
				return &cli.ExitError{Code: 1}
			}
			doc.Remove(key)
			return doc.Save()
		},
	}
}
