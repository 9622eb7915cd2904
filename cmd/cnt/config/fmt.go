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

type fmtParams struct {
	Write       bool `flag:"write,w" desc:"rewrite the file instead of printing to stdout"`
	InlineLimit int  `flag:"inline-limit" desc:"max array length rendered on one line" default:"3"`
}

func fmtCommand() *cli.Command {
	var params fmtParams

	return &cli.Command{
		Name:    "fmt",
		Summary: "Reformat a file in canonical form",
		Usage:   "cnt config fmt <file> [flags]",
		Description: `Parse a file and re-render it in canonical form: four-space
indentation, sorted top-level keys, arrays up to the inline limit on
one line. Lenient parsing means fmt also normalizes files with missing
commas or stray text between entries.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("fmt", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected <file>, got %d arguments", len(args))
			}
			path := args[0]

			doc, err := openFile(path)
			if err != nil {
				return err
			}

			w := libconfig.NewWriter()
			w.ArrayInlineLimit = params.InlineLimit
			rendered := doc.RenderWith(w)

			if params.Write {
				if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
					return fmt.Errorf("rewriting %s: %w", path, err)
				}
				return nil
			}
			fmt.Print(rendered)
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Print the canonical form",
				Command:     "cnt config fmt settings.cnt",
			},
			{
				Description: "Rewrite in place with wider inline arrays",
				Command:     "cnt config fmt --write --inline-limit 8 settings.cnt",
			},
		},
	}
}
