// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	"github.com/cnt-foundation/cnt/lib/interop"
	"github.com/spf13/pflag"
)

type getParams struct {
	cli.JSONOutput
}

func getCommand() *cli.Command {
	var params getParams

	return &cli.Command{
		Name:    "get",
		Summary: "Print the value stored under a key",
		Usage:   "cnt config get <file> <key> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("get", &params)
		},
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

			value := doc.Get(key)
			if params.OutputJSON {
				return cli.WriteJSON(interop.ToNative(value))
			}
			fmt.Println(renderValue(value))
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Print a nested object",
				Command:     "cnt config get settings.cnt resolution",
			},
			{
				Description: "Print a value as JSON for scripting",
				Command:     "cnt config get settings.cnt resolution --json",
			},
		},
	}
}

func keysCommand() *cli.Command {
	var params getParams

	return &cli.Command{
		Name:    "keys",
		Summary: "List the top-level keys of a file",
		Usage:   "cnt config keys <file> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("keys", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected <file>, got %d arguments", len(args))
			}
			doc, err := openFile(args[0])
			if err != nil {
				return err
			}
			keys := doc.Keys()
			if done, err := params.EmitJSON(keys); done {
				return err
			}
			for _, key := range keys {
				fmt.Println(key)
			}
			return nil
		},
	}
}
