// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	libconfig "github.com/cnt-foundation/cnt/lib/config"
	"github.com/cnt-foundation/cnt/lib/interop"
	"github.com/spf13/pflag"
)

type convertParams struct {
	To  string `flag:"to" desc:"output format: cnt, json, or yaml" default:"json"`
	Out string `flag:"out,o" desc:"output file (default stdout)"`
}

// Command returns the "convert" command.
func Command() *cli.Command {
	var params convertParams

	return &cli.Command{
		Name:    "convert",
		Summary: "Convert between CNT, JSON, and YAML",
		Usage:   "cnt convert <file> [flags]",
		Description: `Convert a configuration file between formats.

The input format is inferred from the file extension: .json (JSONC
accepted), .yaml/.yml, anything else is read as CNT. The output format
is chosen with --to.

Two conversions are lossy out of the CNT model: Character values
become length-1 strings and None becomes null. Everything else
round-trips structurally.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("convert", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected <file>, got %d arguments", len(args))
			}
			return run(args[0], params.To, params.Out)
		},
		Examples: []cli.Example{
			{
				Description: "Print a CNT file as JSON",
				Command:     "cnt convert settings.cnt --to json",
			},
			{
				Description: "Import a JSON config into CNT",
				Command:     "cnt convert settings.json --to cnt --out settings.cnt",
			},
			{
				Description: "Produce YAML for another tool",
				Command:     "cnt convert settings.cnt --to yaml --out settings.yaml",
			},
		},
	}
}

func run(path, format, out string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	data, err := decode(path, content)
	if err != nil {
		return err
	}

	output, err := encode(data, format)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(out, output, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

// decode parses content according to the file extension.
func decode(path string, content []byte) (map[string]*libconfig.Value, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := interop.FromJSON(content)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return data, nil
	case ".yaml", ".yml":
		data, err := interop.FromYAML(content)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return data, nil
	default:
		data, err := libconfig.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return data, nil
	}
}

// encode renders the mapping in the requested output format.
func encode(data map[string]*libconfig.Value, format string) ([]byte, error) {
	switch format {
	case "json":
		return interop.ToJSON(data)
	case "yaml":
		return interop.ToYAML(data)
	case "cnt":
		doc := libconfig.NewDocument()
		for key, value := range data {
			doc.Set(key, value)
		}
		return []byte(doc.Render()), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want cnt, json, or yaml)", format)
	}
}
