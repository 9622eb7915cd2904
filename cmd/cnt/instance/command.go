// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package instance

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	libinstance "github.com/cnt-foundation/cnt/lib/instance"
	"github.com/spf13/pflag"
)

type createParams struct {
	Dir         string `flag:"dir,d" desc:"parent directory for the instance" default:"."`
	Description string `flag:"description" desc:"free-form description shown in listings"`
}

type listParams struct {
	cli.JSONOutput
	Dir string `flag:"dir,d" desc:"parent directory to list" default:"."`
}

// Command returns the "instance" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "instance",
		Summary: "Manage game instance directories",
		Description: `Manage game instance directories.

An instance is a directory with an instance.cnt descriptor at its
root; the descriptor carries the instance name and description, and
everything else in the directory belongs to the installation.`,
		Subcommands: []*cli.Command{
			createCommand(),
			listCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Create an instance under the current directory",
				Command:     `cnt instance create survival --description "main world"`,
			},
			{
				Description: "List instances under a directory",
				Command:     "cnt instance list --dir ~/instances",
			},
		},
	}
}

func createCommand() *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create a new instance directory",
		Usage:   "cnt instance create <name> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("create", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected <name>, got %d arguments", len(args))
			}
			inst, err := libinstance.Create(params.Dir, args[0], params.Description)
			if err != nil {
				return err
			}
			fmt.Printf("created %s\n", inst.Dir)
			return nil
		},
	}
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List instances under a directory",
		Usage:   "cnt instance list [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			instances, err := libinstance.List(params.Dir)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(instances); done {
				return err
			}
			if len(instances) == 0 {
				fmt.Println("no instances found")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDESCRIPTION\tPATH")
			for _, inst := range instances {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", inst.Name, inst.Description, inst.Dir)
			}
			return tw.Flush()
		},
	}
}
