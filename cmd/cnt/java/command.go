// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package java

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	libjava "github.com/cnt-foundation/cnt/lib/java"
	"github.com/spf13/pflag"
)

type listParams struct {
	cli.JSONOutput
	Deep bool `flag:"deep" desc:"also scan user directories recursively (slower)"`
}

// Command returns the "java" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "java",
		Summary: "Discover Java runtimes",
		Subcommands: []*cli.Command{
			listCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "List installations in the common locations",
				Command:     "cnt java list",
			},
			{
				Description: "Thorough scan including user directories",
				Command:     "cnt java list --deep",
			},
		},
	}
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List Java installations on this machine",
		Usage:   "cnt java list [flags]",
		Description: `Scan the platform's common installation directories, JAVA_HOME,
and the PATH for Java installations. With --deep, also recurse into
user directories where archives are typically unpacked by hand.

Each result reports the installation name, the publisher inferred from
the path, whether it is a JDK or a JRE, and the installation root.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			logger := cli.NewCommandLogger().With("command", "java/list", "deep", params.Deep)

			var installations []libjava.Info
			if params.Deep {
				installations = libjava.SearchDeep()
			} else {
				installations = libjava.SearchQuick()
			}
			logger.Info("scan finished", "found", len(installations))

			if done, err := params.EmitJSON(installations); done {
				return err
			}

			if len(installations) == 0 {
				fmt.Println("no Java installations found")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPUBLISHER\tTYPE\tPATH")
			for _, info := range installations {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Publisher, info.Structure, info.Path)
			}
			return tw.Flush()
		},
	}
}
