// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/cnt-foundation/cnt/cmd/cnt/cli"
	"github.com/cnt-foundation/cnt/lib/netutil"
	"github.com/spf13/pflag"
)

type downloadParams struct {
	Timeout time.Duration `flag:"timeout" desc:"overall download timeout (0 for none)" default:"0"`
}

// Command returns the "download" command.
func Command() *cli.Command {
	var params downloadParams

	return &cli.Command{
		Name:    "download",
		Summary: "Download a file over HTTP",
		Usage:   "cnt download <url> <path> [flags]",
		Description: `Download a URL to a local file.

The body is written to a temporary file and renamed into place on
success, so an interrupted or failed download never replaces an
existing file. Interrupting with Ctrl-C cancels the transfer.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("download", &params)
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <url> <path>, got %d arguments", len(args))
			}
			url, path := args[0], args[1]

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if params.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, params.Timeout)
				defer cancel()
			}

			logger := cli.NewCommandLogger().With("command", "download", "url", url)
			start := time.Now()
			status, err := netutil.DownloadFile(ctx, url, path)
			if err != nil {
				return err
			}
			logger.Info("download finished", "status", int(status), "elapsed", time.Since(start))
			return nil
		},
		Examples: []cli.Example{
			{
				Description: "Fetch a server jar",
				Command:     "cnt download https://example.com/server.jar server.jar",
			},
			{
				Description: "Give up after two minutes",
				Command:     "cnt download --timeout 2m https://example.com/server.jar server.jar",
			},
		},
	}
}
