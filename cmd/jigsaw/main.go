// SPDX-License-Identifier: MIT

// Command jigsaw assembles a puzzle file of square tiles and prints the
// adjacency list, the corner product, the assembled layout and the result
// of the sea monster search.
//
// Usage:
//
//	jigsaw <input-file>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func newApp(stdout io.Writer, log logrus.FieldLogger) *cli.App {
	return &cli.App{
		Name:            "jigsaw",
		Usage:           "assemble square image tiles by their matching borders",
		ArgsUsage:       "<input-file>",
		HideHelpCommand: true,
		Writer:          stdout,
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				_ = cli.ShowAppHelp(ctx)
				return fmt.Errorf("expected exactly one input file, got %d arguments", ctx.NArg())
			}
			return solve(ctx.App.Writer, log, ctx.Args().First())
		},
	}
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newApp(os.Stdout, log).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(1)
	}
}
