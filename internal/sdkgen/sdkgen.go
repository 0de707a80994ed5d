// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sdkgen implements the sdkgen command, which renders Go service
// packages from API descriptors.
package sdkgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cloudsdk/sdk/internal/api"
	"github.com/cloudsdk/sdk/internal/generator"
	"github.com/urfave/cli/v3"
)

// Run executes the sdkgen command with the given arguments.
func Run(ctx context.Context, args ...string) error {
	return newCommand(os.Stdout).Run(ctx, args)
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewTextHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
}

// Command returns the sdkgen command tree writing help and results to out.
func Command(out io.Writer) *cli.Command {
	return newCommand(out)
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "sdkgen",
		Usage:     "generate Go service packages from API descriptors",
		UsageText: "sdkgen <command> [flags]",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogger(cmd.Bool("verbose"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCommand(),
			validateCommand(),
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "render the package for one descriptor",
		UsageText: "sdkgen generate -api <file> -out <directory> [-skip <name>]... [-include <name>]...",
		Description: `Examples:
  sdkgen generate -api internal/services/healthchecks/api.yaml -out internal/services/healthchecks
  sdkgen generate -api api.yaml -out out -include GetHttpMonitor

Elements listed with -include are kept together with everything they
reference; elements listed with -skip are removed. Only one of the two may
be used.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "api",
				Usage:    "read the descriptor from `file`",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "out",
				Usage:    "write the package into `directory`",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "skip",
				Usage: "remove the element `name` before generating",
			},
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "keep only the element `name` and its dependencies",
			},
			&cli.BoolFlag{
				Name:  "goimports",
				Usage: "run goimports over the generated files",
			},
			&cli.StringFlag{
				Name:  "year",
				Usage: "write `year` in the license header",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := api.Load(cmd.String("api"))
			if err != nil {
				return err
			}
			if err := api.SkipElements(a, cmd.StringSlice("include"), cmd.StringSlice("skip")); err != nil {
				return err
			}
			return generator.Generate(ctx, a, cmd.String("out"), generator.Options{
				Year:      cmd.String("year"),
				Goimports: cmd.Bool("goimports"),
			})
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check descriptors without generating code",
		UsageText: "sdkgen validate <file>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return fmt.Errorf("usage: sdkgen validate <file>...")
			}
			var errs []error
			for _, f := range files {
				a, err := api.Load(f)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.Root().Writer, "%s: %s %s (%d messages, %d methods)\n",
					f, a.Name, a.Version, len(a.Messages), len(a.Methods))
			}
			return errors.Join(errs...)
		},
	}
}
