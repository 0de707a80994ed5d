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

// Package sdkctl implements the sdkctl command, a small client for the
// generated service packages.
package sdkctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/cloudsdk/sdk/internal/client"
	"github.com/cloudsdk/sdk/internal/config"
	"github.com/cloudsdk/sdk/internal/model"
	"github.com/cloudsdk/sdk/internal/region"
	"github.com/cloudsdk/sdk/internal/services/dataflow"
	"github.com/cloudsdk/sdk/internal/services/healthchecks"
	"github.com/cloudsdk/sdk/internal/services/keymanagement"
	"github.com/cloudsdk/sdk/internal/yaml"
	"github.com/urfave/cli/v3"
)

const (
	defaultConfigPath = ".sdk/config.yaml"
	redacted          = "REDACTED"
)

// Run executes the sdkctl command with the given arguments.
func Run(ctx context.Context, args ...string) error {
	return newCommand(os.Stdout, nil).Run(ctx, args)
}

func setupLogger(verbose bool, level slog.Level) {
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewTextHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
}

// app carries state shared by the subcommands. A nil transport selects an
// http.Client bounded by the profile timeout.
type app struct {
	transport client.Transport
	profile   *config.Profile
}

// Command returns the sdkctl command tree writing output to out.
func Command(out io.Writer) *cli.Command {
	return newCommand(out, nil)
}

func newCommand(out io.Writer, transport client.Transport) *cli.Command {
	a := &app{transport: transport}
	return &cli.Command{
		Name:      "sdkctl",
		Usage:     "call cloud services from the command line",
		UsageText: "sdkctl [flags] <command> [arguments]",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "read profiles from `file`",
				Value: defaultConfigPath,
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "read SDK_* variables from `file`",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "use the profile `name`",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogger(cmd.Bool("verbose"), slog.LevelInfo)
			return ctx, nil
		},
		Commands: []*cli.Command{
			regionsCommand(),
			configCommand(a),
			healthchecksCommand(a),
			keysCommand(a),
			runsCommand(a),
		},
	}
}

// load resolves the profile once and reconfigures logging from it.
func (a *app) load(cmd *cli.Command) (*config.Profile, error) {
	if a.profile != nil {
		return a.profile, nil
	}
	root := cmd.Root()
	p, err := config.Load(config.LoadOptions{
		Path:    root.String("config"),
		EnvFile: root.String("env-file"),
		Profile: root.String("profile"),
	})
	if err != nil {
		return nil, err
	}
	level, err := p.SlogLevel()
	if err != nil {
		return nil, err
	}
	setupLogger(root.Bool("verbose"), level)
	a.profile = p
	return p, nil
}

// options builds client options from the resolved profile.
func (a *app) options(cmd *cli.Command) (client.Options, error) {
	p, err := a.load(cmd)
	if err != nil {
		return client.Options{}, err
	}
	timeout, err := p.TimeoutDuration()
	if err != nil {
		return client.Options{}, err
	}
	var transport client.Transport = &http.Client{Timeout: timeout}
	if a.transport != nil {
		transport = a.transport
	}
	if p.AuthToken != "" {
		transport = &client.SigningTransport{
			Base:   transport,
			Signer: client.NewStaticTokenSigner(p.AuthToken),
		}
	}
	opts := client.Options{
		Region:    p.Region,
		Endpoint:  p.Endpoint,
		Transport: transport,
		Logger:    slog.Default(),
		UserAgent: "sdkctl",
	}
	if p.Retry != nil {
		policy, err := p.Retry.Policy()
		if err != nil {
			return client.Options{}, err
		}
		opts.Retry = &policy
	} else {
		policy := client.DefaultRetryPolicy()
		opts.Retry = &policy
	}
	return opts, nil
}

func regionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "regions",
		Usage:     "list the known regions",
		UsageText: "sdkctl regions",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r, err := region.NewResolver(slog.Default())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REGION\tSHORT\tREALM\tDOMAIN")
			for _, reg := range r.Regions() {
				realm, _ := r.Realm(reg.Realm)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", reg.ID, reg.Short, reg.Realm, realm.Domain)
			}
			return w.Flush()
		},
	}
}

func configCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "inspect the resolved configuration",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "print the resolved profile as YAML",
				UsageText: "sdkctl config show",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					p, err := a.load(cmd)
					if err != nil {
						return err
					}
					shown := *p
					if shown.AuthToken != "" {
						shown.AuthToken = redacted
					}
					data, err := yaml.Marshal(&shown)
					if err != nil {
						return err
					}
					_, err = cmd.Root().Writer.Write(data)
					return err
				},
			},
		},
	}
}

func healthchecksCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "healthchecks",
		Usage: "work with HTTP monitors",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list the HTTP monitors of a compartment",
				UsageText: "sdkctl healthchecks list -compartment <id> [-sort-by <field>] [-sort-order ASC|DESC] [-limit <n>]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "compartment", Usage: "list monitors in compartment `id`", Required: true},
					&cli.StringFlag{Name: "sort-by", Usage: "sort by `field`"},
					&cli.StringFlag{Name: "sort-order", Usage: "ASC or DESC"},
					&cli.IntFlag{Name: "limit", Usage: "return at most `n` monitors"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts, err := a.options(cmd)
					if err != nil {
						return err
					}
					c, err := healthchecks.NewClient(opts)
					if err != nil {
						return err
					}
					req := &healthchecks.ListHttpMonitorsRequest{CompartmentID: cmd.String("compartment")}
					if v := cmd.String("sort-by"); v != "" {
						req.SortBy = model.Of(v)
					}
					if v := cmd.String("sort-order"); v != "" {
						req.SortOrder = model.Of(client.SortOrder(v))
					}
					if v := cmd.Int("limit"); v > 0 {
						req.Limit = model.Of(v)
					}
					resp, err := c.ListHttpMonitors(ctx, req)
					if err != nil {
						return err
					}
					return printJSON(cmd.Root().Writer, resp.Data)
				},
			},
			{
				Name:      "get",
				Usage:     "print one HTTP monitor",
				UsageText: "sdkctl healthchecks get <monitor-id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := singleArg(cmd, "monitor-id")
					if err != nil {
						return err
					}
					opts, err := a.options(cmd)
					if err != nil {
						return err
					}
					c, err := healthchecks.NewClient(opts)
					if err != nil {
						return err
					}
					resp, err := c.GetHttpMonitor(ctx, &healthchecks.GetHttpMonitorRequest{MonitorID: id})
					if err != nil {
						return err
					}
					return printJSON(cmd.Root().Writer, resp.Data)
				},
			},
		},
	}
}

func keysCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "work with vault keys",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "list the keys of a compartment",
				UsageText: "sdkctl keys list -compartment <id> [-protection-mode HSM|SOFTWARE] [-algorithm AES|RSA|ECDSA]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "compartment", Usage: "list keys in compartment `id`", Required: true},
					&cli.StringFlag{Name: "protection-mode", Usage: "only keys with protection `mode`"},
					&cli.StringFlag{Name: "algorithm", Usage: "only keys using `algorithm`"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts, err := a.options(cmd)
					if err != nil {
						return err
					}
					c, err := keymanagement.NewClient(opts)
					if err != nil {
						return err
					}
					req := &keymanagement.ListKeysRequest{CompartmentID: cmd.String("compartment")}
					if v := cmd.String("protection-mode"); v != "" {
						req.ProtectionMode = model.Of(keymanagement.ProtectionMode(v))
					}
					if v := cmd.String("algorithm"); v != "" {
						req.Algorithm = model.Of(keymanagement.KeyAlgorithm(v))
					}
					resp, err := c.ListKeys(ctx, req)
					if err != nil {
						return err
					}
					return printJSON(cmd.Root().Writer, resp.Data)
				},
			},
			{
				Name:      "get",
				Usage:     "print one key",
				UsageText: "sdkctl keys get <key-id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id, err := singleArg(cmd, "key-id")
					if err != nil {
						return err
					}
					opts, err := a.options(cmd)
					if err != nil {
						return err
					}
					c, err := keymanagement.NewClient(opts)
					if err != nil {
						return err
					}
					resp, err := c.GetKey(ctx, &keymanagement.GetKeyRequest{KeyID: id})
					if err != nil {
						return err
					}
					return printJSON(cmd.Root().Writer, resp.Data)
				},
			},
		},
	}
}

func runsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "work with data flow runs",
		Commands: []*cli.Command{
			{
				Name:      "get-log",
				Usage:     "download one log file of a run",
				UsageText: "sdkctl runs get-log -run <id> -name <log> [-out <file>]",
				Description: `The log is streamed to standard output unless -out names a file.
Log names are sent as given, without escaping.`,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "run", Usage: "read logs of run `id`", Required: true},
					&cli.StringFlag{Name: "name", Usage: "download the log `name`", Required: true},
					&cli.StringFlag{Name: "out", Usage: "write the log to `file`"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts, err := a.options(cmd)
					if err != nil {
						return err
					}
					c, err := dataflow.NewClient(opts)
					if err != nil {
						return err
					}
					sink := client.WithResponseWriter(cmd.Root().Writer)
					if out := cmd.String("out"); out != "" {
						sink = client.WithResponseFile(out)
					}
					req := &dataflow.GetRunLogRequest{RunID: cmd.String("run"), Name: cmd.String("name")}
					_, err = c.GetRunLog(ctx, req, sink)
					return err
				},
			},
		},
	}
}

func singleArg(cmd *cli.Command, name string) (string, error) {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s", cmd.UsageText)
	}
	if args[0] == "" {
		return "", fmt.Errorf("%s must not be empty", name)
	}
	return args[0], nil
}

// printJSON writes v as indented JSON. Models marshal through their ordered
// maps, so keys keep declaration order.
func printJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}
