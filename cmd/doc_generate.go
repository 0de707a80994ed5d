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

//go:build docgen

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/cloudsdk/sdk/internal/sdkctl"
	"github.com/cloudsdk/sdk/internal/sdkgen"
	"github.com/urfave/cli/v3"
)

// program describes a binary under cmd/ whose doc.go is generated.
type program struct {
	description string
	command     func(io.Writer) *cli.Command
}

var programs = map[string]program{
	"sdkgen": {
		description: `Sdkgen renders Go service packages from API descriptors.

Each descriptor lists the enums, messages, unions and methods of one service.
The generated package contains typed models with Decode, ToMap, Equal and
Hash, and a client with one method per operation.

Usage:

	sdkgen <command> [arguments]
`,
		command: sdkgen.Command,
	},
	"sdkctl": {
		description: `Sdkctl calls cloud services from the command line.

Settings come from a profile file (YAML or TOML), a .env file and SDK_*
environment variables. Results are printed as JSON.

Usage:

	sdkctl [flags] <command> [arguments]
`,
		command: sdkctl.Command,
	},
}

const docTemplate = `// Copyright {{.Year}} Google LLC
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

//go:generate go run -tags docgen ../doc_generate.go -cmd .

/*
{{.Description}}

The commands are:
{{range .Commands}}{{template "command" .}}{{end}}
*/
package main

{{define "command"}}

# {{.Name}}

{{.HelpText}}
{{if .Commands}}
{{range .Commands}}{{template "command" .}}{{end}}
{{end}}
{{end}}
`

// commandDoc is one section of the generated package comment.
type commandDoc struct {
	Name     string
	HelpText string
	Commands []commandDoc
}

func main() {
	var (
		dir  = flag.String("cmd", "", "directory of the command, for example ../../cmd/sdkgen")
		year = flag.String("year", "2026", "year written in the license header")
	)
	flag.Parse()
	if *dir == "" {
		log.Fatal("must specify -cmd flag")
	}
	if err := run(context.Background(), *dir, *year); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, dir, year string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	name := filepath.Base(abs)
	p, ok := programs[name]
	if !ok {
		return fmt.Errorf("no description for command %q", name)
	}
	commands, err := describe(ctx, p, []string{name}, p.command(io.Discard))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	tmpl := template.Must(template.New("doc").Parse(docTemplate))
	if err := tmpl.Execute(&buf, map[string]any{
		"Year":        year,
		"Description": sanitize(p.description),
		"Commands":    commands,
	}); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	out := filepath.Join(dir, "doc.go")
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return exec.CommandContext(ctx, "go", "tool", "goimports", "-w", out).Run()
}

// describe walks the subcommands of cmd, rendering the help of each one from
// a fresh command tree so no parsed flag state leaks between runs.
func describe(ctx context.Context, p program, path []string, cmd *cli.Command) ([]commandDoc, error) {
	var docs []commandDoc
	for _, sub := range cmd.Commands {
		if sub.Hidden || sub.Name == "help" {
			continue
		}
		full := append(slices.Clone(path), sub.Name)
		help, err := helpText(ctx, p, full)
		if err != nil {
			return nil, err
		}
		children, err := describe(ctx, p, full, sub)
		if err != nil {
			return nil, err
		}
		docs = append(docs, commandDoc{
			Name:     sanitize(strings.Join(full[1:], " ")),
			HelpText: sanitize(help),
			Commands: children,
		})
	}
	return docs, nil
}

func helpText(ctx context.Context, p program, path []string) (string, error) {
	var out bytes.Buffer
	args := append(slices.Clone(path), "--help")
	if err := p.command(&out).Run(ctx, args); err != nil {
		return "", fmt.Errorf("%s: %w", strings.Join(args, " "), err)
	}
	return out.String(), nil
}

// sanitize keeps help text from closing the package comment early.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
