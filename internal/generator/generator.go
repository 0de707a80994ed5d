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

// Package generator renders Go service packages from API descriptors.
//
// Each descriptor produces up to four files: enums.go, models.go,
// unions.go and client.go. Files with nothing to declare are not written,
// and stale copies of them are removed.
package generator

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cbroglie/mustache"
	"github.com/cloudsdk/sdk/internal/api"
	"github.com/cloudsdk/sdk/internal/command"
	"github.com/cloudsdk/sdk/internal/license"
	"golang.org/x/sync/errgroup"
)

//go:embed templates
var templates embed.FS

// Options configures Generate.
type Options struct {
	// Year is written in the license header. It defaults to the current
	// year.
	Year string
	// Goimports runs goimports over the output directory after rendering.
	Goimports bool
	// Commands overrides the paths of external commands, by name.
	Commands map[string]string
}

type generatedFile struct {
	template string
	output   string
	empty    func(*serviceData) bool
}

var generatedFiles = []generatedFile{
	{"templates/enums.go.mustache", "enums.go", func(d *serviceData) bool { return len(d.Enums) == 0 }},
	{"templates/models.go.mustache", "models.go", func(d *serviceData) bool { return len(d.Messages) == 0 }},
	{"templates/unions.go.mustache", "unions.go", func(d *serviceData) bool { return len(d.Unions) == 0 }},
	{"templates/client.go.mustache", "client.go", func(d *serviceData) bool { return len(d.Methods) == 0 }},
}

// Generate writes the Go package for a into outdir.
func Generate(ctx context.Context, a *api.API, outdir string, opts Options) error {
	if err := a.Validate(); err != nil {
		return err
	}
	data, err := annotate(a)
	if err != nil {
		return err
	}
	if opts.Year == "" {
		opts.Year = strconv.Itoa(time.Now().Year())
	}
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range generatedFiles {
		path := filepath.Join(outdir, f.output)
		if f.empty(data) {
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := render(f.template, data, opts.Year)
			if err != nil {
				return fmt.Errorf("%s: %w", f.output, err)
			}
			if err := os.WriteFile(path, content, 0644); err != nil {
				return err
			}
			slog.Debug("generated file", "service", a.Name, "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if opts.Goimports {
		exe := command.ExecutablePath(opts.Commands, "goimports")
		if err := command.RunInDir(ctx, outdir, nil, exe, "-w", "."); err != nil {
			return err
		}
	}
	slog.Info("generated service", "service", a.Name, "dir", outdir)
	return nil
}

// render expands one template and formats the result as Go source.
func render(name string, data *serviceData, year string) ([]byte, error) {
	tmpl, err := templates.ReadFile(name)
	if err != nil {
		return nil, err
	}
	body, err := mustache.RenderRaw(string(tmpl), true, data)
	if err != nil {
		return nil, err
	}
	src := []byte(license.Comment("//", year) + body)
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w\n%s", err, src)
	}
	return out, nil
}
