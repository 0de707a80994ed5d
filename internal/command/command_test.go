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

package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	if err := Run(t.Context(), "sh", "-c", "true"); err != nil {
		t.Fatal(err)
	}
}

func TestRunError(t *testing.T) {
	err := Run(t.Context(), "sh", "-c", "echo invalid-subcommand-bad-bad-bad >&2; exit 3")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid-subcommand-bad-bad-bad") {
		t.Errorf("error should include the command output, got: %v", err)
	}
}

func TestRunInDir(t *testing.T) {
	dir := t.TempDir()
	if err := RunInDir(t.Context(), dir, nil, "sh", "-c", "touch marker"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Errorf("command did not run in %s: %v", dir, err)
	}
}

func TestRunInDir_SetsVariable(t *testing.T) {
	const (
		name  = "SDKGEN_TEST_VAR"
		value = "value"
	)
	err := RunInDir(t.Context(), "", map[string]string{name: value},
		"sh", "-c", fmt.Sprintf("test \"$%s\" = \"%s\"", name, value))
	if err != nil {
		t.Fatalf("RunInDir() = %v, want %v", err, nil)
	}
}

func TestRunInDir_VariableNotSet(t *testing.T) {
	const (
		name  = "SDKGEN_TEST_VAR"
		value = "value"
	)
	err := RunInDir(t.Context(), "", map[string]string{}, "sh", "-c", fmt.Sprintf("test \"$%s\" = \"%s\"", name, value))
	if err == nil {
		t.Fatalf("RunInDir() = %v, want non-nil", err)
	}
}

func TestAvailable(t *testing.T) {
	if !Available("sh") {
		t.Error("Available(sh) = false")
	}
	if Available("no-such-command-bad-bad-bad") {
		t.Error("Available() = true for a missing command")
	}
}

func TestExecutablePath(t *testing.T) {
	for _, test := range []struct {
		name      string
		overrides map[string]string
		command   string
		want      string
	}{
		{
			name:      "override found",
			overrides: map[string]string{"goimports": "/opt/bin/goimports", "gofmt": "/usr/bin/gofmt"},
			command:   "goimports",
			want:      "/opt/bin/goimports",
		},
		{
			name:      "override not found",
			overrides: map[string]string{"gofmt": "/usr/bin/gofmt"},
			command:   "goimports",
			want:      "goimports",
		},
		{
			name:    "no overrides",
			command: "goimports",
			want:    "goimports",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := ExecutablePath(test.overrides, test.command)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
