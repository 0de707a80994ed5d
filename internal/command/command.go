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

// Package command runs external programs used as optional post-processing
// steps, such as goimports on generated code.
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Run executes a program in the current directory and captures any error
// output.
func Run(ctx context.Context, command string, arg ...string) error {
	return RunInDir(ctx, "", nil, command, arg...)
}

// RunInDir executes a program in dir with optional extra environment
// variables. An empty dir uses the current directory. If env is empty the
// command inherits the environment of the calling process.
func RunInDir(ctx context.Context, dir string, env map[string]string, command string, arg ...string) error {
	cmd := exec.CommandContext(ctx, command, arg...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}
	slog.Debug("running command", "cmd", cmd.String(), "dir", dir)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%v: %v\n%s", cmd, err, output)
	}
	return nil
}

// Available reports whether command can be found in PATH.
func Available(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

// ExecutablePath returns the override for commandName, or commandName
// itself when there is none.
func ExecutablePath(overrides map[string]string, commandName string) string {
	if exe, ok := overrides[commandName]; ok {
		return exe
	}
	return commandName
}
