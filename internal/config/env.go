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

package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environ returns the SDK_ variables from envFile, overridden by non-empty
// ones in the process environment. A missing envFile is not an error.
func Environ(envFile string) (map[string]string, error) {
	env := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		for k, v := range vars {
			if strings.HasPrefix(k, "SDK_") {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && v != "" && strings.HasPrefix(k, "SDK_") {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides the fields of p that have a non-empty variable in env.
func ApplyEnv(p *Profile, env map[string]string) {
	for key, field := range map[string]*string{
		EnvRegion:    &p.Region,
		EnvEndpoint:  &p.Endpoint,
		EnvAuthToken: &p.AuthToken,
		EnvLogLevel:  &p.LogLevel,
		EnvTimeout:   &p.Timeout,
	} {
		if v := env[key]; v != "" {
			*field = v
		}
	}
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// Path is the config file. A missing file yields an empty config.
	Path string
	// EnvFile is a .env file. A missing file is ignored.
	EnvFile string
	// Profile overrides SDK_PROFILE and the file's default profile.
	Profile string
}

// Load resolves a profile from the config file and the environment. When
// the file has no matching profile but the environment supplies a region or
// endpoint, the profile is built from the environment alone.
func Load(opts LoadOptions) (*Profile, error) {
	env, err := Environ(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	cfg := &Config{Profiles: map[string]*Profile{}}
	if opts.Path != "" {
		c, err := Read(opts.Path)
		switch {
		case err == nil:
			cfg = c
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}
	name := opts.Profile
	if name == "" {
		name = env[EnvProfile]
	}
	p, err := cfg.Profile(name)
	if errors.Is(err, ErrProfileNotFound) && (env[EnvRegion] != "" || env[EnvEndpoint] != "") {
		p, err = &Profile{}, nil
	}
	if err != nil {
		return nil, err
	}
	ApplyEnv(p, env)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// WriteEnv writes the non-empty fields of p to envFile in .env format.
func WriteEnv(envFile string, p *Profile) error {
	vars := map[string]string{}
	for key, v := range map[string]string{
		EnvRegion:    p.Region,
		EnvEndpoint:  p.Endpoint,
		EnvAuthToken: p.AuthToken,
		EnvLogLevel:  p.LogLevel,
		EnvTimeout:   p.Timeout,
	} {
		if v != "" {
			vars[key] = v
		}
	}
	return godotenv.Write(vars, envFile)
}
