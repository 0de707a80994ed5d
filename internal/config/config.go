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

// Package config loads client profiles from YAML or TOML files and overlays
// settings from .env files and the process environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cloudsdk/sdk/internal/client"
	"github.com/cloudsdk/sdk/internal/license"
	"github.com/cloudsdk/sdk/internal/yaml"
	"github.com/googleapis/gax-go/v2"
	"github.com/pelletier/go-toml/v2"
)

// DefaultProfileName is used when neither the caller, the environment, nor
// the file selects a profile.
const DefaultProfileName = "default"

// Environment variables recognized by ApplyEnv.
const (
	EnvProfile   = "SDK_PROFILE"
	EnvRegion    = "SDK_REGION"
	EnvEndpoint  = "SDK_ENDPOINT"
	EnvAuthToken = "SDK_AUTH_TOKEN"
	EnvLogLevel  = "SDK_LOG_LEVEL"
	EnvTimeout   = "SDK_TIMEOUT"
)

var (
	// ErrProfileNotFound is returned when a named profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrUnsupportedFormat is returned for files that are neither YAML nor
	// TOML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Config is the contents of a profile file.
type Config struct {
	// DefaultProfile names the profile used when none is selected.
	DefaultProfile string `yaml:"default_profile,omitempty" toml:"default_profile,omitempty"`

	// Profiles maps profile names to settings.
	Profiles map[string]*Profile `yaml:"profiles" toml:"profiles"`
}

// Profile holds the settings used to build service clients.
type Profile struct {
	// Region is a region identifier or short code, such as us-ashburn-1 or
	// iad.
	Region string `yaml:"region,omitempty" toml:"region,omitempty"`

	// Endpoint overrides region-based endpoint resolution.
	Endpoint string `yaml:"endpoint,omitempty" toml:"endpoint,omitempty"`

	// AuthToken is sent as a bearer token.
	AuthToken string `yaml:"auth_token,omitempty" toml:"auth_token,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level,omitempty" toml:"log_level,omitempty"`

	// Timeout bounds each call, as a Go duration string.
	Timeout string `yaml:"timeout,omitempty" toml:"timeout,omitempty"`

	Retry *Retry `yaml:"retry,omitempty" toml:"retry,omitempty"`
}

// Retry configures the client-level retry policy.
type Retry struct {
	MaxAttempts    int     `yaml:"max_attempts,omitempty" toml:"max_attempts,omitempty"`
	InitialBackoff string  `yaml:"initial_backoff,omitempty" toml:"initial_backoff,omitempty"`
	MaxBackoff     string  `yaml:"max_backoff,omitempty" toml:"max_backoff,omitempty"`
	Multiplier     float64 `yaml:"multiplier,omitempty" toml:"multiplier,omitempty"`
}

// Read reads the config file at path. The format is chosen by extension:
// .yaml and .yml for YAML, .toml for TOML.
func Read(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = yaml.ReadStrict[Config](path)
	case ".toml":
		cfg, err = readTOML(path)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]*Profile{}
	}
	return cfg, nil
}

func readTOML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write writes cfg to path in the format selected by its extension.
func Write(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Write(path, cfg)
	case ".toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return err
		}
		header := license.Comment("#", strconv.Itoa(time.Now().Year()))
		return os.WriteFile(path, append([]byte(header), data...), 0644)
	}
	return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Profile returns a copy of the named profile. An empty name selects the
// file's default profile, then DefaultProfileName.
func (c *Config) Profile(name string) (*Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	if name == "" {
		name = DefaultProfileName
	}
	p, ok := c.Profiles[name]
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	cp := *p
	if p.Retry != nil {
		r := *p.Retry
		cp.Retry = &r
	}
	return &cp, nil
}

// Validate checks that the profile can configure a client.
func (p *Profile) Validate() error {
	if p.Region == "" && p.Endpoint == "" {
		return client.ErrNoEndpoint
	}
	if _, err := p.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := p.SlogLevel(); err != nil {
		return err
	}
	if p.Retry != nil {
		if _, err := p.Retry.Policy(); err != nil {
			return err
		}
	}
	return nil
}

// TimeoutDuration parses Timeout. An empty Timeout returns zero.
func (p *Profile) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", p.Timeout, err)
	}
	return d, nil
}

// SlogLevel parses LogLevel. An empty LogLevel returns slog.LevelInfo.
func (p *Profile) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if p.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(p.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", p.LogLevel, err)
	}
	return l, nil
}

// Policy converts r to a client retry policy, filling unset fields from
// client.DefaultRetryPolicy.
func (r *Retry) Policy() (client.RetryPolicy, error) {
	p := client.DefaultRetryPolicy()
	if r.MaxAttempts != 0 {
		p.MaxAttempts = r.MaxAttempts
	}
	var err error
	if p.Backoff.Initial, err = durationOr(r.InitialBackoff, p.Backoff.Initial); err != nil {
		return client.RetryPolicy{}, fmt.Errorf("invalid initial_backoff: %w", err)
	}
	if p.Backoff.Max, err = durationOr(r.MaxBackoff, p.Backoff.Max); err != nil {
		return client.RetryPolicy{}, fmt.Errorf("invalid max_backoff: %w", err)
	}
	if r.Multiplier != 0 {
		if r.Multiplier < 1 {
			return client.RetryPolicy{}, fmt.Errorf("invalid multiplier %v: must be at least 1", r.Multiplier)
		}
		p.Backoff = gax.Backoff{Initial: p.Backoff.Initial, Max: p.Backoff.Max, Multiplier: r.Multiplier}
	}
	return p, nil
}

func durationOr(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
