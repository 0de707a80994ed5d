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
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudsdk/sdk/internal/client"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var wantConfig = &Config{
	DefaultProfile: "prod",
	Profiles: map[string]*Profile{
		"prod": {
			Region:   "us-ashburn-1",
			LogLevel: "info",
			Timeout:  "30s",
			Retry: &Retry{
				MaxAttempts:    5,
				InitialBackoff: "500ms",
				MaxBackoff:     "10s",
				Multiplier:     1.5,
			},
		},
		"dev": {
			Endpoint:  "http://localhost:8080",
			AuthToken: "dev-token",
			LogLevel:  "debug",
		},
	},
}

func TestRead(t *testing.T) {
	for _, path := range []string{"testdata/profiles.yaml", "testdata/profiles.toml"} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			got, err := Read(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(wantConfig, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("profiles: {}\nzone: x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name    string
		path    string
		wantErr error
	}{
		{"unsupported extension", filepath.Join(dir, "profiles.ini"), ErrUnsupportedFormat},
		{"missing file", filepath.Join(dir, "missing.yaml"), os.ErrNotExist},
		{"unknown key", unknown, nil},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Read(test.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if test.wantErr != nil && !errors.Is(err, test.wantErr) {
				t.Errorf("Read() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestWriteRead(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Write(path, wantConfig); err != nil {
				t.Fatal(err)
			}
			got, err := Read(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(wantConfig, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	for _, test := range []struct {
		name    string
		profile string
		want    *Profile
		wantErr error
	}{
		{
			name: "file default",
			want: wantConfig.Profiles["prod"],
		},
		{
			name:    "named",
			profile: "dev",
			want:    wantConfig.Profiles["dev"],
		},
		{
			name:    "missing",
			profile: "staging",
			wantErr: ErrProfileNotFound,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := wantConfig.Profile(test.profile)
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("Profile() error = %v, want %v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if got == test.want {
				t.Error("Profile() returned the stored profile instead of a copy")
			}
		})
	}
}

func TestRetryPolicy(t *testing.T) {
	got, err := wantConfig.Profiles["prod"].Retry.Policy()
	if err != nil {
		t.Fatal(err)
	}
	if got.MaxAttempts != 5 || got.Backoff.Initial != 500*time.Millisecond ||
		got.Backoff.Max != 10*time.Second || got.Backoff.Multiplier != 1.5 {
		t.Errorf("Policy() = %+v", got)
	}

	defaults, err := (&Retry{}).Policy()
	if err != nil {
		t.Fatal(err)
	}
	want := client.DefaultRetryPolicy()
	if diff := cmp.Diff(want, defaults, cmpopts.IgnoreFields(client.RetryPolicy{}, "ShouldRetry"), cmpopts.IgnoreUnexported(want.Backoff)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []*Retry{
		{InitialBackoff: "soon"},
		{MaxBackoff: "-"},
		{Multiplier: 0.5},
	} {
		if _, err := bad.Policy(); err == nil {
			t.Errorf("Policy(%+v) expected an error", bad)
		}
	}
}

func TestProfileValidate(t *testing.T) {
	for _, test := range []struct {
		name    string
		profile *Profile
		wantErr bool
	}{
		{"region", &Profile{Region: "iad"}, false},
		{"endpoint", &Profile{Endpoint: "http://x"}, false},
		{"neither", &Profile{}, true},
		{"bad timeout", &Profile{Region: "iad", Timeout: "forever"}, true},
		{"bad log level", &Profile{Region: "iad", LogLevel: "chatty"}, true},
		{"bad retry", &Profile{Region: "iad", Retry: &Retry{Multiplier: 0.1}}, true},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := test.profile.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("Validate() = %v, want error %v", err, test.wantErr)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	for _, test := range []struct {
		level string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	} {
		got, err := (&Profile{LogLevel: test.level}).SlogLevel()
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", test.level, got, test.want)
		}
	}
}
