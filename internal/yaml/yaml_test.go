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

package yaml

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cloudsdk/sdk/internal/license"
	"github.com/google/go-cmp/cmp"
)

type testProfile struct {
	Name   string `yaml:"name"`
	Region string `yaml:"region"`
}

func TestUnmarshal(t *testing.T) {
	got, err := Unmarshal[testProfile]([]byte("name: default\nregion: us-ashburn-1\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := &testProfile{Name: "default", Region: "us-ashburn-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalError(t *testing.T) {
	_, err := Unmarshal[testProfile]([]byte("name: [invalid"))
	if err == nil {
		t.Error("Unmarshal() expected error for invalid YAML")
	}
}

func TestUnmarshalStrict(t *testing.T) {
	for _, test := range []struct {
		name    string
		data    string
		want    *testProfile
		wantErr bool
	}{
		{
			name: "known fields",
			data: "name: a\nregion: b\n",
			want: &testProfile{Name: "a", Region: "b"},
		},
		{
			name: "empty document",
			data: "",
			want: &testProfile{},
		},
		{
			name:    "unknown field",
			data:    "name: a\nzone: b\n",
			wantErr: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := UnmarshalStrict[testProfile]([]byte(test.data))
			if test.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	input := &testProfile{Name: "default", Region: "eu-frankfurt-1"}
	data, err := Marshal(input)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal[testProfile](data)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(input, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadWrite(t *testing.T) {
	want := &testProfile{Name: "default", Region: "uk-london-1"}
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := Write(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := ReadStrict[testProfile](path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	year := strconv.Itoa(time.Now().Year())
	want := license.Comment("#", year) + `name: default
region: us-phoenix-1
`
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := Write(path, &testProfile{Name: "default", Region: "us-phoenix-1"}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(string(got), "# Copyright "+year+" Google LLC\n") {
		t.Errorf("missing license header:\n%s", got)
	}
}

func TestReadError(t *testing.T) {
	_, err := Read[testProfile]("/nonexistent/path/file.yaml")
	if err == nil {
		t.Error("Read() expected error for nonexistent file")
	}
}

func TestWriteError(t *testing.T) {
	err := Write("/nonexistent/path/file.yaml", &testProfile{Name: "test"})
	if err == nil {
		t.Error("Write() expected error for invalid path")
	}
}
