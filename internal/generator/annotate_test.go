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

package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGoName(t *testing.T) {
	for _, test := range []struct {
		wire string
		want string
	}{
		{"id", "ID"},
		{"displayName", "DisplayName"},
		{"httpMonitorId", "HTTPMonitorID"},
		{"vaultId", "VaultID"},
		{"targets", "Targets"},
		{"apmDomainId", "ApmDomainID"},
		{"lifecycle_state", "LifecycleState"},
		{"active", "Active"},
		{"browser_config", "BrowserConfig"},
	} {
		t.Run(test.wire, func(t *testing.T) {
			if diff := cmp.Diff(test.want, goName(test.wire)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVarName(t *testing.T) {
	for _, test := range []struct {
		name string
		want string
	}{
		{"HttpMonitor", "httpMonitor"},
		{"ListKeys", "listKeys"},
		{"type", "typeValue"},
	} {
		if got := varName(test.name); got != test.want {
			t.Errorf("varName(%q) = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestComment(t *testing.T) {
	for _, test := range []struct {
		name     string
		doc      string
		fallback string
		want     string
	}{
		{"fallback", "", "X is a thing.", "// X is a thing."},
		{"doc", "X is documented.", "unused", "// X is documented."},
		{"multi-line", "X is\n  documented.\n", "", "// X is\n// documented."},
		{"blank line", "X.\n\nMore.", "", "// X.\n//\n// More."},
		{"code span", "X holds `name` verbatim.", "", "// X holds name verbatim."},
		{
			"link",
			"X is described in [the guide](https://example.com/guide).",
			"",
			"// X is described in [the guide].\n//\n// [the guide]: https://example.com/guide",
		},
		{"list", "X is one of:\n\n- HSM\n- SOFTWARE", "", "// X is one of:\n//\n//   - HSM\n//   - SOFTWARE"},
		{"code block", "Example:\n\n    x := 1", "", "// Example:\n//\n//\tx := 1"},
		{"intraword underscores", "X covers SCRIPTED_REST monitors.", "", "// X covers SCRIPTED_REST monitors."},
	} {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, comment(test.doc, test.fallback)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnnotate_Methods(t *testing.T) {
	data, err := annotate(loadWidgets(t))
	if err != nil {
		t.Fatal(err)
	}
	var create *methodData
	for _, m := range data.Methods {
		if m.Name == "CreateWidget" {
			create = m
		}
	}
	if create == nil {
		t.Fatal("CreateWidget not annotated")
	}
	var params []string
	for _, p := range create.Params {
		params = append(params, p.Name+" "+p.Type)
	}
	want := []string{
		"CreateWidgetDetails *CreateWidgetDetails",
		"OpcRequestID model.Value[string]",
		"OpcRetryToken model.Value[string]",
	}
	if diff := cmp.Diff(want, params); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !create.Mutating || create.Result != "*Widget" {
		t.Errorf("CreateWidget: Mutating = %v, Result = %q", create.Mutating, create.Result)
	}
}
