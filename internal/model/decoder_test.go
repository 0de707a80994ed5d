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

package model

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/cloudsdk/sdk/internal/testhelper"
	"github.com/google/go-cmp/cmp"
)

func TestDecoder_LogsUnknownEnum(t *testing.T) {
	logger, buf := testhelper.Logger(t)
	if _, err := widgetSchema.FromMap(NewDecoder(logger), map[string]any{"shape": "OCTAGON"}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"unknown enum value", "model=Widget", "field=shape", "value=OCTAGON"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output %q does not contain %q", got, want)
		}
	}
}

func TestDecoder_NilIsQuiet(t *testing.T) {
	var d *Decoder
	if _, err := widgetSchema.FromMap(d, map[string]any{"shape": "OCTAGON"}); err != nil {
		t.Fatal(err)
	}
}

func TestSetLenientEnum_Logs(t *testing.T) {
	logger, buf := testhelper.Logger(t)
	prev := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(prev) })

	var v Value[shape]
	SetLenientEnum(&v, shapeEnum, "OVAL")
	if diff := cmp.Diff(Of[shape](UnknownEnumValue), v); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	var list Value[[]shape]
	SetLenientEnumList(&list, shapeEnum, []shape{"ROUND", "STAR"})
	if diff := cmp.Diff(Of([]shape{"ROUND", UnknownEnumValue}), list); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got := buf.String()
	for _, want := range []string{"unknown enum value", "enum=Shape", "value=OVAL", "value=STAR"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output %q does not contain %q", got, want)
		}
	}
	if strings.Contains(got, "value=ROUND") {
		t.Errorf("log output %q reports a known value", got)
	}
}
