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

package dataflow

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudsdk/sdk/internal/client"
	"github.com/cloudsdk/sdk/internal/model"
	"github.com/cloudsdk/sdk/internal/testhelper"
	"github.com/google/go-cmp/cmp"
)

func newClient(t *testing.T, rec *testhelper.Recorder) *Client {
	t.Helper()
	c, err := NewClient(client.Options{Region: "PHX", Transport: rec})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewClient_ShortRegion(t *testing.T) {
	c := newClient(t, testhelper.NewRecorder())
	if diff := cmp.Diff("https://dataflow.us-phoenix-1.oraclecloud.com/20200129", c.Endpoint()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRun_Defaults(t *testing.T) {
	for _, test := range []struct {
		name string
		in   map[string]any
		want string
	}{
		{
			name: "absent",
			in:   map[string]any{"id": "r1"},
			want: `{"id":"r1","numExecutors":1,"idleTimeoutInMinutes":2880,"maxDurationInMinutes":0}`,
		},
		{
			name: "wire value kept",
			in:   map[string]any{"id": "r1", "numExecutors": 4},
			want: `{"id":"r1","numExecutors":4,"idleTimeoutInMinutes":2880,"maxDurationInMinutes":0}`,
		},
		{
			name: "local value kept",
			in:   map[string]any{"id": "r1", "idle_timeout_in_minutes": 30},
			want: `{"id":"r1","numExecutors":1,"idleTimeoutInMinutes":30,"maxDurationInMinutes":0}`,
		},
		{
			name: "null kept",
			in:   map[string]any{"id": "r1", "max_duration_in_minutes": nil},
			want: `{"id":"r1","numExecutors":1,"idleTimeoutInMinutes":2880,"maxDurationInMinutes":null}`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			run, err := DecodeRun(nil, test.in)
			if err != nil {
				t.Fatal(err)
			}
			got, err := run.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun_RoundTrip(t *testing.T) {
	created := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	for _, test := range []struct {
		name string
		run  func() *Run
	}{
		{
			name: "defaults only",
			run:  NewRun,
		},
		{
			name: "populated",
			run: func() *Run {
				run := NewRun()
				run.ID = model.Of("r1")
				run.Arguments = model.Of([]string{"--input", "${input}"})
				run.Parameters = model.Of([]*ApplicationParameter{{Name: model.Of("input"), Value: model.Of("oci://b@ns/in")}})
				run.Configuration = model.Of(map[string]string{"spark.app.name": "etl"})
				run.NumExecutors = model.Of(2)
				run.TimeCreated = model.Of(created)
				run.TotalOCpu = model.Null[int]()
				run.SetLanguage(ApplicationLanguagePython)
				run.SetLifecycleStateNull()
				return run
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			run := test.run()
			data, err := run.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			var got Run
			if err := got.UnmarshalJSON(data); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(run, &got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if run.Hash() != got.Hash() {
				t.Error("Hash() differs after round trip")
			}
		})
	}
}

func TestCreateRunDetails_Defaults(t *testing.T) {
	for _, test := range []struct {
		name    string
		details *CreateRunDetails
		want    string
	}{
		{
			name:    "constructor",
			details: NewCreateRunDetails(),
			want:    `{"numExecutors":1}`,
		},
		{
			name:    "zero value",
			details: &CreateRunDetails{},
			want:    `{}`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.details.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateRun(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(`{"id":"r1","lifecycleState":"ACCEPTED"}`))
	c := newClient(t, rec)
	details := NewCreateRunDetails()
	details.ApplicationID = model.Of("app1")
	details.CompartmentID = model.Of("c1")
	resp, err := c.CreateRun(t.Context(), &CreateRunRequest{
		CreateRunDetails: details,
		OpcRetryToken:    model.Of("caller"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"applicationId":"app1","compartmentId":"c1","numExecutors":1}`, rec.Bodies()[0]); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if got := rec.Last().Header.Get(client.HeaderRetryToken); got != "caller" {
		t.Errorf("opc-retry-token = %q, want caller", got)
	}
	if got, _ := resp.Data.LifecycleState().Get(); got != RunLifecycleStateAccepted {
		t.Errorf("LifecycleState() = %q, want ACCEPTED", got)
	}
}

func TestListRuns(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(`[{"id":"r1","language":"SQL"},{"id":"r2","language":"RUST"}]`))
	c := newClient(t, rec)
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	resp, err := c.ListRuns(t.Context(), &ListRunsRequest{
		CompartmentID:          "c1",
		LifecycleState:         model.Of(RunLifecycleStateSucceeded),
		TimeCreatedGreaterThan: model.Of(since),
		SortBy:                 model.Of("runDurationInMilliseconds"),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]string{
		"compartmentId":          {"c1"},
		"lifecycleState":         {"SUCCEEDED"},
		"timeCreatedGreaterThan": {"2026-01-01T00:00:00Z"},
		"sortBy":                 {"runDurationInMilliseconds"},
	}
	if diff := cmp.Diff(want, map[string][]string(rec.Last().URL.Query())); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	var langs []ApplicationLanguage
	for _, r := range resp.Data {
		l, _ := r.Language().Get()
		langs = append(langs, l)
	}
	if diff := cmp.Diff([]ApplicationLanguage{ApplicationLanguageSQL, ApplicationLanguageUnknown}, langs); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestListRuns_InvalidLifecycleState(t *testing.T) {
	rec := testhelper.NewRecorder()
	c := newClient(t, rec)
	_, err := c.ListRuns(t.Context(), &ListRunsRequest{
		CompartmentID:  "c1",
		LifecycleState: model.Of[RunLifecycleState]("PAUSED"),
	})
	var filterErr *client.InvalidFilterValueError
	if !errors.As(err, &filterErr) {
		t.Fatalf("ListRuns() error = %v, want InvalidFilterValueError", err)
	}
	if len(rec.Requests()) != 0 {
		t.Error("request sent despite invalid filter")
	}
}

func TestListRunLogs(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(`[{"name":"spark_driver_stdout.log.gz","runId":"r1","sizeInBytes":1024,"source":"DRIVER","type":"STDOUT"}]`))
	c := newClient(t, rec)
	resp, err := c.ListRunLogs(t.Context(), &ListRunLogsRequest{RunID: "r1", Limit: model.Of(50)})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("/20200129/runs/r1/logs", rec.Last().URL.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	log := resp.Data[0]
	if got, _ := log.Type().Get(); got != RunLogTypeStdout {
		t.Errorf("Type() = %q, want STDOUT", got)
	}
	if got, _ := log.Source().Get(); got != RunLogSourceDriver {
		t.Errorf("Source() = %q, want DRIVER", got)
	}
	if got := log.SizeInBytes.OrZero(); got != 1024 {
		t.Errorf("SizeInBytes = %d, want 1024", got)
	}
}

func TestGetRunLog_PathIsNotEscaped(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.Reply{Status: http.StatusOK, Body: "line 1\nline 2\n"})
	c := newClient(t, rec)
	resp, err := c.GetRunLog(t.Context(), &GetRunLogRequest{RunID: "r1", Name: "n 1"})
	if err != nil {
		t.Fatal(err)
	}
	req := rec.Last()
	if diff := cmp.Diff("/20200129/runs/r1/logs/n 1", req.URL.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if got := req.Header.Get(client.HeaderAccept); got != client.MediaBinary {
		t.Errorf("accept = %q, want %q", got, client.MediaBinary)
	}
	if diff := cmp.Diff("line 1\nline 2\n", string(resp.Data)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGetRunLog_Sinks(t *testing.T) {
	const content = "driver output"
	t.Run("writer", func(t *testing.T) {
		rec := testhelper.NewRecorder(testhelper.Reply{Status: http.StatusOK, Body: content})
		c := newClient(t, rec)
		var buf bytes.Buffer
		resp, err := c.GetRunLog(t.Context(), &GetRunLogRequest{RunID: "r1", Name: "stdout"}, client.WithResponseWriter(&buf))
		if err != nil {
			t.Fatal(err)
		}
		if resp.Data != nil {
			t.Errorf("Data = %q, want nil when streaming", resp.Data)
		}
		if diff := cmp.Diff(content, buf.String()); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("file", func(t *testing.T) {
		rec := testhelper.NewRecorder(testhelper.Reply{Status: http.StatusOK, Body: content})
		c := newClient(t, rec)
		path := filepath.Join(t.TempDir(), "stdout.log")
		if _, err := c.GetRunLog(t.Context(), &GetRunLogRequest{RunID: "r1", Name: "stdout"}, client.WithResponseFile(path)); err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(content, string(got)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("conflicting sinks", func(t *testing.T) {
		rec := testhelper.NewRecorder()
		c := newClient(t, rec)
		_, err := c.GetRunLog(t.Context(), &GetRunLogRequest{RunID: "r1", Name: "stdout"},
			client.WithResponseWriter(&bytes.Buffer{}),
			client.WithResponseFile(filepath.Join(t.TempDir(), "x")))
		var sinkErr *client.ConflictingSinkError
		if !errors.As(err, &sinkErr) {
			t.Fatalf("GetRunLog() error = %v, want ConflictingSinkError", err)
		}
		if len(rec.Requests()) != 0 {
			t.Error("request sent despite conflicting sinks")
		}
	})
}

func TestGetRunLog_BlankName(t *testing.T) {
	rec := testhelper.NewRecorder()
	c := newClient(t, rec)
	_, err := c.GetRunLog(t.Context(), &GetRunLogRequest{RunID: "r1", Name: " "})
	want := &client.BlankParameterError{Operation: "GetRunLog", Parameter: "name"}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if len(rec.Requests()) != 0 {
		t.Error("request sent despite blank name")
	}
}

func TestDeleteRun(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.Reply{Status: http.StatusNoContent})
	c := newClient(t, rec)
	if _, err := c.DeleteRun(t.Context(), &DeleteRunRequest{RunID: "r1"}, client.WithIfMatch("e1")); err != nil {
		t.Fatal(err)
	}
	req := rec.Last()
	if req.Method != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", req.Method)
	}
	if got := req.Header.Get(client.HeaderIfMatch); got != "e1" {
		t.Errorf("if-match = %q, want e1", got)
	}
	if got := req.Header.Get(client.HeaderRetryToken); got != "" {
		t.Errorf("opc-retry-token = %q, want none for a delete", got)
	}
}
