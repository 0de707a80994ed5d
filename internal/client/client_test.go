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

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestNewBaseClient_Endpoint(t *testing.T) {
	for _, test := range []struct {
		name       string
		opts       Options
		want       string
		wantRegion string
	}{
		{
			name: "endpoint override used verbatim",
			opts: Options{Endpoint: "https://proxy.internal:8443/api"},
			want: "https://proxy.internal:8443/api/20200101",
		},
		{
			name: "endpoint override trailing slash",
			opts: Options{Endpoint: "https://proxy.internal/"},
			want: "https://proxy.internal/20200101",
		},
		{
			name:       "region",
			opts:       Options{Region: "us-ashburn-1"},
			want:       "https://test.us-ashburn-1.oraclecloud.com/20200101",
			wantRegion: "us-ashburn-1",
		},
		{
			name: "endpoint wins over region",
			opts: Options{Region: "us-ashburn-1", Endpoint: "https://override"},
			want: "https://override/20200101",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			c, err := NewBaseClient(testService, test.opts)
			if err != nil {
				t.Fatal(err)
			}
			if c.Endpoint() != test.want {
				t.Errorf("Endpoint() = %q, want %q", c.Endpoint(), test.want)
			}
			if c.Region() != test.wantRegion {
				t.Errorf("Region() = %q, want %q", c.Region(), test.wantRegion)
			}
		})
	}
}

func TestNewBaseClient_NoEndpoint(t *testing.T) {
	if _, err := NewBaseClient(testService, Options{}); !errors.Is(err, ErrNoEndpoint) {
		t.Errorf("NewBaseClient() error = %v, want %v", err, ErrNoEndpoint)
	}
}

func TestSetRegion(t *testing.T) {
	var logs bytes.Buffer
	c, err := NewBaseClient(testService, Options{
		Region: "phx",
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetRegion("uk-gov-london-1"); err != nil {
		t.Fatal(err)
	}
	if want := "https://test.uk-gov-london-1.oraclegovcloud.uk/20200101"; c.Endpoint() != want {
		t.Errorf("Endpoint() = %q, want %q", c.Endpoint(), want)
	}
	c.SetEndpoint("http://localhost:8080")
	if want := "http://localhost:8080/20200101"; c.Endpoint() != want || c.Region() != "" {
		t.Errorf("after SetEndpoint: Endpoint() = %q, Region() = %q", c.Endpoint(), c.Region())
	}
	if err := c.SetRegion(""); err == nil {
		t.Error("SetRegion(\"\") expected an error")
	}
	for _, want := range []string{"client created", "region set", "service=test"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q:\n%s", want, logs.String())
		}
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsRetryable(t *testing.T) {
	for _, test := range []struct {
		name string
		err  error
		want bool
	}{
		{"throttled", &ServiceError{StatusCode: http.StatusTooManyRequests}, true},
		{"server error", &ServiceError{StatusCode: http.StatusInternalServerError}, true},
		{"unavailable", &ServiceError{StatusCode: http.StatusServiceUnavailable}, true},
		{"not implemented", &ServiceError{StatusCode: http.StatusNotImplemented}, false},
		{"incorrect state", &ServiceError{StatusCode: http.StatusConflict, Code: "IncorrectState"}, true},
		{"other conflict", &ServiceError{StatusCode: http.StatusConflict, Code: "Conflict"}, false},
		{"not found", &ServiceError{StatusCode: http.StatusNotFound}, false},
		{"wrapped", fmt.Errorf("call: %w", &ServiceError{StatusCode: http.StatusBadGateway}), true},
		{"network timeout", timeoutError{}, true},
		{"canceled", context.Canceled, false},
		{"validation", &BlankParameterError{Operation: "x", Parameter: "y"}, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := IsRetryable(test.err); got != test.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", test.err, got, test.want)
			}
		})
	}
}

func TestAttemptRetryer(t *testing.T) {
	p := DefaultRetryPolicy()
	p.MaxAttempts = 3
	p.Backoff.Initial = time.Millisecond
	p.Backoff.Max = time.Millisecond
	r := &attemptRetryer{policy: p, backoff: p.Backoff}
	retryable := &ServiceError{StatusCode: http.StatusServiceUnavailable}
	for i, want := range []bool{true, true, false} {
		d, ok := r.Retry(retryable)
		if ok != want {
			t.Errorf("Retry() #%d = %v, want %v", i+1, ok, want)
		}
		if ok && d > time.Millisecond {
			t.Errorf("Retry() #%d pause = %v, want at most 1ms", i+1, d)
		}
	}

	r = &attemptRetryer{policy: p, backoff: p.Backoff}
	if _, ok := r.Retry(&ServiceError{StatusCode: http.StatusBadRequest}); ok {
		t.Error("Retry() retried a client error")
	}
}

func TestNoRetryHasNoCallOptions(t *testing.T) {
	if got := NoRetry.callOptions(); len(got) != 0 {
		t.Errorf("NoRetry.callOptions() = %v, want none", got)
	}
	if got := DefaultRetryPolicy().callOptions(); len(got) != 1 {
		t.Errorf("DefaultRetryPolicy().callOptions() returned %d options, want 1", len(got))
	}
}
