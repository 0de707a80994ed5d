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

package keymanagement

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cloudsdk/sdk/internal/client"
	"github.com/cloudsdk/sdk/internal/model"
	"github.com/cloudsdk/sdk/internal/testhelper"
	"github.com/google/go-cmp/cmp"
)

func newClient(t *testing.T, rec *testhelper.Recorder, opts ...func(*client.Options)) *Client {
	t.Helper()
	o := client.Options{Endpoint: "https://vault-1-management.kms.us-phoenix-1.oraclecloud.com", Transport: rec}
	for _, opt := range opts {
		opt(&o)
	}
	c, err := NewClient(o)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

const keyJSON = `{
	"id": "k1",
	"compartmentId": "c1",
	"displayName": "master",
	"keyShape": {"algorithm": "AES", "length": 32},
	"protectionMode": "HSM",
	"lifecycleState": "ENABLED",
	"timeCreated": "2026-03-01T10:00:00Z",
	"vaultId": "v1"
}`

func TestGetKey(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(keyJSON))
	c := newClient(t, rec)
	resp, err := c.GetKey(t.Context(), &GetKeyRequest{KeyID: "k1"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("https://vault-1-management.kms.us-phoenix-1.oraclecloud.com/20180608/keys/k1", rec.Last().URL.String()); diff != "" {
		t.Errorf("url mismatch (-want +got):\n%s", diff)
	}
	key := resp.Data
	if got, _ := key.LifecycleState().Get(); got != KeyLifecycleStateEnabled {
		t.Errorf("LifecycleState() = %q, want ENABLED", got)
	}
	shape, ok := key.KeyShape.Get()
	if !ok {
		t.Fatal("KeyShape unset")
	}
	if got, _ := shape.Algorithm().Get(); got != KeyAlgorithmAes {
		t.Errorf("Algorithm() = %q, want AES", got)
	}
	if got := shape.Length.OrZero(); got != 32 {
		t.Errorf("Length = %d, want 32", got)
	}
	want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if got := key.TimeCreated.OrZero(); !got.Equal(want) {
		t.Errorf("TimeCreated = %v, want %v", got, want)
	}
	if key.TimeOfDeletion.IsAssigned() {
		t.Error("TimeOfDeletion assigned, want unset")
	}
}

func TestGetKey_UnknownLifecycleStateIsLogged(t *testing.T) {
	logger, buf := testhelper.Logger(t)
	rec := testhelper.NewRecorder(testhelper.JSON(`{"id":"k1","lifecycleState":"ARCHIVED"}`))
	c := newClient(t, rec, func(o *client.Options) { o.Logger = logger })
	resp, err := c.GetKey(t.Context(), &GetKeyRequest{KeyID: "k1"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := resp.Data.LifecycleState().Get(); got != KeyLifecycleStateUnknown {
		t.Errorf("LifecycleState() = %q, want %q", got, KeyLifecycleStateUnknown)
	}
	if !strings.Contains(buf.String(), "value=ARCHIVED") {
		t.Errorf("log does not mention the unknown value:\n%s", buf.String())
	}
}

func TestDecodeKey_WireAndLocalNamesAgree(t *testing.T) {
	wire, err := DecodeKey(nil, map[string]any{
		"id":       "k1",
		"vaultId":  "v1",
		"keyShape": map[string]any{"algorithm": "ECDSA", "curveId": "NIST_P384"},
	})
	if err != nil {
		t.Fatal(err)
	}
	local, err := DecodeKey(nil, map[string]any{
		"id":        "k1",
		"vault_id":  "v1",
		"key_shape": map[string]any{"algorithm": "ECDSA", "curve_id": "NIST_P384"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !wire.Equal(local) {
		t.Error("models decoded from wire and local names differ")
	}
	if wire.Hash() != local.Hash() {
		t.Error("models decoded from wire and local names hash differently")
	}
	shape := wire.KeyShape.OrZero()
	if got, _ := shape.CurveID().Get(); got != KeyCurveIDNistP384 {
		t.Errorf("CurveID() = %q, want NIST_P384", got)
	}
}

func TestListKeys(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(`[{"id":"k1","algorithm":"RSA","lifecycleState":"PENDING_DELETION"}]`))
	c := newClient(t, rec)
	resp, err := c.ListKeys(t.Context(), &ListKeysRequest{
		CompartmentID:  "c1",
		ProtectionMode: model.Of(ProtectionModeSoftware),
		SortBy:         model.Of("TIMECREATED"),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]string{
		"compartmentId":  {"c1"},
		"protectionMode": {"SOFTWARE"},
		"sortBy":         {"TIMECREATED"},
	}
	if diff := cmp.Diff(want, map[string][]string(rec.Last().URL.Query())); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("got %d keys, want 1", len(resp.Data))
	}
	if got, _ := resp.Data[0].LifecycleState().Get(); got != KeyLifecycleStatePendingDeletion {
		t.Errorf("LifecycleState() = %q, want PENDING_DELETION", got)
	}
}

func TestListKeys_Validation(t *testing.T) {
	for _, test := range []struct {
		name    string
		req     *ListKeysRequest
		wantErr any
	}{
		{
			name: "sort field",
			req:  &ListKeysRequest{CompartmentID: "c1", SortBy: model.Of("displayName")},
			wantErr: &client.InvalidSortFieldError{
				Operation: "ListKeys",
				Value:     "displayName",
				Allowed:   []string{"TIMECREATED", "DISPLAYNAME"},
			},
		},
		{
			name: "protection mode",
			req:  &ListKeysRequest{CompartmentID: "c1", ProtectionMode: model.Of[ProtectionMode]("EXTERNAL")},
			wantErr: &client.InvalidFilterValueError{
				Operation: "ListKeys",
				Parameter: "protectionMode",
				Value:     "EXTERNAL",
				Allowed:   []string{"HSM", "SOFTWARE"},
			},
		},
		{
			name: "algorithm",
			req:  &ListKeysRequest{CompartmentID: "c1", Algorithm: model.Of[KeyAlgorithm]("DES")},
			wantErr: &client.InvalidFilterValueError{
				Operation: "ListKeys",
				Parameter: "algorithm",
				Value:     "DES",
				Allowed:   []string{"AES", "RSA", "ECDSA"},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			rec := testhelper.NewRecorder()
			c := newClient(t, rec)
			_, err := c.ListKeys(t.Context(), test.req)
			if diff := cmp.Diff(test.wantErr, err); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if n := len(rec.Requests()); n != 0 {
				t.Errorf("sent %d requests, want 0", n)
			}
		})
	}
}

func TestCreateKey(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(keyJSON))
	c := newClient(t, rec)
	details, err := DecodeCreateKeyDetails(nil, map[string]any{
		"compartment_id": "c1",
		"display_name":   "master",
		"key_shape":      map[string]any{"algorithm": "AES", "length": 32},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := details.ProtectionMode().Get(); got != ProtectionModeHsm {
		t.Errorf("ProtectionMode() = %q, want default HSM", got)
	}
	if _, err := c.CreateKey(t.Context(), &CreateKeyRequest{CreateKeyDetails: details}, client.WithRetryToken("caller-token")); err != nil {
		t.Fatal(err)
	}
	req := rec.Last()
	if got := req.Header.Get(client.HeaderRetryToken); got != "caller-token" {
		t.Errorf("opc-retry-token = %q, want caller-token", got)
	}
	want := `{"compartmentId":"c1","displayName":"master","keyShape":{"algorithm":"AES","length":32},"protectionMode":"HSM"}`
	if diff := cmp.Diff(want, rec.Bodies()[0]); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestScheduleKeyDeletion(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(`{"id":"k1","lifecycleState":"SCHEDULING_DELETION"}`))
	c := newClient(t, rec)
	when := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.ScheduleKeyDeletion(t.Context(), &ScheduleKeyDeletionRequest{
		KeyID:                      "k1",
		ScheduleKeyDeletionDetails: &ScheduleKeyDeletionDetails{TimeOfDeletion: model.Of(when)},
		IfMatch:                    model.Of("etag-1"),
	})
	if err != nil {
		t.Fatal(err)
	}
	req := rec.Last()
	if diff := cmp.Diff("/20180608/keys/k1/actions/scheduleDeletion", req.URL.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if req.Header.Get(client.HeaderRetryToken) == "" {
		t.Error("opc-retry-token not generated")
	}
	if got := req.Header.Get(client.HeaderIfMatch); got != "etag-1" {
		t.Errorf("if-match = %q, want etag-1", got)
	}
	if diff := cmp.Diff(`{"timeOfDeletion":"2026-11-01T00:00:00Z"}`, rec.Bodies()[0]); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestCancelKeyDeletion_BlankKeyID(t *testing.T) {
	rec := testhelper.NewRecorder()
	c := newClient(t, rec)
	_, err := c.CancelKeyDeletion(t.Context(), &CancelKeyDeletionRequest{KeyID: " "})
	var blank *client.BlankParameterError
	if !errors.As(err, &blank) {
		t.Fatalf("CancelKeyDeletion() error = %v, want BlankParameterError", err)
	}
	if n := len(rec.Requests()); n != 0 {
		t.Errorf("sent %d requests, want 0", n)
	}
}

func TestCancelKeyDeletion_Retries(t *testing.T) {
	rec := testhelper.NewRecorder(
		testhelper.Reply{Status: http.StatusServiceUnavailable},
		testhelper.JSON(`{"id":"k1","lifecycleState":"ENABLED"}`),
	)
	c := newClient(t, rec)
	policy := client.DefaultRetryPolicy()
	policy.Backoff.Initial = time.Millisecond
	policy.Backoff.Max = time.Millisecond
	resp, err := c.CancelKeyDeletion(t.Context(), &CancelKeyDeletionRequest{KeyID: "k1"}, client.WithRetryPolicy(policy))
	if err != nil {
		t.Fatal(err)
	}
	reqs := rec.Requests()
	if len(reqs) != 2 {
		t.Fatalf("sent %d requests, want 2", len(reqs))
	}
	first, second := reqs[0].Header.Get(client.HeaderRetryToken), reqs[1].Header.Get(client.HeaderRetryToken)
	if first == "" || first != second {
		t.Errorf("retry tokens %q and %q, want one stable token", first, second)
	}
	if got, _ := resp.Data.LifecycleState().Get(); got != KeyLifecycleStateEnabled {
		t.Errorf("LifecycleState() = %q, want ENABLED", got)
	}
}

func TestNewCreateKeyDetails(t *testing.T) {
	built := NewCreateKeyDetails()
	decoded, err := DecodeCreateKeyDetails(nil, map[string]any{})
	if err != nil {
		t.Fatal(err)
	}
	if !built.Equal(decoded) {
		t.Errorf("NewCreateKeyDetails() = %v, want %v", built.ToMap(), decoded.ToMap())
	}
	if got, _ := built.ProtectionMode().Get(); got != ProtectionModeHsm {
		t.Errorf("ProtectionMode() = %q, want default HSM", got)
	}
}
