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

package apmsynthetics

import (
	"errors"
	"testing"

	"github.com/cloudsdk/sdk/internal/client"
	"github.com/cloudsdk/sdk/internal/model"
	"github.com/cloudsdk/sdk/internal/testhelper"
	"github.com/google/go-cmp/cmp"
)

func newClient(t *testing.T, rec *testhelper.Recorder) *Client {
	t.Helper()
	c, err := NewClient(client.Options{Region: "eu-frankfurt-1", Transport: rec})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDecodeConfiguration(t *testing.T) {
	for _, test := range []struct {
		name     string
		in       map[string]any
		wantType string
		wantJSON string
	}{
		{
			name:     "browser",
			in:       map[string]any{"configType": "BROWSER_CONFIG", "verifyTexts": []any{map[string]any{"text": "Welcome"}}},
			wantType: "BrowserMonitorConfiguration",
			wantJSON: `{"configType":"BROWSER_CONFIG","isCertificateValidationEnabled":true,"verifyTexts":[{"text":"Welcome"}]}`,
		},
		{
			name:     "rest by local name",
			in:       map[string]any{"config_type": "REST_CONFIG", "request_method": "POST", "verify_response_codes": []any{"200"}},
			wantType: "RestMonitorConfiguration",
			wantJSON: `{"configType":"REST_CONFIG","requestMethod":"POST","verifyResponseCodes":["200"]}`,
		},
		{
			name:     "unknown type falls back to base",
			in:       map[string]any{"configType": "NETWORK_CONFIG", "isFailureRetried": true},
			wantType: "MonitorConfiguration",
			wantJSON: `{"configType":"NETWORK_CONFIG","isFailureRetried":true}`,
		},
		{
			name:     "missing type falls back to base",
			in:       map[string]any{"isFailureRetried": false},
			wantType: "MonitorConfiguration",
			wantJSON: `{"isFailureRetried":false}`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := DecodeConfiguration(nil, test.in)
			if err != nil {
				t.Fatal(err)
			}
			if got.TypeName() != test.wantType {
				t.Errorf("TypeName() = %q, want %q", got.TypeName(), test.wantType)
			}
			data, err := got.ToMap().MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.wantJSON, string(data)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeConfiguration_NotAnObject(t *testing.T) {
	_, err := DecodeConfiguration(nil, "REST_CONFIG")
	var mismatch *model.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want TypeMismatchError", err)
	}
}

func TestMonitor_RoundTripKeepsVariant(t *testing.T) {
	in := &Monitor{
		ID:            model.Of("mon1"),
		VantagePoints: model.Of([]string{"OraclePublic-us-ashburn-1"}),
		Configuration: model.Of[Configuration](&RestMonitorConfiguration{
			RequestHeaders: model.Of([]*Header{{HeaderName: model.Of("accept"), HeaderValue: model.Of("*/*")}}),
		}),
	}
	in.SetMonitorType(MonitorTypeRest)
	data, err := in.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var out Monitor
	if err := out.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	cfg, ok := out.Configuration.OrZero().(*RestMonitorConfiguration)
	if !ok {
		t.Fatalf("Configuration is %T, want *RestMonitorConfiguration", out.Configuration.OrZero())
	}
	if got, _ := cfg.RequestMethod().Get(); got != RequestMethodGet {
		t.Errorf("RequestMethod() = %q, want default GET", got)
	}
	if diff := cmp.Diff("accept", cfg.RequestHeaders.OrZero()[0].HeaderName.OrZero()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMonitor_EqualAcrossVariants(t *testing.T) {
	browser := &Monitor{Configuration: model.Of[Configuration](&BrowserMonitorConfiguration{})}
	rest := &Monitor{Configuration: model.Of[Configuration](&RestMonitorConfiguration{})}
	if browser.Equal(rest) {
		t.Error("monitors with different configuration variants compare equal")
	}
	same := &Monitor{Configuration: model.Of[Configuration](&BrowserMonitorConfiguration{})}
	if !browser.Equal(same) || browser.Hash() != same.Hash() {
		t.Error("identical monitors differ")
	}
}

func TestCreateMonitor(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(`{"id":"mon1","status":"ENABLED","configuration":{"configType":"BROWSER_CONFIG"}}`))
	c := newClient(t, rec)
	browser := NewBrowserMonitorConfiguration()
	browser.IsFailureRetried = model.Of(true)
	details := NewCreateMonitorDetails()
	details.DisplayName = model.Of("home page")
	details.Target = model.Of("https://example.com")
	details.Configuration = model.Of[Configuration](browser)
	if err := details.SetMonitorType(MonitorTypeBrowser); err != nil {
		t.Fatal(err)
	}
	resp, err := c.CreateMonitor(t.Context(), &CreateMonitorRequest{ApmDomainID: "dom1", CreateMonitorDetails: details})
	if err != nil {
		t.Fatal(err)
	}
	req := rec.Last()
	if diff := cmp.Diff("/20200630/monitors", req.URL.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if got := req.URL.Query().Get("apmDomainId"); got != "dom1" {
		t.Errorf("apmDomainId = %q, want dom1", got)
	}
	if req.Header.Get(client.HeaderRetryToken) == "" {
		t.Error("opc-retry-token not generated")
	}
	wantBody := `{"displayName":"home page","monitorType":"BROWSER","status":"ENABLED","target":"https://example.com",` +
		`"configuration":{"configType":"BROWSER_CONFIG","isFailureRetried":true,"isCertificateValidationEnabled":true}}`
	if diff := cmp.Diff(wantBody, rec.Bodies()[0]); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if _, ok := resp.Data.Configuration.OrZero().(*BrowserMonitorConfiguration); !ok {
		t.Errorf("Configuration is %T, want *BrowserMonitorConfiguration", resp.Data.Configuration.OrZero())
	}
}

func TestCreateMonitorDetails_StrictEnums(t *testing.T) {
	d := NewCreateMonitorDetails()
	var enumErr *model.InvalidEnumValueError
	if err := d.SetMonitorType("NETWORK"); !errors.As(err, &enumErr) {
		t.Errorf("SetMonitorType() error = %v, want InvalidEnumValueError", err)
	}
	if err := d.SetStatus("PAUSED"); !errors.As(err, &enumErr) {
		t.Errorf("SetStatus() error = %v, want InvalidEnumValueError", err)
	}
	decoded, err := DecodeCreateMonitorDetails(nil, map[string]any{"displayName": "m"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := decoded.Status().Get(); got != MonitorStatusEnabled {
		t.Errorf("Status() = %q, want default ENABLED", got)
	}
}

func TestMonitorOperations_RequireDomain(t *testing.T) {
	rec := testhelper.NewRecorder()
	c := newClient(t, rec)
	ctx := t.Context()
	calls := map[string]func() error{
		"CreateMonitor": func() error {
			_, err := c.CreateMonitor(ctx, &CreateMonitorRequest{CreateMonitorDetails: &CreateMonitorDetails{}})
			return err
		},
		"GetMonitor": func() error {
			_, err := c.GetMonitor(ctx, &GetMonitorRequest{MonitorID: "mon1"})
			return err
		},
		"ListMonitors": func() error {
			_, err := c.ListMonitors(ctx, &ListMonitorsRequest{})
			return err
		},
		"UpdateMonitor": func() error {
			_, err := c.UpdateMonitor(ctx, &UpdateMonitorRequest{MonitorID: "mon1", UpdateMonitorDetails: &UpdateMonitorDetails{}})
			return err
		},
		"DeleteMonitor": func() error {
			_, err := c.DeleteMonitor(ctx, &DeleteMonitorRequest{MonitorID: "mon1"})
			return err
		},
	}
	for op, call := range calls {
		t.Run(op, func(t *testing.T) {
			want := &client.MissingParameterError{Operation: op, Parameter: "apmDomainId"}
			if diff := cmp.Diff(want, call()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if n := len(rec.Requests()); n != 0 {
		t.Errorf("sent %d requests, want 0", n)
	}
}

func TestListMonitors(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(`[{"id":"mon1","monitorType":"SCRIPTED_BROWSER","status":"INVALID"}]`))
	c := newClient(t, rec)
	resp, err := c.ListMonitors(t.Context(), &ListMonitorsRequest{
		ApmDomainID: "dom1",
		MonitorType: model.Of(MonitorTypeScriptedBrowser),
		SortBy:      model.Of("status"),
		SortOrder:   model.Of(client.SortAscending),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]string{
		"apmDomainId": {"dom1"},
		"monitorType": {"SCRIPTED_BROWSER"},
		"sortOrder":   {"ASC"},
		"sortBy":      {"status"},
	}
	if diff := cmp.Diff(want, map[string][]string(rec.Last().URL.Query())); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if got, _ := resp.Data[0].Status().Get(); got != MonitorStatusInvalid {
		t.Errorf("Status() = %q, want INVALID", got)
	}

	_, err = c.ListMonitors(t.Context(), &ListMonitorsRequest{ApmDomainID: "dom1", Status: model.Of[MonitorStatus]("PAUSED")})
	var filterErr *client.InvalidFilterValueError
	if !errors.As(err, &filterErr) {
		t.Errorf("ListMonitors() error = %v, want InvalidFilterValueError", err)
	}
	if n := len(rec.Requests()); n != 1 {
		t.Errorf("sent %d requests, want 1", n)
	}
}

func TestUpdateMonitor(t *testing.T) {
	rec := testhelper.NewRecorder(testhelper.JSON(`{"id":"mon1","configuration":{"configType":"SCRIPTED_REST_CONFIG"}}`))
	c := newClient(t, rec)
	details := &UpdateMonitorDetails{RepeatIntervalInSeconds: model.Of(300)}
	if err := details.SetStatus(MonitorStatusDisabled); err != nil {
		t.Fatal(err)
	}
	resp, err := c.UpdateMonitor(t.Context(), &UpdateMonitorRequest{
		MonitorID:            "mon1",
		ApmDomainID:          "dom1",
		UpdateMonitorDetails: details,
		IfMatch:              model.Of("e2"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := rec.Last().Header.Get(client.HeaderIfMatch); got != "e2" {
		t.Errorf("if-match = %q, want e2", got)
	}
	base, ok := resp.Data.Configuration.OrZero().(*MonitorConfiguration)
	if !ok {
		t.Fatalf("Configuration is %T, want *MonitorConfiguration", resp.Data.Configuration.OrZero())
	}
	if diff := cmp.Diff("SCRIPTED_REST_CONFIG", base.ConfigType.OrZero()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
