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
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestAsInt64(t *testing.T) {
	for _, test := range []struct {
		name    string
		raw     any
		want    int64
		wantErr bool
	}{
		{name: "json integer", raw: json.Number("42"), want: 42},
		{name: "json integral float", raw: json.Number("3.0"), want: 3},
		{name: "float", raw: 7.0, want: 7},
		{name: "numeric string", raw: "-12", want: -12},
		{name: "minimum", raw: float64(math.MinInt64), want: math.MinInt64},
		{name: "fraction", raw: 1.5, wantErr: true},
		{name: "above range", raw: 1e30, wantErr: true},
		{name: "below range", raw: -1e30, wantErr: true},
		{name: "two to the 63", raw: json.Number("9223372036854775808"), wantErr: true},
		{name: "json above range", raw: json.Number("1e30"), wantErr: true},
		{name: "infinity", raw: math.Inf(1), wantErr: true},
		{name: "not a number", raw: math.NaN(), wantErr: true},
		{name: "bool", raw: true, wantErr: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := AsInt64(nil, test.raw)
			if test.wantErr {
				var tm *TypeMismatchError
				if !errors.As(err, &tm) {
					t.Fatalf("AsInt64(%v) error = %v, want TypeMismatchError", test.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Errorf("AsInt64(%v) = %d, want %d", test.raw, got, test.want)
			}
		})
	}
}
