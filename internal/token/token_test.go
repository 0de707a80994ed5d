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

package token

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator(t *testing.T) {
	var g Generator = UUIDGenerator{}
	seen := map[string]bool{}
	for range 100 {
		tok := g.NewToken()
		if _, err := uuid.Parse(tok); err != nil {
			t.Fatalf("NewToken() = %q, not a UUID: %v", tok, err)
		}
		if seen[tok] {
			t.Fatalf("NewToken() returned %q twice", tok)
		}
		seen[tok] = true
	}
}

func TestFunc(t *testing.T) {
	var g Generator = Func(func() string { return "fixed" })
	if got := g.NewToken(); got != "fixed" {
		t.Errorf("NewToken() = %q, want %q", got, "fixed")
	}
}
