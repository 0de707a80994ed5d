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

// Package token generates idempotency tokens for mutating requests.
package token

import "github.com/google/uuid"

// Generator returns a new opaque token on every call.
type Generator interface {
	NewToken() string
}

// UUIDGenerator returns random (version 4) UUID strings.
type UUIDGenerator struct{}

// NewToken implements Generator.
func (UUIDGenerator) NewToken() string {
	return uuid.NewString()
}

// Func adapts a plain function to a Generator.
type Func func() string

// NewToken implements Generator.
func (f Func) NewToken() string {
	return f()
}
