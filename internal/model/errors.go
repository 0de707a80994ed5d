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
	"fmt"
	"strings"
)

// DuplicateFieldError is returned when an input map supplies the same
// attribute under both its wire name and its local name.
type DuplicateFieldError struct {
	Model string
	Wire  string
	Local string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("%s: both %q and %q are set, only one is allowed", e.Model, e.Wire, e.Local)
}

// TypeMismatchError is returned when an input value does not have the shape
// required by the attribute, or the root input is not a map.
type TypeMismatchError struct {
	Model string
	// Field is the wire name of the attribute; empty for the root input.
	Field string
	Want  string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: want %s input, got %s", e.Model, e.Want, e.Got)
	}
	return fmt.Sprintf("%s.%s: want %s, got %s", e.Model, e.Field, e.Want, e.Got)
}

// InvalidEnumValueError is returned when a strict enum attribute is assigned
// a value outside its allowed set.
type InvalidEnumValueError struct {
	Enum    string
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s, must be one of: %s", e.Value, e.Enum, strings.Join(e.Allowed, ", "))
}

func mismatch(want string, got any) error {
	return &TypeMismatchError{Want: want, Got: fmt.Sprintf("%T", got)}
}
