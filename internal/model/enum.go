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
	"slices"
)

// UnknownEnumValue is stored by lenient enum attributes in place of a value
// the client does not recognize.
const UnknownEnumValue = "UNKNOWN_ENUM_VALUE"

// EnumPolicy selects how an enum attribute treats values outside its allowed
// set.
type EnumPolicy int

const (
	// Lenient replaces unrecognized values with UnknownEnumValue.
	Lenient EnumPolicy = iota
	// Strict rejects unrecognized values with an InvalidEnumValueError.
	Strict
)

func (p EnumPolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// EnumSpec describes the allowed values of one enum attribute.
type EnumSpec struct {
	Name   string
	Policy EnumPolicy
	values []string
}

// NewEnum returns an EnumSpec for the given allowed values.
func NewEnum(name string, policy EnumPolicy, values ...string) *EnumSpec {
	return &EnumSpec{Name: name, Policy: policy, values: values}
}

// Values returns the allowed values in declaration order.
func (e *EnumSpec) Values() []string {
	return slices.Clone(e.values)
}

// Contains reports whether v is an allowed value.
func (e *EnumSpec) Contains(v string) bool {
	return slices.Contains(e.values, v)
}

// Normalize returns v when it is allowed and UnknownEnumValue otherwise. The
// second result reports whether v was recognized.
func (e *EnumSpec) Normalize(v string) (string, bool) {
	if e.Contains(v) {
		return v, true
	}
	return UnknownEnumValue, false
}

// check applies the policy to v, returning the value to store.
func (e *EnumSpec) check(v string) (string, bool, error) {
	n, ok := e.Normalize(v)
	if !ok && e.Policy == Strict {
		return "", false, &InvalidEnumValueError{Enum: e.Name, Value: v, Allowed: e.Values()}
	}
	return n, ok, nil
}

// SetEnum assigns v to dst under the policy of spec. A strict spec rejects an
// unrecognized value and leaves dst unchanged.
func SetEnum[T ~string](dst *Value[T], spec *EnumSpec, v T) error {
	n, _, err := spec.check(string(v))
	if err != nil {
		return err
	}
	dst.Set(T(n))
	return nil
}

// SetEnumList assigns vs to dst, applying the policy of spec to each element.
func SetEnumList[T ~string](dst *Value[[]T], spec *EnumSpec, vs []T) error {
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		n, _, err := spec.check(string(v))
		if err != nil {
			return err
		}
		out = append(out, T(n))
	}
	dst.Set(out)
	return nil
}

// SetLenientEnum assigns v to dst, storing UnknownEnumValue in place of a
// value outside spec. The substitution is logged through slog.Default.
func SetLenientEnum[T ~string](dst *Value[T], spec *EnumSpec, v T) {
	dst.Set(T(lenient(spec, string(v))))
}

// SetLenientEnumList is SetLenientEnum applied to each element of vs.
func SetLenientEnumList[T ~string](dst *Value[[]T], spec *EnumSpec, vs []T) {
	out := make([]T, len(vs))
	for i, v := range vs {
		out[i] = T(lenient(spec, string(v)))
	}
	dst.Set(out)
}

func lenient(spec *EnumSpec, v string) string {
	n, ok := spec.Normalize(v)
	if !ok {
		slog.Warn("unknown enum value", "enum", spec.Name, "value", v, "stored", UnknownEnumValue)
	}
	return n
}
