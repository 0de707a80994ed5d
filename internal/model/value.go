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

type presence uint8

const (
	unset presence = iota
	null
	set
)

// Value holds an attribute that is either unset, explicitly null, or set.
//
// The zero Value is unset. Unset attributes are omitted from ToMap output;
// null attributes are emitted with a nil value.
type Value[T any] struct {
	v     T
	state presence
}

// Of returns a Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, state: set}
}

// Null returns a Value explicitly assigned to null.
func Null[T any]() Value[T] {
	return Value[T]{state: null}
}

// Get returns the held value and whether it is set.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.state == set
}

// OrZero returns the held value, or the zero value of T when unset or null.
func (v Value[T]) OrZero() T {
	return v.v
}

// IsSet reports whether a non-null value is held.
func (v Value[T]) IsSet() bool { return v.state == set }

// IsNull reports whether the value was explicitly assigned null.
func (v Value[T]) IsNull() bool { return v.state == null }

// IsAssigned reports whether the value was assigned, including to null.
func (v Value[T]) IsAssigned() bool { return v.state != unset }

// Set stores x.
func (v *Value[T]) Set(x T) {
	v.v = x
	v.state = set
}

// SetNull marks the value as explicitly null.
func (v *Value[T]) SetNull() {
	var zero T
	v.v = zero
	v.state = null
}

// Clear returns the value to the unset state.
func (v *Value[T]) Clear() {
	var zero T
	v.v = zero
	v.state = unset
}

// Equal reports whether both values are in the same state and, when set,
// hold equal values.
func (v Value[T]) Equal(o Value[T]) bool {
	if v.state != o.state {
		return false
	}
	if v.state != set {
		return true
	}
	return valuesEqual(v.v, o.v)
}
