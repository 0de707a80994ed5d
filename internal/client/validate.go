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
	"reflect"
	"slices"
	"strings"
)

// SortOrder is the value of the sortOrder query parameter.
type SortOrder string

const (
	// SortAscending sorts in ascending order.
	SortAscending SortOrder = "ASC"
	// SortDescending sorts in descending order.
	SortDescending SortOrder = "DESC"
)

var sortOrders = []string{string(SortAscending), string(SortDescending)}

// RequireNonNil returns a MissingParameterError when v is nil.
func RequireNonNil(op, param string, v any) error {
	if v == nil {
		return &MissingParameterError{Operation: op, Parameter: param}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return &MissingParameterError{Operation: op, Parameter: param}
		}
	}
	return nil
}

// RequireString returns a MissingParameterError when v is empty.
func RequireString(op, param, v string) error {
	if v == "" {
		return &MissingParameterError{Operation: op, Parameter: param}
	}
	return nil
}

// RequirePath returns a BlankParameterError when the path parameter v is
// empty after trimming whitespace.
func RequirePath(op, param, v string) error {
	if strings.TrimSpace(v) == "" {
		return &BlankParameterError{Operation: op, Parameter: param}
	}
	return nil
}

// ValidateSortBy returns an InvalidSortFieldError when v is set and not in
// allowed.
func ValidateSortBy[T ~string](op string, v T, allowed []string) error {
	if v == "" || slices.Contains(allowed, string(v)) {
		return nil
	}
	return &InvalidSortFieldError{Operation: op, Value: string(v), Allowed: allowed}
}

// ValidateSortOrder returns an InvalidFilterValueError when v is set and is
// neither ASC nor DESC.
func ValidateSortOrder(op string, v SortOrder) error {
	return ValidateFilter(op, "sortOrder", v, sortOrders)
}

// ValidateFilter returns an InvalidFilterValueError when v is set and not in
// allowed.
func ValidateFilter[T ~string](op, param string, v T, allowed []string) error {
	if v == "" || slices.Contains(allowed, string(v)) {
		return nil
	}
	return &InvalidFilterValueError{Operation: op, Parameter: param, Value: string(v), Allowed: allowed}
}
