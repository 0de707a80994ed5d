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
	"fmt"
	"net/http"
	"strings"
)

// MissingParameterError is returned before any I/O when a required
// parameter is absent.
type MissingParameterError struct {
	Operation string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Operation, e.Parameter)
}

// BlankParameterError is returned before any I/O when a required path
// parameter is empty or only whitespace.
type BlankParameterError struct {
	Operation string
	Parameter string
}

func (e *BlankParameterError) Error() string {
	return fmt.Sprintf("%s: parameter %q must not be blank", e.Operation, e.Parameter)
}

// InvalidSortFieldError is returned before any I/O when sortBy is not one of
// the fields the operation can sort by.
type InvalidSortFieldError struct {
	Operation string
	Value     string
	Allowed   []string
}

func (e *InvalidSortFieldError) Error() string {
	return fmt.Sprintf("%s: invalid sortBy %q, must be one of: %s", e.Operation, e.Value, strings.Join(e.Allowed, ", "))
}

// InvalidFilterValueError is returned before any I/O when a restricted query
// parameter has a value outside its allowed set.
type InvalidFilterValueError struct {
	Operation string
	Parameter string
	Value     string
	Allowed   []string
}

func (e *InvalidFilterValueError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q, must be one of: %s", e.Operation, e.Parameter, e.Value, strings.Join(e.Allowed, ", "))
}

// ConflictingSinkError is returned before any I/O when a call configures more
// than one way of consuming a binary response, or configures one for an
// operation that does not return binary content.
type ConflictingSinkError struct {
	Operation string
	Sinks     []string
}

func (e *ConflictingSinkError) Error() string {
	if len(e.Sinks) == 1 {
		return fmt.Sprintf("%s: %s is only supported for binary responses", e.Operation, e.Sinks[0])
	}
	return fmt.Sprintf("%s: response sinks are mutually exclusive, got %s", e.Operation, strings.Join(e.Sinks, " and "))
}

// ServiceError is returned when the service answers with a non-2xx status.
type ServiceError struct {
	Operation  string
	StatusCode int
	Code       string
	Message    string
	RequestID  string
	Header     http.Header
}

func (e *ServiceError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	s := fmt.Sprintf("%s: service error %d", e.Operation, e.StatusCode)
	if e.Code != "" {
		s += " " + e.Code
	}
	s += ": " + msg
	if e.RequestID != "" {
		s += " (opc-request-id " + e.RequestID + ")"
	}
	return s
}
