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
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cloudsdk/sdk/internal/model"
)

// Media types negotiated by operations.
const (
	MediaJSON   = "application/json"
	MediaBinary = "application/octet-stream"
)

// Header names set by the call layer.
const (
	HeaderAccept      = "accept"
	HeaderContentType = "content-type"
	HeaderRequestID   = "opc-request-id"
	HeaderIfMatch     = "if-match"
	HeaderRetryToken  = "opc-retry-token"
	HeaderNextPage    = "opc-next-page"
	HeaderETag        = "etag"
	HeaderUserAgent   = "user-agent"
)

// Operation describes one REST endpoint.
type Operation struct {
	// Name identifies the operation in logs and errors.
	Name   string
	Method string
	// Path is the template relative to the API version, with {param}
	// placeholders.
	Path string
	// Accept and ContentType default to MediaJSON, or MediaBinary for Accept
	// when Binary is set.
	Accept      string
	ContentType string
	// Mutating operations receive an opc-retry-token when the caller does
	// not supply one.
	Mutating bool
	// Binary operations return raw bytes.
	Binary bool
}

func (op *Operation) accept() string {
	switch {
	case op.Accept != "":
		return op.Accept
	case op.Binary:
		return MediaBinary
	}
	return MediaJSON
}

func (op *Operation) contentType() string {
	if op.ContentType != "" {
		return op.ContentType
	}
	return MediaJSON
}

// Request collects the parameters of one call to an Operation.
type Request struct {
	op         *Operation
	pathParams map[string]string
	query      url.Values
	header     http.Header
	body       model.Model
}

// NewRequest returns an empty request for op.
func NewRequest(op *Operation) *Request {
	return &Request{
		op:         op,
		pathParams: map[string]string{},
		query:      url.Values{},
		header:     http.Header{},
	}
}

// Operation returns the operation the request targets.
func (r *Request) Operation() *Operation { return r.op }

// PathParam binds the {name} placeholder of the path template to value.
func (r *Request) PathParam(name, value string) *Request {
	r.pathParams[name] = value
	return r
}

// Query adds a query parameter.
func (r *Request) Query(name, value string) *Request {
	r.query.Add(name, value)
	return r
}

// Header sets a request header.
func (r *Request) Header(name, value string) *Request {
	r.header.Set(name, value)
	return r
}

// Body sets the model serialized as the request body.
func (r *Request) Body(m model.Model) *Request {
	r.body = m
	return r
}

// QueryValues returns the query parameters collected so far.
func (r *Request) QueryValues() url.Values { return r.query }

// Path returns the path template with every placeholder substituted.
func (r *Request) Path() (string, error) {
	return Substitute(r.op.Path, r.pathParams)
}

// SetQuery adds v under name when it holds a value. Unset and null values
// are skipped, and so are empty strings, which the validators treat as
// absent.
func SetQuery[T any](r *Request, name string, v model.Value[T]) {
	x, ok := v.Get()
	if !ok {
		return
	}
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.String && rv.Len() == 0 {
		return
	}
	if rv.Kind() == reflect.Slice {
		for i := range rv.Len() {
			r.query.Add(name, formatParam(rv.Index(i).Interface()))
		}
		return
	}
	r.query.Add(name, formatParam(x))
}

func formatParam(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}

// Substitute replaces every {name} placeholder in template with the value in
// params. Values are inserted as given, without URL encoding.
func Substitute(template string, params map[string]string) (string, error) {
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("path template %q: unterminated placeholder", template)
		}
		name := rest[open+1 : open+end]
		v, ok := params[name]
		if !ok {
			return "", fmt.Errorf("path template %q: no value for {%s}", template, name)
		}
		b.WriteString(rest[:open])
		b.WriteString(v)
		rest = rest[open+end+1:]
	}
}
