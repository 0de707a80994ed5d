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
	"net/http"
	"strconv"
)

// Response is the result of a successful call.
type Response[T any] struct {
	// Data is the decoded body. For binary calls that stream to a sink it
	// is nil.
	Data       T
	Header     http.Header
	StatusCode int
	// RequestID echoes the opc-request-id response header.
	RequestID string
	ETag      string
	// NextPage is the opc-next-page token of list operations.
	NextPage string
}

func newResponse[T any](resp *http.Response, data T) *Response[T] {
	return &Response[T]{
		Data:       data,
		Header:     resp.Header,
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(HeaderRequestID),
		ETag:       resp.Header.Get(HeaderETag),
		NextPage:   resp.Header.Get(HeaderNextPage),
	}
}

// ContentLength returns the content-length header, or -1 when absent.
func (r *Response[T]) ContentLength() int64 {
	n, err := strconv.ParseInt(r.Header.Get("content-length"), 10, 64)
	if err != nil {
		return -1
	}
	return n
}
