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

import "io"

// CallOption configures a single call.
type CallOption func(*callSettings)

type callSettings struct {
	retry      *RetryPolicy
	requestID  string
	ifMatch    string
	retryToken string
	onChunk    func([]byte) error
	writer     io.Writer
	file       string
}

// WithRetryPolicy overrides the client's retry policy for this call.
func WithRetryPolicy(p RetryPolicy) CallOption {
	return func(s *callSettings) { s.retry = &p }
}

// WithRequestID sets the opc-request-id correlation header.
func WithRequestID(id string) CallOption {
	return func(s *callSettings) { s.requestID = id }
}

// WithIfMatch makes the call conditional on the resource's current ETag.
func WithIfMatch(etag string) CallOption {
	return func(s *callSettings) { s.ifMatch = etag }
}

// WithRetryToken sets the idempotency token instead of generating one.
func WithRetryToken(token string) CallOption {
	return func(s *callSettings) { s.retryToken = token }
}

// WithChunkHandler streams a binary response to fn, one chunk at a time, on
// the calling goroutine. An error from fn aborts the transfer.
func WithChunkHandler(fn func(chunk []byte) error) CallOption {
	return func(s *callSettings) { s.onChunk = fn }
}

// WithResponseWriter copies a binary response into w.
func WithResponseWriter(w io.Writer) CallOption {
	return func(s *callSettings) { s.writer = w }
}

// WithResponseFile writes a binary response to the file at path, creating or
// truncating it.
func WithResponseFile(path string) CallOption {
	return func(s *callSettings) { s.file = path }
}

func resolve(opts []CallOption) *callSettings {
	s := &callSettings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sinks returns the names of the configured binary response sinks.
func (s *callSettings) sinks() []string {
	var out []string
	if s.onChunk != nil {
		out = append(out, "WithChunkHandler")
	}
	if s.writer != nil {
		out = append(out, "WithResponseWriter")
	}
	if s.file != "" {
		out = append(out, "WithResponseFile")
	}
	return out
}
