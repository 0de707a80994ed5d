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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/cloudsdk/sdk/internal/model"
	"github.com/googleapis/gax-go/v2"
	"github.com/googleapis/gax-go/v2/callctx"
)

const (
	chunkSize        = 32 * 1024
	maxErrorBodySize = 64 * 1024
)

// Call sends req and decodes the JSON response body with decode. A nil
// decode leaves Data at its zero value.
func Call[T any](ctx context.Context, c *BaseClient, req *Request, decode model.Converter[T], opts ...CallOption) (*Response[T], error) {
	s := resolve(opts)
	if sinks := s.sinks(); len(sinks) > 0 {
		return nil, &ConflictingSinkError{Operation: req.op.Name, Sinks: sinks}
	}
	resp, err := c.send(ctx, req, s)
	if err != nil {
		return nil, err
	}
	defer drain(resp.Body)

	var data T
	if decode != nil {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: read response: %w", req.op.Name, err)
		}
		if len(bytes.TrimSpace(body)) > 0 {
			raw, err := model.DecodeJSON(body)
			if err != nil {
				return nil, fmt.Errorf("%s: decode response: %w", req.op.Name, err)
			}
			if data, err = decode(c.decoder, raw); err != nil {
				return nil, fmt.Errorf("%s: decode response: %w", req.op.Name, err)
			}
		}
	}
	return newResponse(resp, data), nil
}

// CallBinary sends req and consumes the raw response body through the sink
// selected by the call options: a chunk handler, a writer, a file, or, when
// none is given, an in-memory buffer returned as Data.
func CallBinary(ctx context.Context, c *BaseClient, req *Request, opts ...CallOption) (*Response[[]byte], error) {
	s := resolve(opts)
	if sinks := s.sinks(); len(sinks) > 1 {
		return nil, &ConflictingSinkError{Operation: req.op.Name, Sinks: sinks}
	}
	resp, err := c.send(ctx, req, s)
	if err != nil {
		return nil, err
	}
	defer drain(resp.Body)

	var data []byte
	switch {
	case s.onChunk != nil:
		err = streamChunks(resp.Body, s.onChunk)
	case s.writer != nil:
		_, err = io.Copy(s.writer, resp.Body)
	case s.file != "":
		err = writeFile(s.file, resp.Body)
	default:
		data, err = io.ReadAll(resp.Body)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", req.op.Name, err)
	}
	return newResponse(resp, data), nil
}

// send performs the HTTP exchange, retrying according to the effective
// policy. Headers, including a generated retry token, are computed once and
// shared by every attempt.
func (c *BaseClient) send(ctx context.Context, req *Request, s *callSettings) (*http.Response, error) {
	op := req.op
	path, err := req.Path()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}
	var body []byte
	if req.body != nil {
		if body, err = req.body.ToMap().MarshalJSON(); err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op.Name, err)
		}
	}
	header := c.header(ctx, req, s)
	policy := c.policy(s)
	c.logger.Debug("calling operation",
		"operation", op.Name, "method", op.Method, "path", path, "max_attempts", max(policy.MaxAttempts, 1))

	var resp *http.Response
	attempt := 0
	err = gax.Invoke(ctx, func(ctx context.Context, _ gax.CallSettings) error {
		attempt++
		hreq, err := c.newHTTPRequest(ctx, op.Method, path, req.query, header, body)
		if err != nil {
			return err
		}
		r, err := c.transport.Do(hreq)
		if err != nil {
			c.logger.Debug("attempt failed", "operation", op.Name, "attempt", attempt, "error", err)
			return err
		}
		if r.StatusCode < 200 || r.StatusCode > 299 {
			err := serviceError(op.Name, r)
			c.logger.Debug("attempt failed", "operation", op.Name, "attempt", attempt, "status", r.StatusCode)
			return err
		}
		resp = r
		return nil
	}, policy.callOptions()...)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("operation succeeded", "operation", op.Name, "attempts", attempt, "status", resp.StatusCode)
	return resp, nil
}

func (c *BaseClient) header(ctx context.Context, req *Request, s *callSettings) http.Header {
	h := http.Header{}
	for k, vs := range callctx.HeadersFromContext(ctx) {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	for k, vs := range req.header {
		h[k] = append([]string(nil), vs...)
	}
	h.Set(HeaderAccept, req.op.accept())
	h.Set(HeaderContentType, req.op.contentType())
	h.Set(HeaderUserAgent, c.userAgent)
	if s.requestID != "" {
		h.Set(HeaderRequestID, s.requestID)
	}
	if s.ifMatch != "" {
		h.Set(HeaderIfMatch, s.ifMatch)
	}
	tok := s.retryToken
	if tok == "" {
		tok = h.Get(HeaderRetryToken)
	}
	if tok == "" && req.op.Mutating {
		tok = c.tokens.NewToken()
	}
	if tok != "" {
		h.Set(HeaderRetryToken, tok)
	}
	return h
}

func (c *BaseClient) newHTTPRequest(ctx context.Context, method, path string, query url.Values, header http.Header, body []byte) (*http.Request, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawPath = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	hreq, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return nil, err
	}
	hreq.Header = header.Clone()
	return hreq, nil
}

func serviceError(op string, resp *http.Response) error {
	defer drain(resp.Body)
	se := &ServiceError{
		Operation:  op,
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(HeaderRequestID),
		Header:     resp.Header,
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return se
	}
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil {
		se.Code = payload.Code
		se.Message = payload.Message
	} else {
		se.Message = strings.TrimSpace(string(data))
	}
	return se
}

func streamChunks(r io.Reader, fn func([]byte) error) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if herr := fn(buf[:n]); herr != nil {
				return herr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func writeFile(path string, r io.Reader) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(f, r)
	return err
}
