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

package testhelper

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// Recorder is a transport that records requests and answers them from a
// queue of replies. The last reply is repeated once the queue is exhausted;
// with no replies every request gets an empty 200.
type Recorder struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
	replies  []Reply
}

// Reply is a canned HTTP response.
type Reply struct {
	Status int
	Body   string
	Header http.Header
}

// NewRecorder returns a Recorder answering with replies in order.
func NewRecorder(replies ...Reply) *Recorder {
	return &Recorder{replies: replies}
}

// JSON returns a 200 reply carrying body as application/json.
func JSON(body string) Reply {
	return Reply{
		Status: http.StatusOK,
		Body:   body,
		Header: http.Header{"Content-Type": []string{"application/json"}},
	}
}

// Do implements the client transport.
func (r *Recorder) Do(req *http.Request) (*http.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var body string
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		body = string(b)
	}
	r.requests = append(r.requests, req)
	r.bodies = append(r.bodies, body)
	reply := Reply{Status: http.StatusOK}
	if n := len(r.replies); n > 0 {
		reply = r.replies[min(len(r.requests), n)-1]
	}
	header := reply.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode:    reply.Status,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(reply.Body)),
		ContentLength: int64(len(reply.Body)),
		Request:       req,
	}, nil
}

// Requests returns the recorded requests.
func (r *Recorder) Requests() []*http.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*http.Request(nil), r.requests...)
}

// Bodies returns the recorded request bodies.
func (r *Recorder) Bodies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.bodies...)
}

// Last returns the most recent request, or nil when none was sent.
func (r *Recorder) Last() *http.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return nil
	}
	return r.requests[len(r.requests)-1]
}
