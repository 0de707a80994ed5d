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
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/googleapis/gax-go/v2"
)

// RetryPolicy controls how many times a call is attempted and how long to
// wait between attempts.
type RetryPolicy struct {
	// MaxAttempts includes the first attempt. Values below 2 disable retries.
	MaxAttempts int
	Backoff     gax.Backoff
	// ShouldRetry reports whether err is worth another attempt. Nil uses
	// IsRetryable.
	ShouldRetry func(error) bool
}

// NoRetry attempts every call exactly once.
var NoRetry = RetryPolicy{MaxAttempts: 1}

// DefaultRetryPolicy returns the policy used by clients that opt into
// retries without configuring one.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 8,
		Backoff: gax.Backoff{
			Initial:    time.Second,
			Max:        30 * time.Second,
			Multiplier: 2,
		},
		ShouldRetry: IsRetryable,
	}
}

func (p RetryPolicy) enabled() bool {
	return p.MaxAttempts > 1
}

// callOptions returns the gax options that apply p.
func (p RetryPolicy) callOptions() []gax.CallOption {
	if !p.enabled() {
		return nil
	}
	return []gax.CallOption{gax.WithRetry(func() gax.Retryer {
		return &attemptRetryer{policy: p, backoff: p.Backoff}
	})}
}

// attemptRetryer is a gax.Retryer bounded by RetryPolicy.MaxAttempts.
type attemptRetryer struct {
	policy   RetryPolicy
	backoff  gax.Backoff
	attempts int
}

func (r *attemptRetryer) Retry(err error) (time.Duration, bool) {
	r.attempts++
	if r.attempts >= r.policy.MaxAttempts {
		return 0, false
	}
	should := r.policy.ShouldRetry
	if should == nil {
		should = IsRetryable
	}
	if !should(err) {
		return 0, false
	}
	return r.backoff.Pause(), true
}

// IsRetryable reports whether err is a throttling response, a server error,
// or a transient network failure.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *ServiceError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode == http.StatusTooManyRequests:
			return true
		case se.StatusCode == http.StatusConflict && se.Code == "IncorrectState":
			return true
		case se.StatusCode >= 500 && se.StatusCode != http.StatusNotImplemented:
			return true
		}
		return false
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
