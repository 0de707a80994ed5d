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
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// Transport sends one HTTP request. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// Signer authenticates outgoing requests.
type Signer interface {
	Sign(req *http.Request) error
}

// TokenSigner signs requests with a bearer token from an oauth2.TokenSource.
type TokenSigner struct {
	Source oauth2.TokenSource
}

// NewStaticTokenSigner returns a TokenSigner that always uses accessToken.
func NewStaticTokenSigner(accessToken string) *TokenSigner {
	return &TokenSigner{Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})}
}

// Sign implements Signer.
func (s *TokenSigner) Sign(req *http.Request) error {
	tok, err := s.Source.Token()
	if err != nil {
		return fmt.Errorf("fetch token: %w", err)
	}
	tok.SetAuthHeader(req)
	return nil
}

// SigningTransport signs each request before passing it to Base.
type SigningTransport struct {
	Base   Transport
	Signer Signer
}

// Do implements Transport.
func (t *SigningTransport) Do(req *http.Request) (*http.Response, error) {
	if t.Signer != nil {
		if err := t.Signer.Sign(req); err != nil {
			return nil, err
		}
	}
	base := t.Base
	if base == nil {
		base = http.DefaultClient
	}
	return base.Do(req)
}

// TransportFunc adapts a function to a Transport.
type TransportFunc func(req *http.Request) (*http.Response, error)

// Do implements Transport.
func (f TransportFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// drain discards the rest of body and closes it so the connection can be
// reused.
func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
