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

// Package client implements the call protocol shared by every generated
// service client: parameter validation, request assembly, idempotency
// tokens, retries and response decoding.
package client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cloudsdk/sdk/internal/model"
	"github.com/cloudsdk/sdk/internal/region"
	"github.com/cloudsdk/sdk/internal/token"
)

// ErrNoEndpoint is returned when a client is configured with neither a region
// nor an endpoint.
var ErrNoEndpoint = errors.New("either a region or an endpoint is required")

// ServiceInfo identifies a service API.
type ServiceInfo struct {
	Name string
	// EndpointTemplate contains {region} and {secondLevelDomain}
	// placeholders.
	EndpointTemplate string
	APIVersion       string
	// Version is the semantic version of the generated package. It is
	// appended to the default user agent when set.
	Version string
}

// Options configures a BaseClient. Zero values select defaults.
type Options struct {
	// Region is resolved through Resolver. Ignored when Endpoint is set.
	Region string
	// Endpoint overrides region resolution and is used verbatim.
	Endpoint string
	// Transport defaults to http.DefaultClient.
	Transport Transport
	// Resolver defaults to the built-in region catalog.
	Resolver *region.Resolver
	// Retry is the client-level default policy. Nil means no retries.
	Retry *RetryPolicy
	// Tokens defaults to token.UUIDGenerator.
	Tokens token.Generator
	// Logger defaults to discarding all records.
	Logger    *slog.Logger
	UserAgent string
}

// BaseClient holds the state shared by all operations of one service
// client. It is not safe for concurrent use while SetRegion or SetEndpoint
// may be called.
type BaseClient struct {
	info      ServiceInfo
	endpoint  string
	region    string
	transport Transport
	resolver  *region.Resolver
	retry     *RetryPolicy
	tokens    token.Generator
	logger    *slog.Logger
	decoder   *model.Decoder
	userAgent string
}

// NewBaseClient returns a client for the service described by info.
func NewBaseClient(info ServiceInfo, opts Options) (*BaseClient, error) {
	c := &BaseClient{
		info:      info,
		transport: opts.Transport,
		resolver:  opts.Resolver,
		retry:     opts.Retry,
		tokens:    opts.Tokens,
		logger:    opts.Logger,
		userAgent: opts.UserAgent,
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	c.logger = c.logger.With("service", info.Name)
	c.decoder = model.NewDecoder(c.logger)
	if c.transport == nil {
		c.transport = http.DefaultClient
	}
	if c.tokens == nil {
		c.tokens = token.UUIDGenerator{}
	}
	if c.userAgent == "" {
		c.userAgent = "cloudsdk-go/" + info.Name
		if info.Version != "" {
			c.userAgent += "/" + info.Version
		}
	}
	switch {
	case opts.Endpoint != "":
		c.SetEndpoint(opts.Endpoint)
	case opts.Region != "":
		if err := c.SetRegion(opts.Region); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s client: %w", info.Name, ErrNoEndpoint)
	}
	c.logger.Info("client created", "endpoint", c.endpoint, "region", c.region)
	return c, nil
}

// Endpoint returns the base URL including the API version.
func (c *BaseClient) Endpoint() string { return c.endpoint }

// Region returns the configured region, or "" when an endpoint override is
// in use.
func (c *BaseClient) Region() string { return c.region }

// Logger returns the client's logger.
func (c *BaseClient) Logger() *slog.Logger { return c.logger }

// Decoder returns the decoder used for responses.
func (c *BaseClient) Decoder() *model.Decoder { return c.decoder }

// SetEndpoint uses endpoint verbatim, followed by the API version.
func (c *BaseClient) SetEndpoint(endpoint string) {
	c.endpoint = strings.TrimSuffix(endpoint, "/") + "/" + c.info.APIVersion
	c.region = ""
	c.logger.Debug("endpoint set", "endpoint", c.endpoint)
}

// SetRegion resolves id through the region catalog and recomputes the
// endpoint.
func (c *BaseClient) SetRegion(id string) error {
	if c.resolver == nil {
		r, err := region.NewResolver(c.logger)
		if err != nil {
			return err
		}
		c.resolver = r
	}
	base, err := c.resolver.Endpoint(c.info.EndpointTemplate, id)
	if err != nil {
		return fmt.Errorf("%s client: %w", c.info.Name, err)
	}
	c.endpoint = base + "/" + c.info.APIVersion
	c.region = id
	c.logger.Info("region set", "region", id, "endpoint", c.endpoint)
	return nil
}

// SetRetryPolicy replaces the client-level default retry policy. Nil
// disables retries.
func (c *BaseClient) SetRetryPolicy(p *RetryPolicy) {
	c.retry = p
}

func (c *BaseClient) policy(s *callSettings) RetryPolicy {
	switch {
	case s.retry != nil:
		return *s.retry
	case c.retry != nil:
		return *c.retry
	}
	return NoRetry
}
