// Copyright (C) 2026 FCB2B Project
//
// This file is part of fcb2b-go.
//
// fcb2b-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fcb2b-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fcb2b-go.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fcb2b-project/fcb2b-go/pkg/catalog"
	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/logging"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
	"github.com/fcb2b-project/fcb2b-go/pkg/signer"
	"github.com/fcb2b-project/fcb2b-go/pkg/transport"
)

// Config carries the partner-specific settings a Client needs.
type Config struct {
	// ServicesURL is the partner's service directory endpoint
	ServicesURL string

	// APIKey identifies the caller; empty means the anonymous key
	APIKey string

	// SecretKey is the shared signing secret. Required for Sign and
	// Invoke, not for browsing the directory.
	SecretKey string

	// Timeout bounds each HTTP request; zero uses the transport default
	Timeout time.Duration
}

// Client is the high-level fcB2B client: it discovers services from the
// partner's directory and builds, signs, and issues requests against them.
type Client struct {
	config    Config
	transport *transport.HTTPTransport
	fetcher   catalog.Fetcher
	signer    signer.RequestSigner
	newID     func() string
	clock     func() time.Time
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithTransport replaces the HTTP transport shared by directory fetches
// and invocations.
func WithTransport(t *transport.HTTPTransport) ClientOption {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithFetcher replaces the catalog fetcher.
func WithFetcher(f catalog.Fetcher) ClientOption {
	return func(c *Client) {
		if f != nil {
			c.fetcher = f
		}
	}
}

// WithSigner replaces the request signer.
func WithSigner(s signer.RequestSigner) ClientOption {
	return func(c *Client) {
		if s != nil {
			c.signer = s
		}
	}
}

// WithIDGenerator replaces the correlation-identifier source. The default
// generates a random UUID per request.
func WithIDGenerator(fn func() string) ClientOption {
	return func(c *Client) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithClock replaces the timestamp source. The default is the system
// clock; tests inject a fixed clock for reproducible signatures.
func WithClock(fn func() time.Time) ClientOption {
	return func(c *Client) {
		if fn != nil {
			c.clock = fn
		}
	}
}

// New creates a Client. Missing configuration is reported by the
// operation that needs it, not here, so a directory-only client does not
// require a signing secret.
func New(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		config: cfg,
		transport: transport.NewHTTPTransport(
			transport.WithTimeout(cfg.Timeout),
		),
		signer: signer.NewDefaultRequestSigner(),
		newID:  uuid.NewString,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = catalog.NewDefaultFetcher(c.transport)
	}
	return c
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.config
}

// APIKey returns the effective API key: the configured one, or the
// anonymous key.
func (c *Client) APIKey() string {
	if c.config.APIKey == "" {
		return protocol.AnonymousAPIKey
	}
	return c.config.APIKey
}

// Services retrieves the partner's service directory.
func (c *Client) Services(ctx context.Context) (*catalog.Catalog, error) {
	if c.config.ServicesURL == "" {
		return nil, errors.NewConfigError("services_url", "no service directory endpoint configured", nil)
	}
	return c.fetcher.FetchCatalog(ctx, c.config.ServicesURL)
}

// BuildParams assembles the base parameter set for one request — a fresh
// correlation identifier, the current UTC timestamp, and the API key —
// with extra merged on top. Extra keys win on collision.
func (c *Client) BuildParams(extra map[string]string) map[string]string {
	params := protocol.BaseParams(c.newID(), c.clock(), c.APIKey())
	for k, v := range extra {
		params[k] = v
	}
	return params
}

// Sign builds and signs a request against endpointURL. The extra
// parameters are merged over a fresh base set from BuildParams; use the
// signer package directly to sign an exact parameter set.
func (c *Client) Sign(ctx context.Context, endpointURL string, extra map[string]string) (*signer.SignedRequest, error) {
	if c.config.SecretKey == "" {
		return nil, errors.NewConfigError("secret_key", "no signing secret configured", nil)
	}
	return c.signer.SignRequest(ctx, endpointURL, c.BuildParams(extra), c.config.SecretKey)
}

// Invoke signs and issues a request against the profile's endpoint.
//
// A non-2xx response returns the ServiceResponse carrying the server's
// error body together with a *errors.FetchError, so callers can surface
// the diagnostic payload. Transport failures return a nil response.
func (c *Client) Invoke(ctx context.Context, profile *protocol.ServiceProfile, extra map[string]string) (*ServiceResponse, error) {
	if !profile.Callable() {
		name := "<nil>"
		if profile != nil {
			name = profile.Name
		}
		return nil, errors.NewInvalidURLError("", "service "+name+" has no HTTPS binding")
	}

	signed, err := c.Sign(ctx, profile.EndpointURL, extra)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("service", profile.Name).
		Str("url", signed.URL).
		Msg("invoking service")

	return c.execute(ctx, signed)
}

// Get issues a previously signed URL, for callers that sign offline and
// invoke later. The response contract matches Invoke.
func (c *Client) Get(ctx context.Context, signedURL string) (*ServiceResponse, error) {
	return c.execute(ctx, &signer.SignedRequest{URL: signedURL})
}

func (c *Client) execute(ctx context.Context, signed *signer.SignedRequest) (*ServiceResponse, error) {
	resp, err := c.transport.Get(ctx, signed.URL)
	if resp == nil {
		return nil, err
	}

	return &ServiceResponse{
		StatusCode:   resp.StatusCode,
		Status:       resp.Status,
		ContentType:  resp.ContentType,
		Body:         resp.Body,
		SignedURL:    signed.URL,
		StringToSign: signed.StringToSign,
	}, err
}

// ServiceResponse is the outcome of one service invocation.
type ServiceResponse struct {
	// StatusCode and Status mirror the HTTP response line
	StatusCode int
	Status     string

	// ContentType is the response Content-Type header, unparsed
	ContentType string

	// Body is the response payload, passed through unmodified — including
	// server error bodies on non-2xx responses
	Body []byte

	// SignedURL is the URL that was issued
	SignedURL string

	// StringToSign is the canonical payload behind the signature, kept
	// for troubleshooting rejected requests. Empty when the URL was
	// signed elsewhere.
	StringToSign string
}

// OK reports whether the invocation returned a 2xx status.
func (r *ServiceResponse) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}
