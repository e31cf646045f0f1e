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

package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	fcb2b "github.com/fcb2b-project/fcb2b-go"
	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/logging"
)

// DefaultTimeout bounds every request issued through HTTPTransport.
const DefaultTimeout = 20 * time.Second

// Response is the outcome of a completed HTTP round trip. Body is fully
// read and the connection released before Response is returned.
type Response struct {
	// StatusCode and Status mirror the HTTP response line
	StatusCode int
	Status     string

	// ContentType is the response Content-Type header, unparsed
	ContentType string

	// Body is the raw response body, unmodified
	Body []byte
}

// OK reports whether the response carries a 2xx status.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// HTTPTransport issues the GET requests the fcB2B protocol consists of:
// catalog fetches and signed service invocations. It owns timeout policy
// and common headers so callers deal only in URLs and bodies.
type HTTPTransport struct {
	httpClient *http.Client
	userAgent  string
	accept     string
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithHTTPClient replaces the underlying HTTP client. The caller keeps
// responsibility for its transport settings; the timeout option still
// applies on top.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) {
		if c != nil {
			t.httpClient = c
		}
	}
}

// WithTimeout bounds each request. Zero or negative keeps the current
// timeout.
func WithTimeout(d time.Duration) Option {
	return func(t *HTTPTransport) {
		if d > 0 {
			t.httpClient.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(t *HTTPTransport) {
		if ua != "" {
			t.userAgent = ua
		}
	}
}

// WithAccept overrides the Accept header sent with every request.
func WithAccept(accept string) Option {
	return func(t *HTTPTransport) {
		t.accept = accept
	}
}

// NewHTTPTransport creates a transport with a pooled HTTP client, the
// default timeout, and XML content negotiation.
func NewHTTPTransport(opts ...Option) *HTTPTransport {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = DefaultTimeout

	t := &HTTPTransport{
		httpClient: client,
		userAgent:  fcb2b.UserAgent,
		accept:     "application/xml",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get issues a GET to rawURL and returns the fully-read response.
//
// Network failures and unreadable bodies return a nil Response and a
// *errors.FetchError. A non-2xx status also reports a *errors.FetchError,
// but alongside the Response: servers put diagnostic payloads in error
// bodies and those pass through unmodified for the caller to surface.
func (t *HTTPTransport) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.NewInvalidURLError(rawURL, err.Error())
	}
	req.Header.Set("User-Agent", t.userAgent)
	if t.accept != "" {
		req.Header.Set("Accept", t.accept)
	}

	log := logging.Ctx(ctx)
	log.Debug().Str("url", rawURL).Msg("GET")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewFetchError(rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewFetchError(rawURL, err)
	}

	result := &Response{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}

	log.Debug().
		Int("status", result.StatusCode).
		Int("bytes", len(result.Body)).
		Msg("response")

	if !result.OK() {
		return result, errors.NewStatusError(rawURL, resp.StatusCode)
	}
	return result, nil
}
