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

package catalog

import (
	"context"

	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/logging"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
	"github.com/fcb2b-project/fcb2b-go/pkg/transport"
)

// DefaultFetcher implements Fetcher over an HTTPTransport
type DefaultFetcher struct {
	transport *transport.HTTPTransport
}

// NewDefaultFetcher creates a fetcher using the given transport, or a
// default transport when t is nil.
func NewDefaultFetcher(t *transport.HTTPTransport) *DefaultFetcher {
	if t == nil {
		t = transport.NewHTTPTransport()
	}
	return &DefaultFetcher{transport: t}
}

// FetchProfiles retrieves the directory at url and returns its profiles
func (f *DefaultFetcher) FetchProfiles(ctx context.Context, url string) ([]*protocol.ServiceProfile, error) {
	c, err := f.FetchCatalog(ctx, url)
	if err != nil {
		return nil, err
	}
	return c.Profiles, nil
}

// FetchCatalog retrieves the directory at url and parses it.
//
// Transport failures and non-2xx statuses report *errors.FetchError; a
// body that is not well-formed XML reports *errors.ParseError. Individual
// directory entries missing a mandatory element are dropped, not fatal.
func (f *DefaultFetcher) FetchCatalog(ctx context.Context, url string) (*Catalog, error) {
	resp, err := f.transport.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	profiles, skipped, err := parseDocument(resp.Body)
	if err != nil {
		return nil, errors.NewParseError(url, err)
	}

	log := logging.Ctx(ctx)
	if skipped > 0 {
		log.Warn().
			Str("url", url).
			Int("skipped", skipped).
			Msg("dropped incomplete catalog entries")
	}
	log.Debug().
		Str("url", url).
		Int("profiles", len(profiles)).
		Msg("parsed service catalog")

	return &Catalog{
		URL:      url,
		Raw:      resp.Body,
		Profiles: profiles,
	}, nil
}
