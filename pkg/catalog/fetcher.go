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

	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
)

// Fetcher retrieves a trading partner's service directory and parses it
// into service profiles
type Fetcher interface {
	// FetchProfiles retrieves the directory at url and returns its
	// well-formed service profiles
	FetchProfiles(ctx context.Context, url string) ([]*protocol.ServiceProfile, error)

	// FetchCatalog is FetchProfiles plus the raw directory document, for
	// callers that display or archive it
	FetchCatalog(ctx context.Context, url string) (*Catalog, error)
}

// Catalog is one fetched service directory: the document as served and the
// profiles parsed out of it.
type Catalog struct {
	// URL is the directory endpoint the catalog came from
	URL string

	// Raw is the XML document exactly as the server returned it
	Raw []byte

	// Profiles are the entries that carried every mandatory element.
	// Partial entries are dropped during parsing, never padded with
	// placeholder values.
	Profiles []*protocol.ServiceProfile
}

// Profile returns the profile with the given name, or nil. Names are
// unique within a directory, so the first match is the only match.
func (c *Catalog) Profile(name string) *protocol.ServiceProfile {
	if c == nil {
		return nil
	}
	for _, p := range c.Profiles {
		if p.Name == name {
			return p
		}
	}
	return nil
}
