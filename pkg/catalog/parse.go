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
	"encoding/xml"
	"strings"

	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
)

// directoryDocument maps the service directory XML. The root element name
// is not checked; any document whose root holds ServiceProfile children
// parses.
type directoryDocument struct {
	Profiles []profileElement `xml:"ServiceProfile"`
}

// profileElement is one raw directory entry. The identity elements live in
// the core namespace (protocol.CoreNamespace); the Version block does not.
// Pointer fields distinguish an absent element from a present-but-empty
// one: absence of any of the four drops the entry.
type profileElement struct {
	Name        *string         `xml:"http://fcb2b.com/schemas/1.0/core Name"`
	Description *string         `xml:"http://fcb2b.com/schemas/1.0/core Description"`
	Anonymous   *string         `xml:"http://fcb2b.com/schemas/1.0/core AnonymousAccessPermitted"`
	Version     *versionElement `xml:"Version"`
}

// versionElement carries the HTTPS binding. Missing children default to
// empty strings rather than dropping the entry.
type versionElement struct {
	HTTPSRequestPath string `xml:"HTTPSRequestPath"`
	VersionNumber    string `xml:"VersionNumber"`
	Date             string `xml:"Date"`
}

// toProfile converts a raw entry, reporting false when a mandatory element
// is absent.
func (p *profileElement) toProfile() (*protocol.ServiceProfile, bool) {
	if p.Name == nil || p.Description == nil || p.Anonymous == nil || p.Version == nil {
		return nil, false
	}
	return &protocol.ServiceProfile{
		Name:                   strings.TrimSpace(*p.Name),
		Description:            strings.TrimSpace(*p.Description),
		AnonymousAccessAllowed: parseAccessFlag(*p.Anonymous),
		EndpointURL:            strings.TrimSpace(p.Version.HTTPSRequestPath),
		VersionNumber:          strings.TrimSpace(p.Version.VersionNumber),
		PublishedDate:          strings.TrimSpace(p.Version.Date),
	}, true
}

// parseAccessFlag is true iff the trimmed, lower-cased text is "true".
// Anything else, including empty text, is false.
func parseAccessFlag(s string) bool {
	return strings.ToLower(strings.TrimSpace(s)) == "true"
}

// ParseCatalog parses a service directory document into profiles. The
// document must be well-formed XML or the whole parse fails with
// *errors.ParseError; entries missing a mandatory element are dropped
// individually.
func ParseCatalog(data []byte) ([]*protocol.ServiceProfile, error) {
	profiles, _, err := parseDocument(data)
	if err != nil {
		return nil, errors.NewParseError("", err)
	}
	return profiles, nil
}

func parseDocument(data []byte) (profiles []*protocol.ServiceProfile, skipped int, err error) {
	var doc directoryDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, 0, err
	}

	profiles = make([]*protocol.ServiceProfile, 0, len(doc.Profiles))
	for i := range doc.Profiles {
		profile, ok := doc.Profiles[i].toProfile()
		if !ok {
			skipped++
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, skipped, nil
}
