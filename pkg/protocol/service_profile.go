package protocol

import (
	"fmt"
	"strings"
)

// ServiceProfile describes a single remotely invocable service as published
// in a trading partner's service directory.
//
// A profile is the unit of discovery: the catalog document a partner serves
// contains one profile per advertised service, and clients select a profile
// by Name before building a signed request against its EndpointURL.
type ServiceProfile struct {
	// Name identifies the service within the directory, e.g. "StockCheck"
	// or "InvoiceStatus". Names are unique per catalog.
	Name string

	// Description is the human-readable summary published alongside the
	// service. May be empty.
	Description string

	// AnonymousAccessAllowed reports whether the publisher accepts requests
	// made with the shared anonymous API key. When false the caller needs
	// partner-issued credentials.
	AnonymousAccessAllowed bool

	// EndpointURL is the absolute HTTPS URL of the service binding. Empty
	// when the directory entry advertised no HTTPS binding; such profiles
	// are listed for completeness but cannot be invoked.
	EndpointURL string

	// VersionNumber is the schema version the endpoint implements, as an
	// opaque display string (e.g. "1.0").
	VersionNumber string

	// PublishedDate is the publication date string from the directory,
	// unparsed. Empty when the publisher omitted it.
	PublishedDate string
}

// Callable reports whether the profile carries an HTTPS binding that a
// client can build requests against.
func (p *ServiceProfile) Callable() bool {
	return p != nil && p.EndpointURL != ""
}

// Validate checks that the profile carries the fields required of a
// well-formed directory entry. It returns an *InvalidProfileError
// describing the first problem found, or nil.
func (p *ServiceProfile) Validate() error {
	if p == nil {
		return &InvalidProfileError{Message: "profile is nil"}
	}
	if strings.TrimSpace(p.Name) == "" {
		return &InvalidProfileError{Message: "profile name is empty"}
	}
	if p.EndpointURL != "" && !strings.Contains(p.EndpointURL, "://") {
		return &InvalidProfileError{
			Message: fmt.Sprintf("endpoint URL %q is not absolute", p.EndpointURL),
		}
	}
	return nil
}

// String returns a short human-readable form, suitable for log fields.
func (p *ServiceProfile) String() string {
	if p == nil {
		return "<nil profile>"
	}
	access := "authenticated"
	if p.AnonymousAccessAllowed {
		access = "anonymous"
	}
	return fmt.Sprintf("%s (%s, v%s)", p.Name, access, p.VersionNumber)
}

// InvalidProfileError reports a service profile that fails validation.
type InvalidProfileError struct {
	Message string
}

func (e *InvalidProfileError) Error() string {
	return "invalid service profile: " + e.Message
}

// ProfileBuilder constructs ServiceProfile values with a fluent interface.
// Zero-value fields keep their defaults, so callers set only what they need:
//
//	profile, err := protocol.NewProfileBuilder("StockCheck", "Real-time stock levels").
//		WithEndpointURL("https://b2b.example.com/StockCheck").
//		WithAnonymousAccess(true).
//		WithVersion("1.0", "2024-01-15").
//		Build()
type ProfileBuilder struct {
	profile ServiceProfile
}

// NewProfileBuilder creates a builder seeded with the required name and
// description.
func NewProfileBuilder(name, description string) *ProfileBuilder {
	return &ProfileBuilder{
		profile: ServiceProfile{
			Name:        name,
			Description: description,
		},
	}
}

// WithEndpointURL sets the HTTPS binding URL.
func (b *ProfileBuilder) WithEndpointURL(url string) *ProfileBuilder {
	b.profile.EndpointURL = url
	return b
}

// WithAnonymousAccess sets whether the service accepts the anonymous key.
func (b *ProfileBuilder) WithAnonymousAccess(allowed bool) *ProfileBuilder {
	b.profile.AnonymousAccessAllowed = allowed
	return b
}

// WithVersion sets the schema version number and publication date.
func (b *ProfileBuilder) WithVersion(number, date string) *ProfileBuilder {
	b.profile.VersionNumber = number
	b.profile.PublishedDate = date
	return b
}

// Build validates the assembled profile and returns it.
func (b *ProfileBuilder) Build() (*ServiceProfile, error) {
	p := b.profile
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
