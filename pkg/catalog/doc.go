// Package catalog discovers fcB2B services: it fetches a trading partner's
// service directory and parses the XML into protocol.ServiceProfile values.
//
// # Fetching a Directory
//
//	fetcher := catalog.NewDefaultFetcher(nil)
//	profiles, err := fetcher.FetchProfiles(ctx, "https://b2b.example.com/services")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range profiles {
//	    fmt.Println(p.Name, p.EndpointURL)
//	}
//
// FetchCatalog returns the raw document alongside the profiles, which the
// display layer uses to show the directory as served.
//
// # Document Shape
//
// A directory is an XML document whose root holds ServiceProfile elements.
// Name, Description, and AnonymousAccessPermitted are qualified with the
// fcB2B core namespace; the Version block is unqualified:
//
//	<ServiceDirectory xmlns:core="http://fcb2b.com/schemas/1.0/core">
//	  <ServiceProfile>
//	    <core:Name>StockCheck</core:Name>
//	    <core:Description>Real-time stock levels</core:Description>
//	    <core:AnonymousAccessPermitted>true</core:AnonymousAccessPermitted>
//	    <Version>
//	      <HTTPSRequestPath>https://b2b.example.com/StockCheck</HTTPSRequestPath>
//	      <VersionNumber>1.0</VersionNumber>
//	      <Date>2024-01-15</Date>
//	    </Version>
//	  </ServiceProfile>
//	</ServiceDirectory>
//
// # Leniency
//
// Parsing is strict per document and lenient per entry. A body that is not
// well-formed XML fails the whole fetch with *errors.ParseError. An entry
// missing any of Name, Description, AnonymousAccessPermitted, or Version is
// dropped silently while its siblings survive; an entry is never emitted
// with placeholder values. Inside Version, missing children default to
// empty strings. All text is whitespace-trimmed, and the access flag is
// true only when its trimmed, lower-cased text is exactly "true".
package catalog
