// Package protocol defines the core types and wire constants of the fcB2B
// protocol: service profiles published in partner directories, the query
// parameter names every signed request carries, and the timestamp format
// servers validate.
//
// # Service Profiles
//
// A ServiceProfile describes one invocable service from a trading partner's
// directory. Profiles arrive by fetching and parsing the partner's catalog
// document (see the catalog package), but can also be constructed directly:
//
//	profile, err := protocol.NewProfileBuilder("StockCheck", "Real-time stock levels").
//		WithEndpointURL("https://b2b.example.com/danciko/bwl/dancik-b2b/StockCheck").
//		WithAnonymousAccess(true).
//		WithVersion("1.0", "2024-01-15").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Not every directory entry is invocable: a profile without an HTTPS binding
// has an empty EndpointURL, and Callable reports false for it.
//
// # Request Parameters
//
// Signed requests carry three base parameters, built with BaseParams:
//
//	params := protocol.BaseParams(uuid.NewString(), time.Now(), protocol.AnonymousAPIKey)
//	params[protocol.ParamSupplierItemSKU] = "ABC-123"
//
// The parameter name constants are exact: canonicalization is byte-wise, so
// spelling and case differences change the signature. Use the constants
// rather than string literals.
//
// # Timestamps
//
// FormatTimeStamp renders times as YYYY-MM-DDTHH:MM:SSZ in UTC, the only
// form fcB2B servers accept. Passing a local time is fine; conversion
// happens inside.
package protocol
