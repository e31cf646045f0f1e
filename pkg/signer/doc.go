// Package signer implements the fcB2B request signing scheme: canonical
// query construction, HMAC-SHA256 signing, and signed URL assembly.
//
// Every authenticated fcB2B request is a GET whose query parameters are
// covered by an HMAC-SHA256 signature. The server recomputes the signature
// from the request it received, so canonicalization must be bit-exact: a
// single byte of difference in encoding or ordering produces a rejected
// request.
//
// # Signing a Request
//
// Use RequestSigner to turn an endpoint URL, a parameter map, and a shared
// secret into a signed URL:
//
//	s := signer.NewDefaultRequestSigner()
//	params := protocol.BaseParams(uuid.NewString(), time.Now(), protocol.AnonymousAPIKey)
//	params[protocol.ParamSupplierItemSKU] = "ABC-123"
//
//	signedURL, err := s.SignURL(ctx, "https://b2b.example.com/StockCheck", params, secretKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// SignRequest returns the intermediate artifacts as well, which is useful
// for logging and for troubleshooting a signature the server rejects:
//
//	signed, err := s.SignRequest(ctx, endpointURL, params, secretKey)
//	fmt.Println(signed.StringToSign)
//	fmt.Println(signed.URL)
//
// # Canonicalization
//
// The canonical query string is built in three steps:
//
//  1. Percent-encode every key and value with the unreserved alphabet:
//     letters, digits, and '-', '_', '.', '~' pass through; every other
//     byte of the UTF-8 encoding becomes %XX in uppercase hex. Space is
//     %20, never '+'.
//  2. Sort parameters by byte-wise comparison of their raw keys.
//  3. Join encodedKey=encodedValue pairs with '&'. No trailing '&'.
//
// The string to sign is then four lines joined by '\n', with no trailing
// newline:
//
//	GET
//	{host}
//	{path}
//	{canonicalQuery}
//
// The HMAC-SHA256 digest of that string, keyed with the shared secret, is
// base64-encoded (standard alphabet, padded), percent-encoded, and appended
// to the URL as the Signature parameter:
//
//	https://{host}{path}?{canonicalQuery}&Signature={encodedSignature}
//
// The Signature parameter is never part of the canonical query; it is an
// addendum to the final URL.
//
// # Determinism
//
// Signing is a pure function of its three inputs. The signer reads no
// clock, generates no randomness, performs no I/O, and never modifies the
// parameter map. Callers supply the timestamp and correlation identifier
// as ordinary parameters before signing, which makes every signature
// reproducible and testable against fixed vectors.
//
// # Error Handling
//
// The only failure mode is an endpoint URL that cannot be decomposed into
// host and path (missing scheme or host), reported as
// *errors.InvalidURLError. Everything else is pure computation and cannot
// fail.
//
// The pipeline stages are exported for callers that need them separately:
// PercentEncode, CanonicalQuery, StringToSign, and ComputeSignature. The
// verifier package builds on them to validate inbound URLs.
package signer
