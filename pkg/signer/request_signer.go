package signer

import "context"

// RequestSigner produces signed fcB2B request URLs from an endpoint URL, a
// parameter set, and a shared secret
type RequestSigner interface {
	// SignURL signs a GET request against rawURL carrying params and
	// returns the complete signed URL
	SignURL(ctx context.Context, rawURL string, params map[string]string, secretKey string) (string, error)

	// SignRequest is SignURL plus the intermediate canonicalization
	// artifacts, for callers that log, display, or verify them
	SignRequest(ctx context.Context, rawURL string, params map[string]string, secretKey string) (*SignedRequest, error)
}

// SignedRequest is the result of signing a request: the final URL together
// with every intermediate artifact of the canonicalization pipeline.
// Signing is deterministic, so two SignedRequests built from identical
// inputs are identical field for field.
type SignedRequest struct {
	// URL is the complete signed URL, ready to issue as a GET
	URL string

	// Host and Path are the endpoint components covered by the signature
	Host string
	Path string

	// CanonicalQuery is the sorted, percent-encoded query string the
	// signature covers. It never contains the Signature parameter.
	CanonicalQuery string

	// StringToSign is the exact byte sequence fed to HMAC-SHA256
	StringToSign string

	// Signature is the base64-encoded digest, before percent-encoding
	Signature string

	// EncodedSignature is Signature percent-encoded for use in the URL
	EncodedSignature string
}
