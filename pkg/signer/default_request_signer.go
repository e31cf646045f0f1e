package signer

import (
	"context"
	"net/url"

	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
)

// DefaultRequestSigner implements RequestSigner with the fcB2B
// HMAC-SHA256 query signing scheme
type DefaultRequestSigner struct{}

// NewDefaultRequestSigner creates a new DefaultRequestSigner
func NewDefaultRequestSigner() *DefaultRequestSigner {
	return &DefaultRequestSigner{}
}

// SignURL signs a GET request against rawURL and returns the complete
// signed URL
func (s *DefaultRequestSigner) SignURL(ctx context.Context, rawURL string, params map[string]string, secretKey string) (string, error) {
	signed, err := s.SignRequest(ctx, rawURL, params, secretKey)
	if err != nil {
		return "", err
	}
	return signed.URL, nil
}

// SignRequest signs a GET request against rawURL and returns the signed
// URL together with the canonicalization artifacts.
//
// Signing is a pure function of rawURL, params, and secretKey: no clock
// reads, no randomness, no I/O. Timestamps and correlation identifiers are
// ordinary parameters supplied by the caller. The params map is read but
// never modified; a Signature key in it is ignored rather than signed.
func (s *DefaultRequestSigner) SignRequest(ctx context.Context, rawURL string, params map[string]string, secretKey string) (*SignedRequest, error) {
	// Check context
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	host, path, err := splitEndpoint(rawURL)
	if err != nil {
		return nil, err
	}

	// The Signature parameter is an addendum to the final URL; it must
	// never appear in the canonical query the signature covers.
	toSign := params
	if _, ok := params[protocol.ParamSignature]; ok {
		toSign = make(map[string]string, len(params)-1)
		for k, v := range params {
			if k == protocol.ParamSignature {
				continue
			}
			toSign[k] = v
		}
	}

	canonicalQuery := CanonicalQuery(toSign)
	stringToSign := StringToSign(host, path, canonicalQuery)
	signature := ComputeSignature(secretKey, stringToSign)
	encodedSignature := PercentEncode(signature)

	signedURL := "https://" + host + path + "?"
	if canonicalQuery != "" {
		signedURL += canonicalQuery + "&"
	}
	signedURL += protocol.ParamSignature + "=" + encodedSignature

	return &SignedRequest{
		URL:              signedURL,
		Host:             host,
		Path:             path,
		CanonicalQuery:   canonicalQuery,
		StringToSign:     stringToSign,
		Signature:        signature,
		EncodedSignature: encodedSignature,
	}, nil
}

// splitEndpoint extracts the authority and the escaped path from rawURL.
// Any query or fragment on the URL is discarded; only explicitly supplied
// parameters are signed.
func splitEndpoint(rawURL string) (host, path string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", errors.NewInvalidURLError(rawURL, err.Error())
	}
	if u.Scheme == "" {
		return "", "", errors.NewInvalidURLError(rawURL, "missing scheme")
	}
	if u.Host == "" {
		return "", "", errors.NewInvalidURLError(rawURL, "missing host")
	}
	return u.Host, u.EscapedPath(), nil
}
