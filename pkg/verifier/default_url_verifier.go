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

package verifier

import (
	"context"
	"crypto/hmac"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/protocol"
	"github.com/fcb2b-project/fcb2b-go/pkg/signer"
)

// DefaultURLVerifier implements URLVerifier by re-canonicalizing the
// presented parameters and recomputing the signature. Verification is
// order-independent: a proxy may reorder query parameters without breaking
// an otherwise valid signature.
type DefaultURLVerifier struct {
	maxSkew time.Duration
	clock   func() time.Time
}

// VerifierOption configures a DefaultURLVerifier.
type VerifierOption func(*DefaultURLVerifier)

// WithMaxClockSkew enables timestamp freshness checking: the TimeStamp
// parameter must be present, parsable, and within d of the verifier's
// clock in either direction. Zero disables the check.
func WithMaxClockSkew(d time.Duration) VerifierOption {
	return func(v *DefaultURLVerifier) {
		v.maxSkew = d
	}
}

// WithClock replaces the time source used by the freshness check.
func WithClock(clock func() time.Time) VerifierOption {
	return func(v *DefaultURLVerifier) {
		if clock != nil {
			v.clock = clock
		}
	}
}

// NewDefaultURLVerifier creates a verifier. By default no freshness check
// is applied; signatures are valid regardless of age.
func NewDefaultURLVerifier(opts ...VerifierOption) *DefaultURLVerifier {
	v := &DefaultURLVerifier{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifyURL checks the Signature parameter on signedURL.
func (v *DefaultURLVerifier) VerifyURL(ctx context.Context, signedURL string, secretKey string) (*Verification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, err := url.Parse(signedURL)
	if err != nil {
		return nil, errors.NewInvalidURLError(signedURL, err.Error())
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.NewInvalidURLError(signedURL, "missing scheme or host")
	}

	return v.verify(signedURL, u.Host, u.EscapedPath(), u.RawQuery, secretKey)
}

// VerifyRequest checks the signature on an inbound request. The authority
// comes from the Host header, as that is what the client signed.
func (v *DefaultURLVerifier) VerifyRequest(ctx context.Context, req *http.Request, secretKey string) (*Verification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req == nil || req.URL == nil {
		return nil, errors.NewSignatureError("", "nil request")
	}
	if req.Method != http.MethodGet {
		return nil, errors.NewSignatureError(req.URL.String(), "only GET requests are signed")
	}

	return v.verify(req.URL.String(), req.Host, req.URL.EscapedPath(), req.URL.RawQuery, secretKey)
}

func (v *DefaultURLVerifier) verify(source, host, path, rawQuery, secretKey string) (*Verification, error) {
	params, presented, err := parseSignedQuery(source, rawQuery)
	if err != nil {
		return nil, err
	}

	canonicalQuery := signer.CanonicalQuery(params)
	stringToSign := signer.StringToSign(host, path, canonicalQuery)
	expected := signer.ComputeSignature(secretKey, stringToSign)

	// Constant-time compare; the presented signature is attacker-supplied.
	if !hmac.Equal([]byte(expected), []byte(presented)) {
		return nil, errors.NewSignatureError(source, "signature mismatch")
	}

	if v.maxSkew > 0 {
		if err := v.checkFreshness(source, params); err != nil {
			return nil, err
		}
	}

	return &Verification{
		Params:       params,
		StringToSign: stringToSign,
		Signature:    presented,
	}, nil
}

func (v *DefaultURLVerifier) checkFreshness(source string, params map[string]string) error {
	raw, ok := params[protocol.ParamTimeStamp]
	if !ok {
		return errors.NewSignatureError(source, "missing TimeStamp parameter")
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return errors.NewSignatureError(source, "unparsable TimeStamp parameter")
	}

	delta := v.clock().Sub(ts)
	if delta < 0 {
		delta = -delta
	}
	if delta > v.maxSkew {
		return errors.NewSignatureError(source, "TimeStamp outside allowed clock skew")
	}
	return nil
}

// parseSignedQuery splits a raw query into the signed parameter set and
// the presented signature. Decoding uses pure percent-decoding: '+' stays
// a literal plus, since the canonical encoding never produces it.
func parseSignedQuery(source, rawQuery string) (map[string]string, string, error) {
	params := make(map[string]string)
	presented := ""
	haveSignature := false

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.PathUnescape(rawKey)
		if err != nil {
			return nil, "", errors.NewSignatureError(source, "malformed parameter encoding")
		}
		value, err := url.PathUnescape(rawValue)
		if err != nil {
			return nil, "", errors.NewSignatureError(source, "malformed parameter encoding")
		}

		if key == protocol.ParamSignature {
			if haveSignature {
				return nil, "", errors.NewSignatureError(source, "duplicate Signature parameter")
			}
			haveSignature = true
			presented = value
			continue
		}
		if _, dup := params[key]; dup {
			return nil, "", errors.NewSignatureError(source, "duplicate parameter "+key)
		}
		params[key] = value
	}

	if !haveSignature || presented == "" {
		return nil, "", errors.NewSignatureError(source, "missing Signature parameter")
	}
	return params, presented, nil
}
