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

// Package verifier validates fcB2B signed URLs: the server-side mirror of
// the signer package.
//
// A service endpoint (or a test double standing in for one) uses
// URLVerifier to decide whether an inbound request was signed with the
// shared secret:
//
//	v := verifier.NewDefaultURLVerifier()
//	result, err := v.VerifyRequest(ctx, req, secretKey)
//	if err != nil {
//	    // errors.IsSignatureMismatch(err) for bad or missing signatures
//	}
//	log.Printf("verified request %s", result.GlobalIdentifier())
//
// Verification decodes the presented query, strips the Signature
// parameter, re-canonicalizes what remains, recomputes HMAC-SHA256 with
// the shared secret, and compares in constant time. Because parameters are
// re-sorted during canonicalization, verification tolerates query
// reordering by intermediaries while still rejecting any change to a key,
// a value, the host, or the path.
//
// # Freshness
//
// Signatures carry no expiry of their own. WithMaxClockSkew opts into
// rejecting requests whose TimeStamp parameter strays too far from the
// verifier's clock, bounding the replay window:
//
//	v := verifier.NewDefaultURLVerifier(verifier.WithMaxClockSkew(5 * time.Minute))
//
// # Failure Modes
//
// Unparsable URLs report *errors.InvalidURLError. Everything else —
// missing or duplicate Signature, malformed encoding, mismatched digest,
// stale TimeStamp — reports *errors.SignatureError, matched by
// errors.IsSignatureMismatch. The error never reveals the expected
// signature.
package verifier
