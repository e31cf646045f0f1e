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
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
	"github.com/fcb2b-project/fcb2b-go/pkg/signer"
)

const testSecret = "yoursecretkey"

func signTestURL(t *testing.T, rawURL string, params map[string]string) string {
	t.Helper()
	signed, err := signer.NewDefaultRequestSigner().SignURL(context.Background(), rawURL, params, testSecret)
	require.NoError(t, err)
	return signed
}

func testParams() map[string]string {
	return map[string]string{
		"GlobalIdentifier": "id1",
		"TimeStamp":        "2024-01-01T00:00:00Z",
		"apiKey":           "anonymous",
		"SupplierItemSKU":  "a b/c",
	}
}

func TestDefaultURLVerifier_VerifyURL_RoundTrip(t *testing.T) {
	// Test Case 1: A URL produced by the signer verifies, and the
	// decoded parameters match what was signed.

	// Setup
	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())
	v := NewDefaultURLVerifier()

	// Execute
	result, err := v.VerifyURL(context.Background(), signedURL, testSecret)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, testParams(), result.Params)
	assert.Equal(t, "id1", result.GlobalIdentifier())
	assert.NotEmpty(t, result.Signature)
	assert.True(t, strings.HasPrefix(result.StringToSign, "GET\nexample.com\n/StockCheck\n"))
}

func TestDefaultURLVerifier_VerifyURL_ReferenceVector(t *testing.T) {
	// Test Case 2: The reference signed URL verifies as-is.

	signedURL := "https://example.com/path?GlobalIdentifier=id1&TimeStamp=2024-01-01T00%3A00%3A00Z&apiKey=anonymous&Signature=eoAB6RfVmc28elr3DfHqMW%2B9sNO8Au0DAW%2FOrR1N9Bw%3D"
	v := NewDefaultURLVerifier()

	result, err := v.VerifyURL(context.Background(), signedURL, testSecret)

	require.NoError(t, err)
	assert.Equal(t, "eoAB6RfVmc28elr3DfHqMW+9sNO8Au0DAW/OrR1N9Bw=", result.Signature)
}

func TestDefaultURLVerifier_VerifyURL_ReorderedQuery(t *testing.T) {
	// Test Case 3: Intermediaries may reorder parameters; verification is
	// order-independent.

	reordered := "https://example.com/path?Signature=eoAB6RfVmc28elr3DfHqMW%2B9sNO8Au0DAW%2FOrR1N9Bw%3D&apiKey=anonymous&GlobalIdentifier=id1&TimeStamp=2024-01-01T00%3A00%3A00Z"
	v := NewDefaultURLVerifier()

	_, err := v.VerifyURL(context.Background(), reordered, testSecret)

	assert.NoError(t, err)
}

func TestDefaultURLVerifier_VerifyURL_TamperedValue(t *testing.T) {
	// Test Case 4: Changing any signed value invalidates the signature.

	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())
	tampered := strings.Replace(signedURL, "id1", "id2", 1)

	v := NewDefaultURLVerifier()
	_, err := v.VerifyURL(context.Background(), tampered, testSecret)

	require.Error(t, err)
	assert.True(t, errors.IsSignatureMismatch(err))
}

func TestDefaultURLVerifier_VerifyURL_TamperedPath(t *testing.T) {
	// Test Case 5: The path is part of the signed payload.

	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())
	tampered := strings.Replace(signedURL, "/StockCheck", "/InventoryInquiry", 1)

	v := NewDefaultURLVerifier()
	_, err := v.VerifyURL(context.Background(), tampered, testSecret)

	require.Error(t, err)
	assert.True(t, errors.IsSignatureMismatch(err))
}

func TestDefaultURLVerifier_VerifyURL_WrongHost(t *testing.T) {
	// Test Case 6: A signature minted for one host is invalid on another.

	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())
	moved := strings.Replace(signedURL, "example.com", "evil.example.net", 1)

	v := NewDefaultURLVerifier()
	_, err := v.VerifyURL(context.Background(), moved, testSecret)

	require.Error(t, err)
	assert.True(t, errors.IsSignatureMismatch(err))
}

func TestDefaultURLVerifier_VerifyURL_WrongSecret(t *testing.T) {
	// Test Case 7: Verification must use the same shared secret.

	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())

	v := NewDefaultURLVerifier()
	_, err := v.VerifyURL(context.Background(), signedURL, "differentsecret")

	require.Error(t, err)
	assert.True(t, errors.IsSignatureMismatch(err))
}

func TestDefaultURLVerifier_VerifyURL_MissingSignature(t *testing.T) {
	// Test Case 8: An unsigned URL cannot verify.

	v := NewDefaultURLVerifier()
	_, err := v.VerifyURL(context.Background(), "https://example.com/path?apiKey=anonymous", testSecret)

	require.Error(t, err)
	assert.True(t, errors.IsSignatureMismatch(err))
	assert.Contains(t, err.Error(), "missing Signature")
}

func TestDefaultURLVerifier_VerifyURL_DuplicateSignature(t *testing.T) {
	// Test Case 9: Two Signature parameters are always rejected, even if
	// one of them is valid.

	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())
	doubled := signedURL + "&Signature=Zm9yZ2Vk"

	v := NewDefaultURLVerifier()
	_, err := v.VerifyURL(context.Background(), doubled, testSecret)

	require.Error(t, err)
	assert.True(t, errors.IsSignatureMismatch(err))
}

func TestDefaultURLVerifier_VerifyURL_DuplicateParameter(t *testing.T) {
	// Test Case 10: Duplicate signed parameters mean the URL is not in
	// canonical form; reject rather than guess which value was signed.

	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())
	doubled := signedURL + "&apiKey=other"

	v := NewDefaultURLVerifier()
	_, err := v.VerifyURL(context.Background(), doubled, testSecret)

	require.Error(t, err)
	assert.True(t, errors.IsSignatureMismatch(err))
	assert.Contains(t, err.Error(), "duplicate parameter")
}

func TestDefaultURLVerifier_VerifyURL_InvalidURL(t *testing.T) {
	v := NewDefaultURLVerifier()

	_, err := v.VerifyURL(context.Background(), "not-a-url", testSecret)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidURL(err))
}

func TestDefaultURLVerifier_Freshness(t *testing.T) {
	// Test Case 11: With a skew window configured, the TimeStamp
	// parameter bounds the replay window.

	// Setup
	now := time.Date(2024, 1, 1, 0, 2, 0, 0, time.UTC)
	v := NewDefaultURLVerifier(
		WithMaxClockSkew(5*time.Minute),
		WithClock(func() time.Time { return now }),
	)

	// Within the window: signed at 00:00:00, verified at 00:02:00.
	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())
	_, err := v.VerifyURL(context.Background(), signedURL, testSecret)
	assert.NoError(t, err)

	// Outside the window.
	late := NewDefaultURLVerifier(
		WithMaxClockSkew(5*time.Minute),
		WithClock(func() time.Time { return now.Add(time.Hour) }),
	)
	_, err = late.VerifyURL(context.Background(), signedURL, testSecret)
	require.Error(t, err)
	assert.True(t, errors.IsSignatureMismatch(err))
	assert.Contains(t, err.Error(), "clock skew")
}

func TestDefaultURLVerifier_Freshness_MissingTimeStamp(t *testing.T) {
	// A freshness-checking verifier requires the TimeStamp parameter.

	params := map[string]string{"apiKey": "anonymous"}
	signedURL := signTestURL(t, "https://example.com/StockCheck", params)

	v := NewDefaultURLVerifier(WithMaxClockSkew(5 * time.Minute))
	_, err := v.VerifyURL(context.Background(), signedURL, testSecret)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing TimeStamp")
}

func TestDefaultURLVerifier_Freshness_UnparsableTimeStamp(t *testing.T) {
	params := map[string]string{"TimeStamp": "yesterday", "apiKey": "anonymous"}
	signedURL := signTestURL(t, "https://example.com/StockCheck", params)

	v := NewDefaultURLVerifier(WithMaxClockSkew(5 * time.Minute))
	_, err := v.VerifyURL(context.Background(), signedURL, testSecret)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparsable TimeStamp")
}

func TestDefaultURLVerifier_VerifyRequest(t *testing.T) {
	// Test Case 12: An inbound request verifies from its Host header,
	// path, and raw query.

	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())

	req := httptest.NewRequest("GET", signedURL, nil)
	v := NewDefaultURLVerifier()

	result, err := v.VerifyRequest(context.Background(), req, testSecret)

	require.NoError(t, err)
	assert.Equal(t, "id1", result.GlobalIdentifier())
}

func TestDefaultURLVerifier_VerifyRequest_NonGET(t *testing.T) {
	signedURL := signTestURL(t, "https://example.com/StockCheck", testParams())

	req := httptest.NewRequest("POST", signedURL, nil)
	v := NewDefaultURLVerifier()

	_, err := v.VerifyRequest(context.Background(), req, testSecret)

	require.Error(t, err)
	assert.True(t, errors.IsSignatureMismatch(err))
	assert.Contains(t, err.Error(), "only GET")
}

func TestDefaultURLVerifier_VerifyRequest_NilRequest(t *testing.T) {
	v := NewDefaultURLVerifier()

	_, err := v.VerifyRequest(context.Background(), nil, testSecret)

	assert.Error(t, err)
}
