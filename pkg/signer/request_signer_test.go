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

package signer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcb2b-project/fcb2b-go/pkg/errors"
)

// referenceParams returns the minimal parameter set every signed request
// carries, with fixed values so signatures are reproducible.
func referenceParams() map[string]string {
	return map[string]string{
		"GlobalIdentifier": "id1",
		"TimeStamp":        "2024-01-01T00:00:00Z",
		"apiKey":           "anonymous",
	}
}

func TestDefaultRequestSigner_SignRequest_ReferenceVector(t *testing.T) {
	// Test Case 1: The reference vector every compliant implementation
	// must reproduce byte for byte.

	// Setup
	ctx := context.Background()
	s := NewDefaultRequestSigner()

	// Execute
	signed, err := s.SignRequest(ctx, "https://example.com/path", referenceParams(), "yoursecretkey")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "example.com", signed.Host)
	assert.Equal(t, "/path", signed.Path)
	assert.Equal(t,
		"GlobalIdentifier=id1&TimeStamp=2024-01-01T00%3A00%3A00Z&apiKey=anonymous",
		signed.CanonicalQuery)
	assert.Equal(t,
		"GET\nexample.com\n/path\nGlobalIdentifier=id1&TimeStamp=2024-01-01T00%3A00%3A00Z&apiKey=anonymous",
		signed.StringToSign)
	assert.Equal(t, "eoAB6RfVmc28elr3DfHqMW+9sNO8Au0DAW/OrR1N9Bw=", signed.Signature)
	assert.Equal(t, "eoAB6RfVmc28elr3DfHqMW%2B9sNO8Au0DAW%2FOrR1N9Bw%3D", signed.EncodedSignature)
	assert.Equal(t,
		"https://example.com/path?GlobalIdentifier=id1&TimeStamp=2024-01-01T00%3A00%3A00Z&apiKey=anonymous&Signature=eoAB6RfVmc28elr3DfHqMW%2B9sNO8Au0DAW%2FOrR1N9Bw%3D",
		signed.URL)
}

func TestDefaultRequestSigner_SignRequest_FullInvocation(t *testing.T) {
	// Test Case 2: A realistic StockCheck invocation with a SKU that
	// needs encoding.

	// Setup
	ctx := context.Background()
	s := NewDefaultRequestSigner()
	params := map[string]string{
		"GlobalIdentifier": "0b0d1c1e-8f5a-4c1e-9d2f-3a4b5c6d7e8f",
		"TimeStamp":        "2024-06-30T23:59:59Z",
		"apiKey":           "anonymous",
		"SupplierItemSKU":  "a b/c",
	}

	// Execute
	signed, err := s.SignRequest(ctx,
		"https://des.buckwold.com/danciko/bwl/dancik-b2b/StockCheck", params, "yoursecretkey")

	// Assert
	require.NoError(t, err)
	assert.Equal(t,
		"GlobalIdentifier=0b0d1c1e-8f5a-4c1e-9d2f-3a4b5c6d7e8f&SupplierItemSKU=a%20b%2Fc&TimeStamp=2024-06-30T23%3A59%3A59Z&apiKey=anonymous",
		signed.CanonicalQuery)
	assert.Equal(t, "EyCn8VFHonOCuJV/MmC0DmxFpTXYvSQLvA1RksD7zhE=", signed.Signature)
	assert.Equal(t,
		"https://des.buckwold.com/danciko/bwl/dancik-b2b/StockCheck?"+
			"GlobalIdentifier=0b0d1c1e-8f5a-4c1e-9d2f-3a4b5c6d7e8f&SupplierItemSKU=a%20b%2Fc&TimeStamp=2024-06-30T23%3A59%3A59Z&apiKey=anonymous"+
			"&Signature=EyCn8VFHonOCuJV%2FMmC0DmxFpTXYvSQLvA1RksD7zhE%3D",
		signed.URL)
}

func TestDefaultRequestSigner_SignRequest_EmptyParams(t *testing.T) {
	// Test Case 3: No parameters leaves the fourth line of the
	// string-to-sign empty; the signed URL carries only Signature.

	// Setup
	ctx := context.Background()
	s := NewDefaultRequestSigner()

	// Execute
	signed, err := s.SignRequest(ctx, "https://api.example.com/stock/check", nil, "s3cret")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "", signed.CanonicalQuery)
	assert.Equal(t, "GET\napi.example.com\n/stock/check\n", signed.StringToSign)
	assert.Equal(t, "Nn2xqeVvAtEIkUhcaKEE/Bm6Om1xnZZXsPQxd0bhfSE=", signed.Signature)
	assert.Equal(t,
		"https://api.example.com/stock/check?Signature=Nn2xqeVvAtEIkUhcaKEE%2FBm6Om1xnZZXsPQxd0bhfSE%3D",
		signed.URL)
}

func TestDefaultRequestSigner_SignURL_MatchesSignRequest(t *testing.T) {
	// Test Case 4: SignURL is exactly SignRequest's URL field.

	ctx := context.Background()
	s := NewDefaultRequestSigner()

	url, err := s.SignURL(ctx, "https://example.com/path", referenceParams(), "yoursecretkey")
	require.NoError(t, err)

	signed, err := s.SignRequest(ctx, "https://example.com/path", referenceParams(), "yoursecretkey")
	require.NoError(t, err)

	assert.Equal(t, signed.URL, url)
}

func TestDefaultRequestSigner_SignRequest_Deterministic(t *testing.T) {
	// Test Case 5: Identical inputs yield identical outputs, field for
	// field, across repeated calls.

	ctx := context.Background()
	s := NewDefaultRequestSigner()

	first, err := s.SignRequest(ctx, "https://example.com/path", referenceParams(), "yoursecretkey")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := s.SignRequest(ctx, "https://example.com/path", referenceParams(), "yoursecretkey")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDefaultRequestSigner_SignRequest_DoesNotMutateParams(t *testing.T) {
	// Test Case 6: The input map is read-only to the signer.

	// Setup
	ctx := context.Background()
	s := NewDefaultRequestSigner()
	params := referenceParams()
	params["Signature"] = "stale-value"

	// Execute
	_, err := s.SignRequest(ctx, "https://example.com/path", params, "yoursecretkey")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"GlobalIdentifier": "id1",
		"TimeStamp":        "2024-01-01T00:00:00Z",
		"apiKey":           "anonymous",
		"Signature":        "stale-value",
	}, params)
}

func TestDefaultRequestSigner_SignRequest_ExcludesSignatureParam(t *testing.T) {
	// Test Case 7: A Signature key in the input never reaches the
	// canonical query; the result matches signing without it.

	ctx := context.Background()
	s := NewDefaultRequestSigner()

	clean, err := s.SignRequest(ctx, "https://example.com/path", referenceParams(), "yoursecretkey")
	require.NoError(t, err)

	polluted := referenceParams()
	polluted["Signature"] = "whatever"
	signed, err := s.SignRequest(ctx, "https://example.com/path", polluted, "yoursecretkey")
	require.NoError(t, err)

	assert.Equal(t, clean, signed)
	assert.NotContains(t, signed.CanonicalQuery, "Signature")
}

func TestDefaultRequestSigner_SignRequest_IgnoresURLQuery(t *testing.T) {
	// Test Case 8: A query string already on the endpoint URL is not
	// signed and does not survive into the output.

	ctx := context.Background()
	s := NewDefaultRequestSigner()

	signed, err := s.SignRequest(ctx, "https://example.com/path?stale=1#frag", referenceParams(), "yoursecretkey")
	require.NoError(t, err)

	reference, err := s.SignRequest(ctx, "https://example.com/path", referenceParams(), "yoursecretkey")
	require.NoError(t, err)

	assert.Equal(t, reference, signed)
	assert.NotContains(t, signed.URL, "stale")
}

func TestDefaultRequestSigner_SignRequest_EmptyPath(t *testing.T) {
	// Test Case 9: A URL with no path signs with an empty path line.

	ctx := context.Background()
	s := NewDefaultRequestSigner()

	signed, err := s.SignRequest(ctx, "https://example.com", nil, "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "", signed.Path)
	assert.Equal(t, "GET\nexample.com\n\n", signed.StringToSign)
	assert.Equal(t, "https://example.com?Signature="+signed.EncodedSignature, signed.URL)
}

func TestDefaultRequestSigner_SignRequest_OutputAlwaysHTTPS(t *testing.T) {
	// Test Case 10: The input scheme is not preserved; signed URLs are
	// always https.

	ctx := context.Background()
	s := NewDefaultRequestSigner()

	signed, err := s.SignRequest(ctx, "http://example.com/path", referenceParams(), "yoursecretkey")
	require.NoError(t, err)

	assert.Contains(t, signed.URL, "https://example.com/path?")
}

func TestDefaultRequestSigner_SignRequest_MissingScheme(t *testing.T) {
	// Test Case 11: A URL without a scheme cannot be signed.

	ctx := context.Background()
	s := NewDefaultRequestSigner()

	_, err := s.SignRequest(ctx, "example.com/path", referenceParams(), "yoursecretkey")

	require.Error(t, err)
	assert.True(t, errors.IsInvalidURL(err))

	var urlErr *errors.InvalidURLError
	require.ErrorAs(t, err, &urlErr)
	assert.Equal(t, "example.com/path", urlErr.URL)
}

func TestDefaultRequestSigner_SignRequest_MissingHost(t *testing.T) {
	// Test Case 12: A scheme with no authority cannot be signed.

	ctx := context.Background()
	s := NewDefaultRequestSigner()

	_, err := s.SignRequest(ctx, "https:///path-only", referenceParams(), "yoursecretkey")

	require.Error(t, err)
	assert.True(t, errors.IsInvalidURL(err))
}

func TestDefaultRequestSigner_SignRequest_MalformedURL(t *testing.T) {
	// Test Case 13: An unparsable URL reports InvalidURLError, not a
	// bare parse error.

	ctx := context.Background()
	s := NewDefaultRequestSigner()

	_, err := s.SignRequest(ctx, "https://exa mple.com/\x7f", referenceParams(), "yoursecretkey")

	require.Error(t, err)
	assert.True(t, errors.IsInvalidURL(err))
}

func TestDefaultRequestSigner_SignRequest_CancelledContext(t *testing.T) {
	// Test Case 14: A cancelled context aborts before any computation.

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewDefaultRequestSigner()
	_, err := s.SignRequest(ctx, "https://example.com/path", referenceParams(), "yoursecretkey")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unreserved passthrough", "AZaz09-_.~", "AZaz09-_.~"},
		{"space is %20 never plus", "a b", "a%20b"},
		{"sku with slash", "a b/c", "a%20b%2Fc"},
		{"reserved characters", "+=&?#/ :", "%2B%3D%26%3F%23%2F%20%3A"},
		{"multibyte utf-8", "naïve™", "na%C3%AFve%E2%84%A2"},
		{"uppercase hex", "/", "%2F"},
		{"empty", "", ""},
		{"timestamp colons", "2024-01-01T00:00:00Z", "2024-01-01T00%3A00%3A00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentEncode(tt.in))
		})
	}
}

func TestCanonicalQuery_Ordering(t *testing.T) {
	// Byte-wise key order: uppercase sorts before lowercase.
	params := map[string]string{
		"b":         "2",
		"a":         "1",
		"TimeStamp": "t",
		"apiKey":    "k",
	}

	assert.Equal(t, "TimeStamp=t&a=1&apiKey=k&b=2", CanonicalQuery(params))
}

func TestCanonicalQuery_Empty(t *testing.T) {
	assert.Equal(t, "", CanonicalQuery(nil))
	assert.Equal(t, "", CanonicalQuery(map[string]string{}))
}

func TestCanonicalQuery_EncodesKeysAndValues(t *testing.T) {
	params := map[string]string{"item sku": "a/b"}

	assert.Equal(t, "item%20sku=a%2Fb", CanonicalQuery(params))
}

func TestStringToSign_Layout(t *testing.T) {
	sts := StringToSign("example.com", "/path", "a=1&b=2")

	assert.Equal(t, "GET\nexample.com\n/path\na=1&b=2", sts)

	// Empty canonical query keeps the fourth line, empty.
	assert.Equal(t, "GET\nexample.com\n/path\n", StringToSign("example.com", "/path", ""))
}

func TestComputeSignature_KnownVectors(t *testing.T) {
	sts := "GET\nexample.com\n/path\nGlobalIdentifier=id1&TimeStamp=2024-01-01T00%3A00%3A00Z&apiKey=anonymous"

	assert.Equal(t, "eoAB6RfVmc28elr3DfHqMW+9sNO8Au0DAW/OrR1N9Bw=", ComputeSignature("yoursecretkey", sts))
	assert.Equal(t, "Nn2xqeVvAtEIkUhcaKEE/Bm6Om1xnZZXsPQxd0bhfSE=", ComputeSignature("s3cret", "GET\napi.example.com\n/stock/check\n"))

	// Different secret, different signature.
	assert.NotEqual(t, ComputeSignature("yoursecretkey", sts), ComputeSignature("other", sts))
}
