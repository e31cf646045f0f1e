package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamConstants_ExactSpelling(t *testing.T) {
	// The server canonicalizes byte-wise; these spellings must never drift.
	assert.Equal(t, "GlobalIdentifier", ParamGlobalIdentifier)
	assert.Equal(t, "TimeStamp", ParamTimeStamp)
	assert.Equal(t, "apiKey", ParamAPIKey)
	assert.Equal(t, "SupplierItemSKU", ParamSupplierItemSKU)
	assert.Equal(t, "Signature", ParamSignature)
	assert.Equal(t, "anonymous", AnonymousAPIKey)
}

func TestFormatTimeStamp_UTC(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01T00:00:00Z", FormatTimeStamp(ts))
}

func TestFormatTimeStamp_ConvertsZone(t *testing.T) {
	// 2024-06-30 19:59:59 EST-4 is 23:59:59 UTC.
	loc := time.FixedZone("EDT", -4*60*60)
	ts := time.Date(2024, 6, 30, 19, 59, 59, 0, loc)

	assert.Equal(t, "2024-06-30T23:59:59Z", FormatTimeStamp(ts))
}

func TestFormatTimeStamp_DropsFractionalSeconds(t *testing.T) {
	ts := time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC)

	assert.Equal(t, "2024-06-30T23:59:59Z", FormatTimeStamp(ts))
}

func TestBaseParams(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	params := BaseParams("id1", ts, AnonymousAPIKey)

	require.Len(t, params, 3)
	assert.Equal(t, "id1", params[ParamGlobalIdentifier])
	assert.Equal(t, "2024-01-01T00:00:00Z", params[ParamTimeStamp])
	assert.Equal(t, "anonymous", params[ParamAPIKey])
}
