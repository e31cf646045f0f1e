package cmd

import (
	"bytes"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcb2b-project/fcb2b-go/pkg/client"
)

func TestParseParamFlags(t *testing.T) {
	// The first '=' splits key from value, so values may contain '='.
	params, err := parseParamFlags([]string{"Warehouse=DAL", "Filter=a=b"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Warehouse": "DAL",
		"Filter":    "a=b",
	}, params)
}

func TestParseParamFlags_NoFlags(t *testing.T) {
	params, err := parseParamFlags(nil)

	require.NoError(t, err)
	assert.NotNil(t, params)
	assert.Empty(t, params)
}

func TestParseParamFlags_ReportsEveryBadPair(t *testing.T) {
	// Malformed pairs are all reported at once; well-formed pairs in the
	// same invocation still land in the map.
	params, err := parseParamFlags([]string{"novalue", "=orphan", "Warehouse=DAL"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"novalue"`)
	assert.Contains(t, err.Error(), `"=orphan"`)
	assert.Equal(t, map[string]string{"Warehouse": "DAL"}, params)
}

func TestPrintResponse_OK(t *testing.T) {
	// Setup
	resp := &client.ServiceResponse{
		StatusCode: 200,
		Body:       []byte("<Root><Item>12 Oak</Item></Root>"),
	}

	// Execute
	var buf bytes.Buffer
	printResponse(&buf, resp)

	// Assert: 2xx bodies are shown as indented XML
	out := color.ClearCode(buf.String())
	assert.Contains(t, out, "--- Response ---")
	assert.Contains(t, out, "HTTP 200")
	assert.Contains(t, out, "--- XML Response ---")
	assert.Contains(t, out, "<Root>\n  <Item>12 Oak</Item>\n</Root>")
}

func TestPrintResponse_ErrorStatus(t *testing.T) {
	// Setup
	resp := &client.ServiceResponse{
		StatusCode: 403,
		Body:       []byte("Forbidden: signature mismatch"),
	}

	// Execute
	var buf bytes.Buffer
	printResponse(&buf, resp)

	// Assert: non-2xx bodies pass through raw
	out := buf.String()
	assert.Contains(t, out, "HTTP 403")
	assert.Contains(t, out, "--- Raw Response ---")
	assert.Contains(t, out, "Forbidden: signature mismatch")
	assert.NotContains(t, out, "--- XML Response ---")
}
