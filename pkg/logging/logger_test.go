package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Str("service", "StockCheck").Msg("invoking service")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "invoking service", entry["message"])
	assert.Equal(t, "StockCheck", entry["service"])
	assert.NotEmpty(t, entry["time"])
}

func TestDefaultIsNeverNil(t *testing.T) {
	require.NotNil(t, Default())
}

func TestSetDefault(t *testing.T) {
	original := *Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(New(&buf))
	Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
}

func TestFromContext(t *testing.T) {
	t.Run("nil context returns default", func(t *testing.T) {
		//nolint:staticcheck // explicitly testing nil context handling
		assert.Equal(t, Default(), FromContext(nil))
	})

	t.Run("empty context returns default", func(t *testing.T) {
		assert.Equal(t, Default(), FromContext(context.Background()))
	})

	t.Run("stored logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf)
		ctx := WithLogger(context.Background(), &logger)

		Ctx(ctx).Info().Msg("from context")
		assert.Contains(t, buf.String(), "from context")
	})
}

func TestWithService(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	ctx := WithLogger(context.Background(), &logger)
	ctx = WithService(ctx, "InventoryInquiry")

	Ctx(ctx).Info().Msg("tagged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "InventoryInquiry", entry["service"])
}

func TestConfigure(t *testing.T) {
	original := *Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	Configure("warn", true)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	// Unknown levels fall back to info rather than failing.
	Configure("nonsense", true)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
