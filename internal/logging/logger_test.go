package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Options{Level: "info", Format: "json", Output: &buf})
		require.NotNil(t, logger)
		logger.Info().Str("key", "value").Msg("hello")
		assert.Contains(t, buf.String(), `"message":"hello"`)
		assert.Contains(t, buf.String(), `"key":"value"`)
	})

	t.Run("pretty output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Options{Level: "info", Format: "pretty", Output: &buf})
		logger.Info().Msg("hello")
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("default level hides info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Options{Format: "json", Output: &buf})
		logger.Info().Msg("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Options{Level: "error", Format: "json", Output: &buf, Verbose: true})
		logger.Debug().Msg("shown")
		assert.Contains(t, buf.String(), "shown")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("bogus"))
}

func TestWithPath(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "info", Format: "json", Output: &buf}).WithPath("pkg.installer.yaml")
	logger.Info().Msg("x")
	assert.Contains(t, buf.String(), `"manifest":"pkg.installer.yaml"`)
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)
	logger.Error().Msg("discarded")
}
