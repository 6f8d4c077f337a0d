package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yogastudio/web/internal/config"
)

func TestLevelSelection(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, level("development", ""))
	assert.Equal(t, zerolog.InfoLevel, level("production", ""))
	assert.Equal(t, zerolog.WarnLevel, level("production", "WARN"))
	assert.Equal(t, zerolog.InfoLevel, level("production", "loud"))
}

func TestJSONFormatCarriesEnvironment(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := newWithWriter(&buf, "staging", config.LoggingConfig{Level: "info", Format: "json"})
	logger.Info().Str("route", "/login").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "staging", line["env"])
	assert.Equal(t, "/login", line["route"])
	assert.Equal(t, "hello", line["message"])
}
