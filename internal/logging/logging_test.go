package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/pieces/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("piece", "drones").Msg("start")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"piece":"drones"`)
	assert.Contains(t, out, `"message":"start"`)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "debug", Format: "text"}, &buf)

	logger.Debug().Str("piece", "drones").Msg("apply")

	out := buf.String()
	assert.Contains(t, out, "apply")
	assert.Contains(t, out, "piece=drones")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "loud"}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_WritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pieces.log")

	logger, closer, err := Setup(config.LogConfig{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	logger.Info().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger initialized")
	assert.Contains(t, string(data), "hello")
}
