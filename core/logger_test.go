package core

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "json", Output: &buf}))

	slog.Debug("rendered function", "symbol", "__swift_bridge__$make")
	assert.Contains(t, buf.String(), `"msg":"rendered function"`)
	assert.Contains(t, buf.String(), `"symbol":"__swift_bridge__$make"`)
}

func TestInitLoggerLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	require.NoError(t, InitLogger(LogConfig{Level: "warn", Output: &buf}))

	slog.Info("hidden")
	slog.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitLoggerRejectsBadConfig(t *testing.T) {
	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
	assert.Error(t, InitLogger(LogConfig{Level: "info", Format: "xml"}))
}
