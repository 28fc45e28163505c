package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/SscSPs/workspace_storefront/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel(" warn "))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, true)

	logger.Debug("hidden")
	logger.Info("rate cache refreshed", slog.Int("rates", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rate cache refreshed", entry["msg"])
	assert.Equal(t, float64(3), entry["rates"])
}

func TestNew_LocalWritesText(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug, false)

	logger.Debug("converted amount", slog.String("currency", "EUR"))
	assert.Contains(t, buf.String(), "converted amount")
	assert.Contains(t, buf.String(), "EUR")
}
