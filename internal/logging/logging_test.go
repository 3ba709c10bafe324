package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	}

	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("focus session started", slog.String("id", "session_a"))

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "focus session started", record["msg"])
	assert.Equal(t, "session_a", record["id"])
	assert.Equal(t, "INFO", record["level"])
}
