// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/deathrange/pkg/types"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" warn ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.WarnLevel,
		"verbose": zapcore.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(types.LogConfig{Level: "info"}, &buf)

	log.Debug("hidden")
	log.With(String("source", "family.ged")).Warn("invalid date format",
		String("raw", "sometime"), Err(errors.New("boom")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "invalid date format", entry["msg"])
	assert.Equal(t, "sometime", entry["raw"])
	assert.Equal(t, "family.ged", entry["source"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(types.LogConfig{Level: "warn", Development: true}, &buf)

	log.Info("hidden")
	log.Warn("invalid date format", String("raw", "sometime"))

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "invalid date format")
	assert.Contains(t, out, `"raw": "sometime"`)
	assert.NotContains(t, out, "hidden")
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Warn("ignored", Int("n", 1))
	assert.NotNil(t, log.With(String("k", "v")))
	assert.NoError(t, log.Sync())
}
