// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"context"
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
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := Setup(&buf, "debug", "json")
	require.NoError(t, err)

	l.Debug("proposal", "from", "A", "to", "W")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "proposal", rec["msg"])
	assert.Equal(t, "W", rec["to"])
}

func TestSetup_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := Setup(&buf, "warn", "text")
	require.NoError(t, err)

	l.Info("hidden")
	assert.Zero(t, buf.Len())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_InvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	l, err := Setup(&buf, "loud", "text")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "invalid log level")
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestSetup_InvalidFormat(t *testing.T) {
	_, err := Setup(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
