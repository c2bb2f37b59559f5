// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sm "github.com/someonegg/stablematch"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 40320, cfg.Explore.MaxCandidates)
	assert.Equal(t, "", cfg.Problem.Preset)
	assert.Zero(t, cfg.Problem.Seed)

	side, err := cfg.Side()
	require.NoError(t, err)
	assert.Equal(t, sm.ProposersPropose, side)

	conv, err := cfg.Convention()
	require.NoError(t, err)
	assert.Equal(t, sm.ConventionSatisfaction, conv)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
explore:
  max_candidates: 0
  convention: Dissatisfaction
engine:
  side: receivers
problem:
  preset: opposed
  seed: 7
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 0, cfg.Explore.MaxCandidates)
	assert.Equal(t, "dissatisfaction", cfg.Explore.Convention)
	assert.Equal(t, "receivers", cfg.Engine.Side)
	assert.Equal(t, "opposed", cfg.Problem.Preset)
	assert.Equal(t, int64(7), cfg.Problem.Seed)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "log:\n  level: debug\n")
	t.Setenv("SMP_LOG_LEVEL", "error")
	t.Setenv("SMP_EXPLORE_MAX_CANDIDATES", "120")
	t.Setenv("SMP_ENGINE_SIDE", "receivers")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 120, cfg.Explore.MaxCandidates)
	assert.Equal(t, "receivers", cfg.Engine.Side)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"Level":      "log:\n  level: loud\n",
		"Format":     "log:\n  format: xml\n",
		"Negative":   "explore:\n  max_candidates: -1\n",
		"Convention": "explore:\n  convention: happiness\n",
		"Side":       "engine:\n  side: both\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, content))
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
