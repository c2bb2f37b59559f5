// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings shared by the command line tools.
package config

import (
	sm "github.com/someonegg/stablematch"
)

type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Explore ExploreConfig `mapstructure:"explore" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Problem ProblemConfig `mapstructure:"problem"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

type ExploreConfig struct {
	// MaxCandidates caps the permutations examined; 0 means no cap.
	MaxCandidates int    `mapstructure:"max_candidates" validate:"gte=0"`
	Convention    string `mapstructure:"convention" validate:"required,oneof=satisfaction dissatisfaction"`
}

type EngineConfig struct {
	Side string `mapstructure:"side" validate:"required,oneof=proposers receivers"`
}

type ProblemConfig struct {
	// Preset is a builtin pattern key or alias; empty selects the default.
	Preset string `mapstructure:"preset"`
	// Seed drives random preferences; 0 selects the fixed default seed.
	Seed int64 `mapstructure:"seed"`
}

func (c *Config) Side() (sm.Side, error) {
	return sm.ParseSide(c.Engine.Side)
}

func (c *Config) Convention() (sm.Convention, error) {
	return sm.ParseConvention(c.Explore.Convention)
}
