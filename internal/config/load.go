// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. SMP_LOG_LEVEL.
const EnvPrefix = "SMP"

var ErrValidation = errors.New("invalid configuration")

var defaults = map[string]any{
	"log.level":              "info",
	"log.format":             "text",
	"explore.max_candidates": 40320,
	"explore.convention":     "satisfaction",
	"engine.side":            "proposers",
	"problem.preset":         "",
	"problem.seed":           0,
}

// Load reads the configuration from defaults, the optional YAML file at path
// and the environment, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key := range defaults {
		env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind environment variable %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of cfg. Level, side and convention names
// are compared after lowercasing.
func Validate(cfg *Config) error {
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Explore.Convention = strings.ToLower(cfg.Explore.Convention)
	cfg.Engine.Side = strings.ToLower(cfg.Engine.Side)

	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
