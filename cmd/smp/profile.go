// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	sm "github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/internal/config"
	"github.com/someonegg/stablematch/presets"
)

// Prefs is the on-disk form of a profile, as JSON or YAML.
type Prefs struct {
	Proposers     []sm.Agent     `json:"proposers" yaml:"proposers"`
	Receivers     []sm.Agent     `json:"receivers" yaml:"receivers"`
	ProposerPrefs sm.Preferences `json:"proposer_prefs" yaml:"proposer_prefs"`
	ReceiverPrefs sm.Preferences `json:"receiver_prefs" yaml:"receiver_prefs"`
}

func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "prefs",
			Usage: "specify the input prefs.json or prefs.yaml",
		},
		&cli.StringFlag{
			Name:  "preset",
			Usage: "specify a builtin preset key or alias",
		},
		&cli.BoolFlag{
			Name:  "random",
			Usage: "draw random rankings for the agents of the chosen profile",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "specify the random seed (0 uses a fixed default)",
		},
	}
}

// loadProfile picks the profile a command works on: a prefs file, else a
// preset, optionally reshuffled.
func loadProfile(ctx *cli.Context, cfg *config.Config) (*sm.Profile, error) {
	var (
		p   *sm.Profile
		err error
	)
	if file := ctx.String("prefs"); file != "" {
		p, err = loadPrefs(file)
		if err != nil {
			return nil, fmt.Errorf("load prefs file failed: %w", err)
		}
	} else {
		key := cfg.Problem.Preset
		if ctx.IsSet("preset") {
			key = ctx.String("preset")
		}
		pattern := presets.Default()
		if key != "" {
			if pattern, err = presets.Lookup(key); err != nil {
				return nil, err
			}
		}
		if p, err = pattern.Profile(); err != nil {
			return nil, err
		}
	}

	if !ctx.Bool("random") {
		return p, nil
	}
	seed := cfg.Problem.Seed
	if ctx.IsSet("seed") {
		seed = ctx.Int64("seed")
	}
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	return sm.RandomProfile(rng, p.Proposers(), p.Receivers())
}

func loadPrefs(file string) (*sm.Profile, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var prefs Prefs

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &prefs); err != nil {
			return nil, err
		}
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&prefs); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("unknown prefs format, want .json or .yaml")
	}

	return sm.NewProfile(prefs.Proposers, prefs.Receivers, prefs.ProposerPrefs, prefs.ReceiverPrefs)
}

// writeJSON writes v to file, or does nothing when file is empty.
func writeJSON(file string, v any) error {
	if file == "" {
		return nil
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(v); err != nil {
		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}
