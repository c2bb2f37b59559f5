// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package presets holds named preference patterns.
package presets

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	sm "github.com/someonegg/stablematch"
)

var ErrUnknownPreset = errors.New("presets: unknown preset")

type Pattern struct {
	Key           string         `yaml:"key"`
	Name          string         `yaml:"name"`
	Aliases       []string       `yaml:"aliases"`
	Proposers     []sm.Agent     `yaml:"proposers"`
	Receivers     []sm.Agent     `yaml:"receivers"`
	ProposerPrefs sm.Preferences `yaml:"proposer_prefs"`
	ReceiverPrefs sm.Preferences `yaml:"receiver_prefs"`
}

// Profile validates the pattern.
func (p Pattern) Profile() (*sm.Profile, error) {
	prof, err := sm.NewProfile(p.Proposers, p.Receivers, p.ProposerPrefs, p.ReceiverPrefs)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.Key, err)
	}
	return prof, nil
}

type Table struct {
	patterns map[string]Pattern
	alias    map[string]string
}

// Parse reads a YAML table of patterns. Keys and aliases are matched case
// insensitively and must be unique.
func Parse(data []byte) (*Table, error) {
	var doc struct {
		Patterns []Pattern `yaml:"patterns"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("presets: %w", err)
	}

	t := &Table{
		patterns: make(map[string]Pattern, len(doc.Patterns)),
		alias:    make(map[string]string),
	}
	for _, p := range doc.Patterns {
		key := normalize(p.Key)
		if key == "" {
			return nil, errors.New("presets: pattern without key")
		}
		if _, err := p.Profile(); err != nil {
			return nil, err
		}
		for _, a := range append([]string{p.Key}, p.Aliases...) {
			a = normalize(a)
			if _, ok := t.alias[a]; ok {
				return nil, fmt.Errorf("presets: repeated key or alias %q", a)
			}
			t.alias[a] = key
		}
		t.patterns[key] = p
	}
	return t, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Keys returns the pattern keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.patterns))
	for _, p := range t.patterns {
		keys = append(keys, p.Key)
	}
	sort.Strings(keys)
	return keys
}

func (t *Table) Lookup(key string) (Pattern, error) {
	if k, ok := t.alias[normalize(key)]; ok {
		return t.patterns[k], nil
	}
	return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPreset, key)
}

// Default returns the pattern with the smallest key.
func (t *Table) Default() Pattern {
	keys := t.Keys()
	if len(keys) == 0 {
		return Pattern{}
	}
	p, _ := t.Lookup(keys[0])
	return p
}

//go:embed presets.yaml
var builtinYAML []byte

var builtin *Table

func init() {
	t, err := Parse(builtinYAML)
	if err != nil {
		panic(err)
	}
	builtin = t
}

// Builtin returns the table shipped with the package.
func Builtin() *Table {
	return builtin
}

func Keys() []string {
	return builtin.Keys()
}

func Lookup(key string) (Pattern, error) {
	return builtin.Lookup(key)
}

func Default() Pattern {
	return builtin.Default()
}
