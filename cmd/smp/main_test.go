// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sm "github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/explore"
	"github.com/someonegg/stablematch/session"
)

const cyclicJSON = `{
	"proposers": ["a", "b", "c"],
	"receivers": ["1", "2", "3"],
	"proposer_prefs": {"a": ["1", "2", "3"], "b": ["2", "3", "1"], "c": ["3", "1", "2"]},
	"receiver_prefs": {"1": ["b", "c", "a"], "2": ["c", "a", "b"], "3": ["a", "b", "c"]}
}`

const cyclicYAML = `
proposers: [a, b, c]
receivers: ["1", "2", "3"]
proposer_prefs:
  a: ["1", "2", "3"]
  b: ["2", "3", "1"]
  c: ["3", "1", "2"]
receiver_prefs:
  "1": [b, c, a]
  "2": [c, a, b]
  "3": [a, b, c]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPrefs(t *testing.T) {
	for name, content := range map[string]string{
		"prefs.json": cyclicJSON,
		"prefs.yaml": cyclicYAML,
	} {
		t.Run(name, func(t *testing.T) {
			p, err := loadPrefs(writeTemp(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, 3, p.Size())
			assert.Equal(t, []sm.Agent{"2", "3", "1"}, p.Ranking("b"))
		})
	}

	_, err := loadPrefs(writeTemp(t, "prefs.txt", cyclicJSON))
	assert.Error(t, err)

	_, err = loadPrefs(writeTemp(t, "bad.json", `{"proposers": ["a"], "extra": 1}`))
	assert.Error(t, err)

	_, err = loadPrefs(writeTemp(t, "short.yaml", `
proposers: [a, b]
receivers: [x, y]
proposer_prefs: {a: [x, y], b: [x]}
receiver_prefs: {x: [a, b], y: [a, b]}
`))
	assert.ErrorIs(t, err, sm.ErrSizeMismatch)
}

func TestEnumerateCommand(t *testing.T) {
	prefs := writeTemp(t, "prefs.json", cyclicJSON)
	out := filepath.Join(t.TempDir(), "report.json")

	err := newApp().Run([]string{"smp", "enumerate", "--prefs", prefs, "--report", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report explore.Report
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.Entries, 3)
	assert.Equal(t, "(ii)", report.Entries[1].Label)
	assert.Equal(t, 0, report.Summary.ProposerOptimal)
	assert.Equal(t, 2, report.Summary.ReceiverOptimal)
	assert.Equal(t, []int{1}, report.Best.Imbalance)
}

func TestEnumerateCommand_Invalid(t *testing.T) {
	err := newApp().Run([]string{"smp", "e", "--preset", "missing"})
	assert.Error(t, err)

	err = newApp().Run([]string{"smp", "e", "--convention", "happiness"})
	assert.Error(t, err)

	err = newApp().Run([]string{"smp", "--log-level", "loud", "e"})
	assert.Error(t, err)
}

func TestGSCommand(t *testing.T) {
	prefs := writeTemp(t, "prefs.yaml", cyclicYAML)
	out := filepath.Join(t.TempDir(), "snapshot.json")

	err := newApp().Run([]string{"smp", "gs", "--prefs", prefs, "--side", "receivers", "--snapshot", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var snap session.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, "converged", snap.Phase)
	assert.Equal(t, "receivers", snap.Side)
	assert.Equal(t, 3, snap.Steps)
	assert.Equal(t, sm.Matching{
		{Proposer: "a", Receiver: "3"},
		{Proposer: "b", Receiver: "1"},
		{Proposer: "c", Receiver: "2"},
	}, snap.Engagements)
}

func TestGSCommand_Steps(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snapshot.json")

	err := newApp().Run([]string{"smp", "g", "--preset", "common", "--steps", "2", "--snapshot", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var snap session.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, "in-progress", snap.Phase)
	assert.Equal(t, 2, snap.Steps)
	require.Len(t, snap.History, 2)
	assert.Equal(t, sm.Rejected, snap.History[1].Outcome)
}

func TestRender(t *testing.T) {
	p, err := loadPrefs(writeTemp(t, "prefs.json", cyclicJSON))
	require.NoError(t, err)

	report, err := (&explore.Explorer{CompareGaleShapley: true}).Explore(context.Background(), p)
	require.NoError(t, err)

	out := renderReport(report)
	assert.Contains(t, out, "(iii)")
	assert.Contains(t, out, "a→1, b→2, c→3")
	assert.Contains(t, out, "6 candidate(s) examined")

	assert.Contains(t, renderPresets(), "opposed")
	assert.Contains(t, renderProfile(p), "2 > 3 > 1")
}
