// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package explore uses stablematch to list, score and compare every stable
// matching of a profile.
package explore

import (
	"log/slog"

	sm "github.com/someonegg/stablematch"
)

const (
	DefaultMaxCandidates = 40320 // 8!
	DefaultConvention    = sm.ConventionSatisfaction
)

type Explorer struct {
	// MaxCandidates caps the permutations examined; nil means
	// DefaultMaxCandidates and 0 means no cap.
	MaxCandidates *int `json:"max"`

	Convention *sm.Convention `json:"convention"`

	// When set, explorer also runs Gale-Shapley from both sides and marks
	// the matching each side converges to.
	CompareGaleShapley bool `json:"gs"`

	Logger *slog.Logger `json:"-"`

	max        int
	convention sm.Convention
}

// Entry is one stable matching of a report.
type Entry struct {
	Label    string      `json:"label"`
	Matching sm.Matching `json:"matching"`
	Score    sm.Score    `json:"score"`
}

type Report struct {
	Convention string        `json:"convention"`
	Entries    []Entry       `json:"entries"`
	Best       sm.Highlights `json:"best"`
	Summary    Summary       `json:"summary"`
}

type Summary struct {
	Size       int  `json:"size"`
	Candidates int  `json:"candidates"`
	Stable     int  `json:"stable"`
	Truncated  bool `json:"truncated"`

	// Index into Report.Entries of the Gale-Shapley results, -1 when not
	// computed or not found.
	ProposerOptimal int `json:"proposer_optimal"`
	ReceiverOptimal int `json:"receiver_optimal"`
}
