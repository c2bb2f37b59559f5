// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explore

import (
	"context"
	"errors"
	"fmt"

	sm "github.com/someonegg/stablematch"
)

func (x *Explorer) init() {
	if x.MaxCandidates == nil {
		x.max = DefaultMaxCandidates
	} else {
		x.max = *x.MaxCandidates
	}

	if x.Convention == nil {
		x.convention = DefaultConvention
	} else {
		x.convention = *x.Convention
	}
}

// Explore enumerates and scores the stable matchings of p. When the
// candidate cap is hit the partial report is returned with
// Summary.Truncated set and no error; cancellation is returned as an error.
func (x *Explorer) Explore(ctx context.Context, p *sm.Profile) (Report, error) {
	x.init()

	var summ Summary
	summ.Size = p.Size()
	summ.ProposerOptimal, summ.ReceiverOptimal = -1, -1

	enum := sm.Enumerator{MaxCandidates: x.max, Logger: x.Logger}
	r, err := enum.Enumerate(ctx, p)
	switch {
	case errors.Is(err, sm.ErrCandidateLimit):
		summ.Truncated = true
		if x.Logger != nil {
			x.Logger.Warn("enumeration truncated",
				"size", p.Size(), "max_candidates", x.max, "stable", len(r.Matchings))
		}
	case err != nil:
		return Report{}, fmt.Errorf("enumerate stable matchings: %w", err)
	}
	summ.Candidates = r.Candidates
	summ.Stable = len(r.Matchings)

	report := Report{
		Convention: x.convention.String(),
		Entries:    make([]Entry, len(r.Matchings)),
	}
	scores := make([]sm.Score, len(r.Matchings))
	for i, m := range r.Matchings {
		scores[i] = sm.ScoreOf(m, p, x.convention)
		report.Entries[i] = Entry{
			Label:    sm.Label(i),
			Matching: m,
			Score:    scores[i],
		}
	}
	report.Best = sm.BestOf(scores, x.convention)

	if x.CompareGaleShapley {
		summ.ProposerOptimal = indexOf(r.Matchings, sm.NewEngine(p, sm.ProposersPropose).Run())
		summ.ReceiverOptimal = indexOf(r.Matchings, sm.NewEngine(p, sm.ReceiversPropose).Run())
	}

	report.Summary = summ
	return report, nil
}

func indexOf(ms []sm.Matching, m sm.Matching) int {
	for i, x := range ms {
		if x.Equal(m) {
			return i
		}
	}
	return -1
}
