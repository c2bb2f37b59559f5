// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"context"
	"fmt"
	"log/slog"
)

// pollEvery is how many candidates are examined between context checks.
const pollEvery = 1024

// Enumerator lists stable matchings by brute force: every permutation of the
// receivers is paired positionally with the proposers and kept if stable.
// The cost is O(N! * N^2), so it is only meant for small groups.
type Enumerator struct {
	// MaxCandidates caps the number of permutations examined. Zero means
	// no cap.
	MaxCandidates int

	Logger *slog.Logger
}

// Enumeration is the result of a brute-force search.
type Enumeration struct {
	Matchings []Matching

	// Candidates is the number of permutations examined.
	Candidates int
}

// AllStableMatchings returns every stable matching of p, in lexicographic
// order of the receiver permutation.
func AllStableMatchings(p *Profile) []Matching {
	matchings, _ := Enumerator{}.All(context.Background(), p)
	return matchings
}

// All returns the stable matchings of p in lexicographic order of the
// receiver permutation. On cancellation or when MaxCandidates is reached it
// returns what was found so far along with the error.
func (e Enumerator) All(ctx context.Context, p *Profile) ([]Matching, error) {
	r, err := e.Enumerate(ctx, p)
	return r.Matchings, err
}

func (e Enumerator) Enumerate(ctx context.Context, p *Profile) (Enumeration, error) {
	logger := loggerOrDiscard(e.Logger)

	n := p.Size()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	inv := make([]int, n)

	var r Enumeration
	for {
		if e.MaxCandidates > 0 && r.Candidates >= e.MaxCandidates {
			return r, fmt.Errorf("%w: %d examined, %d stable",
				ErrCandidateLimit, r.Candidates, len(r.Matchings))
		}
		if r.Candidates%pollEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}

		r.Candidates++
		if p.isStable(perm, inv) {
			m := p.matchingOf(perm)
			r.Matchings = append(r.Matchings, m)
			logger.Debug("stable matching found",
				"candidate", r.Candidates, "matching", m.String())
		}

		if !nextPermutation(perm) {
			break
		}
	}

	logger.Debug("enumeration done",
		"size", n, "candidates", r.Candidates, "stable", len(r.Matchings))

	return r, nil
}

// nextPermutation rearranges a into the next lexicographic permutation and
// reports false when a was already the last one.
func nextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
	return true
}
