// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stablematch provides stable marriage algorithms over two equal-size
// groups with strict, complete preferences: exhaustive enumeration of stable
// matchings, satisfaction scoring, and a step-by-step Gale-Shapley engine.
package stablematch

import (
	"errors"
	"strings"
)

// Agent identifies a proposer or a receiver.
type Agent string

// Preferences maps an agent to its ranking of the opposite group, most
// preferred first.
type Preferences map[Agent][]Agent

// Pair is one engagement of a matching.
type Pair struct {
	Proposer Agent `json:"proposer" yaml:"proposer"`
	Receiver Agent `json:"receiver" yaml:"receiver"`
}

// Matching is a set of pairs ordered by the profile's proposer ordering.
// A complete matching is a bijection between proposers and receivers.
type Matching []Pair

func (m Matching) String() string {
	var sb strings.Builder
	for i, pair := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(pair.Proposer))
		sb.WriteString("→")
		sb.WriteString(string(pair.Receiver))
	}
	return sb.String()
}

// PartnerOf returns the partner of agent on either side.
func (m Matching) PartnerOf(agent Agent) (Agent, bool) {
	for _, pair := range m {
		if pair.Proposer == agent {
			return pair.Receiver, true
		}
		if pair.Receiver == agent {
			return pair.Proposer, true
		}
	}
	return "", false
}

// Equal reports whether both matchings hold the same pairs, ignoring order.
func (m Matching) Equal(o Matching) bool {
	if len(m) != len(o) {
		return false
	}
	set := make(map[Pair]struct{}, len(m))
	for _, pair := range m {
		set[pair] = struct{}{}
	}
	for _, pair := range o {
		if _, ok := set[pair]; !ok {
			return false
		}
	}
	return true
}

// Group names one of the two sides of a profile.
type Group int

const (
	Proposers Group = iota
	Receivers
)

func (g Group) String() string {
	switch g {
	case Proposers:
		return "proposers"
	case Receivers:
		return "receivers"
	}
	return "unknown"
}

var (
	// ErrInvalidPreferences reports a ranking that is not a permutation of
	// the opposite group, or groups that are unequal, overlapping or
	// contain duplicates.
	ErrInvalidPreferences = errors.New("stablematch: invalid preferences")

	// ErrSizeMismatch reports a ranking with the wrong number of agents.
	// It is also an ErrInvalidPreferences.
	ErrSizeMismatch = errors.New("stablematch: ranking size mismatch")

	// ErrInvalidMatching reports a matching that is not a bijection over
	// the profile's agents.
	ErrInvalidMatching = errors.New("stablematch: invalid matching")

	// ErrNoFreeProposers is returned by Engine.Step when nobody is left to
	// propose.
	ErrNoFreeProposers = errors.New("stablematch: no free proposers")

	// ErrAlreadyConverged is returned by Engine.Step after convergence.
	// errors.Is also matches it against ErrNoFreeProposers.
	ErrAlreadyConverged = errors.New("stablematch: already converged")

	// ErrCandidateLimit is returned by Enumerator.All when MaxCandidates
	// permutations were examined before the search space was exhausted.
	ErrCandidateLimit = errors.New("stablematch: candidate limit reached")
)
