// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"fmt"
)

// Profile is a validated preference model: two disjoint groups of the same
// size, each agent ranking every agent of the other group exactly once.
// A Profile never changes after construction.
type Profile struct {
	proposers []Agent
	receivers []Agent

	index map[Agent]int
	group map[Agent]Group

	// prefs[g][i] is the ranking of agent i of group g, as indices into the
	// opposite group; rank[g][i][j] is the position of j in that ranking.
	prefs [2][][]int
	rank  [2][][]int
}

// NewProfile validates the preferences and builds a Profile. The orderings
// of proposers and receivers are kept: they fix the enumeration order, the
// order of matching pairs and the initial Gale-Shapley queue.
func NewProfile(proposers, receivers []Agent, proposerPrefs, receiverPrefs Preferences) (*Profile, error) {
	if len(proposers) != len(receivers) {
		return nil, fmt.Errorf("%w: %d proposers, %d receivers",
			ErrInvalidPreferences, len(proposers), len(receivers))
	}

	p := &Profile{
		proposers: append([]Agent(nil), proposers...),
		receivers: append([]Agent(nil), receivers...),
		index:     make(map[Agent]int, 2*len(proposers)),
		group:     make(map[Agent]Group, 2*len(proposers)),
	}

	for g, agents := range [2][]Agent{p.proposers, p.receivers} {
		for i, a := range agents {
			if a == "" {
				return nil, fmt.Errorf("%w: empty agent in %v", ErrInvalidPreferences, Group(g))
			}
			if _, ok := p.group[a]; ok {
				return nil, fmt.Errorf("%w: agent %q listed twice", ErrInvalidPreferences, a)
			}
			p.index[a] = i
			p.group[a] = Group(g)
		}
	}

	for g, prefs := range [2]Preferences{proposerPrefs, receiverPrefs} {
		group := Group(g)
		owners := p.agents(group)
		if len(prefs) != len(owners) {
			return nil, fmt.Errorf("%w: %d rankings for %d %v",
				ErrInvalidPreferences, len(prefs), len(owners), group)
		}
		p.prefs[g] = make([][]int, len(owners))
		p.rank[g] = make([][]int, len(owners))
		for i, owner := range owners {
			ranking, ok := prefs[owner]
			if !ok {
				return nil, fmt.Errorf("%w: no ranking for %q", ErrInvalidPreferences, owner)
			}
			order, rank, err := p.parseRanking(owner, group, ranking)
			if err != nil {
				return nil, err
			}
			p.prefs[g][i] = order
			p.rank[g][i] = rank
		}
	}

	return p, nil
}

func (p *Profile) parseRanking(owner Agent, group Group, ranking []Agent) (order, rank []int, err error) {
	n := len(p.proposers)
	if len(ranking) != n {
		return nil, nil, fmt.Errorf("%w: %w: %q ranks %d agents, want %d",
			ErrInvalidPreferences, ErrSizeMismatch, owner, len(ranking), n)
	}

	opposite := 1 - group
	order = make([]int, n)
	rank = make([]int, n)
	for i := range rank {
		rank[i] = -1
	}
	for pos, a := range ranking {
		if g, ok := p.group[a]; !ok || g != opposite {
			return nil, nil, fmt.Errorf("%w: %q ranks foreign agent %q",
				ErrInvalidPreferences, owner, a)
		}
		j := p.index[a]
		if rank[j] >= 0 {
			return nil, nil, fmt.Errorf("%w: %q ranks %q twice",
				ErrInvalidPreferences, owner, a)
		}
		order[pos] = j
		rank[j] = pos
	}
	return order, rank, nil
}

func (p *Profile) agents(g Group) []Agent {
	if g == Proposers {
		return p.proposers
	}
	return p.receivers
}

// mustIndex returns the index of agent within group g. Unknown agents are a
// contract violation.
func (p *Profile) mustIndex(agent Agent, g Group) int {
	if got, ok := p.group[agent]; !ok || got != g {
		panic(fmt.Sprintf("stablematch: %q is not one of the %v", agent, g))
	}
	return p.index[agent]
}

// Size returns N, the size of each group.
func (p *Profile) Size() int {
	return len(p.proposers)
}

func (p *Profile) Proposers() []Agent {
	return append([]Agent(nil), p.proposers...)
}

func (p *Profile) Receivers() []Agent {
	return append([]Agent(nil), p.receivers...)
}

// GroupOf returns the group agent belongs to.
func (p *Profile) GroupOf(agent Agent) (Group, bool) {
	g, ok := p.group[agent]
	return g, ok
}

// Ranking returns a copy of agent's ranking, most preferred first.
func (p *Profile) Ranking(agent Agent) []Agent {
	g, ok := p.group[agent]
	if !ok {
		panic(fmt.Sprintf("stablematch: unknown agent %q", agent))
	}
	opposite := p.agents(1 - g)
	order := p.prefs[g][p.index[agent]]
	ranking := make([]Agent, len(order))
	for i, j := range order {
		ranking[i] = opposite[j]
	}
	return ranking
}

// Preferences returns a copy of the rankings of group g.
func (p *Profile) Preferences(g Group) Preferences {
	prefs := make(Preferences, p.Size())
	for _, a := range p.agents(g) {
		prefs[a] = p.Ranking(a)
	}
	return prefs
}

// RankOf returns the zero-based position of partner in agent's ranking.
// Lower is more preferred.
func (p *Profile) RankOf(agent, partner Agent) int {
	g, ok := p.group[agent]
	if !ok {
		panic(fmt.Sprintf("stablematch: unknown agent %q", agent))
	}
	return p.rank[g][p.index[agent]][p.mustIndex(partner, 1-g)]
}

// Satisfaction returns (N-1) - RankOf(agent, partner). Higher is better.
func (p *Profile) Satisfaction(agent, partner Agent) int {
	return p.Size() - 1 - p.RankOf(agent, partner)
}

// WithRanking returns a new Profile in which agent ranks the opposite group
// as given. The receiver is left untouched.
func (p *Profile) WithRanking(agent Agent, ranking []Agent) (*Profile, error) {
	g, ok := p.group[agent]
	if !ok {
		return nil, fmt.Errorf("%w: unknown agent %q", ErrInvalidPreferences, agent)
	}

	prefs := [2]Preferences{p.Preferences(Proposers), p.Preferences(Receivers)}
	prefs[g][agent] = append([]Agent(nil), ranking...)

	return NewProfile(p.proposers, p.receivers, prefs[Proposers], prefs[Receivers])
}

// ValidateMatching checks that m pairs every proposer with exactly one
// receiver of this profile.
func (p *Profile) ValidateMatching(m Matching) error {
	if len(m) != p.Size() {
		return fmt.Errorf("%w: %d pairs, want %d", ErrInvalidMatching, len(m), p.Size())
	}
	seen := make(map[Agent]bool, 2*len(m))
	for _, pair := range m {
		if g, ok := p.group[pair.Proposer]; !ok || g != Proposers {
			return fmt.Errorf("%w: %q is not a proposer", ErrInvalidMatching, pair.Proposer)
		}
		if g, ok := p.group[pair.Receiver]; !ok || g != Receivers {
			return fmt.Errorf("%w: %q is not a receiver", ErrInvalidMatching, pair.Receiver)
		}
		if seen[pair.Proposer] || seen[pair.Receiver] {
			return fmt.Errorf("%w: %v matched twice", ErrInvalidMatching, pair)
		}
		seen[pair.Proposer], seen[pair.Receiver] = true, true
	}
	return nil
}

// matchingOf builds the matching pairing proposer i with receiver perm[i].
func (p *Profile) matchingOf(perm []int) Matching {
	m := make(Matching, len(perm))
	for i, j := range perm {
		m[i] = Pair{Proposer: p.proposers[i], Receiver: p.receivers[j]}
	}
	return m
}

// permOf is the inverse of matchingOf. Invalid matchings panic.
func (p *Profile) permOf(m Matching) []int {
	if err := p.ValidateMatching(m); err != nil {
		panic(err.Error())
	}
	perm := make([]int, len(m))
	for _, pair := range m {
		perm[p.index[pair.Proposer]] = p.index[pair.Receiver]
	}
	return perm
}
