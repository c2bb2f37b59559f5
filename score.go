// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"fmt"
	"strings"
)

// Convention selects how a rank is turned into a per-agent value.
//
//	ConventionSatisfaction:    value = (N-1) - rank, higher is better
//	ConventionDissatisfaction: value = rank, lower is better
//
// The two are related by s = (N-1) - d for every agent.
type Convention int

const (
	ConventionSatisfaction Convention = iota
	ConventionDissatisfaction
)

func (c Convention) String() string {
	switch c {
	case ConventionSatisfaction:
		return "satisfaction"
	case ConventionDissatisfaction:
		return "dissatisfaction"
	}
	return "unknown"
}

// ParseConvention accepts "satisfaction" or "dissatisfaction".
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(s) {
	case "satisfaction", "":
		return ConventionSatisfaction, nil
	case "dissatisfaction":
		return ConventionDissatisfaction, nil
	}
	return 0, fmt.Errorf("stablematch: unknown convention %q", s)
}

// better reports whether a is a better value than b for sums and worst-off.
func (c Convention) better(a, b int) bool {
	if c == ConventionDissatisfaction {
		return a < b
	}
	return a > b
}

// Score aggregates per-agent values of a matching.
type Score struct {
	Total       int `json:"total"`
	ProposerSum int `json:"proposer_sum"`
	ReceiverSum int `json:"receiver_sum"`
	Imbalance   int `json:"imbalance"`

	// WorstOff is the value of the worst-off agent: the minimum under the
	// satisfaction convention, the maximum under dissatisfaction.
	WorstOff int `json:"worst_off"`
}

// Score scores m under the satisfaction convention.
func (p *Profile) Score(m Matching) Score {
	return ScoreOf(m, p, ConventionSatisfaction)
}

// ScoreOf scores the pairs of m under convention c. m may be partial, in
// which case only the matched agents count; an empty matching scores zero.
func ScoreOf(m Matching, p *Profile, c Convention) Score {
	var s Score
	if len(m) == 0 {
		return s
	}

	value := func(agent, partner Agent) int {
		if c == ConventionDissatisfaction {
			return p.RankOf(agent, partner)
		}
		return p.Satisfaction(agent, partner)
	}

	for i, pair := range m {
		pv := value(pair.Proposer, pair.Receiver)
		rv := value(pair.Receiver, pair.Proposer)
		s.ProposerSum += pv
		s.ReceiverSum += rv

		worst := pv
		if c.better(pv, rv) {
			worst = rv
		}
		if i == 0 || c.better(s.WorstOff, worst) {
			s.WorstOff = worst
		}
	}

	s.Total = s.ProposerSum + s.ReceiverSum
	s.Imbalance = s.ProposerSum - s.ReceiverSum
	if s.Imbalance < 0 {
		s.Imbalance = -s.Imbalance
	}
	return s
}

// Highlights lists, for every metric, the indices of the scores that reach
// the best value. Imbalance is always best when smallest.
type Highlights struct {
	Total       []int `json:"total"`
	ProposerSum []int `json:"proposer_sum"`
	ReceiverSum []int `json:"receiver_sum"`
	Imbalance   []int `json:"imbalance"`
	WorstOff    []int `json:"worst_off"`
}

// BestOf computes the highlights of scores under convention c.
func BestOf(scores []Score, c Convention) Highlights {
	lower := func(a, b int) bool { return a < b }

	return Highlights{
		Total:       bestIndices(scores, func(s Score) int { return s.Total }, c.better),
		ProposerSum: bestIndices(scores, func(s Score) int { return s.ProposerSum }, c.better),
		ReceiverSum: bestIndices(scores, func(s Score) int { return s.ReceiverSum }, c.better),
		Imbalance:   bestIndices(scores, func(s Score) int { return s.Imbalance }, lower),
		WorstOff:    bestIndices(scores, func(s Score) int { return s.WorstOff }, c.better),
	}
}

func bestIndices(scores []Score, metric func(Score) int, better func(a, b int) bool) []int {
	var best []int
	for i, s := range scores {
		switch {
		case len(best) == 0 || better(metric(s), metric(scores[best[0]])):
			best = append(best[:0], i)
		case metric(s) == metric(scores[best[0]]):
			best = append(best, i)
		}
	}
	return best
}
