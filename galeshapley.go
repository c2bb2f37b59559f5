// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"fmt"
	"log/slog"
	"strings"
)

// Side selects which group makes the proposals.
type Side int

const (
	ProposersPropose Side = iota
	ReceiversPropose
)

func (s Side) String() string {
	switch s {
	case ProposersPropose:
		return "proposers"
	case ReceiversPropose:
		return "receivers"
	}
	return "unknown"
}

// ParseSide accepts "proposers" or "receivers".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "proposers", "":
		return ProposersPropose, nil
	case "receivers":
		return ReceiversPropose, nil
	}
	return 0, fmt.Errorf("stablematch: unknown side %q", s)
}

type Phase int

const (
	PhaseInitialized Phase = iota
	PhaseInProgress
	PhaseConverged
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseInProgress:
		return "in-progress"
	case PhaseConverged:
		return "converged"
	}
	return "unknown"
}

// Outcome is what the reviewer did with a proposal.
type Outcome int

const (
	// Accepted: the reviewer was free.
	Accepted Outcome = iota
	// Replaced: the reviewer dropped its partner for the suitor.
	Replaced
	// Rejected: the reviewer kept its partner.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Replaced:
		return "replaced"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for _, c := range []Outcome{Accepted, Replaced, Rejected} {
		if c.String() == string(text) {
			*o = c
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

// Proposal is one entry of the courtship history.
type Proposal struct {
	Step      int     `json:"step"`
	From      Agent   `json:"from"`
	To        Agent   `json:"to"`
	Outcome   Outcome `json:"outcome"`
	Displaced Agent   `json:"displaced,omitempty"`
}

type convergedError struct{}

func (convergedError) Error() string {
	return ErrAlreadyConverged.Error()
}

func (convergedError) Is(target error) bool {
	return target == ErrAlreadyConverged || target == ErrNoFreeProposers
}

// Engine runs deferred acceptance one proposal at a time.
//
// Free suitors wait in a FIFO queue, initially in the profile's order of the
// proposing group. The head of the queue proposes; a rejected suitor stays
// at the head and a displaced one goes to the tail. Every suitor proposes to
// each reviewer at most once, so the engine converges within N^2 steps.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	profile *Profile
	side    Side
	logger  *slog.Logger

	suitors, reviewers Group

	free     []int
	next     []int // position in the suitor's ranking of the next reviewer to try
	sent     [][]int
	received [][]int
	partner  []int // suitor -> reviewer, -1 when free
	fiance   []int // reviewer -> suitor, -1 when free
	history  []Proposal
}

type EngineOption func(*Engine)

func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

func NewEngine(p *Profile, side Side, opts ...EngineOption) *Engine {
	e := &Engine{
		profile:   p,
		side:      side,
		suitors:   Proposers,
		reviewers: Receivers,
	}
	if side == ReceiversPropose {
		e.suitors, e.reviewers = Receivers, Proposers
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = loggerOrDiscard(e.logger)
	e.Reset()
	return e
}

// Reset discards the courtship state: everybody is free and no proposal
// has been made.
func (e *Engine) Reset() {
	n := e.profile.Size()

	e.free = make([]int, n)
	e.next = make([]int, n)
	e.sent = make([][]int, n)
	e.received = make([][]int, n)
	e.partner = make([]int, n)
	e.fiance = make([]int, n)
	for i := 0; i < n; i++ {
		e.free[i] = i
		e.partner[i] = -1
		e.fiance[i] = -1
	}
	e.history = nil
}

func (e *Engine) Profile() *Profile {
	return e.profile
}

func (e *Engine) Side() Side {
	return e.side
}

func (e *Engine) Phase() Phase {
	switch {
	case len(e.free) == 0:
		return PhaseConverged
	case len(e.history) == 0:
		return PhaseInitialized
	}
	return PhaseInProgress
}

// Steps returns the number of proposals made so far.
func (e *Engine) Steps() int {
	return len(e.history)
}

// Step lets the suitor at the head of the queue propose to its most
// preferred reviewer it has not proposed to yet. After convergence it
// returns ErrAlreadyConverged and changes nothing.
func (e *Engine) Step() (Proposal, error) {
	if len(e.free) == 0 {
		return Proposal{}, convergedError{}
	}

	s := e.free[0]
	ranking := e.profile.prefs[e.suitors][s]
	if e.next[s] >= len(ranking) {
		panic(fmt.Sprintf("stablematch: %q was rejected by everybody",
			e.profile.agents(e.suitors)[s]))
	}
	r := ranking[e.next[s]]
	e.next[s]++
	e.sent[s] = append(e.sent[s], r)
	e.received[r] = append(e.received[r], s)

	prop := Proposal{
		Step: len(e.history) + 1,
		From: e.profile.agents(e.suitors)[s],
		To:   e.profile.agents(e.reviewers)[r],
	}

	rank := e.profile.rank[e.reviewers][r]
	switch cur := e.fiance[r]; {
	case cur < 0:
		prop.Outcome = Accepted
		e.engage(s, r)
		e.free = e.free[1:]
	case rank[s] < rank[cur]:
		prop.Outcome = Replaced
		prop.Displaced = e.profile.agents(e.suitors)[cur]
		e.partner[cur] = -1
		e.engage(s, r)
		e.free = append(e.free[1:], cur)
	default:
		prop.Outcome = Rejected
	}

	e.history = append(e.history, prop)
	e.logger.Debug("proposal",
		"step", prop.Step, "from", prop.From, "to", prop.To,
		"outcome", prop.Outcome.String(), "displaced", prop.Displaced,
		"free", len(e.free))

	return prop, nil
}

func (e *Engine) engage(s, r int) {
	e.partner[s] = r
	e.fiance[r] = s
}

// Run steps until convergence and returns the final matching.
func (e *Engine) Run() Matching {
	n := e.profile.Size()
	for limit := n*n + 1; e.Phase() != PhaseConverged; limit-- {
		if limit == 0 {
			panic("stablematch: deferred acceptance did not converge")
		}
		if _, err := e.Step(); err != nil {
			panic(err.Error())
		}
	}
	m, _ := e.Matching()
	return m
}

// Engagements returns the current engagements as proposer-receiver pairs in
// the profile's proposer order.
func (e *Engine) Engagements() Matching {
	var m Matching
	for i, a := range e.profile.proposers {
		j := e.partner[i]
		if e.suitors == Receivers {
			j = e.fiance[i]
		}
		if j >= 0 {
			m = append(m, Pair{Proposer: a, Receiver: e.profile.receivers[j]})
		}
	}
	return m
}

// Matching returns the engagements and whether they form the final matching.
func (e *Engine) Matching() (Matching, bool) {
	return e.Engagements(), e.Phase() == PhaseConverged
}

// Free returns the free suitors in queue order.
func (e *Engine) Free() []Agent {
	agents := e.profile.agents(e.suitors)
	free := make([]Agent, len(e.free))
	for i, s := range e.free {
		free[i] = agents[s]
	}
	return free
}

// History returns every proposal made so far, oldest first.
func (e *Engine) History() []Proposal {
	return append([]Proposal(nil), e.history...)
}

// Sent returns the reviewers suitor has proposed to, in order. It returns
// nil for agents of the reviewing group.
func (e *Engine) Sent(suitor Agent) []Agent {
	if g, ok := e.profile.GroupOf(suitor); !ok || g != e.suitors {
		return nil
	}
	return e.toAgents(e.reviewers, e.sent[e.profile.index[suitor]])
}

// Received returns the suitors that proposed to reviewer, in order. It
// returns nil for agents of the proposing group.
func (e *Engine) Received(reviewer Agent) []Agent {
	if g, ok := e.profile.GroupOf(reviewer); !ok || g != e.reviewers {
		return nil
	}
	return e.toAgents(e.suitors, e.received[e.profile.index[reviewer]])
}

func (e *Engine) toAgents(g Group, idx []int) []Agent {
	agents := e.profile.agents(g)
	out := make([]Agent, len(idx))
	for i, j := range idx {
		out[i] = agents[j]
	}
	return out
}
