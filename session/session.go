// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session owns the state of one interactive exploration: the current
// profile and its Gale-Shapley engine. Each caller keeps its own Session;
// a Session is not safe for concurrent use.
package session

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/multiformats/go-multihash"

	sm "github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/explore"
	"github.com/someonegg/stablematch/presets"
)

type Options struct {
	Side          sm.Side
	Convention    sm.Convention
	MaxCandidates *int
	Logger        *slog.Logger
}

type Session struct {
	id      uuid.UUID
	opts    Options
	logger  *slog.Logger
	profile *sm.Profile
	engine  *sm.Engine
}

func New(p *sm.Profile, opts Options) *Session {
	s := &Session{
		id:   uuid.New(),
		opts: opts,
	}
	s.logger = opts.Logger
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("session", s.id.String())
	s.SetProfile(p)
	return s
}

// NewFromPreset starts a session on a builtin pattern; an empty key selects
// the default one.
func NewFromPreset(key string, opts Options) (*Session, error) {
	p, err := presetProfile(key)
	if err != nil {
		return nil, err
	}
	return New(p, opts), nil
}

func presetProfile(key string) (*sm.Profile, error) {
	pattern := presets.Default()
	if key != "" {
		var err error
		if pattern, err = presets.Lookup(key); err != nil {
			return nil, err
		}
	}
	return pattern.Profile()
}

func (s *Session) ID() string {
	return s.id.String()
}

func (s *Session) Profile() *sm.Profile {
	return s.profile
}

func (s *Session) Side() sm.Side {
	return s.opts.Side
}

// SetProfile replaces the profile and discards the courtship state.
func (s *Session) SetProfile(p *sm.Profile) {
	s.profile = p
	s.reset("profile")
}

// SetSide changes which group proposes and discards the courtship state.
func (s *Session) SetSide(side sm.Side) {
	s.opts.Side = side
	s.reset("side")
}

func (s *Session) reset(reason string) {
	s.engine = sm.NewEngine(s.profile, s.opts.Side, sm.WithLogger(s.logger))
	s.logger.Debug("courtship reset", "reason", reason,
		"size", s.profile.Size(), "side", s.opts.Side.String())
}

func (s *Session) LoadPreset(key string) error {
	p, err := presetProfile(key)
	if err != nil {
		return err
	}
	s.SetProfile(p)
	return nil
}

// Randomize draws new rankings for the current agents. A nil rng uses a
// fixed seed.
func (s *Session) Randomize(rng *rand.Rand) error {
	p, err := sm.RandomProfile(rng, s.profile.Proposers(), s.profile.Receivers())
	if err != nil {
		return err
	}
	s.SetProfile(p)
	return nil
}

// EditRanking replaces one agent's ranking. A list that does not hold
// exactly N agents is an edit in progress: it is ignored and reported as
// not applied. A complete list that is not a valid ranking is an error.
// The courtship state is discarded only when the ranking actually changes.
func (s *Session) EditRanking(agent sm.Agent, ranking []sm.Agent) (applied bool, err error) {
	if len(ranking) != s.profile.Size() {
		s.logger.Debug("partial edit ignored", "agent", agent, "listed", len(ranking))
		return false, nil
	}

	p, err := s.profile.WithRanking(agent, ranking)
	if err != nil {
		return false, err
	}
	if sameAgents(s.profile.Ranking(agent), ranking) {
		return false, nil
	}

	s.SetProfile(p)
	return true, nil
}

func sameAgents(a, b []sm.Agent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Step advances the courtship by one proposal.
func (s *Session) Step() (sm.Proposal, error) {
	return s.engine.Step()
}

// Run advances the courtship to convergence.
func (s *Session) Run() sm.Matching {
	return s.engine.Run()
}

// Snapshot is what a presentation layer needs to draw the courtship.
type Snapshot struct {
	Side        string        `json:"side"`
	Phase       string        `json:"phase"`
	Steps       int           `json:"steps"`
	Engagements sm.Matching   `json:"engagements"`
	Free        []sm.Agent    `json:"free"`
	History     []sm.Proposal `json:"history"`

	// Score of the current engagements, counting engaged agents only.
	Score sm.Score `json:"score"`
}

func (s *Session) Snapshot() Snapshot {
	engagements := s.engine.Engagements()
	return Snapshot{
		Side:        s.opts.Side.String(),
		Phase:       s.engine.Phase().String(),
		Steps:       s.engine.Steps(),
		Engagements: engagements,
		Free:        s.engine.Free(),
		History:     s.engine.History(),
		Score:       sm.ScoreOf(engagements, s.profile, s.opts.Convention),
	}
}

// StableMatchings lists and scores every stable matching of the current
// profile, marking the Gale-Shapley results of both sides.
func (s *Session) StableMatchings(ctx context.Context) (explore.Report, error) {
	conv := s.opts.Convention
	x := &explore.Explorer{
		MaxCandidates:      s.opts.MaxCandidates,
		Convention:         &conv,
		CompareGaleShapley: true,
		Logger:             s.logger,
	}
	return x.Explore(ctx, s.profile)
}

// Fingerprint identifies the rankings of the current profile: equal
// profiles, agent orderings included, have equal fingerprints.
func (s *Session) Fingerprint() (string, error) {
	var sb strings.Builder
	for _, group := range [][]sm.Agent{s.profile.Proposers(), s.profile.Receivers()} {
		for _, a := range group {
			sb.WriteString(string(a))
			sb.WriteByte(':')
			for i, b := range s.profile.Ranking(a) {
				if i > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(string(b))
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	mh, err := multihash.Sum([]byte(sb.String()), multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return mh.B58String(), nil
}
