// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"math/rand"
	"testing"
)

func agents(names ...string) []Agent {
	as := make([]Agent, len(names))
	for i, n := range names {
		as[i] = Agent(n)
	}
	return as
}

func mustProfile(t *testing.T, proposers, receivers []Agent, pp, rp Preferences) *Profile {
	t.Helper()
	p, err := NewProfile(proposers, receivers, pp, rp)
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	return p
}

// demoProfile is the four-by-four example where every agent's first choice
// is available to it.
func demoProfile(t *testing.T) *Profile {
	return mustProfile(t,
		agents("A", "B", "C", "D"),
		agents("W", "X", "Y", "Z"),
		Preferences{
			"A": agents("W", "X", "Y", "Z"),
			"B": agents("X", "Z", "W", "Y"),
			"C": agents("Y", "W", "Z", "X"),
			"D": agents("Z", "Y", "X", "W"),
		},
		Preferences{
			"W": agents("A", "B", "C", "D"),
			"X": agents("B", "C", "A", "D"),
			"Y": agents("C", "A", "D", "B"),
			"Z": agents("D", "C", "B", "A"),
		})
}

// cyclicProfile has three stable matchings: proposers get their first,
// second and third choices while receivers get their third, second and
// first.
func cyclicProfile(t *testing.T) *Profile {
	return mustProfile(t,
		agents("a", "b", "c"),
		agents("1", "2", "3"),
		Preferences{
			"a": agents("1", "2", "3"),
			"b": agents("2", "3", "1"),
			"c": agents("3", "1", "2"),
		},
		Preferences{
			"1": agents("b", "c", "a"),
			"2": agents("c", "a", "b"),
			"3": agents("a", "b", "c"),
		})
}

func pairs(kv ...string) Matching {
	m := make(Matching, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m = append(m, Pair{Proposer: Agent(kv[i]), Receiver: Agent(kv[i+1])})
	}
	return m
}

func randomProfiles(t *testing.T, n, count int, seed int64) []*Profile {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	proposers := make([]Agent, n)
	receivers := make([]Agent, n)
	for i := 0; i < n; i++ {
		proposers[i] = Agent(rune('A' + i))
		receivers[i] = Agent(rune('a' + i))
	}
	profiles := make([]*Profile, count)
	for i := range profiles {
		p, err := RandomProfile(rng, proposers, receivers)
		if err != nil {
			t.Fatalf("RandomProfile: %v", err)
		}
		profiles[i] = p
	}
	return profiles
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}
