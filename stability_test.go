// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import (
	"reflect"
	"testing"
)

func TestIsStable_Demo(t *testing.T) {
	p := demoProfile(t)

	firstChoices := pairs("A", "W", "B", "X", "C", "Y", "D", "Z")
	if !IsStable(firstChoices, p) {
		t.Error("first-choice matching should be stable")
	}

	// A and W prefer each other to their partners.
	swapped := pairs("A", "X", "B", "W", "C", "Y", "D", "Z")
	if IsStable(swapped, p) {
		t.Error("swapped matching should be unstable")
	}
	bp := BlockingPairs(swapped, p)
	if len(bp) == 0 || bp[0] != (Pair{Proposer: "A", Receiver: "W"}) {
		t.Errorf("BlockingPairs = %v, want A→W first", bp)
	}
}

func TestIsStable_Cyclic(t *testing.T) {
	p := cyclicProfile(t)

	cases := []struct {
		name   string
		m      Matching
		stable bool
	}{
		{"ProposerOptimal", pairs("a", "1", "b", "2", "c", "3"), true},
		{"Middle", pairs("a", "2", "b", "3", "c", "1"), true},
		{"ReceiverOptimal", pairs("a", "3", "b", "1", "c", "2"), true},
		{"Perm132", pairs("a", "1", "b", "3", "c", "2"), false},
		{"Perm213", pairs("a", "2", "b", "1", "c", "3"), false},
		{"Perm321", pairs("a", "3", "b", "2", "c", "1"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			first := IsStable(c.m, p)
			if first != c.stable {
				t.Errorf("IsStable = %v, want %v", first, c.stable)
			}
			if second := IsStable(c.m, p); second != first {
				t.Errorf("IsStable not idempotent: %v then %v", first, second)
			}
			if got := len(BlockingPairs(c.m, p)) == 0; got != c.stable {
				t.Errorf("BlockingPairs empty = %v, want %v", got, c.stable)
			}
		})
	}
}

func TestIsStable_InvalidMatchingPanics(t *testing.T) {
	p := demoProfile(t)

	expectPanic(t, "short matching", func() {
		IsStable(pairs("A", "W"), p)
	})
	expectPanic(t, "duplicate receiver", func() {
		IsStable(pairs("A", "W", "B", "W", "C", "Y", "D", "Z"), p)
	})
}

// The proposer-side scan alone decides stability: on every permutation of
// many random profiles, the full two-sided check agrees with the set of
// blocking pairs found from the proposer side only.
func TestIsStable_ProposerScanSufficient(t *testing.T) {
	for _, p := range randomProfiles(t, 4, 50, 7) {
		perm := []int{0, 1, 2, 3}
		for {
			m := p.matchingOf(perm)
			if got, want := IsStable(m, p), len(BlockingPairs(m, p)) == 0; got != want {
				t.Fatalf("%v: IsStable = %v, proposer scan says %v", m, got, want)
			}
			if !nextPermutation(perm) {
				break
			}
		}
	}
}

func TestBlockingPairs_Order(t *testing.T) {
	// Every receiver likes a best and every proposer likes 1 best.
	p := mustProfile(t,
		agents("a", "b"),
		agents("1", "2"),
		Preferences{"a": agents("1", "2"), "b": agents("1", "2")},
		Preferences{"1": agents("a", "b"), "2": agents("a", "b")})

	got := BlockingPairs(pairs("a", "2", "b", "1"), p)
	want := []Pair{{Proposer: "a", Receiver: "1"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BlockingPairs = %v, want %v", got, want)
	}
}
