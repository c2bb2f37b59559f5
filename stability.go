// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

// IsStable reports whether m has no blocking pair under p. A blocking pair
// is a proposer and a receiver who both strictly prefer each other to their
// assigned partners.
//
// m must be a complete matching over p's agents; anything else panics.
func IsStable(m Matching, p *Profile) bool {
	return p.isStable(p.permOf(m), nil)
}

// BlockingPairs returns every blocking pair of m, in proposer order and then
// in the proposer's preference order.
func BlockingPairs(m Matching, p *Profile) []Pair {
	perm := p.permOf(m)
	inv := inverse(perm)

	var pairs []Pair
	for i, j := range perm {
		for _, r := range p.prefs[Proposers][i][:p.rank[Proposers][i][j]] {
			if p.rank[Receivers][r][i] < p.rank[Receivers][r][inv[r]] {
				pairs = append(pairs, Pair{Proposer: p.proposers[i], Receiver: p.receivers[r]})
			}
		}
	}
	return pairs
}

// isStable checks perm, where proposer i is matched to receiver perm[i].
// inv may be a scratch buffer of len(perm) or nil.
//
// Both sides are scanned. The receiver-side scan never finds a pair the
// proposer-side scan missed on a bijection.
func (p *Profile) isStable(perm, inv []int) bool {
	if inv == nil {
		inv = make([]int, len(perm))
	}
	for i, j := range perm {
		inv[j] = i
	}

	pRank, rRank := p.rank[Proposers], p.rank[Receivers]

	for i, j := range perm {
		for _, r := range p.prefs[Proposers][i][:pRank[i][j]] {
			if rRank[r][i] < rRank[r][inv[r]] {
				return false
			}
		}
	}

	for j, i := range inv {
		for _, q := range p.prefs[Receivers][j][:rRank[j][i]] {
			if pRank[q][j] < pRank[q][perm[q]] {
				return false
			}
		}
	}

	return true
}

func inverse(perm []int) []int {
	inv := make([]int, len(perm))
	for i, j := range perm {
		inv[j] = i
	}
	return inv
}
