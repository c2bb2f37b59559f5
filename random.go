// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stablematch

import "math/rand"

// defaultSeed is used when RandomProfile gets a nil rng.
const defaultSeed int64 = 1

// RandomProfile draws every ranking as a uniform random permutation of the
// opposite group. A nil rng uses a fixed seed.
func RandomProfile(rng *rand.Rand, proposers, receivers []Agent) (*Profile, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	shuffled := func(agents []Agent) []Agent {
		s := append([]Agent(nil), agents...)
		rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		return s
	}

	proposerPrefs := make(Preferences, len(proposers))
	for _, a := range proposers {
		proposerPrefs[a] = shuffled(receivers)
	}
	receiverPrefs := make(Preferences, len(receivers))
	for _, a := range receivers {
		receiverPrefs[a] = shuffled(proposers)
	}

	return NewProfile(proposers, receivers, proposerPrefs, receiverPrefs)
}
