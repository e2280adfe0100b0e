// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package randvar provides seeded random sources and the random variables
// drawn by the tree generator and the question engine.
package randvar

import "math/rand/v2"

// NewRand creates a new random number generator with a random seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(0, rand.Uint64()))
}

// NewRandFromSeed creates a deterministic random number generator. A zero seed
// is treated as a request for a random seed.
func NewRandFromSeed(seed uint64) *rand.Rand {
	if seed == 0 {
		return NewRand()
	}
	return rand.New(rand.NewPCG(0, seed))
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return NewRand()
}

// Bernoulli returns true with probability p. Probabilities outside [0, 1] are
// clamped.
func Bernoulli(rng *rand.Rand, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return rng.Float64() < p
}

// Pick returns an element of s chosen uniformly at random. s must not be
// empty.
func Pick[T any](rng *rand.Rand, s []T) T {
	return s[rng.IntN(len(s))]
}
