// Copyright 2018 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License. See the AUTHORS file
// for names of contributors.

package randvar

import "math/rand/v2"

// Uniform is a random number generator that generates draws from a uniform
// distribution over the closed interval [min, max].
//
// Uniform is not safe for concurrent use; each goroutine should own its own
// generator and source.
type Uniform struct {
	rng      *rand.Rand
	min, max int
}

// NewUniform constructs a new Uniform generator with the given
// parameters. A nil rng is replaced by a randomly seeded source.
func NewUniform(rng *rand.Rand, min, max int) *Uniform {
	if max < min {
		min, max = max, min
	}
	return &Uniform{rng: ensureRand(rng), min: min, max: max}
}

// Int returns a random int between min and max, drawn from a uniform
// distribution.
func (g *Uniform) Int() int {
	return g.rng.IntN(g.max-g.min+1) + g.min
}
