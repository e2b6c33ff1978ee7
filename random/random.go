// This file is part of SphereWorld.
//
// SphereWorld is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SphereWorld is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SphereWorld.  If not, see <https://www.gnu.org/licenses/>.

// Package random provides the pseudo-random numbers used to scatter the
// spheres over the floor. The sequence is reproducible for a given seed so
// that the same scene appears on every run unless asked otherwise.
package random

import (
	"math/rand"
	"time"
)

// Random is a seeded random number generator. It is not safe for concurrent
// use.
type Random struct {
	seed int64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero seeds the generator from the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed that was used to create the generator.
func (r *Random) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in the half-open interval
// [0,n).
func (r *Random) Intn(n int) int {
	return r.rnd.Intn(n)
}

// Spread returns a value in the interval [-n*step, (n-1)*step] with a
// granularity of step. For example, Spread(200, 0.1) returns one of the
// values -20.0, -19.9, ... 19.9.
func (r *Random) Spread(n int, step float32) float32 {
	return float32(r.rnd.Intn(n*2)-n) * step
}
