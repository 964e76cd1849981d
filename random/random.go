// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package random centralises random number generation for the emulation.
//
// Numbers are a function of a per process base seed and the emulation's own
// clock, so that two machines at the same point of execution within the same
// process draw the same numbers. Setting ZeroSeed drops the process seed,
// making values a function of the emulation clock alone; tests use this to
// get reproducible sequences across processes.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is a measure of time within the emulation.
type Clock interface {
	TotalCycles() int64
}

// Random is a random number source that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use a zero base seed rather than the random process seed, making
	// random numbers predictable. for testing
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// A nil clock is allowed and behaves like a clock stuck at zero.
func NewRandom(clock Clock) *Random {
	return &Random{clock: clock}
}

func (rnd *Random) seed() int64 {
	var c int64
	if rnd.clock != nil {
		c = rnd.clock.TotalCycles()
	}
	if rnd.ZeroSeed {
		return c
	}
	return baseSeed + c
}

// Intn returns a number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rand.New(rand.NewSource(rnd.seed())).Intn(n)
}
