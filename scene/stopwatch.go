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

package scene

import "time"

// Clock returns the current time.
type Clock func() time.Time

// Stopwatch measures the time since it was created or last reset.
type Stopwatch struct {
	clock Clock
	start time.Time
}

// NewStopwatch is the preferred method of initialisation for the Stopwatch
// type. A nil clock means the system clock.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = time.Now
	}
	return &Stopwatch{
		clock: clock,
		start: clock(),
	}
}

// Reset the stopwatch to zero.
func (sw *Stopwatch) Reset() {
	sw.start = sw.clock()
}

// Elapsed returns the time since the stopwatch was created or reset.
func (sw *Stopwatch) Elapsed() time.Duration {
	return sw.clock().Sub(sw.start)
}

// ElapsedSeconds is the same as Elapsed() but returns the result as a number
// of seconds.
func (sw *Stopwatch) ElapsedSeconds() float32 {
	return float32(sw.Elapsed().Seconds())
}
