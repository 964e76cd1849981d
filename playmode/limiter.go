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

package playmode

import (
	"fmt"
	"time"
)

// limiter paces the play loop to the requested frame rate. everything runs
// on the one goroutine so no synchronisation is required.
type limiter struct {
	// the requested number of frames per second. zero or less means no
	// ceiling is applied
	requested int

	// whether checkFrame() waits on the pulse
	active bool

	// the most recent measurement of the actual frame rate
	actual float32

	// pulse that performs the limiting. the duration of the ticker is set
	// when the frame rate changes
	pulse *time.Ticker

	// measurement
	measureCt      int
	measureTime    time.Time
	measuringPulse *time.Ticker
}

func newLimiter() *limiter {
	return &limiter{
		measureTime:    time.Now(),
		pulse:          time.NewTicker(time.Millisecond * 10),
		measuringPulse: time.NewTicker(time.Second),
	}
}

// setRate is called every frame with the current frame rate ceiling
// preference, which can change at any time through the preferences window.
// the ticker is only reset when the value has actually changed.
func (lmtr *limiter) setRate(fps int) {
	if fps == lmtr.requested {
		return
	}
	lmtr.requested = fps

	if fps <= 0 {
		lmtr.active = false
		return
	}
	lmtr.active = true

	// set duration to wait according to the requested FPS rate
	rate := float32(1000000.0) / float32(fps)
	dur, _ := time.ParseDuration(fmt.Sprintf("%fus", rate))
	lmtr.pulse.Reset(dur)

	// restart actual FPS rate measurement values
	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// checkFrame should be called every frame.
func (lmtr *limiter) checkFrame() {
	lmtr.measureCt++
	if lmtr.active {
		<-lmtr.pulse.C
	}
}

// measures the actual frame rate on every tick of the measuringPulse ticker.
func (lmtr *limiter) measureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.actual = float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())

		// reset time and count ready for next measurement
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}
