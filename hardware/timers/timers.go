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

// Package timers implements the two 8 bit countdown timers. Both count down
// by one per frame and stop at zero. The sound timer's value is exposed like
// any other piece of machine state but no sound is ever produced.
package timers

import (
	"fmt"

	"github.com/hexwick/gopher8/environment"
)

// Timers are the delay and sound countdown timers.
type Timers struct {
	env *environment.Environment

	delay uint8
	sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers(env *environment.Environment) *Timers {
	return &Timers{env: env}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.delay, tmr.sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Step decrements each nonzero timer by one. Called once per frame, before
// any instruction in that frame executes.
func (tmr *Timers) Step() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}

// Delay returns the current value of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// Sound returns the current value of the sound timer.
func (tmr *Timers) Sound() uint8 {
	return tmr.sound
}

// SetDelay sets the delay timer.
func (tmr *Timers) SetDelay(val uint8) {
	tmr.delay = val
}

// SetSound sets the sound timer.
func (tmr *Timers) SetSound(val uint8) {
	tmr.sound = val
}
