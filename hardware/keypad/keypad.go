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

// Package keypad implements the sixteen key hexadecimal keypad as a single
// slot latch: the machine sees at most one pressed key at a time. Pressing a
// second key while another is held replaces the latched value and releasing
// any key clears the latch, whichever key it was.
//
// This is a known limitation carried over deliberately. Programs that rely
// on chorded keys will not see them; none of the classic programs do.
package keypad

import (
	"fmt"

	"github.com/hexwick/gopher8/environment"
)

// Keypad is the single slot key latch.
type Keypad struct {
	env *environment.Environment

	value uint8
	held  bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad(env *environment.Environment) *Keypad {
	return &Keypad{env: env}
}

func (key *Keypad) String() string {
	if !key.held {
		return "no key"
	}
	return fmt.Sprintf("key %01x", key.value)
}

// Reset clears the latch.
func (key *Keypad) Reset() {
	key.held = false
	key.value = 0
}

// Press latches a key. Values greater than 0x0f are not keys on this keypad
// and are ignored.
func (key *Keypad) Press(val uint8) {
	if val > 0x0f {
		return
	}
	key.value = val
	key.held = true
}

// Release clears the latch, regardless of which key the caller thinks it is
// releasing.
func (key *Keypad) Release() {
	key.held = false
}

// Pressed returns the latched key value and true, or zero and false when no
// key is held.
func (key *Keypad) Pressed() (uint8, bool) {
	if !key.held {
		return 0, false
	}
	return key.value, true
}
