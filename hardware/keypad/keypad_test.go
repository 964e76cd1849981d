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

package keypad_test

import (
	"testing"

	"github.com/hexwick/gopher8/hardware/keypad"
	"github.com/hexwick/gopher8/test"
)

func TestLatch(t *testing.T) {
	key := keypad.NewKeypad(nil)

	_, ok := key.Pressed()
	test.Equate(t, ok, false)

	key.Press(0x0a)
	v, ok := key.Pressed()
	test.Equate(t, ok, true)
	test.Equate(t, v, uint8(0x0a))

	// a second press replaces the latch
	key.Press(0x01)
	v, ok = key.Pressed()
	test.Equate(t, ok, true)
	test.Equate(t, v, uint8(0x01))

	// any release clears the latch
	key.Release()
	_, ok = key.Pressed()
	test.Equate(t, ok, false)
}

func TestPressIgnoresNonKeys(t *testing.T) {
	key := keypad.NewKeypad(nil)

	key.Press(0x10)
	_, ok := key.Pressed()
	test.Equate(t, ok, false)

	// an out of range press does not disturb an existing latch
	key.Press(0x0f)
	key.Press(0xff)
	v, ok := key.Pressed()
	test.Equate(t, ok, true)
	test.Equate(t, v, uint8(0x0f))
}

func TestReset(t *testing.T) {
	key := keypad.NewKeypad(nil)
	key.Press(0x05)
	key.Reset()
	_, ok := key.Pressed()
	test.Equate(t, ok, false)
}
