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

package timers_test

import (
	"testing"

	"github.com/hexwick/gopher8/hardware/timers"
	"github.com/hexwick/gopher8/test"
)

func TestStep(t *testing.T) {
	tmr := timers.NewTimers(nil)

	tmr.SetDelay(2)
	tmr.SetSound(1)

	tmr.Step()
	test.Equate(t, tmr.Delay(), uint8(1))
	test.Equate(t, tmr.Sound(), uint8(0))

	tmr.Step()
	test.Equate(t, tmr.Delay(), uint8(0))
	test.Equate(t, tmr.Sound(), uint8(0))

	// timers floor at zero, they never wrap
	tmr.Step()
	test.Equate(t, tmr.Delay(), uint8(0))
	test.Equate(t, tmr.Sound(), uint8(0))
}

func TestReset(t *testing.T) {
	tmr := timers.NewTimers(nil)
	tmr.SetDelay(0xff)
	tmr.SetSound(0xff)
	tmr.Reset()
	test.Equate(t, tmr.Delay(), uint8(0))
	test.Equate(t, tmr.Sound(), uint8(0))
}
