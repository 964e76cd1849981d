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

package registers_test

import (
	"testing"

	"github.com/hexwick/gopher8/hardware/cpu/registers"
	"github.com/hexwick/gopher8/test"
)

func TestLoadAndValue(t *testing.T) {
	r := registers.NewRegister(0, "V0")
	test.Equate(t, r.Value(), uint8(0))
	test.Equate(t, r.Label(), "V0")
	test.Equate(t, r.String(), "V0=0x00")

	r.Load(0xab)
	test.Equate(t, r.Value(), uint8(0xab))
	test.Equate(t, r.String(), "V0=0xab")
}

func TestAdd(t *testing.T) {
	r := registers.NewRegister(250, "V1")

	// no overflow
	carry := r.Add(5)
	test.Equate(t, r.Value(), uint8(255))
	test.Equate(t, carry, false)

	// overflow wraps
	carry = r.Add(1)
	test.Equate(t, r.Value(), uint8(0))
	test.Equate(t, carry, true)

	// the largest possible addition
	r.Load(0xff)
	carry = r.Add(0xff)
	test.Equate(t, r.Value(), uint8(0xfe))
	test.Equate(t, carry, true)
}

func TestSubtract(t *testing.T) {
	r := registers.NewRegister(5, "V2")

	// no underflow
	underflow := r.Subtract(3)
	test.Equate(t, r.Value(), uint8(2))
	test.Equate(t, underflow, false)

	// subtracting the same value is not an underflow
	underflow = r.Subtract(2)
	test.Equate(t, r.Value(), uint8(0))
	test.Equate(t, underflow, false)

	// underflow wraps
	underflow = r.Subtract(1)
	test.Equate(t, r.Value(), uint8(0xff))
	test.Equate(t, underflow, true)
}

func TestBitwise(t *testing.T) {
	r := registers.NewRegister(0x0f, "V3")

	r.Or(0xf0)
	test.Equate(t, r.Value(), uint8(0xff))

	r.And(0x3c)
	test.Equate(t, r.Value(), uint8(0x3c))

	r.Xor(0xff)
	test.Equate(t, r.Value(), uint8(0xc3))
}

func TestShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "V4")

	test.Equate(t, r.Lsb(), uint8(1))
	test.Equate(t, r.Msb(), uint8(1))

	r.ShiftRight()
	test.Equate(t, r.Value(), uint8(0x40))
	test.Equate(t, r.Lsb(), uint8(0))
	test.Equate(t, r.Msb(), uint8(0))

	r.ShiftLeft()
	test.Equate(t, r.Value(), uint8(0x80))
	test.Equate(t, r.Msb(), uint8(1))

	// msb falls off the end
	r.ShiftLeft()
	test.Equate(t, r.Value(), uint8(0x00))
}
