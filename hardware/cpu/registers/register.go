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

package registers

import "fmt"

// Register is an 8 bit general purpose data register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) Register {
	return Register{
		label: label,
		value: val,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load a value into the register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add a value to the register, wrapping on overflow. Returns true if the
// addition overflowed 8 bits.
func (r *Register) Add(val uint8) bool {
	v := uint16(r.value) + uint16(val)
	r.value = uint8(v)
	return v > 0xff
}

// Subtract a value from the register, wrapping on underflow. Returns true if
// the subtraction underflowed.
func (r *Register) Subtract(val uint8) bool {
	underflow := val > r.value
	r.value -= val
	return underflow
}

// Or performs a bitwise OR of the register with the value.
func (r *Register) Or(val uint8) {
	r.value |= val
}

// And performs a bitwise AND of the register with the value.
func (r *Register) And(val uint8) {
	r.value &= val
}

// Xor performs a bitwise exclusive OR of the register with the value.
func (r *Register) Xor(val uint8) {
	r.value ^= val
}

// Lsb returns the least significant bit of the register.
func (r Register) Lsb() uint8 {
	return r.value & 0x01
}

// Msb returns the most significant bit of the register, shifted down to bit
// zero.
func (r Register) Msb() uint8 {
	return (r.value & 0x80) >> 7
}

// ShiftRight shifts the register one bit to the right.
func (r *Register) ShiftRight() {
	r.value >>= 1
}

// ShiftLeft shifts the register one bit to the left.
func (r *Register) ShiftLeft() {
	r.value <<= 1
}
