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

// Index is the 16 bit index register, used by the memory transfer and draw
// instructions as a base address. The register is never masked to the 12 bit
// address range; an out of range value is caught whenever it is used to
// access memory.
type Index struct {
	value uint16
}

// NewIndex is the preferred method of initialisation for the Index type.
func NewIndex(val uint16) Index {
	return Index{value: val}
}

func (idx Index) String() string {
	return fmt.Sprintf("I=%#04x", idx.value)
}

// Label returns the canonical name of the index register.
func (idx Index) Label() string {
	return "I"
}

// Address returns the current value of the index register.
func (idx Index) Address() uint16 {
	return idx.value
}

// Load a new address into the index register.
func (idx *Index) Load(val uint16) {
	idx.value = val
}

// Add a value to the index register.
func (idx *Index) Add(val uint8) {
	idx.value += uint16(val)
}
