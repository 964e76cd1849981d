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

package memorymap

// Area represents the different areas of the address space.
type Area int

func (a Area) String() string {
	switch a {
	case Reserved:
		return "Reserved"
	case Font:
		return "Font"
	case Program:
		return "Program"
	}

	return "undefined"
}

// The different areas of the address space. The reserved area is where the
// interpreter itself lived on the original machines; programs are never
// loaded there. The font area sits inside the reserved area.
const (
	Undefined Area = iota
	Reserved
	Font
	Program
)

// The size of the addressable memory and the last valid address.
const (
	MemorySize = 4096
	Memtop     = uint16(0x0fff)
)

// Origin and memtop of the font area. The font table is 16 glyphs of
// GlyphSize bytes each.
const (
	OriginFont = uint16(0x0050)
	MemtopFont = uint16(0x009f)
	GlyphSize  = uint16(5)
)

// Origin of the program area. Programs are always loaded at this address and
// the program counter is initialised to it.
const OriginProgram = uint16(0x0200)

// ProgramCapacity is the maximum size in bytes of a loaded program.
const ProgramCapacity = MemorySize - int(OriginProgram)

// MapAddress returns the Area the address is in. Addresses beyond Memtop
// return the Undefined area.
func MapAddress(address uint16) Area {
	switch {
	case address > Memtop:
		return Undefined
	case address >= OriginProgram:
		return Program
	case address >= OriginFont && address <= MemtopFont:
		return Font
	}

	return Reserved
}
