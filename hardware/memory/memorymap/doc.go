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

// Package memorymap describes the layout of the 4096 byte address space.
//
//	0x000 to 0x04f	reserved
//	0x050 to 0x09f	font table (16 glyphs of 5 bytes)
//	0x0a0 to 0x1ff	reserved
//	0x200 to 0xfff	program
//
// The MapAddress() function returns the Area for an address, which is useful
// when presenting memory to the user. The memory package enforces the hard
// limits; this package only describes them.
package memorymap
