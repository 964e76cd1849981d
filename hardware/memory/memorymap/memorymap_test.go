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

package memorymap_test

import (
	"testing"

	"github.com/hexwick/gopher8/hardware/memory/memorymap"
	"github.com/hexwick/gopher8/test"
)

func TestMapAddress(t *testing.T) {
	test.Equate(t, memorymap.MapAddress(0x0000).String(), "Reserved")
	test.Equate(t, memorymap.MapAddress(0x004f).String(), "Reserved")
	test.Equate(t, memorymap.MapAddress(0x0050).String(), "Font")
	test.Equate(t, memorymap.MapAddress(0x009f).String(), "Font")
	test.Equate(t, memorymap.MapAddress(0x00a0).String(), "Reserved")
	test.Equate(t, memorymap.MapAddress(0x01ff).String(), "Reserved")
	test.Equate(t, memorymap.MapAddress(0x0200).String(), "Program")
	test.Equate(t, memorymap.MapAddress(0x0fff).String(), "Program")
	test.Equate(t, memorymap.MapAddress(0x1000).String(), "undefined")
}

func TestProgramCapacity(t *testing.T) {
	test.Equate(t, memorymap.ProgramCapacity, 3584)
}
