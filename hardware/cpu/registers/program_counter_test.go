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

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x0200)
	test.Equate(t, pc.Address(), 0x0200)
	test.Equate(t, pc.String(), "PC=0x0200")

	pc.Advance()
	test.Equate(t, pc.Address(), 0x0202)

	pc.Rewind()
	test.Equate(t, pc.Address(), 0x0200)

	pc.Load(0x0abc)
	test.Equate(t, pc.Address(), 0x0abc)
}

func TestIndex(t *testing.T) {
	idx := registers.NewIndex(0)
	test.Equate(t, idx.Address(), 0x0000)

	idx.Load(0x0ffe)
	test.Equate(t, idx.Address(), 0x0ffe)
	test.Equate(t, idx.String(), "I=0x0ffe")

	// the index register is not masked to the address range
	idx.Add(0xff)
	test.Equate(t, idx.Address(), 0x10fd)
}
