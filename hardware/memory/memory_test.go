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

package memory_test

import (
	"errors"
	"testing"

	"github.com/hexwick/gopher8/hardware/memory"
	"github.com/hexwick/gopher8/hardware/memory/memorymap"
	"github.com/hexwick/gopher8/test"
)

func TestBounds(t *testing.T) {
	mem := memory.NewMemory(nil)

	// highest valid address
	err := mem.Write8(memorymap.Memtop, 0xff)
	test.ExpectedSuccess(t, err)
	v, err := mem.Read8(memorymap.Memtop)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0xff))

	// one past the top
	_, err = mem.Read8(memorymap.Memtop + 1)
	test.ExpectedFailure(t, err)
	if !errors.Is(err, memory.AddressError) {
		t.Errorf("expected AddressError, got: %v", err)
	}

	err = mem.Write8(0x1000, 0x00)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, memory.AddressError))
}

func TestReadInstruction(t *testing.T) {
	mem := memory.NewMemory(nil)

	// instruction words are big-endian
	test.ExpectedSuccess(t, mem.Write8(0x0200, 0x60))
	test.ExpectedSuccess(t, mem.Write8(0x0201, 0x05))
	w, err := mem.ReadInstruction(0x0200)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, uint16(0x6005))

	// a word straddling the top of memory is out of range
	_, err = mem.ReadInstruction(memorymap.Memtop)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, memory.AddressError))
}

func TestLoadFont(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.LoadFont()

	// first byte of glyph zero and last byte of glyph F
	v, err := mem.Read8(memorymap.OriginFont)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0xf0))
	v, err = mem.Read8(memorymap.MemtopFont)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0x80))

	// neighbouring bytes untouched
	v, _ = mem.Read8(memorymap.OriginFont - 1)
	test.Equate(t, v, uint8(0x00))
	v, _ = mem.Read8(memorymap.MemtopFont + 1)
	test.Equate(t, v, uint8(0x00))
}

func TestLoadProgram(t *testing.T) {
	mem := memory.NewMemory(nil)

	err := mem.LoadProgram([]byte{0x60, 0x05, 0x61, 0x03})
	test.ExpectedSuccess(t, err)
	v, _ := mem.Read8(memorymap.OriginProgram)
	test.Equate(t, v, uint8(0x60))
	v, _ = mem.Read8(memorymap.OriginProgram + 3)
	test.Equate(t, v, uint8(0x03))

	// a program of exactly the program capacity is fine
	err = mem.LoadProgram(make([]byte, memorymap.ProgramCapacity))
	test.ExpectedSuccess(t, err)

	// one byte more is not
	err = mem.LoadProgram(make([]byte, memorymap.ProgramCapacity+1))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, memory.ProgramTooLarge))
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.LoadFont()
	test.ExpectedSuccess(t, mem.LoadProgram([]byte{0x12, 0x00}))

	mem.Reset()

	// reset zeroes everything, including the font area
	for a := uint16(0); a <= memorymap.Memtop; a++ {
		if mem.Peek(a) != 0 {
			t.Fatalf("memory not zero at %#04x after reset", a)
		}
	}
}
