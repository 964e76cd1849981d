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

package memory

import (
	"errors"
	"fmt"

	"github.com/hexwick/gopher8/environment"
	"github.com/hexwick/gopher8/hardware/memory/memorymap"
	"github.com/hexwick/gopher8/logger"
)

// Sentinel errors returned by the Memory type. Access outside the address
// space is never wrapped around silently; a program that computes a bad
// address has gone wrong and the machine should stop.
var (
	AddressError    = errors.New("memory: address out of range")
	ProgramTooLarge = errors.New("memory: program too large")
)

// Memory is the 4096 byte address space of the machine. All access by the
// CPU is through the Read8(), Write8() and ReadInstruction() functions, all
// of which bounds check the address.
type Memory struct {
	env *environment.Environment

	data [memorymap.MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment) *Memory {
	return &Memory{env: env}
}

// Reset the contents of memory to zero. Note that this includes the font
// table, which must be reloaded with LoadFont() before execution.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
}

// Read8 returns the byte at the address.
func (mem *Memory) Read8(address uint16) (uint8, error) {
	if address > memorymap.Memtop {
		return 0, fmt.Errorf("%w (%#04x)", AddressError, address)
	}
	return mem.data[address], nil
}

// Write8 writes a byte to the address.
func (mem *Memory) Write8(address uint16, data uint8) error {
	if address > memorymap.Memtop {
		return fmt.Errorf("%w (%#04x)", AddressError, address)
	}
	mem.data[address] = data
	return nil
}

// ReadInstruction returns the big-endian 16bit word at the address. the high
// byte is at the lower address.
func (mem *Memory) ReadInstruction(address uint16) (uint16, error) {
	hi, err := mem.Read8(address)
	if err != nil {
		return 0, err
	}
	lo, err := mem.Read8(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// LoadFont copies the glyph table into the font area of memory. Fonts are
// not restored by Reset() so this function must be called again before any
// subsequent program is run.
func (mem *Memory) LoadFont() {
	copy(mem.data[memorymap.OriginFont:memorymap.MemtopFont+1], fontData[:])
	logger.Logf(mem.env, "memory", "font table loaded at %#04x", memorymap.OriginFont)
}

// LoadProgram copies the program into the program area of memory. Programs
// larger than memorymap.ProgramCapacity cause an error before any byte is
// copied.
func (mem *Memory) LoadProgram(data []byte) error {
	if len(data) > memorymap.ProgramCapacity {
		return fmt.Errorf("%w (%d bytes)", ProgramTooLarge, len(data))
	}
	copy(mem.data[memorymap.OriginProgram:], data)
	logger.Logf(mem.env, "memory", "%d byte program loaded at %#04x", len(data), memorymap.OriginProgram)
	return nil
}

// Peek returns the byte at the address without any range checking. For
// presentation purposes only; the emulation itself always goes through
// Read8().
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address&memorymap.Memtop]
}
