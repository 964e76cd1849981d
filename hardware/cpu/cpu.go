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

package cpu

import (
	"fmt"

	"github.com/hexwick/gopher8/environment"
	"github.com/hexwick/gopher8/hardware/cpu/execution"
	"github.com/hexwick/gopher8/hardware/cpu/instructions"
	"github.com/hexwick/gopher8/hardware/cpu/registers"
	"github.com/hexwick/gopher8/hardware/keypad"
	"github.com/hexwick/gopher8/hardware/memory"
	"github.com/hexwick/gopher8/hardware/memory/memorymap"
	"github.com/hexwick/gopher8/hardware/timers"
	"github.com/hexwick/gopher8/hardware/video"
	"github.com/hexwick/gopher8/logger"
)

// the register that receives the carry, borrow, shift and collision flags.
const flagRegister = 0xf

// CPU implements the instruction set of the CHIP-8 machine. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	env *environment.Environment

	V     [16]registers.Register
	I     registers.Index
	PC    registers.ProgramCounter
	Stack registers.CallStack

	mem *memory.Memory
	vid *video.Video
	tmr *timers.Timers
	key *keypad.Keypad

	// details of the last executed instruction. the Final field is false if
	// execution failed part way through
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The env
// argument can be nil, in which case the quirk preferences are treated as
// disabled and the random instruction always produces zero.
func NewCPU(env *environment.Environment, mem *memory.Memory,
	vid *video.Video, tmr *timers.Timers, key *keypad.Keypad) *CPU {
	mc := &CPU{
		env: env,
		mem: mem,
		vid: vid,
		tmr: tmr,
		key: key,
		I:   registers.NewIndex(0),
		PC:  registers.NewProgramCounter(memorymap.OriginProgram),
	}

	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%01X", i))
	}

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s", mc.PC, mc.I, mc.Stack)
}

// Reset reinitialises all registers and the call stack. The program counter
// returns to the top of the program area.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.I.Load(0)
	mc.PC.Load(memorymap.OriginProgram)
	mc.Stack.Reset()
}

// loadFlag loads the flag register with one or zero.
func (mc *CPU) loadFlag(set bool) {
	if set {
		mc.V[flagRegister].Load(1)
	} else {
		mc.V[flagRegister].Load(0)
	}
}

// the shift instructions operate on a copy of the second operand register
// when the shiftswap preference is enabled.
func (mc *CPU) shiftSwap() bool {
	if mc.env == nil {
		return false
	}
	return mc.env.Prefs.ShiftSwap.Get().(bool)
}

// the jump-with-offset instruction adds VX rather than V0 when the
// complexjump preference is enabled.
func (mc *CPU) complexJump() bool {
	if mc.env == nil {
		return false
	}
	return mc.env.Prefs.ComplexJump.Get().(bool)
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// current program counter.
//
// Returned errors indicate that the machine has stopped working: the address
// space has been left, or the call stack has been over- or under-run. In all
// of these cases the program itself has gone wrong and there is nothing
// sensible the machine can do to continue.
//
// Unrecognised instructions are not fatal. They are logged and skipped over.
func (mc *CPU) ExecuteInstruction() error {
	address := mc.PC.Address()

	word, err := mc.mem.ReadInstruction(address)
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}

	// the program counter advances over the instruction immediately. flow
	// control instructions adjust it again as required
	mc.PC.Advance()

	defn := instructions.Decode(word)

	mc.LastResult.Reset()
	mc.LastResult.Address = address
	mc.LastResult.Word = word
	mc.LastResult.Defn = defn

	if defn == nil {
		logger.Logf(mc.env, "cpu", "unimplemented instruction (%#04x) at address %#04x", word, address)
		mc.LastResult.Final = true
		return nil
	}

	// operand fields. not every instruction uses every field
	x := uint8((word >> 8) & 0x000f)
	y := uint8((word >> 4) & 0x000f)
	n := uint8(word & 0x000f)
	nn := uint8(word & 0x00ff)
	nnn := word & 0x0fff

	switch defn.Operator {
	case instructions.Cls:
		mc.vid.Clear()

	case instructions.Ret:
		ret, err := mc.Stack.Pop()
		if err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		mc.PC.Load(ret)

	case instructions.Jump:
		mc.PC.Load(nnn)

	case instructions.Call:
		if err := mc.Stack.Push(mc.PC.Address()); err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		mc.PC.Load(nnn)

	case instructions.SkipEqByte:
		if mc.V[x].Value() == nn {
			mc.PC.Advance()
		}

	case instructions.SkipNeByte:
		if mc.V[x].Value() != nn {
			mc.PC.Advance()
		}

	case instructions.SkipEqRegister:
		if mc.V[x].Value() == mc.V[y].Value() {
			mc.PC.Advance()
		}

	case instructions.LoadByte:
		mc.V[x].Load(nn)

	case instructions.AddByte:
		// add-immediate never touches the flag register
		mc.V[x].Add(nn)

	case instructions.LoadRegister:
		mc.V[x].Load(mc.V[y].Value())

	case instructions.Or:
		mc.V[x].Or(mc.V[y].Value())

	case instructions.And:
		mc.V[x].And(mc.V[y].Value())

	case instructions.Xor:
		mc.V[x].Xor(mc.V[y].Value())

	case instructions.AddRegister:
		// the flag is written after the result. when X is the flag register
		// the carry is all that remains
		carry := mc.V[x].Add(mc.V[y].Value())
		mc.loadFlag(carry)

	case instructions.Sub:
		borrow := mc.V[x].Subtract(mc.V[y].Value())
		mc.loadFlag(!borrow)

	case instructions.ShiftRight:
		if mc.shiftSwap() {
			mc.V[x].Load(mc.V[y].Value())
		}
		// the flag is written before the shift. when X is the flag register
		// the shift operates on the flag value
		mc.V[flagRegister].Load(mc.V[x].Lsb())
		mc.V[x].ShiftRight()

	case instructions.SubN:
		// reverse-subtract leaves the target register untouched on underflow
		if mc.V[y].Value() < mc.V[x].Value() {
			mc.loadFlag(true)
		} else {
			diff := mc.V[y].Value() - mc.V[x].Value()
			mc.V[x].Load(diff)
			mc.loadFlag(false)
		}

	case instructions.ShiftLeft:
		if mc.shiftSwap() {
			mc.V[x].Load(mc.V[y].Value())
		}
		mc.V[flagRegister].Load(mc.V[x].Msb())
		mc.V[x].ShiftLeft()

	case instructions.SkipNeRegister:
		if mc.V[x].Value() != mc.V[y].Value() {
			mc.PC.Advance()
		}

	case instructions.LoadIndex:
		mc.I.Load(nnn)

	case instructions.JumpOffset:
		if mc.complexJump() {
			mc.PC.Load(nnn + uint16(mc.V[x].Value()))
		} else {
			mc.PC.Load(nnn + uint16(mc.V[0].Value()))
		}

	case instructions.Random:
		var r uint8
		if mc.env != nil {
			r = uint8(mc.env.Random.Intn(256))
		}
		mc.V[x].Load(r & nn)

	case instructions.Draw:
		read := func(row uint8) (uint8, error) {
			return mc.mem.Read8(mc.I.Address() + uint16(row))
		}
		mc.V[flagRegister].Load(0)
		collision, err := mc.vid.DrawSprite(mc.V[x].Value(), mc.V[y].Value(), n, read)
		if err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		mc.loadFlag(collision)

	case instructions.SkipKey:
		if k, ok := mc.key.Pressed(); ok && k == mc.V[x].Value() {
			mc.PC.Advance()
		}

	case instructions.SkipNoKey:
		if k, ok := mc.key.Pressed(); !ok || k != mc.V[x].Value() {
			mc.PC.Advance()
		}

	case instructions.ReadDelay:
		mc.V[x].Load(mc.tmr.Delay())

	case instructions.WaitKey:
		if k, ok := mc.key.Pressed(); ok {
			mc.V[x].Load(k)
		} else {
			// execution holds on this instruction until a key is latched
			mc.PC.Rewind()
		}

	case instructions.SetDelay:
		mc.tmr.SetDelay(mc.V[x].Value())

	case instructions.SetSound:
		mc.tmr.SetSound(mc.V[x].Value())

	case instructions.AddIndex:
		mc.I.Add(mc.V[x].Value())
		// the flag is only ever raised, never lowered. the comparison with
		// the end of the address space is strict
		if mc.I.Address() > memorymap.MemorySize {
			mc.loadFlag(true)
		}

	case instructions.LoadGlyph:
		glyph := mc.V[x].Value() & 0x0f
		mc.I.Load(memorymap.OriginFont + uint16(glyph)*memorymap.GlyphSize)

	case instructions.StoreBCD:
		v := mc.V[x].Value()
		if err := mc.mem.Write8(mc.I.Address(), v/100); err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		if err := mc.mem.Write8(mc.I.Address()+1, (v%100)/10); err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		if err := mc.mem.Write8(mc.I.Address()+2, v%10); err != nil {
			return fmt.Errorf("cpu: %w", err)
		}

	case instructions.StoreRegisters:
		for i := uint8(0); i <= x; i++ {
			if err := mc.mem.Write8(mc.I.Address()+uint16(i), mc.V[i].Value()); err != nil {
				return fmt.Errorf("cpu: %w", err)
			}
		}

	case instructions.LoadRegisters:
		for i := uint8(0); i <= x; i++ {
			v, err := mc.mem.Read8(mc.I.Address() + uint16(i))
			if err != nil {
				return fmt.Errorf("cpu: %w", err)
			}
			mc.V[i].Load(v)
		}
	}

	mc.LastResult.Final = true

	return nil
}
