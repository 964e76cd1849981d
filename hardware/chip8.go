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

package hardware

import (
	"fmt"

	"github.com/hexwick/gopher8/environment"
	"github.com/hexwick/gopher8/hardware/cpu"
	"github.com/hexwick/gopher8/hardware/govern"
	"github.com/hexwick/gopher8/hardware/keypad"
	"github.com/hexwick/gopher8/hardware/memory"
	"github.com/hexwick/gopher8/hardware/preferences"
	"github.com/hexwick/gopher8/hardware/timers"
	"github.com/hexwick/gopher8/hardware/video"
)

// Chip8 is the top-level structure of the emulated machine. It ties the
// hardware components together and implements the frame stepper and the
// run-state lifecycle.
type Chip8 struct {
	Env *environment.Environment

	Mem    *memory.Memory
	CPU    *cpu.CPU
	Video  *video.Video
	Timers *timers.Timers
	Keypad *keypad.Keypad

	state govern.State

	// the error that halted the machine. valid only when state is Halted
	haltReason error

	frameCount  int
	totalCycles int64
}

// NewChip8 is the preferred method of initialisation for the Chip8 type. The
// machine is created in the NoRom state with zeroed memory; callers load the
// glyph table with LoadFont() and a program with Load().
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created for the machine's environment.
func NewChip8(label environment.Label, prefs *preferences.Preferences) (*Chip8, error) {
	c8 := &Chip8{state: govern.NoRom}

	// the machine is the random source's measure of emulation time
	env, err := environment.NewEnvironment(label, c8, prefs)
	if err != nil {
		return nil, fmt.Errorf("chip8: %w", err)
	}
	c8.Env = env

	c8.Mem = memory.NewMemory(env)
	c8.Video = video.NewVideo(env)
	c8.Timers = timers.NewTimers(env)
	c8.Keypad = keypad.NewKeypad(env)
	c8.CPU = cpu.NewCPU(env, c8.Mem, c8.Video, c8.Timers, c8.Keypad)

	return c8, nil
}

func (c8 *Chip8) String() string {
	return fmt.Sprintf("%s [%s]", c8.CPU, c8.state)
}

// TotalCycles implements the random.Clock interface.
func (c8 *Chip8) TotalCycles() int64 {
	return c8.totalCycles
}

// FrameCount returns the number of frames completed since the last reset.
func (c8 *Chip8) FrameCount() int {
	return c8.frameCount
}

// State returns the current run state of the machine.
func (c8 *Chip8) State() govern.State {
	return c8.state
}

// HaltReason returns the error that halted the machine. It returns nil
// unless the machine is in the Halted state.
func (c8 *Chip8) HaltReason() error {
	return c8.haltReason
}

// LoadFont copies the glyph table into memory. It is a distinct operation
// from Reset(), which zeroes the font area along with everything else.
func (c8 *Chip8) LoadFont() {
	c8.Mem.LoadFont()
}

// Load copies a program into memory at the program origin and puts the
// machine in the Running state. Nothing else is touched; callers wanting a
// clean machine use Reset() (and LoadFont()) first.
func (c8 *Chip8) Load(data []byte) error {
	if err := c8.Mem.LoadProgram(data); err != nil {
		return fmt.Errorf("chip8: %w", err)
	}
	c8.state = govern.Running
	return nil
}

// Pause stops the machine advancing. Pausing a machine without a program is
// allowed. A Halted machine stays halted, there is nothing to continue to.
func (c8 *Chip8) Pause() {
	if c8.state == govern.Running || c8.state == govern.NoRom {
		c8.state = govern.Paused
	}
}

// Resume continues a paused machine.
func (c8 *Chip8) Resume() {
	if c8.state == govern.Paused {
		c8.state = govern.Running
	}
}

// Reset returns the machine to its initial state: zeroed memory (including
// the glyph table), zeroed registers and framebuffer, empty call stack, both
// timers at zero, no latched key and the frame counter at zero. The run
// state returns to NoRom. Resetting twice in a row is the same as resetting
// once.
func (c8 *Chip8) Reset() {
	c8.Mem.Reset()
	c8.CPU.Reset()
	c8.Video.Reset()
	c8.Timers.Reset()
	c8.Keypad.Reset()

	c8.state = govern.NoRom
	c8.haltReason = nil
	c8.frameCount = 0
	c8.totalCycles = 0
}

// StepFrame advances the machine by one frame: each nonzero timer is
// decremented once and then the preferred number of instruction cycles are
// executed.
//
// The function does no pacing of its own. The caller decides when the next
// frame is due.
//
// A fatal error from the CPU stops the frame immediately and puts the
// machine in the Halted state; the error is returned and also available
// through HaltReason() thereafter. StepFrame does not gate on the run state,
// that too is the caller's responsibility.
func (c8 *Chip8) StepFrame() error {
	c8.Timers.Step()

	cycles := c8.Env.Prefs.CyclesPerFrame.Get().(int)
	for i := 0; i < cycles; i++ {
		c8.totalCycles++
		if err := c8.CPU.ExecuteInstruction(); err != nil {
			c8.state = govern.Halted
			c8.haltReason = err
			return err
		}
	}

	c8.frameCount++

	return nil
}
