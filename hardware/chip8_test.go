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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/hexwick/gopher8/environment"
	"github.com/hexwick/gopher8/hardware"
	"github.com/hexwick/gopher8/hardware/cpu/registers"
	"github.com/hexwick/gopher8/hardware/govern"
	"github.com/hexwick/gopher8/hardware/memory/memorymap"
	"github.com/hexwick/gopher8/test"
)

func newTestChip8(t *testing.T) *hardware.Chip8 {
	t.Helper()
	c8, err := hardware.NewChip8(environment.MainEmulation, nil)
	if err != nil {
		t.Fatalf("could not create machine: %v", err)
	}
	c8.Env.Normalise()
	return c8
}

func TestNewMachine(t *testing.T) {
	c8 := newTestChip8(t)

	test.Equate(t, c8.State().String(), "No ROM")
	test.Equate(t, c8.FrameCount(), 0)
	test.Equate(t, c8.TotalCycles(), 0)
	test.ExpectedSuccess(t, c8.HaltReason() == nil)
}

func TestLoad(t *testing.T) {
	c8 := newTestChip8(t)
	c8.LoadFont()

	err := c8.Load([]byte{0x12, 0x00})
	test.ExpectedSuccess(t, err)
	test.Equate(t, c8.State() == govern.Running, true)
	test.Equate(t, c8.Mem.Peek(memorymap.OriginProgram), uint8(0x12))

	// loading does not disturb the glyph table
	test.Equate(t, c8.Mem.Peek(memorymap.OriginFont), uint8(0xf0))
}

func TestStepFrame(t *testing.T) {
	c8 := newTestChip8(t)
	c8.LoadFont()

	// twelve increments of V0 followed by a jump back to the start. with the
	// default ten cycles per frame a single frame executes the first ten
	prog := make([]byte, 0, 26)
	for i := 0; i < 12; i++ {
		prog = append(prog, 0x70, 0x01)
	}
	prog = append(prog, 0x12, 0x00)
	test.ExpectedSuccess(t, c8.Load(prog))

	c8.Timers.SetDelay(5)
	c8.Timers.SetSound(1)

	test.ExpectedSuccess(t, c8.StepFrame())
	test.Equate(t, c8.CPU.V[0].Value(), uint8(10))
	test.Equate(t, c8.FrameCount(), 1)
	test.Equate(t, c8.TotalCycles(), 10)

	// each timer decrements once per frame, stopping at zero
	test.Equate(t, c8.Timers.Delay(), uint8(4))
	test.Equate(t, c8.Timers.Sound(), uint8(0))

	test.ExpectedSuccess(t, c8.StepFrame())
	test.Equate(t, c8.Timers.Sound(), uint8(0))
	test.Equate(t, c8.FrameCount(), 2)
}

func TestCyclesPerFramePreference(t *testing.T) {
	c8 := newTestChip8(t)
	test.ExpectedSuccess(t, c8.Env.Prefs.CyclesPerFrame.Set(3))

	prog := make([]byte, 0, 10)
	for i := 0; i < 4; i++ {
		prog = append(prog, 0x70, 0x01)
	}
	prog = append(prog, 0x12, 0x00)
	test.ExpectedSuccess(t, c8.Load(prog))

	test.ExpectedSuccess(t, c8.StepFrame())
	test.Equate(t, c8.CPU.V[0].Value(), uint8(3))

	// a cycles-per-frame value of less than one is refused
	test.ExpectedFailure(t, c8.Env.Prefs.CyclesPerFrame.Set(0))
}

func TestPauseResume(t *testing.T) {
	c8 := newTestChip8(t)

	// pausing a machine with no program is allowed
	c8.Pause()
	test.Equate(t, c8.State() == govern.Paused, true)

	// resume moves to Running even though nothing was loaded. stepping is
	// gated by the caller, not the machine
	c8.Resume()
	test.Equate(t, c8.State() == govern.Running, true)
}

func TestHalt(t *testing.T) {
	c8 := newTestChip8(t)

	// a return with an empty call stack halts the machine
	test.ExpectedSuccess(t, c8.Load([]byte{0x00, 0xee}))
	err := c8.StepFrame()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, registers.StackUnderflow))

	test.Equate(t, c8.State() == govern.Halted, true)
	test.ExpectedSuccess(t, errors.Is(c8.HaltReason(), registers.StackUnderflow))

	// the partial frame is not counted
	test.Equate(t, c8.FrameCount(), 0)

	// neither pause nor resume leaves the Halted state
	c8.Pause()
	test.Equate(t, c8.State() == govern.Halted, true)
	c8.Resume()
	test.Equate(t, c8.State() == govern.Halted, true)

	// reset does
	c8.Reset()
	test.Equate(t, c8.State() == govern.NoRom, true)
	test.ExpectedSuccess(t, c8.HaltReason() == nil)
}

func TestRunForFrameCount(t *testing.T) {
	c8 := newTestChip8(t)

	// running a machine with no program is refused
	test.ExpectedFailure(t, c8.RunForFrameCount(1, nil))

	test.ExpectedSuccess(t, c8.Load([]byte{0x70, 0x01, 0x12, 0x00}))
	test.ExpectedSuccess(t, c8.RunForFrameCount(25, nil))
	test.Equate(t, c8.FrameCount(), 25)

	// the continueCheck function can end the run early
	test.ExpectedSuccess(t, c8.RunForFrameCount(100, func(frame int) (bool, error) {
		return frame < 30, nil
	}))
	test.Equate(t, c8.FrameCount(), 30)
}

func TestRun(t *testing.T) {
	c8 := newTestChip8(t)
	test.ExpectedSuccess(t, c8.Load([]byte{0x70, 0x01, 0x12, 0x00}))

	// run until the machine has produced fifty frames
	err := c8.Run(func() (bool, error) {
		return c8.FrameCount() < 50, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, c8.FrameCount(), 50)

	// an error from the continueCheck function ends the run and is returned
	// unchanged
	stop := errors.New("stop")
	err = c8.Run(func() (bool, error) {
		return true, stop
	})
	test.ExpectedSuccess(t, errors.Is(err, stop))
}

func TestReset(t *testing.T) {
	c8 := newTestChip8(t)
	c8.LoadFont()
	test.ExpectedSuccess(t, c8.Load([]byte{0x60, 0xff, 0xa2, 0x00, 0x12, 0x00}))
	test.ExpectedSuccess(t, c8.StepFrame())

	c8.Reset()

	test.Equate(t, c8.State() == govern.NoRom, true)
	test.Equate(t, c8.FrameCount(), 0)
	test.Equate(t, c8.TotalCycles(), 0)
	test.Equate(t, c8.CPU.V[0].Value(), uint8(0))
	test.Equate(t, c8.CPU.PC.Address(), uint16(memorymap.OriginProgram))

	// memory is zeroed, including the glyph table. the load-order dependency
	// is deliberate: callers reload the font after a reset
	test.Equate(t, c8.Mem.Peek(memorymap.OriginFont), uint8(0x00))
	test.Equate(t, c8.Mem.Peek(memorymap.OriginProgram), uint8(0x00))

	// resetting twice is the same as resetting once
	c8.Reset()
	test.Equate(t, c8.State() == govern.NoRom, true)
	test.Equate(t, c8.FrameCount(), 0)
	test.Equate(t, c8.Mem.Peek(memorymap.OriginProgram), uint8(0x00))
}
