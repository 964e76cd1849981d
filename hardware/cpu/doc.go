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

// Package cpu emulates the instruction dispatch of the CHIP-8 machine.
//
// Initialisation of the CPU is done with the NewCPU() function and execution
// is advanced one instruction at a time with ExecuteInstruction(). Pacing of
// instructions against the frame rate is the responsibility of the hardware
// package.
//
// The CPU fetches through the memory package and touches the video, timers
// and keypad peripherals directly; unlike some other 8bit machines there is
// no memory mapped IO to speak of.
//
// Errors returned by ExecuteInstruction() mean the running program has
// irretrievably gone wrong. The hardware package reacts by halting the
// machine. Unrecognised instructions meanwhile are logged and skipped, which
// is far more useful when playing ROMs of uneven quality.
package cpu
