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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and contains references to all
// the machine's sub-systems. The machine is advanced one frame at a time
// with StepFrame(); there is no free-running mode and no internal timing.
// Pacing frames against the wall clock is the business of the playmode and
// performance packages.
//
// The emulation is single threaded. One goroutine creates the machine,
// steps it, and reads its state. Nothing in this package or its sub-packages
// takes a lock.
package hardware
