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

// Package disassembly turns program files into readable listings.
//
// The disassembler is a plain linear sweep: every aligned 2-byte word of the
// program region is treated as an instruction. CHIP-8 programs mix
// instructions and sprite data freely so some entries of the listing will
// inevitably be data decoded as nonsense (or as nothing at all, in which
// case the word is listed raw). The sweep makes no attempt to follow the
// program flow; for a machine where the program region is at most 3584
// bytes this is good enough to find your way around a ROM.
//
// The FormatResult() function is the live counterpart of the sweep. It
// formats the execution result of the instruction the CPU has just run and
// is used by the debugging windows.
//
// Mnemonics follow Cowgod's conventions, the de facto standard for CHIP-8
// documentation.
package disassembly
