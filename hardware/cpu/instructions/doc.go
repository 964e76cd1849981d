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

// Package instructions defines the 34 instructions of the interpreter. The
// historic 0nnn machine-code-call pattern is deliberately not defined;
// programs that use it trip the unimplemented instruction condition, like
// any other unmatched word.
//
// The Decode() function resolves an instruction word to its Definition. The
// cpu package switches on Definition.Operator for execution; the disassembly
// package uses the same Definition for presentation, which keeps the two
// views of a program in agreement by construction.
package instructions
