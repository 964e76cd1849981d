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

// Package registers implements the register types of the CPU: the 8 bit
// data registers V0 to VF, the 16 bit program counter and index register,
// and the call stack.
//
// Mutating operations that produce a carry, borrow or shifted out bit return
// that information to the caller rather than storing it; whether and where
// the flag lands (invariably register VF) is instruction semantics and is
// decided by the cpu package.
package registers
