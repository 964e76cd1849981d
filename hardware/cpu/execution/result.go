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

// Package execution records the result of instruction execution. The Result
// type is updated by the cpu package as each instruction runs and is read by
// anything that wants to know what the CPU last did, the disassembly
// package's FormatResult() function in particular.
package execution

import "github.com/hexwick/gopher8/hardware/cpu/instructions"

// Result records the most recently executed instruction.
type Result struct {
	// Address the instruction was fetched from.
	Address uint16

	// Word is the full 16 bit instruction, big-endian.
	Word uint16

	// Defn is the matched instruction definition. nil if the word matched
	// no definition, which is the unimplemented instruction condition.
	Defn *instructions.Definition

	// Final is true once execution of the instruction has completed. the
	// other fields are undefined unless Final is true.
	Final bool
}

// Reset the result in preparation for a new instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.Word = 0
	r.Defn = nil
	r.Final = false
}
