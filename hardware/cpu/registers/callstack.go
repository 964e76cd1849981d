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

package registers

import (
	"errors"
	"fmt"
)

// StackDepth is the maximum number of return addresses the call stack can
// hold. Well formed programs never nest subroutines anywhere near this
// deeply.
const StackDepth = 16

// Sentinel errors returned by the CallStack type. Both are fatal to the
// running program.
var (
	StackUnderflow = errors.New("call stack: underflow")
	StackOverflow  = errors.New("call stack: overflow")
)

// CallStack is the fixed capacity stack of subroutine return addresses.
type CallStack struct {
	entries [StackDepth]uint16
	depth   int
}

func (stk CallStack) String() string {
	return fmt.Sprintf("SP=%d", stk.depth)
}

// Label returns the canonical name of the call stack.
func (stk CallStack) Label() string {
	return "Stack"
}

// Reset empties the call stack.
func (stk *CallStack) Reset() {
	stk.depth = 0
}

// Depth returns the number of return addresses currently on the stack.
func (stk CallStack) Depth() int {
	return stk.depth
}

// Push a return address onto the stack.
func (stk *CallStack) Push(address uint16) error {
	if stk.depth >= StackDepth {
		return StackOverflow
	}
	stk.entries[stk.depth] = address
	stk.depth++
	return nil
}

// Pop the most recent return address from the stack.
func (stk *CallStack) Pop() (uint16, error) {
	if stk.depth == 0 {
		return 0, StackUnderflow
	}
	stk.depth--
	return stk.entries[stk.depth], nil
}

// Entries returns a copy of the addresses currently on the stack, oldest
// first. For presentation purposes.
func (stk CallStack) Entries() []uint16 {
	e := make([]uint16, stk.depth)
	copy(e, stk.entries[:stk.depth])
	return e
}
