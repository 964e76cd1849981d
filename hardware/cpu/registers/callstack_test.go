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

package registers_test

import (
	"errors"
	"testing"

	"github.com/hexwick/gopher8/hardware/cpu/registers"
	"github.com/hexwick/gopher8/test"
)

func TestCallStack(t *testing.T) {
	var stk registers.CallStack

	test.Equate(t, stk.Depth(), 0)

	test.ExpectedSuccess(t, stk.Push(0x0202))
	test.ExpectedSuccess(t, stk.Push(0x0300))
	test.Equate(t, stk.Depth(), 2)

	a, err := stk.Pop()
	test.ExpectedSuccess(t, err)
	test.Equate(t, a, 0x0300)

	a, err = stk.Pop()
	test.ExpectedSuccess(t, err)
	test.Equate(t, a, 0x0202)
	test.Equate(t, stk.Depth(), 0)
}

func TestCallStackUnderflow(t *testing.T) {
	var stk registers.CallStack

	_, err := stk.Pop()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, registers.StackUnderflow))
}

func TestCallStackOverflow(t *testing.T) {
	var stk registers.CallStack

	for i := 0; i < registers.StackDepth; i++ {
		test.ExpectedSuccess(t, stk.Push(uint16(0x0200+i*2)))
	}
	test.Equate(t, stk.Depth(), registers.StackDepth)

	err := stk.Push(0x0400)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, registers.StackOverflow))

	// a failed push leaves the stack intact
	test.Equate(t, stk.Depth(), registers.StackDepth)
}

func TestCallStackEntries(t *testing.T) {
	var stk registers.CallStack

	test.ExpectedSuccess(t, stk.Push(0x0202))
	test.ExpectedSuccess(t, stk.Push(0x0204))

	e := stk.Entries()
	test.Equate(t, len(e), 2)
	test.Equate(t, e[0], 0x0202)
	test.Equate(t, e[1], 0x0204)

	// the returned slice is a copy
	e[0] = 0xffff
	a, _ := stk.Pop()
	test.Equate(t, a, 0x0204)
	a, _ = stk.Pop()
	test.Equate(t, a, 0x0202)
}

func TestCallStackReset(t *testing.T) {
	var stk registers.CallStack

	test.ExpectedSuccess(t, stk.Push(0x0202))
	stk.Reset()
	test.Equate(t, stk.Depth(), 0)
	_, err := stk.Pop()
	test.ExpectedFailure(t, err)
}
