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

package logger_test

import (
	"testing"

	"github.com/hexwick/gopher8/logger"
	"github.com/hexwick/gopher8/test"
)

func TestLog(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "test", "this is a test")
	tw := &test.CompareWriter{}
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	// consecutive identical entries collapse with a repeat count
	logger.Log(logger.Allow, "test", "this is a test")
	tw.Clear()
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test (repeat x2)\n"))

	logger.Logf(logger.Allow, "test", "%d is %s", 2, "two")
	tw.Clear()
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test (repeat x2)\ntest: 2 is two\n"))
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "test", "one")
	logger.Log(logger.Allow, "test", "two")
	logger.Log(logger.Allow, "test", "three")

	tw := &test.CompareWriter{}
	logger.Tail(tw, 2)
	test.ExpectedSuccess(t, tw.Compare("test: two\ntest: three\n"))

	// asking for more entries than exist writes them all
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectedSuccess(t, tw.Compare("test: one\ntest: two\ntest: three\n"))
}

func TestBorrowLog(t *testing.T) {
	logger.Clear()

	logger.Log(logger.Allow, "test", "borrowed")
	logger.BorrowLog(func(e []logger.Entry) {
		test.Equate(t, len(e), 1)
		test.Equate(t, e[0].String(), "test: borrowed\n")
	})
}

type denyAll struct{}

func (_ denyAll) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	logger.Clear()

	logger.Log(denyAll{}, "test", "should not appear")
	tw := &test.CompareWriter{}
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))
}
