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

package performance_test

import (
	"testing"

	"github.com/hexwick/gopher8/performance"
	"github.com/hexwick/gopher8/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2.0, 60)
	test.Equate(t, fps, 60.0)
	test.Equate(t, accuracy, 100.0)

	fps, accuracy = performance.CalcFPS(60, 2.0, 60)
	test.Equate(t, fps, 30.0)
	test.Equate(t, accuracy, 50.0)

	// uncapped emulation has no meaningful accuracy figure
	fps, accuracy = performance.CalcFPS(1000, 2.0, 0)
	test.Equate(t, fps, 500.0)
	test.Equate(t, accuracy, 0.0)

	// a duration of zero cannot produce a frame rate
	fps, accuracy = performance.CalcFPS(100, 0, 60)
	test.Equate(t, fps, 0.0)
	test.Equate(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == performance.ProfileNone, true)

	p, err = performance.ParseProfileString("CPU")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == performance.ProfileCPU, true)

	p, err = performance.ParseProfileString("all")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p&performance.ProfileCPU == performance.ProfileCPU, true)
	test.Equate(t, p&performance.ProfileMem == performance.ProfileMem, true)
	test.Equate(t, p&performance.ProfileTrace == performance.ProfileTrace, true)

	_, err = performance.ParseProfileString("heap")
	test.ExpectedFailure(t, err)
}
