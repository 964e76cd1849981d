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

package main_test

import (
	"testing"

	"github.com/hexwick/gopher8/environment"
	"github.com/hexwick/gopher8/hardware"
)

// a rough idea of the cost of the frame loop without any GUI in the way.
func BenchmarkStepFrame(b *testing.B) {
	c8, err := hardware.NewChip8(environment.MainEmulation, nil)
	if err != nil {
		b.Fatalf("could not create machine: %v", err)
	}
	c8.Env.Normalise()

	// a busy program: count with V0, draw a glyph and loop
	prog := []byte{
		0x70, 0x01,
		0xa0, 0x50,
		0xd0, 0x15,
		0x12, 0x00,
	}

	c8.LoadFont()
	if err := c8.Load(prog); err != nil {
		b.Fatalf("could not load program: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c8.StepFrame(); err != nil {
			b.Fatalf("frame error: %v", err)
		}
	}
}
