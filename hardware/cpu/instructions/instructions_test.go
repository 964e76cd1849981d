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

package instructions_test

import (
	"testing"

	"github.com/hexwick/gopher8/hardware/cpu/instructions"
	"github.com/hexwick/gopher8/test"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		op   instructions.Operator
	}{
		{0x00e0, instructions.Cls},
		{0x00ee, instructions.Ret},
		{0x1abc, instructions.Jump},
		{0x2abc, instructions.Call},
		{0x31ff, instructions.SkipEqByte},
		{0x41ff, instructions.SkipNeByte},
		{0x5120, instructions.SkipEqRegister},
		{0x61ff, instructions.LoadByte},
		{0x71ff, instructions.AddByte},
		{0x8120, instructions.LoadRegister},
		{0x8121, instructions.Or},
		{0x8122, instructions.And},
		{0x8123, instructions.Xor},
		{0x8124, instructions.AddRegister},
		{0x8125, instructions.Sub},
		{0x8126, instructions.ShiftRight},
		{0x8127, instructions.SubN},
		{0x812e, instructions.ShiftLeft},
		{0x9120, instructions.SkipNeRegister},
		{0xaabc, instructions.LoadIndex},
		{0xbabc, instructions.JumpOffset},
		{0xc1ff, instructions.Random},
		{0xd125, instructions.Draw},
		{0xe19e, instructions.SkipKey},
		{0xe1a1, instructions.SkipNoKey},
		{0xf107, instructions.ReadDelay},
		{0xf10a, instructions.WaitKey},
		{0xf115, instructions.SetDelay},
		{0xf118, instructions.SetSound},
		{0xf11e, instructions.AddIndex},
		{0xf129, instructions.LoadGlyph},
		{0xf133, instructions.StoreBCD},
		{0xf155, instructions.StoreRegisters},
		{0xf165, instructions.LoadRegisters},
	}

	for _, tc := range tests {
		def := instructions.Decode(tc.word)
		if def == nil {
			t.Fatalf("%#04x did not decode", tc.word)
		}
		test.Equate(t, int(def.Operator), int(tc.op))

		// the decoded word is an instance of the definition's mask/value
		// pattern
		test.Equate(t, tc.word&def.Mask, def.Value)
	}
}

func TestDecodeUnimplemented(t *testing.T) {
	// words that match no definition. 0nnn is the historic machine-code
	// call and is deliberately undefined
	for _, w := range []uint16{0x0000, 0x0123, 0x00ef, 0x5121, 0x8128, 0x812f, 0x9121, 0xe100, 0xe1a2, 0xf100, 0xf130, 0xf156} {
		if def := instructions.Decode(w); def != nil {
			t.Errorf("%#04x decoded to %s, expected no match", w, def)
		}
	}
}

func TestDefinitionsAgreeWithDecode(t *testing.T) {
	// every definition's value pattern decodes to that same definition
	for _, def := range instructions.Definitions {
		// use a representative word with all variable fields set
		word := def.Value | ^def.Mask&0x0fff
		d := instructions.Decode(word)
		if d == nil {
			t.Fatalf("representative word %#04x for %s did not decode", word, def)
		}
		test.Equate(t, int(d.Operator), int(def.Operator))
	}
}
