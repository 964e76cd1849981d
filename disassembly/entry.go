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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/hexwick/gopher8/hardware/cpu/execution"
	"github.com/hexwick/gopher8/hardware/cpu/instructions"
)

// Entry is a disassembled instruction word: the constituent parts of one
// line of a listing.
type Entry struct {
	// the address the word was read from
	Address uint16

	// the instruction word
	Word uint16

	// decoded definition. nil if the word matches no instruction, in which
	// case the Operator and Operand fields list the word raw
	Defn *instructions.Definition

	// string representations for the listing columns
	Operator string
	Operand  string
}

func (e Entry) String() string {
	s := fmt.Sprintf("$%04x  %04x  %-5s %s", e.Address, e.Word, e.Operator, e.Operand)
	return strings.TrimRight(s, " ")
}

// FormatResult creates an Entry from the execution result of the most
// recently executed instruction. Used by the debugging windows to describe
// what the CPU has just done.
func FormatResult(result execution.Result) Entry {
	return formatWord(result.Address, result.Word)
}

// formatWord is the shared formatting path of the linear sweep and
// FormatResult().
func formatWord(address uint16, word uint16) Entry {
	e := Entry{
		Address: address,
		Word:    word,
		Defn:    instructions.Decode(word),
	}

	if e.Defn == nil {
		e.Operator = "???"
		e.Operand = fmt.Sprintf("$%04x", word)
		return e
	}

	e.Operator = e.Defn.Mnemonic
	e.Operand = formatOperand(e.Defn.Operator, word)

	return e
}

// formatOperand renders the operand fields of the word in the Cowgod
// convention for the operator. The shared LD/ADD/JP/SE/SNE mnemonics are
// disambiguated by their operands.
func formatOperand(operator instructions.Operator, word uint16) string {
	x := (word >> 8) & 0x000f
	y := (word >> 4) & 0x000f
	n := word & 0x000f
	nn := word & 0x00ff
	nnn := word & 0x0fff

	switch operator {
	case instructions.Cls, instructions.Ret:
		return ""
	case instructions.Jump, instructions.Call:
		return fmt.Sprintf("$%03x", nnn)
	case instructions.SkipEqByte, instructions.SkipNeByte, instructions.LoadByte,
		instructions.AddByte, instructions.Random:
		return fmt.Sprintf("V%01X, $%02x", x, nn)
	case instructions.SkipEqRegister, instructions.SkipNeRegister,
		instructions.LoadRegister, instructions.Or, instructions.And,
		instructions.Xor, instructions.AddRegister, instructions.Sub,
		instructions.SubN, instructions.ShiftRight, instructions.ShiftLeft:
		return fmt.Sprintf("V%01X, V%01X", x, y)
	case instructions.LoadIndex:
		return fmt.Sprintf("I, $%03x", nnn)
	case instructions.JumpOffset:
		return fmt.Sprintf("V0, $%03x", nnn)
	case instructions.Draw:
		return fmt.Sprintf("V%01X, V%01X, $%01x", x, y, n)
	case instructions.SkipKey, instructions.SkipNoKey:
		return fmt.Sprintf("V%01X", x)
	case instructions.ReadDelay:
		return fmt.Sprintf("V%01X, DT", x)
	case instructions.WaitKey:
		return fmt.Sprintf("V%01X, K", x)
	case instructions.SetDelay:
		return fmt.Sprintf("DT, V%01X", x)
	case instructions.SetSound:
		return fmt.Sprintf("ST, V%01X", x)
	case instructions.AddIndex:
		return fmt.Sprintf("I, V%01X", x)
	case instructions.LoadGlyph:
		return fmt.Sprintf("F, V%01X", x)
	case instructions.StoreBCD:
		return fmt.Sprintf("B, V%01X", x)
	case instructions.StoreRegisters:
		return fmt.Sprintf("[I], V%01X", x)
	case instructions.LoadRegisters:
		return fmt.Sprintf("V%01X, [I]", x)
	}

	return ""
}
