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

package instructions

import "fmt"

// Operator identifies each instruction in the instruction set.
type Operator int

// List of defined operators. The comment shows the opcode pattern: x and y
// select a data register, n, nn and nnn are 4, 8 and 12 bit immediates.
const (
	Cls            Operator = iota // 00e0
	Ret                            // 00ee
	Jump                           // 1nnn
	Call                           // 2nnn
	SkipEqByte                     // 3xnn
	SkipNeByte                     // 4xnn
	SkipEqRegister                 // 5xy0
	LoadByte                       // 6xnn
	AddByte                        // 7xnn
	LoadRegister                   // 8xy0
	Or                             // 8xy1
	And                            // 8xy2
	Xor                            // 8xy3
	AddRegister                    // 8xy4
	Sub                            // 8xy5
	ShiftRight                     // 8xy6
	SubN                           // 8xy7
	ShiftLeft                      // 8xye
	SkipNeRegister                 // 9xy0
	LoadIndex                      // annn
	JumpOffset                     // bnnn
	Random                         // cxnn
	Draw                           // dxyn
	SkipKey                        // ex9e
	SkipNoKey                      // exa1
	ReadDelay                      // fx07
	WaitKey                        // fx0a
	SetDelay                       // fx15
	SetSound                       // fx18
	AddIndex                       // fx1e
	LoadGlyph                      // fx29
	StoreBCD                       // fx33
	StoreRegisters                 // fx55
	LoadRegisters                  // fx65
)

// Definition describes a single instruction in the instruction set; one per
// operator. A word is an instance of the definition if word & Mask == Value.
type Definition struct {
	Operator Operator
	Mnemonic string
	Mask     uint16
	Value    uint16
}

func (def Definition) String() string {
	return fmt.Sprintf("%s (%04x/%04x)", def.Mnemonic, def.Mask, def.Value)
}

// Definitions for every instruction in the instruction set, indexed by
// Operator. Mnemonics follow the Cowgod convention, which means they are not
// unique; the operator is.
var Definitions = [...]Definition{
	Cls:            {Operator: Cls, Mnemonic: "CLS", Mask: 0xffff, Value: 0x00e0},
	Ret:            {Operator: Ret, Mnemonic: "RET", Mask: 0xffff, Value: 0x00ee},
	Jump:           {Operator: Jump, Mnemonic: "JP", Mask: 0xf000, Value: 0x1000},
	Call:           {Operator: Call, Mnemonic: "CALL", Mask: 0xf000, Value: 0x2000},
	SkipEqByte:     {Operator: SkipEqByte, Mnemonic: "SE", Mask: 0xf000, Value: 0x3000},
	SkipNeByte:     {Operator: SkipNeByte, Mnemonic: "SNE", Mask: 0xf000, Value: 0x4000},
	SkipEqRegister: {Operator: SkipEqRegister, Mnemonic: "SE", Mask: 0xf00f, Value: 0x5000},
	LoadByte:       {Operator: LoadByte, Mnemonic: "LD", Mask: 0xf000, Value: 0x6000},
	AddByte:        {Operator: AddByte, Mnemonic: "ADD", Mask: 0xf000, Value: 0x7000},
	LoadRegister:   {Operator: LoadRegister, Mnemonic: "LD", Mask: 0xf00f, Value: 0x8000},
	Or:             {Operator: Or, Mnemonic: "OR", Mask: 0xf00f, Value: 0x8001},
	And:            {Operator: And, Mnemonic: "AND", Mask: 0xf00f, Value: 0x8002},
	Xor:            {Operator: Xor, Mnemonic: "XOR", Mask: 0xf00f, Value: 0x8003},
	AddRegister:    {Operator: AddRegister, Mnemonic: "ADD", Mask: 0xf00f, Value: 0x8004},
	Sub:            {Operator: Sub, Mnemonic: "SUB", Mask: 0xf00f, Value: 0x8005},
	ShiftRight:     {Operator: ShiftRight, Mnemonic: "SHR", Mask: 0xf00f, Value: 0x8006},
	SubN:           {Operator: SubN, Mnemonic: "SUBN", Mask: 0xf00f, Value: 0x8007},
	ShiftLeft:      {Operator: ShiftLeft, Mnemonic: "SHL", Mask: 0xf00f, Value: 0x800e},
	SkipNeRegister: {Operator: SkipNeRegister, Mnemonic: "SNE", Mask: 0xf00f, Value: 0x9000},
	LoadIndex:      {Operator: LoadIndex, Mnemonic: "LD", Mask: 0xf000, Value: 0xa000},
	JumpOffset:     {Operator: JumpOffset, Mnemonic: "JP", Mask: 0xf000, Value: 0xb000},
	Random:         {Operator: Random, Mnemonic: "RND", Mask: 0xf000, Value: 0xc000},
	Draw:           {Operator: Draw, Mnemonic: "DRW", Mask: 0xf000, Value: 0xd000},
	SkipKey:        {Operator: SkipKey, Mnemonic: "SKP", Mask: 0xf0ff, Value: 0xe09e},
	SkipNoKey:      {Operator: SkipNoKey, Mnemonic: "SKNP", Mask: 0xf0ff, Value: 0xe0a1},
	ReadDelay:      {Operator: ReadDelay, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf007},
	WaitKey:        {Operator: WaitKey, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf00a},
	SetDelay:       {Operator: SetDelay, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf015},
	SetSound:       {Operator: SetSound, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf018},
	AddIndex:       {Operator: AddIndex, Mnemonic: "ADD", Mask: 0xf0ff, Value: 0xf01e},
	LoadGlyph:      {Operator: LoadGlyph, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf029},
	StoreBCD:       {Operator: StoreBCD, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf033},
	StoreRegisters: {Operator: StoreRegisters, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf055},
	LoadRegisters:  {Operator: LoadRegisters, Mnemonic: "LD", Mask: 0xf0ff, Value: 0xf065},
}

func (op Operator) String() string {
	return Definitions[op].Mnemonic
}

// Decode returns the Definition matched by the instruction word. The lookup
// is two-level: the primary nibble first and then, for the 0x0, 0x8, 0xe and
// 0xf families, the low byte or low nibble. A word that matches no
// definition returns nil; that is the unimplemented instruction condition
// and it is for the caller to decide what to do about it.
func Decode(word uint16) *Definition {
	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			return &Definitions[Cls]
		case 0x00ee:
			return &Definitions[Ret]
		}
	case 0x1:
		return &Definitions[Jump]
	case 0x2:
		return &Definitions[Call]
	case 0x3:
		return &Definitions[SkipEqByte]
	case 0x4:
		return &Definitions[SkipNeByte]
	case 0x5:
		if word&0x000f == 0x0000 {
			return &Definitions[SkipEqRegister]
		}
	case 0x6:
		return &Definitions[LoadByte]
	case 0x7:
		return &Definitions[AddByte]
	case 0x8:
		switch word & 0x000f {
		case 0x0:
			return &Definitions[LoadRegister]
		case 0x1:
			return &Definitions[Or]
		case 0x2:
			return &Definitions[And]
		case 0x3:
			return &Definitions[Xor]
		case 0x4:
			return &Definitions[AddRegister]
		case 0x5:
			return &Definitions[Sub]
		case 0x6:
			return &Definitions[ShiftRight]
		case 0x7:
			return &Definitions[SubN]
		case 0xe:
			return &Definitions[ShiftLeft]
		}
	case 0x9:
		if word&0x000f == 0x0000 {
			return &Definitions[SkipNeRegister]
		}
	case 0xa:
		return &Definitions[LoadIndex]
	case 0xb:
		return &Definitions[JumpOffset]
	case 0xc:
		return &Definitions[Random]
	case 0xd:
		return &Definitions[Draw]
	case 0xe:
		switch word & 0x00ff {
		case 0x9e:
			return &Definitions[SkipKey]
		case 0xa1:
			return &Definitions[SkipNoKey]
		}
	case 0xf:
		switch word & 0x00ff {
		case 0x07:
			return &Definitions[ReadDelay]
		case 0x0a:
			return &Definitions[WaitKey]
		case 0x15:
			return &Definitions[SetDelay]
		case 0x18:
			return &Definitions[SetSound]
		case 0x1e:
			return &Definitions[AddIndex]
		case 0x29:
			return &Definitions[LoadGlyph]
		case 0x33:
			return &Definitions[StoreBCD]
		case 0x55:
			return &Definitions[StoreRegisters]
		case 0x65:
			return &Definitions[LoadRegisters]
		}
	}

	return nil
}
