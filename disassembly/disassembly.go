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
	"io"

	"github.com/hexwick/gopher8/hardware/memory/memorymap"
	"github.com/hexwick/gopher8/romloader"
)

// Disassembly is the listing of a whole program, one Entry per aligned word
// from the program origin.
type Disassembly struct {
	// short name and hash of the program the listing was made from
	Name string
	Hash string

	// entries in address order. entry i covers the two bytes at
	// (program origin)+2i
	Entries []Entry
}

// FromLoader disassembles a loaded program.
func FromLoader(ld romloader.Loader) *Disassembly {
	dsm := &Disassembly{
		Name:    ld.ShortName(),
		Hash:    ld.Hash,
		Entries: make([]Entry, 0, (len(ld.Data)+1)/2),
	}

	for i := 0; i+1 < len(ld.Data); i += 2 {
		address := memorymap.OriginProgram + uint16(i)
		word := uint16(ld.Data[i])<<8 | uint16(ld.Data[i+1])
		dsm.Entries = append(dsm.Entries, formatWord(address, word))
	}

	// an odd final byte cannot be an instruction. list it as data
	if len(ld.Data)%2 == 1 {
		b := ld.Data[len(ld.Data)-1]
		dsm.Entries = append(dsm.Entries, Entry{
			Address:  memorymap.OriginProgram + uint16(len(ld.Data)-1),
			Word:     uint16(b),
			Operator: ".byte",
			Operand:  fmt.Sprintf("$%02x", b),
		})
	}

	return dsm
}

// Lookup returns the entry containing the address. The second return value
// is false when the address is outside the listing.
func (dsm *Disassembly) Lookup(address uint16) (Entry, bool) {
	if address < memorymap.OriginProgram {
		return Entry{}, false
	}
	idx := int(address-memorymap.OriginProgram) / 2
	if idx >= len(dsm.Entries) {
		return Entry{}, false
	}
	return dsm.Entries[idx], true
}

// Write the disassembly to an io.Writer as a columnar listing.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}
