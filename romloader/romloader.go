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

// Package romloader reads program files from disk ready for loading into
// the machine.
//
// There is no file format to speak of. A CHIP-8 program file is the raw
// sequence of bytes that belongs at the program origin, so the loader only
// sanity checks the size and fingerprints the data. The size check
// duplicates the one made by the memory package at load time but failing
// here, before a machine is even created, gives the user a friendlier
// error.
package romloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hexwick/gopher8/hardware/memory/memorymap"
)

// Sentinel errors returned by NewLoader.
var (
	EmptyROM    = errors.New("romloader: file is empty")
	OversizeROM = errors.New("romloader: file is larger than the program area")
)

// Loader is a program file read from disk. Loader values are created with
// NewLoader() and are immutable thereafter.
type Loader struct {
	// filename as supplied to NewLoader()
	Filename string

	// copy of the file content
	Data []byte

	// SHA-1 hash of Data
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The file is read whole and fingerprinted immediately.
func NewLoader(filename string) (Loader, error) {
	ld := Loader{Filename: filename}

	var err error

	ld.Data, err = os.ReadFile(filename)
	if err != nil {
		return Loader{}, fmt.Errorf("romloader: %w", err)
	}

	if len(ld.Data) == 0 {
		return Loader{}, fmt.Errorf("%w: %s", EmptyROM, filename)
	}
	if len(ld.Data) > memorymap.ProgramCapacity {
		return Loader{}, fmt.Errorf("%w: %s (%d bytes)", OversizeROM, filename, len(ld.Data))
	}

	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))

	return ld, nil
}

// ShortName returns the filename without the path or the file extension.
// Useful for window titles and log entries.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}
