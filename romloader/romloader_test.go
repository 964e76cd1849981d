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

package romloader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hexwick/gopher8/hardware/memory/memorymap"
	"github.com/hexwick/gopher8/romloader"
	"github.com/hexwick/gopher8/test"
)

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(pth, data, 0644); err != nil {
		t.Fatalf("could not write ROM file: %v", err)
	}
	return pth
}

func TestLoader(t *testing.T) {
	pth := writeROM(t, "pong.ch8", []byte{0x60, 0x05, 0x61, 0x03})

	ld, err := romloader.NewLoader(pth)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ld.Filename, pth)
	test.Equate(t, len(ld.Data), 4)
	test.Equate(t, ld.Data[0], uint8(0x60))
	test.Equate(t, ld.Hash, "ec5357d968c47a4cb22f39954395ac1aaf0d9cdf")
	test.Equate(t, ld.ShortName(), "pong")
}

func TestShortNameWithoutExtension(t *testing.T) {
	pth := writeROM(t, "maze", []byte{0x12, 0x00})

	ld, err := romloader.NewLoader(pth)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ld.ShortName(), "maze")
}

func TestEmptyFile(t *testing.T) {
	pth := writeROM(t, "empty.ch8", nil)

	_, err := romloader.NewLoader(pth)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, romloader.EmptyROM))
}

func TestOversizeFile(t *testing.T) {
	// one byte more than fits in the program area
	pth := writeROM(t, "big.ch8", make([]byte, memorymap.ProgramCapacity+1))

	_, err := romloader.NewLoader(pth)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, romloader.OversizeROM))

	// exactly the program capacity is fine
	pth = writeROM(t, "fits.ch8", make([]byte, memorymap.ProgramCapacity))
	_, err = romloader.NewLoader(pth)
	test.ExpectedSuccess(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := romloader.NewLoader(filepath.Join(t.TempDir(), "no-such-file.ch8"))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, os.ErrNotExist))
}
