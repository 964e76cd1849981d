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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is the first line in a prefs file. Files without this
// first line will not be parsed.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "gopher8.prefs"

// NoPrefsFile is returned by Load() if the prefs file does not exist.
var NoPrefsFile = errors.New("no prefs file")

// the string that separates the key from the value in a prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk. Prefs instances are
// added to a Disk with the Add() function.
//
// Many Disk instances can use the same prefs file. Saving through one
// instance will not clobber entries being managed by another instance.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to the list of values to save/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: empty key")
	}
	if strings.Contains(key, "::") || strings.ContainsAny(key, "\n") {
		return fmt.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the prefs file into a map of key/value strings. entries for other Disk
// instances are included; defunct entries are dropped.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w (%s)", NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	vals := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		kv := strings.SplitN(line, keySep, 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("prefs: corrupt entry in prefs file (%s)", line)
		}

		if isDefunct(kv[0]) {
			continue
		}

		vals[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return vals, nil
}

// Load prefs values from disk. Command line values take precedence over
// values stored on disk.
//
// If suppressNoPrefsFile is true then a missing prefs file is not an error.
// This is useful on startup when the absence of a file is expected.
func (dsk *Disk) Load(suppressNoPrefsFile bool) error {
	vals, err := dsk.readFile()
	if err != nil {
		if errors.Is(err, NoPrefsFile) {
			if suppressNoPrefsFile {
				vals = make(map[string]string)
			} else {
				return err
			}
		} else {
			return err
		}
	}

	for key, p := range dsk.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
			continue
		}

		if v, ok := vals[key]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}

	return nil
}

// Save current prefs values to disk. Entries in the prefs file that belong to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	// load the file as it currently exists so that entries not managed by
	// this instance are not lost
	vals, err := dsk.readFile()
	if err != nil {
		if !errors.Is(err, NoPrefsFile) {
			return err
		}
		vals = make(map[string]string)
	}

	for key, p := range dsk.entries {
		vals[key] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for key := range vals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, vals[key]))
	}

	if _, err := f.WriteString(s.String()); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Reset all prefs entries in this Disk instance to their default values.
func (dsk *Disk) Reset() error {
	for key, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}
	return nil
}

// HasEntry returns true if the Disk instance is managing the named key.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, dsk.entries[key].String()))
	}
	return s.String()
}
