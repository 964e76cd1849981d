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

// Package preferences defines and collates the preference values used by the
// emulated machine.
package preferences

import (
	"fmt"

	"github.com/hexwick/gopher8/prefs"
	"github.com/hexwick/gopher8/resources"
)

// Preferences defines and collates all the preference values used by the
// emulated machine.
type Preferences struct {
	dsk *prefs.Disk

	// the number of instructions consumed by a single call to StepFrame()
	CyclesPerFrame prefs.Int

	// the frame rate ceiling applied by the playmode loop. a value less than
	// or equal to zero means no ceiling
	MaxFPS prefs.Int

	// the shift instructions copy the second operand register into the first
	// before shifting. many later programs expect the shift to work on the
	// first operand register alone
	ShiftSwap prefs.Bool

	// the jump-with-offset instruction uses VX (X taken from the high nibble
	// of the target address) rather than V0
	ComplexJump prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// a cycles-per-frame value that allows no progress at all is never useful
	p.CyclesPerFrame.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("preferences: cycles per frame must be at least 1")
		}
		return nil
	})

	// setup preferences and load from disk
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.cyclesperframe", &p.CyclesPerFrame)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.maxfps", &p.MaxFPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.quirks.shiftswap", &p.ShiftSwap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.quirks.complexjump", &p.ComplexJump)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.CyclesPerFrame.Set(10)
	p.MaxFPS.Set(60)
	p.ShiftSwap.Set(false)
	p.ComplexJump.Set(false)
}

// Reset all machine preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current machine preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current machine preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
