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

// Package govern defines the run state of the machine.
package govern

// State of the machine.
//
// NoRom is the power-on state and the state after a reset. Running and
// Paused alternate under external control. Halted means the machine stopped
// itself on a fatal error; only a reset leaves the Halted state.
type State int

// List of declared states.
const (
	NoRom State = iota
	Running
	Paused
	Halted
)

func (s State) String() string {
	switch s {
	case NoRom:
		return "No ROM"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Halted:
		return "Halted"
	}

	return "unknown"
}
