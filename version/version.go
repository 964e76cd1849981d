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

// Package version reports the version of the program as a whole.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8"

// number is given a release number at build time through the linker:
//
//	-ldflags="-X github.com/hexwick/gopher8/version.number=v0.1.0"
//
// builds made any other way report themselves accordingly, see Version().
var number string

// Version returns the version and revision strings, along with a flag
// indicating whether this is a numbered release build.
//
// An unnumbered build from a source checkout has the version "unreleased".
// A build with no version control information at all ("go run ." for
// example) has the version "local".
//
// The revision is the vcs hash of the built commit, suffixed with "+dirty"
// when the working tree had uncommitted changes at build time.
func Version() (string, string, bool) {
	var fromVcs bool
	var revision string
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				fromVcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case revision == "":
		revision = "no revision information"
	case modified:
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	version := number
	if number == "" {
		if fromVcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	}

	return version, revision, version == number
}
