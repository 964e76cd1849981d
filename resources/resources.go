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

// Package resources maps resource names (eg. the preferences file) to
// locations on the host filesystem.
//
// If a directory named ".gopher8" exists in the current working directory
// then resources are stored there. This is the "portable" mode of operation.
// Otherwise, resources live under the user's configuration directory (eg.
// "~/.config/gopher8" on Linux).
package resources

import (
	"os"
	"path/filepath"
)

// the portable resource path. note that we don't use this value directly
// except in the baseResourcePath() function.
const portablePath = ".gopher8"

// JoinPath returns the resource string (representing the resource to be
// loaded) prepended with operating system and application specific details.
//
// Any directories required by the returned path are created as needed.
func JoinPath(resource ...string) (string, error) {
	b, err := baseResourcePath()
	if err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, b)
	p = append(p, resource...)
	rp := filepath.Join(p...)

	if err := os.MkdirAll(filepath.Dir(rp), 0700); err != nil {
		return "", err
	}

	return rp, nil
}

// baseResourcePath returns the portable path if it can be found in the
// current directory, or the path under the user's configuration directory
// otherwise.
func baseResourcePath() (string, error) {
	if _, err := os.Stat(portablePath); err == nil {
		return portablePath, nil
	}

	conf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	// strip the leading dot from the portable path. a dotted directory makes
	// no sense inside the config directory.
	return filepath.Join(conf, portablePath[1:]), nil
}
