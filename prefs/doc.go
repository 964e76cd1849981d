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

// Package prefs facilitates the storage of preference values alongside the
// live Go values they mirror.
//
// A preference is expressed by one of the prefs types: Bool, String, Int,
// Float or Generic. The Generic type is useful for preferences that cannot be
// represented by a single value; it defers to user-supplied set and get
// functions.
//
// Preference values are grouped for saving/loading with the Disk type. Each
// value is registered with Add() under a unique key. Several Disk instances
// can share a single prefs file without interfering with one another's
// entries.
//
// The prefs file is a simple, human readable (but not human editable) flat
// format: a warning line followed by one "key :: value" entry per line,
// sorted by key.
//
// Values supplied on the command line with PushCommandLineStack() supersede
// values read from disk during Load().
package prefs
