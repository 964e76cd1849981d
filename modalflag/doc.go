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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas with flag.FlagSet you call Parse() with the
// array of strings as the only argument, with modalflag you first call
// NewArgs() with the array of arguments and then Parse() with no arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function. For example, handling
// exactly one argument:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("argument required")
//	case 1:
//		Process(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Adding flags is similar to the flag package. The flag functions return a
// pointer to a variable of the specified type, holding the default value
// until Parse() updates it with what the user has requested:
//
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
// The important difference to the standard flag package is the handling of
// "modes": special command line arguments that put the program into a
// different mode of operation, the way the go command changes personality
// entirely by the first argument (build, doc, get, test). Each mode can have
// its own flags and expected arguments.
//
// Modes are registered with the AddSubModes() function, before Parse():
//
//	md.AddSubModes("run", "disasm", "version")
//
// Mode comparisons are case insensitive and the first registered mode is the
// default. After a Parse() the selected mode is available with Mode() (the
// empty string if no sub-modes were registered):
//
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		...
//	}
//
// Once a mode has been decided, NewMode() begins the next layer: flags added
// after it belong to the selected mode and a further Parse() processes the
// remaining arguments. Modes nest as deep as required, with Path() reporting
// the route taken.
package modalflag
