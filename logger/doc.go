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

// Package logger is the central log for the entire application. Everything
// that wants to report a diagnostic goes through Log() or Logf(); nothing
// else in the repository writes to stdout or stderr directly.
//
// Log entries are kept in memory for the log window and can be echoed to an
// io.Writer as they happen with SetEcho(). Consecutive identical entries
// collapse into a single entry with a repeat count.
//
// The Permission argument lets an emulation context suppress logging; the
// environment package implements it. Use logger.Allow where there is no
// environment to ask.
package logger
