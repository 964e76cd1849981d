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

// Package test contains helper functions to remove common boilerplate and
// make testing easier.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. Note that a nil value is considered a
// success: because of how errors work (nil meaning no error) we *need* to
// interpret nil in this way.
//
// The Equate function compares like-typed values for equality; some types
// (eg. uint8, uint16) can be compared against untyped int constants for
// convenience.
//
// The CompareWriter type implements io.Writer and captures output for
// comparison with expected strings.
package test
