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

// Package performance contains helper functions relating to performance.
//
// Check() runs a headless emulation flat out for a fixed duration of time
// and reports the frame rate achieved. It will optionally generate profiling
// information.
//
// RunProfiler() wraps a function with the requested profiling (CPU, memory,
// trace or a combination). On its own it does not limit how long the
// function runs for, so it is also useful for profiling real sessions.
//
// CalcFPS() calculates frames-per-second in aggregate along with a
// comparison against the requested frame rate. Not suitable for "live" FPS
// monitoring; the playmode loop does its own measurement for that.
package performance
