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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/hexwick/gopher8/resources"
)

// Profile is the type of profiling to perform on a launched function.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfileString converts a string to a Profile value. Recognised
// strings are "none", "cpu", "mem", "trace" and "all", case insensitive.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ProfileNone, nil
	case "cpu":
		return ProfileCPU, nil
	case "mem":
		return ProfileMem, nil
	case "trace":
		return ProfileTrace, nil
	case "all":
		return ProfileAll, nil
	}
	return ProfileNone, fmt.Errorf("performance: unrecognised profile (%s)", s)
}

// the directory inside the resources path where profiles are written.
const profileDir = "profiling"

func profilePath(tag string, kind string) (string, error) {
	return resources.JoinPath(profileDir, fmt.Sprintf("%s_%s.profile", tag, kind))
}

// RunProfiler runs the supplied function with the requested profiling. The
// tag distinguishes the output files of different launches; profiles are
// written to the profiling directory in the resources path.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		pth, err := profilePath(tag, "cpu")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}

		f, err := os.Create(pth)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		pth, err := profilePath(tag, "trace")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}

		f, err := os.Create(pth)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer f.Close()

		if err := trace.Start(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		pth, err := profilePath(tag, "mem")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}

		f, err := os.Create(pth)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer f.Close()

		// snapshot the heap after a GC so the profile shows live allocations
		// rather than garbage
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
	}

	return nil
}
