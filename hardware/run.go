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

package hardware

import (
	"fmt"

	"github.com/hexwick/gopher8/hardware/govern"
)

// The continueCheck() function passed to Run() only runs at the end of a
// frame but it can still be expensive to run a full continue check every
// time.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called at the end of every frame and the emulation continues
// for as long as it returns true.
//
// There is no pacing in this loop at all. It is of most use to measurement
// and scripting; interactive emulation drives StepFrame() itself.
func (c8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if c8.state != govern.Running {
			return fmt.Errorf("chip8: unsupported state (%s) in Run() function", c8.state)
		}

		if err := c8.StepFrame(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for tests that want to run a program for a fixed period.
func (c8 *Chip8) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	targetFrame := c8.frameCount + numFrames

	for c8.frameCount < targetFrame {
		if c8.state != govern.Running {
			return fmt.Errorf("chip8: unsupported state (%s) in RunForFrameCount() function", c8.state)
		}

		if err := c8.StepFrame(); err != nil {
			return err
		}

		cont, err := continueCheck(c8.frameCount)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
