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
	"io"
	"time"

	"github.com/hexwick/gopher8/environment"
	"github.com/hexwick/gopher8/hardware"
	"github.com/hexwick/gopher8/romloader"
)

// the delay before measurement begins. the runtime needs a moment to settle.
const leadtime = 2 * time.Second

// Check the performance of the emulator using the supplied ROM.
//
// The emulation runs flat out, with no frame pacing, for the specified
// duration. A cpu profile, a memory profile, an execution trace (or a
// combination of those) is created as defined by the Profile argument.
//
// The reported percentage compares the measured frame rate against the
// frame rate the playmode limiter would have applied.
func Check(output io.Writer, profile Profile, filename string, duration string) error {
	c8, err := hardware.NewChip8(environment.MainEmulation, nil)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	ld, err := romloader.NewLoader(filename)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	c8.LoadFont()
	if err := c8.Load(ld.Data); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// starting frame number. reassigned once the leadtime has elapsed
	startFrame := c8.FrameCount()

	runner := func() error {
		// trigger that expires when the duration has elapsed. signals false
		// to indicate that measurement should start and true when the
		// duration has expired
		timerChan := make(chan bool)

		// wait for the leadtime before restarting the timer for the
		// specified duration
		go func() {
			time.AfterFunc(leadtime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check for the end of the measurement period every
		// PerformanceBrake frames. polling the timerChan is expensive
		// relative to the handful of instructions in a frame
		performanceBrake := 0

		// run until the timer expires
		return c8.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return false, nil
					}

					// leadtime has concluded. measurement begins at the
					// current frame
					startFrame = c8.FrameCount()
				default:
				}
			}

			return true, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	if err := RunProfiler(profile, "performance", runner); err != nil {
		return err
	}

	// calculate performance
	numFrames := c8.FrameCount() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds(), c8.Env.Prefs.MaxFPS.Get().(int))
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
