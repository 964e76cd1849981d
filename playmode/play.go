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

// Package playmode is the glue that binds the emulation to the GUI. It owns
// the main loop: servicing window events, stepping the machine a frame at a
// time and pacing the result to the frame rate ceiling preference.
package playmode

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/hexwick/gopher8/environment"
	"github.com/hexwick/gopher8/gui/sdlimgui"
	"github.com/hexwick/gopher8/hardware"
	"github.com/hexwick/gopher8/hardware/govern"
	"github.com/hexwick/gopher8/logger"
	"github.com/hexwick/gopher8/romloader"
)

// Play creates the emulation hardware and the GUI and runs the main loop
// until the window is closed or an interrupt signal is received.
func Play(filename string, fullScreen bool) error {
	c8, err := hardware.NewChip8(environment.MainEmulation, nil)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	ld, err := romloader.NewLoader(filename)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	c8.LoadFont()
	if err := c8.Load(ld.Data); err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	img, err := sdlimgui.NewSdlImgui(c8, ld, fullScreen)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}
	defer img.Destroy(os.Stderr)

	// a ctrl-c is treated the same as closing the window. the deferred
	// destroy function must run in both cases
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	lmtr := newLimiter()

	for !img.HasQuit() {
		select {
		case <-intChan:
			return nil
		default:
		}

		img.Service()

		lmtr.setRate(c8.Env.Prefs.MaxFPS.Get().(int))

		// a machine halt is not fatal to the play loop. the error is logged
		// and the GUI stays up so the machine state can be inspected. a
		// reload puts the machine back in the running state
		if c8.State() == govern.Running {
			if err := c8.StepFrame(); err != nil {
				logger.Logf(logger.Allow, "playmode", "halted: %s", err.Error())
			}
		}

		img.Render()

		lmtr.checkFrame()
		lmtr.measureActual()
		img.SetFPS(lmtr.actual)
	}

	return nil
}
