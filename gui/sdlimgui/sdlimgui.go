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

package sdlimgui

import (
	"fmt"
	"io"

	"github.com/hexwick/gopher8/disassembly"
	"github.com/hexwick/gopher8/hardware"
	"github.com/hexwick/gopher8/hardware/govern"
	"github.com/hexwick/gopher8/logger"
	"github.com/hexwick/gopher8/resources"
	"github.com/hexwick/gopher8/romloader"
	"github.com/inkyblackness/imgui-go/v4"
)

// imguiIniFile is where imgui will store the coordinates of the imgui
// windows.
const imguiIniFile = "imgui.ini"

// SdlImgui is an sdl based visualiser using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	glsl    *glsl

	// the machine being emulated and the loader it was loaded from. the
	// loader is kept for machine resets and window decoration
	c8 *hardware.Chip8
	ld romloader.Loader

	// static disassembly of the loaded program
	dsm *disassembly.Disassembly

	// the texture the emulated display is drawn with
	screen *screen

	// imgui window management
	wm *manager

	// the colors used by the imgui system
	cols *Colors

	// the most recent frame rate measurement, as reported by the playmode
	// loop. shown in the control window
	fps float32

	// set on receipt of an sdl quit event or by the quit menu option. checked
	// by the playmode loop through HasQuit()
	quitRequested bool
}

// NewSdlImgui is the preferred method of initialisation for the SdlImgui
// type.
//
// MUST ONLY be called from the #mainthread.
func NewSdlImgui(c8 *hardware.Chip8, ld romloader.Loader, fullScreen bool) (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		c8:      c8,
		ld:      ld,
		dsm:     disassembly.FromLoader(ld),
	}

	// path to dear imgui ini file
	iniPath, err := resources.JoinPath(imguiIniFile)
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}
	img.io.SetIniFilename(iniPath)

	// define colors
	img.cols = defaultTheme()

	img.plt, err = newPlatform(img.io)
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.glsl, err = newGlsl(img)
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.screen = newScreen(img)

	img.wm = newManager(img)

	if fullScreen {
		img.plt.setFullScreen(true)
	}

	return img, nil
}

// Destroy closes the gui and frees its resources.
//
// MUST ONLY be called from the #mainthread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.wm.destroy()
	img.screen.destroy()
	img.glsl.destroy()

	err := img.plt.destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	img.context.Destroy()
}

// HasQuit returns true once a quit event has been received or the quit menu
// option has been selected.
func (img *SdlImgui) HasQuit() bool {
	return img.quitRequested
}

// SetFPS tells the gui about the most recent frame rate measurement.
func (img *SdlImgui) SetFPS(fps float32) {
	img.fps = fps
}

func (img *SdlImgui) quit() {
	img.quitRequested = true
}

// togglePause flips the machine between the Running and Paused states. it
// has no effect on a machine in any other state.
func (img *SdlImgui) togglePause() {
	switch img.c8.State() {
	case govern.Running:
		img.c8.Pause()
	case govern.Paused:
		img.c8.Resume()
	}
}

// reload resets the machine and loads the program again. it is how the gui
// recovers a Halted machine.
func (img *SdlImgui) reload() {
	img.c8.Reset()
	img.c8.LoadFont()
	if err := img.c8.Load(img.ld.Data); err != nil {
		logger.Log(logger.Allow, "sdlimgui", err.Error())
		return
	}
	logger.Logf(logger.Allow, "sdlimgui", "%s reloaded", img.ld.ShortName())
}
