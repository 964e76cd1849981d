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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// keypadKeys maps sdl scancodes to keypad keys. the left hand side of a
// modern keyboard stands in for the 4x4 COSMAC pad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   =>   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keypadKeys = map[sdl.Scancode]uint8{
	sdl.SCANCODE_1: 0x01, sdl.SCANCODE_2: 0x02, sdl.SCANCODE_3: 0x03, sdl.SCANCODE_4: 0x0c,
	sdl.SCANCODE_Q: 0x04, sdl.SCANCODE_W: 0x05, sdl.SCANCODE_E: 0x06, sdl.SCANCODE_R: 0x0d,
	sdl.SCANCODE_A: 0x07, sdl.SCANCODE_S: 0x08, sdl.SCANCODE_D: 0x09, sdl.SCANCODE_F: 0x0e,
	sdl.SCANCODE_Z: 0x0a, sdl.SCANCODE_X: 0x00, sdl.SCANCODE_C: 0x0b, sdl.SCANCODE_V: 0x0f,
}

// Service handles all pending sdl events, forwarding them to the imgui io
// system or to the emulated machine as appropriate.
//
// MUST ONLY be called from the #mainthread.
func (img *SdlImgui) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(ev.Text[:]))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			// the up event is handled by polling in platform.newFrame(). see
			// commentary for the buttonsDown field
			if ev.Type == sdl.MOUSEBUTTONDOWN {
				switch ev.Button {
				case sdl.BUTTON_LEFT:
					img.plt.buttonsDown[0] = true
				case sdl.BUTTON_RIGHT:
					img.plt.buttonsDown[1] = true
				case sdl.BUTTON_MIDDLE:
					img.plt.buttonsDown[2] = true
				}
			}

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(deltaX, deltaY)
		}
	}
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	// key repeats are not interesting. the emulated keypad has no concept of
	// repeat and imgui tracks held keys itself
	if ev.Repeat == 1 {
		return
	}

	// emulator shortcuts and keypad input apply only when no imgui widget
	// has keyboard focus
	if !imgui.IsAnyItemActive() {
		if ev.Type == sdl.KEYUP {
			handled := true

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				img.quit()

			case sdl.SCANCODE_SPACE:
				img.togglePause()

			case sdl.SCANCODE_F11:
				img.plt.toggleFullScreen()

			case sdl.SCANCODE_F12:
				img.reload()

			default:
				handled = false
			}

			if handled {
				return
			}
		}

		if key, ok := keypadKeys[ev.Keysym.Scancode]; ok {
			switch ev.Type {
			case sdl.KEYDOWN:
				img.c8.Keypad.Press(key)
			case sdl.KEYUP:
				img.c8.Keypad.Release()
			}
			return
		}
	}

	// forward unhandled keypresses to the imgui io system
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
	}
	img.plt.updateKeyModifier()
}

// Render one frame of the gui and the emulated display.
//
// MUST ONLY be called from the #mainthread.
func (img *SdlImgui) Render() {
	// start of a new frame
	img.plt.newFrame()
	imgui.NewFrame()

	// draw all windows
	img.wm.draw()

	// imgui.Render() only builds the draw data list. actual rendering to the
	// framebuffer is done by the glsl type
	imgui.Render()
	img.glsl.preRender()
	img.screen.render()
	img.glsl.render()
	img.plt.postRender()
}
