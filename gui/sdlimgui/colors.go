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
	"image/color"

	"github.com/inkyblackness/imgui-go/v4"
)

// Colors defines all the colors used by the GUI.
type Colors struct {
	// default colors
	MenuBarBg     imgui.Vec4
	WindowBg      imgui.Vec4
	TitleBg       imgui.Vec4
	TitleBgActive imgui.Vec4
	Border        imgui.Vec4

	// control window buttons
	ControlRun         imgui.Vec4
	ControlRunHovered  imgui.Vec4
	ControlRunActive   imgui.Vec4
	ControlHalt        imgui.Vec4
	ControlHaltHovered imgui.Vec4
	ControlHaltActive  imgui.Vec4

	// indicator lamps. used for the buzzer in the timers window and the key
	// latch in the keypad window
	IndicatorOn  imgui.Vec4
	IndicatorOff imgui.Vec4

	// halt reason in the control and cpu windows
	HaltReason imgui.Vec4

	// disassembly entry columns
	DisasmCurrentPC imgui.Vec4
	DisasmAddress   imgui.Vec4
	DisasmMnemonic  imgui.Vec4
	DisasmOperand   imgui.Vec4

	// memory window rows. colored by the area the row is in
	RAMReserved  imgui.Vec4
	RAMFont      imgui.Vec4
	RAMProgram   imgui.Vec4
	RAMCurrentPC imgui.Vec4

	// log window
	LogBackground imgui.Vec4

	// display window pixels. not imgui colors because they are written
	// directly into the display texture
	PixelOn  color.RGBA
	PixelOff color.RGBA
}

func defaultTheme() *Colors {
	cols := Colors{
		MenuBarBg:     imgui.Vec4{0.075, 0.08, 0.09, 1.0},
		WindowBg:      imgui.Vec4{0.075, 0.08, 0.09, 0.8},
		TitleBg:       imgui.Vec4{0.075, 0.08, 0.09, 1.0},
		TitleBgActive: imgui.Vec4{0.16, 0.29, 0.48, 1.0},
		Border:        imgui.Vec4{0.14, 0.14, 0.29, 1.0},

		ControlRun:         imgui.Vec4{0.3, 0.6, 0.3, 1.0},
		ControlRunHovered:  imgui.Vec4{0.3, 0.65, 0.3, 1.0},
		ControlRunActive:   imgui.Vec4{0.3, 0.65, 0.3, 1.0},
		ControlHalt:        imgui.Vec4{0.6, 0.3, 0.3, 1.0},
		ControlHaltHovered: imgui.Vec4{0.65, 0.3, 0.3, 1.0},
		ControlHaltActive:  imgui.Vec4{0.65, 0.3, 0.3, 1.0},

		IndicatorOn:  imgui.Vec4{0.73, 0.49, 0.14, 1.0},
		IndicatorOff: imgui.Vec4{0.64, 0.40, 0.09, 0.55},

		HaltReason: imgui.Vec4{0.8, 0.3, 0.3, 1.0},

		DisasmCurrentPC: imgui.Vec4{0.9, 0.9, 0.9, 1.0},
		DisasmAddress:   imgui.Vec4{0.8, 0.4, 0.4, 1.0},
		DisasmMnemonic:  imgui.Vec4{0.4, 0.4, 0.8, 1.0},
		DisasmOperand:   imgui.Vec4{0.8, 0.8, 0.3, 1.0},

		RAMReserved:  imgui.Vec4{0.6, 0.6, 0.6, 1.0},
		RAMFont:      imgui.Vec4{0.8, 0.8, 0.3, 1.0},
		RAMProgram:   imgui.Vec4{0.8, 0.8, 0.8, 1.0},
		RAMCurrentPC: imgui.Vec4{0.9, 0.7, 0.3, 1.0},

		LogBackground: imgui.Vec4{0.1, 0.1, 0.2, 0.9},

		PixelOn:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		PixelOff: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}

	// set default colors
	style := imgui.CurrentStyle()
	style.SetColor(imgui.StyleColorMenuBarBg, cols.MenuBarBg)
	style.SetColor(imgui.StyleColorWindowBg, cols.WindowBg)
	style.SetColor(imgui.StyleColorTitleBg, cols.TitleBg)
	style.SetColor(imgui.StyleColorTitleBgActive, cols.TitleBgActive)
	style.SetColor(imgui.StyleColorBorder, cols.Border)

	return &cols
}
