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

	"github.com/inkyblackness/imgui-go/v4"
)

const winKeypadTitle = "Keypad"

// the keys in the order they appear on the COSMAC VIP pad.
var keypadLayout = [4][4]uint8{
	{0x01, 0x02, 0x03, 0x0c},
	{0x04, 0x05, 0x06, 0x0d},
	{0x07, 0x08, 0x09, 0x0e},
	{0x0a, 0x00, 0x0b, 0x0f},
}

type winKeypad struct {
	windowManagement
	img *SdlImgui

	// the key currently held with the mouse, or -1. used to detect the
	// press/release edges
	held int

	keyDim imgui.Vec2
}

func newWinKeypad(img *SdlImgui) window {
	return &winKeypad{
		img:  img,
		held: -1,
	}
}

func (win *winKeypad) init() {
	win.keyDim = imgui.Vec2{X: imguiTextWidth(3), Y: imguiGetFrameDim("F").Y}
}

func (win *winKeypad) destroy() {
}

func (win *winKeypad) id() string {
	return winKeypadTitle
}

func (win *winKeypad) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{1090, 420}, imgui.ConditionFirstUseEver, imgui.Vec2{0, 0})
	imgui.BeginV(winKeypadTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize)

	held := -1
	for _, row := range keypadLayout {
		for i, key := range row {
			if i > 0 {
				imgui.SameLine()
			}
			imgui.ButtonV(fmt.Sprintf("%01X", key), win.keyDim)
			if imgui.IsItemActive() {
				held = int(key)
			}
		}
	}

	// press/release on the edges only. an unconditional Release() every
	// frame would clear a latch belonging to the physical keyboard
	if held != win.held {
		if held >= 0 {
			win.img.c8.Keypad.Press(uint8(held))
		} else {
			win.img.c8.Keypad.Release()
		}
		win.held = held
	}

	imguiSeparator()

	imguiLabel("Latch")
	if key, ok := win.img.c8.Keypad.Pressed(); ok {
		imguiColourButton(win.img.cols.IndicatorOn, fmt.Sprintf("%01X", key), win.keyDim)
	} else {
		imguiColourButton(win.img.cols.IndicatorOff, " ", win.keyDim)
	}

	imgui.End()
}
