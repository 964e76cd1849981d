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

const winTimersTitle = "Timers"

type winTimers struct {
	windowManagement
	img *SdlImgui

	indicatorDim imgui.Vec2
}

func newWinTimers(img *SdlImgui) window {
	return &winTimers{img: img}
}

func (win *winTimers) init() {
	win.indicatorDim = imguiGetFrameDim(" ")
}

func (win *winTimers) destroy() {
}

func (win *winTimers) id() string {
	return winTimersTitle
}

func (win *winTimers) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{790, 420}, imgui.ConditionFirstUseEver, imgui.Vec2{0, 0})
	imgui.BeginV(winTimersTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize)

	imgui.Text(fmt.Sprintf("Delay: %3d", win.img.c8.Timers.Delay()))
	imgui.Text(fmt.Sprintf("Sound: %3d", win.img.c8.Timers.Sound()))

	imguiSeparator()

	// the buzzer sounds for as long as the sound timer is non-zero
	imguiLabel("Buzzer")
	imguiBooleanButton(win.img.cols.IndicatorOn, win.img.cols.IndicatorOff,
		win.img.c8.Timers.Sound() > 0, " ", win.indicatorDim)

	imgui.End()
}
