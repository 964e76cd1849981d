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
)

const winDisplayTitle = "Display"

type winDisplay struct {
	windowManagement
	img *SdlImgui
}

func newWinDisplay(img *SdlImgui) window {
	return &winDisplay{img: img}
}

func (win *winDisplay) init() {
}

func (win *winDisplay) destroy() {
}

func (win *winDisplay) id() string {
	return winDisplayTitle
}

func (win *winDisplay) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{8, 28}, imgui.ConditionFirstUseEver, imgui.Vec2{0, 0})
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.Vec2{0, 0})

	imgui.BeginV(winDisplayTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoScrollbar)
	imgui.Image(imgui.TextureID(win.img.screen.texture),
		imgui.Vec2{win.img.screen.scaledWidth(), win.img.screen.scaledHeight()})
	imgui.End()

	imgui.PopStyleVar()
}
