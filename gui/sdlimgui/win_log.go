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
	"strings"

	"github.com/hexwick/gopher8/logger"
	"github.com/inkyblackness/imgui-go/v4"
)

const winLogTitle = "Log"

type winLog struct {
	windowManagement
	img *SdlImgui

	// number of entries seen on the previous draw. used to detect new
	// entries and scroll to them
	lastSeen int
}

func newWinLog(img *SdlImgui) window {
	return &winLog{img: img}
}

func (win *winLog) init() {
}

func (win *winLog) destroy() {
}

func (win *winLog) id() string {
	return winLogTitle
}

func (win *winLog) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{1090, 29}, imgui.ConditionFirstUseEver, imgui.Vec2{0, 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{400, 350}, imgui.ConditionFirstUseEver)

	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.LogBackground)
	imgui.BeginV(winLogTitle, &win.open, 0)
	imgui.PopStyleColor()

	logger.BorrowLog(func(entries []logger.Entry) {
		var clipper imgui.ListClipper
		clipper.Begin(len(entries))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				imgui.Text(strings.TrimSuffix(entries[i].String(), "\n"))
			}
		}

		// scroll to the end when new entries arrive
		if len(entries) != win.lastSeen {
			imgui.SetScrollHereY(0.0)
			win.lastSeen = len(entries)
		}
	})

	imgui.End()
}
