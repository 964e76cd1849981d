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

	"github.com/hexwick/gopher8/disassembly"
	"github.com/inkyblackness/imgui-go/v4"
)

const winCPUTitle = "CPU"

type winCPU struct {
	windowManagement
	img *SdlImgui
}

func newWinCPU(img *SdlImgui) window {
	return &winCPU{img: img}
}

func (win *winCPU) init() {
}

func (win *winCPU) destroy() {
}

func (win *winCPU) id() string {
	return winCPUTitle
}

func (win *winCPU) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{790, 205}, imgui.ConditionFirstUseEver, imgui.Vec2{0, 0})
	imgui.BeginV(winCPUTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize)

	imgui.BeginGroup()
	imgui.Text(win.img.c8.CPU.PC.String())
	imgui.Text(win.img.c8.CPU.I.String())
	imgui.Text(win.img.c8.CPU.Stack.String())
	imgui.EndGroup()

	imgui.SameLine()
	imgui.BeginGroup()
	for i := 0; i < 8; i++ {
		imgui.Text(win.img.c8.CPU.V[i].String())
	}
	imgui.EndGroup()

	imgui.SameLine()
	imgui.BeginGroup()
	for i := 8; i < 16; i++ {
		imgui.Text(win.img.c8.CPU.V[i].String())
	}
	imgui.EndGroup()

	imguiSeparator()

	win.drawLastResult()

	imgui.End()
}

func (win *winCPU) drawLastResult() {
	res := win.img.c8.CPU.LastResult

	// result fields are undefined unless Final is true
	if !res.Final {
		imgui.Text("no execution yet")
		return
	}

	e := disassembly.FormatResult(res)

	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmAddress)
	imgui.Text(fmt.Sprintf("$%04x", e.Address))
	imgui.PopStyleColor()

	imgui.SameLine()
	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmMnemonic)
	imgui.Text(e.Operator)
	imgui.PopStyleColor()

	imgui.SameLine()
	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmOperand)
	imgui.Text(e.Operand)
	imgui.PopStyleColor()
}
