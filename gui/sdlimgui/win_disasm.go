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
	"github.com/hexwick/gopher8/hardware/govern"
	"github.com/inkyblackness/imgui-go/v4"
)

const winDisasmTitle = "Disassembly"

type winDisasm struct {
	windowManagement
	img *SdlImgui

	// centre the listing on the program counter for one more frame after the
	// machine pauses, so the current entry is in view when stepping begins
	followPC bool
}

func newWinDisasm(img *SdlImgui) window {
	return &winDisasm{
		img:      img,
		followPC: true,
	}
}

func (win *winDisasm) init() {
}

func (win *winDisasm) destroy() {
}

func (win *winDisasm) id() string {
	return winDisasmTitle
}

func (win *winDisasm) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{8, 420}, imgui.ConditionFirstUseEver, imgui.Vec2{0, 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{330, 400}, imgui.ConditionFirstUseEver)
	imgui.BeginV(winDisasmTitle, &win.open, 0)

	paused := win.img.c8.State() != govern.Running
	pcAddr := win.img.c8.CPU.PC.Address()

	for _, e := range win.img.dsm.Entries {
		// highlight the entry the program counter points at
		if e.Address == pcAddr {
			imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmCurrentPC)
			imgui.Text(">")
			imgui.SameLine()
			win.drawEntry(e, true)
			imgui.PopStyleColor()

			// if the machine is running then centre on the program counter
			if !paused || win.followPC {
				imgui.SetScrollHereY(0.5)
			}
		} else {
			imgui.Text(" ")
			imgui.SameLine()
			win.drawEntry(e, false)
		}
	}

	imgui.End()

	win.followPC = !paused
}

func (win *winDisasm) drawEntry(e disassembly.Entry, pc bool) {
	// the program counter entry keeps the colour pushed by the caller
	if pc {
		imgui.Text(fmt.Sprintf("$%04x", e.Address))
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("%-5s", e.Operator))
		imgui.SameLine()
		imgui.Text(e.Operand)
		return
	}

	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmAddress)
	imgui.Text(fmt.Sprintf("$%04x", e.Address))
	imgui.PopStyleColor()

	imgui.SameLine()
	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmMnemonic)
	imgui.Text(fmt.Sprintf("%-5s", e.Operator))
	imgui.PopStyleColor()

	imgui.SameLine()
	imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.DisasmOperand)
	imgui.Text(e.Operand)
	imgui.PopStyleColor()
}
