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
	"strings"

	"github.com/hexwick/gopher8/hardware/govern"
	"github.com/hexwick/gopher8/hardware/memory/memorymap"
	"github.com/inkyblackness/imgui-go/v4"
)

const winRAMTitle = "RAM"

// bytes per row in the memory grid. the area boundaries are all 16-aligned
// so colouring by row never straddles two areas.
const ramRowSize = 16

type winRAM struct {
	windowManagement
	img *SdlImgui
}

func newWinRAM(img *SdlImgui) window {
	return &winRAM{img: img}
}

func (win *winRAM) init() {
}

func (win *winRAM) destroy() {
}

func (win *winRAM) id() string {
	return winRAMTitle
}

func (win *winRAM) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{348, 430}, imgui.ConditionFirstUseEver, imgui.Vec2{0, 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{478, 390}, imgui.ConditionFirstUseEver)
	imgui.BeginV(winRAMTitle, &win.open, 0)

	// column headers. drawn outside the scrolling child so they stay put
	header := strings.Builder{}
	header.WriteString("    ")
	for i := 0; i < ramRowSize; i++ {
		header.WriteString(fmt.Sprintf(" -%01x", i))
	}
	imgui.Text(header.String())

	imgui.BeginChildV("##ramgrid", imgui.Vec2{X: 0, Y: 0}, false, 0)

	// the row the program counter is in. coloured specially and scrolled to
	// while the machine is running
	pcRow := int(win.img.c8.CPU.PC.Address()) / ramRowSize

	var clipper imgui.ListClipper
	clipper.Begin(memorymap.MemorySize / ramRowSize)
	for clipper.Step() {
		for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
			win.drawRow(i, i == pcRow)
		}
	}

	// follow the program counter while the machine is running. the clipper
	// means SetScrollHereY() is no good here: the row being followed is
	// rarely one of the rows just drawn
	if win.img.c8.State() == govern.Running {
		lineHeight := imgui.TextLineHeight() + imgui.CurrentStyle().ItemSpacing().Y
		y := float32(pcRow)*lineHeight - imgui.WindowHeight()/2
		if y < 0 {
			y = 0
		}
		imgui.SetScrollY(y)
	}

	imgui.EndChild()

	imgui.End()
}

func (win *winRAM) drawRow(row int, pcRow bool) {
	address := uint16(row * ramRowSize)

	var col imgui.Vec4
	switch memorymap.MapAddress(address) {
	case memorymap.Font:
		col = win.img.cols.RAMFont
	case memorymap.Program:
		col = win.img.cols.RAMProgram
	default:
		col = win.img.cols.RAMReserved
	}
	if pcRow {
		col = win.img.cols.RAMCurrentPC
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%03x-", address>>4))
	for i := 0; i < ramRowSize; i++ {
		s.WriteString(fmt.Sprintf(" %02x", win.img.c8.Mem.Peek(address+uint16(i))))
	}

	imgui.PushStyleColor(imgui.StyleColorText, col)
	imgui.Text(s.String())
	imgui.PopStyleColor()
}
