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
	"github.com/hexwick/gopher8/logger"
	"github.com/inkyblackness/imgui-go/v4"
)

const winPrefsTitle = "Preferences"

type winPrefs struct {
	windowManagement
	img *SdlImgui
}

func newWinPrefs(img *SdlImgui) window {
	return &winPrefs{img: img}
}

func (win *winPrefs) init() {
}

func (win *winPrefs) destroy() {
}

func (win *winPrefs) id() string {
	return winPrefsTitle
}

func (win *winPrefs) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{400, 128}, imgui.ConditionFirstUseEver, imgui.Vec2{0, 0})
	imgui.BeginV(winPrefsTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize)

	prf := win.img.c8.Env.Prefs

	shiftSwap := prf.ShiftSwap.Get().(bool)
	if imgui.Checkbox("Shift ops load VY before shifting", &shiftSwap) {
		if err := prf.ShiftSwap.Set(shiftSwap); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err.Error())
		}
	}

	complexJump := prf.ComplexJump.Get().(bool)
	if imgui.Checkbox("Jump with offset uses VX", &complexJump) {
		if err := prf.ComplexJump.Set(complexJump); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err.Error())
		}
	}

	imguiSeparator()

	imgui.PushItemWidth(imguiTextWidth(15))

	cpf := int32(prf.CyclesPerFrame.Get().(int))
	if imgui.SliderInt("##cpf", &cpf, 1, 100) {
		if err := prf.CyclesPerFrame.Set(int(cpf)); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err.Error())
		}
	}
	imgui.SameLine()
	imgui.Text("Cycles per frame")

	// a ceiling of zero means the playmode loop runs unlimited
	fps := int32(prf.MaxFPS.Get().(int))
	if imgui.SliderInt("##maxfps", &fps, 0, 240) {
		if err := prf.MaxFPS.Set(int(fps)); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err.Error())
		}
	}
	imgui.SameLine()
	imgui.Text("Frame rate ceiling")

	imgui.PopItemWidth()

	imguiSeparator()

	if imgui.Button("Save") {
		if err := prf.Save(); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err.Error())
		}
	}

	imgui.SameLine()
	if imgui.Button("Restore") {
		if err := prf.Load(); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err.Error())
		}
	}

	imgui.SameLine()
	if imgui.Button("Defaults") {
		prf.SetDefaults()
	}

	imgui.End()
}
