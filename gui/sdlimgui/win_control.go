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

	"github.com/hexwick/gopher8/hardware/govern"
	"github.com/hexwick/gopher8/logger"
	"github.com/inkyblackness/imgui-go/v4"
)

const winControlTitle = "Control"

const (
	pauseButtonLabel  = "Pause"
	resumeButtonLabel = "Resume"
)

type winControl struct {
	windowManagement
	img *SdlImgui

	// required dimensions of size sensitive widgets
	runButtonDim imgui.Vec2
}

func newWinControl(img *SdlImgui) window {
	return &winControl{img: img}
}

func (win *winControl) init() {
	win.runButtonDim = imguiGetFrameDim(pauseButtonLabel, resumeButtonLabel)
}

func (win *winControl) destroy() {
}

func (win *winControl) id() string {
	return winControlTitle
}

func (win *winControl) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{790, 29}, imgui.ConditionFirstUseEver, imgui.Vec2{0, 0})
	imgui.BeginV(winControlTitle, &win.open, imgui.WindowFlagsAlwaysAutoResize)

	win.drawRunButton()

	imgui.SameLine()
	if imgui.Button("Step Frame") {
		// stepping a machine that isn't paused would race the playmode loop
		if win.img.c8.State() == govern.Paused {
			if err := win.img.c8.StepFrame(); err != nil {
				logger.Log(logger.Allow, "sdlimgui", err.Error())
			}
		}
	}

	imgui.SameLine()
	if imgui.Button("Reset") {
		win.img.reload()
	}

	imguiSeparator()

	imgui.Text(fmt.Sprintf("State: %s", win.img.c8.State()))
	if win.img.c8.State() == govern.Halted {
		imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.HaltReason)
		imgui.Text(win.img.c8.HaltReason().Error())
		imgui.PopStyleColor()
	}

	imgui.Text(fmt.Sprintf("Frame: %d", win.img.c8.FrameCount()))

	if win.img.fps > 0 {
		imgui.Text(fmt.Sprintf("%.1f fps (%.2fms)", win.img.fps, 1000.0/win.img.fps))
	} else {
		imgui.Text("fps: measuring")
	}

	imguiSeparator()

	imgui.Text(win.img.ld.ShortName())
	imgui.Text(fmt.Sprintf("SHA-1: %s", win.img.ld.Hash))

	imgui.End()
}

// the run button pauses a running machine and resumes a paused one. it is
// colored by the effect it will have, not the state the machine is in.
func (win *winControl) drawRunButton() {
	if win.img.c8.State() == govern.Running {
		imgui.PushStyleColor(imgui.StyleColorButton, win.img.cols.ControlHalt)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, win.img.cols.ControlHaltHovered)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, win.img.cols.ControlHaltActive)
		if imgui.ButtonV(pauseButtonLabel, win.runButtonDim) {
			win.img.c8.Pause()
		}
	} else {
		imgui.PushStyleColor(imgui.StyleColorButton, win.img.cols.ControlRun)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, win.img.cols.ControlRunHovered)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, win.img.cols.ControlRunActive)
		if imgui.ButtonV(resumeButtonLabel, win.runButtonDim) {
			win.img.c8.Resume()
		}
	}
	imgui.PopStyleColorV(3)
}
