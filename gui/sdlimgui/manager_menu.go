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

// the window menus grouped by type.
const (
	menuProject = "Project"
	menuMachine = "Machine"
)

func (wm *manager) drawMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}

	if imgui.BeginMenu(menuProject) {
		for _, id := range wm.menu[menuProject] {
			drawMenuEntry(wm.windows[id], id)
		}

		imguiSeparator()

		if imgui.Selectable("  Quit") {
			wm.img.quit()
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu(menuMachine) {
		for _, id := range wm.menu[menuMachine] {
			drawMenuEntry(wm.windows[id], id)
		}
		imgui.EndMenu()
	}

	// rom name in the menu bar, right aligned
	name := wm.img.ld.ShortName()
	imgui.SameLineV(imgui.WindowWidth()-imguiGetFrameDim(name).X-20.0, 0.0)
	imgui.Text(name)

	imgui.EndMainMenuBar()
}

func drawMenuEntry(w window, id string) {
	// decorate the menu entry with a "window open" indicator
	if w.isOpen() {
		// checkmark is unicode middle dot - code 00b7
		id = fmt.Sprintf("· %s", id)
	} else {
		id = fmt.Sprintf("  %s", id)
	}

	// window menu entries are toggleable
	if imgui.Selectable(id) {
		w.setOpen(!w.isOpen())
	}
}
