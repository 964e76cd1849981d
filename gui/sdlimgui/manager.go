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
	"sort"
)

// window represents all the window types used in the sdlimgui.
type window interface {
	init()
	id() string
	destroy()
	draw()
	isOpen() bool
	setOpen(bool)
}

// manager handles windows and menus in the system.
type manager struct {
	img *SdlImgui

	// has the window manager gone through the initialisation process
	hasInitialised bool

	// the collection of managed windows in the system, indexed by window
	// title
	windows map[string]window

	// windows can be opened and closed through the menu bar. they are
	// grouped according to type using the menu constants defined in
	// manager_menu.go
	menu map[string][]string
}

func newManager(img *SdlImgui) *manager {
	wm := &manager{
		img:     img,
		windows: make(map[string]window),
		menu:    make(map[string][]string),
	}

	// creation function for all managed windows
	addWindow := func(create func(img *SdlImgui) window, open bool, group string) {
		w := create(img)
		wm.windows[w.id()] = w
		wm.menu[group] = append(wm.menu[group], w.id())
		w.setOpen(open)
	}

	// windows called from the project menu
	addWindow(newWinPrefs, false, menuProject)
	addWindow(newWinLog, false, menuProject)

	// windows that appear in the machine menu
	addWindow(newWinDisplay, true, menuMachine)
	addWindow(newWinControl, true, menuMachine)
	addWindow(newWinCPU, true, menuMachine)
	addWindow(newWinTimers, true, menuMachine)
	addWindow(newWinKeypad, true, menuMachine)
	addWindow(newWinRAM, true, menuMachine)
	addWindow(newWinDisasm, true, menuMachine)

	// sort machine menu entries. leave the project menu alone
	sort.Strings(wm.menu[menuMachine])

	return wm
}

func (wm *manager) destroy() {
	for w := range wm.windows {
		wm.windows[w].destroy()
	}
}

func (wm *manager) draw() {
	// there's no good place to call the window init() functions except here
	// when we know everything else has been initialised
	if !wm.hasInitialised {
		for w := range wm.windows {
			wm.windows[w].init()
		}

		// we won't be initialising again
		wm.hasInitialised = true
	}

	// draw menu
	wm.drawMenu()

	// draw windows
	for w := range wm.windows {
		wm.windows[w].draw()
	}
}
