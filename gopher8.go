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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hexwick/gopher8/disassembly"
	"github.com/hexwick/gopher8/logger"
	"github.com/hexwick/gopher8/modalflag"
	"github.com/hexwick/gopher8/performance"
	"github.com/hexwick/gopher8/playmode"
	"github.com/hexwick/gopher8/prefs"
	"github.com/hexwick/gopher8/romloader"
	"github.com/hexwick/gopher8/statsview"
	"github.com/hexwick/gopher8/version"
)

// the SDL layer wants everything to happen in the main thread. the go-sdl2
// package locks the main goroutine to the OS thread during init and the GUI
// is only ever created and serviced from the functions below, so nothing
// more needs to be done about that here.
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// commandLinePrefs builds a prefs string from the flags that have been
// explicitly set on the command line. the string is suitable for
// prefs.PushCommandLineStack()
func commandLinePrefs(md *modalflag.Modes, cpf int, fps int, shiftSwap bool, complexJump bool) string {
	s := strings.Builder{}
	md.Visit(func(flg string) {
		switch flg {
		case "cpf":
			s.WriteString(fmt.Sprintf("chip8.cyclesperframe::%d; ", cpf))
		case "fps":
			s.WriteString(fmt.Sprintf("chip8.maxfps::%d; ", fps))
		case "shiftswap":
			s.WriteString(fmt.Sprintf("chip8.quirks.shiftswap::%v; ", shiftSwap))
		case "complexjump":
			s.WriteString(fmt.Sprintf("chip8.quirks.complexjump::%v; ", complexJump))
		}
	})
	return strings.TrimSuffix(s.String(), "; ")
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cpf := md.AddInt("cpf", 10, "number of instructions executed per frame")
	fps := md.AddInt("fps", 60, "frame rate ceiling. zero means no ceiling")
	shiftSwap := md.AddBool("shiftswap", false, "shift instructions load VY before shifting")
	complexJump := md.AddBool("complexjump", false, "jump-with-offset adds VX rather than V0")
	fullScreen := md.AddBool("fullscreen", false, "open the window in fullscreen mode")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	// flags explicitly set on the command line supersede the saved
	// preferences when the machine is created
	prefs.PushCommandLineStack(commandLinePrefs(md, *cpf, *fps, *shiftSwap, *complexJump))

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		if err := playmode.Play(md.GetArg(0), *fullScreen); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// check use of command line preferences
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "main", "%s unused", unused)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		ld, err := romloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		dsm := disassembly.FromLoader(ld)
		if err := dsm.Write(md.Output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through a profiler: cpu, mem, trace, all")
	cpf := md.AddInt("cpf", 10, "number of instructions executed per frame")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prefs.PushCommandLineStack(commandLinePrefs(md, *cpf, 0, false, false))

	if statsview.Available() {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		if err := performance.Check(md.Output, prof, md.GetArg(0), *duration); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "main", "%s unused", unused)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, ver)
	if *revision {
		fmt.Fprintf(md.Output, "  %s\n", rev)
	}

	return nil
}
