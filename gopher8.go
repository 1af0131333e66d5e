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
	"runtime"

	"github.com/retrogopher/gopher8/cartridgeloader"
	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/debugger"
	"github.com/retrogopher/gopher8/debugger/terminal"
	"github.com/retrogopher/gopher8/debugger/terminal/colorterm"
	"github.com/retrogopher/gopher8/debugger/terminal/plainterm"
	"github.com/retrogopher/gopher8/disassembly"
	"github.com/retrogopher/gopher8/logger"
	"github.com/retrogopher/gopher8/modalflag"
	"github.com/retrogopher/gopher8/performance"
	"github.com/retrogopher/gopher8/playmode"
	"github.com/retrogopher/gopher8/statsview"
	"github.com/retrogopher/gopher8/version"
)

// the number of machine cycles per second when no other rate has been asked
// for. a comfortable rate for most programs.
const defaultCyclesPerSecond = 700

func init() {
	// SDL wants the main goroutine to stay on the main thread
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 10.0, "window scale")
	cycles := md.AddInt("cycles", defaultCyclesPerSecond, "machine cycles per second")
	uncapped := md.AddBool("uncapped", false, "run as fast as possible")
	wavFile := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("no cartridge specified")
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return playmode.Play(cartload, float32(*scale), *cycles, *uncapped, *wavFile)
	default:
		return curated.Errorf("too many arguments for %s mode", md.Path())
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	var term terminal.Terminal

	switch *termType {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return curated.Errorf("unknown terminal type: %s", *termType)
	}

	dbg, err := debugger.NewDebugger(term)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("no cartridge specified")
	case 1:
		return dbg.Start(cartridgeloader.NewLoader(md.GetArg(0)))
	default:
		return curated.Errorf("too many arguments for %s mode", md.Path())
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("no cartridge specified")
	case 1:
		dsm, err := disassembly.FromCartridge(cartridgeloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}
		return dsm.Write(os.Stdout)
	default:
		return curated.Errorf("too many arguments for %s mode", md.Path())
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("no cartridge specified")
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0))
		return performance.Check(os.Stdout, cartload, *duration, *profile)
	default:
		return curated.Errorf("too many arguments for %s mode", md.Path())
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if version.Version == "" {
		fmt.Println("gopher8 (development build)")
	} else {
		fmt.Printf("gopher8 %s\n", version.Version)
	}

	return nil
}
