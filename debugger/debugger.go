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

// Package debugger is the command line debugger for the emulated machine.
// The interface is through an implementation of the terminal.Terminal
// interface.
package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/retrogopher/gopher8/cartridgeloader"
	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/debugger/terminal"
	"github.com/retrogopher/gopher8/digest"
	"github.com/retrogopher/gopher8/disassembly"
	"github.com/retrogopher/gopher8/hardware"
	"github.com/retrogopher/gopher8/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	vm   *hardware.Chip8
	term terminal.Terminal

	// the cartridge that was attached on Start(). kept so that the RESET
	// command can restore the machine to its starting state
	cartload cartridgeloader.Loader

	breakpoints *breakpoints

	// rolling fingerprint of the video output, reported by the HASH command
	dig *digest.Video

	// events is passed to TermRead so that the terminal can react to
	// interrupt signals while waiting for input
	events *terminal.ReadEvents

	// buffer for user input
	input [255]byte

	// when running is false the input loop will exit and the debugger will
	// end
	running bool
}

// NewDebugger creates a new debugger for the supplied terminal.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		vm:          hardware.NewChip8(),
		term:        term,
		breakpoints: newBreakpoints(),
	}
	dbg.dig = digest.NewVideo(dbg.vm.Video)

	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}

	return dbg, nil
}

// Start the debugger session with the supplied cartridge attached.
func (dbg *Debugger) Start(cartload cartridgeloader.Loader) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.cartload = cartload
	err = dbg.vm.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	// the log echo is of no use while the terminal is being driven, we print
	// new entries ourselves after every command
	logger.SetEcho(nil)

	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	dbg.running = true
	err = dbg.inputLoop()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

// inputLoop reads commands from the terminal until the session ends.
func (dbg *Debugger) inputLoop() error {
	for dbg.running {
		prompt := terminal.Prompt{Content: dbg.disasmCurrent().String()}

		n, err := dbg.term.TermRead(dbg.input[:], prompt, dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "quitting")
				break // for loop
			}
			if err == io.EOF {
				break // for loop
			}
			return err
		}

		err = dbg.parseInput(string(dbg.input[:n]))
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}

		dbg.drainLog()
	}

	return nil
}

// disasmCurrent disassembles the instruction at the current program counter.
func (dbg *Debugger) disasmCurrent() disassembly.Entry {
	pc := dbg.vm.CPU.PC
	return disassembly.Decode(pc, dbg.vm.Mem.Read16(pc))
}

// printLine writes a formatted string to the terminal.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(style, s)
}

// drainLog prints any log entries made since the last command.
func (dbg *Debugger) drainLog() {
	s := &strings.Builder{}
	logger.Write(s)
	if s.Len() == 0 {
		return
	}
	for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
		dbg.printLine(terminal.StyleLog, "%s", l)
	}
	logger.Clear()
}
