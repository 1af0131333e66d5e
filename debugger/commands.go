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

package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/debugger/terminal"
	"github.com/retrogopher/gopher8/disassembly"
	"github.com/retrogopher/gopher8/hardware/memory"
	"github.com/retrogopher/gopher8/hardware/video"
)

// list of command names as they appear in the HELP output.
const helpText = `BREAK [address]
    halt the RUN command when the program counter reaches the address.
    with no argument, list current breakpoints
CLEAR
    remove all breakpoints
CPU
    print the state of the CPU registers
DISASM
    print a disassembly of the attached cartridge
DROP address
    remove the breakpoint at the address
HASH
    print the rolling fingerprint of the video output
KEY key [UP]
    press (or release) a key on the hexadecimal keypad
MEMVIZ filename
    write a graphviz visualisation of the machine to the file
PEEK address [length]
    print the contents of memory
POKE address value
    change the contents of memory
QUIT
    end the debugging session
RESET
    reset the machine and reattach the cartridge
RUN
    run the machine until a breakpoint or an interrupt
SCREEN
    draw the framebuffer to the terminal
STEP [n]
    step the machine by one (or n) cycles
TIMERS
    print the state of the delay and sound timers`

// how often the RUN command checks for interrupt signals. checking the
// channel is relatively expensive.
const runEventBrake = 500

// parseInput splits the input into a command and its arguments and executes
// it. the command keyword is case insensitive, arguments are passed through
// as typed.
func (dbg *Debugger) parseInput(input string) error {
	toks := strings.Fields(strings.TrimSpace(input))
	if len(toks) == 0 {
		return nil
	}

	command := strings.ToUpper(toks[0])
	args := toks[1:]

	switch command {
	case "HELP":
		dbg.printLine(terminal.StyleHelp, helpText)

	case "QUIT", "EXIT":
		dbg.running = false

	case "STEP":
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return curated.Errorf("debugger: not a step count: %s", args[0])
			}
			n = v
		}
		return dbg.stepCommand(n)

	case "RUN":
		return dbg.runCommand()

	case "BREAK":
		if len(args) == 0 {
			dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())
			return nil
		}
		for _, a := range args {
			address, err := parseAddress(a)
			if err != nil {
				return err
			}
			dbg.breakpoints.add(address)
		}

	case "DROP":
		if len(args) != 1 {
			return curated.Errorf("debugger: DROP requires an address")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		if !dbg.breakpoints.drop(address) {
			return curated.Errorf("debugger: no breakpoint at %#04x", address)
		}

	case "CLEAR":
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case "HASH":
		dbg.printLine(terminal.StyleInstrument, dbg.dig.Hash())

	case "CPU":
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.CPU.String())

	case "TIMERS":
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.Timers.String())

	case "KEY":
		return dbg.keyCommand(args)

	case "PEEK":
		return dbg.peekCommand(args)

	case "POKE":
		return dbg.pokeCommand(args)

	case "SCREEN":
		dbg.screenCommand()

	case "DISASM":
		dsm, err := disassembly.FromCartridge(dbg.cartload)
		if err != nil {
			return err
		}
		for _, e := range dsm.Entries {
			dbg.printLine(terminal.StyleFeedback, e.String())
		}

	case "MEMVIZ":
		if len(args) != 1 {
			return curated.Errorf("debugger: MEMVIZ requires a filename")
		}
		return dbg.memvizCommand(args[0])

	case "RESET":
		err := dbg.vm.AttachCartridge(dbg.cartload)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	default:
		return curated.Errorf("debugger: unrecognised command: %s", command)
	}

	return nil
}

// stepCommand advances the machine by n cycles, echoing each executed
// instruction.
func (dbg *Debugger) stepCommand(n int) error {
	for i := 0; i < n; i++ {
		e := dbg.disasmCurrent()
		if err := dbg.vm.Step(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, e.String())
	}
	return nil
}

// runCommand runs the machine until a breakpoint is reached or an interrupt
// signal arrives.
func (dbg *Debugger) runCommand() error {
	brake := 0

	err := dbg.vm.Run(func() (bool, error) {
		if dbg.breakpoints.check(dbg.vm.CPU.PC) {
			dbg.printLine(terminal.StyleFeedback, "break at %#04x", dbg.vm.CPU.PC)
			return false, nil
		}

		brake++
		if brake >= runEventBrake {
			brake = 0
			select {
			case <-dbg.events.Signal:
				dbg.printLine(terminal.StyleFeedback, "interrupted")
				return false, nil
			default:
			}
		}

		return true, nil
	})

	return err
}

// keyCommand injects keypad state into the machine. useful for driving
// programs that wait for a key without a GUI attached.
func (dbg *Debugger) keyCommand(args []string) error {
	if len(args) == 0 {
		return curated.Errorf("debugger: KEY requires a key (0 to F)")
	}

	v, err := strconv.ParseUint(args[0], 16, 8)
	if err != nil || v > 0x0f {
		return curated.Errorf("debugger: not a keypad key: %s", args[0])
	}
	key := uint8(v)

	if len(args) > 1 && strings.ToUpper(args[1]) == "UP" {
		dbg.vm.Keypad.Release(key)
		dbg.printLine(terminal.StyleFeedback, "key %01x released", key)
		return nil
	}

	dbg.vm.Keypad.Press(key)
	dbg.printLine(terminal.StyleFeedback, "key %01x pressed", key)
	return nil
}

func (dbg *Debugger) peekCommand(args []string) error {
	if len(args) == 0 {
		return curated.Errorf("debugger: PEEK requires an address")
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	length := 8
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 1 {
			return curated.Errorf("debugger: not a length: %s", args[1])
		}
		length = v
	}

	s := strings.Builder{}
	for i := 0; i < length; i++ {
		if i%8 == 0 {
			if i > 0 {
				dbg.printLine(terminal.StyleInstrument, strings.TrimSpace(s.String()))
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%#04x: ", address+uint16(i)))
		}
		s.WriteString(fmt.Sprintf("%02x ", dbg.vm.Mem.Read8(address+uint16(i))))
	}
	dbg.printLine(terminal.StyleInstrument, strings.TrimSpace(s.String()))

	return nil
}

func (dbg *Debugger) pokeCommand(args []string) error {
	if len(args) != 2 {
		return curated.Errorf("debugger: POKE requires an address and a value")
	}

	address, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	v, err := strconv.ParseUint(args[1], 0, 8)
	if err != nil {
		return curated.Errorf("debugger: not a byte value: %s", args[1])
	}

	dbg.vm.Mem.Write8(address, uint8(v))
	dbg.printLine(terminal.StyleFeedback, "%#04x = %02x", address, uint8(v))

	return nil
}

// screenCommand draws the framebuffer using unicode half-blocks, two rows of
// pixels per terminal line.
func (dbg *Debugger) screenCommand() {
	for y := 0; y < video.Height; y += 2 {
		s := strings.Builder{}
		for x := 0; x < video.Width; x++ {
			top := dbg.vm.Video.Pixel(x, y)
			bot := dbg.vm.Video.Pixel(x, y+1)
			switch {
			case top && bot:
				s.WriteRune('█')
			case top:
				s.WriteRune('▀')
			case bot:
				s.WriteRune('▄')
			default:
				s.WriteRune(' ')
			}
		}
		dbg.printLine(terminal.StyleInstrument, s.String())
	}
}

// memvizCommand writes a graphviz visualisation of the machine to a file.
func (dbg *Debugger) memvizCommand(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.vm)
	dbg.printLine(terminal.StyleFeedback, "memviz written to %s", filename)

	return nil
}

func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil || v >= memory.Size {
		return 0, curated.Errorf("debugger: not an address: %s", s)
	}
	return uint16(v), nil
}
