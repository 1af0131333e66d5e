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

package cpu_test

import (
	"testing"

	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/hardware/cpu"
	"github.com/retrogopher/gopher8/hardware/keypad"
	"github.com/retrogopher/gopher8/hardware/memory"
	"github.com/retrogopher/gopher8/hardware/timers"
	"github.com/retrogopher/gopher8/hardware/video"
	"github.com/retrogopher/gopher8/test"
)

type testRig struct {
	mem  *memory.Memory
	vid  *video.Video
	pad  *keypad.Keypad
	tmrs *timers.Timers
	mc   *cpu.CPU
}

func newTestRig() *testRig {
	rig := &testRig{
		mem:  memory.NewMemory(),
		vid:  video.NewVideo(),
		pad:  keypad.NewKeypad(),
		tmrs: timers.NewTimers(),
	}
	rig.mc = cpu.NewCPU(rig.mem, rig.vid, rig.pad, rig.tmrs)
	return rig
}

// load a program at the ROM origin and leave the CPU ready to execute the
// first instruction.
func (rig *testRig) loadProgram(t *testing.T, words ...uint16) {
	t.Helper()

	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = append(data, byte(w>>8), byte(w))
	}

	if err := rig.mem.WriteROM(data); err != nil {
		t.Fatal(err)
	}
	rig.mc.Reset()
}

func (rig *testRig) step(t *testing.T) {
	t.Helper()
	if err := rig.mc.Step(); err != nil {
		t.Fatal(err)
	}
}

func TestResetState(t *testing.T) {
	rig := newTestRig()

	test.Equate(t, rig.mc.PC, memory.OriginROM)
	test.Equate(t, rig.mc.I, 0)
	test.Equate(t, rig.mc.SP, 0)
	for i := 0; i < cpu.NumRegisters; i++ {
		test.Equate(t, rig.mc.V[i], 0)
	}
}

func TestLoadAndAddImmediate(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0x6005, 0x7103, 0x70ff)

	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0x05)
	test.Equate(t, rig.mc.PC, memory.OriginROM+2)

	rig.step(t)
	test.Equate(t, rig.mc.V[1], 0x03)

	// add-imm wraps modulo 256 and does not set the flag
	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0x04)
	test.Equate(t, rig.mc.V[cpu.Flag], 0)
}

func TestAddRegCarry(t *testing.T) {
	// add-reg sets the flag to one iff the sixteen bit sum exceeds 255 and
	// stores the low eight bits, for every register pair value
	for _, tc := range []struct {
		a, b  uint8
		sum   uint8
		carry uint8
	}{
		{0x00, 0x00, 0x00, 0},
		{0x05, 0x03, 0x08, 0},
		{0xff, 0x01, 0x00, 1},
		{0xff, 0xff, 0xfe, 1},
		{0x80, 0x7f, 0xff, 0},
		{0x80, 0x80, 0x00, 1},
	} {
		rig := newTestRig()
		rig.loadProgram(t, 0x8014)
		rig.mc.V[0] = tc.a
		rig.mc.V[1] = tc.b
		rig.step(t)
		test.Equate(t, rig.mc.V[0], tc.sum)
		test.Equate(t, rig.mc.V[cpu.Flag], tc.carry)
	}
}

func TestSubRegBorrow(t *testing.T) {
	// sub-reg flag is one iff Vx is strictly greater than Vy
	for _, tc := range []struct {
		a, b uint8
		diff uint8
		flag uint8
	}{
		{0x08, 0x03, 0x05, 1},
		{0x03, 0x08, 0xfb, 0},
		{0x05, 0x05, 0x00, 0},
		{0x00, 0x01, 0xff, 0},
	} {
		rig := newTestRig()
		rig.loadProgram(t, 0x8015)
		rig.mc.V[0] = tc.a
		rig.mc.V[1] = tc.b
		rig.step(t)
		test.Equate(t, rig.mc.V[0], tc.diff)
		test.Equate(t, rig.mc.V[cpu.Flag], tc.flag)
	}
}

func TestSubnReg(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0x8017)
	rig.mc.V[0] = 0x03
	rig.mc.V[1] = 0x08
	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0x05)
	test.Equate(t, rig.mc.V[cpu.Flag], 1)

	rig = newTestRig()
	rig.loadProgram(t, 0x8017)
	rig.mc.V[0] = 0x08
	rig.mc.V[1] = 0x03
	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0xfb)
	test.Equate(t, rig.mc.V[cpu.Flag], 0)
}

func TestShiftRight(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0x8006)
	rig.mc.V[0] = 0x05
	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0x02)
	test.Equate(t, rig.mc.V[cpu.Flag], 1)

	// the shifted-out bit must be captured before the register mutates,
	// even when x is the flag register itself
	rig = newTestRig()
	rig.loadProgram(t, 0x8f06)
	rig.mc.V[cpu.Flag] = 0x03
	rig.step(t)
	test.Equate(t, rig.mc.V[cpu.Flag], 1)
}

func TestShiftLeft(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0x800e)
	rig.mc.V[0] = 0x81
	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0x02)
	test.Equate(t, rig.mc.V[cpu.Flag], 1)

	rig = newTestRig()
	rig.loadProgram(t, 0x800e)
	rig.mc.V[0] = 0x41
	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0x82)
	test.Equate(t, rig.mc.V[cpu.Flag], 0)
}

func TestBitwiseOps(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0x8011, 0x8012, 0x8013)
	rig.mc.V[0] = 0xf0
	rig.mc.V[1] = 0x3c

	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0xfc)

	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0x3c)

	rig.step(t)
	test.Equate(t, rig.mc.V[0], 0x00)
}

func TestSkips(t *testing.T) {
	// skip-eq-imm taken
	rig := newTestRig()
	rig.loadProgram(t, 0x3005)
	rig.mc.V[0] = 0x05
	rig.step(t)
	test.Equate(t, rig.mc.PC, memory.OriginROM+4)

	// skip-eq-imm not taken
	rig = newTestRig()
	rig.loadProgram(t, 0x3005)
	rig.mc.V[0] = 0x06
	rig.step(t)
	test.Equate(t, rig.mc.PC, memory.OriginROM+2)

	// skip-ne-imm
	rig = newTestRig()
	rig.loadProgram(t, 0x4005)
	rig.mc.V[0] = 0x06
	rig.step(t)
	test.Equate(t, rig.mc.PC, memory.OriginROM+4)

	// skip-eq-reg
	rig = newTestRig()
	rig.loadProgram(t, 0x5010)
	rig.mc.V[0] = 0x11
	rig.mc.V[1] = 0x11
	rig.step(t)
	test.Equate(t, rig.mc.PC, memory.OriginROM+4)

	// skip-ne-reg
	rig = newTestRig()
	rig.loadProgram(t, 0x9010)
	rig.mc.V[0] = 0x11
	rig.mc.V[1] = 0x12
	rig.step(t)
	test.Equate(t, rig.mc.PC, memory.OriginROM+4)
}

func TestJumpAndOffset(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0x1300)
	rig.step(t)
	test.Equate(t, rig.mc.PC, 0x300)

	rig = newTestRig()
	rig.loadProgram(t, 0xb300)
	rig.mc.V[0] = 0x08
	rig.step(t)
	test.Equate(t, rig.mc.PC, 0x308)
}

func TestCallReturn(t *testing.T) {
	// call 0x300 then return restores the counter to the instruction
	// following the call
	rig := newTestRig()
	rig.loadProgram(t, 0x2300)
	rig.mem.Write8(0x300, 0x00)
	rig.mem.Write8(0x301, 0xee)

	rig.step(t)
	test.Equate(t, rig.mc.PC, 0x300)
	test.Equate(t, rig.mc.SP, 1)

	rig.step(t)
	test.Equate(t, rig.mc.PC, memory.OriginROM+2)
	test.Equate(t, rig.mc.SP, 0)
}

func TestStackOverflow(t *testing.T) {
	// a subroutine that calls itself overflows the sixteen deep stack on
	// the seventeenth call
	rig := newTestRig()
	rig.loadProgram(t, 0x2200)

	var err error
	for i := 0; i < cpu.StackDepth; i++ {
		err = rig.mc.Step()
		test.ExpectedSuccess(t, err)
	}

	err = rig.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackOverflow))
}

func TestStackUnderflow(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0x00ee)

	err := rig.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackUnderflow))
}

func TestLoadIndex(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0xa123)
	rig.step(t)
	test.Equate(t, rig.mc.I, 0x123)
}

func TestAddToIndex(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0xf01e)
	rig.mc.I = 0x100
	rig.mc.V[0] = 0x22
	rig.mc.V[cpu.Flag] = 0x55
	rig.step(t)
	test.Equate(t, rig.mc.I, 0x122)

	// no overflow flag for index arithmetic
	test.Equate(t, rig.mc.V[cpu.Flag], 0x55)
}

func TestRandAnd(t *testing.T) {
	// the mask limits the result regardless of what the random source
	// produces
	rig := newTestRig()
	rig.loadProgram(t, 0xc00f)
	rig.mc.Seed(1)
	rig.step(t)
	test.Equate(t, rig.mc.V[0]&0xf0, 0)

	// a zero mask always produces zero
	rig = newTestRig()
	rig.loadProgram(t, 0xc100)
	rig.step(t)
	test.Equate(t, rig.mc.V[1], 0)

	// same seed, same sequence
	a := newTestRig()
	a.loadProgram(t, 0xc0ff)
	a.mc.Seed(99)
	a.step(t)

	b := newTestRig()
	b.loadProgram(t, 0xc0ff)
	b.mc.Seed(99)
	b.step(t)

	test.Equate(t, a.mc.V[0], b.mc.V[0])
}

func TestTimerInstructions(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0x6030, 0xf015, 0xf018, 0xf107)

	rig.step(t)
	rig.step(t)
	test.Equate(t, rig.tmrs.Delay, 0x30)

	rig.step(t)
	test.Equate(t, rig.tmrs.Sound, 0x30)

	rig.step(t)
	test.Equate(t, rig.mc.V[1], 0x30)
}

func TestKeySkips(t *testing.T) {
	// skip-key-pressed taken
	rig := newTestRig()
	rig.loadProgram(t, 0xe09e)
	rig.mc.V[0] = 0x0a
	rig.pad.Press(0x0a)
	rig.step(t)
	test.Equate(t, rig.mc.PC, memory.OriginROM+4)

	// skip-key-pressed not taken
	rig = newTestRig()
	rig.loadProgram(t, 0xe09e)
	rig.mc.V[0] = 0x0a
	rig.step(t)
	test.Equate(t, rig.mc.PC, memory.OriginROM+2)

	// skip-key-not-pressed taken
	rig = newTestRig()
	rig.loadProgram(t, 0xe0a1)
	rig.mc.V[0] = 0x0a
	rig.step(t)
	test.Equate(t, rig.mc.PC, memory.OriginROM+4)
}

func TestWaitKey(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0xf30a)

	// with no key pressed the program counter never advances, no matter
	// how many cycles run
	for i := 0; i < 10; i++ {
		rig.step(t)
		test.Equate(t, rig.mc.PC, memory.OriginROM)
	}

	// the lowest pressed key wins and the counter advances exactly once
	rig.pad.Press(0x07)
	rig.pad.Press(0x02)
	rig.step(t)
	test.Equate(t, rig.mc.V[3], 0x02)
	test.Equate(t, rig.mc.PC, memory.OriginROM+2)
}

func TestFontCharAddress(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0xf029)
	rig.mc.V[0] = 0x0a
	rig.step(t)
	test.Equate(t, rig.mc.I, memory.OriginFont+10*memory.GlyphSize)
}

func TestStoreBCD(t *testing.T) {
	rig := newTestRig()
	rig.loadProgram(t, 0xf033)
	rig.mc.V[0] = 137
	rig.mc.I = 0x400
	rig.step(t)
	test.Equate(t, rig.mem.Read8(0x400), 1)
	test.Equate(t, rig.mem.Read8(0x401), 3)
	test.Equate(t, rig.mem.Read8(0x402), 7)
}

func TestRegisterRoundTrip(t *testing.T) {
	// store-registers followed by load-registers into freshly zeroed
	// registers restores the original values exactly
	rig := newTestRig()
	rig.loadProgram(t, 0xf755)

	values := []uint8{0x10, 0x21, 0x32, 0x43, 0x54, 0x65, 0x76, 0x87}
	copy(rig.mc.V[:], values)
	rig.mc.I = 0x500
	rig.step(t)

	rig.loadProgram(t, 0xf765)
	rig.mc.I = 0x500
	rig.step(t)

	for i, v := range values {
		test.Equate(t, rig.mc.V[i], v)
	}
}

func TestUndefinedOpcodes(t *testing.T) {
	// undefined encodings resolve to a no-op that advances the program
	// counter and changes nothing else
	for _, opcode := range []uint16{0x0123, 0x00e1, 0x8008, 0x800f, 0xe000, 0xf000, 0xf0ff} {
		rig := newTestRig()
		rig.loadProgram(t, opcode)
		rig.mc.V[5] = 0x42
		rig.step(t)
		test.Equate(t, rig.mc.PC, memory.OriginROM+2)
		test.Equate(t, rig.mc.V[5], 0x42)
		test.Equate(t, rig.mc.SP, 0)
	}
}

func TestEndToEndAddition(t *testing.T) {
	// the canonical three instruction program: load 5, load 3, add
	rig := newTestRig()
	rig.loadProgram(t, 0x6005, 0x6103, 0x8014)

	rig.step(t)
	rig.step(t)
	rig.step(t)

	test.Equate(t, rig.mc.V[0], 8)
	test.Equate(t, rig.mc.V[cpu.Flag], 0)
	test.Equate(t, rig.mc.PC, memory.OriginROM+6)
}
