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

package cpu

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/hardware/keypad"
	"github.com/retrogopher/gopher8/hardware/memory"
	"github.com/retrogopher/gopher8/hardware/timers"
	"github.com/retrogopher/gopher8/hardware/video"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Flag is the index of the flag register. Arithmetic carry/borrow, the
// shifted-out bit and the draw collision condition are all reported here,
// overwriting whatever value the register held.
const Flag = 0x0f

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// sentinel errors returned by the Step() function. the original hardware
// specification leaves the behaviour of both conditions undefined; this
// implementation chooses to fail fast.
const (
	StackOverflow  = "cpu: stack overflow: call depth greater than %d"
	StackUnderflow = "cpu: stack underflow: return without a matching call"
)

// CPU implements the instruction decode/dispatch engine of the CHIP-8
// machine and the register state it operates on.
type CPU struct {
	// general purpose registers. V[Flag] is overloaded as the flag register
	V [NumRegisters]uint8

	// index register. used as a base pointer into memory by the sprite and
	// bulk transfer instructions. stored wider than twelve bits; masking
	// happens on memory access
	I uint16

	// program counter. advanced by two after every fetch and otherwise
	// mutated only by the flow control instructions
	PC uint16

	// call stack. SP indexes the next free slot
	Stack [StackDepth]uint16
	SP    uint8

	// the most recently fetched instruction word. valid only for the
	// duration of one Step()
	Opcode uint16

	mem  *memory.Memory
	vid  *video.Video
	pad  *keypad.Keypad
	tmrs *timers.Timers

	// source of uniformly distributed random bytes for the rand
	// instruction. seeded from the clock unless overridden with Seed()
	rnd *rand.Rand

	// dispatch tables. the top nibble of the instruction word selects from
	// families; families 0x0, 0x8, 0xe and 0xf sub-dispatch on the low
	// nibble or low byte of the word
	families [16]func() error
	table0   [16]func() error
	table8   [16]func() error
	tableE   [16]func() error
	tableF   [256]func() error
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, vid *video.Video, pad *keypad.Keypad, tmrs *timers.Timers) *CPU {
	mc := &CPU{
		mem:  mem,
		vid:  vid,
		pad:  pad,
		tmrs: tmrs,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	mc.buildDispatchTables()
	mc.Reset()

	return mc
}

func (mc *CPU) String() string {
	s := fmt.Sprintf("PC=%#04x I=%#04x SP=%#02x", mc.PC, mc.I, mc.SP)
	for i, v := range mc.V {
		s = fmt.Sprintf("%s V%X=%#02x", s, i, v)
	}
	return s
}

// Reset reinitialises registers, stack and program counter. Memory, video
// and timers are not touched; they are reset by their owning packages.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = 0
	}
	for i := range mc.Stack {
		mc.Stack[i] = 0
	}
	mc.I = 0
	mc.SP = 0
	mc.Opcode = 0
	mc.PC = memory.OriginROM
}

// Seed reseeds the random byte source. Used by tests that need the rand
// instruction to be predictable.
func (mc *CPU) Seed(seed int64) {
	mc.rnd = rand.New(rand.NewSource(seed))
}

// Step executes one fetch-decode-execute cycle.
//
// The program counter is advanced before execution, so the flow control
// instructions operate on the post-increment counter and override it
// directly.
//
// Timer decrement is the concern of the machine cycle in the hardware
// package, not of the CPU.
func (mc *CPU) Step() error {
	mc.Opcode = mc.mem.Read16(mc.PC)
	mc.PC += 2
	return mc.families[mc.Opcode>>12]()
}

// the two-level dispatch structure mirrors the bit-field structure of the
// instruction word itself: a four bit family selector, then a family
// specific sub-selector. any combination not assigned a rule resolves to
// opNull. undefined encodings are a documented no-op, not an error.
func (mc *CPU) buildDispatchTables() {
	mc.families = [16]func() error{
		mc.dispatch0, mc.opJump, mc.opCall, mc.opSkipEqImm,
		mc.opSkipNeImm, mc.opSkipEqReg, mc.opLoadImm, mc.opAddImm,
		mc.dispatch8, mc.opSkipNeReg, mc.opLoadIndex, mc.opJumpOffset,
		mc.opRandAnd, mc.opDrawSprite, mc.dispatchE, mc.dispatchF,
	}

	for i := 0; i < 16; i++ {
		mc.table0[i] = mc.opNull
		mc.table8[i] = mc.opNull
		mc.tableE[i] = mc.opNull
	}
	for i := 0; i < 256; i++ {
		mc.tableF[i] = mc.opNull
	}

	mc.table0[0x0] = mc.opClearScreen
	mc.table0[0xe] = mc.opReturn

	mc.table8[0x0] = mc.opLoadReg
	mc.table8[0x1] = mc.opOr
	mc.table8[0x2] = mc.opAnd
	mc.table8[0x3] = mc.opXor
	mc.table8[0x4] = mc.opAddReg
	mc.table8[0x5] = mc.opSubReg
	mc.table8[0x6] = mc.opShiftRight
	mc.table8[0x7] = mc.opSubnReg
	mc.table8[0xe] = mc.opShiftLeft

	mc.tableE[0x1] = mc.opSkipKeyNotPressed
	mc.tableE[0xe] = mc.opSkipKeyPressed

	mc.tableF[0x07] = mc.opGetDelayTimer
	mc.tableF[0x0a] = mc.opWaitKey
	mc.tableF[0x15] = mc.opSetDelayTimer
	mc.tableF[0x18] = mc.opSetSoundTimer
	mc.tableF[0x1e] = mc.opAddToIndex
	mc.tableF[0x29] = mc.opFontCharAddress
	mc.tableF[0x33] = mc.opStoreBCD
	mc.tableF[0x55] = mc.opStoreRegisters
	mc.tableF[0x65] = mc.opLoadRegisters
}

func (mc *CPU) dispatch0() error {
	return mc.table0[mc.Opcode&0x000f]()
}

func (mc *CPU) dispatch8() error {
	return mc.table8[mc.Opcode&0x000f]()
}

func (mc *CPU) dispatchE() error {
	return mc.tableE[mc.Opcode&0x000f]()
}

func (mc *CPU) dispatchF() error {
	return mc.tableF[mc.Opcode&0x00ff]()
}

// canonical operand field extractions from the current instruction word.

// x is the register index in bits 8 to 11.
func (mc *CPU) x() uint8 {
	return uint8(mc.Opcode>>8) & 0x0f
}

// y is the register index in bits 4 to 7.
func (mc *CPU) y() uint8 {
	return uint8(mc.Opcode>>4) & 0x0f
}

// kk is the immediate byte in bits 0 to 7.
func (mc *CPU) kk() uint8 {
	return uint8(mc.Opcode)
}

// nnn is the address in bits 0 to 11.
func (mc *CPU) nnn() uint16 {
	return mc.Opcode & 0x0fff
}

// stack helpers. failing fast on overflow and underflow is this
// implementation's policy for conditions the original hardware
// specification leaves undefined.

func (mc *CPU) push(address uint16) error {
	if mc.SP >= StackDepth {
		return curated.Errorf(StackOverflow, StackDepth)
	}
	mc.Stack[mc.SP] = address
	mc.SP++
	return nil
}

func (mc *CPU) pop() (uint16, error) {
	if mc.SP == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	mc.SP--
	return mc.Stack[mc.SP], nil
}
