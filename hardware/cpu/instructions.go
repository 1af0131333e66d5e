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
	"github.com/retrogopher/gopher8/hardware/memory"
)

// the execution rule for every instruction in the CHIP-8 set. each function
// assumes the program counter has already been advanced past the
// instruction word, so the skip rules add two and the flow control rules
// overwrite the counter directly.

// 0nnn (other than 00e0 and 00ee) was a machine code call on the original
// hardware. here, like every other undefined encoding, it has no effect.
func (mc *CPU) opNull() error {
	return nil
}

// 00e0. turn every framebuffer pixel off.
func (mc *CPU) opClearScreen() error {
	mc.vid.Clear()
	return nil
}

// 00ee. return from subroutine.
func (mc *CPU) opReturn() error {
	address, err := mc.pop()
	if err != nil {
		return err
	}
	mc.PC = address
	return nil
}

// 1nnn. jump to address.
func (mc *CPU) opJump() error {
	mc.PC = mc.nnn()
	return nil
}

// 2nnn. call subroutine. the pushed value is the post-increment counter,
// the address of the instruction following the call.
func (mc *CPU) opCall() error {
	if err := mc.push(mc.PC); err != nil {
		return err
	}
	mc.PC = mc.nnn()
	return nil
}

// 3xkk. skip next instruction if Vx == kk.
func (mc *CPU) opSkipEqImm() error {
	if mc.V[mc.x()] == mc.kk() {
		mc.PC += 2
	}
	return nil
}

// 4xkk. skip next instruction if Vx != kk.
func (mc *CPU) opSkipNeImm() error {
	if mc.V[mc.x()] != mc.kk() {
		mc.PC += 2
	}
	return nil
}

// 5xy0. skip next instruction if Vx == Vy.
func (mc *CPU) opSkipEqReg() error {
	if mc.V[mc.x()] == mc.V[mc.y()] {
		mc.PC += 2
	}
	return nil
}

// 6xkk. load immediate.
func (mc *CPU) opLoadImm() error {
	mc.V[mc.x()] = mc.kk()
	return nil
}

// 7xkk. add immediate. wraps modulo 256 and does not touch the flag
// register.
func (mc *CPU) opAddImm() error {
	mc.V[mc.x()] += mc.kk()
	return nil
}

// 8xy0. register copy.
func (mc *CPU) opLoadReg() error {
	mc.V[mc.x()] = mc.V[mc.y()]
	return nil
}

// 8xy1. bitwise OR.
func (mc *CPU) opOr() error {
	mc.V[mc.x()] |= mc.V[mc.y()]
	return nil
}

// 8xy2. bitwise AND.
func (mc *CPU) opAnd() error {
	mc.V[mc.x()] &= mc.V[mc.y()]
	return nil
}

// 8xy3. bitwise XOR.
func (mc *CPU) opXor() error {
	mc.V[mc.x()] ^= mc.V[mc.y()]
	return nil
}

// 8xy4. add with carry. the flag register receives the carry even when x
// is the flag register itself, in which case the carry wins.
func (mc *CPU) opAddReg() error {
	x := mc.x()
	sum := uint16(mc.V[x]) + uint16(mc.V[mc.y()])
	mc.V[x] = uint8(sum)

	if sum > 0xff {
		mc.V[Flag] = 1
	} else {
		mc.V[Flag] = 0
	}

	return nil
}

// 8xy5. subtract. flag is NOT borrow: one if Vx is strictly greater than
// Vy. note that the flag is decided before the subtraction so that the rule
// holds even when x or y is the flag register.
func (mc *CPU) opSubReg() error {
	x := mc.x()
	y := mc.y()

	flag := uint8(0)
	if mc.V[x] > mc.V[y] {
		flag = 1
	}

	mc.V[x] -= mc.V[y]
	mc.V[Flag] = flag

	return nil
}

// 8xy6. shift right. the shifted-out bit is captured before the register
// mutates.
func (mc *CPU) opShiftRight() error {
	x := mc.x()
	flag := mc.V[x] & 0x01
	mc.V[x] >>= 1
	mc.V[Flag] = flag
	return nil
}

// 8xy7. reverse subtract: Vx = Vy - Vx. flag is NOT borrow, as 8xy5 with
// the operands swapped.
func (mc *CPU) opSubnReg() error {
	x := mc.x()
	y := mc.y()

	flag := uint8(0)
	if mc.V[y] > mc.V[x] {
		flag = 1
	}

	mc.V[x] = mc.V[y] - mc.V[x]
	mc.V[Flag] = flag

	return nil
}

// 8xye. shift left. the shifted-out bit is captured before the register
// mutates.
func (mc *CPU) opShiftLeft() error {
	x := mc.x()
	flag := mc.V[x] >> 7
	mc.V[x] <<= 1
	mc.V[Flag] = flag
	return nil
}

// 9xy0. skip next instruction if Vx != Vy.
func (mc *CPU) opSkipNeReg() error {
	if mc.V[mc.x()] != mc.V[mc.y()] {
		mc.PC += 2
	}
	return nil
}

// annn. load index register.
func (mc *CPU) opLoadIndex() error {
	mc.I = mc.nnn()
	return nil
}

// bnnn. jump to address plus V0.
func (mc *CPU) opJumpOffset() error {
	mc.PC = mc.nnn() + uint16(mc.V[0])
	return nil
}

// cxkk. random byte ANDed with the immediate byte.
func (mc *CPU) opRandAnd() error {
	mc.V[mc.x()] = uint8(mc.rnd.Intn(256)) & mc.kk()
	return nil
}

// dxyn. draw sprite. see spriteWidth comment for the sprite format.
func (mc *CPU) opDrawSprite() error {
	return mc.drawSprite()
}

// ex9e. skip next instruction if the key indexed by Vx is pressed.
func (mc *CPU) opSkipKeyPressed() error {
	if mc.pad.IsPressed(mc.V[mc.x()]) {
		mc.PC += 2
	}
	return nil
}

// exa1. skip next instruction if the key indexed by Vx is not pressed.
func (mc *CPU) opSkipKeyNotPressed() error {
	if !mc.pad.IsPressed(mc.V[mc.x()]) {
		mc.PC += 2
	}
	return nil
}

// fx07. read delay timer.
func (mc *CPU) opGetDelayTimer() error {
	mc.V[mc.x()] = mc.tmrs.Delay
	return nil
}

// fx0a. wait for a key press. when no key is down the program counter is
// rewound by two so the instruction executes again on the next cycle.
// blocking by repetition, never a true suspension: control returns to the
// driving loop every cycle regardless.
func (mc *CPU) opWaitKey() error {
	if key, ok := mc.pad.FirstPressed(); ok {
		mc.V[mc.x()] = key
		return nil
	}
	mc.PC -= 2
	return nil
}

// fx15. set delay timer.
func (mc *CPU) opSetDelayTimer() error {
	mc.tmrs.Delay = mc.V[mc.x()]
	return nil
}

// fx18. set sound timer.
func (mc *CPU) opSetSoundTimer() error {
	mc.tmrs.Sound = mc.V[mc.x()]
	return nil
}

// fx1e. add register to index. no flag, unlike the register add. some
// interpreters set the flag on overflow past 0xfff but the original
// specification does not and neither does this implementation.
func (mc *CPU) opAddToIndex() error {
	mc.I += uint16(mc.V[mc.x()])
	return nil
}

// fx29. point the index register at the font glyph for the digit in Vx.
func (mc *CPU) opFontCharAddress() error {
	mc.I = memory.GlyphAddress(mc.V[mc.x()])
	return nil
}

// fx33. binary coded decimal. the decimal digits of Vx are written to
// memory at the index register: hundreds, tens, ones.
func (mc *CPU) opStoreBCD() error {
	value := mc.V[mc.x()]
	mc.mem.Write8(mc.I, value/100)
	mc.mem.Write8(mc.I+1, (value/10)%10)
	mc.mem.Write8(mc.I+2, value%10)
	return nil
}

// fx55. store registers V0 to Vx inclusive to memory at the index
// register.
func (mc *CPU) opStoreRegisters() error {
	x := mc.x()
	for i := uint8(0); i <= x; i++ {
		mc.mem.Write8(mc.I+uint16(i), mc.V[i])
	}
	return nil
}

// fx65. load registers V0 to Vx inclusive from memory at the index
// register.
func (mc *CPU) opLoadRegisters() error {
	x := mc.x()
	for i := uint8(0); i <= x; i++ {
		mc.V[i] = mc.mem.Read8(mc.I + uint16(i))
	}
	return nil
}
