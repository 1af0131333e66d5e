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
	"github.com/retrogopher/gopher8/hardware/video"
)

// sprites are always eight pixels wide. one byte of memory per row, bit 7
// leftmost.
const spriteWidth = 8

// the dxyn instruction. sprite data is read from memory at the index
// register, n rows of one byte each, and XORed onto the framebuffer at the
// coordinates held in Vx and Vy.
//
// the start coordinates wrap modulo the display dimensions, and so does
// every individual pixel: a sprite drawn at the right edge continues at the
// left edge of the same rows. wrapping is per-pixel, not per-sprite.
//
// the flag register reports collision: one if any toggled pixel was on
// before the toggle. the flag latches for the duration of the draw; once
// set by any pixel it is never cleared back to zero by a later one.
func (mc *CPU) drawSprite() error {
	x := int(mc.V[mc.x()]) % video.Width
	y := int(mc.V[mc.y()]) % video.Height
	height := int(mc.Opcode & 0x000f)

	mc.V[Flag] = 0

	for row := 0; row < height; row++ {
		sprite := mc.mem.Read8(mc.I + uint16(row))

		for col := 0; col < spriteWidth; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}

			px := (x + col) % video.Width
			py := (y + row) % video.Height

			if mc.vid.Toggle(px, py) {
				mc.V[Flag] = 1
			}
		}
	}

	return nil
}
