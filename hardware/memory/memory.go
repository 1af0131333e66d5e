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

// Package memory implements the 4KB address space of the CHIP-8 machine.
//
// The memory map is flat but divided into zones by convention:
//
//	0x000 to 0x1ff	reserved (the CHIP-8 interpreter on original hardware)
//	0x050 to 0x09f	the built-in hexadecimal font
//	0x200 to 0xfff	program ROM and working RAM
//
// The zones are not enforced. A program is free to read and write anywhere
// in the address space. Addresses are masked to twelve bits on every access
// so out-of-range addresses wrap rather than fault.
package memory

import (
	"github.com/retrogopher/gopher8/curated"
)

// Size of the CHIP-8 address space in bytes.
const Size = 4096

// AddressMask is applied to every address before use. Addresses used in
// practice fit in twelve bits.
const AddressMask = 0x0fff

// OriginFont is the address the built-in font is copied to.
const OriginFont = 0x050

// OriginROM is the address a loaded program begins at. It is also the reset
// value of the program counter.
const OriginROM = 0x200

// MaxROMSize is the largest program image that can be copied into memory.
const MaxROMSize = Size - OriginROM

// Memory is the flat address space of the machine.
type Memory struct {
	RAM [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes the address space and copies the built-in font back into its
// zone. Any loaded program is lost.
func (mem *Memory) Reset() {
	for i := range mem.RAM {
		mem.RAM[i] = 0
	}
	copy(mem.RAM[OriginFont:], fontData[:])
}

// Read8 returns the byte at the (masked) address.
func (mem *Memory) Read8(address uint16) uint8 {
	return mem.RAM[address&AddressMask]
}

// Write8 writes a byte to the (masked) address.
func (mem *Memory) Write8(address uint16, data uint8) {
	mem.RAM[address&AddressMask] = data
}

// Read16 returns the big-endian sixteen bit word at the (masked) address.
// Instructions are fetched with this function.
func (mem *Memory) Read16(address uint16) uint16 {
	return uint16(mem.RAM[address&AddressMask])<<8 | uint16(mem.RAM[(address+1)&AddressMask])
}

// WriteROM copies a program image into memory starting at OriginROM. The
// contract with the loader is raw bytes copied verbatim; interpretation is
// entirely down to the CPU.
func (mem *Memory) WriteROM(data []byte) error {
	if len(data) > MaxROMSize {
		return curated.Errorf("memory: program image too large (%d bytes, %d max)", len(data), MaxROMSize)
	}
	copy(mem.RAM[OriginROM:], data)
	return nil
}
