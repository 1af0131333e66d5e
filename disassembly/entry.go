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

package disassembly

import (
	"fmt"
)

// Entry is a single disassembled instruction word.
type Entry struct {
	Address  uint16
	Opcode   uint16
	Mnemonic string
	Operand  string
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%#04x  %04x  %s", e.Address, e.Opcode, e.Mnemonic)
	}
	return fmt.Sprintf("%#04x  %04x  %s %s", e.Address, e.Opcode, e.Mnemonic, e.Operand)
}

// Decode disassembles a single instruction word. Every sixteen bit value
// decodes to something; words with no assigned instruction decode to DATA,
// reflecting that program data is indistinguishable from code until it is
// executed.
func Decode(address, opcode uint16) Entry {
	e := Entry{
		Address: address,
		Opcode:  opcode,
	}

	x := (opcode >> 8) & 0x0f
	y := (opcode >> 4) & 0x0f
	kk := opcode & 0x00ff
	nnn := opcode & 0x0fff
	n := opcode & 0x000f

	data := func() {
		e.Mnemonic = "DATA"
		e.Operand = fmt.Sprintf("%#04x", opcode)
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			e.Mnemonic = "CLS"
		case 0x00ee:
			e.Mnemonic = "RET"
		default:
			data()
		}
	case 0x1:
		e.Mnemonic = "JP"
		e.Operand = fmt.Sprintf("%#04x", nnn)
	case 0x2:
		e.Mnemonic = "CALL"
		e.Operand = fmt.Sprintf("%#04x", nnn)
	case 0x3:
		e.Mnemonic = "SE"
		e.Operand = fmt.Sprintf("V%X,%#02x", x, kk)
	case 0x4:
		e.Mnemonic = "SNE"
		e.Operand = fmt.Sprintf("V%X,%#02x", x, kk)
	case 0x5:
		if n != 0 {
			data()
			break
		}
		e.Mnemonic = "SE"
		e.Operand = fmt.Sprintf("V%X,V%X", x, y)
	case 0x6:
		e.Mnemonic = "LD"
		e.Operand = fmt.Sprintf("V%X,%#02x", x, kk)
	case 0x7:
		e.Mnemonic = "ADD"
		e.Operand = fmt.Sprintf("V%X,%#02x", x, kk)
	case 0x8:
		switch n {
		case 0x0:
			e.Mnemonic = "LD"
		case 0x1:
			e.Mnemonic = "OR"
		case 0x2:
			e.Mnemonic = "AND"
		case 0x3:
			e.Mnemonic = "XOR"
		case 0x4:
			e.Mnemonic = "ADD"
		case 0x5:
			e.Mnemonic = "SUB"
		case 0x6:
			e.Mnemonic = "SHR"
		case 0x7:
			e.Mnemonic = "SUBN"
		case 0xe:
			e.Mnemonic = "SHL"
		default:
			data()
		}
		if e.Mnemonic != "DATA" {
			e.Operand = fmt.Sprintf("V%X,V%X", x, y)
		}
	case 0x9:
		if n != 0 {
			data()
			break
		}
		e.Mnemonic = "SNE"
		e.Operand = fmt.Sprintf("V%X,V%X", x, y)
	case 0xa:
		e.Mnemonic = "LD"
		e.Operand = fmt.Sprintf("I,%#04x", nnn)
	case 0xb:
		e.Mnemonic = "JP"
		e.Operand = fmt.Sprintf("V0,%#04x", nnn)
	case 0xc:
		e.Mnemonic = "RND"
		e.Operand = fmt.Sprintf("V%X,%#02x", x, kk)
	case 0xd:
		e.Mnemonic = "DRW"
		e.Operand = fmt.Sprintf("V%X,V%X,%#x", x, y, n)
	case 0xe:
		switch kk {
		case 0x9e:
			e.Mnemonic = "SKP"
			e.Operand = fmt.Sprintf("V%X", x)
		case 0xa1:
			e.Mnemonic = "SKNP"
			e.Operand = fmt.Sprintf("V%X", x)
		default:
			data()
		}
	case 0xf:
		switch kk {
		case 0x07:
			e.Mnemonic = "LD"
			e.Operand = fmt.Sprintf("V%X,DT", x)
		case 0x0a:
			e.Mnemonic = "LD"
			e.Operand = fmt.Sprintf("V%X,K", x)
		case 0x15:
			e.Mnemonic = "LD"
			e.Operand = fmt.Sprintf("DT,V%X", x)
		case 0x18:
			e.Mnemonic = "LD"
			e.Operand = fmt.Sprintf("ST,V%X", x)
		case 0x1e:
			e.Mnemonic = "ADD"
			e.Operand = fmt.Sprintf("I,V%X", x)
		case 0x29:
			e.Mnemonic = "LD"
			e.Operand = fmt.Sprintf("F,V%X", x)
		case 0x33:
			e.Mnemonic = "LD"
			e.Operand = fmt.Sprintf("B,V%X", x)
		case 0x55:
			e.Mnemonic = "LD"
			e.Operand = fmt.Sprintf("[I],V%X", x)
		case 0x65:
			e.Mnemonic = "LD"
			e.Operand = fmt.Sprintf("V%X,[I]", x)
		default:
			data()
		}
	}

	return e
}
