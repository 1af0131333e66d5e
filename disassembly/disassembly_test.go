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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/retrogopher/gopher8/cartridgeloader"
	"github.com/retrogopher/gopher8/disassembly"
	"github.com/retrogopher/gopher8/test"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode   uint16
		mnemonic string
		operand  string
	}{
		{0x00e0, "CLS", ""},
		{0x00ee, "RET", ""},
		{0x1234, "JP", "0x0234"},
		{0x2345, "CALL", "0x0345"},
		{0x3a55, "SE", "VA,0x55"},
		{0x4a55, "SNE", "VA,0x55"},
		{0x5ab0, "SE", "VA,VB"},
		{0x6a55, "LD", "VA,0x55"},
		{0x7a55, "ADD", "VA,0x55"},
		{0x8ab0, "LD", "VA,VB"},
		{0x8ab1, "OR", "VA,VB"},
		{0x8ab2, "AND", "VA,VB"},
		{0x8ab3, "XOR", "VA,VB"},
		{0x8ab4, "ADD", "VA,VB"},
		{0x8ab5, "SUB", "VA,VB"},
		{0x8ab6, "SHR", "VA,VB"},
		{0x8ab7, "SUBN", "VA,VB"},
		{0x8abe, "SHL", "VA,VB"},
		{0x9ab0, "SNE", "VA,VB"},
		{0xa123, "LD", "I,0x0123"},
		{0xb123, "JP", "V0,0x0123"},
		{0xca55, "RND", "VA,0x55"},
		{0xdab5, "DRW", "VA,VB,0x5"},
		{0xea9e, "SKP", "VA"},
		{0xeaa1, "SKNP", "VA"},
		{0xfa07, "LD", "VA,DT"},
		{0xfa0a, "LD", "VA,K"},
		{0xfa15, "LD", "DT,VA"},
		{0xfa18, "LD", "ST,VA"},
		{0xfa1e, "ADD", "I,VA"},
		{0xfa29, "LD", "F,VA"},
		{0xfa33, "LD", "B,VA"},
		{0xfa55, "LD", "[I],VA"},
		{0xfa65, "LD", "VA,[I]"},
	}

	for _, tst := range tests {
		e := disassembly.Decode(0x200, tst.opcode)
		test.Equate(t, e.Mnemonic, tst.mnemonic)
		test.Equate(t, e.Operand, tst.operand)
	}
}

func TestDecodeData(t *testing.T) {
	for _, opcode := range []uint16{0x0123, 0x5ab1, 0x9ab1, 0x8ab8, 0xea00, 0xfaff} {
		e := disassembly.Decode(0x200, opcode)
		test.Equate(t, e.Mnemonic, "DATA")
	}
}

func TestFromCartridge(t *testing.T) {
	cartload := cartridgeloader.NewLoader("test.ch8")
	cartload.Data = []byte{0x60, 0x05, 0xa2, 0x00, 0x12, 0x00}

	dsm, err := disassembly.FromCartridge(cartload)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(dsm.Entries), 3)

	test.Equate(t, dsm.Entries[0].Address, 0x200)
	test.Equate(t, dsm.Entries[0].Mnemonic, "LD")
	test.Equate(t, dsm.Entries[1].Address, 0x202)
	test.Equate(t, dsm.Entries[1].Mnemonic, "LD")
	test.Equate(t, dsm.Entries[1].Operand, "I,0x0200")
	test.Equate(t, dsm.Entries[2].Address, 0x204)
	test.Equate(t, dsm.Entries[2].Mnemonic, "JP")

	b := &strings.Builder{}
	err = dsm.Write(b)
	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Count(b.String(), "\n"), 3)
}
