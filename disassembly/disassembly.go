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

// Package disassembly represents CHIP-8 program files in human readable
// form. The decoder is a linear sweep over the cartridge data. There is
// no attempt to follow the flow of the program so data bytes interleaved
// with instructions will decode to whatever instruction the bit pattern
// suggests, or to a DATA entry when the pattern has no assigned meaning.
package disassembly

import (
	"fmt"
	"io"

	"github.com/retrogopher/gopher8/cartridgeloader"
	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/hardware/memory"
)

// Disassembly is the result of disassembling a cartridge.
type Disassembly struct {
	Entries []Entry
}

// FromCartridge loads the cartridge and disassembles its entire contents.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	err := cartload.Load()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	dsm := &Disassembly{
		Entries: make([]Entry, 0, len(cartload.Data)/2),
	}

	for i := 0; i+1 < len(cartload.Data); i += 2 {
		address := memory.OriginROM + uint16(i)
		opcode := uint16(cartload.Data[i])<<8 | uint16(cartload.Data[i+1])
		dsm.Entries = append(dsm.Entries, Decode(address, opcode))
	}

	return dsm, nil
}

// Write the disassembly to the io.Writer.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		_, err := fmt.Fprintln(output, e.String())
		if err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}
