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
	"sort"
	"strings"
)

// breakpoints is the list of addresses the RUN command will halt at.
type breakpoints struct {
	breaks map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		breaks: make(map[uint16]bool),
	}
}

// add a breakpoint at the address. adding an address twice is not an error.
func (bk *breakpoints) add(address uint16) {
	bk.breaks[address] = true
}

// drop the breakpoint at the address. returns false if there was no
// breakpoint to drop.
func (bk *breakpoints) drop(address uint16) bool {
	if !bk.breaks[address] {
		return false
	}
	delete(bk.breaks, address)
	return true
}

// clear all breakpoints.
func (bk *breakpoints) clear() {
	bk.breaks = make(map[uint16]bool)
}

// check returns true if there is a breakpoint at the address.
func (bk *breakpoints) check(address uint16) bool {
	return bk.breaks[address]
}

// String returns the list of breakpoints in address order.
func (bk *breakpoints) String() string {
	if len(bk.breaks) == 0 {
		return "no breakpoints"
	}

	addresses := make([]int, 0, len(bk.breaks))
	for a := range bk.breaks {
		addresses = append(addresses, int(a))
	}
	sort.Ints(addresses)

	s := strings.Builder{}
	for i, a := range addresses {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(fmt.Sprintf("%#04x", a))
	}
	return s.String()
}
