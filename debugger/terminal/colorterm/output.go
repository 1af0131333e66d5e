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

package colorterm

import (
	"github.com/retrogopher/gopher8/debugger/terminal"
	"github.com/retrogopher/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleEcho {
		return
	}

	ct.Print("\r")

	switch style {
	case terminal.StyleHelp:
		ct.Print(ansi.DimPens["white"])
		ct.Print("  ")
	case terminal.StyleFeedback:
		ct.Print(ansi.DimPens["white"])
	case terminal.StyleCPUStep:
		ct.Print(ansi.Pens["yellow"])
	case terminal.StyleInstrument:
		ct.Print(ansi.Pens["cyan"])
	case terminal.StyleError:
		ct.Print(ansi.Pens["red"])
		ct.Print("* ")
	case terminal.StyleLog:
		ct.Print(ansi.DimPens["magenta"])
	}

	ct.Print(s)
	ct.Print(ansi.NormalPen)
	ct.Print("\n")
}
