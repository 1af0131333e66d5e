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

package terminal

// Style is used by the Output interface to decorate output for terminals
// that are capable of it.
type Style int

// List of Style values.
const (
	// input that has been echoed back to the user
	StyleEcho Style = iota

	// help text
	StyleHelp

	// terminal output that describes the result of a command
	StyleFeedback

	// disassembly of the current instruction
	StyleCPUStep

	// information from the machine, registers, memory, etc.
	StyleInstrument

	// an error message
	StyleError

	// a log entry
	StyleLog
)
