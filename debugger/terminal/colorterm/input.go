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
	"unicode"
	"unicode/utf8"

	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/debugger/terminal"
	"github.com/retrogopher/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/retrogopher/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history. we don't want to lose what we've typed in case the user wants
	// to resume where they left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	//	1. for each iteration in the loop
	//	2. store current cursor position
	//	3. clear the current line
	//	4. output the prompt
	//	5. output the input buffer
	//	6. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	ct.Print("\r%s", ansi.CursorMove(prompt.Length()))

	for {
		ct.Print(ansi.CursorStore)
		ct.Print("%s%s%s%s", ansi.ClearLine, ansi.PenStyles["bold"], prompt.String(), ansi.NormalPen)
		ct.Print(string(input[:n]))
		ct.Print(ansi.CursorRestore)

		var rr readRune
		select {
		case rr = <-ct.reader:
		case sig := <-events.Signal:
			ct.Print("\n")
			return 0, events.SignalHandler(sig)
		}

		if rr.err != nil {
			return n, rr.err
		}

		switch rr.r {
		case easyterm.KeyCtrlC:
			ct.Print("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry.
			// we don't want duplicate entries at the top of the list
			newEntry := false
			if n > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastHistoryEntry) == n {
						newEntry = false
						for i := 0; i < n; i++ {
							if input[i] != lastHistoryEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.Print("\n")
			return n, nil

		case easyterm.KeyEsc:
			rr = <-ct.reader
			if rr.err != nil {
				return n, rr.err
			}

			switch rr.r {
			case easyterm.EscCursor:
				rr = <-ct.reader
				if rr.err != nil {
					return n, rr.err
				}

				switch rr.r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then
						// store the current input in buffInput for possible
						// later editing
						if history == len(ct.commandHistory) {
							copy(buffInput, input[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.Print(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.Print(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(input, buffInput)
							n = buffN
							ct.Print(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.Print(ansi.CursorForwardOne)
						cursor++
					}
				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.Print(ansi.CursorBackwardOne)
						cursor--
					}

				case easyterm.EscDelete:
					if cursor < n {
						copy(input[cursor:], input[cursor+1:])
						n--
						history = len(ct.commandHistory)
					}

					// eat the third character in the sequence
					rr = <-ct.reader
					if rr.err != nil {
						return n, rr.err
					}
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				ct.Print(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if nn, ok := insertAtCursor(input, cursor, n, rr.r); ok {
				n = nn
				ct.Print("%c", rr.r)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}

// insertAtCursor inserts r into the input buffer, returning the new input
// length. input is restricted to printable single byte characters. the
// cursor arithmetic in TermRead assumes one terminal column per buffer
// byte, which does not hold for longer encodings.
func insertAtCursor(input []byte, cursor int, n int, r rune) (int, bool) {
	if r >= utf8.RuneSelf || !unicode.IsPrint(r) {
		return n, false
	}
	copy(input[cursor+1:], input[cursor:n])
	input[cursor] = byte(r)
	return n + 1, true
}
