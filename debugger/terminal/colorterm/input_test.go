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
	"testing"

	"github.com/retrogopher/gopher8/test"
)

func TestInsertAtCursor(t *testing.T) {
	input := make([]byte, 16)

	n, ok := insertAtCursor(input, 0, 0, 'S')
	test.ExpectedSuccess(t, ok)
	test.Equate(t, n, 1)

	n, ok = insertAtCursor(input, 1, n, 'P')
	test.ExpectedSuccess(t, ok)

	// insertion in the middle of the line shuffles the tail along
	n, ok = insertAtCursor(input, 1, n, 'T')
	test.ExpectedSuccess(t, ok)
	test.Equate(t, n, 3)
	test.Equate(t, string(input[:n]), "STP")
}

// characters that would occupy more than one byte in the input buffer are
// rejected. accepting them would desynchronise the cursor column from the
// buffer index
func TestInsertAtCursorMultibyte(t *testing.T) {
	input := make([]byte, 16)

	n, ok := insertAtCursor(input, 0, 0, 'A')
	test.ExpectedSuccess(t, ok)

	n, ok = insertAtCursor(input, 1, n, 'é')
	test.ExpectedFailure(t, ok)
	test.Equate(t, n, 1)
	test.Equate(t, string(input[:n]), "A")

	// control characters are not inserted either
	n, ok = insertAtCursor(input, 1, n, '\a')
	test.ExpectedFailure(t, ok)
	test.Equate(t, n, 1)
}
