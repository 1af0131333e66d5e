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

// Package curated is the error mechanism used throughout the project. It
// works in much the same way as fmt.Errorf() but errors created this way
// can be compared against the pattern used to create them.
//
// Create errors with the Errorf() function. Wrapping is achieved by passing
// an error as one of the arguments:
//
//	err := doSomething()
//	if err != nil {
//		return curated.Errorf("chip8: %v", err)
//	}
//
// The Is() function compares an error against a pattern. The Has() function
// does the same but checks every error in the wrapped sequence, not just the
// outermost. Sentinel values for significant conditions are defined in the
// packages that originate them.
//
// The Error() function normalises the message, removing duplicate adjacent
// message parts. This keeps deeply wrapped errors readable when presented to
// the user.
package curated
