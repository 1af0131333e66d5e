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

// Package keypad implements the sixteen key input device of the CHIP-8
// machine. Keys are identified by their hexadecimal value, 0x0 to 0xf.
//
// The keypad is written to by the input frontend and read by the CPU. The
// frontend must not mutate keypad state concurrently with an in-progress
// machine cycle; the machine does not synchronise access itself.
package keypad

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad records which keys are currently held down.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases every key.
func (pad *Keypad) Reset() {
	for i := range pad.keys {
		pad.keys[i] = false
	}
}

// Press marks the key as held down. The key value is masked to a nibble.
func (pad *Keypad) Press(key uint8) {
	pad.keys[key&0x0f] = true
}

// Release marks the key as released. The key value is masked to a nibble.
func (pad *Keypad) Release(key uint8) {
	pad.keys[key&0x0f] = false
}

// IsPressed returns true if the key is currently held down. The key value
// is masked to a nibble.
func (pad *Keypad) IsPressed(key uint8) bool {
	return pad.keys[key&0x0f]
}

// FirstPressed returns the lowest key value currently held down. The second
// return value is false if no key is down.
func (pad *Keypad) FirstPressed() (uint8, bool) {
	for k := uint8(0); k < NumKeys; k++ {
		if pad.keys[k] {
			return k, true
		}
	}
	return 0, false
}
