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

// Package timers implements the two countdown timers of the CHIP-8 machine.
//
// The delay timer is a general purpose counter, readable and writable by the
// program. The sound timer drives the buzzer: the tone should sound for as
// long as the timer is non-zero.
//
// Both timers decrement once per machine cycle and saturate at zero. On the
// original hardware they decremented at 60Hz; pacing the cycle rate is the
// concern of the driving loop, not of this package.
package timers

import "fmt"

// Timers holds the delay and sound countdown timers.
type Timers struct {
	Delay uint8
	Sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

func (tmr Timers) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.Delay, tmr.Sound)
}

// Reset zeroes both timers.
func (tmr *Timers) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Tick decrements each non-zero timer by one. Returns true when the sound
// timer transitions through the value one to zero. The transition is the
// trailing edge of the audible tone.
func (tmr *Timers) Tick() bool {
	if tmr.Delay > 0 {
		tmr.Delay--
	}

	if tmr.Sound > 0 {
		tmr.Sound--
		return tmr.Sound == 0
	}

	return false
}
