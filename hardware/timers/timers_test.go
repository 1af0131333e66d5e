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

package timers_test

import (
	"testing"

	"github.com/retrogopher/gopher8/hardware/timers"
	"github.com/retrogopher/gopher8/test"
)

func TestSaturation(t *testing.T) {
	tmr := timers.NewTimers()

	// ticking timers at zero leaves them at zero
	tmr.Tick()
	test.Equate(t, tmr.Delay, 0)
	test.Equate(t, tmr.Sound, 0)

	tmr.Delay = 2
	tmr.Tick()
	test.Equate(t, tmr.Delay, 1)
	tmr.Tick()
	test.Equate(t, tmr.Delay, 0)
	tmr.Tick()
	test.Equate(t, tmr.Delay, 0)
}

func TestSoundEdge(t *testing.T) {
	tmr := timers.NewTimers()

	tmr.Sound = 3
	test.Equate(t, tmr.Tick(), false)
	test.Equate(t, tmr.Tick(), false)

	// the edge is signalled on the transition through one to zero
	test.Equate(t, tmr.Tick(), true)
	test.Equate(t, tmr.Tick(), false)
}
