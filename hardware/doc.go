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

// Package hardware assembles the emulated components of the CHIP-8 machine
// into a single unit. The sub-packages contain the component parts: cpu,
// memory, video, timers and keypad.
//
// The Step() function performs one machine cycle. The machine imposes no
// timing discipline of its own; the driving loop calls Step() at whatever
// cadence it chooses. There is no concurrency in the machine: everything
// happens synchronously within the one Step() call and control returns to
// the caller after every cycle.
package hardware
