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

// Package cpu emulates the processor of the CHIP-8 machine: sixteen eight
// bit registers, a twelve bit index register, the program counter, a
// sixteen deep call stack and the decode/dispatch engine for the
// instruction set.
//
// Instructions are sixteen bit words, fetched big-endian. Decode is a two
// level dispatch: the top nibble of the word selects one of sixteen
// families; families 0x0, 0x8, 0xe and 0xf are sub-dispatch points keyed on
// the low nibble or low byte. Every possible instruction word resolves to
// exactly one rule. Encodings with no assigned rule are a no-op, so decode
// itself can never fail.
//
// Step() performs one fetch-decode-execute cycle. The only errors it can
// return are stack overflow and stack underflow; the original hardware
// specification leaves both undefined and this implementation fails fast
// with a curated error rather than wrapping or saturating the stack
// pointer.
package cpu
