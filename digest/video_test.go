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

package digest_test

import (
	"testing"

	"github.com/retrogopher/gopher8/digest"
	"github.com/retrogopher/gopher8/hardware"
	"github.com/retrogopher/gopher8/test"
)

// a short program that draws the glyph for the value in V0 and loops
func drawProgram(t *testing.T, vm *hardware.Chip8, words ...uint16) {
	t.Helper()

	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = append(data, byte(w>>8), byte(w))
	}
	if err := vm.Mem.WriteROM(data); err != nil {
		t.Fatal(err)
	}
	vm.CPU.Reset()
}

func run(t *testing.T, vm *hardware.Chip8, cycles int) {
	t.Helper()
	for i := 0; i < cycles; i++ {
		if err := vm.Step(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestIdenticalRunsProduceIdenticalDigests(t *testing.T) {
	a := hardware.NewChip8()
	digA := digest.NewVideo(a.Video)
	drawProgram(t, a, 0x6007, 0xf029, 0xd115)
	run(t, a, 3)

	b := hardware.NewChip8()
	digB := digest.NewVideo(b.Video)
	drawProgram(t, b, 0x6007, 0xf029, 0xd115)
	run(t, b, 3)

	test.Equate(t, digA.Hash(), digB.Hash())
}

func TestDifferentOutputDifferentDigest(t *testing.T) {
	a := hardware.NewChip8()
	digA := digest.NewVideo(a.Video)
	drawProgram(t, a, 0x6007, 0xf029, 0xd115)
	run(t, a, 3)

	// same program shape, different glyph
	b := hardware.NewChip8()
	digB := digest.NewVideo(b.Video)
	drawProgram(t, b, 0x6003, 0xf029, 0xd115)
	run(t, b, 3)

	if digA.Hash() == digB.Hash() {
		t.Errorf("digests should differ for different video output")
	}
}

func TestDigestChaining(t *testing.T) {
	// the digest depends on the sequence of frames, not just the final
	// framebuffer. drawing a glyph twice erases it, which is a different
	// history to never drawing at all
	a := hardware.NewChip8()
	digA := digest.NewVideo(a.Video)
	drawProgram(t, a, 0x6007, 0xf029, 0xd115, 0xd115)
	run(t, a, 4)

	b := hardware.NewChip8()
	digB := digest.NewVideo(b.Video)
	drawProgram(t, b, 0x6007, 0xf029, 0x1204, 0x1204)
	run(t, b, 4)

	if digA.Hash() == digB.Hash() {
		t.Errorf("digest should record frame history")
	}
}
