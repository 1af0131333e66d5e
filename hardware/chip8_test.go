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

package hardware_test

import (
	"testing"

	"github.com/retrogopher/gopher8/hardware"
	"github.com/retrogopher/gopher8/hardware/memory"
	"github.com/retrogopher/gopher8/test"
)

// write a program directly into machine memory and reset the CPU, without
// going through the loader.
func poke(t *testing.T, vm *hardware.Chip8, words ...uint16) {
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

func TestMachineStep(t *testing.T) {
	vm := hardware.NewChip8()
	poke(t, vm, 0x6005, 0x6103, 0x8014)

	for i := 0; i < 3; i++ {
		test.ExpectedSuccess(t, vm.Step())
	}

	test.Equate(t, vm.CPU.V[0], 8)
	test.Equate(t, vm.CPU.V[0xf], 0)
	test.Equate(t, vm.CPU.PC, memory.OriginROM+6)
}

func TestMachineTimerTick(t *testing.T) {
	// every machine cycle decrements the timers by exactly one
	vm := hardware.NewChip8()
	poke(t, vm, 0x6203, 0xf215, 0x1204, 0x1204)

	// the timer is decremented on the same cycle it is set
	test.ExpectedSuccess(t, vm.Step())
	test.ExpectedSuccess(t, vm.Step())
	test.Equate(t, vm.Timers.Delay, 2)

	test.ExpectedSuccess(t, vm.Step())
	test.Equate(t, vm.Timers.Delay, 1)

	test.ExpectedSuccess(t, vm.Step())
	test.ExpectedSuccess(t, vm.Step())
	test.Equate(t, vm.Timers.Delay, 0)

	// and the timer saturates at zero
	test.ExpectedSuccess(t, vm.Step())
	test.Equate(t, vm.Timers.Delay, 0)
}

type recordingMixer struct {
	audible int
	silent  int
	ended   bool
}

func (mix *recordingMixer) SetAudio(on bool) error {
	if on {
		mix.audible++
	} else {
		mix.silent++
	}
	return nil
}

func (mix *recordingMixer) EndMixing() error {
	mix.ended = true
	return nil
}

func TestMachineAudio(t *testing.T) {
	vm := hardware.NewChip8()
	mix := &recordingMixer{}
	vm.AddAudioMixer(mix)

	// set the sound timer to two and then spin
	poke(t, vm, 0x6202, 0xf218, 0x1204, 0x1204)

	test.ExpectedSuccess(t, vm.Step())
	test.ExpectedSuccess(t, vm.Step())

	// sound timer is decremented on the same cycle it is set: one audible
	// cycle remains
	test.ExpectedSuccess(t, vm.Step())
	test.ExpectedSuccess(t, vm.Step())

	test.ExpectedSuccess(t, vm.EndMixing())

	test.Equate(t, mix.audible, 1)
	test.Equate(t, mix.silent, 3)
	test.Equate(t, mix.ended, true)
}

func TestMachineRun(t *testing.T) {
	vm := hardware.NewChip8()
	poke(t, vm, 0x7001, 0x1200)

	// run for one hundred cycles
	cycles := 0
	err := vm.Run(func() (bool, error) {
		cycles++
		return cycles < 100, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, cycles, 100)

	// incremented on every other cycle
	test.Equate(t, vm.CPU.V[0], 50)
}

func TestMachineRunError(t *testing.T) {
	// a stack underflow stops the run with an error
	vm := hardware.NewChip8()
	poke(t, vm, 0x00ee)

	err := vm.Run(func() (bool, error) { return true, nil })
	test.ExpectedFailure(t, err)
}

func TestMachineReset(t *testing.T) {
	vm := hardware.NewChip8()
	poke(t, vm, 0x6005)

	test.ExpectedSuccess(t, vm.Step())
	test.Equate(t, vm.CPU.V[0], 5)

	vm.Reset()
	test.Equate(t, vm.CPU.V[0], 0)
	test.Equate(t, vm.CPU.PC, memory.OriginROM)

	// reset clears loaded program memory
	test.Equate(t, vm.Mem.Read16(memory.OriginROM), 0)
}
