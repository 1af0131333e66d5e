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

package hardware

import (
	"github.com/retrogopher/gopher8/cartridgeloader"
	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/hardware/cpu"
	"github.com/retrogopher/gopher8/hardware/keypad"
	"github.com/retrogopher/gopher8/hardware/memory"
	"github.com/retrogopher/gopher8/hardware/timers"
	"github.com/retrogopher/gopher8/hardware/video"
	"github.com/retrogopher/gopher8/logger"
)

// AudioMixer implementations are told the state of the buzzer once per
// machine cycle. The tone is audible for as long as the sound timer is
// non-zero.
type AudioMixer interface {
	SetAudio(on bool) error

	// EndMixing is called when the machine will produce no more audio.
	EndMixing() error
}

// Chip8 is the main container for the emulated components of the machine.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Video  *video.Video
	Timers *timers.Timers
	Keypad *keypad.Keypad

	mixers []AudioMixer
}

// NewChip8 creates a new machine and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions and
// regular play.
func NewChip8() *Chip8 {
	vm := &Chip8{
		Mem:    memory.NewMemory(),
		Video:  video.NewVideo(),
		Timers: timers.NewTimers(),
		Keypad: keypad.NewKeypad(),
	}
	vm.CPU = cpu.NewCPU(vm.Mem, vm.Video, vm.Keypad, vm.Timers)
	return vm
}

// AttachCartridge loads a program image into the machine's memory and
// resets the machine. The image occupies memory from the ROM origin; the
// reset leaves the program counter pointing at its first instruction.
func (vm *Chip8) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return curated.Errorf("chip8: %v", err)
	}

	vm.Reset()

	err = vm.Mem.WriteROM(cartload.Data)
	if err != nil {
		return curated.Errorf("chip8: %v", err)
	}

	logger.Logf("chip8", "%s attached (%d bytes, sha1 %s)", cartload.ShortName(), len(cartload.Data), cartload.Hash)

	return nil
}

// Reset the machine to its initial state. Any loaded program is lost.
func (vm *Chip8) Reset() {
	vm.Mem.Reset()
	vm.Video.Reset()
	vm.Timers.Reset()
	vm.Keypad.Reset()
	vm.CPU.Reset()
}

// AddAudioMixer attaches an audio frontend to the machine.
func (vm *Chip8) AddAudioMixer(mixer AudioMixer) {
	vm.mixers = append(vm.mixers, mixer)
}

// EndMixing tells attached audio frontends that the machine will produce
// no more audio. Call when the emulation is finished with.
func (vm *Chip8) EndMixing() error {
	for _, m := range vm.mixers {
		if err := m.EndMixing(); err != nil {
			return curated.Errorf("chip8: %v", err)
		}
	}
	return nil
}

// Step the machine one cycle: one fetch-decode-execute sequence followed by
// one timer decrement tick. Attached renderers are notified if the cycle
// changed the framebuffer; attached audio mixers are told the buzzer state.
func (vm *Chip8) Step() error {
	if err := vm.CPU.Step(); err != nil {
		return curated.Errorf("chip8: %v", err)
	}

	vm.Timers.Tick()

	for _, m := range vm.mixers {
		if err := m.SetAudio(vm.Timers.Sound > 0); err != nil {
			return curated.Errorf("chip8: %v", err)
		}
	}

	if vm.Video.IsDirty() {
		if err := vm.Video.NewFrame(); err != nil {
			return curated.Errorf("chip8: %v", err)
		}
	}

	return nil
}

// Run sets the emulation running as quickly as possible. continueCheck()
// should return false when an external event (eg. a GUI event) indicates
// that the emulation should stop. The check runs after every cycle; pacing
// the cycle rate is the caller's concern.
func (vm *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	var err error

	for cont {
		if err = vm.Step(); err != nil {
			return err
		}
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
