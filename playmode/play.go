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

// Package playmode sets the emulation running without any debugging
// features. It connects the machine to the SDL user interface and paces the
// emulation at a fixed cycle rate.
package playmode

import (
	"os"
	"os/signal"

	"github.com/retrogopher/gopher8/cartridgeloader"
	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/gui"
	"github.com/retrogopher/gopher8/gui/sdlplay"
	"github.com/retrogopher/gopher8/hardware"
	"github.com/retrogopher/gopher8/performance/limiter"
	"github.com/retrogopher/gopher8/wavwriter"
)

// sentinal error returned when the GUI detects a quit event.
const quitEvent = "playmode: user quit event"

// Play sets the emulation running.
//
// MUST ONLY be called from the main goroutine.
func Play(cartload cartridgeloader.Loader, scale float32, cyclesPerSecond int, uncapped bool, wavFile string) error {
	machine := hardware.NewChip8()

	scr, err := sdlplay.NewSdlPlay(machine.Video, scale)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer scr.Destroy()

	machine.AddAudioMixer(scr)

	// write audio to file at the same time as mixing it live
	if wavFile != "" {
		ww, err := wavwriter.NewWavWriter(wavFile, cyclesPerSecond)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		machine.AddAudioMixer(ww)
	}
	defer machine.EndMixing()

	err = machine.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// connect gui
	events := make(chan gui.Event, 2)
	err = scr.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// redirect interrupt signal to an os.Signal channel so that ctrl-c runs
	// the deferred functions above
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	lmtr := limiter.NewLimiter(cyclesPerSecond)

	// run and handle gui events
	err = machine.Run(func() (bool, error) {
		scr.Service()

		select {
		case <-intChan:
			return false, nil
		case ev := <-events:
			switch ev := ev.(type) {
			case gui.EventWindowClose:
				return false, nil
			case gui.EventKeyboard:
				err := keyboardEventHandler(ev, machine, cartload)
				return err == nil, err
			}
		default:
		}

		if !uncapped {
			lmtr.Wait()
		}

		return true, nil
	})

	if err != nil {
		if curated.Is(err, quitEvent) {
			return nil
		}
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
