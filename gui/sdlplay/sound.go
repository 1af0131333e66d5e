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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrogopher/gopher8/curated"
)

const (
	sampleRate = 44100
	toneFreq   = 440

	// how many queued bytes is enough. queueing too much ahead of time makes
	// the beeper laggy when the sound timer expires.
	queueTarget = sampleRate / 10
)

// sound is the beeper of the machine. the single tone is generated as a
// square wave and pushed to the SDL audio queue while the beeper is on.
type sound struct {
	id sdl.AudioDeviceID

	// position in the square wave, so that successive pushes join up without
	// a click
	phase int

	buffer []byte
}

// prerequisite: SDL_INIT_AUDIO must be included in the call to sdl.Init().
func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sound: %v", err)
	}

	snd.buffer = make([]byte, queueTarget)

	// unpause the device. with nothing queued it plays silence
	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// setAudio is called for every machine step. while the beeper is on we keep
// the audio queue topped up with the square wave.
func (snd *sound) setAudio(on bool) error {
	if !on {
		snd.phase = 0
		sdl.ClearQueuedAudio(snd.id)
		return nil
	}

	queued := int(sdl.GetQueuedAudioSize(snd.id))
	if queued >= queueTarget {
		return nil
	}

	// fill the queue to the target with the square wave, carrying the phase
	// over from the last push
	halfPeriod := sampleRate / (toneFreq * 2)
	n := queueTarget - queued
	for i := 0; i < n; i++ {
		if (snd.phase/halfPeriod)%2 == 0 {
			snd.buffer[i] = 0xc0
		} else {
			snd.buffer[i] = 0x40
		}
		snd.phase++
	}

	err := sdl.QueueAudio(snd.id, snd.buffer[:n])
	if err != nil {
		return curated.Errorf("sound: %v", err)
	}

	return nil
}

func (snd *sound) endMixing() error {
	sdl.ClearQueuedAudio(snd.id)
	return nil
}

func (snd *sound) destroy() {
	sdl.CloseAudioDevice(snd.id)
}
