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

// Package wavwriter allows writing of the beeper output to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety, and
// written to disk on program end. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/logger"
)

const (
	sampleRate = 44100
	toneFreq   = 440
)

// WavWriter implements the hardware.AudioMixer interface.
type WavWriter struct {
	filename string

	// number of samples appended per machine cycle. derived from the cycle
	// rate the machine is being run at.
	samplesPerTick int

	// position in the square wave, carried across ticks
	phase int

	buffer []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type. cyclesPerSecond should be the rate the machine is being run at, it
// decides how much wall-clock time one SetAudio() call represents.
func NewWavWriter(filename string, cyclesPerSecond int) (*WavWriter, error) {
	if cyclesPerSecond <= 0 || cyclesPerSecond > sampleRate {
		return nil, curated.Errorf("wavwriter: unusable cycle rate: %d", cyclesPerSecond)
	}

	aw := &WavWriter{
		filename:       filename,
		samplesPerTick: sampleRate / cyclesPerSecond,
		buffer:         make([]int, 0),
	}

	return aw, nil
}

// SetAudio implements the hardware.AudioMixer interface. A tone sample is
// appended while the beeper is on, silence while it is off.
func (aw *WavWriter) SetAudio(on bool) error {
	halfPeriod := sampleRate / (toneFreq * 2)

	for i := 0; i < aw.samplesPerTick; i++ {
		if !on {
			aw.buffer = append(aw.buffer, 0)
			continue
		}

		if (aw.phase/halfPeriod)%2 == 0 {
			aw.buffer = append(aw.buffer, 8192)
		} else {
			aw.buffer = append(aw.buffer, -8192)
		}
		aw.phase++
	}

	if !on {
		aw.phase = 0
	}

	return nil
}

// EndMixing implements the hardware.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "audio written to %s (%d samples)", aw.filename, len(aw.buffer))

	return nil
}
