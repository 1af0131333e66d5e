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

package video_test

import (
	"testing"

	"github.com/retrogopher/gopher8/hardware/video"
	"github.com/retrogopher/gopher8/test"
)

func TestToggle(t *testing.T) {
	vid := video.NewVideo()

	// toggling an off pixel turns it on. no collision
	test.Equate(t, vid.Toggle(10, 20), false)
	test.Equate(t, vid.Pixel(10, 20), true)

	// toggling an on pixel turns it off. collision
	test.Equate(t, vid.Toggle(10, 20), true)
	test.Equate(t, vid.Pixel(10, 20), false)
}

func TestClear(t *testing.T) {
	vid := video.NewVideo()

	vid.Toggle(0, 0)
	vid.Toggle(video.Width-1, video.Height-1)
	vid.Clear()

	for _, p := range vid.Pixels() {
		if p != 0 {
			t.Fatalf("pixel still on after Clear()")
		}
	}
}

type countingRenderer struct {
	frames int
	last   int
}

func (r *countingRenderer) NewFrame(frame int) error {
	r.frames++
	r.last = frame
	return nil
}

func TestRendererNotification(t *testing.T) {
	vid := video.NewVideo()
	rnd := &countingRenderer{}
	vid.AddPixelRenderer(rnd)

	test.Equate(t, vid.IsDirty(), false)
	vid.Toggle(1, 1)
	test.Equate(t, vid.IsDirty(), true)

	test.ExpectedSuccess(t, vid.NewFrame())
	test.Equate(t, vid.IsDirty(), false)
	test.Equate(t, rnd.frames, 1)
	test.Equate(t, rnd.last, 1)

	// frame count rewinds on reset
	vid.Reset()
	test.Equate(t, vid.Frame(), 0)
}
