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

// Package video implements the 64x32 monochrome framebuffer of the CHIP-8
// machine.
//
// Pixels are stored row-major, one byte per pixel, with 0xff meaning on and
// 0x00 meaning off. The full-width representation makes the XOR composition
// used by the draw instruction trivial and lets renderers copy the buffer
// directly into a texture.
//
// Display frontends implement the PixelRenderer interface and register with
// AddPixelRenderer(). Renderers are notified through NewFrame() whenever the
// framebuffer has changed.
package video

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// value of a pixel that is on. an off pixel is 0x00.
const pixelOn = 0xff

// PixelRenderer implementations are notified whenever the framebuffer has
// changed. Implementations will typically keep a reference to the Video type
// and read the pixels with the Pixels() function.
type PixelRenderer interface {
	NewFrame(frame int) error
}

// Video is the framebuffer of the machine.
type Video struct {
	pixels [Width * Height]uint8

	// number of NewFrame() notifications since the last reset
	frame int

	// whether the framebuffer has changed since the last NewFrame()
	dirty bool

	renderers []PixelRenderer
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		renderers: make([]PixelRenderer, 0),
	}
}

// Reset turns every pixel off and rewinds the frame count. Renderers remain
// attached.
func (vid *Video) Reset() {
	vid.Clear()
	vid.frame = 0
}

// Clear turns every pixel off.
func (vid *Video) Clear() {
	for i := range vid.pixels {
		vid.pixels[i] = 0
	}
	vid.dirty = true
}

// Toggle XOR-toggles the pixel at the coordinates, returning true if the
// pixel was on before the toggle. The return value is the collision
// condition of the draw instruction.
//
// Coordinates must already be in range. Wrapping is the concern of the draw
// instruction, which wraps per-pixel rather than per-sprite.
func (vid *Video) Toggle(x, y int) bool {
	i := y*Width + x
	collision := vid.pixels[i] == pixelOn
	vid.pixels[i] ^= pixelOn
	vid.dirty = true
	return collision
}

// Pixel returns true if the pixel at the coordinates is on.
func (vid *Video) Pixel(x, y int) bool {
	return vid.pixels[y*Width+x] == pixelOn
}

// Pixels returns the framebuffer as a row-major slice, one byte per pixel.
// The slice aliases the framebuffer and must not be written to.
func (vid *Video) Pixels() []uint8 {
	return vid.pixels[:]
}

// IsDirty returns true if the framebuffer has changed since the last call
// to NewFrame().
func (vid *Video) IsDirty() bool {
	return vid.dirty
}

// Frame returns the number of NewFrame() notifications since the last
// reset.
func (vid *Video) Frame() int {
	return vid.frame
}

// AddPixelRenderer attaches a display frontend to the framebuffer.
func (vid *Video) AddPixelRenderer(renderer PixelRenderer) {
	vid.renderers = append(vid.renderers, renderer)
}

// NewFrame notifies attached renderers that the framebuffer has changed and
// clears the dirty condition.
func (vid *Video) NewFrame() error {
	vid.frame++
	vid.dirty = false

	for _, r := range vid.renderers {
		if err := r.NewFrame(vid.frame); err != nil {
			return err
		}
	}

	return nil
}
