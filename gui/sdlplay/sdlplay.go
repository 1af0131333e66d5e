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

// Package sdlplay is an SDL implementation of the gui.GUI interface. It
// presents the framebuffer in a window, mixes the beeper output through the
// host audio device and forwards keyboard input over the event channel.
package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/gui"
	"github.com/retrogopher/gopher8/hardware/video"
	"github.com/retrogopher/gopher8/performance/limiter"
)

// number of bytes per pixel in the texture. RGBA.
const pixelDepth = 4

// rate at which the window is refreshed. the machine runs many more cycles
// per second than this but the framebuffer only needs presenting at a
// display rate.
const framesPerSecond = 60

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	vid *video.Video

	// connects the SDL event loop with the parent process
	events chan gui.Event

	// limit screen updates to a fixed fps
	lmtr   *limiter.Limiter
	fpsCap bool

	// all audio is handled by the sound type
	snd *sound

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer. it is equal to Width * Height * pixelDepth.
	pixels []byte

	// the amount of scaling applied to each pixel
	scale float32

	// feature requests are serviced by the featureLoop() goroutine. the
	// reply on featureErr is what makes SetFeature() synchronous
	featureReq chan featureRequest
	featureErr chan error
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main goroutine.
func NewSdlPlay(vid *video.Video, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		vid:        vid,
		fpsCap:     true,
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}

	var err error

	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// window size is set in the setScaling function
	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is applied to the renderer to show the image. we copy the
	// pixels to it on every NewFrame()
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	err = scr.setScaling(scale)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.snd, err = newSound()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.lmtr = limiter.NewLimiter(framesPerSecond)

	// register ourselves as a video.PixelRenderer
	vid.AddPixelRenderer(scr)

	// service feature requests concurrently. SetFeature() blocks until the
	// request has been serviced so requests made before the Service() loop
	// is running would otherwise never complete
	go scr.featureLoop()

	// note that we've elected not to show the window on startup. the window
	// is instead opened on a ReqSetVisibility request.

	return scr, nil
}

// use scale of -1 to reapply the existing scale value.
func (scr *SdlPlay) setScaling(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	w := int32(float32(video.Width) * scr.scale)
	h := int32(float32(video.Height) * scr.scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	err := scr.renderer.SetScale(scr.scale, scr.scale)
	if err != nil {
		return err
	}

	return nil
}

// NewFrame implements the video.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frame int) error {
	if scr.fpsCap {
		scr.lmtr.Wait()
	}

	src := scr.vid.Pixels()
	for i, p := range src {
		o := i * pixelDepth
		scr.pixels[o] = p
		scr.pixels[o+1] = p
		scr.pixels[o+2] = p
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// SetAudio implements the hardware.AudioMixer interface.
func (scr *SdlPlay) SetAudio(on bool) error {
	return scr.snd.setAudio(on)
}

// EndMixing implements the hardware.AudioMixer interface.
func (scr *SdlPlay) EndMixing() error {
	return scr.snd.endMixing()
}

// IsVisible returns whether the window is currently shown.
func (scr *SdlPlay) IsVisible() bool {
	flgs := scr.window.GetFlags()
	return flgs&sdl.WINDOW_SHOWN == sdl.WINDOW_SHOWN
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) Destroy() {
	// ends the featureLoop() goroutine. SetFeature() must not be called
	// after Destroy()
	close(scr.featureReq)

	scr.snd.destroy()
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
}
