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

// Package digest fingerprints the video output of the machine. Two runs of
// the same program with the same input produce the same digest, making the
// digest a cheap way of comparing emulation output without storing every
// frame. Used by regression style tests.
//
// SHA1 is used to create the digest. It is not being used for any
// cryptographic purpose.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/retrogopher/gopher8/hardware/video"
)

// Video is a video.PixelRenderer that folds every new frame into a rolling
// SHA1 digest.
type Video struct {
	vid    *video.Video
	digest [sha1.Size]byte

	// working buffer: the previous digest followed by the frame's pixels.
	// chaining the digests means the final value depends on every frame,
	// not just the last one
	buffer []byte
}

// NewVideo is the preferred method of initialisation for the digest Video
// type.
func NewVideo(vid *video.Video) *Video {
	dig := &Video{
		vid:    vid,
		buffer: make([]byte, sha1.Size+video.Width*video.Height),
	}
	vid.AddPixelRenderer(dig)
	return dig
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// NewFrame implements the video.PixelRenderer interface.
func (dig *Video) NewFrame(frame int) error {
	copy(dig.buffer, dig.digest[:])
	copy(dig.buffer[sha1.Size:], dig.vid.Pixels())
	dig.digest = sha1.Sum(dig.buffer)
	return nil
}
