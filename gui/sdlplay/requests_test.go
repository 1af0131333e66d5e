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
	"testing"

	"github.com/retrogopher/gopher8/gui"
	"github.com/retrogopher/gopher8/test"
)

// requests that don't touch the window can be serviced by a partially
// assembled SdlPlay, which lets us test the request mechanism without an
// SDL context
func newTestSdlPlay() *SdlPlay {
	scr := &SdlPlay{
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}
	go scr.featureLoop()
	return scr
}

// SetFeature() blocks until its request has been serviced, and requests are
// made before the play loop (and so before the first call to Service()).
// they must complete regardless.
func TestSetFeatureBeforeService(t *testing.T) {
	scr := newTestSdlPlay()

	events := make(chan gui.Event, 2)
	test.ExpectedSuccess(t, scr.SetFeature(gui.ReqSetEventChan, events))
	test.ExpectedSuccess(t, scr.events == events)

	test.ExpectedSuccess(t, scr.SetFeature(gui.ReqSetFPSCap, true))
	test.ExpectedSuccess(t, scr.fpsCap)
}

func TestSetFeatureUnsupported(t *testing.T) {
	scr := newTestSdlPlay()

	test.ExpectedFailure(t, scr.SetFeature(gui.FeatureReq("no such request")))
}

// a request with the wrong argument type panics during servicing. the panic
// must be recovered and returned as an error rather than killing the
// servicing goroutine
func TestSetFeatureBadArgument(t *testing.T) {
	scr := newTestSdlPlay()

	test.ExpectedFailure(t, scr.SetFeature(gui.ReqSetFPSCap, "not a bool"))

	// the goroutine must still be servicing requests
	test.ExpectedSuccess(t, scr.SetFeature(gui.ReqSetFPSCap, true))
	test.ExpectedSuccess(t, scr.fpsCap)
}
