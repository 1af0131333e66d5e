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
	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/gui"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []interface{}
}

// SetFeature implements the gui.GUI interface. The request is not serviced
// immediately, it is handed over to the featureLoop() goroutine. SetFeature
// blocks until the request has been serviced.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...interface{}) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// featureLoop is run concurrently from NewSdlPlay(). servicing requests on
// a dedicated goroutine means SetFeature() can be called from the same
// goroutine that calls Service()
func (scr *SdlPlay) featureLoop() {
	for req := range scr.featureReq {
		scr.serviceFeatureRequest(req)
	}
}

// feature requests have been handed over to the featureReq channel. we
// service any requests on that channel here.
func (scr *SdlPlay) serviceFeatureRequest(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- curated.Errorf("sdlplay: %v", r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		scr.events = request.args[0].(chan gui.Event)

	case gui.ReqSetVisibility:
		scr.showWindow(request.args[0].(bool))

	case gui.ReqSetScale:
		err = scr.setScaling(request.args[0].(float32))

	case gui.ReqSetFPSCap:
		scr.fpsCap = request.args[0].(bool)

	default:
		err = curated.Errorf(gui.UnsupportedGUIRequest, request.request)
	}

	scr.featureErr <- err
}
