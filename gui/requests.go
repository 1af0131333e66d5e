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

package gui

// FeatureReq is used to request the setting of a GUI attribute, for example
// the visibility of the window.
type FeatureReq string

// List of valid feature requests. Argument must be of the type specified or
// else the interface{} type conversion will fail and an error returned.
//
// Like the name suggests these are requests. They may or may not be satisfied
// depending on other conditions in the GUI.
const (
	// set the event channel on which GUI events are sent.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan Event

	// show or hide the window.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// set the amount of scaling applied to each pixel.
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// whether the GUI should limit screen updates to the display rate.
	ReqSetFPSCap FeatureReq = "ReqSetFPSCap" // bool
)

// Sentinal error returned if the GUI does not support a requested feature.
const (
	UnsupportedGUIRequest = "gui: unsupported request: %v"
)
