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

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the emulation uncapped for a fixed
// duration of time. It will optionally generate profiling information.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/retrogopher/gopher8/cartridgeloader"
	"github.com/retrogopher/gopher8/curated"
	"github.com/retrogopher/gopher8/hardware"
)

// number of machine cycles to wait before checking the timer channel.
// checking the channel is relatively expensive.
const performanceBrake = 1000

// Check the performance of the emulator using the supplied cartridge. The
// machine is run uncapped for the specified duration and the achieved cycle
// rate written to output.
func Check(output io.Writer, cartload cartridgeloader.Loader, duration string, profile bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	machine := hardware.NewChip8()

	err = machine.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	cycles := 0

	runner := func() error {
		timerChan := make(chan bool)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		brake := 0

		return machine.Run(func() (bool, error) {
			cycles++
			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return false, nil
				default:
				}
			}
			return true, nil
		})
	}

	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = memProfile(profile, "mem.profile")
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rate := float64(cycles) / dur.Seconds()
	fmt.Fprintf(output, "%.0f cycles/sec (%d cycles in %.2f seconds)\n", rate, cycles, dur.Seconds())

	return nil
}
