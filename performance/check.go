// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/logger"
)

// Sentinal error patterns.
const (
	PerformanceError = "performance: %v"
	ProfileError     = "profile: %v"
)

// LeadTime is the length of time the emulation runs for before measurement
// begins. This gives the frame rate time to settle.
var LeadTime = 2 * time.Second

// Check the performance of the emulator using the supplied binary.
//
// Emulation will run for the specified duration, after the LeadTime, and will
// create a cpu profile, a memory profile, a trace (or a combination of those)
// as defined by the profile argument.
func Check(output io.Writer, profile Profile, filename string, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}
	if dur <= 0 {
		return curated.Errorf(PerformanceError, "duration must be positive")
	}

	m := hardware.NewMachine()
	if err := m.LoadROM(filename); err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	startFrame := m.Raster.GetCoords().Frame

	runner := func() error {
		// signals false when the lead time has expired and true when the
		// measurement period has expired. buffered so that the timers never
		// block if the run loop exits early
		timerChan := make(chan bool, 2)

		time.AfterFunc(LeadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// checking the timerChan is relatively expensive so it is only done
		// every PerformanceBrake instructions
		performanceBrake := 0

		return m.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, nil
				}
				startFrame = m.Raster.GetCoords().Frame
				logger.Logf(logger.Allow, "performance", "measurement started at frame %d", startFrame)
			default:
			}

			return govern.Running, nil
		})
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	numFrames := m.Raster.GetCoords().Frame - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
