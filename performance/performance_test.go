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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/display"
	"github.com/jetsetilly/gopher8080/performance"
	"github.com/jetsetilly/gopher8080/test"
)

func TestProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	p, err = performance.ParseProfileString("trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileTrace)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.ProfileError))
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(100, 2.0)
	test.ExpectEquality(t, fps, 50.0)
	test.ExpectSuccess(t, accuracy > 99.8 && accuracy < 99.9)

	frames := display.RefreshRate * 10
	fps, accuracy = performance.CalcFPS(int(frames), 10.0)
	test.ExpectSuccess(t, fps >= 50.0 && fps <= display.RefreshRate)
	test.ExpectSuccess(t, accuracy > 99.0 && accuracy <= 100.0)

	fps, accuracy = performance.CalcFPS(100, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestRunProfiler(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, prefix, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(prefix + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(prefix + "_trace.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	// JMP 0x0100 at the load origin
	filename := filepath.Join(t.TempDir(), "loop.rom")
	test.DemandSuccess(t, os.WriteFile(filename, []byte{0xc3, 0x00, 0x01}, 0o644))

	performance.LeadTime = 10 * time.Millisecond

	tw := &test.Writer{}
	err := performance.Check(tw, performance.ProfileNone, filename, "100ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), " fps ("))
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "%\n"))

	err = performance.Check(tw, performance.ProfileNone, filename, "soon")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.PerformanceError))

	err = performance.Check(tw, performance.ProfileNone, filepath.Join(t.TempDir(), "missing.rom"), "100ms")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.PerformanceError))
}
