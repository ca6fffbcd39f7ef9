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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/gopher8080/logger"
)

var launched sync.Once

// Launch the stats server in its own goroutine. Calling Launch() more than
// once has no further effect.
func Launch(output io.Writer) {
	launched.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go mgr.Start()

		logger.Logf(logger.Allow, "statsview", "serving on %s", Address)
	})

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, Page)
}

// Available returns true if the stats server can be launched in this build.
func Available() bool {
	return true
}
