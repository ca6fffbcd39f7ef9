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

package display

import "fmt"

// Coords represents the position of the raster. Frame is the number of frames
// completed since the last reset.
type Coords struct {
	Frame int
	Line  int
	Pixel int
}

func (c Coords) String() string {
	return fmt.Sprintf("Frame: %d  Line: %03d  Pixel: %03d", c.Frame, c.Line, c.Pixel)
}
