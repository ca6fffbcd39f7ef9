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

// Raster is the timing portion of the display.
type Raster struct {
	coords Coords

	// true for the tick that returned the raster to the top-left of the
	// frame
	t50hz bool
}

// NewRaster is the preferred method of initialisation for the Raster type.
func NewRaster() *Raster {
	return &Raster{}
}

// Reset the raster to the top-left of the frame. The frame counter is also
// reset.
func (r *Raster) Reset() {
	r.coords = Coords{}
	r.t50hz = false
}

// Tick advances the raster by one machine cycle. Returns the state of the
// T50HZ signal after the advance.
func (r *Raster) Tick() bool {
	r.coords.Pixel = (r.coords.Pixel + PixelsPerTick) % FrameWidth
	if r.coords.Pixel == 0 {
		r.coords.Line = (r.coords.Line + 1) % FrameHeight
	}

	r.t50hz = r.coords.Pixel+r.coords.Line == 0
	if r.t50hz {
		r.coords.Frame++
	}

	return r.t50hz
}

// T50HZ returns the state of the signal as of the most recent Tick().
func (r *Raster) T50HZ() bool {
	return r.t50hz
}

// GetCoords returns the current position of the raster.
func (r *Raster) GetCoords() Coords {
	return r.coords
}

// InActiveArea returns true if the raster is in the active display area. Outside
// of the active area the border colour is drawn.
func (r *Raster) InActiveArea() bool {
	return r.coords.Line >= BorderTop && r.coords.Line < BorderTop+ActiveHeight &&
		r.coords.Pixel >= BorderLeft && r.coords.Pixel < BorderLeft+ActiveWidth
}
