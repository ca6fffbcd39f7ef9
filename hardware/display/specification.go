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

// Geometry of the frame. All values are in pixels or scanlines.
const (
	FrameWidth  = 768
	FrameHeight = 312

	VSync      = 22
	VBlankTop  = 18
	BorderTop  = VSync + VBlankTop
	BorderLeft = 128

	ActiveWidth  = 512
	ActiveHeight = 256
)

// PixelsPerTick is the number of pixels rasterized every machine cycle.
const PixelsPerTick = 16

// TicksPerLine is the number of machine cycles in a scanline.
const TicksPerLine = FrameWidth / PixelsPerTick

// TicksPerFrame is the number of machine cycles in a frame.
const TicksPerFrame = TicksPerLine * FrameHeight

// ClockRate is the frequency of the CPU clock in Hz.
const ClockRate = 3000000

// ClocksPerTick is the number of clock ticks in a machine cycle.
const ClocksPerTick = 4

// RefreshRate is the frequency of the T50HZ signal. 50.08Hz.
const RefreshRate = float64(ClockRate) / float64(TicksPerFrame*ClocksPerTick)
