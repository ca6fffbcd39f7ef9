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

// Package display emulates the timing of the Vector-06c raster. The raster
// has a fixed geometry and is advanced by a fixed number of pixels every
// machine cycle. When the raster returns to the top-left of the frame, the
// T50HZ signal is raised. The signal is connected to the interrupt request
// line of the CPU.
//
// Drawing of pixels is not emulated. The InActiveArea() function reports
// whether the raster is currently in the active display area or the border.
package display
