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

// Package memory implements the memory of the machine. This is a flat image of
// the 64k main memory followed by the RAM disk. The 8080 can only address 16
// bits so the RAM disk is reached by mapping pages of it into windows of the
// main address space.
//
//	 0x00000 +-------------------+
//	         |    main memory    |
//	 0x10000 +-------------------+
//	         |  ram disk page 0  |
//	 0x20000 +-------------------+
//	         |  ram disk page 1  |
//	 0x30000 +-------------------+
//	         |  ram disk page 2  |
//	 0x40000 +-------------------+
//	         |  ram disk page 3  |
//	 0x50000 +-------------------+
//
// Memory accesses are made in one of three address spaces. The RAM space is
// used for all normal data and instruction accesses. The STACK space is used
// by the push/pop family of instructions (and by call/return/restart). The
// GLOBAL space ignores mapping altogether and is used by the debugger.
//
// The mapping for RAM and STACK spaces are independent of one another. For the
// STACK space the entire 64k is either mapped or it is not. For the RAM space
// there are three windows, each enabled by a bit in the RAM mode:
//
//	0x20  0xa000 to 0xdfff
//	0x40  0x8000 to 0x9fff
//	0x80  0xe000 to 0xffff
//
// Addresses below 0x8000 are never remapped in the RAM space.
package memory
