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

// Package disassembly translates the contents of memory into 8080 mnemonics.
// Because code and data are not distinguished in memory, the start of any
// instruction before a given address can only be guessed. BackwardScan()
// makes that guess by looking for an address from which decoding forward
// lands exactly on the given address.
//
// The Listing() function produces the text of the disassembly. Each line
// of the listing is made up of tab-separated fields:
//
//	0x0100	_LXI SP, 0x8000	1,2,0	START
//
// The fields are the address, the instruction, the run/read/write counts of
// the address and then any labels. Instructions that refer to an address also
// show the label of that address, if there is one.
//
// Counts are collected by the Counters type, which implements the
// cpu.AccessNotifier interface.
package disassembly
