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

package memory

import (
	"fmt"
)

// Sizes of the memory areas.
const (
	MainLen        = 0x10000
	RAMDiskPageLen = 0x10000
	RAMDiskLen     = RAMDiskPageLen * 4
	RAMDiskCount   = 1
	GlobalLen      = MainLen + RAMDiskLen*RAMDiskCount
)

// AddrSpace indicates how an address should be interpreted.
type AddrSpace int

// List of valid AddrSpace values.
const (
	RAM AddrSpace = iota
	STACK
	GLOBAL
)

func (sp AddrSpace) String() string {
	switch sp {
	case RAM:
		return "RAM"
	case STACK:
		return "STACK"
	case GLOBAL:
		return "GLOBAL"
	}
	return "unknown address space"
}

// Mapping is the state of the RAM disk mapping.
type Mapping struct {
	StackMode bool
	StackPage uint8
	RAMMode   uint8
	RAMPage   uint8
}

func (mp Mapping) String() string {
	stack := "off"
	if mp.StackMode {
		stack = fmt.Sprintf("page %d", mp.StackPage)
	}
	ram := "off"
	if mp.RAMMode != 0 {
		ram = fmt.Sprintf("page %d", mp.RAMPage)
		if mp.RAMMode&0x40 == 0x40 {
			ram = fmt.Sprintf("%s [8000-9fff]", ram)
		}
		if mp.RAMMode&0x20 == 0x20 {
			ram = fmt.Sprintf("%s [a000-dfff]", ram)
		}
		if mp.RAMMode&0x80 == 0x80 {
			ram = fmt.Sprintf("%s [e000-ffff]", ram)
		}
	}
	return fmt.Sprintf("stack: %s, ram: %s", stack, ram)
}

// Memory is the entire memory image of the machine along with the current
// mapping state.
type Memory struct {
	data []uint8

	Mapping Mapping
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		data: make([]uint8, GlobalLen),
	}
	return mem
}

// Reset clears the memory image and the mapping state.
func (mem *Memory) Reset() {
	clear(mem.data)
	mem.Mapping = Mapping{}
}

// Len returns the size of the memory image. The GLOBAL address space wraps
// around at this value.
func (mem *Memory) Len() int {
	return len(mem.data)
}

// Translate an address in the specified address space to an offset into the
// memory image. All addresses are valid.
func (mem *Memory) Translate(addr uint32, space AddrSpace) uint32 {
	if space == GLOBAL {
		return addr % uint32(len(mem.data))
	}

	addr &= 0xffff

	switch space {
	case STACK:
		if mem.Mapping.StackMode {
			return addr + uint32(mem.Mapping.StackPage)*RAMDiskPageLen
		}

	case RAM:
		mode := mem.Mapping.RAMMode
		if addr < 0x8000 || mode == 0 {
			return addr
		}

		page := uint32(mem.Mapping.RAMPage) * RAMDiskPageLen

		if mode&0x20 == 0x20 && addr >= 0xa000 && addr <= 0xdfff {
			return addr + page
		}
		if mode&0x40 == 0x40 && addr >= 0x8000 && addr <= 0x9fff {
			return addr + page
		}
		if mode&0x80 == 0x80 && addr >= 0xe000 {
			return addr + page
		}
	}

	return addr
}

// Read a byte from the address in the specified address space.
func (mem *Memory) Read(addr uint16, space AddrSpace) uint8 {
	return mem.data[mem.Translate(uint32(addr), space)]
}

// Write a byte to the address in the specified address space.
func (mem *Memory) Write(addr uint16, data uint8, space AddrSpace) {
	mem.data[mem.Translate(uint32(addr), space)] = data
}

// ReadWord reads the two bytes at addr and addr+1, little-endian. Both
// addresses are translated separately so a word that straddles a
// window boundary reads from two different pages.
func (mem *Memory) ReadWord(addr uint16, space AddrSpace) uint16 {
	lo := mem.Read(addr, space)
	hi := mem.Read(addr+1, space)
	return uint16(hi)<<8 | uint16(lo)
}

// Peek returns the byte at the global address. It is the same as a Read()
// in the GLOBAL address space but accepts addresses beyond the 16 bit range.
func (mem *Memory) Peek(addr uint32) uint8 {
	return mem.data[mem.Translate(addr, GLOBAL)]
}

// Poke writes a byte at the global address.
func (mem *Memory) Poke(addr uint32, data uint8) {
	mem.data[mem.Translate(addr, GLOBAL)] = data
}

// SetMapping decodes the value written to the memory mapping port.
//
//	bit  7 6 5 4 3 2 1 0
//	     | | | | | | | |
//	     | | | | | | +-+--- stack page
//	     | | | | +-+------- ram page
//	     | | | +----------- stack mode
//	     +-+-+------------- ram mode windows
func (mem *Memory) SetMapping(v uint8) {
	mem.Mapping = Mapping{
		StackMode: v&0x10 == 0x10,
		StackPage: v & 0x03,
		RAMMode:   v & 0xe0,
		RAMPage:   (v & 0x0c) >> 2,
	}
}
