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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// Memory defines the memory operations required by the disassembly package.
type Memory interface {
	Read(addr uint16, space memory.AddrSpace) uint8
	Translate(addr uint32, space memory.AddrSpace) uint32
}

// Counts of accesses to a single address.
type Counts struct {
	Runs   uint64
	Reads  uint64
	Writes uint64
}

func (c Counts) String() string {
	return fmt.Sprintf("%d,%d,%d", c.Runs, c.Reads, c.Writes)
}

// Counters records every memory access made by the CPU. Counters are indexed
// by the global address and so accesses to the same logical address through
// different mappings are counted separately.
type Counters struct {
	mem    Memory
	counts []Counts
}

// NewCounters is the preferred method of initialisation for the Counters type.
func NewCounters(mem Memory) *Counters {
	return &Counters{
		mem:    mem,
		counts: make([]Counts, memory.GlobalLen),
	}
}

// Reset all counters to zero.
func (cnt *Counters) Reset() {
	clear(cnt.counts)
}

// RecordAccess implements the cpu.AccessNotifier interface.
func (cnt *Counters) RecordAccess(addr uint16, kind cpu.AccessKind, space memory.AddrSpace) {
	c := &cnt.counts[cnt.index(uint32(addr), space)]
	switch kind {
	case cpu.AccessRun:
		c.Runs++
	case cpu.AccessRead:
		c.Reads++
	case cpu.AccessWrite:
		c.Writes++
	}
}

// Get the counts for an address in the specified address space.
func (cnt *Counters) Get(addr uint32, space memory.AddrSpace) Counts {
	return cnt.counts[cnt.index(addr, space)]
}

func (cnt *Counters) index(addr uint32, space memory.AddrSpace) uint32 {
	return cnt.mem.Translate(addr, space) % uint32(len(cnt.counts))
}
