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

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// MaxInstructionLen is the maximum number of bytes in an instruction.
const MaxInstructionLen = 3

// DecodeOne returns the instruction at the address in the RAM address space,
// and the number of bytes in the instruction.
func DecodeOne(mem Memory, addr uint16) (string, int) {
	defn := instructions.Lookup(mem.Read(addr, memory.RAM))
	return formatInstruction(defn, mem.Read(addr+1, memory.RAM), mem.Read(addr+2, memory.RAM)), defn.Bytes
}

// formatInstruction appends the operand to the mnemonic of the instruction.
func formatInstruction(defn instructions.Definition, lo uint8, hi uint8) string {
	switch defn.Bytes {
	case 2:
		return fmt.Sprintf("%s 0x%02X", defn.Mnemonic, lo)
	case 3:
		return fmt.Sprintf("%s 0x%04X", defn.Mnemonic, uint16(hi)<<8|uint16(lo))
	}
	return defn.Mnemonic
}

// BackwardScan looks for the address that is exactly n instructions before
// the end address. The boolean return value is false if no such address can
// be found, in which case the bytes before end are probably data. The first
// candidate address tried is n*MaxInstructionLen bytes before end and every
// failure moves the candidate one byte closer.
func BackwardScan(mem Memory, end uint16, n int) (uint16, bool) {
	if n <= 0 {
		return end, true
	}

	start := end - uint16(n*MaxInstructionLen)
	window := n*MaxInstructionLen + 1

	for attempt := 0; attempt < n*MaxInstructionLen+1; attempt++ {
		addr := start
		diff := window
		lines := 0

		for diff > 0 && addr != end {
			l := instructions.Lookup(mem.Read(addr, memory.RAM)).Bytes
			addr += uint16(l)
			diff -= l
			lines++
		}

		if addr == end && lines == n {
			return start, true
		}

		start++
		window--
	}

	return end, false
}
