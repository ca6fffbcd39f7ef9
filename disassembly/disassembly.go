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
	"io"
	"strings"

	"github.com/jetsetilly/gopher8080/disassembly/symbols"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

const opcodePCHL = 0xe9

// Disassembly of the machine's memory.
type Disassembly struct {
	mem      Memory
	counters *Counters

	// labels used to annotate the listing. never nil
	Symbols *symbols.Symbols
}

// NewDisassembly is the preferred method of initialisation for the Disassembly
// type. The counters and sym arguments can be nil.
func NewDisassembly(mem Memory, counters *Counters, sym *symbols.Symbols) *Disassembly {
	if sym == nil {
		sym = symbols.NewSymbols()
	}
	return &Disassembly{
		mem:      mem,
		counters: counters,
		Symbols:  sym,
	}
}

// Listing returns lines of disassembly around addr. The before argument is the
// number of lines, out of the total, that should come before addr. The hl
// argument is the current value of the HL register and is used to find the
// label for the PCHL instruction.
//
// If BackwardScan() fails for the number of lines before addr then those lines
// are listed as data bytes.
func (dsm *Disassembly) Listing(addr uint16, lines int, before int, hl uint16) []string {
	if lines <= 0 {
		return []string{}
	}
	if before > lines {
		before = lines
	}

	output := make([]string, 0, lines)
	remaining := lines

	if before > 0 {
		if start, ok := BackwardScan(dsm.mem, addr, before); ok {
			addr = start
		} else {
			addr -= uint16(before)
			for i := 0; i < before; i++ {
				output = append(output, dsm.dataLine(addr))
				addr++
			}
			remaining -= before
		}
	}

	for i := 0; i < remaining; i++ {
		s, l := dsm.instructionLine(addr, hl)
		output = append(output, s)
		addr += uint16(l)
	}

	return output
}

// Write the listing to io.Writer. Each line is terminated with a newline.
func (dsm *Disassembly) Write(output io.Writer, addr uint16, lines int, before int, hl uint16) {
	for _, s := range dsm.Listing(addr, lines, before, hl) {
		io.WriteString(output, s)
		io.WriteString(output, "\n")
	}
}

func (dsm *Disassembly) counts(addr uint16) string {
	if dsm.counters == nil {
		return Counts{}.String()
	}
	return dsm.counters.Get(uint32(addr), memory.RAM).String()
}

func (dsm *Disassembly) dataLine(addr uint16) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%04X\t_DB 0x%02X\t%s", addr, dsm.mem.Read(addr, memory.RAM), dsm.counts(addr)))
	if l, ok := dsm.Symbols.GetLabel(addr); ok {
		s.WriteString("\t")
		s.WriteString(l)
	}
	return s.String()
}

func (dsm *Disassembly) instructionLine(addr uint16, hl uint16) (string, int) {
	opcode := dsm.mem.Read(addr, memory.RAM)
	lo := dsm.mem.Read(addr+1, memory.RAM)
	hi := dsm.mem.Read(addr+2, memory.RAM)
	defn := instructions.Lookup(opcode)

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%04X\t_%s\t%s", addr, formatInstruction(defn, lo, hi), dsm.counts(addr)))

	if l, ok := dsm.Symbols.GetLabel(addr); ok {
		s.WriteString("\t")
		s.WriteString(l)
	}

	if defn.Bytes == 3 || opcode == opcodePCHL {
		target := uint16(hi)<<8 | uint16(lo)
		if opcode == opcodePCHL {
			target = hl
		}
		if l, ok := dsm.Symbols.GetLabel(target); ok {
			s.WriteString("\t")
			s.WriteString(l)
		}
	}

	return s.String(), defn.Bytes
}
