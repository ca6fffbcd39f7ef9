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

package disassembly_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/disassembly/symbols"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/test"
)

func poke(mem *memory.Memory, addr uint16, data ...uint8) {
	for i, d := range data {
		mem.Write(addr+uint16(i), d, memory.RAM)
	}
}

func TestDecodeOne(t *testing.T) {
	mem := memory.NewMemory()
	poke(mem, 0x0000,
		0x01, 0x34, 0x12, // LXI B,0x1234
		0x3e, 0x07, // MVI A,0x07
		0x00,             // NOP
		0x08,             // undocumented NOP
		0xcb, 0x00, 0x10, // undocumented JMP
		0xd3, 0x10, // OUT 0x10
	)

	cases := []struct {
		addr uint16
		text string
		len  int
	}{
		{0x0000, "LXI B, 0x1234", 3},
		{0x0003, "MVI A, 0x07", 2},
		{0x0005, "NOP", 1},
		{0x0006, "DB 0x08", 1},
		{0x0007, "JMP 0x1000", 3},
		{0x000a, "OUT 0x10", 2},
	}

	for _, c := range cases {
		s, l := disassembly.DecodeOne(mem, c.addr)
		test.ExpectEquality(t, s, c.text)
		test.ExpectEquality(t, l, c.len, c.text)
	}
}

func TestDecodeLength(t *testing.T) {
	mem := memory.NewMemory()
	for op := 0; op <= 0xff; op++ {
		mem.Write(0x0000, uint8(op), memory.RAM)
		_, l := disassembly.DecodeOne(mem, 0x0000)
		test.ExpectEquality(t, l, instructions.Lookup(uint8(op)).Bytes, op)
	}
}

func TestBackwardScan(t *testing.T) {
	// memory is zero and so every address is a NOP
	mem := memory.NewMemory()
	start, ok := disassembly.BackwardScan(mem, 0x0010, 2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, start, uint16(0x000e))

	start, ok = disassembly.BackwardScan(mem, 0x0010, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, start, uint16(0x0010))

	poke(mem, 0x0100,
		0x01, 0x00, 0x80, // LXI B,0x8000
		0x06, 0x01, // MVI B,0x01
		0x00, // NOP
	)
	start, ok = disassembly.BackwardScan(mem, 0x0106, 3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, start, uint16(0x0100))
}

func TestBackwardScanFailure(t *testing.T) {
	// no instruction boundary lands exactly on 0x0010
	mem := memory.NewMemory()
	poke(mem, 0x000d, 0x06, 0x01, 0x01)

	start, ok := disassembly.BackwardScan(mem, 0x0010, 1)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, start, uint16(0x0010))

	dsm := disassembly.NewDisassembly(mem, nil, nil)
	lines := dsm.Listing(0x0010, 3, 1, 0)
	test.ExpectEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "0x000F\t_DB 0x01\t0,0,0")
	test.ExpectEquality(t, lines[1], "0x0010\t_NOP\t0,0,0")
	test.ExpectEquality(t, lines[2], "0x0011\t_NOP\t0,0,0")
}

func TestListing(t *testing.T) {
	mem := memory.NewMemory()
	poke(mem, 0x0100,
		0x31, 0x00, 0x80, // LXI SP,0x8000
		0xcd, 0x00, 0x02, // CALL 0x0200
		0xe9, // PCHL
	)

	sym := symbols.NewSymbols()
	sym.AddLabel(0x0100, "START")
	sym.AddLabel(0x0200, "SUBROUTINE")
	sym.AddLabel(0x0300, "TABLE")

	dsm := disassembly.NewDisassembly(mem, nil, sym)
	lines := dsm.Listing(0x0103, 3, 1, 0x0300)

	expected := []string{
		"0x0100\t_LXI SP, 0x8000\t0,0,0\tSTART",
		"0x0103\t_CALL 0x0200\t0,0,0\tSUBROUTINE",
		"0x0106\t_PCHL\t0,0,0\tTABLE",
	}
	if test.ExpectEquality(t, len(lines), len(expected)) {
		for i := range expected {
			test.ExpectEquality(t, lines[i], expected[i])
		}
	}

	test.ExpectEquality(t, len(dsm.Listing(0x0100, 0, 0, 0)), 0)

	w := &test.Writer{}
	dsm.Write(w, 0x0100, 1, 0, 0)
	test.ExpectSuccess(t, w.Compare("0x0100\t_LXI SP, 0x8000\t0,0,0\tSTART\n"))
}

func TestCounters(t *testing.T) {
	mem := memory.NewMemory()
	counters := disassembly.NewCounters(mem)

	// stack is mapped to ram disk page 1
	mem.SetMapping(0x11)

	counters.RecordAccess(0x1000, cpu.AccessWrite, memory.STACK)
	counters.RecordAccess(0x1000, cpu.AccessRead, memory.RAM)
	counters.RecordAccess(0x1000, cpu.AccessRun, memory.RAM)

	test.ExpectEquality(t, counters.Get(0x1000, memory.STACK), disassembly.Counts{Writes: 1})
	test.ExpectEquality(t, counters.Get(0x1000, memory.RAM), disassembly.Counts{Runs: 1, Reads: 1})
	test.ExpectEquality(t, counters.Get(0x11000, memory.GLOBAL), disassembly.Counts{Writes: 1})
	test.ExpectEquality(t, counters.Get(0x1000, memory.RAM).String(), "1,1,0")

	counters.Reset()
	test.ExpectEquality(t, counters.Get(0x1000, memory.STACK), disassembly.Counts{})
}

func TestCountsInListing(t *testing.T) {
	mem := memory.NewMemory()
	poke(mem, 0x0000, 0x3e, 0x01, 0x00) // MVI A,0x01; NOP
	counters := disassembly.NewCounters(mem)

	mc := cpu.NewCPU(mem, nil, counters)
	for !mc.Step(false) {
	}
	for !mc.Step(false) {
	}

	dsm := disassembly.NewDisassembly(mem, counters, nil)
	lines := dsm.Listing(0x0000, 2, 0, 0)
	test.ExpectEquality(t, lines[0], "0x0000\t_MVI A, 0x01\t1,0,0")
	test.ExpectEquality(t, lines[1], "0x0002\t_NOP\t1,0,0")

	lines = dsm.Listing(0x0001, 1, 0, 0)
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "\t0,1,0"))
}

func TestFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.rom")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{0xc3, 0x00, 0x01}, 0o644))

	dsm, err := disassembly.FromFile(fn, nil)
	test.DemandSuccess(t, err)
	lines := dsm.Listing(memory.LoadOrigin, 1, 0, 0)
	test.ExpectEquality(t, lines[0], "0x0100\t_JMP 0x0100\t0,0,0")

	_, err = disassembly.FromFile(filepath.Join(t.TempDir(), "missing.rom"), nil)
	test.ExpectSuccess(t, curated.Is(err, memory.LoadError))
}
