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

package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/test"
)

func TestUnmappedTranslation(t *testing.T) {
	mem := memory.NewMemory()

	for _, a := range []uint32{0x0000, 0x0100, 0x7fff, 0x8000, 0xa000, 0xe000, 0xffff} {
		test.ExpectEquality(t, mem.Translate(a, memory.RAM), a)
		test.ExpectEquality(t, mem.Translate(a, memory.STACK), a)
		test.ExpectEquality(t, mem.Translate(a, memory.GLOBAL), a)
	}

	// RAM and STACK spaces are masked to 16 bits
	test.ExpectEquality(t, mem.Translate(0x12345, memory.RAM), uint32(0x2345))
	test.ExpectEquality(t, mem.Translate(0x12345, memory.STACK), uint32(0x2345))

	// GLOBAL space wraps around the size of the memory image
	test.ExpectEquality(t, mem.Translate(0x12345, memory.GLOBAL), uint32(0x12345))
	test.ExpectEquality(t, mem.Translate(memory.GlobalLen+5, memory.GLOBAL), uint32(5))
}

func TestGlobalIdentity(t *testing.T) {
	mem := memory.NewMemory()

	// window 0xa000-0xdfff is mapped. addresses outside it are unaffected
	mem.Mapping.RAMMode = 0x20
	mem.Mapping.RAMPage = 2

	for _, a := range []uint32{0x0000, 0x7fff, 0x8000, 0x9fff, 0xe000, 0xffff} {
		test.ExpectEquality(t, mem.Translate(mem.Translate(a, memory.RAM), memory.GLOBAL), mem.Translate(a, memory.RAM))
		test.ExpectEquality(t, mem.Translate(a, memory.RAM), a)
	}
}

func TestRAMWindows(t *testing.T) {
	mem := memory.NewMemory()

	mem.Mapping.RAMMode = 0x20
	mem.Mapping.RAMPage = 1
	test.ExpectEquality(t, mem.Translate(0xb000, memory.RAM), uint32(0xb000+memory.RAMDiskPageLen))
	test.ExpectEquality(t, mem.Translate(0xa000, memory.RAM), uint32(0xa000+memory.RAMDiskPageLen))
	test.ExpectEquality(t, mem.Translate(0xdfff, memory.RAM), uint32(0xdfff+memory.RAMDiskPageLen))
	test.ExpectEquality(t, mem.Translate(0x9fff, memory.RAM), uint32(0x9fff))
	test.ExpectEquality(t, mem.Translate(0xe000, memory.RAM), uint32(0xe000))

	mem.Mapping.RAMMode = 0x40
	test.ExpectEquality(t, mem.Translate(0x8000, memory.RAM), uint32(0x8000+memory.RAMDiskPageLen))
	test.ExpectEquality(t, mem.Translate(0xb000, memory.RAM), uint32(0xb000))

	mem.Mapping.RAMMode = 0x80
	mem.Mapping.RAMPage = 3
	test.ExpectEquality(t, mem.Translate(0xffff, memory.RAM), uint32(0xffff+3*memory.RAMDiskPageLen))
	test.ExpectEquality(t, mem.Translate(0x8000, memory.RAM), uint32(0x8000))

	// addresses below 0x8000 are never mapped
	mem.Mapping.RAMMode = 0xe0
	test.ExpectEquality(t, mem.Translate(0x7fff, memory.RAM), uint32(0x7fff))

	// RAM mapping is independent of the STACK space
	test.ExpectEquality(t, mem.Translate(0xb000, memory.STACK), uint32(0xb000))
}

func TestStackMapping(t *testing.T) {
	mem := memory.NewMemory()

	mem.Mapping.StackMode = true
	mem.Mapping.StackPage = 2
	test.ExpectEquality(t, mem.Translate(0x0010, memory.STACK), uint32(0x0010+2*memory.RAMDiskPageLen))
	test.ExpectEquality(t, mem.Translate(0xfffe, memory.STACK), uint32(0xfffe+2*memory.RAMDiskPageLen))

	// STACK mapping is independent of the RAM space
	test.ExpectEquality(t, mem.Translate(0xfffe, memory.RAM), uint32(0xfffe))

	mem.Write(0xfffe, 0x42, memory.STACK)
	test.ExpectEquality(t, mem.Read(0xfffe, memory.STACK), uint8(0x42))
	test.ExpectEquality(t, mem.Read(0xfffe, memory.RAM), uint8(0x00))
	test.ExpectEquality(t, mem.Peek(0xfffe+2*memory.RAMDiskPageLen), uint8(0x42))
}

func TestSetMapping(t *testing.T) {
	mem := memory.NewMemory()

	mem.SetMapping(0x10 | 0x02 | 0x04 | 0x20)
	test.ExpectEquality(t, mem.Mapping.StackMode, true)
	test.ExpectEquality(t, mem.Mapping.StackPage, uint8(2))
	test.ExpectEquality(t, mem.Mapping.RAMMode, uint8(0x20))
	test.ExpectEquality(t, mem.Mapping.RAMPage, uint8(1))

	mem.SetMapping(0x00)
	test.ExpectEquality(t, mem.Mapping, memory.Mapping{})
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	data := []uint8{0x31, 0x00, 0x01, 0x3e, 0x42, 0x76}
	mem.Load(data)

	for i, v := range data {
		test.ExpectEquality(t, mem.Read(uint16(memory.LoadOrigin+i), memory.RAM), v)
	}

	mem.Reset()
	for i := range data {
		test.ExpectEquality(t, mem.Read(uint16(memory.LoadOrigin+i), memory.RAM), uint8(0))
	}
}

func TestReadBinary(t *testing.T) {
	dir := t.TempDir()

	_, err := memory.ReadBinary(filepath.Join(dir, "missing.rom"))
	test.ExpectSuccess(t, curated.Is(err, memory.LoadError))

	empty := filepath.Join(dir, "empty.rom")
	test.DemandSuccess(t, os.WriteFile(empty, []byte{}, 0o644))
	_, err = memory.ReadBinary(empty)
	test.ExpectSuccess(t, curated.Is(err, memory.LoadEmpty))

	large := filepath.Join(dir, "large.rom")
	test.DemandSuccess(t, os.WriteFile(large, make([]byte, memory.MainLen+1), 0o644))
	_, err = memory.ReadBinary(large)
	test.ExpectSuccess(t, curated.Is(err, memory.LoadTooLarge))

	// fits in main memory but not from the load origin
	overrun := filepath.Join(dir, "overrun.rom")
	test.DemandSuccess(t, os.WriteFile(overrun, make([]byte, memory.MainLen-memory.LoadOrigin+1), 0o644))
	_, err = memory.ReadBinary(overrun)
	test.ExpectSuccess(t, curated.Is(err, memory.LoadTooLarge))

	largest := filepath.Join(dir, "largest.rom")
	test.DemandSuccess(t, os.WriteFile(largest, make([]byte, memory.MainLen-memory.LoadOrigin), 0o644))
	data, err := memory.ReadBinary(largest)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(data), memory.MainLen-memory.LoadOrigin)

	good := filepath.Join(dir, "good.rom")
	test.DemandSuccess(t, os.WriteFile(good, []byte{0x00, 0x76}, 0o644))
	data, err = memory.ReadBinary(good)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(data), 2)
}
