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

package ports_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/test"
)

func TestIn(t *testing.T) {
	p := ports.NewPorts(nil)
	for i := 0; i <= 0xff; i++ {
		test.ExpectEquality(t, p.In(uint8(i)), uint8(0))
	}
}

func TestOut(t *testing.T) {
	p := ports.NewPorts(nil)
	p.Out(0x03, 0x55)
	test.ExpectEquality(t, p.LastPort, uint8(0x03))
	test.ExpectEquality(t, p.LastData, uint8(0x55))

	p.Reset()
	test.ExpectEquality(t, p.LastPort, uint8(0x00))
	test.ExpectEquality(t, p.LastData, uint8(0x00))
}

func TestMappingPort(t *testing.T) {
	logger.Clear()

	mem := memory.NewMemory()
	p := ports.NewPorts(mem)

	p.Out(ports.MappingPort, 0x24)
	test.ExpectEquality(t, mem.Mapping.RAMMode, uint8(0x20))
	test.ExpectEquality(t, mem.Mapping.RAMPage, uint8(1))
	test.ExpectEquality(t, mem.Mapping.StackMode, false)
	test.ExpectEquality(t, mem.Translate(0xb000, memory.RAM), uint32(0xb000+memory.RAMDiskPageLen))

	p.Out(ports.MappingPort, 0x13)
	test.ExpectEquality(t, mem.Mapping.StackMode, true)
	test.ExpectEquality(t, mem.Mapping.StackPage, uint8(3))
	test.ExpectEquality(t, mem.Mapping.RAMMode, uint8(0x00))

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectEquality(t, strings.Count(w.String(), "ram disk mapping changed"), 2)
}

func TestUnhandledPortLogging(t *testing.T) {
	logger.Clear()

	p := ports.NewPorts(nil)
	for i := 0; i < 100; i++ {
		p.Out(0x0c, uint8(i))
		p.Out(0x02, uint8(i))
	}

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectEquality(t, strings.Count(w.String(), "unhandled write to port"), 2)
	test.ExpectEquality(t, strings.Count(w.String(), "port 0c (00)"), 1)

	p.Reset()
	p.Out(0x0c, 0xff)

	w.Clear()
	logger.Write(w)
	test.ExpectEquality(t, strings.Count(w.String(), "unhandled write to port"), 3)
}
