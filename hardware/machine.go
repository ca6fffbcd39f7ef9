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

package hardware

import (
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/display"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
)

// Machine is the root of the emulation.
type Machine struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Raster *display.Raster
	Ports  *ports.Ports

	// access counts for every address in memory. used by the disassembly
	Counters *disassembly.Counters

	// the most recently loaded binary. empty if nothing has been loaded
	Filename string
}

// NewMachine creates a new Machine and everything associated with the
// hardware.
func NewMachine() *Machine {
	m := &Machine{}
	m.Mem = memory.NewMemory()
	m.Counters = disassembly.NewCounters(m.Mem)
	m.Ports = ports.NewPorts(m.Mem)
	m.Raster = display.NewRaster()
	m.CPU = cpu.NewCPU(m.Mem, m.Ports, m.Counters)
	return m
}

// LoadROM loads the binary (given by filename) into the machine. The machine
// is returned to its power-on state before the binary is copied into memory at
// memory.LoadOrigin.
//
// If the file can not be loaded the machine is left untouched.
func (m *Machine) LoadROM(filename string) error {
	data, err := memory.ReadBinary(filename)
	if err != nil {
		logger.Log(logger.Allow, "machine", err)
		return err
	}

	m.Mem.Reset()
	m.Reset()
	m.Mem.Load(data)
	m.Filename = filename

	logger.Logf(logger.Allow, "machine", "loaded %s (%d bytes)", filename, len(data))

	return nil
}

// Reset emulates the reset button. The contents of memory are not changed but
// the memory mapping is returned to its default state.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.Raster.Reset()
	m.Ports.Reset()
	m.Counters.Reset()
	m.Mem.SetMapping(0)
}

// ExecuteInstruction runs the emulation until the current CPU instruction has
// completed. Returns true if the T50HZ signal was raised during the
// instruction.
//
// The raster is ticked before every machine cycle and the state of the T50HZ
// signal is presented to the CPU as the interrupt request.
func (m *Machine) ExecuteInstruction() bool {
	var frame bool
	for {
		t50hz := m.Raster.Tick()
		frame = frame || t50hz
		if m.CPU.Step(t50hz) {
			return frame
		}
	}
}

// ExecuteFrame runs the emulation until the T50HZ signal is raised. The frame
// ends at the end of the instruction during which the signal was raised.
func (m *Machine) ExecuteFrame() {
	for !m.ExecuteInstruction() {
	}
}
