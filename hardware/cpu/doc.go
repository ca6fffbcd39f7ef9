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

// Package cpu emulates the 8080 microprocessor (and its soviet equivalent,
// the KR580VM80A). Emulation is at the level of the machine cycle. Every
// instruction is made up of between one and six machine cycles, each of which
// is four clock ticks.
//
// The Step() function advances the CPU by one machine cycle and reports
// whether the current instruction has completed. On the first machine cycle
// of an instruction the CPU checks for a pending interrupt and then fetches
// the next opcode.
//
// Memory, I/O ports and the (optional) access notifier are connected to the
// CPU by the NewCPU() function:
//
//	mc := cpu.NewCPU(mem, ports, notifier)
//	for !mc.Step(false) {
//	}
//
// The CPU has no error state. Every opcode is defined, including the
// undocumented opcodes.
package cpu
