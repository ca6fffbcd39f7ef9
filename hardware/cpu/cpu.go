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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// MachineCycleTicks is the number of clock ticks in every machine cycle.
const MachineCycleTicks = 4

// opcodes handled specially by the instruction fetch.
const (
	opcodeHLT  = 0x76
	opcodeRST7 = 0xff
)

// CPU implements the 8080 microprocessor.
type CPU struct {
	PC registers.Register16
	SP registers.Register16

	A registers.Register
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	Status registers.StatusRegister

	// the opcode of the current instruction
	IR uint8

	// the machine cycle of the current instruction. zero means the next
	// call to Step() will begin a new instruction
	MachineCycle int

	// number of clock ticks since reset
	Cycles uint64

	// interrupt enable, interrupt flip-flop and the halt acknowledge
	INTE bool
	IFF  bool
	HLTA bool

	// EI delays the acceptance of interrupts until the next instruction has
	// been fetched
	eiPending bool

	// internal registers used by the micro-operations
	tmp uint8
	act uint8
	w   uint8
	z   uint8

	mem      Memory
	ports    Ports
	notifier AccessNotifier

	defs *[256]instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// notifier argument can be nil.
func NewCPU(mem Memory, ports Ports, notifier AccessNotifier) *CPU {
	mc := &CPU{
		mem:      mem,
		ports:    ports,
		notifier: notifier,
		defs:     instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

// Reset the CPU to its power-on state. Memory is not touched.
func (mc *CPU) Reset() {
	mc.PC = registers.NewRegister16(0, "PC")
	mc.SP = registers.NewRegister16(0, "SP")
	mc.A = registers.NewRegister(0, "A")
	mc.B = registers.NewRegister(0, "B")
	mc.C = registers.NewRegister(0, "C")
	mc.D = registers.NewRegister(0, "D")
	mc.E = registers.NewRegister(0, "E")
	mc.H = registers.NewRegister(0, "H")
	mc.L = registers.NewRegister(0, "L")
	mc.Status = registers.NewStatusRegister()
	mc.IR = 0
	mc.MachineCycle = 0
	mc.Cycles = 0
	mc.INTE = false
	mc.IFF = false
	mc.HLTA = false
	mc.eiPending = false
	mc.tmp = 0
	mc.act = 0
	mc.w = 0
	mc.z = 0
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s %s=%s ", mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP))
	s.WriteString(fmt.Sprintf("%s=%s ", mc.A.Label(), mc.A))
	s.WriteString(fmt.Sprintf("BC=%04x DE=%04x HL=%04x ", mc.BC(), mc.DE(), mc.HL()))
	s.WriteString(fmt.Sprintf("%s=%s", mc.Status.Label(), mc.Status))
	if mc.INTE {
		s.WriteString(" EI")
	}
	if mc.HLTA {
		s.WriteString(" HLT")
	}
	return s.String()
}

// BC returns the value of the BC register pair.
func (mc *CPU) BC() uint16 {
	return registers.Pair(mc.B, mc.C)
}

// DE returns the value of the DE register pair.
func (mc *CPU) DE() uint16 {
	return registers.Pair(mc.D, mc.E)
}

// HL returns the value of the HL register pair.
func (mc *CPU) HL() uint16 {
	return registers.Pair(mc.H, mc.L)
}

// Definition returns the instruction definition for the opcode in the IR
// register.
func (mc *CPU) Definition() instructions.Definition {
	return mc.defs[mc.IR]
}

// Step the CPU forward by one machine cycle. The irq argument is the state of
// the interrupt request line for the duration of the machine cycle. Returns
// true if the instruction has completed.
func (mc *CPU) Step(irq bool) bool {
	mc.IFF = mc.IFF || (irq && mc.INTE)

	if mc.MachineCycle == 0 {
		if mc.IFF && !mc.eiPending {
			// an accepted interrupt replaces the fetch with an RST 7
			mc.INTE = false
			mc.IFF = false
			mc.HLTA = false
			mc.IR = opcodeRST7
		} else {
			// a halted CPU fetches the HLT instruction again
			if mc.IR == opcodeHLT {
				mc.PC.Decrement()
			}
			mc.eiPending = false
			mc.notify(mc.PC.Address(), AccessRun, memory.RAM)
			mc.IR = mc.mem.Read(mc.PC.Address(), memory.RAM)
			mc.PC.Increment()
		}
	}

	mc.execute()

	mc.MachineCycle = (mc.MachineCycle + 1) % mc.defs[mc.IR].Cycles
	mc.Cycles += MachineCycleTicks

	return mc.MachineCycle == 0
}

func (mc *CPU) notify(addr uint16, kind AccessKind, space memory.AddrSpace) {
	if mc.notifier != nil {
		mc.notifier.RecordAccess(addr, kind, space)
	}
}

func (mc *CPU) read(addr uint16, space memory.AddrSpace) uint8 {
	mc.notify(addr, AccessRead, space)
	return mc.mem.Read(addr, space)
}

func (mc *CPU) write(addr uint16, data uint8, space memory.AddrSpace) {
	mc.mem.Write(addr, data, space)
	mc.notify(addr, AccessWrite, space)
}

// readPC reads the byte at the program counter and advances the program
// counter.
func (mc *CPU) readPC() uint8 {
	v := mc.read(mc.PC.Address(), memory.RAM)
	mc.PC.Increment()
	return v
}

func (mc *CPU) wz() uint16 {
	return uint16(mc.w)<<8 | uint16(mc.z)
}

func (mc *CPU) loadWZ(v uint16) {
	mc.w = uint8(v >> 8)
	mc.z = uint8(v)
}

// reg returns the register encoded by DDD or SSS. the memory operand (RegM)
// is never passed to this function.
func (mc *CPU) reg(r int) *registers.Register {
	switch r {
	case instructions.RegB:
		return &mc.B
	case instructions.RegC:
		return &mc.C
	case instructions.RegD:
		return &mc.D
	case instructions.RegE:
		return &mc.E
	case instructions.RegH:
		return &mc.H
	case instructions.RegL:
		return &mc.L
	}
	return &mc.A
}

// pair returns the value of the register pair encoded by RP.
func (mc *CPU) pair(rp int) uint16 {
	switch rp {
	case instructions.PairBC:
		return mc.BC()
	case instructions.PairDE:
		return mc.DE()
	case instructions.PairHL:
		return mc.HL()
	}
	return mc.SP.Address()
}

// loadPair sets the value of the register pair encoded by RP.
func (mc *CPU) loadPair(rp int, v uint16) {
	switch rp {
	case instructions.PairBC:
		registers.LoadPair(&mc.B, &mc.C, v)
	case instructions.PairDE:
		registers.LoadPair(&mc.D, &mc.E, v)
	case instructions.PairHL:
		registers.LoadPair(&mc.H, &mc.L, v)
	default:
		mc.SP.Load(v)
	}
}
