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
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// execute the micro-operation for the current machine cycle of the current
// instruction. on entry MachineCycle indicates the cycle being executed. the
// conditional call and return instructions can change MachineCycle in order
// to end the instruction early.
func (mc *CPU) execute() {
	op := mc.IR
	defn := &mc.defs[op]
	cycle := mc.MachineCycle

	switch defn.Operation {
	case instructions.Nop:

	case instructions.Halt:
		mc.HLTA = true

	case instructions.Move:
		switch cycle {
		case 0:
			mc.tmp = mc.reg(instructions.SSS(op)).Value()
		case 1:
			mc.reg(instructions.DDD(op)).Load(mc.tmp)
		}

	case instructions.MoveFromMemory:
		if cycle == 1 {
			mc.reg(instructions.DDD(op)).Load(mc.read(mc.HL(), memory.RAM))
		}

	case instructions.MoveToMemory:
		switch cycle {
		case 0:
			mc.tmp = mc.reg(instructions.SSS(op)).Value()
		case 1:
			mc.write(mc.HL(), mc.tmp, memory.RAM)
		}

	case instructions.MoveImmediate:
		if cycle == 1 {
			mc.reg(instructions.DDD(op)).Load(mc.readPC())
		}

	case instructions.MoveImmediateMemory:
		switch cycle {
		case 1:
			mc.tmp = mc.readPC()
		case 2:
			mc.write(mc.HL(), mc.tmp, memory.RAM)
		}

	case instructions.LoadIndirect:
		if cycle == 1 {
			mc.A.Load(mc.read(mc.pair(instructions.RP(op)), memory.RAM))
		}

	case instructions.StoreIndirect:
		if cycle == 1 {
			mc.write(mc.pair(instructions.RP(op)), mc.A.Value(), memory.RAM)
		}

	case instructions.LoadDirect:
		switch cycle {
		case 1:
			mc.z = mc.readPC()
		case 2:
			mc.w = mc.readPC()
		case 3:
			mc.A.Load(mc.read(mc.wz(), memory.RAM))
		}

	case instructions.StoreDirect:
		switch cycle {
		case 1:
			mc.z = mc.readPC()
		case 2:
			mc.w = mc.readPC()
		case 3:
			mc.write(mc.wz(), mc.A.Value(), memory.RAM)
		}

	case instructions.LoadPairImmediate:
		rp := instructions.RP(op)
		switch cycle {
		case 1:
			mc.loadPair(rp, mc.pair(rp)&0xff00|uint16(mc.readPC()))
		case 2:
			mc.loadPair(rp, uint16(mc.readPC())<<8|mc.pair(rp)&0x00ff)
		}

	case instructions.LoadHL:
		switch cycle {
		case 1:
			mc.z = mc.readPC()
		case 2:
			mc.w = mc.readPC()
		case 3:
			mc.L.Load(mc.read(mc.wz(), memory.RAM))
			mc.loadWZ(mc.wz() + 1)
		case 4:
			mc.H.Load(mc.read(mc.wz(), memory.RAM))
		}

	case instructions.StoreHL:
		switch cycle {
		case 1:
			mc.z = mc.readPC()
		case 2:
			mc.w = mc.readPC()
		case 3:
			mc.write(mc.wz(), mc.L.Value(), memory.RAM)
			mc.loadWZ(mc.wz() + 1)
		case 4:
			mc.write(mc.wz(), mc.H.Value(), memory.RAM)
		}

	case instructions.LoadSP:
		if cycle == 1 {
			mc.SP.Load(mc.HL())
		}

	case instructions.ExchangeDE:
		h, l := mc.H.Value(), mc.L.Value()
		mc.H.Load(mc.D.Value())
		mc.L.Load(mc.E.Value())
		mc.D.Load(h)
		mc.E.Load(l)

	case instructions.ExchangeStack:
		switch cycle {
		case 1:
			mc.z = mc.read(mc.SP.Address(), memory.STACK)
		case 2:
			mc.w = mc.read(mc.SP.Address()+1, memory.STACK)
		case 3:
			mc.write(mc.SP.Address(), mc.L.Value(), memory.STACK)
		case 4:
			mc.write(mc.SP.Address()+1, mc.H.Value(), memory.STACK)
		case 5:
			mc.H.Load(mc.w)
			mc.L.Load(mc.z)
		}

	case instructions.Push:
		switch cycle {
		case 0, 2:
			mc.SP.Decrement()
		case 1:
			mc.write(mc.SP.Address(), uint8(mc.pushValue(instructions.RP(op))>>8), memory.STACK)
		case 3:
			mc.write(mc.SP.Address(), uint8(mc.pushValue(instructions.RP(op))), memory.STACK)
		}

	case instructions.Pop:
		rp := instructions.RP(op)
		switch cycle {
		case 1:
			lo := mc.read(mc.SP.Address(), memory.STACK)
			mc.SP.Increment()
			if rp == instructions.PairSP {
				mc.Status.Load(lo)
			} else {
				mc.loadPair(rp, mc.pair(rp)&0xff00|uint16(lo))
			}
		case 2:
			hi := mc.read(mc.SP.Address(), memory.STACK)
			mc.SP.Increment()
			if rp == instructions.PairSP {
				mc.A.Load(hi)
			} else {
				mc.loadPair(rp, uint16(hi)<<8|mc.pair(rp)&0x00ff)
			}
		}

	case instructions.ALU:
		mc.act = mc.A.Value()
		mc.tmp = mc.reg(instructions.SSS(op)).Value()
		mc.alu(instructions.ALUFunction(op))

	case instructions.ALUMemory:
		switch cycle {
		case 0:
			mc.act = mc.A.Value()
		case 1:
			mc.tmp = mc.read(mc.HL(), memory.RAM)
			mc.alu(instructions.ALUFunction(op))
		}

	case instructions.ALUImmediate:
		switch cycle {
		case 0:
			mc.act = mc.A.Value()
		case 1:
			mc.tmp = mc.readPC()
			mc.alu(instructions.ALUFunction(op))
		}

	case instructions.AddPair:
		rp := instructions.RP(op)
		switch cycle {
		case 1:
			mc.act = uint8(mc.pair(rp))
			mc.tmp = mc.L.Value()
			mc.Status.Carry = carry(8, mc.act, mc.tmp, false)
			mc.L.Load(mc.act + mc.tmp)
		case 2:
			mc.act = uint8(mc.pair(rp) >> 8)
			mc.tmp = mc.H.Value()
			cy := mc.Status.Carry
			mc.Status.Carry = carry(8, mc.act, mc.tmp, cy)
			r := mc.act + mc.tmp
			if cy {
				r++
			}
			mc.H.Load(r)
		}

	case instructions.Increment:
		switch cycle {
		case 0:
			mc.tmp = mc.inr(mc.reg(instructions.DDD(op)).Value())
		case 1:
			mc.reg(instructions.DDD(op)).Load(mc.tmp)
		}

	case instructions.Decrement:
		switch cycle {
		case 0:
			mc.tmp = mc.dcr(mc.reg(instructions.DDD(op)).Value())
		case 1:
			mc.reg(instructions.DDD(op)).Load(mc.tmp)
		}

	case instructions.IncrementMemory:
		switch cycle {
		case 1:
			mc.tmp = mc.inr(mc.read(mc.HL(), memory.RAM))
		case 2:
			mc.write(mc.HL(), mc.tmp, memory.RAM)
		}

	case instructions.DecrementMemory:
		switch cycle {
		case 1:
			mc.tmp = mc.dcr(mc.read(mc.HL(), memory.RAM))
		case 2:
			mc.write(mc.HL(), mc.tmp, memory.RAM)
		}

	case instructions.IncrementPair:
		rp := instructions.RP(op)
		switch cycle {
		case 0:
			mc.loadWZ(mc.pair(rp) + 1)
		case 1:
			mc.loadPair(rp, mc.wz())
		}

	case instructions.DecrementPair:
		rp := instructions.RP(op)
		switch cycle {
		case 0:
			mc.loadWZ(mc.pair(rp) - 1)
		case 1:
			mc.loadPair(rp, mc.wz())
		}

	case instructions.DecimalAdjust:
		mc.daa()

	case instructions.Complement:
		mc.A.Load(^mc.A.Value())

	case instructions.SetCarry:
		mc.Status.Carry = true

	case instructions.ComplementCarry:
		mc.Status.Carry = !mc.Status.Carry

	case instructions.RotateLeft:
		mc.rlc()

	case instructions.RotateRight:
		mc.rrc()

	case instructions.RotateLeftThroughCarry:
		mc.ral()

	case instructions.RotateRightThroughCarry:
		mc.rar()

	case instructions.Jump, instructions.JumpConditional:
		switch cycle {
		case 1:
			mc.z = mc.readPC()
		case 2:
			mc.w = mc.readPC()
			if defn.Operation == instructions.Jump || mc.condition(instructions.CCC(op)) {
				mc.PC.Load(mc.wz())
			}
		}

	case instructions.JumpIndirect:
		if cycle == 1 {
			mc.PC.Load(mc.HL())
		}

	case instructions.Call, instructions.CallConditional:
		cond := defn.Operation == instructions.Call || mc.condition(instructions.CCC(op))
		switch cycle {
		case 0:
			if cond {
				mc.SP.Decrement()
			}
		case 1:
			mc.z = mc.readPC()
		case 2:
			mc.w = mc.readPC()
		case 3:
			if cond {
				mc.write(mc.SP.Address(), mc.PC.Hi(), memory.STACK)
				mc.SP.Decrement()
			} else {
				// the instruction ends after this cycle
				mc.MachineCycle = defn.Cycles - 1
			}
		case 4:
			mc.write(mc.SP.Address(), mc.PC.Lo(), memory.STACK)
		case 5:
			mc.PC.Load(mc.wz())
		}

	case instructions.Return:
		switch cycle {
		case 1:
			mc.z = mc.read(mc.SP.Address(), memory.STACK)
			mc.SP.Increment()
		case 2:
			mc.w = mc.read(mc.SP.Address(), memory.STACK)
			mc.SP.Increment()
			mc.PC.Load(mc.wz())
		}

	case instructions.ReturnConditional:
		switch cycle {
		case 1:
			if !mc.condition(instructions.CCC(op)) {
				mc.MachineCycle = defn.Cycles - 1
			}
		case 2:
			mc.z = mc.read(mc.SP.Address(), memory.STACK)
			mc.SP.Increment()
		case 3:
			mc.w = mc.read(mc.SP.Address(), memory.STACK)
			mc.SP.Increment()
			mc.PC.Load(mc.wz())
		}

	case instructions.Restart:
		switch cycle {
		case 0:
			mc.SP.Decrement()
		case 1:
			mc.write(mc.SP.Address(), mc.PC.Hi(), memory.STACK)
			mc.SP.Decrement()
		case 2:
			mc.w = 0
			mc.z = op & 0x38
			mc.write(mc.SP.Address(), mc.PC.Lo(), memory.STACK)
		case 3:
			mc.PC.Load(mc.wz())
		}

	case instructions.Input:
		if cycle == 1 {
			mc.w = 0
			mc.z = mc.readPC()
			mc.A.Load(mc.ports.In(mc.z))
		}

	case instructions.Output:
		if cycle == 1 {
			mc.w = 0
			mc.z = mc.readPC()
			mc.ports.Out(mc.z, mc.A.Value())
		}

	case instructions.DisableInterrupts:
		mc.INTE = false

	case instructions.EnableInterrupts:
		mc.INTE = true
		mc.eiPending = true
	}
}

// pushValue returns the value pushed onto the stack by PUSH. the SP encoding
// of PUSH refers to the accumulator and the status register.
func (mc *CPU) pushValue(rp int) uint16 {
	if rp == instructions.PairSP {
		return uint16(mc.A.Value())<<8 | uint16(mc.Status.Value())
	}
	return mc.pair(rp)
}
