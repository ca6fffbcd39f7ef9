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
	"math/bits"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// parity of every byte value. true if the number of set bits is even.
var parityTable [256]bool

func init() {
	for i := range parityTable {
		parityTable[i] = bits.OnesCount8(uint8(i))%2 == 0
	}
}

// carry returns true if the addition of a, b and cy produces a carry into bit
// number n.
func carry(n uint, a uint8, b uint8, cy bool) bool {
	r := uint16(a) + uint16(b)
	if cy {
		r++
	}
	return (r^uint16(a)^uint16(b))&(1<<n) != 0
}

func (mc *CPU) setZSP(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
	mc.Status.Parity = parityTable[v]
}

// add a, b and cy and store the result in the accumulator.
func (mc *CPU) add(a uint8, b uint8, cy bool) {
	r := a + b
	if cy {
		r++
	}
	mc.A.Load(r)
	mc.Status.Carry = carry(8, a, b, cy)
	mc.Status.AuxCarry = carry(4, a, b, cy)
	mc.setZSP(r)
}

// sub(tract) b and the borrow from a and store the result in the accumulator.
// subtraction is the addition of the complement with an inverted carry. the
// carry flag is then inverted so that it indicates a borrow.
func (mc *CPU) sub(a uint8, b uint8, cy bool) {
	mc.add(a, ^b, !cy)
	mc.Status.Carry = !mc.Status.Carry
}

// alu performs the ALU function on the ACT and TMP registers. the result is
// stored in the accumulator except for the CMP function.
func (mc *CPU) alu(fn int) {
	switch fn {
	case instructions.ADD:
		mc.add(mc.act, mc.tmp, false)
	case instructions.ADC:
		mc.add(mc.act, mc.tmp, mc.Status.Carry)
	case instructions.SUB:
		mc.sub(mc.act, mc.tmp, false)
	case instructions.SBB:
		mc.sub(mc.act, mc.tmp, mc.Status.Carry)
	case instructions.ANA:
		r := mc.act & mc.tmp
		mc.A.Load(r)
		mc.Status.Carry = false
		mc.Status.AuxCarry = (mc.act|mc.tmp)&0x08 != 0
		mc.setZSP(r)
	case instructions.XRA:
		r := mc.act ^ mc.tmp
		mc.A.Load(r)
		mc.Status.Carry = false
		mc.Status.AuxCarry = false
		mc.setZSP(r)
	case instructions.ORA:
		r := mc.act | mc.tmp
		mc.A.Load(r)
		mc.Status.Carry = false
		mc.Status.AuxCarry = false
		mc.setZSP(r)
	case instructions.CMP:
		r := mc.act - mc.tmp
		mc.Status.Carry = mc.act < mc.tmp
		mc.Status.AuxCarry = ^(mc.act^r^mc.tmp)&0x10 == 0x10
		mc.setZSP(r)
	}
}

// daa is the decimal adjust of the accumulator.
func (mc *CPU) daa() {
	a := mc.A.Value()
	cy := mc.Status.Carry

	lsb := a & 0x0f
	msb := a >> 4

	var correction uint8
	if mc.Status.AuxCarry || lsb > 9 {
		correction += 0x06
	}
	if mc.Status.Carry || msb > 9 || (msb >= 9 && lsb > 9) {
		correction += 0x60
		cy = true
	}

	mc.add(a, correction, false)
	mc.Status.Carry = cy
}

func (mc *CPU) rlc() {
	a := mc.A.Value()
	mc.Status.Carry = a&0x80 == 0x80
	a <<= 1
	if mc.Status.Carry {
		a |= 0x01
	}
	mc.A.Load(a)
}

func (mc *CPU) rrc() {
	a := mc.A.Value()
	mc.Status.Carry = a&0x01 == 0x01
	a >>= 1
	if mc.Status.Carry {
		a |= 0x80
	}
	mc.A.Load(a)
}

func (mc *CPU) ral() {
	a := mc.A.Value()
	cy := mc.Status.Carry
	mc.Status.Carry = a&0x80 == 0x80
	a <<= 1
	if cy {
		a |= 0x01
	}
	mc.A.Load(a)
}

func (mc *CPU) rar() {
	a := mc.A.Value()
	cy := mc.Status.Carry
	mc.Status.Carry = a&0x01 == 0x01
	a >>= 1
	if cy {
		a |= 0x80
	}
	mc.A.Load(a)
}

// inr sets the flags for the result of an increment.
func (mc *CPU) inr(v uint8) uint8 {
	v++
	mc.Status.AuxCarry = v&0x0f == 0
	mc.setZSP(v)
	return v
}

// dcr sets the flags for the result of a decrement.
func (mc *CPU) dcr(v uint8) uint8 {
	v--
	mc.Status.AuxCarry = v&0x0f != 0x0f
	mc.setZSP(v)
	return v
}

// condition returns true if the condition encoded in an opcode is met.
func (mc *CPU) condition(ccc int) bool {
	switch ccc {
	case 0:
		return !mc.Status.Zero
	case 1:
		return mc.Status.Zero
	case 2:
		return !mc.Status.Carry
	case 3:
		return mc.Status.Carry
	case 4:
		return !mc.Status.Parity
	case 5:
		return mc.Status.Parity
	case 6:
		return !mc.Status.Sign
	}
	return mc.Status.Sign
}
