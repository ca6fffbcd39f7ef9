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
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/test"
)

func TestParityTable(t *testing.T) {
	var even int
	for _, p := range parityTable {
		if p {
			even++
		}
	}
	test.ExpectEquality(t, even, 128)
	test.ExpectEquality(t, parityTable[0x00], true)
	test.ExpectEquality(t, parityTable[0x01], false)
	test.ExpectEquality(t, parityTable[0x03], true)
	test.ExpectEquality(t, parityTable[0xff], true)
}

func TestAddSubInverse(t *testing.T) {
	mc := &CPU{}
	for _, cy := range []bool{false, true} {
		for a := 0; a <= 0xff; a++ {
			for b := 0; b <= 0xff; b++ {
				mc.add(uint8(a), uint8(b), cy)
				sum := a + b
				if cy {
					sum++
				}
				if !test.ExpectEquality(t, mc.Status.Carry, sum > 0xff, a, b, cy) {
					return
				}

				mc.sub(mc.A.Value(), uint8(b), cy)
				if !test.ExpectEquality(t, mc.A.Value(), uint8(a), a, b, cy) {
					return
				}
			}
		}
	}
}

func TestSubBorrow(t *testing.T) {
	mc := &CPU{}
	for _, cy := range []bool{false, true} {
		for a := 0; a <= 0xff; a++ {
			for b := 0; b <= 0xff; b++ {
				mc.sub(uint8(a), uint8(b), cy)
				sub := b
				if cy {
					sub++
				}
				if !test.ExpectEquality(t, mc.Status.Carry, a < sub, a, b, cy) {
					return
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	mc := &CPU{}
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			mc.A.Load(uint8(a))
			mc.act = uint8(a)
			mc.tmp = uint8(b)
			mc.alu(instructions.CMP)
			if !test.ExpectEquality(t, mc.Status.Carry, a < b, a, b) {
				return
			}
			if !test.ExpectEquality(t, mc.Status.Zero, a == b, a, b) {
				return
			}
			if !test.ExpectEquality(t, mc.A.Value(), uint8(a), a, b) {
				return
			}
		}
	}
}

func TestCarry(t *testing.T) {
	test.ExpectEquality(t, carry(8, 0xff, 0x01, false), true)
	test.ExpectEquality(t, carry(8, 0xfe, 0x01, false), false)
	test.ExpectEquality(t, carry(8, 0xfe, 0x01, true), true)
	test.ExpectEquality(t, carry(4, 0x0f, 0x01, false), true)
	test.ExpectEquality(t, carry(4, 0x0e, 0x01, false), false)
}
