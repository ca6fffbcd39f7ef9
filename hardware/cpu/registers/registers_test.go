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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "B")
	test.ExpectEquality(t, r.Label(), "B")
	test.ExpectEquality(t, r.Value(), uint8(0))

	r.Load(0xfe)
	test.ExpectEquality(t, r.Value(), uint8(0xfe))
	test.ExpectEquality(t, r.String(), "fe")
}

func TestPair(t *testing.T) {
	h := registers.NewRegister(0, "H")
	l := registers.NewRegister(0, "L")

	registers.LoadPair(&h, &l, 0x1234)
	test.ExpectEquality(t, h.Value(), uint8(0x12))
	test.ExpectEquality(t, l.Value(), uint8(0x34))
	test.ExpectEquality(t, registers.Pair(h, l), uint16(0x1234))
}

func TestRegister16(t *testing.T) {
	sp := registers.NewRegister16(0, "SP")
	sp.Decrement()
	test.ExpectEquality(t, sp.Address(), uint16(0xffff))
	test.ExpectEquality(t, sp.Hi(), uint8(0xff))
	test.ExpectEquality(t, sp.Lo(), uint8(0xff))
	sp.Increment()
	test.ExpectEquality(t, sp.Address(), uint16(0x0000))

	sp.Load(0xabcd)
	test.ExpectEquality(t, sp.String(), "abcd")
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	// the fixed bits are present even when no flags are set
	test.ExpectEquality(t, sr.Value(), uint8(0x02))
	test.ExpectEquality(t, sr.String(), "sz0a0p1c")

	sr.Sign = true
	sr.Carry = true
	test.ExpectEquality(t, sr.Value(), uint8(0x83))
	test.ExpectEquality(t, sr.String(), "Sz0a0p1C")

	// loading a value with every bit set does not disturb the fixed bits
	sr.Load(0xff)
	test.ExpectEquality(t, sr.Value(), uint8(0xd7))
	test.ExpectEquality(t, sr.Value()&registers.StatusFixedZeros, uint8(0))
	test.ExpectEquality(t, sr.Value()&registers.StatusFixedOnes, uint8(registers.StatusFixedOnes))
	test.ExpectEquality(t, sr.String(), "SZ0A0P1C")

	sr.Reset()
	test.ExpectEquality(t, sr, registers.NewStatusRegister())
}
