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

package registers

import (
	"strings"
)

// The bits in the status byte that are not connected to a flag. Bit 1 always
// reads as 1 and bits 3 and 5 always read as 0.
const (
	StatusFixedOnes  = 0x02
	StatusFixedZeros = 0x28
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
type StatusRegister struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "F"
}

// String returns the flags in bit order. Set flags are shown in upper case
// and the fixed bits are shown by their value.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + 'a' - 'A')
		}
	}

	flag(sr.Sign, 'S')
	flag(sr.Zero, 'Z')
	s.WriteRune('0')
	flag(sr.AuxCarry, 'A')
	s.WriteRune('0')
	flag(sr.Parity, 'P')
	s.WriteRune('1')
	flag(sr.Carry, 'C')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// Value packs the status register into a byte, as it would be pushed onto the
// stack by PUSH PSW.
//
//	bit  7 6 5 4 3 2 1 0
//	     S Z 0 A 0 P 1 C
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Zero {
		v |= 0x40
	}
	if sr.AuxCarry {
		v |= 0x10
	}
	if sr.Parity {
		v |= 0x04
	}
	if sr.Carry {
		v |= 0x01
	}

	v |= StatusFixedOnes

	return v
}

// Load unpacks a byte (taken from the stack, for example) into the
// StatusRegister. The fixed bits are ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v&0x40 == 0x40
	sr.AuxCarry = v&0x10 == 0x10
	sr.Parity = v&0x04 == 0x04
	sr.Carry = v&0x01 == 0x01
}
