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

import "fmt"

// Register16 is a 16 bit register. Used for the stack pointer and program
// counter.
type Register16 struct {
	value uint16
	label string
}

// NewRegister16 is the preferred method of initialisation for the Register16
// type.
func NewRegister16(val uint16, label string) Register16 {
	return Register16{
		value: val,
		label: label,
	}
}

// Label returns the name of the register.
func (r Register16) Label() string {
	return r.label
}

func (r Register16) String() string {
	return fmt.Sprintf("%04x", r.value)
}

// Address returns the current value of the register.
func (r Register16) Address() uint16 {
	return r.value
}

// Hi returns the most significant byte of the register.
func (r Register16) Hi() uint8 {
	return uint8(r.value >> 8)
}

// Lo returns the least significant byte of the register.
func (r Register16) Lo() uint8 {
	return uint8(r.value)
}

// Load value into register.
func (r *Register16) Load(val uint16) {
	r.value = val
}

// Increment the register by one. The value wraps around at 16 bits.
func (r *Register16) Increment() {
	r.value++
}

// Decrement the register by one. The value wraps around at 16 bits.
func (r *Register16) Decrement() {
	r.value--
}
