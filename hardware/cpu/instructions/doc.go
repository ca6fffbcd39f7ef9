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

// Package instructions defines the 8080 instruction set. There is one
// Definition for each of the 256 opcodes. The table is total. Undocumented
// opcodes are defined and behave as the documented instruction they duplicate.
//
// The Operation field of the Definition tells the CPU which micro-operation
// sequence to run for the instruction. The operands of the instruction (the
// register, register pair, condition or ALU function) are encoded in the
// opcode itself and are extracted with the DDD(), SSS(), RP(), CCC() and ALU()
// functions.
//
//	bit  7 6 5 4 3 2 1 0
//	         D D D S S S    destination/source register
//	         R P            register pair
//	         C C C          condition
//	         A L U          ALU function
//
// The Flow field categorises the opcode by the effect it has on the flow of
// the program. This is used by the disassembler to decide whether the
// instruction refers to an address that might have a label.
package instructions
