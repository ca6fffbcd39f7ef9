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

// Package registers implements the registers of the 8080. Register is used for
// the 8 bit general purpose registers and the accumulator. Register16 is used
// for the stack pointer and the program counter. StatusRegister holds the
// flags.
//
// The 8 bit registers can be viewed as pairs with the Pair() function and
// loaded as pairs with the LoadPair() function. The high byte of a pair is the
// first register named. For example, in the BC pair B is the high byte.
//
// The arithmetic of the 8080 is not implemented here. The registers are simple
// storage with labels that are useful for the debugger.
package registers
