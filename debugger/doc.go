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

// Package debugger implements a command line debugger for the emulated
// machine.
//
// The debugger is created with NewDebugger() and started with Start(). Input
// is read from an implementation of the terminal.Terminal interface and
// commands are validated against the command template before being acted
// upon. The HELP command lists the available commands.
//
// Addresses in commands can be given either as a hexadecimal number (with or
// without a 0x or $ prefix) or as a label from the symbols file. Numeric
// arguments are decimal unless they are prefixed with 0x or $.
//
// The emulation is only ever advanced by the STEP, FRAME and RUN commands.
// RUN continues until a breakpoint is reached or the user interrupts with
// CTRL-C.
package debugger
