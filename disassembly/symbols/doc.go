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

// Package symbols keeps track of the labels attached to addresses in the
// 8080 address space. Labels are read from a symbols file with
// ReadSymbolsFile() and are used by the disassembly package to annotate the
// listing and by the debugger for address arguments.
//
// A symbols file has one entry per line. Entries can be of the form:
//
//	LABEL ADDR
//
// or
//
//	ADDR LABEL
//
// The address is hexadecimal and can have a 0x or $ prefix. Lines beginning
// with a semi-colon or hash are ignored, as are lines that can not be
// understood. More than one label can be attached to the same address.
package symbols
