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

package disassembly

import (
	"github.com/jetsetilly/gopher8080/disassembly/symbols"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// FromFile creates a disassembly of a binary file, loaded into an otherwise
// empty memory in the same way as the machine loads a binary. Useful for
// one-shot disassemblies, like the gopher8080 "disasm" mode. There are no
// access counts for this type of disassembly.
func FromFile(filename string, sym *symbols.Symbols) (*Disassembly, error) {
	data, err := memory.ReadBinary(filename)
	if err != nil {
		return nil, err
	}

	mem := memory.NewMemory()
	mem.Load(data)

	return NewDisassembly(mem, nil, sym), nil
}
