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

package memory

import (
	"os"

	"github.com/jetsetilly/gopher8080/curated"
)

// LoadOrigin is the address in main memory at which binaries are loaded.
const LoadOrigin = 0x100

// Sentinal error patterns returned by ReadBinary().
const (
	LoadError    = "load: %v"
	LoadEmpty    = "load: binary is empty (%s)"
	LoadTooLarge = "load: binary is too large (%s is %d bytes)"
)

// ReadBinary reads and validates a binary file. The file must not be empty
// and must fit in main memory when loaded at LoadOrigin.
//
// Note that the memory is not touched by this function. Once the binary has
// been validated it can be copied into memory with Load().
func ReadBinary(filename string) ([]uint8, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	if len(data) == 0 {
		return nil, curated.Errorf(LoadEmpty, filename)
	}
	if len(data) > MainLen-LoadOrigin {
		return nil, curated.Errorf(LoadTooLarge, filename, len(data))
	}
	return data, nil
}

// Load data into main memory at LoadOrigin. Data from ReadBinary() always
// fits. Any other data that would extend beyond the end of main memory is
// truncated.
func (mem *Memory) Load(data []uint8) {
	copy(mem.data[LoadOrigin:MainLen], data)
}
