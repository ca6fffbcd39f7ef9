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

import "github.com/jetsetilly/gopher8080/hardware/memory"

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(addr uint16, space memory.AddrSpace) uint8
	Write(addr uint16, data uint8, space memory.AddrSpace)
}

// Ports defines the I/O operations required by the CPU.
type Ports interface {
	In(port uint8) uint8
	Out(port uint8, data uint8)
}

// AccessKind is the type of memory access reported to an AccessNotifier.
type AccessKind int

// List of valid AccessKind values.
const (
	AccessRun AccessKind = iota
	AccessRead
	AccessWrite
)

func (k AccessKind) String() string {
	switch k {
	case AccessRun:
		return "run"
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	}
	return "unknown access"
}

// AccessNotifier implementations are told about every memory access made by
// the CPU. Notification is made before a read and after a write.
type AccessNotifier interface {
	RecordAccess(addr uint16, kind AccessKind, space memory.AddrSpace)
}
