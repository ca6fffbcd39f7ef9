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

package ports

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/logger"
)

// MappingPort is the port that controls the RAM disk mapping.
const MappingPort = 0x10

// Mapper is implemented by the memory sub-system. The value written to the
// MappingPort is forwarded to the SetMapping() function.
type Mapper interface {
	SetMapping(v uint8)
}

// Ports is the collection of I/O ports.
type Ports struct {
	mapper Mapper

	// most recent write to any port
	LastPort uint8
	LastData uint8

	// the value last written to the MappingPort
	mapping uint8

	// ports that have been written to since the last reset. only the first
	// write to an unhandled port is logged
	written [256]bool
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(mapper Mapper) *Ports {
	return &Ports{
		mapper: mapper,
	}
}

// Reset the state of the ports. The mapper is not reset.
func (p *Ports) Reset() {
	p.LastPort = 0
	p.LastData = 0
	p.mapping = 0
	clear(p.written[:])
}

func (p *Ports) String() string {
	return fmt.Sprintf("last out: %02x <- %02x", p.LastPort, p.LastData)
}

// In implements the cpu.Ports interface.
func (p *Ports) In(port uint8) uint8 {
	return 0
}

// Out implements the cpu.Ports interface.
func (p *Ports) Out(port uint8, data uint8) {
	p.LastPort = port
	p.LastData = data

	switch port {
	case MappingPort:
		if p.mapper != nil {
			p.mapper.SetMapping(data)
		}
		if data != p.mapping {
			logger.Logf(logger.Allow, "ports", "ram disk mapping changed: %02x -> %02x", p.mapping, data)
			p.mapping = data
		}
	default:
		if !p.written[port] {
			logger.Logf(logger.Allow, "ports", "unhandled write to port %02x (%02x)", port, data)
		}
	}

	p.written[port] = true
}
