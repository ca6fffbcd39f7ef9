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

package debugger

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/display"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// the machine state as presented to memviz. the memory image itself is left
// out because it would swamp the graph.
type machineState struct {
	PC     registers.Register16
	SP     registers.Register16
	A      registers.Register
	B      registers.Register
	C      registers.Register
	D      registers.Register
	E      registers.Register
	H      registers.Register
	L      registers.Register
	Status registers.StatusRegister

	INTE bool
	IFF  bool
	HLTA bool

	Mapping     memory.Mapping
	Raster      display.Coords
	Breakpoints []uint16
}

// memviz writes a graphviz dot file of the current machine state to the named
// file.
func (dbg *Debugger) memviz(filename string) error {
	mc := dbg.machine.CPU

	state := &machineState{
		PC:          mc.PC,
		SP:          mc.SP,
		A:           mc.A,
		B:           mc.B,
		C:           mc.C,
		D:           mc.D,
		E:           mc.E,
		H:           mc.H,
		L:           mc.L,
		Status:      mc.Status,
		INTE:        mc.INTE,
		IFF:         mc.IFF,
		HLTA:        mc.HLTA,
		Mapping:     dbg.machine.Mem.Mapping,
		Raster:      dbg.machine.Raster.GetCoords(),
		Breakpoints: dbg.breakpoints.sorted(),
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, state)

	return nil
}
