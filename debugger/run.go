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
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/hardware"
)

// the reason the emulation stopped.
type haltReason int

const (
	haltDone haltReason = iota
	haltBreakpoint
	haltInterrupt
)

// runUntil runs the emulation until the done function returns true, a
// breakpoint is reached or the user interrupts. The done function is called
// after every instruction.
func (dbg *Debugger) runUntil(state govern.State, done func() bool) (haltReason, error) {
	// discard any interrupt received while the emulation was paused
	select {
	case <-dbg.events.IntEvents:
	default:
	}

	dbg.setState(state)
	defer dbg.setState(govern.Paused)

	reason := haltDone
	performanceFilter := 0

	err := dbg.machine.Run(func() (govern.State, error) {
		if done() {
			return govern.Ending, nil
		}

		if dbg.breakpoints.check(dbg.machine.CPU.PC.Address()) {
			reason = haltBreakpoint
			return govern.Ending, nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-dbg.events.IntEvents:
				reason = haltInterrupt
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})

	switch reason {
	case haltBreakpoint:
		dbg.printLine(terminal.StyleFeedback, "break at 0x%04x", dbg.machine.CPU.PC.Address())
	case haltInterrupt:
		dbg.printLine(terminal.StyleFeedback, "interrupted at 0x%04x", dbg.machine.CPU.PC.Address())
	}

	return reason, err
}

// printStep prints the disassembly of the instruction at the PC.
func (dbg *Debugger) printStep() {
	for _, l := range dbg.disasm.Listing(dbg.machine.CPU.PC.Address(), 1, 0, dbg.machine.CPU.HL()) {
		dbg.printLine(terminal.StyleCPUStep, l)
	}
}

// step executes n instructions.
func (dbg *Debugger) step(n int) error {
	count := 0
	_, err := dbg.runUntil(govern.Stepping, func() bool {
		count++
		return count >= n
	})
	dbg.printStep()
	return err
}

// frame executes n frames.
func (dbg *Debugger) frame(n int) error {
	target := dbg.machine.Raster.GetCoords().Frame + n
	_, err := dbg.runUntil(govern.Running, func() bool {
		return dbg.machine.Raster.GetCoords().Frame >= target
	})
	dbg.printStep()
	return err
}

// run the emulation until a breakpoint or user interrupt.
func (dbg *Debugger) run() error {
	_, err := dbg.runUntil(govern.Running, func() bool {
		return false
	})
	dbg.printStep()
	return err
}
