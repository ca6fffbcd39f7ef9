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

package debugger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/disassembly/symbols"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/test"
)

type mockTerm struct {
	t      *testing.T
	inp    chan string
	out    chan string
	output []string

	// temporary directory for files created by the debugger
	dir string
}

func newMockTerm(t *testing.T) *mockTerm {
	trm := &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
		dir: t.TempDir(),
	}
	return trm
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	s := <-trm.inp
	copy(buffer, s)
	return len(s) + 1, nil
}

func (trm *mockTerm) TermReadCheck() bool {
	return false
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}

	trm.out <- s
}

func (trm *mockTerm) sndInput(s string) {
	trm.output = make([]string, 0, 10)
	trm.inp <- s
}

func (trm *mockTerm) rcvOutput() {
	empty := false
	for !empty {
		select {
		case s := <-trm.out:
			trm.output = append(trm.output, s)

		// the amount of output sent by the debugger is unpredictable so a
		// timeout is necessary. running the emulation for a frame or two
		// can take a few milliseconds
		case <-time.After(100 * time.Millisecond):
			empty = true
		}
	}
}

// cmpOutput compares the string argument with the *last line* of the most
// recent output.
func (trm *mockTerm) cmpOutput(s string) {
	trm.t.Helper()

	trm.rcvOutput()

	if len(trm.output) == 0 {
		if len(s) != 0 {
			trm.t.Errorf("unexpected debugger output (nothing) should be (%s)", s)
		}
		return
	}

	l := len(trm.output) - 1

	if trm.output[l] == s {
		return
	}

	trm.t.Errorf("unexpected debugger output (%s) should be (%s)", trm.output[l], s)
}

func (trm *mockTerm) testSequence() {
	defer func() { trm.sndInput("QUIT") }()
	trm.testCommands()
	trm.testBreakpoints()
	trm.testEmulation()
	trm.testMemory()
}

func (trm *mockTerm) testCommands() {
	trm.sndInput("FOO")
	trm.cmpOutput("debugger: unknown command (FOO)")

	trm.sndInput("STEP x")
	trm.cmpOutput("debugger: STEP: invalid arguments (x)")

	trm.sndInput("STEP 0")
	trm.cmpOutput("debugger: invalid count (0)")

	trm.sndInput("help step")
	trm.cmpOutput("    STEP [<n>]")

	trm.sndInput("SYMBOL LOOP")
	trm.cmpOutput("LOOP -> 0x0004")

	trm.sndInput("SYMBOL nowhere")
	trm.cmpOutput("debugger: symbols: no symbol named nowhere")

	trm.sndInput("RAMDISK")
	trm.cmpOutput("stack: off, ram: off")

	trm.sndInput("LOG 1")
	trm.cmpOutput("debugger: starting")

	// empty input does nothing
	trm.sndInput("")
	trm.cmpOutput("")
}

func (trm *mockTerm) testEmulation() {
	trm.sndInput("BREAK LOOP")
	trm.cmpOutput("")

	trm.sndInput("RUN")
	trm.cmpOutput("0x0004\t_JMP 0x0004\t0,0,0\tLOOP\tLOOP")

	trm.sndInput("STEP")
	trm.cmpOutput("0x0004\t_JMP 0x0004\t1,0,0\tLOOP\tLOOP")

	trm.sndInput("BREAK CLEAR")
	trm.cmpOutput("breakpoints cleared")

	trm.sndInput("FRAME 2")
	trm.rcvOutput()

	trm.sndInput("RESET")
	trm.cmpOutput("machine reset")

	trm.sndInput("DISASM 0 3 0")
	trm.cmpOutput("0x0004\t_JMP 0x0004\t0,0,0\tLOOP\tLOOP")

	trm.sndInput("STEP 2")
	trm.cmpOutput("0x0004\t_JMP 0x0004\t0,0,0\tLOOP\tLOOP")

	trm.sndInput("CPU")
	trm.cmpOutput("raster: Frame: 0  Line: 000  Pixel: 064")

	trm.sndInput("FRAME 2")
	trm.rcvOutput()
}

func (trm *mockTerm) testMemory() {
	trm.sndInput("POKE 0x10 0x55")
	trm.cmpOutput("0x0010 -> 0x55")

	trm.sndInput("POKE 10 256")
	trm.cmpOutput("debugger: poke value must be a byte (256)")

	trm.sndInput("MEM 0x10 2")
	trm.cmpOutput("0x00010: 55 00")

	trm.sndInput("MEM 0 18 GLOBAL")
	trm.cmpOutput("0x00010: 55 00")

	trm.sndInput("MEM nowhere")
	trm.cmpOutput("debugger: unrecognised address (nowhere)")

	trm.sndInput(fmt.Sprintf("MEMVIZ %s", filepath.Join(trm.dir, "machine.dot")))
	trm.cmpOutput(fmt.Sprintf("memviz written to %s", filepath.Join(trm.dir, "machine.dot")))
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	m := hardware.NewMachine()

	// MVI A,0x01; MVI B,0x02; JMP 0x0004
	for i, d := range []uint8{0x3e, 0x01, 0x06, 0x02, 0xc3, 0x04, 0x00} {
		m.Mem.Write(uint16(i), d, memory.RAM)
	}

	return m
}

func TestDebugger(t *testing.T) {
	trm := newMockTerm(t)
	m := newMachine(t)

	sym := symbols.NewSymbols()
	sym.AddLabel(0x0004, "LOOP")

	dbg, err := debugger.NewDebugger(m, trm, sym)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dbg.State(), govern.EmulatorStart)

	go trm.testSequence()

	err = dbg.Start("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	// the last command before QUIT ran the emulation for two frames
	test.ExpectEquality(t, m.Raster.GetCoords().Frame, 2)
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0x0004))
	test.ExpectEquality(t, m.CPU.A.Value(), uint8(0x01))
	test.ExpectEquality(t, m.CPU.B.Value(), uint8(0x02))

	_, err = os.Stat(filepath.Join(trm.dir, "machine.dot"))
	test.ExpectSuccess(t, err)
}

func TestDebugger_withLoadFailure(t *testing.T) {
	trm := newMockTerm(t)

	dbg, err := debugger.NewDebugger(hardware.NewMachine(), trm, nil)
	test.DemandSuccess(t, err)

	err = dbg.Start(filepath.Join(trm.dir, "missing.rom"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.LoadError))
}

func TestDebugger_withLoad(t *testing.T) {
	trm := newMockTerm(t)

	fn := filepath.Join(trm.dir, "test.rom")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{0xc3, 0x00, 0x01}, 0o644))

	m := hardware.NewMachine()
	dbg, err := debugger.NewDebugger(m, trm, nil)
	test.DemandSuccess(t, err)

	go func() {
		defer trm.sndInput("QUIT")
		trm.sndInput("DISASM $100 1 0")
		trm.cmpOutput("0x0100\t_JMP 0x0100\t0,0,0")

		trm.sndInput(fmt.Sprintf("LOAD %s", fn))
		trm.cmpOutput(fmt.Sprintf("loaded %s", fn))
	}()

	test.DemandSuccess(t, dbg.Start(fn))
	test.ExpectEquality(t, m.Filename, fn)
}
