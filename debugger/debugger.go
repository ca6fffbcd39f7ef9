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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/disassembly/symbols"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/logger"
)

// Sentinal error patterns.
const (
	CommandError   = "debugger: %v"
	UnknownCommand = "debugger: unknown command (%s)"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	machine *hardware.Machine
	disasm  *disassembly.Disassembly

	term terminal.Terminal

	// the current state of the debugger
	state govern.State

	breakpoints *breakpoints

	// signals from the operating system. an interrupt stops a running
	// emulation
	events *terminal.ReadEvents

	// buffer for user input
	input []byte
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The sym argument can be nil.
func NewDebugger(machine *hardware.Machine, term terminal.Terminal, sym *symbols.Symbols) (*Debugger, error) {
	dbg := &Debugger{
		machine: machine,
		term:    term,
		state:   govern.EmulatorStart,
		input:   make([]byte, 255),
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	dbg.disasm = disassembly.NewDisassembly(machine.Mem, machine.Counters, sym)
	dbg.breakpoints = newBreakpoints()

	err := dbg.term.Initialise()
	if err != nil {
		return nil, curated.Errorf(CommandError, err)
	}
	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	return dbg, nil
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

func (dbg *Debugger) setState(state govern.State) {
	dbg.state = state
}

// Start the main debugger sequence. The filename argument is the binary to
// load before the first prompt and can be empty.
func (dbg *Debugger) Start(filename string) error {
	defer dbg.term.CleanUp()

	dbg.setState(govern.Initialising)

	if filename != "" {
		err := dbg.machine.LoadROM(filename)
		if err != nil {
			return curated.Errorf(CommandError, err)
		}
	}

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	logger.Log(logger.Allow, "debugger", "starting")

	dbg.setState(govern.Paused)
	err := dbg.inputLoop()
	dbg.setState(govern.Ending)

	logger.Log(logger.Allow, "debugger", "ending")

	return err
}

func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		n, err := dbg.term.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				dbg.setState(govern.Ending)
				continue // for loop
			}
			return curated.Errorf(CommandError, err)
		}

		// the count includes the terminating newline
		if n <= 1 {
			continue // for loop
		}
		if n > len(dbg.input) {
			n = len(dbg.input) + 1
		}

		err = dbg.parseCommand(string(dbg.input[:n-1]))
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

func (dbg *Debugger) buildPrompt() terminal.Prompt {
	pc := dbg.machine.CPU.PC.Address()
	s, _ := disassembly.DecodeOne(dbg.machine.Mem, pc)
	return terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Content: fmt.Sprintf("0x%04x %s", pc, s),
	}
}

// printLine sends the string to the terminal with the specified style.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(sty, s)
}

// printLines splits the string into lines and prints each one.
func (dbg *Debugger) printLines(sty terminal.Style, s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	for _, l := range strings.Split(s, "\n") {
		dbg.term.TermPrintLine(sty, l)
	}
}

// printLineWriter adapts the printLines function to the io.Writer interface.
type printLineWriter struct {
	dbg *Debugger
	sty terminal.Style
}

func (w printLineWriter) Write(p []byte) (int, error) {
	w.dbg.printLines(w.sty, string(p))
	return len(p), nil
}
