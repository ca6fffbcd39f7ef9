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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8080/disassembly/symbols"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/logger"
)

// debugger keywords.
const (
	cmdBreak   = "BREAK"
	cmdCPU     = "CPU"
	cmdDisasm  = "DISASM"
	cmdFrame   = "FRAME"
	cmdHelp    = "HELP"
	cmdLoad    = "LOAD"
	cmdLog     = "LOG"
	cmdMem     = "MEM"
	cmdMemviz  = "MEMVIZ"
	cmdPoke    = "POKE"
	cmdQuit    = "QUIT"
	cmdRAMDisk = "RAMDISK"
	cmdRegs    = "REGS"
	cmdReset   = "RESET"
	cmdRun     = "RUN"
	cmdStep    = "STEP"
	cmdSymbol  = "SYMBOL"
)

var commandTemplate = []string{
	cmdBreak + " %A",
	cmdBreak + " LIST",
	cmdBreak + " DROP %A",
	cmdBreak + " CLEAR",
	cmdCPU,
	cmdDisasm + " [%A] [%N] [%N]",
	cmdFrame + " [%N]",
	cmdHelp + " [%S]",
	cmdLoad + " %F",
	cmdLog + " [%N]",
	cmdMem + " %A [%N] [(RAM|STACK|GLOBAL)]",
	cmdMemviz + " %F",
	cmdPoke + " %A %N",
	cmdQuit,
	cmdRAMDisk,
	cmdRegs,
	cmdReset,
	cmdRun,
	cmdStep + " [%N]",
	cmdSymbol + " %S",
	cmdSymbol + " LIST",
}

var help = map[string]string{
	cmdBreak:   "Halt the emulation when the PC reaches an address. BREAK LIST lists the breakpoints, BREAK DROP removes one and BREAK CLEAR removes them all",
	cmdCPU:     "Display the current state of the CPU. Same as REGS",
	cmdDisasm:  "Disassemble memory around the address (default PC). The first number is the number of lines (default 20) and the second is how many of those lines come before the address (default 6)",
	cmdFrame:   "Run the emulation for the number of frames (default 1). Stops early if a breakpoint is reached",
	cmdHelp:    "Lists commands and provides help for individual debugger commands",
	cmdLoad:    "Load binary into memory and reset the machine",
	cmdLog:     "Display the most recent entries in the log (default 10)",
	cmdMem:     "Display memory from the address (default length 16). The address space is RAM by default",
	cmdMemviz:  "Write a graphviz dot file of the machine state",
	cmdPoke:    "Write one byte to the address in the RAM address space",
	cmdQuit:    "Exits the debugger",
	cmdRAMDisk: "Display the RAM disk mapping",
	cmdRegs:    "Display the current state of the CPU",
	cmdReset:   "Reset the machine. Memory is not cleared",
	cmdRun:     "Run emulation until a breakpoint is reached or CTRL-C is pressed",
	cmdStep:    "Execute the number of instructions (default 1)",
	cmdSymbol:  "Search for the address of a label. SYMBOL LIST lists every label",
}

// default arguments for commands.
const (
	defaultDisasmLines  = 20
	defaultDisasmBefore = 6
	defaultMemLen       = 16
	defaultLogLen       = 10
)

var debuggerCommands *commandline.Commands

func init() {
	var err error

	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(fmt.Errorf("error compiling command template: %w", err))
	}
	debuggerCommands.AddHelp(help)
}

// parseCommand scans user input for valid commands and acts upon it.
func (dbg *Debugger) parseCommand(userInput string) error {
	tokens := commandline.TokeniseInput(userInput)
	if tokens.Len() == 0 {
		return nil
	}

	command, _ := tokens.Peek()
	command = strings.ToUpper(command)

	if !debuggerCommands.HasKeyword(command) {
		return curated.Errorf(UnknownCommand, command)
	}

	if err := debuggerCommands.ValidateTokens(tokens); err != nil {
		return curated.Errorf(CommandError, err)
	}

	dbg.printLine(terminal.StyleEcho, tokens.String())

	// skip keyword
	tokens.Get()

	switch command {
	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLines(terminal.StyleHelp, debuggerCommands.Help(keyword))
		} else {
			dbg.printLines(terminal.StyleHelp, debuggerCommands.HelpOverview())
		}

	case cmdQuit:
		dbg.setState(govern.Ending)

	case cmdStep:
		n, err := dbg.getCount(tokens, 1, 1)
		if err != nil {
			return err
		}
		return dbg.step(n)

	case cmdFrame:
		n, err := dbg.getCount(tokens, 1, 1)
		if err != nil {
			return err
		}
		return dbg.frame(n)

	case cmdRun:
		return dbg.run()

	case cmdDisasm:
		addr := dbg.machine.CPU.PC.Address()
		if s, ok := tokens.Get(); ok {
			a, err := dbg.parseAddress(s)
			if err != nil {
				return err
			}
			addr = a
		}
		lines, err := dbg.getCount(tokens, defaultDisasmLines, 1)
		if err != nil {
			return err
		}
		before, err := dbg.getCount(tokens, defaultDisasmBefore, 0)
		if err != nil {
			return err
		}
		for _, l := range dbg.disasm.Listing(addr, lines, before, dbg.machine.CPU.HL()) {
			dbg.printLine(terminal.StyleCPUStep, l)
		}

	case cmdRegs, cmdCPU:
		dbg.printCPU()

	case cmdMem:
		return dbg.mem(tokens)

	case cmdPoke:
		s, _ := tokens.Get()
		addr, err := dbg.parseAddress(s)
		if err != nil {
			return err
		}
		s, _ = tokens.Get()
		v, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return curated.Errorf(CommandError, fmt.Sprintf("poke value must be a byte (%s)", s))
		}
		dbg.machine.Mem.Write(addr, uint8(v), memory.RAM)
		dbg.printLine(terminal.StyleFeedback, "0x%04x -> 0x%02x", addr, v)

	case cmdLoad:
		filename, _ := tokens.Get()
		if err := dbg.machine.LoadROM(filename); err != nil {
			return curated.Errorf(CommandError, err)
		}
		dbg.printLine(terminal.StyleFeedback, "loaded %s", filename)

	case cmdReset:
		dbg.machine.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRAMDisk:
		dbg.printLine(terminal.StyleInstrument, dbg.machine.Mem.Mapping.String())

	case cmdLog:
		n, err := dbg.getCount(tokens, defaultLogLen, 1)
		if err != nil {
			return err
		}
		logger.Tail(printLineWriter{dbg: dbg, sty: terminal.StyleLog}, n)

	case cmdMemviz:
		filename, _ := tokens.Get()
		if err := dbg.memviz(filename); err != nil {
			return curated.Errorf(CommandError, err)
		}
		dbg.printLine(terminal.StyleFeedback, "memviz written to %s", filename)

	case cmdBreak:
		return dbg.breakCommand(tokens)

	case cmdSymbol:
		s, _ := tokens.Get()
		if strings.ToUpper(s) == "LIST" {
			dbg.disasm.Symbols.ListLabels(printLineWriter{dbg: dbg, sty: terminal.StyleFeedback})
			return nil
		}
		addr, err := dbg.disasm.Symbols.Search(s)
		if err != nil {
			return curated.Errorf(CommandError, err)
		}
		dbg.printLine(terminal.StyleFeedback, "%s -> 0x%04x", s, addr)
	}

	return nil
}

func (dbg *Debugger) breakCommand(tokens *commandline.Tokens) error {
	s, _ := tokens.Get()

	switch strings.ToUpper(s) {
	case "LIST":
		dbg.printLines(terminal.StyleFeedback, dbg.breakpoints.list(dbg.disasm.Symbols.GetLabel))
		return nil

	case "CLEAR":
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		return nil

	case "DROP":
		// a label called DROP can still be used as a breakpoint if the
		// command is not followed by another argument
		if t, ok := tokens.Get(); ok {
			addr, err := dbg.parseAddress(t)
			if err != nil {
				return err
			}
			if err := dbg.breakpoints.drop(addr); err != nil {
				return curated.Errorf(CommandError, err)
			}
			dbg.printLine(terminal.StyleFeedback, "breakpoint at 0x%04x dropped", addr)
			return nil
		}
	}

	addr, err := dbg.parseAddress(s)
	if err != nil {
		return err
	}
	if err := dbg.breakpoints.add(addr); err != nil {
		return curated.Errorf(CommandError, err)
	}

	return nil
}

func (dbg *Debugger) mem(tokens *commandline.Tokens) error {
	addrStr, _ := tokens.Get()

	n, err := dbg.getCount(tokens, defaultMemLen, 1)
	if err != nil {
		return err
	}

	space := memory.RAM
	if s, ok := tokens.Get(); ok {
		switch strings.ToUpper(s) {
		case "STACK":
			space = memory.STACK
		case "GLOBAL":
			space = memory.GLOBAL
		}
	}

	// addresses in the GLOBAL space can be outside of the 16 bit range
	var addr uint32
	if space == memory.GLOBAL {
		a, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(addrStr), "0x"), 16, 32)
		if err != nil {
			return curated.Errorf(CommandError, fmt.Sprintf("invalid global address (%s)", addrStr))
		}
		addr = uint32(a) % uint32(dbg.machine.Mem.Len())
	} else {
		a, err := dbg.parseAddress(addrStr)
		if err != nil {
			return err
		}
		addr = uint32(a)
	}

	read := func(a uint32) uint8 {
		if space == memory.GLOBAL {
			return dbg.machine.Mem.Peek(a)
		}
		return dbg.machine.Mem.Read(uint16(a), space)
	}

	dbg.printLines(terminal.StyleInstrument, hexDump(addr, n, read))

	return nil
}

func (dbg *Debugger) printCPU() {
	mc := dbg.machine.CPU
	dbg.printLine(terminal.StyleInstrument, mc.String())
	dbg.printLine(terminal.StyleInstrument, "B=%s C=%s D=%s E=%s H=%s L=%s", mc.B, mc.C, mc.D, mc.E, mc.H, mc.L)
	dbg.printLine(terminal.StyleInstrument, "INTE=%v IFF=%v HLTA=%v cycles=%d", mc.INTE, mc.IFF, mc.HLTA, mc.Cycles)
	dbg.printLine(terminal.StyleInstrument, "raster: %s", dbg.machine.Raster.GetCoords())
}

// parseAddress resolves the string as a label or, failing that, as a
// hexadecimal number.
func (dbg *Debugger) parseAddress(s string) (uint16, error) {
	if a, err := dbg.disasm.Symbols.Search(s); err == nil {
		return a, nil
	}
	if a, ok := symbols.ParseAddress(s); ok {
		return a, nil
	}
	return 0, curated.Errorf(CommandError, fmt.Sprintf("unrecognised address (%s)", s))
}

// getCount returns the next token as a number or the default value if there
// is no next token. Counts less than least are an error.
func (dbg *Debugger) getCount(tokens *commandline.Tokens, def int, least int) (int, error) {
	s, ok := tokens.Get()
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil || int(n) < least {
		return 0, curated.Errorf(CommandError, fmt.Sprintf("invalid count (%s)", s))
	}
	return int(n), nil
}

// hexDump formats n bytes from the address, 16 to a line.
func hexDump(addr uint32, n int, read func(uint32) uint8) string {
	s := strings.Builder{}
	for i := 0; i < n; i++ {
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("0x%05x:", addr+uint32(i)))
		}
		s.WriteString(fmt.Sprintf(" %02x", read(addr+uint32(i))))
	}
	return s.String()
}
