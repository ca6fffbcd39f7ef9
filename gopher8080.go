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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8080/debugger"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8080/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/disassembly/symbols"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/performance"
	"github.com/jetsetilly/gopher8080/statsview"
	"github.com/jetsetilly/gopher8080/version"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// status of the program.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 0, "number of frames to run for (0 to run until interrupted). the emulation runs as quickly as possible")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))
	md.AdditionalHelp("the 8080 binary is loaded at 0x0100")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("8080 binary required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m := hardware.NewMachine()
	if err := m.LoadROM(md.GetArg(0)); err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err = m.RunForFrameCount(*frames, func(frame int) (govern.State, error) {
		select {
		case <-intChan:
			fmt.Println("\r")
			return govern.Ending, nil
		default:
		}

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s\n", m.Raster.GetCoords())

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	symbolsFile := md.AddString("symbols", "", "symbols file to use for labels")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	sym, err := symbols.ReadSymbolsFile(*symbolsFile)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(hardware.NewMachine(), term, sym)
	if err != nil {
		return err
	}

	return dbg.Start(filename)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	from := md.AddString("from", "0x0100", "address (or label) to start the disassembly from")
	lines := md.AddInt("lines", 32, "number of lines to list")
	before := md.AddInt("before", 0, "number of lines to list before the from address")
	symbolsFile := md.AddString("symbols", "", "symbols file to use for labels")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("8080 binary required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	sym, err := symbols.ReadSymbolsFile(*symbolsFile)
	if err != nil {
		return err
	}

	addr, err := sym.Search(*from)
	if err != nil {
		var ok bool
		addr, ok = symbols.ParseAddress(*from)
		if !ok {
			return fmt.Errorf("unrecognised address (%s)", *from)
		}
	}

	dsm, err := disassembly.FromFile(md.GetArg(0), sym)
	if err != nil {
		return err
	}

	dsm.Write(md.Output, addr, *lines, *before, 0)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: none, cpu, mem, trace (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("8080 binary required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, md.GetArg(0), *duration)
}

func showVersion(md *modalflag.Modes) {
	v, r, release := version.Version()
	if release {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
		return
	}
	fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
}
