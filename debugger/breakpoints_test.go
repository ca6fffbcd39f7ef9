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

func (trm *mockTerm) testBreakpoints() {
	// debugger starts off with no breakpoints
	trm.sndInput("BREAK LIST")
	trm.cmpOutput("no breakpoints")

	// add a break. this should be successful so there should be no feedback
	trm.sndInput("BREAK 0x100")
	trm.cmpOutput("")

	trm.sndInput("BREAK LIST")
	trm.cmpOutput(" 0: 0x0100")

	// try to add same break. check error feedback
	trm.sndInput("BREAK $0100")
	trm.cmpOutput("debugger: breakpoint: already exists (0x0100)")

	// labels can be used instead of addresses
	trm.sndInput("BREAK loop")
	trm.cmpOutput("")

	trm.sndInput("BREAK LIST")
	trm.cmpOutput(" 1: 0x0100")

	trm.sndInput("BREAK DROP 0x200")
	trm.cmpOutput("debugger: breakpoint: no breakpoint at 0x0200")

	trm.sndInput("BREAK DROP 100")
	trm.cmpOutput("breakpoint at 0x0100 dropped")

	trm.sndInput("BREAK LIST")
	trm.cmpOutput(" 0: 0x0004 (LOOP)")

	trm.sndInput("BREAK nowhere")
	trm.cmpOutput("debugger: unrecognised address (nowhere)")

	trm.sndInput("BREAK CLEAR")
	trm.cmpOutput("breakpoints cleared")

	trm.sndInput("BREAK LIST")
	trm.cmpOutput("no breakpoints")
}
