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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Flags are
// added between the two calls in the same way as they would be with the flag
// package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//	_, _ = md.Parse()
//
// The list of sub-modes for a level of parsing is given with AddSubModes().
// The first argument after the flags is compared against the list. If it
// matches then that becomes the selected mode, otherwise the first mode in the
// list is selected. Mode() returns the most recently selected mode.
//
// For the next level of parsing, call NewMode() and add the flags and
// sub-modes for that mode before calling Parse() again:
//
//	md.AddSubModes("RUN", "DEBUG")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		term := md.AddString("term", "COLOR", "terminal type")
//		_, _ = md.Parse()
//	}
//
// Help is handled automatically. If the -help flag is given then the flags and
// sub-modes for the current mode are printed to the Output writer and Parse()
// returns ParseHelp.
package modalflag
