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

// Package statsview serves live runtime statistics of the emulator process
// over HTTP. It is meant for watching the garbage collector and goroutines
// while the machine is running flat out in the RUN mode (gopher8080 run
// -stats).
//
// The server only exists when the program is built with the statsview build
// tag:
//
//	go build -tags statsview .
//
// Without the tag, Available() returns false and Launch() only reports that
// the server is missing.
//
// Once launched, the charts are at:
//
//	localhost:12600/debug/statsview
//
// and the standard pprof pages at:
//
//	localhost:12600/debug/pprof/
package statsview

// Address of the stats server.
const Address = "localhost:12600"

// Page is the path of the charts on the stats server.
const Page = "/debug/statsview"
