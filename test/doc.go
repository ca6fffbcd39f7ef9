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

// Package test bundles helper functions for use with the standard go test
// harness. The functions remove the boilerplate of comparing values and
// reporting failures.
//
// The Expect*() functions report a failure but allow the test to continue. The
// Demand*() functions stop the test immediately.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. A bool is successful if it is true and an error is successful if it is
// nil. Note that an untyped nil is considered a success. This is because a
// nil error value passed through an interface loses its type.
//
// The Writer type implements the io.Writer interface and can be used to
// capture output for later comparison.
package test
