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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() and are identified by the pattern
// used to create them, rather than by the formatted message.
//
//	const LoadError = "load: %v"
//
//	err := curated.Errorf(LoadError, "file too large")
//	if curated.Is(err, LoadError) {
//		...
//	}
//
// Has() looks for the pattern anywhere in a chain of curated errors. IsAny()
// answers whether an error was created by the curated package at all. We
// think of curated errors as "expected" errors, ie. errors that are a normal
// part of operation and which should be reported to the user. Uncurated errors
// are unexpected and probably indicate a bug.
//
// The Error() implementation normalises the message by removing a repeated
// leading part from the error chain. For example, the following nesting:
//
//	curated.Errorf("memory: %v", curated.Errorf("memory: %v", "rom too large"))
//
// prints as "memory: rom too large" and not "memory: memory: rom too large".
// Parts are separated by the sub-string ": ".
//
// Patterns should be declared as exported constants in the package that
// generates them.
package curated
