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

// Package logger is the central log repository for gopher8080. There is one
// central log for the application, accessed through the package level
// functions, but additional logs can be created with NewLogger().
//
// Every call to Log() or Logf() requires an implementation of the Permission
// interface. This allows the environment making the request to decide whether
// logging is appropriate. The Allow value should be used when a log entry
// should always be made.
//
// Adjacent entries with the same tag and detail are collapsed into one entry
// with a repeat count.
package logger
