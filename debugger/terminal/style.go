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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has been
	// "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information as a result of an error. errors can be generated by the
	// emulation or the debugger
	StyleError

	// information as a result of user input
	StyleFeedback

	// disassembly output at cpu cycle boundaries
	StyleCPUStep

	// information about the machine
	StyleInstrument

	// entries from the central log
	StyleLog

	// the prompt styles. used when the terminal needs to redraw the prompt
	StylePromptCPUStep
	StylePromptConfirm
)

// IsPrompt returns true if style is one of the prompt styles.
func (sty Style) IsPrompt() bool {
	return sty == StylePromptCPUStep || sty == StylePromptConfirm
}
