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

package commandline

import (
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
type TabCompletion struct {
	cmds *Commands

	matches []string
	match   int

	// the input before the word being completed
	head string

	// the most recent completion. if the next call to Complete() is with the
	// same string then the next match in the list is used
	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match allowed by the template.
//
// Subsequent calls to Complete() without an intervening call to Reset() will
// cycle through the original available options.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.head + tc.matches[tc.match] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	toks := strings.Fields(input)

	// completing an empty word if the input ends with a space
	var prefix string
	if len(toks) > 0 && !strings.HasSuffix(input, " ") {
		prefix = toks[len(toks)-1]
		toks = toks[:len(toks)-1]
	}

	idx := len(toks)
	if idx == 0 && prefix == "" {
		return input
	}

	tc.matches = tc.cmds.completions(append(toks, prefix), idx, prefix)
	if len(tc.matches) == 0 {
		return input
	}

	tc.head = input[:len(input)-len(prefix)]
	tc.lastCompletion = tc.head + tc.matches[0] + " "

	return tc.lastCompletion
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.head = ""
	tc.lastCompletion = ""
}
