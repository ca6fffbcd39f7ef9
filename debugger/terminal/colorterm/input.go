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

package colorterm

import (
	"bytes"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/terminal"
	"github.com/jetsetilly/gopher8080/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8080/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.EasyTerm.TermPrint(ansi.NormalPen)

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// liveInput is used to store the latest input when we scroll through
	// history. we don't want to lose what we've typed in case the user wants
	// to resume where we left off
	liveInput := make([]byte, cap(input))
	liveN := 0

	// the method for cursor placement is as follows:
	//	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in it's initial position
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(prompt.String())))

	var intEvents chan os.Signal
	if events != nil {
		intEvents = events.IntEvents
	}

	// moves the input buffer to the specified history entry
	recall := func(entry []byte) {
		copy(input, entry)
		d := len(entry) - cursor
		n = len(entry)
		cursor = n
		ct.EasyTerm.TermPrint(ansi.CursorMove(d))
	}

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.TermPrintLine(prompt.Style(), ansi.ClearLine+prompt.String())
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		var rr readRune
		select {
		case <-intEvents:
			ct.EasyTerm.TermPrint("\r\n")
			return 0, curated.Errorf(terminal.UserInterrupt)
		case rr = <-ct.runes:
		}

		if rr.err != nil {
			return n, rr.err
		}

		r := rr.r

		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor

				if n+d <= len(input) {
					// append everything after the cursor to the new string and
					// copy into input array
					s += string(input[cursor:n])
					copy(input, []byte(s))

					// advance character to end of completed word
					ct.EasyTerm.TermPrint(ansi.CursorMove(d))
					cursor += d
					n += d
				}
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\r\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			ct.EasyTerm.TermPrint("\r\n")
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			// add to history if input is not the same as the last history
			// entry
			if n > 0 {
				l := len(ct.commandHistory)
				if l == 0 || !bytes.Equal(ct.commandHistory[l-1], input[:n]) {
					nh := make([]byte, n)
					copy(nh, input[:n])
					ct.commandHistory = append(ct.commandHistory, nh)
				}
			}

			ct.EasyTerm.TermPrint("\r\n")

			// the carriage return is counted but not placed in the buffer
			return n + 1, nil

		case easyterm.KeyEsc:
			rr := <-ct.runes
			if rr.err != nil {
				return n, rr.err
			}

			if rr.r != easyterm.EscCursor {
				continue // for loop
			}

			rr = <-ct.runes
			if rr.err != nil {
				return n, rr.err
			}

			switch rr.r {
			case easyterm.CursorUp:
				if history > 0 {
					// if we're at the end of the command history then store
					// the current input for possible later editing
					if history == len(ct.commandHistory) {
						copy(liveInput, input[:n])
						liveN = n
					}
					history--
					recall(ct.commandHistory[history])
				}

			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					recall(ct.commandHistory[history])
				} else if history == len(ct.commandHistory)-1 {
					history++
					recall(liveInput[:liveN])
				}

			case easyterm.CursorForward:
				if cursor < n {
					ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}

			case easyterm.EscHome:
				ct.EasyTerm.TermPrint(ansi.CursorMove(-cursor))
				cursor = 0

			case easyterm.EscEnd:
				ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
				cursor = n

			case easyterm.EscDelete:
				// delete key sends an additional tilde character
				<-ct.runes

				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				if n+m > len(input) {
					continue // for loop
				}
				copy(input[cursor+m:], input[cursor:n])
				copy(input[cursor:], er[:m])
				ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
