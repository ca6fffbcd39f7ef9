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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab-completion engine, implementing the
// terminal.TabCompletion interface.
//
// The Commands type is the base product of the package. To create an instance
// of Commands, use ParseCommandTemplate() with a suitable template. An example
// template would be:
//
//	template := []string{
//		"LIST",
//		"PRINT [%S]",
//		"SORT (RISING|FALLING)",
//		"PEEK %A [%N]",
//	}
//
// Each entry in the template is one form of a command. A command can have more
// than one form and input is valid if it matches any one of them. The first
// word of each form is the command keyword. The arguments that follow are
// either a group of literals, separated by the pipe symbol and enclosed in
// parentheses, or one of the following placeholders:
//
//	%N	numeric argument (decimal, or hexadecimal with a 0x or $ prefix)
//	%A	address argument (a number or a label)
//	%S	string argument
//	%F	filename argument
//
// Placeholders do not need to be enclosed. Any argument enclosed in square
// brackets is optional. All arguments after an optional argument must also be
// optional.
//
// Once parsed, the resulting Commands instance can be used to validate input.
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("list")
//	err := cmds.ValidateTokens(toks)
//	if err != nil {
//		panic("validation failed")
//	}
//
// Note that all validation is case-insensitive.
//
// The TabCompletion type is used to transform input such that it more closely
// resembles a valid command according to the supplied template.
//
//	tbc := NewTabCompletion(cmds)
//	inp := tbc.Complete("LIS")
//
// In this instance the value of inp will be "LIST " (note the trailing space).
// Given a number of options to use for the completion, the first option will
// be returned first followed by the second, third, etc. on subsequent calls to
// Complete(). A tab completion session can be terminated with a call to
// Reset().
package commandline
