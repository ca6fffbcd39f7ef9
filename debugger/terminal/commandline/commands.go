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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
)

// Sentinal error patterns.
const (
	TemplateError   = "template: %v"
	ValidationError = "%s: %v"
)

// Placeholders that can be used in a command template.
const (
	placeholderNumeric  = 'N'
	placeholderAddress  = 'A'
	placeholderString   = 'S'
	placeholderFilename = 'F'
)

// an argument in a command form. either a placeholder or a list of literals.
type argument struct {
	placeholder byte
	literals    []string
	optional    bool
}

func (a argument) String() string {
	var s string
	switch a.placeholder {
	case placeholderNumeric:
		s = "<n>"
	case placeholderAddress:
		s = "<addr>"
	case placeholderString:
		s = "<string>"
	case placeholderFilename:
		s = "<file>"
	default:
		s = strings.Join(a.literals, "|")
		if len(a.literals) > 1 && !a.optional {
			s = fmt.Sprintf("(%s)", s)
		}
	}
	if a.optional {
		return fmt.Sprintf("[%s]", s)
	}
	return s
}

// match the argument against a token.
func (a argument) match(tok string) bool {
	switch a.placeholder {
	case placeholderNumeric:
		_, err := strconv.ParseUint(tok, 0, 32)
		return err == nil
	case placeholderAddress, placeholderString, placeholderFilename:
		return true
	}
	for _, l := range a.literals {
		if strings.EqualFold(l, tok) {
			return true
		}
	}
	return false
}

// a single form of a command.
type form []argument

func (f form) match(toks []string) bool {
	if len(toks) > len(f) {
		return false
	}
	for i, a := range f {
		if i >= len(toks) {
			return a.optional
		}
		if !a.match(toks[i]) {
			return false
		}
	}
	return true
}

// Commands is the result of parsing a command template.
type Commands struct {
	forms    map[string][]form
	keywords []string

	helps map[string]string
}

// ParseCommandTemplate turns a string representation of a command template
// into a machine friendly representation.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		forms: make(map[string][]form),
	}

	for _, t := range template {
		fields := strings.Fields(t)
		if len(fields) == 0 {
			return nil, curated.Errorf(TemplateError, "empty command")
		}

		keyword := strings.ToUpper(fields[0])
		if !isLiteral(keyword) {
			return nil, curated.Errorf(TemplateError, fmt.Sprintf("invalid keyword (%s)", fields[0]))
		}

		f := make(form, 0, len(fields)-1)
		optional := false
		for _, fld := range fields[1:] {
			a, err := parseArgument(fld)
			if err != nil {
				return nil, curated.Errorf(TemplateError, fmt.Sprintf("%s: %v", keyword, err))
			}
			if optional && !a.optional {
				return nil, curated.Errorf(TemplateError, fmt.Sprintf("%s: required argument after optional argument", keyword))
			}
			optional = a.optional
			f = append(f, a)
		}

		if _, ok := cmds.forms[keyword]; !ok {
			cmds.keywords = append(cmds.keywords, keyword)
		}
		cmds.forms[keyword] = append(cmds.forms[keyword], f)
	}

	sort.Strings(cmds.keywords)

	return cmds, nil
}

func isLiteral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '_' {
			return false
		}
	}
	return true
}

func parseArgument(s string) (argument, error) {
	var a argument

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return a, fmt.Errorf("unterminated optional argument (%s)", s)
		}
		a.optional = true
		s = s[1 : len(s)-1]
	}

	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return a, fmt.Errorf("unterminated group (%s)", s)
		}
		s = s[1 : len(s)-1]
	}

	if len(s) == 2 && s[0] == '%' {
		switch s[1] {
		case placeholderNumeric, placeholderAddress, placeholderString, placeholderFilename:
			a.placeholder = s[1]
			return a, nil
		}
		return a, fmt.Errorf("unknown placeholder (%s)", s)
	}

	for _, l := range strings.Split(s, "|") {
		if !isLiteral(l) {
			return a, fmt.Errorf("invalid literal (%s)", l)
		}
		a.literals = append(a.literals, strings.ToUpper(l))
	}

	return a, nil
}

// Keywords returns a sorted list of the command keywords.
func (cmds *Commands) Keywords() []string {
	return cmds.keywords
}

// HasKeyword returns true if the keyword (case-insensitive) is in the
// template.
func (cmds *Commands) HasKeyword(keyword string) bool {
	_, ok := cmds.forms[strings.ToUpper(keyword)]
	return ok
}

// ValidateTokens checks whether the tokens match one of the forms of the
// command named by the first token. The token traversal is reset before
// returning.
func (cmds *Commands) ValidateTokens(tokens *Tokens) error {
	defer tokens.Reset()

	if tokens.Len() == 0 {
		return nil
	}

	keyword := strings.ToUpper(tokens.tokens[0])
	forms, ok := cmds.forms[keyword]
	if !ok {
		return curated.Errorf(ValidationError, keyword, "unrecognised command")
	}

	for _, f := range forms {
		if f.match(tokens.tokens[1:]) {
			return nil
		}
	}

	return curated.Errorf(ValidationError, keyword, fmt.Sprintf("invalid arguments (%s)", strings.Join(tokens.tokens[1:], " ")))
}

// Usage returns the usage string for a command. Each form of the command is
// on a separate line.
func (cmds *Commands) Usage(keyword string) string {
	keyword = strings.ToUpper(keyword)

	s := strings.Builder{}
	for i, f := range cmds.forms[keyword] {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(keyword)
		for _, a := range f {
			s.WriteString(" ")
			s.WriteString(a.String())
		}
	}
	return s.String()
}

// AddHelp adds the help text for each command.
func (cmds *Commands) AddHelp(helps map[string]string) {
	cmds.helps = helps
}

// HelpOverview returns a columnised list of all commands.
func (cmds *Commands) HelpOverview() string {
	longest := 0
	for _, k := range cmds.keywords {
		if len(k) > longest {
			longest = len(k)
		}
	}
	cols := 80 / (longest + 3)
	colFmt := fmt.Sprintf("%%-%ds", longest+3)

	s := strings.Builder{}
	for i, k := range cmds.keywords {
		s.WriteString(fmt.Sprintf(colFmt, k))
		if i%cols == cols-1 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), " \n")
}

// Help returns the help (and usage for the command).
func (cmds *Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	helpTxt, ok := cmds.helps[keyword]
	if !ok {
		return fmt.Sprintf("no help for %s", keyword)
	}

	s := strings.Builder{}
	s.WriteString(helpTxt)
	if _, ok := cmds.forms[keyword]; ok {
		s.WriteString("\n\n  Usage:\n")
		for _, u := range strings.Split(cmds.Usage(keyword), "\n") {
			s.WriteString(fmt.Sprintf("    %s\n", u))
		}
	}

	return strings.TrimRight(s.String(), "\n")
}

// completions returns the possible completions for the token at position
// idx, given the tokens that precede it.
func (cmds *Commands) completions(toks []string, idx int, prefix string) []string {
	prefix = strings.ToUpper(prefix)

	var words []string
	seen := make(map[string]bool)
	add := func(w string) {
		if strings.HasPrefix(w, prefix) && !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}

	if idx == 0 {
		for _, k := range cmds.keywords {
			add(k)
		}
		return words
	}

	for _, f := range cmds.forms[strings.ToUpper(toks[0])] {
		if idx-1 >= len(f) {
			continue // for loop
		}

		// arguments before the one being completed must match
		ok := true
		for i := 1; i < idx; i++ {
			if !f[i-1].match(toks[i]) {
				ok = false
				break // for loop
			}
		}
		if !ok {
			continue // for loop
		}

		for _, l := range f[idx-1].literals {
			add(l)
		}
	}

	return words
}
