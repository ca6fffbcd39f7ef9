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

package symbols

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/logger"
)

// Sentinal error patterns.
const (
	SymbolsError    = "symbols: %v"
	SymbolsNotFound = "symbols: no symbol named %s"
)

// Symbols contains all currently defined labels.
type Symbols struct {
	labels *table
	crit   sync.Mutex
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// In many instances however, ReadSymbolsFile() might be more appropriate.
func NewSymbols() *Symbols {
	return &Symbols{
		labels: newTable(),
	}
}

// ReadSymbolsFile creates a new Symbols instance from the named file. An empty
// filename returns an empty symbols table and no error.
func ReadSymbolsFile(filename string) (*Symbols, error) {
	sym := NewSymbols()
	if filename == "" {
		return sym, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return sym, curated.Errorf(SymbolsError, err)
	}

	var n int
	for _, ln := range strings.Split(string(data), "\n") {
		p := strings.Fields(ln)
		if len(p) < 2 {
			continue // for loop
		}
		if strings.HasPrefix(p[0], ";") || strings.HasPrefix(p[0], "#") {
			continue // for loop
		}

		// label first is preferred over address first
		if addr, ok := ParseAddress(p[1]); ok {
			if sym.AddLabel(addr, p[0]) {
				n++
			}
		} else if addr, ok := ParseAddress(p[0]); ok {
			if sym.AddLabel(addr, p[1]) {
				n++
			}
		}
	}

	logger.Logf(logger.Allow, "symbols", "%d labels read from %s", n, filename)

	return sym, nil
}

// ParseAddress parses a hexadecimal address. The string can be prefixed with
// 0x or $.
func ParseAddress(s string) (uint16, bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	if s == "" {
		return 0, false
	}
	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(a), true
}

// AddLabel attaches a label to an address. Returns false if the label is
// empty or is already attached to the address.
func (sym *Symbols) AddLabel(addr uint16, label string) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.labels.add(addr, label)
}

// RemoveLabels removes every label attached to the address.
func (sym *Symbols) RemoveLabels(addr uint16) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.labels.remove(addr)
}

// GetLabel returns the labels attached to the address as a single string.
// Multiple labels are separated by a space.
func (sym *Symbols) GetLabel(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	if l, ok := sym.labels.get(addr); ok {
		return strings.Join(l, " "), true
	}
	return "", false
}

// Search returns the address of the label. Matching is case-insensitive.
func (sym *Symbols) Search(label string) (uint16, error) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	if _, addr, ok := sym.labels.search(strings.ToUpper(normaliseLabel(label))); ok {
		return addr, nil
	}
	return 0, curated.Errorf(SymbolsNotFound, label)
}

// LabelWidth returns the maximum number of characters required by a label.
func (sym *Symbols) LabelWidth() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.labels.maxWidth
}

// Len returns the number of addresses that have one or more labels.
func (sym *Symbols) Len() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.labels.Len()
}
