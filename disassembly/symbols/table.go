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
	"fmt"
	"sort"
	"strings"
)

// table maps addresses to labels. it also keeps track of the widest label in
// the table.
type table struct {
	byAddr map[uint16][]string

	// sorted array of keys to the byAddr map
	sortedIdx []uint16

	// the longest label in the table. when there is more than one label for
	// an address the width is the width of the combined label
	maxWidth int
}

// newTable is the preferred method of initialisation for the table type.
func newTable() *table {
	return &table{
		byAddr:    make(map[uint16][]string),
		sortedIdx: make([]uint16, 0),
	}
}

func (t *table) calcMaxWidth() {
	t.maxWidth = 0
	for _, l := range t.byAddr {
		if w := len(strings.Join(l, " ")); w > t.maxWidth {
			t.maxWidth = w
		}
	}
}

func (t table) String() string {
	s := strings.Builder{}
	for _, a := range t.sortedIdx {
		s.WriteString(fmt.Sprintf("0x%04x -> %s\n", a, strings.Join(t.byAddr[a], " ")))
	}
	return s.String()
}

// make sure labels are normalised:
//
//	no leading or trailing space
//	internal space compressed and replaced with underscores
func normaliseLabel(label string) string {
	return strings.Join(strings.Fields(label), "_")
}

// add label to address. returns false if the label is already attached to the
// address.
func (t *table) add(addr uint16, label string) bool {
	label = normaliseLabel(label)
	if label == "" {
		return false
	}

	l, ok := t.byAddr[addr]
	for _, v := range l {
		if v == label {
			return false
		}
	}

	t.byAddr[addr] = append(l, label)
	if !ok {
		t.sortedIdx = append(t.sortedIdx, addr)
		sort.Sort(t)
	}
	t.calcMaxWidth()

	return true
}

// remove all labels from address.
func (t *table) remove(addr uint16) bool {
	if _, ok := t.byAddr[addr]; !ok {
		return false
	}

	delete(t.byAddr, addr)
	for i := range t.sortedIdx {
		if t.sortedIdx[i] == addr {
			t.sortedIdx = append(t.sortedIdx[:i], t.sortedIdx[i+1:]...)
			break // for loop
		}
	}
	t.calcMaxWidth()

	return true
}

func (t *table) get(addr uint16) ([]string, bool) {
	l, ok := t.byAddr[addr]
	return l, ok
}

// search for label. label should be normalised and in upper case. the search
// is made in address order so that the result is predictable when the same
// label appears more than once.
func (t *table) search(label string) (string, uint16, bool) {
	for _, a := range t.sortedIdx {
		for _, v := range t.byAddr[a] {
			if strings.ToUpper(v) == label {
				return v, a, true
			}
		}
	}
	return "", 0, false
}

// Len implements the sort.Interface.
func (t table) Len() int {
	return len(t.sortedIdx)
}

// Less implements the sort.Interface.
func (t table) Less(i, j int) bool {
	return t.sortedIdx[i] < t.sortedIdx[j]
}

// Swap implements the sort.Interface.
func (t table) Swap(i, j int) {
	t.sortedIdx[i], t.sortedIdx[j] = t.sortedIdx[j], t.sortedIdx[i]
}
