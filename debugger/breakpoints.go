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

package debugger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
)

// Sentinal error patterns.
const (
	BreakpointExists   = "breakpoint: already exists (0x%04x)"
	BreakpointNotFound = "breakpoint: no breakpoint at 0x%04x"
)

// breakpoints halt the emulation when the PC reaches the address at an
// instruction boundary.
type breakpoints struct {
	addrs map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		addrs: make(map[uint16]bool),
	}
}

func (bp *breakpoints) add(addr uint16) error {
	if bp.addrs[addr] {
		return curated.Errorf(BreakpointExists, addr)
	}
	bp.addrs[addr] = true
	return nil
}

func (bp *breakpoints) drop(addr uint16) error {
	if !bp.addrs[addr] {
		return curated.Errorf(BreakpointNotFound, addr)
	}
	delete(bp.addrs, addr)
	return nil
}

func (bp *breakpoints) clear() {
	clear(bp.addrs)
}

// check returns true if there is a breakpoint at the address.
func (bp *breakpoints) check(addr uint16) bool {
	return bp.addrs[addr]
}

// sorted returns the breakpoint addresses in ascending order.
func (bp *breakpoints) sorted() []uint16 {
	l := make([]uint16, 0, len(bp.addrs))
	for a := range bp.addrs {
		l = append(l, a)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

// list the breakpoints. the label function returns the labels attached to an
// address, if any.
func (bp *breakpoints) list(label func(uint16) (string, bool)) string {
	if len(bp.addrs) == 0 {
		return "no breakpoints"
	}

	s := strings.Builder{}
	for i, a := range bp.sorted() {
		s.WriteString(fmt.Sprintf("%2d: 0x%04x", i, a))
		if l, ok := label(a); ok {
			s.WriteString(fmt.Sprintf(" (%s)", l))
		}
		s.WriteString("\n")
	}
	return s.String()
}
