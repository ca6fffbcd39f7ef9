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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8080/test"
)

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	fmt.Fprintf(w, "hello\nworld\n")
	test.ExpectSuccess(t, w.Compare("hello\nworld\n"))

	l := w.Lines()
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0], "hello")
	test.ExpectEquality(t, l[1], "world")

	w.Clear()
	test.ExpectEquality(t, w.String(), "")
	test.ExpectEquality(t, len(w.Lines()), 0)
}

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("failed"))

	var err error
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, uint16(10), 10)
	test.ExpectInequality(t, "a", "b")
}
