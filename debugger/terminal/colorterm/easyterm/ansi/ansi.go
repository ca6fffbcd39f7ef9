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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color. the index of the color name is the ANSI color number.
var colors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

const colDefault = 9

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attributes.
var attributes = map[string]int{
	"bold":      1,
	"italic":    3,
	"underline": 4,
	"inverse":   7,
	"strike":    9,
}

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false, false)

	for _, c := range colors[1:] {
		Pens[c], _ = ColorBuild(c, "", "", true, false)
		DimPens[c], _ = ColorBuild(c, "", "", false, false)
	}

	for a := range attributes {
		PenStyles[a], _ = ColorBuild("", "", a, false, false)
	}
}

func colorCode(name string, target int) (string, error) {
	name = strings.ToLower(name)
	if name == "normal" {
		return fmt.Sprintf("%d%d", target, colDefault), nil
	}
	for i, c := range colors {
		if c == name {
			return fmt.Sprintf("%d%d", target, i), nil
		}
	}
	return "", fmt.Errorf("ansi: unknown color (%s)", name)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute. Empty strings for pen, paper or
// attribute leave that part of the sequence out.
//
// An empty sequence is the equivalent of the NormalPen.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	codes := make([]string, 0, 3)

	if pen != "" {
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		c, err := colorCode(pen, t)
		if err != nil {
			return "", err
		}
		codes = append(codes, c)
	}

	if paper != "" {
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		c, err := colorCode(paper, t)
		if err != nil {
			return "", err
		}
		codes = append(codes, c)
	}

	if attribute != "" && strings.ToLower(attribute) != "normal" {
		a, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		codes = append(codes, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorForwardOne is the CSI sequence to move the cursor forward one
// character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne is the CSI sequence to move the cursor backward one
// character.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
