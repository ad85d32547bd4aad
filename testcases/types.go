// seehuhn.de/go/floodfill - scanline flood fill for pixel buffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases defines named flood fill scenarios.
//
// Pictures are given as one string per row and one byte per pixel, so
// that expected results can be read at a glance.  Larger scenarios draw
// their borders from vector outlines instead.
package testcases

import (
	"fmt"
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/floodfill"
)

// TestCase defines a single flood fill test.
type TestCase struct {
	Name    string    // lowercase a-z and _ only
	Picture []string  // initial pixels, one string per row
	Outline path.Path // optional; painted with Ink using the even-odd rule
	Ink     byte
	Seed    image.Point
	Op      Operation
	Want    []string // expected result (nil: check against a reference fill only)
}

// Operation is the fill operation to apply.
type Operation interface {
	isOperation()
}

// Fill replaces the region of the seed color, see [floodfill.Fill].
type Fill struct {
	Color byte
}

func (Fill) isOperation() {}

// Border floods everything up to the border color, see
// [floodfill.FillBorder].
type Border struct {
	Color  byte
	Border byte
}

func (Border) isOperation() {}

// From computes the region on the picture and paints it onto Target,
// see [floodfill.FillFrom].  Want describes the target.
type From struct {
	Target []string
	Color  byte
}

func (From) isOperation() {}

// Grid returns the initial pixels of the test case, including the
// painted outline.
func (tc TestCase) Grid() *floodfill.Grid[byte] {
	g := Parse(tc.Picture)
	if tc.Outline != nil {
		p := floodfill.NewPainter(rect.Rect{URx: float64(g.Width), URy: float64(g.Height)})
		p.FillEvenOdd(tc.Outline, floodfill.Paint(g, tc.Ink))
	}
	return g
}

// Run applies the operation of the test case using f.  For [From]
// operations the returned grid is the target, otherwise it is the
// filled picture.
func (tc TestCase) Run(f *floodfill.Filler[byte]) (*floodfill.Grid[byte], error) {
	g := tc.Grid()
	switch op := tc.Op.(type) {
	case Fill:
		return g, f.Fill(g, tc.Seed, op.Color)
	case Border:
		return g, f.FillBorder(g, tc.Seed, op.Color, op.Border)
	case From:
		dst := Parse(op.Target)
		return dst, f.FillFrom(dst, g, tc.Seed, op.Color)
	}
	return nil, fmt.Errorf("%s: unknown operation %T", tc.Name, tc.Op)
}

// Mask returns the region of the test case as a mask on the picture.
// For [Border] operations the region is found by filling a copy with
// the byte 0, which never occurs in pictures.
func (tc TestCase) Mask(f *floodfill.Filler[byte]) (*floodfill.Mask, error) {
	g := tc.Grid()
	var indices []int
	var err error
	switch op := tc.Op.(type) {
	case Fill:
		indices, err = f.Indices(g, tc.Seed, op.Color)
	case From:
		indices, err = f.Indices(g, tc.Seed, op.Color)
	case Border:
		err = f.FillBorder(g, tc.Seed, 0, op.Border)
		if op.Border != 0 {
			for idx, c := range g.Pix {
				if c == 0 {
					indices = append(indices, idx)
				}
			}
		}
	default:
		err = fmt.Errorf("%s: unknown operation %T", tc.Name, tc.Op)
	}
	if err != nil {
		return nil, err
	}
	return &floodfill.Mask{Width: g.Width, Height: g.Height, Indices: indices}, nil
}

// Parse converts a picture into a grid.  All rows must have the same
// length.
func Parse(rows []string) *floodfill.Grid[byte] {
	if len(rows) == 0 {
		return &floodfill.Grid[byte]{}
	}
	g := floodfill.NewGrid[byte](len(rows[0]), len(rows))
	for y, row := range rows {
		copy(g.Pix[y*g.Width:(y+1)*g.Width], row)
	}
	return g
}

// Format converts a grid back into a picture.
func Format(g *floodfill.Grid[byte]) []string {
	rows := make([]string, g.Height)
	for y := range rows {
		rows[y] = string(g.Pix[y*g.Width : (y+1)*g.Width])
	}
	return rows
}

// blank returns a width×height picture of a single color.
func blank(width, height int, c byte) []string {
	row := make([]byte, width)
	for i := range row {
		row[i] = c
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = string(row)
	}
	return rows
}

// stripes returns a width×height picture of diagonal stripes in the
// given colors.
func stripes(width, height int, colors string) []string {
	rows := make([]string, height)
	row := make([]byte, width)
	for y := range rows {
		for x := range row {
			row[x] = colors[(x+y)%len(colors)]
		}
		rows[y] = string(row)
	}
	return rows
}

// replace returns a copy of the picture with every pixel of color old
// changed to new.
func replace(rows []string, old, new byte) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		b := []byte(row)
		for j := range b {
			if b[j] == old {
				b[j] = new
			}
		}
		out[i] = string(b)
	}
	return out
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{pt(x, y)})
}

func lineTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{pt(x, y)})
}

func cubeTo(yield func(path.Command, []vec.Vec2) bool, x1, y1, x2, y2, x3, y3 float64) bool {
	return yield(path.CmdCubeTo, []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)})
}

func closePath(yield func(path.Command, []vec.Vec2) bool) bool {
	return yield(path.CmdClose, nil)
}
