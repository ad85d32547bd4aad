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

package floodfill

import (
	"fmt"
	"image"
)

// Grid is a dense, row-major pixel buffer.
// The pixel at (x, y) is stored at Pix[x+y*Width].
//
// The fill functions only compare colors for equality, so C can be any
// comparable type: color.NRGBA for decoded images, a palette index, or
// a rune in tests.
type Grid[C comparable] struct {
	Width  int
	Height int
	Pix    []C
}

// NewGrid allocates a width×height grid with all pixels set to the
// zero value of C.
func NewGrid[C comparable](width, height int) *Grid[C] {
	return &Grid[C]{
		Width:  width,
		Height: height,
		Pix:    make([]C, width*height),
	}
}

// Index returns the offset of pixel (x, y) in Pix.
func (g *Grid[C]) Index(x, y int) int {
	return x + y*g.Width
}

// At returns the color of pixel (x, y).
// The coordinates must be inside the grid.
func (g *Grid[C]) At(x, y int) C {
	return g.Pix[x+y*g.Width]
}

// Set changes the color of pixel (x, y).
// The coordinates must be inside the grid.
func (g *Grid[C]) Set(x, y int, c C) {
	g.Pix[x+y*g.Width] = c
}

// Contains reports whether p is a pixel of the grid.
func (g *Grid[C]) Contains(p image.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Bounds returns the grid rectangle, with the origin at (0, 0).
func (g *Grid[C]) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// SameSize reports whether g and other have identical dimensions.
func (g *Grid[C]) SameSize(other *Grid[C]) bool {
	return g.Width == other.Width && g.Height == other.Height
}

// Clear sets every pixel to c.
func (g *Grid[C]) Clear(c C) {
	for i := range g.Pix {
		g.Pix[i] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[C]) Clone() *Grid[C] {
	return &Grid[C]{
		Width:  g.Width,
		Height: g.Height,
		Pix:    append([]C(nil), g.Pix...),
	}
}

// check verifies that the grid has a positive area and a pixel slice of
// the right length.
func (g *Grid[C]) check() error {
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return ErrEmptyBuffer
	}
	if len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("%dx%d grid with %d pixels: %w",
			g.Width, g.Height, len(g.Pix), ErrEmptyBuffer)
	}
	return nil
}
