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

// Package floodfill implements scanline flood fill over dense pixel buffers.
//
// A fill starts at a seed pixel and spreads to the maximal 4-connected
// region of matching pixels. Four variants are provided:
//
//   - [Fill] replaces the region of pixels equal to the seed color.
//   - [FillFrom] computes the region on one grid and paints it on another.
//   - [FillBorder] floods everything up to a border color.
//   - [Indices] reports the region without modifying the grid.
//
// The package-level functions allocate fresh scratch space for every call
// and can be used concurrently on distinct grids. A [Filler] keeps its
// scratch buffers between calls and is the better choice when many fills
// are performed in sequence.
package floodfill

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"errors"
	"image"
)

var (
	// ErrOutOfBounds is returned when the seed lies outside the grid or
	// outside the clip window of the Filler.
	ErrOutOfBounds = errors.New("seed out of bounds")

	// ErrDimensionMismatch is returned when two grids (or a grid and a
	// mask) used together have different sizes.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrEmptyBuffer is returned for grids without pixels.
	ErrEmptyBuffer = errors.New("empty pixel buffer")
)

// Fill replaces the 4-connected region of pixels which have the same
// color as the seed pixel by fill. If the seed already has color fill,
// the grid is left unchanged.
func Fill[C comparable](g *Grid[C], seed image.Point, fill C) error {
	return new(Filler[C]).Fill(g, seed, fill)
}

// FillFrom determines the region which [Fill] would replace in src and
// paints this region with color fill in dst. src is not modified.
// Both grids must have the same dimensions.
func FillFrom[C comparable](dst, src *Grid[C], seed image.Point, fill C) error {
	return new(Filler[C]).FillFrom(dst, src, seed, fill)
}

// FillBorder paints the 4-connected region of pixels not equal to border,
// starting at seed. The original colors inside the region are irrelevant.
func FillBorder[C comparable](g *Grid[C], seed image.Point, fill, border C) error {
	return new(Filler[C]).FillBorder(g, seed, fill, border)
}

// Indices returns the offsets of the pixels which [Fill] would replace,
// in the order the fill visits them. The grid is not modified.
func Indices[C comparable](g *Grid[C], seed image.Point, fill C) ([]int, error) {
	return new(Filler[C]).Indices(g, seed, fill)
}
