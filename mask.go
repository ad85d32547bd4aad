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
	"context"
	"fmt"
	"image"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Mask is a precomputed fill region.
//
// A mask is typically computed once, possibly on a cheap low-resolution
// grid, and then applied many times to other grids of the same size.
type Mask struct {
	Width  int
	Height int

	// Indices holds the pixel offsets x+y*Width, in fill order.
	Indices []int
}

// NewMask computes the region which [Fill] would replace in g.
// The grid is not modified.
func NewMask[C comparable](g *Grid[C], seed image.Point, fill C) (*Mask, error) {
	indices, err := Indices(g, seed, fill)
	if err != nil {
		return nil, err
	}
	return &Mask{Width: g.Width, Height: g.Height, Indices: indices}, nil
}

// Len returns the number of pixels in the mask.
func (m *Mask) Len() int {
	return len(m.Indices)
}

// Bounds returns the smallest rectangle containing all pixels of the mask.
// The result is empty if the mask has no pixels.
func (m *Mask) Bounds() image.Rectangle {
	var r image.Rectangle
	for i, idx := range m.Indices {
		x, y := idx%m.Width, idx/m.Width
		if i == 0 {
			r = image.Rect(x, y, x+1, y+1)
			continue
		}
		r.Min.X = min(r.Min.X, x)
		r.Min.Y = min(r.Min.Y, y)
		r.Max.X = max(r.Max.X, x+1)
		r.Max.Y = max(r.Max.Y, y+1)
	}
	return r
}

// Spans calls emit for every maximal horizontal run of mask pixels,
// ordered by row and then by column.  The run covers the pixels
// xMin <= x < xMax of row y.
func (m *Mask) Spans(emit func(y, xMin, xMax int)) {
	if len(m.Indices) == 0 {
		return
	}
	sorted := slices.Clone(m.Indices)
	slices.Sort(sorted)

	start, prev := sorted[0], sorted[0]
	flush := func() {
		y := start / m.Width
		emit(y, start-y*m.Width, prev-y*m.Width+1)
	}
	for _, idx := range sorted[1:] {
		if idx == prev {
			continue
		}
		if idx == prev+1 && idx%m.Width != 0 {
			prev = idx
			continue
		}
		flush()
		start, prev = idx, idx
	}
	flush()
}

// ApplyMask sets every pixel of the mask in g to color c.
func ApplyMask[C comparable](m *Mask, g *Grid[C], c C) error {
	if err := g.check(); err != nil {
		return err
	}
	if g.Width != m.Width || g.Height != m.Height {
		return fmt.Errorf("apply %dx%d mask to %dx%d grid: %w",
			m.Width, m.Height, g.Width, g.Height, ErrDimensionMismatch)
	}
	for _, idx := range m.Indices {
		g.Pix[idx] = c
	}
	return nil
}

// ApplyAll applies the mask to each of the grids, concurrently.
// The grids must be distinct.  All sizes are checked before any grid is
// modified.  Grids which have not been started when ctx is cancelled
// are left unchanged.
func ApplyAll[C comparable](ctx context.Context, m *Mask, grids []*Grid[C], c C) error {
	for i, g := range grids {
		if err := g.check(); err != nil {
			return fmt.Errorf("grid %d: %w", i, err)
		}
		if g.Width != m.Width || g.Height != m.Height {
			return fmt.Errorf("grid %d: %dx%d mask on %dx%d grid: %w",
				i, m.Width, m.Height, g.Width, g.Height, ErrDimensionMismatch)
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, g := range grids {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, idx := range m.Indices {
				g.Pix[idx] = c
			}
			return nil
		})
	}
	return group.Wait()
}
