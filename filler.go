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
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Filler performs flood fills on grids with colors of type C.
// Create one instance and reuse it for many fills: the work queue and
// the visited bitmap grow as needed but never shrink, so steady-state
// fills do not allocate.
//
// A Filler is not safe for concurrent use.
type Filler[C comparable] struct {
	// Clip restricts fills to this rectangle, in pixel coordinates.
	// Coordinates must be integer-aligned.  The zero rectangle means
	// that the whole grid may be filled.
	Clip rect.Rect

	// Internal buffers (reused across calls)
	queue   []image.Point // FIFO of scan seeds
	visited []uint64      // one bit per pixel of the current grid
	indices []int         // pixel offsets in visit order
}

// NewFiller returns a Filler which restricts all fills to clip.
func NewFiller[C comparable](clip rect.Rect) *Filler[C] {
	return &Filler[C]{Clip: clip}
}

// Fill replaces the 4-connected region of pixels which have the same
// color as the seed pixel by fill. If the seed already has color fill,
// the grid is left unchanged.
func (f *Filler[C]) Fill(g *Grid[C], seed image.Point, fill C) error {
	win, err := f.prepare(g, seed)
	if err != nil {
		return err
	}

	ref := g.Pix[g.Index(seed.X, seed.Y)]
	if ref == fill {
		return nil
	}

	pix := g.Pix
	n := f.scan(g.Width, win, seed,
		func(idx int) bool { return pix[idx] == ref },
		func(idx int) { pix[idx] = fill })
	logFill("fill", seed, n)
	return nil
}

// FillFrom determines the region which Fill would replace in src and
// paints this region with color fill in dst.  src is not modified.
// Both grids must have the same dimensions; otherwise neither grid is
// touched.
func (f *Filler[C]) FillFrom(dst, src *Grid[C], seed image.Point, fill C) error {
	if err := dst.check(); err != nil {
		return err
	}
	if err := src.check(); err != nil {
		return err
	}
	if !dst.SameSize(src) {
		return fmt.Errorf("fill %dx%d grid from %dx%d grid: %w",
			dst.Width, dst.Height, src.Width, src.Height, ErrDimensionMismatch)
	}

	indices, err := f.collect(src, seed, fill)
	if err != nil {
		return err
	}
	for _, idx := range indices {
		dst.Pix[idx] = fill
	}
	logFill("fill-from", seed, len(indices))
	return nil
}

// FillBorder paints every pixel which can be reached from seed without
// crossing a pixel of color border.  Pixels of color border are never
// changed, whatever their neighbours.  If the seed itself has color
// border, the grid is left unchanged.
func (f *Filler[C]) FillBorder(g *Grid[C], seed image.Point, fill, border C) error {
	win, err := f.prepare(g, seed)
	if err != nil {
		return err
	}

	pix := g.Pix
	n := f.scan(g.Width, win, seed,
		func(idx int) bool { return pix[idx] != border },
		func(idx int) { pix[idx] = fill })
	logFill("fill-border", seed, n)
	return nil
}

// Indices returns the offsets x+y*Width of the pixels which Fill would
// replace, in the order in which they are visited.  The grid is not
// modified.  The result is empty if the seed already has color fill.
func (f *Filler[C]) Indices(g *Grid[C], seed image.Point, fill C) ([]int, error) {
	indices, err := f.collect(g, seed, fill)
	if err != nil {
		return nil, err
	}
	logFill("indices", seed, len(indices))
	return slices.Clone(indices), nil
}

// collect runs the same-color fill on g without modifying it.
// The returned slice aliases f.indices.
func (f *Filler[C]) collect(g *Grid[C], seed image.Point, fill C) ([]int, error) {
	win, err := f.prepare(g, seed)
	if err != nil {
		return nil, err
	}

	f.indices = f.indices[:0]
	ref := g.Pix[g.Index(seed.X, seed.Y)]
	if ref == fill {
		return f.indices, nil
	}

	pix := g.Pix
	f.scan(g.Width, win, seed,
		func(idx int) bool { return pix[idx] == ref },
		func(idx int) { f.indices = append(f.indices, idx) })
	return f.indices, nil
}

// prepare validates the grid and the seed, and resets the visited bitmap.
// It returns the part of the grid which may be filled.
func (f *Filler[C]) prepare(g *Grid[C], seed image.Point) (image.Rectangle, error) {
	if err := g.check(); err != nil {
		return image.Rectangle{}, err
	}

	win := g.Bounds()
	if f.Clip != (rect.Rect{}) {
		clip := image.Rect(int(f.Clip.LLx), int(f.Clip.LLy), int(f.Clip.URx), int(f.Clip.URy))
		win = win.Intersect(clip)
	}
	if !seed.In(win) {
		return image.Rectangle{}, fmt.Errorf("seed (%d,%d) outside %v: %w",
			seed.X, seed.Y, win, ErrOutOfBounds)
	}

	n := (len(g.Pix) + 63) / 64
	f.visited = slices.Grow(f.visited[:0], n)[:n]
	clear(f.visited)

	return win, nil
}

// scan is the scanline loop shared by all fill variants.
//
// A pixel belongs to the region if match reports true for it and it has
// not been visited before in this call.  Each pixel of the region is
// passed to mark exactly once.  The seed must lie inside win.
// scan returns the number of marked pixels.
func (f *Filler[C]) scan(width int, win image.Rectangle, seed image.Point, match func(idx int) bool, mark func(idx int)) int {
	count := 0
	f.queue = append(f.queue[:0], seed)
	for head := 0; head < len(f.queue); head++ {
		p := f.queue[head]
		row := p.Y * width
		if f.isVisited(row+p.X) || !match(row+p.X) {
			continue
		}

		// Neighbour runs above and below are enqueued once, at the first
		// matching pixel.  Scanning from any pixel of a run covers all of it.
		var up, down bool
		for x := p.X; x < win.Max.X; x++ {
			idx := row + x
			if f.isVisited(idx) || !match(idx) {
				break
			}
			f.setVisited(idx)
			mark(idx)
			count++
			up = f.probe(x, p.Y-1, width, win, up, match)
			down = f.probe(x, p.Y+1, width, win, down, match)
		}

		up, down = false, false
		for x := p.X - 1; x >= win.Min.X; x-- {
			idx := row + x
			if f.isVisited(idx) || !match(idx) {
				break
			}
			f.setVisited(idx)
			mark(idx)
			count++
			up = f.probe(x, p.Y-1, width, win, up, match)
			down = f.probe(x, p.Y+1, width, win, down, match)
		}
	}
	return count
}

// probe checks the neighbour (x, y) of a freshly marked pixel.  inRun
// tells whether the previous neighbour in the same direction was part of
// the region.  The neighbour is enqueued if it starts a new run.
// The return value is the new inRun state.
func (f *Filler[C]) probe(x, y, width int, win image.Rectangle, inRun bool, match func(idx int) bool) bool {
	if y < win.Min.Y || y >= win.Max.Y {
		return false
	}
	idx := x + y*width
	if f.isVisited(idx) || !match(idx) {
		return false
	}
	if !inRun {
		f.queue = append(f.queue, image.Point{X: x, Y: y})
	}
	return true
}

func (f *Filler[C]) isVisited(idx int) bool {
	return f.visited[idx>>6]&(1<<(idx&63)) != 0
}

func (f *Filler[C]) setVisited(idx int) {
	f.visited[idx>>6] |= 1 << (idx & 63)
}

// logFill reports a completed fill at debug level.
func logFill(op string, seed image.Point, pixels int) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("flood fill", "op", op, "x", seed.X, "y", seed.Y, "pixels", pixels)
}
