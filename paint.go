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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// crossing is the intersection of an edge with the centre line of a row.
type crossing struct {
	x   float64
	dir int // +1 for downward edges, -1 for upward edges
}

// Painter converts vector outlines into runs of pixels, without
// anti-aliasing: a pixel is inside if its centre is inside the path.
// This gives the crisp single-color borders which [FillBorder] needs.
//
// Create one instance and reuse it for multiple paths.  Internal buffers
// grow as needed but never shrink.  A Painter is not safe for concurrent
// use.
type Painter struct {
	// CTM transforms from user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive.
	Flatness float64

	edges     []edge
	crossings []crossing

	// Edge collection state (used by collectPathEdges/addEdge)
	edgeBBoxFirst bool
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// NewPainter returns a Painter with the given clip rectangle, the
// identity CTM and the default flatness.
func NewPainter(clip rect.Rect) *Painter {
	return &Painter{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Paint returns an emit callback for [Painter.FillNonZero] and
// [Painter.FillEvenOdd] which sets the emitted pixels of g to c.
// Pixels outside g are ignored.
func Paint[C comparable](g *Grid[C], c C) func(y, xMin, xMax int) {
	return func(y, xMin, xMax int) {
		if y < 0 || y >= g.Height {
			return
		}
		xMin = max(xMin, 0)
		xMax = min(xMax, g.Width)
		row := g.Pix[y*g.Width:]
		for x := xMin; x < xMax; x++ {
			row[x] = c
		}
	}
}

// FillNonZero fills the path using the nonzero winding rule.  emit is
// called once for every run of inside pixels xMin <= x < xMax on row y,
// rows in increasing order.
func (p *Painter) FillNonZero(outline path.Path, emit func(y, xMin, xMax int)) {
	p.fill(outline, fillNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.  emit is called
// once for every run of inside pixels xMin <= x < xMax on row y, rows in
// increasing order.
func (p *Painter) FillEvenOdd(outline path.Path, emit func(y, xMin, xMax int)) {
	p.fill(outline, fillEvenOdd, emit)
}

// fillRule identifies which fill rule to apply.
type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (rule fillRule) inside(winding int) bool {
	if rule == fillEvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// fill is the internal implementation shared by FillNonZero and FillEvenOdd.
func (p *Painter) fill(outline path.Path, rule fillRule, emit func(y, xMin, xMax int)) {
	yMin, yMax, ok := p.collectPathEdges(outline)
	if !ok {
		return
	}
	clipXMin := int(p.Clip.LLx)
	clipXMax := int(p.Clip.URx)

	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		// Edges are half-open in y, so a vertex shared by two edges
		// is counted once.
		p.crossings = p.crossings[:0]
		for i := range p.edges {
			e := &p.edges[i]
			dir := 1
			top, bot := e.y0, e.y1
			if bot < top {
				top, bot = bot, top
				dir = -1
			}
			if yc < top || yc >= bot {
				continue
			}
			p.crossings = append(p.crossings, crossing{
				x:   e.x0 + e.dxdy*(yc-e.y0),
				dir: dir,
			})
		}
		if len(p.crossings) < 2 {
			continue
		}
		slices.SortFunc(p.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		winding := 0
		var start float64
		for _, c := range p.crossings {
			wasInside := rule.inside(winding)
			winding += c.dir
			isInside := rule.inside(winding)
			switch {
			case !wasInside && isInside:
				start = c.x
			case wasInside && !isInside:
				// pixel x is inside if start <= x+0.5 < c.x
				xMin := max(int(math.Ceil(start-0.5)), clipXMin)
				xMax := min(int(math.Ceil(c.x-0.5)), clipXMax)
				if xMin < xMax {
					emit(y, xMin, xMax)
				}
			}
		}
	}
}

// collectPathEdges walks the path, transforms to device space, and builds
// the edge list.  It returns the range of rows touched by the path,
// clamped to the clip rectangle.
func (p *Painter) collectPathEdges(outline path.Path) (yMin, yMax int, ok bool) {
	p.edges = p.edges[:0]
	p.edgeBBoxFirst = true

	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)
	open := false
	for cmd, pts := range outline {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != subpath {
				p.addEdge(current, subpath)
			}
			current = pts[0]
			subpath = current
			open = true
		case path.CmdLineTo:
			p.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			p.flattenQuadratic(current, pts[0], pts[1], p.addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			p.flattenCubic(current, pts[0], pts[1], pts[2], p.addEdge)
			current = pts[2]
		case path.CmdClose:
			if current != subpath {
				p.addEdge(current, subpath)
			}
			current = subpath
			open = false
		}
	}
	// fills implicitly close open subpaths
	if open && current != subpath {
		p.addEdge(current, subpath)
	}

	if len(p.edges) == 0 {
		return 0, 0, false
	}

	yMin = max(int(math.Floor(p.edgeDevYMin)), int(p.Clip.LLy))
	yMax = min(int(math.Floor(p.edgeDevYMax))+1, int(p.Clip.URy))
	if yMin >= yMax || p.Clip.LLx >= p.Clip.URx {
		return 0, 0, false
	}
	return yMin, yMax, true
}

// addEdge adds an edge from user space coordinates, transforming to
// device space.
func (p *Painter) addEdge(p0, p1 vec.Vec2) {
	dx0 := p.CTM[0]*p0.X + p.CTM[2]*p0.Y + p.CTM[4]
	dy0 := p.CTM[1]*p0.X + p.CTM[3]*p0.Y + p.CTM[5]
	dx1 := p.CTM[0]*p1.X + p.CTM[2]*p1.Y + p.CTM[4]
	dy1 := p.CTM[1]*p1.X + p.CTM[3]*p1.Y + p.CTM[5]

	// Horizontal edges never cross a row centre line.
	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	p.edges = append(p.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if p.edgeBBoxFirst {
		p.edgeDevYMin = min(dy0, dy1)
		p.edgeDevYMax = max(dy0, dy1)
		p.edgeBBoxFirst = false
	} else {
		p.edgeDevYMin = min(p.edgeDevYMin, dy0, dy1)
		p.edgeDevYMax = max(p.edgeDevYMax, dy0, dy1)
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (p *Painter) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: p.CTM[0]*v.X + p.CTM[2]*v.Y,
		Y: p.CTM[1]*v.X + p.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each
// line segment.  All points are in user space; the segment count is
// chosen so that the error in device space stays below Flatness.
func (p *Painter) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errDev := p.transformLinear(e).Length(); errDev > p.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / p.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line
// segment, using Wang's formula for the segment count.
func (p *Painter) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	mDev := max(p.transformLinear(d1).Length(), p.transformLinear(d2).Length())
	n := 1
	if mDev > 0 {
		// n = ceil(sqrt(3 * mDev / (4 * ε)))
		if nFloat := math.Sqrt(3 * mDev / (4 * p.Flatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Circle returns a closed path approximating a circle by four cubic
// Bézier segments.  The circle is traversed clockwise in a y-down
// coordinate system if clockwise is true.
func Circle(center vec.Vec2, r float64, clockwise bool) path.Path {
	const k = 0.5522847498 // control point distance for a quarter circle
	kr := k * r
	cx, cy := center.X, center.Y

	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		buf[0] = vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		s := 1.0
		if !clockwise {
			s = -1
		}
		quarters := [4][3]vec.Vec2{
			{{X: cx + r, Y: cy + s*kr}, {X: cx + kr, Y: cy + s*r}, {X: cx, Y: cy + s*r}},
			{{X: cx - kr, Y: cy + s*r}, {X: cx - r, Y: cy + s*kr}, {X: cx - r, Y: cy}},
			{{X: cx - r, Y: cy - s*kr}, {X: cx - kr, Y: cy - s*r}, {X: cx, Y: cy - s*r}},
			{{X: cx + kr, Y: cy - s*r}, {X: cx + r, Y: cy - s*kr}, {X: cx + r, Y: cy}},
		}
		for _, q := range quarters {
			buf = q
			if !yield(path.CmdCubeTo, buf[:3]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Default values for painter parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to be kept.
	horizontalEdgeThreshold = 1e-10
)
