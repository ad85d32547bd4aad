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


package testcases

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/floodfill"
)

// outlineCases draw their borders from vector paths.  The expected
// results are computed by a reference fill.
var outlineCases = []TestCase{
	{
		Name:    "circle_ring_border",
		Picture: stripes(64, 64, "abc"),
		Outline: concat(
			floodfill.Circle(pt(32, 32), 28, true),
			floodfill.Circle(pt(32, 32), 22, true),
		),
		Ink:  '#',
		Seed: image.Pt(32, 32),
		Op:   Border{Color: 'o', Border: '#'},
	},
	{
		Name:    "square_ring_fill",
		Picture: blank(64, 64, '.'),
		Outline: ringShape(32, 32, 25, 12),
		Ink:     '#',
		Seed:    image.Pt(32, 32),
		Op:      Fill{Color: 'o'},
	},
	{
		Name:    "square_ring_outside",
		Picture: blank(64, 64, '.'),
		Outline: ringShape(32, 32, 25, 12),
		Ink:     '#',
		Seed:    image.Pt(0, 0),
		Op:      Fill{Color: 'o'},
	},
	{
		Name:    "yantra",
		Picture: stripes(96, 96, "ab"),
		Outline: yantra(48, 48, 40),
		Ink:     '#',
		Seed:    image.Pt(48, 48),
		Op:      Border{Color: 'o', Border: '#'},
	},
	{
		Name:    "yantra_from",
		Picture: blank(96, 96, '.'),
		Outline: yantra(48, 48, 40),
		Ink:     '#',
		Seed:    image.Pt(48, 48),
		Op:      From{Target: stripes(96, 96, "ab"), Color: 'x'},
	},
	{
		Name:    "multiple_rings",
		Picture: blank(128, 128, '.'),
		Outline: multipleRings(64, 64),
		Ink:     '#',
		Seed:    image.Pt(34, 34),
		Op:      Fill{Color: 'o'},
	},
	{
		Name:    "multiple_rings_outside",
		Picture: blank(128, 128, '.'),
		Outline: multipleRings(64, 64),
		Ink:     '#',
		Seed:    image.Pt(127, 127),
		Op:      Fill{Color: 'o'},
	},
	{
		Name:    "large_circle_ring",
		Picture: stripes(512, 512, "abcd"),
		Outline: concat(
			floodfill.Circle(pt(256, 256), 200, true),
			floodfill.Circle(pt(256, 256), 190, false),
		),
		Ink:  '#',
		Seed: image.Pt(256, 256),
		Op:   Border{Color: 'o', Border: '#'},
	},
}

// concat joins several paths into one.
func concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// polygon builds a closed polygon through the given vertices.
func polygon(vertices ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(vertices) == 0 {
			return
		}
		if !moveTo(yield, vertices[0].X, vertices[0].Y) {
			return
		}
		for _, v := range vertices[1:] {
			if !lineTo(yield, v.X, v.Y) {
				return
			}
		}
		closePath(yield)
	}
}

// square builds an axis-aligned square with the given centre and half
// side length.
func square(cx, cy, half float64) path.Path {
	return polygon(
		pt(cx-half, cy-half),
		pt(cx+half, cy-half),
		pt(cx+half, cy+half),
		pt(cx-half, cy+half),
	)
}

// ringShape builds a square ring, to be filled with the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) path.Path {
	return concat(square(cx, cy, outerSize), square(cx, cy, innerSize))
}

// multipleRings builds three square rings around (cx, cy).
func multipleRings(cx, cy float64) path.Path {
	return concat(
		ringShape(cx-30, cy-30, 20, 10),
		ringShape(cx+30, cy-30, 20, 10),
		ringShape(cx, cy+30, 20, 10),
	)
}

// yantra builds two overlapping triangles, one pointing up and one
// pointing down.  With the even-odd rule the central hexagon stays
// empty.
func yantra(cx, cy, r float64) path.Path {
	h := r / 2
	w := r * 0.8660254037844386 // r·sin(60°)
	return concat(
		polygon(pt(cx, cy-r), pt(cx+w, cy+h), pt(cx-w, cy+h)),
		polygon(pt(cx, cy+r), pt(cx+w, cy-h), pt(cx-w, cy-h)),
	)
}
