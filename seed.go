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
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// UVMatrix maps texture coordinates (u, v) in the unit square to the
// pixel space of a width×height grid: x = u·width, y = v·height.
func UVMatrix(width, height int) matrix.Matrix {
	return matrix.Scale(float64(width), float64(height))
}

// Seed transforms p by m and returns the pixel containing the result.
// The coordinates are rounded down; no clamping is done, so points on
// the far edge of the unit square map to a pixel just outside the grid.
func Seed(m matrix.Matrix, p vec.Vec2) image.Point {
	x := m[0]*p.X + m[2]*p.Y + m[4]
	y := m[1]*p.X + m[3]*p.Y + m[5]
	return image.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}
