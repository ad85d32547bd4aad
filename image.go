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
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage copies img into a new grid.  Pixel (0, 0) of the grid
// corresponds to img.Bounds().Min.
func FromImage(img image.Image) *Grid[color.NRGBA] {
	b := img.Bounds()
	g := NewGrid[color.NRGBA](b.Dx(), b.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := range g.Height {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range g.Width {
				p := row[4*x : 4*x+4 : 4*x+4]
				g.Pix[x+y*g.Width] = color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
			}
		}
		return g
	}

	for y := range g.Height {
		for x := range g.Width {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			g.Pix[x+y*g.Width] = c
		}
	}
	return g
}

// ToImage copies the grid into a new image.
func ToImage(g *Grid[color.NRGBA]) *image.NRGBA {
	img := image.NewNRGBA(g.Bounds())
	for y := range g.Height {
		row := img.Pix[y*img.Stride:]
		for x, c := range g.Pix[y*g.Width : (y+1)*g.Width] {
			row[4*x+0] = c.R
			row[4*x+1] = c.G
			row[4*x+2] = c.B
			row[4*x+3] = c.A
		}
	}
	return img
}

// Downsample scales img to width×height pixels.
//
// Nearest-neighbour sampling is used so that no new colors appear: a
// region of one color in img stays a region of exactly that color,
// which is what the equality-based fills need.
func Downsample(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Overlay scales g up to the bounds of dst and composites it over dst.
//
// Together with [Downsample] and [FillFrom] this allows to compute a fill
// on a small copy of an image, paint the result onto a transparent grid,
// and lay the grid over the full-resolution image.
func Overlay(dst draw.Image, g *Grid[color.NRGBA]) {
	src := ToImage(g)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
}
