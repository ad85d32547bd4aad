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


package main

const mainUsage = `The floodfill command fills a region of an image.

Usage:

	floodfill [flags] <image>

The image may be a PNG, JPEG, GIF, BMP or TIFF file. The result is always
written as PNG, to the file given by -o (default out.png).

The seed pixel is given either in pixels, with -x and -y, or in texture
coordinates with -uv u,v where both values lie in [0,1). Seeds outside the
image are an error.

The -mode flag selects how the region is found. In fill mode (the default)
the region consists of the pixels connected to the seed which have the seed's
color. In border mode every pixel connected to the seed is filled, up to
pixels of the -border color.

The -color and -border flags take an SVG color name such as "red" or
"steelblue", or a hex value #rrggbb or #rrggbbaa.

In fill mode the region may be computed on a reduced copy of the image,
using -scale n, and is then scaled back up and drawn over the original.
This is much faster for large images with large regions.

The -points flag reads a CSV file of timestamp,u,v records. One fill is
prepared per record and the fill belonging to the clock value -at is shown.
Without -at, the fill of the last record is shown.

The -pdf flag writes the filled region as a black and white vector PDF.

The -v flag logs every fill to standard error.
`
