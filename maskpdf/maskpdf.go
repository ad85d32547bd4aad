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

// Package maskpdf writes fill masks as vector PDF files.
package maskpdf

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/floodfill"
)

// Write stores the mask as a single-page PDF file.
//
// The page measures Width×Height points, one point per pixel.  Mask
// pixels are painted white on a black background, one rectangle per
// horizontal run, with row 0 at the top of the page.
func Write(fileName string, m *floodfill.Mask) error {
	paper := &pdf.Rectangle{
		URx: float64(m.Width),
		URy: float64(m.Height),
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(m.Width), float64(m.Height))
	page.Fill()

	// PDF origin is bottom-left; masks use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(m.Height)})

	if m.Len() > 0 {
		page.SetFillColor(color.DeviceGray(1))
		m.Spans(func(y, xMin, xMax int) {
			page.Rectangle(float64(xMin), float64(y), float64(xMax-xMin), 1)
		})
		page.Fill()
	}

	return page.Close()
}
