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

package timeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/floodfill"
)

// Point is a timed fill position in texture coordinates.
type Point struct {
	At   float64
	U, V float64
}

// ReadPoints reads points stored as CSV records "timestamp,u,v".
//
// Empty fields are dropped before the record is interpreted.  Records
// which do not have exactly three fields are skipped, as are blank lines
// and lines starting with '#'.
func ReadPoints(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var points []Point
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		fields := record[:0]
		for _, f := range record {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) != 3 {
			continue
		}

		var vals [3]float64
		for i, f := range fields {
			vals[i], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		points = append(points, Point{At: vals[0], U: vals[1], V: vals[2]})
	}
	return points, nil
}

// WritePoints writes points in the format read by [ReadPoints].
func WritePoints(w io.Writer, points []Point) error {
	cw := csv.NewWriter(w)
	for _, p := range points {
		err := cw.Write([]string{
			strconv.FormatFloat(p.At, 'f', -1, 64),
			strconv.FormatFloat(p.U, 'f', -1, 64),
			strconv.FormatFloat(p.V, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FillCues builds one Fill cue per point.
//
// The fill region of each point is computed on base, which may be a
// simplified version of the picture, and is painted onto target with
// color fill.  Hiding a cue restores the color which target had at the
// point.  base and target must have the same size.
func FillCues(points []Point, base, target *floodfill.Grid[color.NRGBA], fill color.NRGBA) ([]Cue, error) {
	if !base.SameSize(target) {
		return nil, fmt.Errorf("base %dx%d, target %dx%d: %w",
			base.Width, base.Height, target.Width, target.Height,
			floodfill.ErrDimensionMismatch)
	}

	uv := floodfill.UVMatrix(base.Width, base.Height)
	filler := new(floodfill.Filler[color.NRGBA])
	cues := make([]Cue, 0, len(points))
	for i, p := range points {
		seed := floodfill.Seed(uv, vec.Vec2{X: p.U, Y: p.V})
		indices, err := filler.Indices(base, seed, fill)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		cues = append(cues, Cue{
			At: p.At,
			Frame: Fill{
				Target:  target,
				Mask:    &floodfill.Mask{Width: base.Width, Height: base.Height, Indices: indices},
				Color:   fill,
				Restore: target.At(seed.X, seed.Y),
			},
		})
	}
	return cues, nil
}
