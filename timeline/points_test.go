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
	"bytes"
	"errors"
	"image/color"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/floodfill"
)

func TestReadPoints(t *testing.T) {
	in := `# recorded points
0.5, 0.25, 0.75

1,2
2,,0.5,0.5
3,0.1,0.2,0.3
4,0,1
`
	got, err := ReadPoints(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{
		{At: 0.5, U: 0.25, V: 0.75},
		{At: 2, U: 0.5, V: 0.5},
		{At: 4, U: 0, V: 1},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadPointsSyntaxError(t *testing.T) {
	in := "0,0,0\n1,x,0\n"
	_, err := ReadPoints(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("got error %v, want an error for line 2", err)
	}
}

func TestWritePoints(t *testing.T) {
	points := []Point{
		{At: 0, U: 0.5, V: 0.5},
		{At: 1.25, U: 1e-3, V: 0.999},
	}
	var buf bytes.Buffer
	if err := WritePoints(&buf, points); err != nil {
		t.Fatal(err)
	}
	got, err := ReadPoints(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, points) {
		t.Errorf("got %v, want %v", got, points)
	}
}

func TestFillCues(t *testing.T) {
	a := color.NRGBA{R: 10, A: 255}
	b := color.NRGBA{B: 10, A: 255}
	base := floodfill.NewGrid[color.NRGBA](4, 2)
	base.Pix = []color.NRGBA{
		a, a, b, b,
		a, b, b, a,
	}
	target := solid(4, 2, white)
	target.Set(3, 1, green)

	points := []Point{
		{At: 2, U: 0.9, V: 0.9}, // pixel (3,1)
		{At: 1, U: 0, V: 0},     // pixel (0,0)
	}
	cues, err := FillCues(points, base, target, red)
	if err != nil {
		t.Fatal(err)
	}

	tl := New(cues...)
	if err := tl.Seek(1); err != nil {
		t.Fatal(err)
	}
	if got, want := redPixels(target), []int{0, 1, 4}; !slices.Equal(got, want) {
		t.Errorf("clock 1: red pixels %v, want %v", got, want)
	}

	if err := tl.Seek(2); err != nil {
		t.Fatal(err)
	}
	if got, want := redPixels(target), []int{7}; !slices.Equal(got, want) {
		t.Errorf("clock 2: red pixels %v, want %v", got, want)
	}

	if err := tl.Reset(); err != nil {
		t.Fatal(err)
	}
	if target.At(3, 1) != green {
		t.Error("hiding did not restore the original color")
	}
}

func TestFillCuesErrors(t *testing.T) {
	base := solid(4, 2, white)
	if _, err := FillCues(nil, base, solid(2, 4, white), red); !errors.Is(err, floodfill.ErrDimensionMismatch) {
		t.Errorf("got error %v, want %v", err, floodfill.ErrDimensionMismatch)
	}

	points := []Point{{At: 0, U: 1, V: 0.5}}
	if _, err := FillCues(points, base, solid(4, 2, white), red); !errors.Is(err, floodfill.ErrOutOfBounds) {
		t.Errorf("got error %v, want %v", err, floodfill.ErrOutOfBounds)
	}
}
