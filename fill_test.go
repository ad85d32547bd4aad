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


package floodfill_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/floodfill"
	"seehuhn.de/go/floodfill/testcases"
)

func TestAgainstReference(t *testing.T) {
	f := new(floodfill.Filler[byte])
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				expected, region := referenceResult(tc)

				actual, err := tc.Run(f)
				if err != nil {
					t.Fatal(err)
				}
				if err := compareGrids(name, expected, actual); err != nil {
					t.Error(err)
				}
				if tc.Want != nil {
					if got := testcases.Format(actual); !slices.Equal(got, tc.Want) {
						t.Errorf("result mismatch:\n got %q\nwant %q", got, tc.Want)
					}
				}

				mask, err := tc.Mask(f)
				if err != nil {
					t.Fatal(err)
				}
				got := slices.Sorted(slices.Values(mask.Indices))
				if !slices.Equal(got, region) {
					t.Errorf("mask has %d pixels, want %d", len(got), len(region))
				}
			})
		}
	}
}

// TestReferenceMasks compares the fill regions with the masks in
// testdata/reference, which are generated by "go generate".
func TestReferenceMasks(t *testing.T) {
	f := new(floodfill.Filler[byte])
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				ref, err := loadGray(filepath.Join("testdata", "reference", name+".png"))
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference mask")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				mask, err := tc.Mask(f)
				if err != nil {
					t.Fatal(err)
				}
				if ref.Width != mask.Width || ref.Height != mask.Height {
					t.Fatalf("reference is %dx%d, want %dx%d",
						ref.Width, ref.Height, mask.Width, mask.Height)
				}
				inside := make([]bool, len(ref.Pix))
				for _, idx := range mask.Indices {
					inside[idx] = true
				}
				for idx, c := range ref.Pix {
					if (c >= 128) != inside[idx] {
						x, y := idx%ref.Width, idx/ref.Width
						t.Errorf("pixel (%d,%d): reference %d, in mask %t", x, y, c, inside[idx])
						return
					}
				}
			})
		}
	}
}

func loadGray(path string) (gray *floodfill.Grid[byte], err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	gray = floodfill.NewGrid[byte](bounds.Dx(), bounds.Dy())
	for y := range gray.Height {
		for x := range gray.Width {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray.Set(x, y, c.Y)
		}
	}
	return gray, nil
}

// referenceResult computes the expected outcome of a test case using a
// plain breadth-first search.  It returns the expected grid and the
// sorted offsets of the region.
func referenceResult(tc testcases.TestCase) (*floodfill.Grid[byte], []int) {
	g := tc.Grid()
	seedColor := g.At(tc.Seed.X, tc.Seed.Y)

	var match func(c byte) bool
	var fill byte
	out := g
	switch op := tc.Op.(type) {
	case testcases.Fill:
		fill = op.Color
		match = func(c byte) bool { return c == seedColor && c != op.Color }
	case testcases.Border:
		fill = op.Color
		match = func(c byte) bool { return c != op.Border }
	case testcases.From:
		fill = op.Color
		match = func(c byte) bool { return c == seedColor && c != op.Color }
		out = testcases.Parse(op.Target)
	}

	region := bfs(g, tc.Seed, match)
	out = out.Clone()
	for _, idx := range region {
		out.Pix[idx] = fill
	}
	return out, region
}

// bfs returns the sorted offsets of the 4-connected component of seed
// in which every pixel satisfies match.
func bfs(g *floodfill.Grid[byte], seed image.Point, match func(c byte) bool) []int {
	if !match(g.At(seed.X, seed.Y)) {
		return nil
	}
	seen := make([]bool, len(g.Pix))
	seen[g.Index(seed.X, seed.Y)] = true
	todo := []image.Point{seed}
	var region []int
	for len(todo) > 0 {
		p := todo[0]
		todo = todo[1:]
		region = append(region, g.Index(p.X, p.Y))
		for _, d := range []image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			q := p.Add(d)
			if !g.Contains(q) {
				continue
			}
			idx := g.Index(q.X, q.Y)
			if seen[idx] || !match(g.Pix[idx]) {
				continue
			}
			seen[idx] = true
			todo = append(todo, q)
		}
	}
	slices.Sort(region)
	return region
}

func compareGrids(name string, expected, actual *floodfill.Grid[byte]) error {
	if !expected.SameSize(actual) {
		return fmt.Errorf("size %dx%d, want %dx%d",
			actual.Width, actual.Height, expected.Width, expected.Height)
	}
	diffCount := 0
	for i := range expected.Pix {
		if expected.Pix[i] != actual.Pix[i] {
			diffCount++
		}
	}
	if diffCount > 0 {
		_ = writeDiffImage(name, expected, actual)
		return fmt.Errorf("%d pixels differ", diffCount)
	}
	return nil
}

// writeDiffImage stores a 3-panel image in debug/: actual (left),
// differences in red (middle), expected (right).
func writeDiffImage(name string, expected, actual *floodfill.Grid[byte]) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	w, h := expected.Width, expected.Height
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			a, e := actual.At(x, y), expected.At(x, y)
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})
			if a != e {
				img.Set(x+w, y, color.RGBA{R: 255, A: 255})
			} else {
				img.Set(x+w, y, color.RGBA{A: 255})
			}
			img.Set(x+2*w, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func TestRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	f := new(floodfill.Filler[byte])
	for i := range 500 {
		w, h := 1+rng.IntN(12), 1+rng.IntN(12)
		g := floodfill.NewGrid[byte](w, h)
		for j := range g.Pix {
			g.Pix[j] = "ab#"[rng.IntN(3)]
		}
		seed := image.Pt(rng.IntN(w), rng.IntN(h))
		ref := g.At(seed.X, seed.Y)

		got := g.Clone()
		if err := f.Fill(got, seed, 'o'); err != nil {
			t.Fatal(err)
		}
		want := g.Clone()
		for _, idx := range bfs(g, seed, func(c byte) bool { return c == ref }) {
			want.Pix[idx] = 'o'
		}
		if !slices.Equal(got.Pix, want.Pix) {
			t.Fatalf("%d: Fill %q at %v:\n got %q\nwant %q",
				i, testcases.Format(g), seed, testcases.Format(got), testcases.Format(want))
		}

		got = g.Clone()
		if err := f.FillBorder(got, seed, 'o', '#'); err != nil {
			t.Fatal(err)
		}
		want = g.Clone()
		for _, idx := range bfs(g, seed, func(c byte) bool { return c != '#' }) {
			want.Pix[idx] = 'o'
		}
		if !slices.Equal(got.Pix, want.Pix) {
			t.Fatalf("%d: FillBorder %q at %v:\n got %q\nwant %q",
				i, testcases.Format(g), seed, testcases.Format(got), testcases.Format(want))
		}
	}
}

func TestIdempotence(t *testing.T) {
	for _, tc := range testcases.All["fill"] {
		g := tc.Grid()
		fill := tc.Op.(testcases.Fill).Color
		if err := floodfill.Fill(g, tc.Seed, fill); err != nil {
			t.Fatal(err)
		}
		once := g.Clone()
		if err := floodfill.Fill(g, tc.Seed, fill); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(g.Pix, once.Pix) {
			t.Errorf("%s: second fill changed the grid", tc.Name)
		}
	}
}

func TestCrossBufferEquivalence(t *testing.T) {
	for _, category := range []string{"fill", "outline"} {
		for _, tc := range testcases.All[category] {
			fill, ok := tc.Op.(testcases.Fill)
			if !ok {
				continue
			}
			src := tc.Grid()
			before := src.Clone()

			dst1 := floodfill.NewGrid[byte](src.Width, src.Height)
			dst1.Clear('-')
			dst2 := dst1.Clone()

			if err := floodfill.FillFrom(dst1, src, tc.Seed, fill.Color); err != nil {
				t.Fatal(err)
			}
			indices, err := floodfill.Indices(src, tc.Seed, fill.Color)
			if err != nil {
				t.Fatal(err)
			}
			for _, idx := range indices {
				dst2.Pix[idx] = fill.Color
			}

			if !slices.Equal(dst1.Pix, dst2.Pix) {
				t.Errorf("%s: FillFrom and Indices disagree", tc.Name)
			}
			if !slices.Equal(src.Pix, before.Pix) {
				t.Errorf("%s: source grid was modified", tc.Name)
			}
		}
	}
}

func TestIndicesOrder(t *testing.T) {
	g := testcases.Parse([]string{
		"AAAA",
		"ABBA",
		"AAAA",
	})
	seed := image.Pt(2, 2)
	indices, err := floodfill.Indices(g, seed, 'o')
	if err != nil {
		t.Fatal(err)
	}
	if len(indices) != 10 {
		t.Fatalf("got %d indices, want 10", len(indices))
	}
	if indices[0] != g.Index(seed.X, seed.Y) {
		t.Errorf("first index %d, want the seed %d", indices[0], g.Index(seed.X, seed.Y))
	}
	seen := make(map[int]bool)
	for _, idx := range indices {
		if seen[idx] {
			t.Errorf("index %d reported twice", idx)
		}
		seen[idx] = true
	}
}

func TestDimensionMismatch(t *testing.T) {
	src := testcases.Parse([]string{"AAAA", "AAAA", "AAAA", "AAAA"})
	dst := testcases.Parse([]string{"....", "....", "....", "....", "...."})
	srcBefore, dstBefore := src.Clone(), dst.Clone()

	err := floodfill.FillFrom(dst, src, image.Pt(0, 0), 'x')
	if !errors.Is(err, floodfill.ErrDimensionMismatch) {
		t.Fatalf("got error %v, want %v", err, floodfill.ErrDimensionMismatch)
	}
	if !slices.Equal(src.Pix, srcBefore.Pix) || !slices.Equal(dst.Pix, dstBefore.Pix) {
		t.Error("grids were modified")
	}
}

func TestOutOfBounds(t *testing.T) {
	seeds := []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}}
	ops := map[string]func(g *floodfill.Grid[byte], seed image.Point) error{
		"Fill": func(g *floodfill.Grid[byte], seed image.Point) error {
			return floodfill.Fill(g, seed, 'o')
		},
		"FillFrom": func(g *floodfill.Grid[byte], seed image.Point) error {
			return floodfill.FillFrom(g, g.Clone(), seed, 'o')
		},
		"FillBorder": func(g *floodfill.Grid[byte], seed image.Point) error {
			return floodfill.FillBorder(g, seed, 'o', '#')
		},
		"Indices": func(g *floodfill.Grid[byte], seed image.Point) error {
			_, err := floodfill.Indices(g, seed, 'o')
			return err
		},
	}
	for _, name := range slices.Sorted(maps.Keys(ops)) {
		for _, seed := range seeds {
			g := testcases.Parse([]string{"AAAA", "AAAA", "AAAA"})
			err := ops[name](g, seed)
			if !errors.Is(err, floodfill.ErrOutOfBounds) {
				t.Errorf("%s at %v: got error %v, want %v", name, seed, err, floodfill.ErrOutOfBounds)
			}
			if got := testcases.Format(g); !slices.Equal(got, []string{"AAAA", "AAAA", "AAAA"}) {
				t.Errorf("%s at %v: grid modified to %q", name, seed, got)
			}
		}
	}
}

func TestEmptyBuffer(t *testing.T) {
	grids := []*floodfill.Grid[byte]{
		nil,
		{},
		{Width: 0, Height: 3},
		{Width: 3, Height: 3, Pix: make([]byte, 8)},
	}
	for i, g := range grids {
		if err := floodfill.Fill(g, image.Pt(0, 0), 'o'); !errors.Is(err, floodfill.ErrEmptyBuffer) {
			t.Errorf("%d: Fill: got error %v, want %v", i, err, floodfill.ErrEmptyBuffer)
		}
		if err := floodfill.FillBorder(g, image.Pt(0, 0), 'o', '#'); !errors.Is(err, floodfill.ErrEmptyBuffer) {
			t.Errorf("%d: FillBorder: got error %v, want %v", i, err, floodfill.ErrEmptyBuffer)
		}
		if _, err := floodfill.Indices(g, image.Pt(0, 0), 'o'); !errors.Is(err, floodfill.ErrEmptyBuffer) {
			t.Errorf("%d: Indices: got error %v, want %v", i, err, floodfill.ErrEmptyBuffer)
		}
		ok := floodfill.NewGrid[byte](3, 3)
		if err := floodfill.FillFrom(ok, g, image.Pt(0, 0), 'o'); !errors.Is(err, floodfill.ErrEmptyBuffer) {
			t.Errorf("%d: FillFrom: got error %v, want %v", i, err, floodfill.ErrEmptyBuffer)
		}
	}
}

func TestClip(t *testing.T) {
	f := floodfill.NewFiller[byte](rect.Rect{LLx: 1, LLy: 1, URx: 4, URy: 3})

	g := testcases.Parse(blank(5, 4))
	if err := f.Fill(g, image.Pt(2, 2), 'o'); err != nil {
		t.Fatal(err)
	}
	want := []string{
		".....",
		".ooo.",
		".ooo.",
		".....",
	}
	if got := testcases.Format(g); !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	g = testcases.Parse(blank(5, 4))
	err := f.FillBorder(g, image.Pt(0, 0), 'o', '#')
	if !errors.Is(err, floodfill.ErrOutOfBounds) {
		t.Errorf("seed outside clip: got error %v, want %v", err, floodfill.ErrOutOfBounds)
	}

	// a clip larger than the grid is limited to the grid
	f.Clip = rect.Rect{LLx: -10, LLy: -10, URx: 100, URy: 100}
	if err := f.Fill(g, image.Pt(0, 0), 'o'); err != nil {
		t.Fatal(err)
	}
	if got := testcases.Format(g); !slices.Equal(got, replaceAll(blank(5, 4), 'o')) {
		t.Errorf("got %q", got)
	}
}

func TestFillerReuse(t *testing.T) {
	f := new(floodfill.Filler[byte])

	large := testcases.Parse(blank(40, 30))
	if err := f.Fill(large, image.Pt(0, 0), 'o'); err != nil {
		t.Fatal(err)
	}

	// the visited bits of the large fill must not leak into this one
	small := testcases.Parse([]string{"..#", "..#"})
	if err := f.Fill(small, image.Pt(1, 1), 'x'); err != nil {
		t.Fatal(err)
	}
	want := []string{"xx#", "xx#"}
	if got := testcases.Format(small); !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestColorGrid(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := range 4 {
		for x := range 6 {
			img.SetNRGBA(x, y, white)
		}
		img.SetNRGBA(3, y, blue)
	}

	g := floodfill.FromImage(img)
	if err := floodfill.Fill(g, image.Pt(5, 0), red); err != nil {
		t.Fatal(err)
	}
	out := floodfill.ToImage(g)
	for y := range 4 {
		for x := range 6 {
			want := white
			switch {
			case x == 3:
				want = blue
			case x > 3:
				want = red
			}
			if got := out.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func blank(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		row := make([]byte, w)
		for j := range row {
			row[j] = '.'
		}
		rows[i] = string(row)
	}
	return rows
}

func replaceAll(rows []string, c byte) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		b := []byte(row)
		for j := range b {
			b[j] = c
		}
		out[i] = string(b)
	}
	return out
}
