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


// Command floodfill fills a region of an image file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/floodfill"
	"seehuhn.de/go/floodfill/maskpdf"
	"seehuhn.de/go/floodfill/timeline"
)

var (
	seedX      = flag.Int("x", -1, "seed column, in pixels")
	seedY      = flag.Int("y", -1, "seed row, in pixels")
	seedUV     = flag.String("uv", "", "seed in texture coordinates `u,v`")
	pointsFile = flag.String("points", "", "CSV `file` with timestamp,u,v records")
	clock      = flag.Float64("at", math.Inf(1), "clock value selecting the fill for -points")
	mode       = flag.String("mode", "fill", "fill mode (fill, border)")
	fillName   = flag.String("color", "red", "fill color")
	borderName = flag.String("border", "black", "border color for -mode border")
	scale      = flag.Int("scale", 1, "compute the region on a copy reduced by this factor")
	destPath   = flag.String("o", "out.png", "output PNG file")
	pdfPath    = flag.String("pdf", "", "write the region as a PDF `file`")
	verbose    = flag.Bool("v", false, "log fills to standard error")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "floodfill: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	in := flag.Arg(0)
	if in == "" {
		return errors.New("specify an input image")
	}
	switch *mode {
	case "fill", "border":
	default:
		return fmt.Errorf("invalid -mode %s", *mode)
	}
	if *scale < 1 {
		return fmt.Errorf("invalid -scale %d", *scale)
	}
	if *mode == "border" && (*scale != 1 || *pointsFile != "" || *pdfPath != "") {
		return errors.New("-scale, -points and -pdf require -mode fill")
	}
	fill, err := parseColor(*fillName)
	if err != nil {
		return err
	}
	border, err := parseColor(*borderName)
	if err != nil {
		return err
	}

	if *verbose {
		floodfill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	img, err := loadImage(in)
	if err != nil {
		return err
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	// Regions are found on base, which may be smaller than the image.
	var base *floodfill.Grid[color.NRGBA]
	if *scale == 1 {
		base = floodfill.FromImage(out)
	} else {
		bw, bh := max(b.Dx() / *scale, 1), max(b.Dy() / *scale, 1)
		base = floodfill.FromImage(floodfill.Downsample(out, bw, bh))
	}

	switch {
	case *pointsFile != "":
		err = fillPoints(out, base, fill)
	case *mode == "border":
		err = fillBorder(out, base, fill, border)
	default:
		err = fillRegion(out, base, fill)
	}
	if err != nil {
		return err
	}

	return savePNG(*destPath, out)
}

// fillRegion fills the region at the seed.  The region is painted on a
// transparent layer of the size of base, which is then scaled over out.
func fillRegion(out *image.NRGBA, base *floodfill.Grid[color.NRGBA], fill color.NRGBA) error {
	seed, err := seedPoint(base, out.Bounds().Dx(), out.Bounds().Dy())
	if err != nil {
		return err
	}
	mask, err := floodfill.NewMask(base, seed, fill)
	if err != nil {
		return err
	}

	layer := floodfill.NewGrid[color.NRGBA](base.Width, base.Height)
	if err := floodfill.ApplyMask(mask, layer, fill); err != nil {
		return err
	}
	floodfill.Overlay(out, layer)

	if *pdfPath != "" {
		return maskpdf.Write(*pdfPath, mask)
	}
	return nil
}

// fillBorder fills up to the border color.  base has the size of out.
func fillBorder(out *image.NRGBA, base *floodfill.Grid[color.NRGBA], fill, border color.NRGBA) error {
	seed, err := seedPoint(base, out.Bounds().Dx(), out.Bounds().Dy())
	if err != nil {
		return err
	}
	if err := floodfill.FillBorder(base, seed, fill, border); err != nil {
		return err
	}
	draw.Draw(out, out.Bounds(), floodfill.ToImage(base), image.Point{}, draw.Src)
	return nil
}

// fillPoints prepares one fill per record of the points file and shows
// the one which is current at the requested clock value.
func fillPoints(out *image.NRGBA, base *floodfill.Grid[color.NRGBA], fill color.NRGBA) error {
	points, err := readPoints(*pointsFile)
	if err != nil {
		return err
	}

	layer := floodfill.NewGrid[color.NRGBA](base.Width, base.Height)
	cues, err := timeline.FillCues(points, base, layer, fill)
	if err != nil {
		return fmt.Errorf("%s: %w", *pointsFile, err)
	}
	tl := timeline.New(cues...)
	if err := tl.Seek(*clock); err != nil {
		return err
	}
	floodfill.Overlay(out, layer)

	cue, ok := tl.Current()
	if !ok {
		floodfill.Logger().Info("no fill at clock value", "at", *clock)
		return nil
	}
	if *pdfPath != "" {
		return maskpdf.Write(*pdfPath, cue.Frame.(timeline.Fill).Mask)
	}
	return nil
}

// seedPoint returns the seed on the base grid.  width and height give
// the size of the original image, in which -x and -y are measured.
func seedPoint(base *floodfill.Grid[color.NRGBA], width, height int) (image.Point, error) {
	if *seedUV != "" {
		uv, err := parseUV(*seedUV)
		if err != nil {
			return image.Point{}, err
		}
		return floodfill.Seed(floodfill.UVMatrix(base.Width, base.Height), uv), nil
	}
	if *seedX < 0 || *seedY < 0 {
		return image.Point{}, errors.New("specify -x and -y, -uv or -points")
	}
	m := matrix.Scale(float64(base.Width)/float64(width), float64(base.Height)/float64(height))
	centre := vec.Vec2{X: float64(*seedX) + 0.5, Y: float64(*seedY) + 0.5}
	return floodfill.Seed(m, centre), nil
}

// parseColor accepts SVG color names and hex values #rrggbb or #rrggbbaa.
func parseColor(s string) (color.NRGBA, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 && len(hex) != 8 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		if len(hex) == 6 {
			v = v<<8 | 0xff
		}
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}

	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	// all named colors are opaque
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

func parseUV(s string) (vec.Vec2, error) {
	us, vs, ok := strings.Cut(s, ",")
	if !ok {
		return vec.Vec2{}, fmt.Errorf("invalid -uv %q, want u,v", s)
	}
	u, err := strconv.ParseFloat(strings.TrimSpace(us), 64)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("invalid -uv %q: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(vs), 64)
	if err != nil {
		return vec.Vec2{}, fmt.Errorf("invalid -uv %q: %w", s, err)
	}
	return vec.Vec2{X: u, Y: v}, nil
}

func loadImage(fileName string) (img image.Image, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, _, err = image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return img, nil
}

func readPoints(fileName string) (points []timeline.Point, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	points, err = timeline.ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return points, nil
}

func savePNG(fileName string, img image.Image) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
