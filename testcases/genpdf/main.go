// Command genpdf generates reference masks for the flood fill tests.
// For every test case the fill region is written as a vector PDF, which
// is then rendered to a PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/floodfill"
	"seehuhn.de/go/floodfill/maskpdf"
	"seehuhn.de/go/floodfill/testcases"
)

const refDir = "testdata/reference"

func main() {
	noPNG := flag.Bool("nopng", false, "only write the PDF files")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	f := new(floodfill.Filler[byte])
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			mask, err := tc.Mask(f)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := maskpdf.Write(pdfPath, mask); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, white = inside the mask
	// -r72: 72 DPI (1 point = 1 pixel)
	// no anti-aliasing, masks cover whole pixels
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
