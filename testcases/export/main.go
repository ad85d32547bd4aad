// Command export writes the flood fill test cases, together with their
// results, to JSON so that other implementations can be checked against
// them.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/floodfill"
	"seehuhn.de/go/floodfill/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	f := new(floodfill.Filler[byte])
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(f, category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	fd, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer fd.Close()

	enc := json.NewEncoder(fd)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string        `json:"name"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Picture []string      `json:"picture"`
	Outline []jsonSegment `json:"outline,omitempty"`
	Ink     string        `json:"ink,omitempty"`
	Seed    [2]int        `json:"seed"`
	Op      string        `json:"op"`
	Color   string        `json:"color"`
	Border  string        `json:"border,omitempty"`
	Target  []string      `json:"target,omitempty"`
	Result  []string      `json:"result"`
	Indices []int         `json:"indices"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(f *floodfill.Filler[byte], category string, tc testcases.TestCase) (jsonTestCase, error) {
	// Outlines are exported already painted into the picture, so that
	// consumers need no rasteriser.
	g := tc.Grid()
	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   g.Width,
		Height:  g.Height,
		Picture: testcases.Format(g),
		Seed:    [2]int{tc.Seed.X, tc.Seed.Y},
	}
	if tc.Outline != nil {
		jtc.Outline = pathToJSON(tc.Outline)
		jtc.Ink = string(tc.Ink)
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		jtc.Color = string(op.Color)
	case testcases.Border:
		jtc.Op = "border"
		jtc.Color = string(op.Color)
		jtc.Border = string(op.Border)
	case testcases.From:
		jtc.Op = "from"
		jtc.Color = string(op.Color)
		jtc.Target = op.Target
	}

	res, err := tc.Run(f)
	if err != nil {
		return jtc, err
	}
	jtc.Result = testcases.Format(res)

	mask, err := tc.Mask(f)
	if err != nil {
		return jtc, err
	}
	jtc.Indices = slices.Sorted(slices.Values(mask.Indices))
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
