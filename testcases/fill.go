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

package testcases

import "image"

var spiral = []string{
	".........",
	".#######.",
	".#.....#.",
	".#.###.#.",
	".#.#.#.#.",
	".#.#...#.",
	".#.#####.",
	".#.......",
	".........",
}

var fillCases = []TestCase{
	{
		Name: "corner_pixel",
		Picture: []string{
			"AAAA",
			"AAAA",
			"AAAA",
			"AAAB",
		},
		Seed: image.Pt(0, 0),
		Op:   Fill{Color: 'C'},
		Want: []string{
			"CCCC",
			"CCCC",
			"CCCC",
			"CCCB",
		},
	},
	{
		Name: "diagonal_split",
		Picture: []string{
			"AAB",
			"ABA",
			"BAA",
		},
		Seed: image.Pt(0, 0),
		Op:   Fill{Color: 'C'},
		Want: []string{
			"CCB",
			"CBA",
			"BAA",
		},
	},
	{
		Name: "walled_regions",
		Picture: []string{
			"AAXAA",
			"AAXAA",
			"XXXAA",
		},
		Seed: image.Pt(0, 0),
		Op:   Fill{Color: 'o'},
		Want: []string{
			"ooXAA",
			"ooXAA",
			"XXXAA",
		},
	},
	{
		Name: "checkerboard",
		Picture: []string{
			"ABAB",
			"BABA",
			"ABAB",
		},
		Seed: image.Pt(0, 0),
		Op:   Fill{Color: 'o'},
		Want: []string{
			"oBAB",
			"BABA",
			"ABAB",
		},
	},
	{
		Name: "u_shape",
		Picture: []string{
			"A.A.A",
			"A.A.A",
			"A...A",
			"AAAAA",
		},
		Seed: image.Pt(1, 0),
		Op:   Fill{Color: 'o'},
		Want: []string{
			"AoAoA",
			"AoAoA",
			"AoooA",
			"AAAAA",
		},
	},
	{
		Name:    "seed_mid_run",
		Picture: []string{"AAAAAXA"},
		Seed:    image.Pt(3, 0),
		Op:      Fill{Color: 'o'},
		Want:    []string{"oooooXA"},
	},
	{
		Name:    "spiral",
		Picture: spiral,
		Seed:    image.Pt(4, 4),
		Op:      Fill{Color: 'o'},
		Want:    replace(spiral, '.', 'o'),
	},
	{
		Name:    "spiral_wall",
		Picture: spiral,
		Seed:    image.Pt(1, 1),
		Op:      Fill{Color: 'o'},
		Want:    replace(spiral, '#', 'o'),
	},
	{
		Name:    "large_open",
		Picture: blank(300, 200, '.'),
		Seed:    image.Pt(150, 100),
		Op:      Fill{Color: 'o'},
		Want:    blank(300, 200, 'o'),
	},
}
