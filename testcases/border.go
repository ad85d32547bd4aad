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

var ring = []string{
	".......",
	".#####.",
	".#abc#.",
	".#cab#.",
	".#bca#.",
	".#####.",
	".......",
}

var borderCases = []TestCase{
	{
		Name:    "ring_multicolor",
		Picture: ring,
		Seed:    image.Pt(3, 3),
		Op:      Border{Color: 'o', Border: '#'},
		Want: []string{
			".......",
			".#####.",
			".#ooo#.",
			".#ooo#.",
			".#ooo#.",
			".#####.",
			".......",
		},
	},
	{
		Name:    "ring_outside",
		Picture: ring,
		Seed:    image.Pt(0, 6),
		Op:      Border{Color: 'o', Border: '#'},
		Want:    replace(ring, '.', 'o'),
	},
	{
		Name:    "seed_on_border",
		Picture: ring,
		Seed:    image.Pt(1, 1),
		Op:      Border{Color: 'o', Border: '#'},
		Want:    ring,
	},
	{
		Name: "leaky_ring",
		Picture: []string{
			".....",
			".#.#.",
			".#a#.",
			".###.",
			".....",
		},
		Seed: image.Pt(2, 2),
		Op:   Border{Color: 'o', Border: '#'},
		Want: []string{
			"ooooo",
			"o#o#o",
			"o#o#o",
			"o###o",
			"ooooo",
		},
	},
	{
		Name:    "no_border_present",
		Picture: stripes(6, 4, "abc"),
		Seed:    image.Pt(0, 0),
		Op:      Border{Color: 'o', Border: '#'},
		Want:    blank(6, 4, 'o'),
	},
	{
		Name: "interior_has_fill_color",
		Picture: []string{
			"#####",
			"#o.o#",
			"#####",
		},
		Seed: image.Pt(1, 1),
		Op:   Border{Color: 'o', Border: '#'},
		Want: []string{
			"#####",
			"#ooo#",
			"#####",
		},
	},
	{
		Name: "fill_equals_border",
		Picture: []string{
			"..#..",
			"..#..",
		},
		Seed: image.Pt(0, 0),
		Op:   Border{Color: '#', Border: '#'},
		Want: []string{
			"###..",
			"###..",
		},
	},
}
