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

var edgeCases = []TestCase{
	{
		Name:    "single_pixel",
		Picture: []string{"A"},
		Seed:    image.Pt(0, 0),
		Op:      Fill{Color: 'B'},
		Want:    []string{"B"},
	},
	{
		Name:    "single_pixel_prefilled",
		Picture: []string{"B"},
		Seed:    image.Pt(0, 0),
		Op:      Fill{Color: 'B'},
		Want:    []string{"B"},
	},
	{
		Name: "seed_has_fill_color",
		Picture: []string{
			"oAo",
			"AoA",
		},
		Seed: image.Pt(0, 0),
		Op:   Fill{Color: 'o'},
		Want: []string{
			"oAo",
			"AoA",
		},
	},
	{
		Name:    "one_column",
		Picture: []string{"A", "A", "B", "A"},
		Seed:    image.Pt(0, 1),
		Op:      Fill{Color: 'o'},
		Want:    []string{"o", "o", "B", "A"},
	},
	{
		Name:    "one_row_right_edge",
		Picture: []string{"BAAA"},
		Seed:    image.Pt(3, 0),
		Op:      Fill{Color: 'o'},
		Want:    []string{"Booo"},
	},
	{
		Name:    "full_buffer",
		Picture: blank(8, 5, 'A'),
		Seed:    image.Pt(7, 4),
		Op:      Fill{Color: 'o'},
		Want:    blank(8, 5, 'o'),
	},
}
