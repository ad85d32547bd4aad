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

var fromCases = []TestCase{
	{
		Name: "lowres_to_blank",
		Picture: []string{
			"AAB",
			"ABB",
			"BBB",
		},
		Seed: image.Pt(0, 0),
		Op:   From{Target: blank(3, 3, '.'), Color: 'x'},
		Want: []string{
			"xx.",
			"x..",
			"...",
		},
	},
	{
		Name: "target_with_content",
		Picture: []string{
			"AXA",
			"AXA",
		},
		Seed: image.Pt(2, 1),
		Op:   From{Target: []string{"123", "456"}, Color: 'x'},
		Want: []string{
			"12x",
			"45x",
		},
	},
	{
		Name: "seed_has_fill_color_from",
		Picture: []string{
			"xx",
			"AA",
		},
		Seed: image.Pt(0, 0),
		Op:   From{Target: blank(2, 2, '.'), Color: 'x'},
		Want: blank(2, 2, '.'),
	},
	{
		// Pixels of the fill color in the source are not part of the region.
		Name: "fill_color_in_source",
		Picture: []string{
			"Ax",
			"AA",
		},
		Seed: image.Pt(0, 0),
		Op:   From{Target: blank(2, 2, '.'), Color: 'x'},
		Want: []string{
			"x.",
			"xx",
		},
	},
}
