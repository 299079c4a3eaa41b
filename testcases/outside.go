// seehuhn.de/go/polyclip - convex polygon clipping for rasterisation pipelines
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

// Polygons with no visible area: the clipper must report fewer than
// three vertices for all of these (Want == nil).

var outsideCases = []TestCase{
	{
		Name:    "left_of_region",
		Polygon: []Vertex{v(0, 0), v(20, 0), v(10, 20)},
		Region:  Region{Left: 100, Right: 200, Top: 0, Bottom: 100},
	},
	{
		Name:    "right_of_region",
		Polygon: []Vertex{v(50, 0), v(60, 0), v(60, 10), v(50, 10)},
		Region:  Region{Left: 0, Right: 40, Top: 0, Bottom: 40},
	},
	{
		Name:    "above_region",
		Polygon: []Vertex{v(0, -20), v(10, -20), v(10, -10), v(0, -10)},
		Region:  Region{Left: 0, Right: 10, Top: 0, Bottom: 10},
	},
	{
		Name:    "below_region",
		Polygon: []Vertex{v(0, 50), v(10, 50), v(10, 60), v(0, 60)},
		Region:  Region{Left: 0, Right: 40, Top: 0, Bottom: 40},
	},
	{
		Name:    "beyond_corner",
		Polygon: []Vertex{v(30, 30), v(40, 30), v(35, 40)},
		Region:  Region{Left: 0, Right: 10, Top: 0, Bottom: 10},
	},
	{
		// int16 extremes: far outside on both axes.
		Name:    "far_extremes",
		Polygon: []Vertex{v(-32000, -32000), v(-31000, -32000), v(-31500, -31000)},
		Region:  Region{Left: 31000, Right: 32000, Top: 31000, Bottom: 32000},
	},
}
