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

// Cases where vertices or edges land exactly on the clip bounds.  The
// bounds are inclusive, so geometry on the boundary survives unchanged.

var boundaryCases = []TestCase{
	{
		Name:    "region_equals_polygon",
		Polygon: []Vertex{v(0, 0), v(10, 0), v(10, 10), v(0, 10)},
		Region:  Region{Left: 0, Right: 10, Top: 0, Bottom: 10},
		Want:    []Vertex{v(0, 0), v(10, 0), v(10, 10), v(0, 10)},
	},
	{
		Name:    "vertex_on_corner",
		Polygon: []Vertex{v(0, 0), v(10, 0), v(0, 10)},
		Region:  Region{Left: 0, Right: 10, Top: 0, Bottom: 10},
		Want:    []Vertex{v(0, 0), v(10, 0), v(0, 10)},
	},
	{
		Name:    "edge_clamped_left",
		Polygon: []Vertex{v(-5, 0), v(5, 0), v(5, 10), v(-5, 10)},
		Region:  Region{Left: 0, Right: 10, Top: 0, Bottom: 10},
		Want:    []Vertex{v(0, 10), v(0, 0), v(5, 0), v(5, 10)},
	},
	{
		// The right half of the square is cut off; the square's own
		// right edge lies entirely outside and is skipped, with the
		// new edge on x=10 taking its place.
		Name:    "outside_edge_skipped",
		Polygon: []Vertex{v(8, 2), v(14, 2), v(14, 8), v(8, 8)},
		Region:  Region{Left: 0, Right: 10, Top: 0, Bottom: 10},
		Want:    []Vertex{v(8, 2), v(10, 2), v(10, 8), v(8, 8)},
	},
	{
		// A triangle poking out of all four region sides.  The first
		// pass grows the polygon to five vertices, the second to
		// seven, the worst case for a triangle.  The last vertex
		// repeats the first: the closing edge is clamped onto the
		// corner the walk started from.
		Name:    "four_side_overlap",
		Polygon: []Vertex{v(-8, 6), v(14, -8), v(5, 14)},
		Region:  Region{Left: 0, Right: 10, Top: 0, Bottom: 10},
		Want: []Vertex{
			v(0, 10), v(0, 1), v(2, 0), v(10, 0),
			v(10, 1), v(6, 10), v(0, 10),
		},
	},
}
