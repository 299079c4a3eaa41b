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

// The expected outputs are in the clipper's traversal order: each pass
// walks the edges in reverse index order anchored at vertex 0, so a
// fully inside polygon comes back unchanged, while partially clipped
// polygons come back starting from a pass-dependent vertex.

var basicCases = []TestCase{
	{
		Name:    "square_inside",
		Polygon: []Vertex{v(2, 2), v(8, 2), v(8, 8), v(2, 8)},
		Region:  Region{Left: 0, Right: 10, Top: 0, Bottom: 10},
		Want:    []Vertex{v(2, 2), v(8, 2), v(8, 8), v(2, 8)},
	},
	{
		Name:    "square_left_clip",
		Polygon: []Vertex{v(0, 0), v(10, 0), v(10, 10), v(0, 10)},
		Region:  Region{Left: 5, Right: 15, Top: -5, Bottom: 15},
		Want:    []Vertex{v(5, 10), v(5, 0), v(10, 0), v(10, 10)},
	},
	{
		Name:    "triangle_pentagon",
		Polygon: []Vertex{v(0, 0), v(20, 0), v(10, 20)},
		Region:  Region{Left: 5, Right: 15, Top: 0, Bottom: 20},
		Want:    []Vertex{v(5, 10), v(5, 0), v(15, 0), v(15, 10), v(10, 20)},
	},
	{
		Name:    "triangle_pentagon_reversed",
		Polygon: []Vertex{v(10, 20), v(20, 0), v(0, 0)},
		Region:  Region{Left: 5, Right: 15, Top: 0, Bottom: 20},
		Want:    []Vertex{v(10, 20), v(15, 10), v(15, 0), v(5, 0), v(5, 10)},
	},
	{
		Name:    "corner_overlap",
		Polygon: []Vertex{v(0, 0), v(10, 0), v(10, 10), v(0, 10)},
		Region:  Region{Left: 5, Right: 15, Top: 5, Bottom: 15},
		Want:    []Vertex{v(5, 10), v(5, 5), v(10, 5), v(10, 10)},
	},
}
