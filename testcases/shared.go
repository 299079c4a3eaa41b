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

// SharedEdge lists pairs of adjacent polygons whose common edge crosses
// a clip bound at a non-integer position, so the crossing vertex is
// subject to truncation.  The clipper anchors the interpolation at the
// outside endpoint of the crossing edge regardless of traversal
// direction, which makes the truncated result identical for both
// polygons; rendering them after clipping leaves no crack along the
// shared edge.
var SharedEdge = []SharedEdgeCase{
	{
		// shared edge crosses the left bound at (0, 6)
		Name:     "cross_left",
		A:        []Vertex{v(-6, 2), v(14, 18), v(-6, 18)},
		B:        []Vertex{v(14, 18), v(-6, 2), v(14, 2)},
		P:        v(-6, 2),
		Q:        v(14, 18),
		Crossing: v(0, 6),
		Region:   Region{Left: 0, Right: 20, Top: 0, Bottom: 20},
	},
	{
		// shared edge crosses the bottom bound at (7, 20)
		Name:     "cross_bottom",
		A:        []Vertex{v(5, 25), v(15, 5), v(5, 5)},
		B:        []Vertex{v(15, 5), v(5, 25), v(15, 25)},
		P:        v(5, 25),
		Q:        v(15, 5),
		Crossing: v(7, 20),
		Region:   Region{Left: 0, Right: 20, Top: 0, Bottom: 20},
	},
	{
		// shared edge crosses the top bound at (11, 0)
		Name:     "cross_top",
		A:        []Vertex{v(8, -7), v(18, 13), v(8, 13)},
		B:        []Vertex{v(18, 13), v(8, -7), v(18, -7)},
		P:        v(8, -7),
		Q:        v(18, 13),
		Crossing: v(11, 0),
		Region:   Region{Left: 0, Right: 20, Top: 0, Bottom: 20},
	},
}
