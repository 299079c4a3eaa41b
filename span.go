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

package polyclip

import "golang.org/x/exp/constraints"

// ScanFill scan-converts a convex polygon into horizontal spans, calling
// emit once per scanline from the topmost to the bottommost vertex.
// Spans are inclusive on both ends: emit(y, x0, x1) covers the points
// (x0,y) through (x1,y).  Polygons with fewer than three vertices emit
// nothing.
//
// Span ends are interpolated with the same truncating integer division
// as the clipper, so filling a clipped polygon stays inside its clip
// region, and adjacent polygons sharing an edge fill complementary
// spans without gaps at the shared boundary.
//
// This is the consumption side of the clipper in a software rendering
// loop: clip against the viewport first, then ScanFill the result into
// the frame buffer.  The cost is O(len(poly)) per scanline.
func ScanFill[T constraints.Signed](poly []Vertex[T], emit func(y, x0, x1 T)) {
	if len(poly) < 3 {
		return
	}

	yMin, yMax := int64(poly[0].Y), int64(poly[0].Y)
	for _, p := range poly[1:] {
		y := int64(p.Y)
		yMin = min(yMin, y)
		yMax = max(yMax, y)
	}

	for y := yMin; y <= yMax; y++ {
		var xLo, xHi int64
		first := true

		x1, y1 := int64(poly[len(poly)-1].X), int64(poly[len(poly)-1].Y)
		for _, p := range poly {
			x2, y2 := int64(p.X), int64(p.Y)

			switch {
			case y1 == y2:
				// Horizontal edge: contributes both endpoints on its
				// own scanline, nothing elsewhere.
				if y == y1 {
					xLo, xHi, first = span(xLo, xHi, x1, first)
					xLo, xHi, first = span(xLo, xHi, x2, first)
				}
			case min(y1, y2) <= y && y <= max(y1, y2):
				x := x1 + (x2-x1)*(y-y1)/(y2-y1)
				xLo, xHi, first = span(xLo, xHi, x, first)
			}

			x1, y1 = x2, y2
		}

		if !first {
			emit(T(y), T(xLo), T(xHi))
		}
	}
}

// span folds the crossing point x into the running span [xLo, xHi].
func span(xLo, xHi, x int64, first bool) (int64, int64, bool) {
	if first {
		return x, x, false
	}
	return min(xLo, x), max(xHi, x), false
}
