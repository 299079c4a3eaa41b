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

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FromVec2 quantises a float vector to the nearest integer vertex.
func FromVec2[T constraints.Signed](v vec.Vec2) Vertex[T] {
	return Vertex[T]{
		X: T(math.Round(v.X)),
		Y: T(math.Round(v.Y)),
	}
}

// Vec2 converts the vertex to a float vector.
func (p Vertex[T]) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// RegionFromRect returns the largest integer clip region contained in
// the rectangle r: the lower bounds are rounded up and the upper bounds
// rounded down.  LLy maps to Top and URy to Bottom, matching a
// y-grows-down device space with the rectangle in its usual
// lower-left/upper-right form.
func RegionFromRect[T constraints.Signed](r rect.Rect) Region[T] {
	return Region[T]{
		Left:   T(math.Ceil(r.LLx)),
		Right:  T(math.Floor(r.URx)),
		Top:    T(math.Ceil(r.LLy)),
		Bottom: T(math.Floor(r.URy)),
	}
}

// Path returns the polygon as a closed path, for handing clip results
// to path-based consumers such as rasterisers or PDF writers.  The
// returned path is empty if poly has fewer than three vertices.
func Path[T constraints.Signed](poly []Vertex[T]) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(poly) < 3 {
			return
		}

		var buf [1]vec.Vec2 // stack-allocated, reused for each yield

		buf[0] = poly[0].Vec2()
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for _, p := range poly[1:] {
			buf[0] = p.Vec2()
			if !yield(path.CmdLineTo, buf[:1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// FromPath extracts a polygon from a path consisting of a single closed
// polyline subpath, quantising each point to the nearest integer
// vertex.  Paths containing curve segments or more than one subpath
// cause an error; flatten such paths before clipping.
func FromPath[T constraints.Signed](p path.Path) ([]Vertex[T], error) {
	var poly []Vertex[T]
	started := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if started {
				return nil, fmt.Errorf("polyclip: path has more than one subpath")
			}
			started = true
			poly = append(poly, FromVec2[T](pts[0]))
		case path.CmdLineTo:
			poly = append(poly, FromVec2[T](pts[0]))
		case path.CmdClose:
			// implicit in the polygon representation
		default:
			return nil, fmt.Errorf("polyclip: unsupported path command %v", cmd)
		}
	}
	return poly, nil
}
