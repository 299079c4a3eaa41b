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

// Package polyclip clips convex polygons against axis-aligned rectangles
// using exact integer arithmetic.
//
// The clipper runs two separable passes (first against the left/right
// bounds, then against the top/bottom bounds), each a Sutherland-Hodgman
// style reduction specialised for axis-aligned boundaries.  Boundary
// crossings are interpolated with truncating integer division, so two
// polygons sharing an edge produce bit-identical boundary vertices when
// clipped against the same region.  This avoids the cracks and T-joints
// that floating-point clippers introduce between adjacent polygons.
//
// Winding order does not matter: each edge is handled according to its
// own direction along the clipped axis.  Concave or self-intersecting
// polygons are not supported; the output for such input is unspecified.
package polyclip

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Vertex is a 2D point with integer coordinates.  The coordinate type is
// a type parameter so that callers can pick the width their pipeline
// needs; all intermediate arithmetic is carried out in int64, so even
// int8 or int16 coordinates never overflow during interpolation.
type Vertex[T constraints.Signed] struct {
	X, Y T
}

// Region is an axis-aligned clip rectangle.  The bounds are inclusive:
// vertices with X == Left or X == Right survive clipping unchanged.
//
// Left <= Right and Top <= Bottom must hold (the names follow screen
// conventions where y grows downwards).  This is not validated.
type Region[T constraints.Signed] struct {
	Left, Right, Top, Bottom T
}

// ErrBufferSize indicates that the scratch buffer is smaller than
// twice the source vertex count, or the output buffer smaller than
// [MaxOutput] of it.
var ErrBufferSize = errors.New("polyclip: clip buffer too small")

// Clip clips the convex polygon src against region and writes the result
// to dst, returning the number of vertices written.  A return value
// below 3 means the polygon is not visible inside the region; in that
// case the contents of dst are unspecified.
//
// scratch holds the intermediate result of the first pass and must
// have length at least 2*len(src): a single pass can emit at most two
// vertices per edge of its own input (the edge's surviving endpoint
// plus one boundary crossing).  dst must have length at least
// [MaxOutput](len(src)).  The second pass reads the first pass's
// output, which for convex input can already hold len(src)+2 vertices,
// so the final result can grow to len(src)+4; for a triangle that is
// more than 2*len(src).  Undersized buffers cause a runtime
// panic.  Use [ClipChecked] to get an error instead, or [Clipper] /
// [ClipPolygon] to avoid manual buffer sizing entirely.
//
// Clip does not allocate.  It is safe to call concurrently as long as
// each call uses its own buffers.
func Clip[T constraints.Signed](src []Vertex[T], region Region[T], scratch, dst []Vertex[T]) int {
	if len(src) == 0 {
		return 0
	}

	n := clipAxis(scratch, src, int64(region.Left), int64(region.Right), false)
	if n < 3 {
		// The x pass already clipped the polygon away.
		return n
	}
	return clipAxis(dst, scratch[:n], int64(region.Top), int64(region.Bottom), true)
}

// ClipChecked is like [Clip] but verifies the buffer size contract
// first, returning [ErrBufferSize] if scratch or dst is too small.  The
// numeric behaviour is identical to Clip.
func ClipChecked[T constraints.Signed](src []Vertex[T], region Region[T], scratch, dst []Vertex[T]) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	if len(scratch) < 2*len(src) || len(dst) < MaxOutput(len(src)) {
		return 0, ErrBufferSize
	}
	return Clip(src, region, scratch, dst), nil
}

// MaxOutput returns the maximum number of vertices [Clip] can write to
// dst for a convex polygon with n vertices, and thus the minimum
// length of the dst buffer.  Clipping a convex polygon against a
// half-plane adds at most one vertex, and each pass clips against two
// bounds, so the first pass yields at most n+2 vertices and the second
// at most n+4.  The 2*n term keeps the bound valid for inputs whose
// first pass emits the full two vertices per edge.
func MaxOutput(n int) int {
	return max(2*n, n+4)
}

// clipAxis clips the polygon src against the interval [lo, hi] on one
// axis, writing the result to dst and returning the vertex count.  When
// vertical is false the x coordinate is clipped, otherwise the y
// coordinate.  Both passes of [Clip] go through this one function, so
// the arithmetic is exactly symmetric in x and y.
//
// The edges are walked in reverse index order, with vertex 0 as the
// fixed anchor of the first edge.  For each edge the start point is
// clamped to the near bound if needed, then emitted; if the edge leaves
// through the far bound, a second vertex is emitted exactly on that
// bound.  Edges entirely outside the interval emit nothing.  In every
// case the original, unclipped endpoint becomes the start of the next
// edge, so clipping one edge never disturbs its neighbours.
//
// The interpolated coordinate is
//
//	v1 + (v2-v1)*(bound-u1)/(u2-u1)
//
// with truncating division.  The divisor cannot be zero: each clamp
// requires a strict inequality across the bound (e.g. u1 < lo), while
// the rejection test has already placed the other endpoint on or inside
// the same bound (u2 >= lo).  This holds for degenerate edges too.
func clipAxis[T constraints.Signed](dst, src []Vertex[T], lo, hi int64, vertical bool) int {
	n := 0
	u1, v1 := axes(src[0], vertical)
	for i := len(src) - 1; i >= 0; i-- {
		u2, v2 := axes(src[i], vertical)
		ou, ov := u2, v2

		if u1 > u2 {
			// The edge runs from high to low along the clipped axis.
			if u1 < lo || u2 > hi {
				u1, v1 = ou, ov
				continue
			}

			if u1 > hi {
				v1 += (v2 - v1) * (hi - u1) / (u2 - u1)
				u1 = hi
			}
			dst[n] = vertexOn[T](u1, v1, vertical)
			n++

			if u2 < lo {
				dst[n] = vertexOn[T](lo, v2+(v1-v2)*(lo-u2)/(u1-u2), vertical)
				n++
			}
		} else {
			// Low to high, mirrored logic.
			if u2 < lo || u1 > hi {
				u1, v1 = ou, ov
				continue
			}

			if u1 < lo {
				v1 += (v2 - v1) * (lo - u1) / (u2 - u1)
				u1 = lo
			}
			dst[n] = vertexOn[T](u1, v1, vertical)
			n++

			if u2 > hi {
				dst[n] = vertexOn[T](hi, v2+(v1-v2)*(hi-u2)/(u1-u2), vertical)
				n++
			}
		}

		u1, v1 = ou, ov
	}
	return n
}

// axes returns the coordinates of p as (clipped axis, other axis).
func axes[T constraints.Signed](p Vertex[T], vertical bool) (int64, int64) {
	if vertical {
		return int64(p.Y), int64(p.X)
	}
	return int64(p.X), int64(p.Y)
}

// vertexOn is the inverse of axes: it builds a vertex from the clipped
// axis coordinate u and the other axis coordinate v.  The narrowing
// conversions are safe because every emitted coordinate is either an
// original coordinate or clamped to a bound of the clip region.
func vertexOn[T constraints.Signed](u, v int64, vertical bool) Vertex[T] {
	if vertical {
		return Vertex[T]{X: T(v), Y: T(u)}
	}
	return Vertex[T]{X: T(u), Y: T(v)}
}
