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

// Clipper clips polygons using internal, reusable buffers.  The caller
// creates one instance and reuses it for many polygons.  The buffers
// grow as needed but never shrink, achieving zero allocations in steady
// state.
//
// A Clipper is not safe for concurrent use; use one Clipper per
// goroutine.
type Clipper[T constraints.Signed] struct {
	scratch []Vertex[T]
	out     []Vertex[T]
}

// Clip clips the convex polygon src against region and returns the
// visible sub-polygon, or nil if the polygon is not visible.  The
// returned slice aliases the Clipper's internal buffer and is only
// valid until the next call to Clip.
func (c *Clipper[T]) Clip(src []Vertex[T], region Region[T]) []Vertex[T] {
	if len(src) == 0 {
		return nil
	}

	sn := 2 * len(src)
	dn := MaxOutput(len(src))
	if cap(c.scratch) < sn {
		c.scratch = make([]Vertex[T], sn)
	}
	if cap(c.out) < dn {
		c.out = make([]Vertex[T], dn)
	}

	n := Clip(src, region, c.scratch[:sn], c.out[:dn])
	if n < 3 {
		return nil
	}
	return c.out[:n]
}

// ClipPolygon clips the convex polygon src against region and returns
// the visible sub-polygon in freshly allocated storage, or nil if the
// polygon is not visible.  This is the convenient form of [Clip] for
// callers that do not manage their own buffers.
func ClipPolygon[T constraints.Signed](src []Vertex[T], region Region[T]) []Vertex[T] {
	var c Clipper[T]
	poly := c.Clip(src, region)
	if poly == nil {
		return nil
	}
	out := make([]Vertex[T], len(poly))
	copy(out, poly)
	return out
}
