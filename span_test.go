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

package polyclip_test

import (
	"slices"
	"testing"

	"seehuhn.de/go/polyclip"
)

type span struct {
	y, x0, x1 int32
}

func collectSpans(poly []polyclip.Vertex[int32]) []span {
	var spans []span
	polyclip.ScanFill(poly, func(y, x0, x1 int32) {
		spans = append(spans, span{y, x0, x1})
	})
	return spans
}

func TestScanFillRectangle(t *testing.T) {
	poly := []polyclip.Vertex[int32]{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	var want []span
	for y := int32(0); y <= 10; y++ {
		want = append(want, span{y, 0, 10})
	}
	if got := collectSpans(poly); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanFillTriangle(t *testing.T) {
	poly := []polyclip.Vertex[int32]{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}

	want := []span{
		{0, 0, 4},
		{1, 0, 3},
		{2, 0, 2},
		{3, 0, 1},
		{4, 0, 0},
	}
	if got := collectSpans(poly); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanFillDegenerate(t *testing.T) {
	for _, poly := range [][]polyclip.Vertex[int32]{
		nil,
		{{X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 5, Y: 5}},
	} {
		if got := collectSpans(poly); got != nil {
			t.Errorf("%v: expected no spans, got %v", poly, got)
		}
	}
}

// TestScanFillClipped runs the clip-then-fill pipeline and checks that
// no span leaves the clip region.
func TestScanFillClipped(t *testing.T) {
	src := []polyclip.Vertex[int32]{{X: -20, Y: -10}, {X: 40, Y: 0}, {X: 10, Y: 50}}
	region := polyclip.Region[int32]{Left: 0, Right: 30, Top: 0, Bottom: 30}

	poly := polyclip.ClipPolygon(src, region)
	if poly == nil {
		t.Fatal("polygon unexpectedly invisible")
	}

	spans := collectSpans(poly)
	if len(spans) == 0 {
		t.Fatal("no spans emitted")
	}
	for _, s := range spans {
		if s.y < region.Top || s.y > region.Bottom {
			t.Errorf("span at y=%d outside region", s.y)
		}
		if s.x0 < region.Left || s.x1 > region.Right || s.x0 > s.x1 {
			t.Errorf("span [%d,%d] at y=%d outside region or inverted", s.x0, s.x1, s.y)
		}
	}
}
