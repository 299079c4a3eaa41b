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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/polyclip"
)

// BenchmarkClip measures the raw clipper on regular polygons that
// overlap the clip region on all four sides.
func BenchmarkClip(b *testing.B) {
	sizes := []int{4, 16, 64}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("%dgon", n), func(b *testing.B) {
			src := regularPolygon(n, 500, 500, 400)
			region := polyclip.Region[int32]{Left: 200, Right: 800, Top: 200, Bottom: 800}
			scratch := make([]polyclip.Vertex[int32], 2*n)
			dst := make([]polyclip.Vertex[int32], polyclip.MaxOutput(n))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				polyclip.Clip(src, region, scratch, dst)
			}
		})
	}
}

// BenchmarkClipper measures the buffer-reusing wrapper; after the first
// iteration no allocations should remain.
func BenchmarkClipper(b *testing.B) {
	src := regularPolygon(16, 500, 500, 400)
	region := polyclip.Region[int32]{Left: 200, Right: 800, Top: 200, Bottom: 800}
	var c polyclip.Clipper[int32]

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		c.Clip(src, region)
	}
}

// BenchmarkScanFill benchmarks the clip-then-fill pipeline drawing an
// octagon into an alpha image.
func BenchmarkScanFill(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			src := regularPolygon(8, int32(size)/2, int32(size)/2, int32(float64(size)*0.45))
			region := polyclip.Region[int32]{
				Left: 0, Right: int32(size) - 1,
				Top: 0, Bottom: int32(size) - 1,
			}
			scratch := make([]polyclip.Vertex[int32], 2*len(src))
			dst := make([]polyclip.Vertex[int32], polyclip.MaxOutput(len(src)))

			img := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				n := polyclip.Clip(src, region, scratch, dst)
				polyclip.ScanFill(dst[:n], func(y, x0, x1 int32) {
					row := img.Pix[int(y)*img.Stride:]
					for x := x0; x <= x1; x++ {
						row[x] = 0xff
					}
				})
			}
		})
	}
}

// BenchmarkVector rasterises the same octagon with x/image/vector, as a
// point of comparison for the span filler.  The vector rasteriser
// anti-aliases, so it does strictly more work per pixel.
func BenchmarkVector(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			poly := regularPolygon(8, int32(size)/2, int32(size)/2, int32(float64(size)*0.45))

			r := vector.NewRasterizer(size, size)
			img := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
				for _, p := range poly[1:] {
					r.LineTo(float32(p.X), float32(p.Y))
				}
				r.ClosePath()
				r.Draw(img, img.Bounds(), src, image.Point{})
			}
		})
	}
}

// regularPolygon builds a convex n-gon inscribed in the circle with the
// given centre and radius, starting at the top.
func regularPolygon(n int, cx, cy, r int32) []polyclip.Vertex[int32] {
	poly := make([]polyclip.Vertex[int32], n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		poly[i] = polyclip.Vertex[int32]{
			X: cx + int32(math.Round(float64(r)*math.Cos(angle))),
			Y: cy + int32(math.Round(float64(r)*math.Sin(angle))),
		}
	}
	return poly
}
