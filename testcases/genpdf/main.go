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

// Command genpdf draws each clip test case into a PDF file for visual
// inspection: the clip region in gray, the source polygon as an
// outline, and the clipped result as a filled shape.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyclip"
	"seehuhn.de/go/polyclip/testcases"
)

const refDir = "testdata/reference"

const margin = 5

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	xMin, yMin, xMax, yMax := bounds(tc)

	w := float64(xMax-xMin) + 2*margin
	h := float64(yMax-yMin) + 2*margin
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the clipper's coordinates assume
	// y growing downwards.  Flip the y axis and shift the bounding
	// box into the page.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	page.Transform(matrix.Matrix{1, 0, 0, 1, margin - float64(xMin), margin - float64(yMin)})

	// clip region
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.4)
	page.Rectangle(float64(tc.Region.Left), float64(tc.Region.Top),
		float64(tc.Region.Right-tc.Region.Left), float64(tc.Region.Bottom-tc.Region.Top))
	page.Stroke()

	// clipped result, if visible
	if clipped := polyclip.ClipPolygon(tc.Polygon, tc.Region); clipped != nil {
		page.SetFillColor(color.DeviceGray(0.8))
		drawPolygon(page, clipped)
		page.Fill()
	}

	// source polygon outline
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.4)
	drawPolygon(page, tc.Polygon)
	page.Stroke()

	return page.Close()
}

// pathWriter is the part of the page's graphics interface needed to
// emit polygon outlines.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func drawPolygon(page pathWriter, poly []testcases.Vertex) {
	for cmd, pts := range polyclip.Path(poly) {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// bounds returns the joint bounding box of the polygon and the region.
func bounds(tc testcases.TestCase) (xMin, yMin, xMax, yMax int16) {
	xMin, xMax = tc.Region.Left, tc.Region.Right
	yMin, yMax = tc.Region.Top, tc.Region.Bottom
	for _, p := range tc.Polygon {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return xMin, yMin, xMax, yMax
}
