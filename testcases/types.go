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

// Package testcases defines the shared clipping test cases.  The cases
// are consumed by the package tests and by the export and genpdf
// commands.
package testcases

import "seehuhn.de/go/polyclip"

// Vertex and Region fix the coordinate type for all test cases to
// int16, the narrowest width the clipper targets and the one where the
// internal int64 widening actually matters.
type (
	Vertex = polyclip.Vertex[int16]
	Region = polyclip.Region[int16]
)

// TestCase defines a single clipping test.
type TestCase struct {
	Name    string   // lowercase a-z and _ only
	Polygon []Vertex // convex source polygon, either winding order
	Region  Region   // clip rectangle
	Want    []Vertex // expected output in traversal order; nil means not visible
}

// SharedEdgeCase describes two polygons meeting along a common edge
// that crosses exactly one clip bound.  Clipping A and B independently
// must produce bit-identical vertices on the shared edge.
type SharedEdgeCase struct {
	Name     string
	A, B     []Vertex // the two polygons; B lists the shared edge in the opposite direction
	P, Q     Vertex   // endpoints of the shared edge, P outside the region
	Crossing Vertex   // where the shared edge meets the bound, after truncation
	Region   Region
}

// v is a helper to create a Vertex from x, y coordinates.
func v(x, y int16) Vertex {
	return Vertex{X: x, Y: y}
}
