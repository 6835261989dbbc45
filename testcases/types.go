// seehuhn.de/go/geometry - geometric primitives for 2D and 3D mechanics
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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single geometry check, together with the expected
// outcome.
type TestCase struct {
	Name string    // lowercase a-z, 0-9 and _ only
	Op   Operation // the operation to check
}

// Operation is the geometric operation a test case exercises.
type Operation interface {
	isOperation()
}

// LineIntersection intersects the infinite lines A and B.
type LineIntersection struct {
	BaseA, DirA vec.Vec2
	BaseB, DirB vec.Vec2
	Found       bool     // false for parallel lines
	Want        vec.Vec2 // the intersection point, if Found
}

func (LineIntersection) isOperation() {}

// SegmentIntersection intersects the segments A0-A1 and B0-B1.
type SegmentIntersection struct {
	A0, A1 vec.Vec2
	B0, B1 vec.Vec2
	Found  bool
	Want   vec.Vec2
}

func (SegmentIntersection) isOperation() {}

// SegmentPoint locates the point at the given ratio along the segment
// Start-End.
type SegmentPoint struct {
	Start, End vec.Vec2
	Ratio      float64
	Invalid    bool // the ratio is outside [0, 1]
	Want       vec.Vec2
}

func (SegmentPoint) isOperation() {}

// TransformPoint applies the affine map M to P.
type TransformPoint struct {
	M    matrix.Matrix // M maps (x, y) to (M[0]x + M[2]y + M[4], M[1]x + M[3]y + M[5])
	P    vec.Vec2
	Want vec.Vec2
}

func (TransformPoint) isOperation() {}

// PolygonArea computes area and centroid of a simple polygon.
type PolygonArea struct {
	Vertices []vec.Vec2 // open or closed vertex list
	Area     float64
	Centroid vec.Vec2
}

func (PolygonArea) isOperation() {}

// RectangleIntersection intersects two axis-aligned rectangles.
type RectangleIntersection struct {
	A, B  rect.Rect
	Found bool
	Want  rect.Rect
}

func (RectangleIntersection) isOperation() {}

// CirclePolygon approximates a circle by a polygon.
type CirclePolygon struct {
	Center    vec.Vec2
	Radius    float64
	Divisions int
	Invalid   bool // too few divisions
	Want      []vec.Vec2
}

func (CirclePolygon) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
