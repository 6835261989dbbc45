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


package shapes

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geometry"
)

// Rectangle is an axis-aligned rectangle with positive width and height.
// The origin is the bottom-left corner.
type Rectangle struct {
	width, height float64
	origin        geometry.Point2D
}

// NewRectangle returns the rectangle with the given size and bottom-left
// corner.  Width and height must be positive.
func NewRectangle(width, height float64, origin geometry.Point2D) (Rectangle, error) {
	if !(width > 0) {
		return Rectangle{}, geometry.InvalidArgument("rectangle width %g is not positive", width)
	}
	if !(height > 0) {
		return Rectangle{}, geometry.InvalidArgument("rectangle height %g is not positive", height)
	}
	return Rectangle{width: width, height: height, origin: origin}, nil
}

// NewRectangleAtOrigin returns the rectangle with the given size and the
// bottom-left corner at the origin.
func NewRectangleAtOrigin(width, height float64) (Rectangle, error) {
	return NewRectangle(width, height, geometry.Point2D{})
}

// RectangleFromRect converts a rectangle from seehuhn.de/go/geom.
func RectangleFromRect(r rect.Rect) (Rectangle, error) {
	return NewRectangle(r.URx-r.LLx, r.URy-r.LLy, geometry.Point2D{X: r.LLx, Y: r.LLy})
}

// Rect converts r to the seehuhn.de/go/geom representation.
func (r Rectangle) Rect() rect.Rect {
	return rect.Rect{LLx: r.Left(), LLy: r.Bottom(), URx: r.Right(), URy: r.Top()}
}

func (r Rectangle) Width() float64           { return r.width }
func (r Rectangle) Height() float64          { return r.height }
func (r Rectangle) Origin() geometry.Point2D { return r.origin }

func (r Rectangle) Left() float64   { return r.origin.X }
func (r Rectangle) Right() float64  { return r.origin.X + r.width }
func (r Rectangle) Bottom() float64 { return r.origin.Y }
func (r Rectangle) Top() float64    { return r.origin.Y + r.height }

// WithWidth returns a copy of r with the width replaced.
func (r Rectangle) WithWidth(width float64) (Rectangle, error) {
	return NewRectangle(width, r.height, r.origin)
}

// WithHeight returns a copy of r with the height replaced.
func (r Rectangle) WithHeight(height float64) (Rectangle, error) {
	return NewRectangle(r.width, height, r.origin)
}

// WithOrigin returns a copy of r, moved so that its bottom-left corner is
// at origin.
func (r Rectangle) WithOrigin(origin geometry.Point2D) Rectangle {
	r.origin = origin
	return r
}

// Area returns width·height.
func (r Rectangle) Area() float64 {
	return r.width * r.height
}

// Perimeter returns the total length of the four sides.
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

// Centroid returns the center of the rectangle.
func (r Rectangle) Centroid() geometry.Point2D {
	return geometry.Point2D{
		X: (r.Left() + r.Right()) / 2,
		Y: (r.Bottom() + r.Top()) / 2,
	}
}

// ContainsPoint reports whether p lies strictly inside the rectangle.
func (r Rectangle) ContainsPoint(p geometry.Point2D) bool {
	return r.horizontal().Contains(p.X) && r.vertical().Contains(p.Y)
}

// IntersectionWith returns the common part of the two rectangles.
// The second return value is false if the interiors of the rectangles are
// disjoint.  In particular, rectangles which only share an edge do not
// intersect.
func (r Rectangle) IntersectionWith(other Rectangle) (Rectangle, bool) {
	h, ok := r.horizontal().Overlap(other.horizontal())
	if !ok {
		return Rectangle{}, false
	}
	v, ok := r.vertical().Overlap(other.vertical())
	if !ok {
		return Rectangle{}, false
	}
	return Rectangle{
		width:  h.Length(),
		height: v.Length(),
		origin: geometry.Point2D{X: h.Start(), Y: v.Start()},
	}, true
}

// ToPolygon returns the four corners of the rectangle, in counter-clockwise
// order starting at the origin.
func (r Rectangle) ToPolygon() Polygon {
	return Polygon{vertices: []geometry.Point2D{
		{X: r.Left(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Left(), Y: r.Top()},
	}}
}

// Equals reports whether size and position agree up to
// [geometry.Tolerance].
func (r Rectangle) Equals(other Rectangle) bool {
	return geometry.AreEqual(r.width, other.width) &&
		geometry.AreEqual(r.height, other.height) &&
		r.origin.Equals(other.origin)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%gx%g rectangle at %s", r.width, r.height, r.origin)
}

// The bounds of a valid rectangle are ordered, so the interval
// constructors cannot fail.

func (r Rectangle) horizontal() geometry.OpenInterval {
	iv, _ := geometry.NewOpenInterval(r.Left(), r.Right())
	return iv
}

func (r Rectangle) vertical() geometry.OpenInterval {
	iv, _ := geometry.NewOpenInterval(r.Bottom(), r.Top())
	return iv
}
