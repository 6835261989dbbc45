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
	"math"

	"seehuhn.de/go/geometry"
)

// DefaultDivisions is the number of divisions to pass to [Circle.ToPolygon]
// when no specific accuracy is required.
const DefaultDivisions = 50

// Circle is a disc with positive radius.
type Circle struct {
	radius float64
	center geometry.Point2D
}

// NewCircle returns the circle with the given radius and center.
// The radius must be positive.
func NewCircle(radius float64, center geometry.Point2D) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, geometry.InvalidArgument("circle radius %g is not positive", radius)
	}
	return Circle{radius: radius, center: center}, nil
}

// NewCircleAtOrigin returns the circle with the given radius, centered at
// the origin.
func NewCircleAtOrigin(radius float64) (Circle, error) {
	return NewCircle(radius, geometry.Point2D{})
}

// Radius returns the radius of the circle.
func (c Circle) Radius() float64 {
	return c.radius
}

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 {
	return 2 * c.radius
}

// Center returns the center of the circle.
func (c Circle) Center() geometry.Point2D {
	return c.center
}

// WithRadius returns a copy of c with the radius replaced.
func (c Circle) WithRadius(radius float64) (Circle, error) {
	return NewCircle(radius, c.center)
}

// WithDiameter returns a copy of c with the diameter replaced.
func (c Circle) WithDiameter(diameter float64) (Circle, error) {
	if !(diameter > 0) {
		return Circle{}, geometry.InvalidArgument("circle diameter %g is not positive", diameter)
	}
	return NewCircle(diameter/2, c.center)
}

// WithCenter returns a copy of c, moved to the given center.
func (c Circle) WithCenter(center geometry.Point2D) Circle {
	c.center = center
	return c
}

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Circumference returns 2π·r.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// ContainsPoint reports whether p lies strictly inside the circle.
func (c Circle) ContainsPoint(p geometry.Point2D) bool {
	return c.center.DistanceTo(p) < c.radius
}

// ToPolygon approximates the circle by an inscribed polygon.
//
// The circle is divided into the given number of equal angular steps,
// starting on the positive x-axis.  The vertices are placed at the first
// divisions-1 of these angles, so that the result has divisions-1
// vertices and the last step is left out.  At least four divisions are
// required.
func (c Circle) ToPolygon(divisions int) (Polygon, error) {
	if divisions < 4 {
		return Polygon{}, geometry.InvalidArgument("%d circle divisions do not give a polygon", divisions)
	}

	step := 2 * math.Pi / float64(divisions)
	vertices := make([]geometry.Point2D, divisions-1)
	for k := range vertices {
		dir := geometry.Vector2D{I: 1}.Rotated(float64(k) * step)
		vertices[k] = c.center.DisplacedBy(dir, c.radius)
	}
	return Polygon{vertices: vertices}, nil
}

// Equals reports whether radius and center agree up to
// [geometry.Tolerance].
func (c Circle) Equals(other Circle) bool {
	return geometry.AreEqual(c.radius, other.radius) && c.center.Equals(other.center)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle of radius %g at %s", c.radius, c.center)
}
