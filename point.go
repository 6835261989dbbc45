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

package geometry

import (
	"fmt"
	"math"
)

// Point2D is a point in the plane, given by cartesian coordinates.
type Point2D struct {
	X, Y float64
}

// DistanceTo returns the euclidean distance between p and q.
func (p Point2D) DistanceTo(q Point2D) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// DisplacedBy returns the point p + times·v.
func (p Point2D) DisplacedBy(v Vector2D, times float64) Point2D {
	d := v.ScaledBy(times)
	return Point2D{X: p.X + d.I, Y: p.Y + d.J}
}

// Add returns p displaced once by v.
func (p Point2D) Add(v Vector2D) Point2D {
	return p.DisplacedBy(v, 1)
}

// Sub returns the vector from q to p.
func (p Point2D) Sub(q Point2D) Vector2D {
	return Vector2D{I: p.X - q.X, J: p.Y - q.Y}
}

// WithZ returns the point in space which has p as its projection onto the
// xy-plane and the given z-coordinate.
func (p Point2D) WithZ(z float64) Point3D {
	return Point3D{X: p.X, Y: p.Y, Z: z}
}

// Equals reports whether both coordinates agree up to [Tolerance].
func (p Point2D) Equals(q Point2D) bool {
	return AreEqual(p.X, q.X) && AreEqual(p.Y, q.Y)
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
