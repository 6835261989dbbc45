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

// Point3D is a point in space, given by cartesian coordinates.
type Point3D struct {
	X, Y, Z float64
}

// DistanceTo returns the euclidean distance between p and q.
func (p Point3D) DistanceTo(q Point3D) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	dz := q.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DisplacedBy returns the point p + times·v.
func (p Point3D) DisplacedBy(v Vector3D, times float64) Point3D {
	d := v.ScaledBy(times)
	return Point3D{X: p.X + d.I, Y: p.Y + d.J, Z: p.Z + d.K}
}

// Add returns p displaced once by v.
func (p Point3D) Add(v Vector3D) Point3D {
	return p.DisplacedBy(v, 1)
}

// Sub returns the vector from q to p.
func (p Point3D) Sub(q Point3D) Vector3D {
	return Vector3D{I: p.X - q.X, J: p.Y - q.Y, K: p.Z - q.Z}
}

// Equals reports whether all three coordinates agree up to [Tolerance].
func (p Point3D) Equals(q Point3D) bool {
	return AreEqual(p.X, q.X) && AreEqual(p.Y, q.Y) && AreEqual(p.Z, q.Z)
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
