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

// Vector3D is a free vector in space.
type Vector3D struct {
	I, J, K float64
}

// VectorBetween3D returns the vector pointing from start to end.
func VectorBetween3D(start, end Point3D) Vector3D {
	return end.Sub(start)
}

// Dot returns the scalar product of v and w.
func (v Vector3D) Dot(w Vector3D) float64 {
	return v.I*w.I + v.J*w.J + v.K*w.K
}

// Cross returns the vector product v × w, using the right-hand rule.
func (v Vector3D) Cross(w Vector3D) Vector3D {
	return Vector3D{
		I: v.J*w.K - v.K*w.J,
		J: v.K*w.I - v.I*w.K,
		K: v.I*w.J - v.J*w.I,
	}
}

// Norm returns the euclidean length of v.
func (v Vector3D) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns the unit vector pointing in the direction of v.
// The components of the result are not finite if v is the zero vector.
func (v Vector3D) Normalized() Vector3D {
	return v.ScaledBy(1 / v.Norm())
}

// IsNormal reports whether v has unit length, up to [Tolerance].
func (v Vector3D) IsNormal() bool {
	return AreEqual(v.Norm(), 1)
}

// IsZero reports whether all components are zero, up to [Tolerance].
func (v Vector3D) IsZero() bool {
	return IsEffectivelyZero(v.I) && IsEffectivelyZero(v.J) && IsEffectivelyZero(v.K)
}

// IsParallelTo reports whether v and w point in the same or in opposite
// directions, i.e. whether their cross product vanishes.
func (v Vector3D) IsParallelTo(w Vector3D) bool {
	return v.Cross(w).IsZero()
}

// IsPerpendicularTo reports whether v and w are at a right angle.
func (v Vector3D) IsPerpendicularTo(w Vector3D) bool {
	return IsEffectivelyZero(v.Dot(w))
}

// AngleValueTo returns the angle between v and w, in the range [0, π].
// Both vectors must be non-zero.
func (v Vector3D) AngleValueTo(w Vector3D) float64 {
	return math.Acos(clampUnit(v.Dot(w) / (v.Norm() * w.Norm())))
}

// ProjectionOver returns the length of the orthogonal projection of v onto
// the direction of w.
func (v Vector3D) ProjectionOver(w Vector3D) float64 {
	return v.Dot(w.Normalized())
}

// ScaledBy returns the vector factor·v.
func (v Vector3D) ScaledBy(factor float64) Vector3D {
	return Vector3D{I: v.I * factor, J: v.J * factor, K: v.K * factor}
}

// Opposite returns -v.
func (v Vector3D) Opposite() Vector3D {
	return Vector3D{I: -v.I, J: -v.J, K: -v.K}
}

// Add returns v + w.
func (v Vector3D) Add(w Vector3D) Vector3D {
	return Vector3D{I: v.I + w.I, J: v.J + w.J, K: v.K + w.K}
}

// Sub returns v - w.
func (v Vector3D) Sub(w Vector3D) Vector3D {
	return Vector3D{I: v.I - w.I, J: v.J - w.J, K: v.K - w.K}
}

// Equals reports whether all components agree up to [Tolerance].
func (v Vector3D) Equals(w Vector3D) bool {
	return AreEqual(v.I, w.I) && AreEqual(v.J, w.J) && AreEqual(v.K, w.K)
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%gi, %gj, %gk) with norm of %g", v.I, v.J, v.K, v.Norm())
}
