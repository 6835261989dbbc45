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

// Vector2D is a free vector in the plane.
type Vector2D struct {
	I, J float64
}

// VectorBetween returns the vector pointing from start to end.
func VectorBetween(start, end Point2D) Vector2D {
	return end.Sub(start)
}

// WithK returns the vector in space with v as its xy-components.
func (v Vector2D) WithK(k float64) Vector3D {
	return Vector3D{I: v.I, J: v.J, K: k}
}

// Dot returns the scalar product of v and w.
func (v Vector2D) Dot(w Vector2D) float64 {
	return v.I*w.I + v.J*w.J
}

// Cross returns the z-component of the cross product of v and w, when both
// are embedded in the xy-plane.  The result is positive if w is reached from
// v by a counter-clockwise rotation of less than π.
func (v Vector2D) Cross(w Vector2D) float64 {
	return v.I*w.J - v.J*w.I
}

// Norm returns the euclidean length of v.
func (v Vector2D) Norm() float64 {
	return math.Hypot(v.I, v.J)
}

// Normalized returns the unit vector pointing in the direction of v.
// The components of the result are not finite if v is the zero vector.
func (v Vector2D) Normalized() Vector2D {
	return v.ScaledBy(1 / v.Norm())
}

// IsNormal reports whether v has unit length, up to [Tolerance].
func (v Vector2D) IsNormal() bool {
	return AreEqual(v.Norm(), 1)
}

// IsZero reports whether both components are zero, up to [Tolerance].
func (v Vector2D) IsZero() bool {
	return IsEffectivelyZero(v.I) && IsEffectivelyZero(v.J)
}

// IsParallelTo reports whether v and w point in the same or in opposite
// directions.
func (v Vector2D) IsParallelTo(w Vector2D) bool {
	return IsEffectivelyZero(v.Cross(w))
}

// IsPerpendicularTo reports whether v and w are at a right angle.
func (v Vector2D) IsPerpendicularTo(w Vector2D) bool {
	return IsEffectivelyZero(v.Dot(w))
}

// AngleValueTo returns the unsigned angle between v and w, in the range
// [0, π].  Both vectors must be non-zero.
func (v Vector2D) AngleValueTo(w Vector2D) float64 {
	return math.Acos(clampUnit(v.Dot(w) / (v.Norm() * w.Norm())))
}

// AngleTo returns the signed angle of the rotation which takes v to the
// direction of w.  Counter-clockwise rotations are positive.
func (v Vector2D) AngleTo(w Vector2D) float64 {
	angle := v.AngleValueTo(w)
	if v.Cross(w) < 0 {
		return -angle
	}
	return angle
}

// Rotated returns v rotated counter-clockwise by the given angle.
func (v Vector2D) Rotated(radians float64) Vector2D {
	sin, cos := math.Sincos(radians)
	return Vector2D{
		I: v.I*cos - v.J*sin,
		J: v.I*sin + v.J*cos,
	}
}

// Perpendicular returns v rotated counter-clockwise by 90 degrees.
func (v Vector2D) Perpendicular() Vector2D {
	return Vector2D{I: -v.J, J: v.I}
}

// ProjectionOver returns the length of the orthogonal projection of v onto
// the direction of w.  The result is negative if the angle between the two
// vectors exceeds π/2.
func (v Vector2D) ProjectionOver(w Vector2D) float64 {
	return v.Dot(w.Normalized())
}

// ScaledBy returns the vector factor·v.
func (v Vector2D) ScaledBy(factor float64) Vector2D {
	return Vector2D{I: v.I * factor, J: v.J * factor}
}

// Opposite returns -v.
func (v Vector2D) Opposite() Vector2D {
	return Vector2D{I: -v.I, J: -v.J}
}

// Add returns v + w.
func (v Vector2D) Add(w Vector2D) Vector2D {
	return Vector2D{I: v.I + w.I, J: v.J + w.J}
}

// Sub returns v - w.
func (v Vector2D) Sub(w Vector2D) Vector2D {
	return Vector2D{I: v.I - w.I, J: v.J - w.J}
}

// Cosine returns the cosine of the angle between v and the positive x-axis.
func (v Vector2D) Cosine() float64 {
	return v.I / v.Norm()
}

// Sine returns the sine of the angle between v and the positive x-axis.
func (v Vector2D) Sine() float64 {
	return v.J / v.Norm()
}

// Equals reports whether both components agree up to [Tolerance].
func (v Vector2D) Equals(w Vector2D) bool {
	return AreEqual(v.I, w.I) && AreEqual(v.J, w.J)
}

func (v Vector2D) String() string {
	return fmt.Sprintf("(%gi, %gj) with norm of %g", v.I, v.J, v.Norm())
}

// clampUnit limits x to [-1, 1], so that rounding errors cannot push the
// argument of [math.Acos] out of its domain.
func clampUnit(x float64) float64 {
	return max(-1, min(1, x))
}
