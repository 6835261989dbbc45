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

// AffineTransform2D is the affine map
//
//	x' = ScaleX·x + ShearX·y + TranslateX
//	y' = ShearY·x + ScaleY·y + TranslateY
//
// The zero value maps every point to the origin.  Use [Identity] to obtain
// the identity map.
type AffineTransform2D struct {
	ScaleX, ScaleY         float64
	ShearX, ShearY         float64
	TranslateX, TranslateY float64
}

// Identity returns the transformation which leaves every point unchanged.
func Identity() AffineTransform2D {
	return AffineTransform2D{ScaleX: 1, ScaleY: 1}
}

// Translation returns the map which shifts every point by (dx, dy).
func Translation(dx, dy float64) AffineTransform2D {
	return AffineTransform2D{ScaleX: 1, ScaleY: 1, TranslateX: dx, TranslateY: dy}
}

// Scaling returns the map which scales x-coordinates by sx and
// y-coordinates by sy.
func Scaling(sx, sy float64) AffineTransform2D {
	return AffineTransform2D{ScaleX: sx, ScaleY: sy}
}

// Shearing returns the map (x, y) -> (x + shx·y, shy·x + y).
func Shearing(shx, shy float64) AffineTransform2D {
	return AffineTransform2D{ScaleX: 1, ScaleY: 1, ShearX: shx, ShearY: shy}
}

// Rotation returns the counter-clockwise rotation about the origin by the
// given angle.
func Rotation(radians float64) AffineTransform2D {
	sin, cos := math.Sincos(radians)
	return AffineTransform2D{
		ScaleX: cos,
		ScaleY: cos,
		ShearX: -sin,
		ShearY: sin,
	}
}

// Transform applies the map to p.
func (t AffineTransform2D) Transform(p Point2D) Point2D {
	return Point2D{
		X: t.ScaleX*p.X + t.ShearX*p.Y + t.TranslateX,
		Y: t.ShearY*p.X + t.ScaleY*p.Y + t.TranslateY,
	}
}

// TransformSegment applies the map to both end points of s.
func (t AffineTransform2D) TransformSegment(s Segment2D) Segment2D {
	return Segment2D{Start: t.Transform(s.Start), End: t.Transform(s.End)}
}

// TransformVector applies the linear part of the map to v.
// Vectors are not affected by the translation.
func (t AffineTransform2D) TransformVector(v Vector2D) Vector2D {
	return Vector2D{
		I: t.ScaleX*v.I + t.ShearX*v.J,
		J: t.ShearY*v.I + t.ScaleY*v.J,
	}
}

// Concatenate returns the map which first applies t and then other.
func (t AffineTransform2D) Concatenate(other AffineTransform2D) AffineTransform2D {
	return AffineTransform2D{
		ScaleX: other.ScaleX*t.ScaleX + other.ShearX*t.ShearY,
		ScaleY: other.ShearY*t.ShearX + other.ScaleY*t.ScaleY,
		ShearX: other.ScaleX*t.ShearX + other.ShearX*t.ScaleY,
		ShearY: other.ShearY*t.ScaleX + other.ScaleY*t.ShearY,

		TranslateX: other.ScaleX*t.TranslateX + other.ShearX*t.TranslateY + other.TranslateX,
		TranslateY: other.ShearY*t.TranslateX + other.ScaleY*t.TranslateY + other.TranslateY,
	}
}

// Determinant returns the determinant of the linear part of the map.
func (t AffineTransform2D) Determinant() float64 {
	return t.ScaleX*t.ScaleY - t.ShearX*t.ShearY
}

// IsInvertible reports whether the determinant is non-zero, up to
// [Tolerance].
func (t AffineTransform2D) IsInvertible() bool {
	return !IsEffectivelyZero(t.Determinant())
}

// Inverse returns the inverse map.
//
// The transformation must be invertible.  If it is not, the fields of the
// result are not finite.
func (t AffineTransform2D) Inverse() AffineTransform2D {
	det := t.Determinant()
	return AffineTransform2D{
		ScaleX:     t.ScaleY / det,
		ScaleY:     t.ScaleX / det,
		ShearX:     -t.ShearX / det,
		ShearY:     -t.ShearY / det,
		TranslateX: (t.TranslateY*t.ShearX - t.ScaleY*t.TranslateX) / det,
		TranslateY: (t.TranslateX*t.ShearY - t.ScaleX*t.TranslateY) / det,
	}
}

// Equals reports whether all six coefficients agree up to [Tolerance].
func (t AffineTransform2D) Equals(other AffineTransform2D) bool {
	return AreEqual(t.ScaleX, other.ScaleX) &&
		AreEqual(t.ScaleY, other.ScaleY) &&
		AreEqual(t.ShearX, other.ShearX) &&
		AreEqual(t.ShearY, other.ShearY) &&
		AreEqual(t.TranslateX, other.TranslateX) &&
		AreEqual(t.TranslateY, other.TranslateY)
}

func (t AffineTransform2D) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]",
		t.ScaleX, t.ShearX, t.TranslateX,
		t.ShearY, t.ScaleY, t.TranslateY)
}
