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
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Conversions between the types of this package and the equivalent types
// of other geometry libraries.  All conversions copy the coordinates.

// PointFromVec2 converts a point from seehuhn.de/go/geom.
func PointFromVec2(p vec.Vec2) Point2D {
	return Point2D{X: p.X, Y: p.Y}
}

// Vec2 converts p to the seehuhn.de/go/geom representation.
func (p Point2D) Vec2() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// R2 converts p to the github.com/golang/geo representation.
func (p Point2D) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// V2 converts p to the github.com/deadsy/sdfx representation.
func (p Point2D) V2() v2.Vec {
	return v2.Vec{X: p.X, Y: p.Y}
}

// VectorFromVec2 converts a vector from seehuhn.de/go/geom.
func VectorFromVec2(v vec.Vec2) Vector2D {
	return Vector2D{I: v.X, J: v.Y}
}

// Vec2 converts v to the seehuhn.de/go/geom representation.
func (v Vector2D) Vec2() vec.Vec2 {
	return vec.Vec2{X: v.I, Y: v.J}
}

// R2 converts v to the github.com/golang/geo representation.
func (v Vector2D) R2() r2.Point {
	return r2.Point{X: v.I, Y: v.J}
}

// V2 converts v to the github.com/deadsy/sdfx representation.
func (v Vector2D) V2() v2.Vec {
	return v2.Vec{X: v.I, Y: v.J}
}

// R3 converts p to the github.com/golang/geo representation.
func (p Point3D) R3() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// V3 converts p to the github.com/deadsy/sdfx representation.
func (p Point3D) V3() v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// VectorFromR3 converts a vector from github.com/golang/geo.
func VectorFromR3(v r3.Vector) Vector3D {
	return Vector3D{I: v.X, J: v.Y, K: v.Z}
}

// R3 converts v to the github.com/golang/geo representation.
func (v Vector3D) R3() r3.Vector {
	return r3.Vector{X: v.I, Y: v.J, Z: v.K}
}

// V3 converts v to the github.com/deadsy/sdfx representation.
func (v Vector3D) V3() v3.Vec {
	return v3.Vec{X: v.I, Y: v.J, Z: v.K}
}

// Vec3 converts v to the github.com/go-gl/mathgl representation.
func (v Vector3D) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.I, v.J, v.K}
}

// TransformFromMatrix converts a transformation matrix from
// seehuhn.de/go/geom.  The matrix M maps (x, y) to
// (M[0]·x + M[2]·y + M[4], M[1]·x + M[3]·y + M[5]).
func TransformFromMatrix(m matrix.Matrix) AffineTransform2D {
	return AffineTransform2D{
		ScaleX:     m[0],
		ShearY:     m[1],
		ShearX:     m[2],
		ScaleY:     m[3],
		TranslateX: m[4],
		TranslateY: m[5],
	}
}

// Matrix converts t to the seehuhn.de/go/geom representation.
func (t AffineTransform2D) Matrix() matrix.Matrix {
	return matrix.Matrix{t.ScaleX, t.ShearY, t.ShearX, t.ScaleY, t.TranslateX, t.TranslateY}
}

// TransformFromAff3 converts a row-major affine matrix from
// golang.org/x/image/math/f64.
func TransformFromAff3(a f64.Aff3) AffineTransform2D {
	return AffineTransform2D{
		ScaleX:     a[0],
		ShearX:     a[1],
		TranslateX: a[2],
		ShearY:     a[3],
		ScaleY:     a[4],
		TranslateY: a[5],
	}
}

// Aff3 converts t to the golang.org/x/image/math/f64 representation.
func (t AffineTransform2D) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.ScaleX, t.ShearX, t.TranslateX,
		t.ShearY, t.ScaleY, t.TranslateY,
	}
}
