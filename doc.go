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

// Package geometry implements points, vectors, lines, segments and affine
// transformations in the plane, together with points and vectors in space.
//
// All types are small value types.  Operations never modify their receiver;
// they return new values instead, so values can be shared freely between
// goroutines.
//
// Floating point values are compared with the fixed absolute [Tolerance].
// Queries which may have no answer, for example the intersection of two
// parallel lines, return an additional boolean.  Constructors and methods
// which reject their arguments return an error wrapping [ErrInvalidArgument].
//
// Some operations have numeric preconditions which are not checked:
// normalising a zero vector, inverting a singular transformation.  These
// produce non-finite results; use [Vector2D.IsZero] or
// [AffineTransform2D.IsInvertible] to check beforehand.
//
// Axis-aligned rectangles, circles and polygons are in the subpackage
// [seehuhn.de/go/geometry/shapes].
package geometry
