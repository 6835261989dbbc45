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

import "math"

// Tolerance is the absolute difference below which two coordinates are
// considered equal.
const Tolerance = 1e-10

// AreEqual reports whether a and b differ by less than [Tolerance].
func AreEqual(a, b float64) bool {
	return AreEqualWithin(a, b, Tolerance)
}

// AreEqualWithin reports whether a and b differ by less than tol.
func AreEqualWithin(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// IsEffectivelyZero reports whether |a| is less than [Tolerance].
func IsEffectivelyZero(a float64) bool {
	return AreEqualWithin(a, 0, Tolerance)
}

// IsEffectivelyZeroWithin reports whether |a| is less than tol.
func IsEffectivelyZeroWithin(a, tol float64) bool {
	return AreEqualWithin(a, 0, tol)
}
