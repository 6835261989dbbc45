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

import "testing"

func TestAreEqual(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{0, 0, true},
		{1, 1 + 1e-11, true},
		{1, 1 - 1e-11, true},
		{1, 1 + 1e-9, false},
		{-3.5, -3.5, true},
		{-3.5, 3.5, false},
		{1e10, 1e10 + 1, false},
	}
	for _, c := range cases {
		if got := AreEqual(c.a, c.b); got != c.want {
			t.Errorf("AreEqual(%g, %g) = %t, expected %t", c.a, c.b, got, c.want)
		}
		if got := AreEqual(c.b, c.a); got != c.want {
			t.Errorf("AreEqual(%g, %g) = %t, expected %t", c.b, c.a, got, c.want)
		}
	}
}

func TestAreEqualWithin(t *testing.T) {
	if !AreEqualWithin(1, 1.05, 0.1) {
		t.Error("1 and 1.05 should agree within 0.1")
	}
	if AreEqualWithin(1, 1.1, 0.1) {
		t.Error("difference equal to the tolerance must not count as equal")
	}
}

func TestIsEffectivelyZero(t *testing.T) {
	for _, x := range []float64{0, 1e-11, -1e-11, 9.9e-11} {
		if !IsEffectivelyZero(x) {
			t.Errorf("%g should be effectively zero", x)
		}
	}
	for _, x := range []float64{1e-10, -1e-9, 1} {
		if IsEffectivelyZero(x) {
			t.Errorf("%g should not be effectively zero", x)
		}
	}
	if !IsEffectivelyZeroWithin(0.01, 0.1) {
		t.Error("0.01 should be zero within 0.1")
	}
}
