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
	"errors"
	"testing"
)

func mustInterval(t *testing.T, start, end float64) OpenInterval {
	t.Helper()
	iv, err := NewOpenInterval(start, end)
	if err != nil {
		t.Fatal(err)
	}
	return iv
}

func TestNewOpenInterval(t *testing.T) {
	iv, err := NewOpenInterval(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if iv.Start() != 2 || iv.End() != 5 || iv.Length() != 3 {
		t.Errorf("unexpected interval %s", iv)
	}

	if _, err := NewOpenInterval(3, 3); err != nil {
		t.Errorf("empty interval rejected: %v", err)
	}

	_, err = NewOpenInterval(5, 2)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestIntervalContains(t *testing.T) {
	iv := mustInterval(t, 0, 1)
	cases := []struct {
		v    float64
		want bool
	}{
		{0.5, true},
		{1e-12, true},
		{0, false},
		{1, false},
		{-0.5, false},
		{2, false},
	}
	for _, c := range cases {
		if got := iv.Contains(c.v); got != c.want {
			t.Errorf("%s.Contains(%g) = %t, expected %t", iv, c.v, got, c.want)
		}
	}
}

func TestIntervalOverlap(t *testing.T) {
	cases := []struct {
		name      string
		a, b      [2]float64
		ok        bool
		wantStart float64
		wantEnd   float64
	}{
		{"partial", [2]float64{0, 10}, [2]float64{5, 15}, true, 5, 10},
		{"nested", [2]float64{0, 10}, [2]float64{2, 3}, true, 2, 3},
		{"identical", [2]float64{1, 4}, [2]float64{1, 4}, true, 1, 4},
		{"almost identical", [2]float64{1, 4}, [2]float64{1 + 1e-12, 4 - 1e-12}, true, 1 + 1e-12, 4 - 1e-12},
		{"touching", [2]float64{0, 10}, [2]float64{10, 20}, false, 0, 0},
		{"disjoint", [2]float64{0, 1}, [2]float64{2, 3}, false, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustInterval(t, c.a[0], c.a[1])
			b := mustInterval(t, c.b[0], c.b[1])

			if got := a.Overlaps(b); got != c.ok {
				t.Errorf("%s.Overlaps(%s) = %t, expected %t", a, b, got, c.ok)
			}
			if got := b.Overlaps(a); got != c.ok {
				t.Errorf("%s.Overlaps(%s) = %t, expected %t", b, a, got, c.ok)
			}

			common, ok := a.Overlap(b)
			if ok != c.ok {
				t.Fatalf("expected ok=%t, got %t", c.ok, ok)
			}
			if !ok {
				return
			}
			if !AreEqual(common.Start(), c.wantStart) || !AreEqual(common.End(), c.wantEnd) {
				t.Errorf("expected (%g, %g), got %s", c.wantStart, c.wantEnd, common)
			}
		})
	}
}
