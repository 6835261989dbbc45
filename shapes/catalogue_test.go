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


package shapes

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/geometry"
	"seehuhn.de/go/geometry/testcases"
)

func TestAgainstCatalogue(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			switch op := tc.Op.(type) {
			case testcases.PolygonArea:
				t.Run(name, func(t *testing.T) {
					p, err := NewPolygon(toPoints(op.Vertices))
					if err != nil {
						t.Fatal(err)
					}
					if !geometry.AreEqual(p.Area(), op.Area) {
						t.Errorf("expected area %g, got %g", op.Area, p.Area())
					}
					if want := geometry.PointFromVec2(op.Centroid); !p.Centroid().Equals(want) {
						t.Errorf("expected centroid %s, got %s", want, p.Centroid())
					}
				})
			case testcases.RectangleIntersection:
				t.Run(name, func(t *testing.T) {
					a, err := RectangleFromRect(op.A)
					if err != nil {
						t.Fatal(err)
					}
					b, err := RectangleFromRect(op.B)
					if err != nil {
						t.Fatal(err)
					}
					got, ok := a.IntersectionWith(b)
					if ok != op.Found {
						t.Fatalf("expected found=%t, got %t", op.Found, ok)
					}
					if !ok {
						return
					}
					want, err := RectangleFromRect(op.Want)
					if err != nil {
						t.Fatal(err)
					}
					if !got.Equals(want) {
						t.Errorf("expected %s, got %s", want, got)
					}
				})
			case testcases.CirclePolygon:
				t.Run(name, func(t *testing.T) {
					c, err := NewCircle(op.Radius, geometry.PointFromVec2(op.Center))
					if err != nil {
						t.Fatal(err)
					}
					got, err := c.ToPolygon(op.Divisions)
					if op.Invalid {
						if !errors.Is(err, geometry.ErrInvalidArgument) {
							t.Errorf("expected ErrInvalidArgument, got %v", err)
						}
						return
					}
					if err != nil {
						t.Fatal(err)
					}
					if want := (Polygon{vertices: toPoints(op.Want)}); !got.Equals(want) {
						t.Errorf("expected %s, got %s", want, got)
					}
				})
			}
		}
	}
}

func toPoints(vv []vec.Vec2) []geometry.Point2D {
	res := make([]geometry.Point2D, len(vv))
	for i, v := range vv {
		res[i] = geometry.PointFromVec2(v)
	}
	return res
}
