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
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geometry/testcases"
)

func TestAgainstCatalogue(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			switch op := tc.Op.(type) {
			case testcases.LineIntersection:
				t.Run(name, func(t *testing.T) {
					a := Line2D{Base: PointFromVec2(op.BaseA), Direction: VectorFromVec2(op.DirA)}
					b := Line2D{Base: PointFromVec2(op.BaseB), Direction: VectorFromVec2(op.DirB)}
					got, ok := a.IntersectionWith(b)
					checkFound(t, got, ok, PointFromVec2(op.Want), op.Found)
				})
			case testcases.SegmentIntersection:
				t.Run(name, func(t *testing.T) {
					a := Segment2D{Start: PointFromVec2(op.A0), End: PointFromVec2(op.A1)}
					b := Segment2D{Start: PointFromVec2(op.B0), End: PointFromVec2(op.B1)}
					got, ok := a.IntersectionWith(b)
					checkFound(t, got, ok, PointFromVec2(op.Want), op.Found)
				})
			case testcases.SegmentPoint:
				t.Run(name, func(t *testing.T) {
					s := Segment2D{Start: PointFromVec2(op.Start), End: PointFromVec2(op.End)}
					got, err := s.PointAt(op.Ratio)
					if op.Invalid {
						if !errors.Is(err, ErrInvalidArgument) {
							t.Errorf("expected ErrInvalidArgument, got %v", err)
						}
						return
					}
					if err != nil {
						t.Fatal(err)
					}
					if want := PointFromVec2(op.Want); !got.Equals(want) {
						t.Errorf("expected %s, got %s", want, got)
					}
				})
			case testcases.TransformPoint:
				t.Run(name, func(t *testing.T) {
					tr := TransformFromMatrix(op.M)
					p := PointFromVec2(op.P)
					got := tr.Transform(p)
					if want := PointFromVec2(op.Want); !got.Equals(want) {
						t.Errorf("expected %s, got %s", want, got)
					}
					if back := tr.Inverse().Transform(got); !back.Equals(p) {
						t.Errorf("inverse maps %s to %s, expected %s", got, back, p)
					}
				})
			}
		}
	}
}

func checkFound(t *testing.T, got Point2D, ok bool, want Point2D, wantOK bool) {
	t.Helper()
	if ok != wantOK {
		t.Fatalf("expected found=%t, got %t", wantOK, ok)
	}
	if ok && !got.Equals(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}
