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
	"math"
	"testing"

	"github.com/kr/pretty"
	"seehuhn.de/go/geom/matrix"
)

var testTransforms = map[string]AffineTransform2D{
	"identity":    Identity(),
	"scale":       Scaling(2, 5),
	"translate":   Translation(10, 15),
	"shear":       Shearing(3, 4),
	"rotate":      Rotation(0.7),
	"general":     {ScaleX: 1.5, ScaleY: -0.5, ShearX: 0.25, ShearY: 2, TranslateX: -3, TranslateY: 8},
	"reflect":     Scaling(-1, 1),
	"rotate+move": Rotation(-2).Concatenate(Translation(4, -1)),
}

var testPoints = []Point2D{
	{X: 0, Y: 0},
	{X: 2, Y: 3},
	{X: -7.5, Y: 0.25},
	{X: 100, Y: -40},
}

func TestTransformPoint(t *testing.T) {
	p := Point2D{X: 2, Y: 3}
	cases := []struct {
		name string
		t    AffineTransform2D
		want Point2D
	}{
		{"scale", Scaling(2, 5), Point2D{X: 4, Y: 15}},
		{"translate", Translation(10, 15), Point2D{X: 12, Y: 18}},
		{"shear", Shearing(3, 4), Point2D{X: 11, Y: 11}},
		{"rotate", Rotation(math.Pi / 2), Point2D{X: -3, Y: 2}},
		{"zero", AffineTransform2D{}, Point2D{}},
	}
	for _, c := range cases {
		if got := c.t.Transform(p); !got.Equals(c.want) {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, got)
		}
	}
}

func TestConcatenateOrder(t *testing.T) {
	scale := Scaling(2, 5)
	translate := Translation(10, 15)

	got := scale.Concatenate(translate)
	want := AffineTransform2D{ScaleX: 2, ScaleY: 5, TranslateX: 10, TranslateY: 15}
	if !got.Equals(want) {
		t.Errorf("scale then translate: %s", pretty.Diff(want, got))
	}

	got = translate.Concatenate(scale)
	want = AffineTransform2D{ScaleX: 2, ScaleY: 5, TranslateX: 20, TranslateY: 75}
	if !got.Equals(want) {
		t.Errorf("translate then scale: %s", pretty.Diff(want, got))
	}

	// applying the concatenation equals applying the factors in turn
	for name1, t1 := range testTransforms {
		for name2, t2 := range testTransforms {
			both := t1.Concatenate(t2)
			for _, p := range testPoints {
				want := t2.Transform(t1.Transform(p))
				if got := both.Transform(p); !got.Equals(want) {
					t.Errorf("%s then %s at %s: expected %s, got %s",
						name1, name2, p, want, got)
				}
			}
		}
	}
}

func TestConcatenateIdentity(t *testing.T) {
	for name, tr := range testTransforms {
		if got := tr.Concatenate(Identity()); !got.Equals(tr) {
			t.Errorf("%s: right identity: %s", name, pretty.Diff(tr, got))
		}
		if got := Identity().Concatenate(tr); !got.Equals(tr) {
			t.Errorf("%s: left identity: %s", name, pretty.Diff(tr, got))
		}
	}
}

func TestInverse(t *testing.T) {
	for name, tr := range testTransforms {
		if !tr.IsInvertible() {
			t.Fatalf("%s: expected invertible transform", name)
		}
		inv := tr.Inverse()
		if got := tr.Concatenate(inv); !got.Equals(Identity()) {
			t.Errorf("%s: T then T⁻¹: %s", name, pretty.Diff(Identity(), got))
		}
		if got := inv.Concatenate(tr); !got.Equals(Identity()) {
			t.Errorf("%s: T⁻¹ then T: %s", name, pretty.Diff(Identity(), got))
		}
		for _, p := range testPoints {
			if got := inv.Transform(tr.Transform(p)); !got.Equals(p) {
				t.Errorf("%s: round trip of %s gives %s", name, p, got)
			}
		}
	}
}

func TestSingular(t *testing.T) {
	singular := []AffineTransform2D{
		{},
		Scaling(0, 3),
		{ScaleX: 1, ScaleY: 4, ShearX: 2, ShearY: 2},
	}
	for _, tr := range singular {
		if tr.IsInvertible() {
			t.Errorf("%s should not be invertible", tr)
		}
		inv := tr.Inverse()
		if !math.IsNaN(inv.ScaleX) && !math.IsInf(inv.ScaleX, 0) {
			t.Errorf("%s: expected non-finite inverse, got %s", tr, inv)
		}
	}
	if (AffineTransform2D{}).Equals(Identity()) {
		t.Error("the zero transform must differ from the identity")
	}
}

func TestTransformSegmentAndVector(t *testing.T) {
	tr := Scaling(2, 5).Concatenate(Translation(10, 15))
	s := Segment2D{Start: Point2D{X: 0, Y: 0}, End: Point2D{X: 1, Y: 1}}
	got := tr.TransformSegment(s)
	want := Segment2D{Start: Point2D{X: 10, Y: 15}, End: Point2D{X: 12, Y: 20}}
	if !got.Equals(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
	if v := tr.TransformVector(s.DirectionVector()); !v.Equals(got.DirectionVector()) {
		t.Errorf("expected %s, got %s", got.DirectionVector(), v)
	}
}

func TestDeterminant(t *testing.T) {
	if d := Rotation(1.1).Determinant(); !AreEqual(d, 1) {
		t.Errorf("rotation determinant %g", d)
	}
	if d := Scaling(2, 5).Determinant(); d != 10 {
		t.Errorf("expected 10, got %g", d)
	}
	if d := Shearing(3, 4).Determinant(); d != -11 {
		t.Errorf("expected -11, got %g", d)
	}
}

func TestAgainstGeomMatrix(t *testing.T) {
	cases := []struct {
		m    matrix.Matrix
		want AffineTransform2D
	}{
		{matrix.Identity, Identity()},
		{matrix.Scale(2, 5), Scaling(2, 5)},
		{matrix.Scale(2, 5).Translate(10, 15), Scaling(2, 5).Concatenate(Translation(10, 15))},
		{matrix.RotateDeg(30), Rotation(math.Pi / 6)},
		{matrix.RotateDeg(45).Translate(32, 32), Rotation(math.Pi / 4).Concatenate(Translation(32, 32))},
	}
	for _, c := range cases {
		got := TransformFromMatrix(c.m)
		if !got.Equals(c.want) {
			t.Errorf("%v: %s", c.m, pretty.Diff(c.want, got))
		}
		for _, p := range testPoints {
			x := c.m[0]*p.X + c.m[2]*p.Y + c.m[4]
			y := c.m[1]*p.X + c.m[3]*p.Y + c.m[5]
			if q := got.Transform(p); !AreEqualWithin(q.X, x, 1e-9) || !AreEqualWithin(q.Y, y, 1e-9) {
				t.Errorf("%v at %s: expected (%g, %g), got %s", c.m, p, x, y, q)
			}
		}
	}
}

func BenchmarkConcatenateInverse(b *testing.B) {
	tr := testTransforms["general"]
	b.ReportAllocs()
	for b.Loop() {
		tr = tr.Concatenate(tr.Inverse()).Concatenate(testTransforms["general"])
	}
}
