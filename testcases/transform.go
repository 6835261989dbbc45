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


package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

var transformCases = []TestCase{
	{
		Name: "scale",
		Op:   TransformPoint{M: matrix.Scale(2, 5), P: pt(2, 3), Want: pt(4, 15)},
	},
	{
		Name: "translate",
		Op:   TransformPoint{M: matrix.Identity.Translate(10, 15), P: pt(2, 3), Want: pt(12, 18)},
	},
	{
		Name: "shear",
		Op:   TransformPoint{M: matrix.Matrix{1, 4, 3, 1, 0, 0}, P: pt(2, 3), Want: pt(11, 11)},
	},
	{
		Name: "scale_then_translate",
		Op:   TransformPoint{M: matrix.Scale(2, 5).Translate(10, 15), P: pt(2, 3), Want: pt(14, 30)},
	},
	{
		Name: "translate_then_scale",
		Op:   TransformPoint{M: matrix.Matrix{2, 0, 0, 5, 20, 75}, P: pt(2, 3), Want: pt(24, 90)},
	},
	{
		Name: "rotate_90",
		Op:   TransformPoint{M: matrix.RotateDeg(90), P: pt(2, 3), Want: pt(-3, 2)},
	},
	{
		Name: "rotate_45_translate",
		Op: TransformPoint{
			M:    matrix.RotateDeg(45).Translate(32, 32),
			P:    pt(1, 0),
			Want: pt(32+math.Sqrt2/2, 32+math.Sqrt2/2),
		},
	},
	{
		Name: "reflect",
		Op:   TransformPoint{M: matrix.Scale(-1, 1), P: pt(-7.5, 0.25), Want: pt(7.5, 0.25)},
	},
	{
		Name: "general",
		Op: TransformPoint{
			M:    matrix.Matrix{1.5, 2, 0.25, -0.5, -3, 8},
			P:    pt(4, -2),
			Want: pt(2.5, 17),
		},
	},
}
