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

	"seehuhn.de/go/geom/vec"
)

var circleCases = []TestCase{
	{
		Name: "four_divisions",
		Op: CirclePolygon{
			Center:    pt(2, 5),
			Radius:    10,
			Divisions: 4,
			Want:      []vec.Vec2{pt(12, 5), pt(2, 15), pt(-8, 5)},
		},
	},
	{
		Name: "six_divisions",
		Op: CirclePolygon{
			Center:    pt(0, 0),
			Radius:    2,
			Divisions: 6,
			Want: []vec.Vec2{
				pt(2, 0),
				pt(1, math.Sqrt(3)),
				pt(-1, math.Sqrt(3)),
				pt(-2, 0),
				pt(-1, -math.Sqrt(3)),
			},
		},
	},
	{
		Name: "eight_divisions",
		Op: CirclePolygon{
			Center:    pt(-1, 1),
			Radius:    math.Sqrt2,
			Divisions: 8,
			Want: []vec.Vec2{
				pt(-1+math.Sqrt2, 1),
				pt(0, 2),
				pt(-1, 1+math.Sqrt2),
				pt(-2, 2),
				pt(-1-math.Sqrt2, 1),
				pt(-2, 0),
				pt(-1, 1-math.Sqrt2),
			},
		},
	},
	{
		Name: "too_few_divisions",
		Op: CirclePolygon{
			Center:    pt(0, 0),
			Radius:    1,
			Divisions: 3,
			Invalid:   true,
		},
	},
}
