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

import "seehuhn.de/go/geom/vec"

var polygonCases = []TestCase{
	{
		Name: "triangle_open",
		Op: PolygonArea{
			Vertices: []vec.Vec2{pt(0, 0), pt(5, 0), pt(5, 5)},
			Area:     12.5,
			Centroid: pt(10.0/3, 5.0/3),
		},
	},
	{
		Name: "triangle_closed",
		Op: PolygonArea{
			Vertices: []vec.Vec2{pt(0, 0), pt(5, 0), pt(5, 5), pt(0, 0)},
			Area:     12.5,
			Centroid: pt(10.0/3, 5.0/3),
		},
	},
	{
		Name: "triangle_centroid",
		Op: PolygonArea{
			Vertices: []vec.Vec2{pt(0, 0), pt(2.5, 0), pt(5, 3)},
			Area:     3.75,
			Centroid: pt(2.5, 1),
		},
	},
	{
		// the closing edge does not pass through the origin
		Name: "square_offset",
		Op: PolygonArea{
			Vertices: []vec.Vec2{pt(1, 1), pt(3, 1), pt(3, 3), pt(1, 3)},
			Area:     4,
			Centroid: pt(2, 2),
		},
	},
	{
		Name: "square_clockwise",
		Op: PolygonArea{
			Vertices: []vec.Vec2{pt(1, 1), pt(1, 3), pt(3, 3), pt(3, 1), pt(1, 1)},
			Area:     4,
			Centroid: pt(2, 2),
		},
	},
	{
		Name: "l_shape",
		Op: PolygonArea{
			Vertices: []vec.Vec2{pt(0, 0), pt(4, 0), pt(4, 1), pt(1, 1), pt(1, 3), pt(0, 3)},
			Area:     6,
			Centroid: pt(1.5, 1),
		},
	},
}
