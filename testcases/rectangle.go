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

import "seehuhn.de/go/geom/rect"

var rectangleCases = []TestCase{
	{
		Name: "overlap",
		Op: RectangleIntersection{
			A:     rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5},
			B:     rect.Rect{LLx: 5, LLy: 2, URx: 15, URy: 7},
			Found: true,
			Want:  rect.Rect{LLx: 5, LLy: 2, URx: 10, URy: 5},
		},
	},
	{
		Name: "contained",
		Op: RectangleIntersection{
			A:     rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10},
			B:     rect.Rect{LLx: 2, LLy: 3, URx: 4, URy: 5},
			Found: true,
			Want:  rect.Rect{LLx: 2, LLy: 3, URx: 4, URy: 5},
		},
	},
	{
		Name: "identical",
		Op: RectangleIntersection{
			A:     rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1},
			B:     rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1},
			Found: true,
			Want:  rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1},
		},
	},
	{
		Name: "cross",
		Op: RectangleIntersection{
			A:     rect.Rect{LLx: 0, LLy: 4, URx: 10, URy: 6},
			B:     rect.Rect{LLx: 4, LLy: 0, URx: 6, URy: 10},
			Found: true,
			Want:  rect.Rect{LLx: 4, LLy: 4, URx: 6, URy: 6},
		},
	},
	{
		Name: "separated_x",
		Op: RectangleIntersection{
			A: rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5},
			B: rect.Rect{LLx: 11, LLy: 0, URx: 12, URy: 5},
		},
	},
	{
		Name: "separated_y",
		Op: RectangleIntersection{
			A: rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5},
			B: rect.Rect{LLx: 0, LLy: 6, URx: 10, URy: 8},
		},
	},
	{
		Name: "shared_edge",
		Op: RectangleIntersection{
			A: rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5},
			B: rect.Rect{LLx: 10, LLy: 0, URx: 20, URy: 5},
		},
	},
	{
		Name: "shared_corner",
		Op: RectangleIntersection{
			A: rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5},
			B: rect.Rect{LLx: 10, LLy: 5, URx: 20, URy: 10},
		},
	},
}
