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

var lineCases = []TestCase{
	{
		Name: "axes",
		Op: LineIntersection{
			BaseA: pt(5, 0),
			DirA:  pt(1, 0),
			BaseB: pt(0, -3),
			DirB:  pt(0, 2),
			Found: true,
			Want:  pt(0, 0),
		},
	},
	{
		Name: "behind_base",
		Op: LineIntersection{
			BaseA: pt(0, 0),
			DirA:  pt(1, 0),
			BaseB: pt(0, 1),
			DirB:  pt(1, 1),
			Found: true,
			Want:  pt(-1, 0),
		},
	},
	{
		Name: "diagonals",
		Op: LineIntersection{
			BaseA: pt(400, 0),
			DirA:  pt(-400, 400),
			BaseB: pt(1000, 1000),
			DirB:  pt(1, 1),
			Found: true,
			Want:  pt(200, 200),
		},
	},
	{
		Name: "steep",
		Op: LineIntersection{
			BaseA: pt(0, 0),
			DirA:  pt(1, 1000),
			BaseB: pt(0, 500),
			DirB:  pt(1, 0),
			Found: true,
			Want:  pt(0.5, 500),
		},
	},
	{
		Name: "parallel",
		Op: LineIntersection{
			BaseA: pt(0, 0),
			DirA:  pt(1, 2),
			BaseB: pt(1, 0),
			DirB:  pt(-2, -4),
		},
	},
	{
		Name: "coincident",
		Op: LineIntersection{
			BaseA: pt(0, 0),
			DirA:  pt(1, 1),
			BaseB: pt(3, 3),
			DirB:  pt(2, 2),
		},
	},
}
