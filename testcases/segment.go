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

var segmentCases = []TestCase{
	// ========================================
	// Intersections
	// ========================================
	{
		Name: "crossing_diagonals",
		Op: SegmentIntersection{
			A0:    pt(400, 0),
			A1:    pt(0, 400),
			B0:    pt(0, 0),
			B1:    pt(400, 400),
			Found: true,
			Want:  pt(200, 200),
		},
	},
	{
		Name: "shared_end",
		Op: SegmentIntersection{
			A0:    pt(0, 0),
			A1:    pt(1, 0),
			B0:    pt(1, 0),
			B1:    pt(1, 1),
			Found: true,
			Want:  pt(1, 0),
		},
	},
	{
		Name: "t_junction",
		Op: SegmentIntersection{
			A0:    pt(0, -1),
			A1:    pt(0, 1),
			B0:    pt(0, 0),
			B1:    pt(3, 0),
			Found: true,
			Want:  pt(0, 0),
		},
	},
	{
		Name: "lines_cross_outside",
		Op: SegmentIntersection{
			A0: pt(0, 0),
			A1: pt(1, 0),
			B0: pt(2, -1),
			B1: pt(2, 1),
		},
	},
	{
		Name: "parallel",
		Op: SegmentIntersection{
			A0: pt(0, 0),
			A1: pt(1, 1),
			B0: pt(0, 1),
			B1: pt(1, 2),
		},
	},

	// ========================================
	// Points along a segment
	// ========================================
	{
		Name: "quarter",
		Op: SegmentPoint{
			Start: pt(400, 0),
			End:   pt(0, 400),
			Ratio: 0.25,
			Want:  pt(300, 100),
		},
	},
	{
		Name: "start",
		Op: SegmentPoint{
			Start: pt(400, 0),
			End:   pt(0, 400),
			Ratio: 0,
			Want:  pt(400, 0),
		},
	},
	{
		Name: "end",
		Op: SegmentPoint{
			Start: pt(400, 0),
			End:   pt(0, 400),
			Ratio: 1,
			Want:  pt(0, 400),
		},
	},
	{
		Name: "before_start",
		Op: SegmentPoint{
			Start:   pt(400, 0),
			End:     pt(0, 400),
			Ratio:   -0.1,
			Invalid: true,
		},
	},
	{
		Name: "after_end",
		Op: SegmentPoint{
			Start:   pt(400, 0),
			End:     pt(0, 400),
			Ratio:   1.5,
			Invalid: true,
		},
	},
}
