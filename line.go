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

import "fmt"

// Line2D is an infinite straight line in the plane, given by a point on the
// line and a direction.  Direction must be non-zero.
type Line2D struct {
	Base      Point2D
	Direction Vector2D
}

// PointAt returns the point Base + t·Direction.
func (l Line2D) PointAt(t float64) Point2D {
	return l.Base.DisplacedBy(l.Direction, t)
}

// IsParallelTo reports whether the two lines have parallel directions.
// Identical lines are parallel.
func (l Line2D) IsParallelTo(other Line2D) bool {
	return l.Direction.IsParallelTo(other.Direction)
}

// IsPerpendicularTo reports whether the two lines meet at a right angle.
func (l Line2D) IsPerpendicularTo(other Line2D) bool {
	return l.Direction.IsPerpendicularTo(other.Direction)
}

// PerpendicularThrough returns the line through p which is perpendicular
// to l.
func (l Line2D) PerpendicularThrough(p Point2D) Line2D {
	return Line2D{Base: p, Direction: l.Direction.Perpendicular()}
}

// ParallelThrough returns the line through p which is parallel to l.
func (l Line2D) ParallelThrough(p Point2D) Line2D {
	return Line2D{Base: p, Direction: l.Direction}
}

// IntersectionWith returns the point where the two lines cross.
// The second return value is false if the lines are parallel.
func (l Line2D) IntersectionWith(other Line2D) (Point2D, bool) {
	t, _, ok := solveCrossing(l.Base, l.Direction, other.Base, other.Direction)
	if !ok {
		return Point2D{}, false
	}
	return l.PointAt(t), true
}

func (l Line2D) String() string {
	return fmt.Sprintf("%s + t·%s", l.Base, l.Direction)
}

// solveCrossing solves p1 + t1·d1 = p2 + t2·d2 for t1 and t2, using
// Cramer's rule.  The last return value is false if d1 and d2 are
// parallel.
func solveCrossing(p1 Point2D, d1 Vector2D, p2 Point2D, d2 Vector2D) (t1, t2 float64, ok bool) {
	det := d1.Cross(d2)
	if IsEffectivelyZero(det) {
		return 0, 0, false
	}
	delta := p2.Sub(p1)
	t1 = delta.Cross(d2) / det
	t2 = delta.Cross(d1) / det
	return t1, t2, true
}
