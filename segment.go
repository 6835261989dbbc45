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

// Segment2D is the straight line segment between two points.
//
// A segment with Start == End is legal, but its direction and normal are
// the zero vector and the unit versions are not finite.
type Segment2D struct {
	Start, End Point2D
}

// DirectionVector returns End - Start.
func (s Segment2D) DirectionVector() Vector2D {
	return s.End.Sub(s.Start)
}

// UnitDirectionVector returns the unit vector pointing from Start to End.
func (s Segment2D) UnitDirectionVector() Vector2D {
	return s.DirectionVector().Normalized()
}

// NormalVector returns the direction vector rotated counter-clockwise by 90
// degrees.
func (s Segment2D) NormalVector() Vector2D {
	return s.DirectionVector().Perpendicular()
}

// NormalUnitVector returns the unit normal to the segment.
func (s Segment2D) NormalUnitVector() Vector2D {
	return s.NormalVector().Normalized()
}

// Length returns the distance between Start and End.
func (s Segment2D) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// Line returns the infinite line which contains the segment.
func (s Segment2D) Line() Line2D {
	return Line2D{Base: s.Start, Direction: s.DirectionVector()}
}

// PointAt returns the point Start + ratio·(End - Start).
//
// The ratio must lie in [0, 1], where values within [Tolerance] of the
// range are accepted.  Otherwise an error wrapping [ErrInvalidArgument] is
// returned.
func (s Segment2D) PointAt(ratio float64) (Point2D, error) {
	if !isOnSegment(ratio) {
		return Point2D{}, InvalidArgument("segment ratio %g is outside [0, 1]", ratio)
	}
	return s.pointAt(ratio), nil
}

// PointAtMiddle returns the midpoint of the segment.
func (s Segment2D) PointAtMiddle() Point2D {
	return s.pointAt(0.5)
}

func (s Segment2D) pointAt(ratio float64) Point2D {
	return s.Start.DisplacedBy(s.DirectionVector(), ratio)
}

// ClosestPointTo returns the point of the segment which is nearest to p.
func (s Segment2D) ClosestPointTo(p Point2D) Point2D {
	length := s.Length()
	if IsEffectivelyZero(length) {
		return s.Start
	}

	unit := s.DirectionVector().ScaledBy(1 / length)
	proj := p.Sub(s.Start).Dot(unit)
	switch {
	case proj < 0:
		return s.Start
	case proj > length:
		return s.End
	default:
		return s.Start.DisplacedBy(unit, proj)
	}
}

// DistanceTo returns the distance between p and the nearest point of the
// segment.
func (s Segment2D) DistanceTo(p Point2D) float64 {
	return p.DistanceTo(s.ClosestPointTo(p))
}

// IntersectionWith returns the point where the two segments cross.
//
// The second return value is false if the segments are parallel, or if the
// lines through the segments cross outside of one of the segments.  Hits
// exactly at an end point are detected.
func (s Segment2D) IntersectionWith(other Segment2D) (Point2D, bool) {
	t1, t2, ok := solveCrossing(s.Start, s.DirectionVector(), other.Start, other.DirectionVector())
	if !ok || !isOnSegment(t1) || !isOnSegment(t2) {
		return Point2D{}, false
	}
	return s.pointAt(t1), true
}

// Equals reports whether both end points agree up to [Tolerance].
// The orientation of the segments must match.
func (s Segment2D) Equals(other Segment2D) bool {
	return s.Start.Equals(other.Start) && s.End.Equals(other.End)
}

func (s Segment2D) String() string {
	return fmt.Sprintf("%s -- %s", s.Start, s.End)
}

// isOnSegment reports whether the segment parameter t lies in the closed
// range [0, 1], extended by [Tolerance] at both ends.
func isOnSegment(t float64) bool {
	return t > -Tolerance && t < 1+Tolerance
}
