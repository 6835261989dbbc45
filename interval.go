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
	"fmt"

	"github.com/golang/geo/r1"
)

// OpenInterval is the range of real numbers strictly between Start and End.
// The zero value is the empty interval (0, 0).
type OpenInterval struct {
	start, end float64
}

// NewOpenInterval returns the interval (start, end).
// An error is returned if start > end.
func NewOpenInterval(start, end float64) (OpenInterval, error) {
	if start > end {
		return OpenInterval{}, InvalidArgument("interval start %g is larger than end %g", start, end)
	}
	return OpenInterval{start: start, end: end}, nil
}

// Start returns the lower end of the interval.
func (iv OpenInterval) Start() float64 {
	return iv.start
}

// End returns the upper end of the interval.
func (iv OpenInterval) End() float64 {
	return iv.end
}

// Length returns End - Start.
func (iv OpenInterval) Length() float64 {
	return iv.end - iv.start
}

// Contains reports whether v lies strictly inside the interval.
func (iv OpenInterval) Contains(v float64) bool {
	return iv.start < v && v < iv.end
}

// Overlaps reports whether the two intervals share interior points.
//
// Intervals which only touch at an end point do not overlap.  Two intervals
// whose ends agree up to [Tolerance] always overlap.
func (iv OpenInterval) Overlaps(other OpenInterval) bool {
	if AreEqual(iv.start, other.start) && AreEqual(iv.end, other.end) {
		return true
	}
	return iv.Contains(other.start) ||
		iv.Contains(other.end) ||
		other.Contains(iv.start) ||
		other.Contains(iv.end)
}

// Overlap returns the common part of the two intervals.
// The second return value is false if the intervals do not overlap.
func (iv OpenInterval) Overlap(other OpenInterval) (OpenInterval, bool) {
	if !iv.Overlaps(other) {
		return OpenInterval{}, false
	}
	common := iv.r1().Intersection(other.r1())
	return OpenInterval{start: common.Lo, end: common.Hi}, true
}

func (iv OpenInterval) r1() r1.Interval {
	return r1.Interval{Lo: iv.start, Hi: iv.end}
}

func (iv OpenInterval) String() string {
	return fmt.Sprintf("(%g, %g)", iv.start, iv.end)
}
