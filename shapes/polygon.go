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


package shapes

import (
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/paulmach/orb"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/geometry"
)

// Polygon is a simple polygon, given by its vertices.
//
// The vertex list may be open, or closed by repeating the first vertex at
// the end.  Both forms describe the same polygon.  Vertices are copied on
// construction, so a Polygon cannot be modified through the slice used to
// create it.
//
// The zero value is not a valid polygon.
type Polygon struct {
	vertices []geometry.Point2D
}

// NewPolygon returns the polygon with the given vertices.
// At least three vertices are required.
func NewPolygon(vertices []geometry.Point2D) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, geometry.InvalidArgument("polygon needs at least 3 vertices, got %d", len(vertices))
	}
	return Polygon{vertices: slices.Clone(vertices)}, nil
}

// Vertices returns a copy of the vertex list, in the form given at
// construction time.
func (p Polygon) Vertices() []geometry.Point2D {
	return slices.Clone(p.vertices)
}

// Len returns the number of entries in the vertex list.
func (p Polygon) Len() int {
	return len(p.vertices)
}

// IsClosed reports whether the last vertex repeats the first one.
func (p Polygon) IsClosed() bool {
	n := len(p.vertices)
	return p.vertices[0].Equals(p.vertices[n-1])
}

// nextIndex returns the index of the vertex following vertex i.  For open
// vertex lists, the last vertex is followed by vertex 0.
func (p Polygon) nextIndex(i int) int {
	if i == len(p.vertices)-1 && !p.IsClosed() {
		return 0
	}
	return i + 1
}

// edges iterates over the edges of the polygon, including the closing edge
// exactly once.
func (p Polygon) edges() iter.Seq2[geometry.Point2D, geometry.Point2D] {
	return func(yield func(geometry.Point2D, geometry.Point2D) bool) {
		n := len(p.vertices)
		if p.IsClosed() {
			n--
		}
		for i := range n {
			if !yield(p.vertices[i], p.vertices[p.nextIndex(i)]) {
				return
			}
		}
	}
}

// SignedArea returns the area of the polygon, computed by the shoelace
// formula.  The result is positive if the vertices are in counter-clockwise
// order and negative otherwise.
func (p Polygon) SignedArea() float64 {
	var sum float64
	for a, b := range p.edges() {
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the area enclosed by the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the center of mass of the polygon area.
// The coordinates of the result are not finite if the area is zero.
func (p Polygon) Centroid() geometry.Point2D {
	var cx, cy, sum float64
	for a, b := range p.edges() {
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
		sum += cross
	}
	// sum is twice the signed area
	return geometry.Point2D{X: cx / (3 * sum), Y: cy / (3 * sum)}
}

// Perimeter returns the total length of the edges.
func (p Polygon) Perimeter() float64 {
	var total float64
	for a, b := range p.edges() {
		total += a.DistanceTo(b)
	}
	return total
}

// ContainsPoint reports whether pt lies strictly inside the polygon.
// Points on an edge are not contained.
func (p Polygon) ContainsPoint(pt geometry.Point2D) bool {
	winding := 0
	for a, b := range p.edges() {
		edge := geometry.Segment2D{Start: a, End: b}
		if geometry.IsEffectivelyZero(edge.DistanceTo(pt)) {
			return false
		}

		side := b.Sub(a).Cross(pt.Sub(a))
		if a.Y <= pt.Y {
			if b.Y > pt.Y && side > 0 {
				winding++ // upward edge, pt on the left
			}
		} else if b.Y <= pt.Y && side < 0 {
			winding-- // downward edge, pt on the right
		}
	}
	return winding != 0
}

// Bounds returns the smallest axis-aligned rectangle which contains the
// polygon.  The second return value is false if all vertices lie on a
// horizontal or vertical line.
func (p Polygon) Bounds() (Rectangle, bool) {
	b := p.Ring().Bound()
	r, err := NewRectangle(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1],
		geometry.Point2D{X: b.Min[0], Y: b.Min[1]})
	if err != nil {
		return Rectangle{}, false
	}
	return r, true
}

// Ring converts the polygon to a closed ring for use with
// github.com/paulmach/orb.
func (p Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.vertices)+1)
	for _, v := range p.vertices {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	if !p.IsClosed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// Path returns the outline of the polygon as a closed path.
func (p Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		first := true
		for a := range p.edges() {
			cmd := path.CmdLineTo
			if first {
				cmd = path.CmdMoveTo
				first = false
			}
			if !yield(cmd, []vec.Vec2{a.Vec2()}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Transformed returns the image of the polygon under t.
func (p Polygon) Transformed(t geometry.AffineTransform2D) Polygon {
	vertices := make([]geometry.Point2D, len(p.vertices))
	for i, v := range p.vertices {
		vertices[i] = t.Transform(v)
	}
	return Polygon{vertices: vertices}
}

// Equals reports whether the two vertex lists have the same length and
// agree entry by entry, up to [geometry.Tolerance].
func (p Polygon) Equals(other Polygon) bool {
	return slices.EqualFunc(p.vertices, other.vertices, geometry.Point2D.Equals)
}

func (p Polygon) String() string {
	parts := make([]string, len(p.vertices))
	for i, v := range p.vertices {
		parts[i] = v.String()
	}
	return "polygon " + strings.Join(parts, " ")
}
