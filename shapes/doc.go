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


// Package shapes implements bounded regions of the plane: circles,
// axis-aligned rectangles and simple polygons.
//
// Shapes are immutable values.  Constructors validate their arguments and
// return errors wrapping [geometry.ErrInvalidArgument]; the With* methods
// return modified copies.
//
// Containment tests exclude the boundary: a point on the circumference of a
// circle, on the edge of a rectangle or on an edge of a polygon is not
// contained in the shape.  The same convention is used for rectangle
// intersections, so that rectangles which only share an edge do not
// intersect.
package shapes
