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
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by all errors reporting an argument which
// violates a structural invariant, for example a negative radius or a
// segment ratio outside [0, 1].  Use [errors.Is] to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgument returns an error wrapping [ErrInvalidArgument] with the
// formatted message appended.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
