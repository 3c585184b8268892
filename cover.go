// seehuhn.de/go/cover - analytic anti-aliasing coverage for 2D rendering
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

// Package cover computes analytic per-pixel coverage values for
// anti-aliased 2D rendering. Coverage is the fraction of a pixel's area
// overlapped by a shape, ranging from 0 (outside) to 1 (inside); a
// compositing stage uses it as a blend weight.
//
// The kernels in this package are pure functions with no state and no
// failure modes. They can be evaluated concurrently for every pixel
// without synchronisation.
package cover

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Parallelogram returns the coverage of one pixel by a parallelogram.
//
// pos is the pixel centre in the parallelogram's local frame: the origin
// is the parallelogram's centre, the axes follow the two edge directions,
// and units are device pixels. halfExt holds the parallelogram's
// half-extents along the two local axes, also in pixels; both components
// must be non-negative. Negative half-extents are not rejected, but the
// result is meaningless for such inputs.
//
// For an axis-aligned rectangle the result is the exact overlap area;
// near the corners of a sheared parallelogram it is a separable
// approximation. The result is always in [0, 1], continuous, and
// non-increasing in the distance from the centre along each axis.
func Parallelogram(pos, halfExt vec.Vec2) float64 {
	return axisCoverage(pos.X, halfExt.X) * axisCoverage(pos.Y, halfExt.Y)
}

// axisCoverage computes the coverage contribution of a single local axis.
//
// The first step measures the distance from the pixel centre to the
// nearer edge, shifted so that a pixel centre exactly on the edge yields
// 0.5, and clamps to the one-pixel transition band. The second step caps
// the result at the primitive's own width in pixel units, so a primitive
// narrower than one pixel cannot report full coverage. The order of the
// two steps matters for sub-pixel extents and must not be changed.
func axisCoverage(pos, halfExt float64) float64 {
	c := halfExt + 0.5 - math.Abs(pos)
	if c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}
	return math.Min(c, 2*halfExt)
}
