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

package cover

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Quad is a parallelogram in device coordinates, given by its centre and
// two half-edge vectors: the corners are Center ± U ± V.
type Quad struct {
	Center vec.Vec2
	U, V   vec.Vec2
}

// QuadFromRect maps an axis-aligned rectangle in user space through the
// transformation matrix ctm into a device-space parallelogram.
func QuadFromRect(r rect.Rect, ctm matrix.Matrix) Quad {
	cx := (r.LLx + r.URx) / 2
	cy := (r.LLy + r.URy) / 2
	hw := (r.URx - r.LLx) / 2
	hh := (r.URy - r.LLy) / 2

	return Quad{
		Center: vec.Vec2{
			X: ctm[0]*cx + ctm[2]*cy + ctm[4],
			Y: ctm[1]*cx + ctm[3]*cy + ctm[5],
		},
		// Half-edge vectors transform with the linear part only.
		U: vec.Vec2{X: ctm[0] * hw, Y: ctm[1] * hw},
		V: vec.Vec2{X: ctm[2] * hh, Y: ctm[3] * hh},
	}
}

// SegmentQuad returns the parallelogram swept by stroking the segment
// from a to b with the given line width and butt caps. Segments shorter
// than zeroLengthThreshold produce a degenerate quad with no coverage.
func SegmentQuad(a, b vec.Vec2, width float64) Quad {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return Quad{Center: a}
	}

	t := d.Mul(1 / length) // unit tangent (a→b direction)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	return Quad{
		Center: a.Add(b).Mul(0.5),
		U:      d.Mul(0.5),
		V:      n.Mul(width / 2),
	}
}

// Area returns the area of the parallelogram in square pixels.
func (q Quad) Area() float64 {
	return 4 * math.Abs(q.U.X*q.V.Y-q.U.Y*q.V.X)
}

// frame is the precomputed inverse of a quad's [U V] basis. It maps a
// device-space point to the quad's local coordinate frame: origin at the
// centre, axes along the edge directions, units in device pixels.
type frame struct {
	center vec.Vec2
	// inverse basis rows, pre-scaled by the half-extents so that local
	// coordinates come out in pixel units
	a, b, c, d float64
	// halfExt holds (|U|, |V|), the tcc constants shared by all pixels
	// of the primitive
	halfExt vec.Vec2
	ok      bool
}

// newFrame inverts the quad's basis. ok is false for degenerate quads
// (collapsed to a line or point), which cover nothing.
func newFrame(q Quad) frame {
	det := q.U.X*q.V.Y - q.U.Y*q.V.X
	if math.Abs(det) < degenerateQuadThreshold {
		return frame{}
	}

	ext := vec.Vec2{X: q.U.Length(), Y: q.V.Length()}
	return frame{
		center:  q.Center,
		a:       q.V.Y / det * ext.X,
		b:       -q.V.X / det * ext.X,
		c:       -q.U.Y / det * ext.Y,
		d:       q.U.X / det * ext.Y,
		halfExt: ext,
		ok:      true,
	}
}

// pos maps a device-space point to local coordinates (the per-pixel tco
// value interpolated by a GPU rasteriser).
func (f *frame) pos(p vec.Vec2) vec.Vec2 {
	dx := p.X - f.center.X
	dy := p.Y - f.center.Y
	return vec.Vec2{
		X: f.a*dx + f.b*dy,
		Y: f.c*dx + f.d*dy,
	}
}

// Numerical tolerances for quad construction.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	// Shorter segments produce no coverage.
	zeroLengthThreshold = 1e-10

	// degenerateQuadThreshold is the minimum absolute basis determinant
	// for a quad to be invertible. Below this the quad has collapsed and
	// covers nothing.
	degenerateQuadThreshold = 1e-10
)
