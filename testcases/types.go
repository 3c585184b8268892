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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single coverage evaluation test. The parallelogram
// is given in device coordinates by its centre and two half-edge
// vectors: the corners are Center ± U ± V.
type TestCase struct {
	Name   string   // lowercase a-z and _ only
	Center vec.Vec2 // parallelogram centre
	U, V   vec.Vec2 // half-edge vectors
	Width  int      // canvas width in pixels
	Height int      // canvas height in pixels
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// rotated builds the half-edge vectors of a rectangle with half-extents
// hw, hh, rotated by angle radians about its centre.
func rotated(hw, hh, angle float64) (u, v vec.Vec2) {
	sin, cos := math.Sincos(angle)
	u = pt(hw*cos, hw*sin)
	v = pt(-hh*sin, hh*cos)
	return u, v
}

// segment builds the half-edge vectors of the butt-capped stroke
// parallelogram for the segment from a to b with the given line width.
func segment(a, b vec.Vec2, width float64) (center, u, v vec.Vec2) {
	d := b.Sub(a)
	t := d.Mul(1 / d.Length())
	n := vec.Vec2{X: -t.Y, Y: t.X}
	return a.Add(b).Mul(0.5), d.Mul(0.5), n.Mul(width / 2)
}
