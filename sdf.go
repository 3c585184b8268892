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

	"seehuhn.de/go/geom/vec"
)

// rampWidth is the half-width of the smoothstep transition band, in
// device pixels. 0.7 gives smooth edges at standard DPI.
const rampWidth = 0.7

// FilledCircle returns the coverage of the pixel centred at p by a
// filled circle with centre c and the given radius.
func FilledCircle(p, c vec.Vec2, radius float64) float64 {
	dist := math.Hypot(p.X-c.X, p.Y-c.Y)
	return ramp(dist - radius)
}

// StrokedCircle returns the coverage of the pixel centred at p by a
// circular stroke of half-width halfWidth, centred on the circle with
// centre c and the given radius.
func StrokedCircle(p, c vec.Vec2, radius, halfWidth float64) float64 {
	dist := math.Hypot(p.X-c.X, p.Y-c.Y)
	return ramp(math.Abs(dist-radius) - halfWidth)
}

// FilledRRect returns the coverage of the pixel centred at p by a filled
// rounded rectangle with centre c, half-extents halfExt, and corner
// radius corner.
func FilledRRect(p, c, halfExt vec.Vec2, corner float64) float64 {
	return ramp(rrectDistance(p, c, halfExt, corner))
}

// StrokedRRect returns the coverage of the pixel centred at p by the
// outline of a rounded rectangle, stroked with half-width halfWidth.
func StrokedRRect(p, c, halfExt vec.Vec2, corner, halfWidth float64) float64 {
	return ramp(math.Abs(rrectDistance(p, c, halfExt, corner)) - halfWidth)
}

// rrectDistance is the signed distance from p to the boundary of a
// rounded rectangle. Negative inside, positive outside.
func rrectDistance(p, c, halfExt vec.Vec2, corner float64) float64 {
	// By symmetry, work in the first quadrant relative to the centre.
	dx := math.Abs(p.X-c.X) - halfExt.X + corner
	dy := math.Abs(p.Y-c.Y) - halfExt.Y + corner

	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)
	return outside + inside - corner
}

// ramp converts a signed distance to coverage using a Hermite
// smoothstep: 1 at dist <= -rampWidth, 0 at dist >= rampWidth.
func ramp(dist float64) float64 {
	if dist >= rampWidth {
		return 0
	}
	if dist <= -rampWidth {
		return 1
	}
	t := (dist + rampWidth) / (2 * rampWidth)
	return 1 - t*t*(3-2*t)
}
