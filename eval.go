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
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Evaluator samples analytic coverage kernels over the pixel grid and
// delivers coverage values row-by-row. The caller creates one instance
// and reuses it for multiple primitives. The internal buffer grows as
// needed but never shrinks, achieving zero allocations in steady state.
//
// An Evaluator is not safe for concurrent use; the kernels it samples
// are.
type Evaluator struct {
	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	cover []float32 // row buffer, reused across rows and calls
}

// NewEvaluator returns an Evaluator with the given clip rectangle.
func NewEvaluator(clip rect.Rect) *Evaluator {
	return &Evaluator{Clip: clip}
}

// Quad evaluates the parallelogram coverage kernel for q. The emit
// callback receives coverage row-by-row; its slice argument is valid
// only during the call.
func (e *Evaluator) Quad(q Quad, emit func(y, xMin int, coverage []float32)) {
	f := newFrame(q)
	if !f.ok {
		return
	}

	// The transition band extends half a pixel beyond each edge.
	hx := math.Abs(q.U.X) + math.Abs(q.V.X) + 0.5
	hy := math.Abs(q.U.Y) + math.Abs(q.V.Y) + 0.5

	xMin, xMax, yMin, yMax, ok := e.clampBBox(q.Center.X-hx, q.Center.X+hx, q.Center.Y-hy, q.Center.Y+hy)
	if !ok {
		return
	}

	e.sample(xMin, xMax, yMin, yMax, emit, func(p vec.Vec2) float64 {
		return Parallelogram(f.pos(p), f.halfExt)
	})
}

// Segment evaluates coverage for the segment from a to b, stroked with
// the given line width and butt caps. The emit callback receives
// coverage row-by-row; its slice argument is valid only during the call.
func (e *Evaluator) Segment(a, b vec.Vec2, width float64, emit func(y, xMin int, coverage []float32)) {
	e.Quad(SegmentQuad(a, b, width), emit)
}

// Circle evaluates the filled circle coverage kernel. The emit callback
// receives coverage row-by-row; its slice argument is valid only during
// the call.
func (e *Evaluator) Circle(c vec.Vec2, radius float64, emit func(y, xMin int, coverage []float32)) {
	if radius <= 0 {
		return
	}

	// Coverage reaches zero rampWidth beyond the radius.
	h := radius + rampWidth
	xMin, xMax, yMin, yMax, ok := e.clampBBox(c.X-h, c.X+h, c.Y-h, c.Y+h)
	if !ok {
		return
	}

	e.sample(xMin, xMax, yMin, yMax, emit, func(p vec.Vec2) float64 {
		return FilledCircle(p, c, radius)
	})
}

// clampBBox converts a device-space bounding box to integer pixel
// bounds, clamped to the clip rectangle. ok is false if nothing remains.
func (e *Evaluator) clampBBox(devXMin, devXMax, devYMin, devYMax float64) (xMin, xMax, yMin, yMax int, ok bool) {
	xMin = max(int(math.Floor(devXMin)), int(e.Clip.LLx))
	xMax = min(int(math.Floor(devXMax))+1, int(e.Clip.URx))
	yMin = max(int(math.Floor(devYMin)), int(e.Clip.LLy))
	yMax = min(int(math.Floor(devYMax))+1, int(e.Clip.URy))

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// sample evaluates the kernel at every pixel centre in the bounds and
// emits each row, trimmed to its non-zero portion.
func (e *Evaluator) sample(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32), kernel func(p vec.Vec2) float64) {
	width := xMax - xMin
	e.cover = slices.Grow(e.cover[:0], width)[:width]

	for y := yMin; y < yMax; y++ {
		py := float64(y) + 0.5
		for x := xMin; x < xMax; x++ {
			p := vec.Vec2{X: float64(x) + 0.5, Y: py}
			e.cover[x-xMin] = float32(kernel(p))
		}

		if trimmed, offset := trimZeros(e.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// trimZeros returns the non-zero portion of coverage and its starting
// offset. Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// Reset resets the Evaluator to its initial state with the given clip
// rectangle, preserving internal buffer capacity for reuse.
func (e *Evaluator) Reset(clip rect.Rect) {
	e.Clip = clip
	e.cover = e.cover[:0]
}
