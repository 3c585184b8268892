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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestParallelogramValues(t *testing.T) {
	const eps = 1e-12

	cases := []struct {
		name     string
		pos      vec.Vec2
		halfExt  vec.Vec2
		expected float64
	}{
		// pixel centre inside a large parallelogram: full coverage
		{"centre", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 5, Y: 3}, 1.0},
		{"centre_min_size", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.5, Y: 0.5}, 1.0},

		// pixel centre exactly on one edge: half coverage
		{"on_edge_x", vec.Vec2{X: 5, Y: 0}, vec.Vec2{X: 5, Y: 3}, 0.5},
		{"on_edge_y", vec.Vec2{X: 0, Y: 3}, vec.Vec2{X: 5, Y: 3}, 0.5},

		// pixel centre exactly on both edges: 0.5 * 0.5
		{"corner", vec.Vec2{X: 5, Y: 3}, vec.Vec2{X: 5, Y: 3}, 0.25},

		// half a pixel outside one edge: zero
		{"outside_x", vec.Vec2{X: 5.5, Y: 0}, vec.Vec2{X: 5, Y: 3}, 0.0},
		{"outside_y", vec.Vec2{X: 0, Y: 3.5}, vec.Vec2{X: 5, Y: 3}, 0.0},
		{"far_outside", vec.Vec2{X: 100, Y: 100}, vec.Vec2{X: 5, Y: 3}, 0.0},

		// linear ramp across the edge
		{"ramp_quarter", vec.Vec2{X: 5.25, Y: 0}, vec.Vec2{X: 5, Y: 3}, 0.25},
		{"ramp_three_quarter", vec.Vec2{X: 4.75, Y: 0}, vec.Vec2{X: 5, Y: 3}, 0.75},

		// sub-pixel extent: coverage capped at twice the half-width
		{"thin_centre", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.1, Y: 10}, 0.2},
		{"thin_off_centre", vec.Vec2{X: 0.45, Y: 0}, vec.Vec2{X: 0.1, Y: 10}, 0.15},
		{"thin_both", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.1, Y: 0.2}, 0.2 * 0.4},

		// zero extent covers nothing
		{"zero_extent", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 3}, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parallelogram(tc.pos, tc.halfExt)
			if math.Abs(got-tc.expected) > eps {
				t.Errorf("Parallelogram(%v, %v) = %g, want %g",
					tc.pos, tc.halfExt, got, tc.expected)
			}
		})
	}
}

// TestParallelogramRange checks that the result is always in [0, 1]
// for non-negative half-extents, including non-finite-looking extremes.
func TestParallelogramRange(t *testing.T) {
	positions := []float64{-1e9, -100, -2.5, -0.5, 0, 0.3, 0.5, 1, 7.25, 100, 1e9}
	extents := []float64{0, 0.05, 0.2, 0.5, 1, 3.75, 100, 1e9}

	for _, px := range positions {
		for _, py := range positions {
			for _, hx := range extents {
				for _, hy := range extents {
					c := Parallelogram(vec.Vec2{X: px, Y: py}, vec.Vec2{X: hx, Y: hy})
					if c < 0 || c > 1 {
						t.Fatalf("Parallelogram((%g,%g), (%g,%g)) = %g, outside [0,1]",
							px, py, hx, hy, c)
					}
				}
			}
		}
	}
}

// TestParallelogramMonotonic checks that coverage is non-increasing in
// the distance from the centre along each axis.
func TestParallelogramMonotonic(t *testing.T) {
	halfExts := []vec.Vec2{
		{X: 5, Y: 3},
		{X: 0.5, Y: 0.5},
		{X: 0.1, Y: 10},
		{X: 0.3, Y: 0.2},
	}

	for _, he := range halfExts {
		prev := math.Inf(1)
		for x := 0.0; x < he.X+2; x += 1.0 / 64 {
			c := Parallelogram(vec.Vec2{X: x, Y: 0}, he)
			if c > prev {
				t.Fatalf("halfExt %v: coverage increased from %g to %g at x=%g",
					he, prev, c, x)
			}
			prev = c
		}

		prev = math.Inf(1)
		for y := 0.0; y < he.Y+2; y += 1.0 / 64 {
			c := Parallelogram(vec.Vec2{X: 0, Y: y}, he)
			if c > prev {
				t.Fatalf("halfExt %v: coverage increased from %g to %g at y=%g",
					he, prev, c, y)
			}
			prev = c
		}
	}
}

// TestParallelogramSymmetric checks that coverage is an even function
// of the position along each axis.
func TestParallelogramSymmetric(t *testing.T) {
	he := vec.Vec2{X: 2.5, Y: 0.4}
	for x := -4.0; x <= 4; x += 0.37 {
		for y := -2.0; y <= 2; y += 0.29 {
			c0 := Parallelogram(vec.Vec2{X: x, Y: y}, he)
			c1 := Parallelogram(vec.Vec2{X: -x, Y: y}, he)
			c2 := Parallelogram(vec.Vec2{X: x, Y: -y}, he)
			if c0 != c1 || c0 != c2 {
				t.Fatalf("asymmetric at (%g,%g): %g, %g, %g", x, y, c0, c1, c2)
			}
		}
	}
}

// TestAxisCoverageExact checks the per-axis term against the exact
// overlap length of the pixel [pos-0.5, pos+0.5] with the band
// [-halfExt, halfExt]. The two agree for all inputs, including
// sub-pixel bands straddling both edges: the extent clip reproduces
// the 2*halfExt overlap in that case.
func TestAxisCoverageExact(t *testing.T) {
	const eps = 1e-12
	for pos := -3.0; pos <= 3; pos += 1.0 / 32 {
		for _, halfExt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 1, 2.5} {
			got := axisCoverage(pos, halfExt)
			want := math.Min(pos+0.5, halfExt) - math.Max(pos-0.5, -halfExt)
			if want < 0 {
				want = 0
			}
			if math.Abs(got-want) > eps {
				t.Errorf("axisCoverage(%g, %g) = %g, want overlap %g",
					pos, halfExt, got, want)
			}
		}
	}
}

// TestEvaluationOrder pins the order of the clamp and the extent clip.
// For a sub-pixel band the edge term must be clamped to [0,1] before
// taking the minimum with 2*halfExt; clipping first would change the
// result here.
func TestEvaluationOrder(t *testing.T) {
	const eps = 1e-12

	// halfExt 0.1: edge term at pos 0.45 is 0.15, already below the
	// 0.2 extent cap, so the cap must not apply.
	got := axisCoverage(0.45, 0.1)
	if math.Abs(got-0.15) > eps {
		t.Errorf("axisCoverage(0.45, 0.1) = %g, want 0.15", got)
	}

	// at pos 0 the edge term 0.6 exceeds the cap and is clipped to 0.2
	got = axisCoverage(0, 0.1)
	if math.Abs(got-0.2) > eps {
		t.Errorf("axisCoverage(0, 0.1) = %g, want 0.2", got)
	}
}
