package testcases

import "math"

// rotatedCases are rotated and sheared rectangles. Coverage away from
// the corners is a linear ramp; the corners use the separable
// approximation.
var rotatedCases = []TestCase{
	func() TestCase {
		u, v := rotated(18, 10, math.Pi/6)
		return TestCase{Name: "rot30", Center: pt(32, 32), U: u, V: v, Width: 64, Height: 64}
	}(),
	func() TestCase {
		u, v := rotated(18, 10, math.Pi/4)
		return TestCase{Name: "rot45", Center: pt(32, 32), U: u, V: v, Width: 64, Height: 64}
	}(),
	func() TestCase {
		u, v := rotated(20, 20, 0.2)
		return TestCase{Name: "rot_square", Center: pt(32, 32), U: u, V: v, Width: 64, Height: 64}
	}(),
	{
		// sheared: V tilted away from the U normal
		Name:   "shear",
		Center: pt(32, 32),
		U:      pt(16, 0),
		V:      pt(6, 12),
		Width:  64,
		Height: 64,
	},
}
