package testcases

// segmentCases are butt-capped stroke segments expressed as
// parallelograms, the shape this kernel was designed for.
var segmentCases = []TestCase{
	func() TestCase {
		c, u, v := segment(pt(8, 16), pt(56, 16), 3)
		return TestCase{Name: "horizontal", Center: c, U: u, V: v, Width: 64, Height: 32}
	}(),
	func() TestCase {
		c, u, v := segment(pt(16, 8), pt(16, 56), 3)
		return TestCase{Name: "vertical", Center: c, U: u, V: v, Width: 32, Height: 64}
	}(),
	func() TestCase {
		c, u, v := segment(pt(8, 8), pt(56, 40), 4)
		return TestCase{Name: "diagonal", Center: c, U: u, V: v, Width: 64, Height: 48}
	}(),
	func() TestCase {
		c, u, v := segment(pt(8, 40), pt(56, 12), 0.8)
		return TestCase{Name: "thin_diagonal", Center: c, U: u, V: v, Width: 64, Height: 48}
	}(),
}
