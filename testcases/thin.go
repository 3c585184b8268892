package testcases

import "math"

// thinCases are primitives narrower than one pixel along at least one
// axis. These exercise the extent clip: coverage must never exceed the
// primitive's own width in pixel units.
var thinCases = []TestCase{
	{
		Name:   "hairline_horizontal",
		Center: pt(32, 16.5),
		U:      pt(24, 0),
		V:      pt(0, 0.2),
		Width:  64,
		Height: 32,
	},
	{
		Name:   "hairline_offgrid",
		Center: pt(32, 16.23),
		U:      pt(24, 0),
		V:      pt(0, 0.15),
		Width:  64,
		Height: 32,
	},
	func() TestCase {
		u, v := rotated(24, 0.2, math.Pi/6)
		return TestCase{Name: "hairline_rot30", Center: pt(32, 32), U: u, V: v, Width: 64, Height: 64}
	}(),
	{
		Name:   "subpixel_both",
		Center: pt(16.5, 16.5),
		U:      pt(0.3, 0),
		V:      pt(0, 0.3),
		Width:  32,
		Height: 32,
	},
}
