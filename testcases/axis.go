package testcases

// axisCases are axis-aligned rectangles. For these the parallelogram
// coverage kernel computes the exact pixel overlap area.
var axisCases = []TestCase{
	{
		Name:   "square",
		Center: pt(32, 32),
		U:      pt(20, 0),
		V:      pt(0, 20),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Center: pt(32, 24),
		U:      pt(24, 0),
		V:      pt(0, 10),
		Width:  64,
		Height: 48,
	},
	{
		Name:   "offgrid",
		Center: pt(31.3, 32.7),
		U:      pt(15.4, 0),
		V:      pt(0, 9.6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "clipped",
		Center: pt(4, 4),
		U:      pt(10, 0),
		V:      pt(0, 10),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "pixel_aligned",
		Center: pt(16, 16),
		U:      pt(8, 0),
		V:      pt(0, 8),
		Width:  32,
		Height: 32,
	},
}
