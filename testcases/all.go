package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"axis":    axisCases,
	"rotated": rotatedCases,
	"thin":    thinCases,
	"segment": segmentCases,
}
