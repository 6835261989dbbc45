package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in the exported test case names.
var All = map[string][]TestCase{
	"line":      lineCases,
	"segment":   segmentCases,
	"transform": transformCases,
	"polygon":   polygonCases,
	"rectangle": rectangleCases,
	"circle":    circleCases,
}
