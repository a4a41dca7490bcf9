package nmeadecode

import "math"

func floatsClose(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
