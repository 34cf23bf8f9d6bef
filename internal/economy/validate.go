package economy

import (
	"math"

	"github.com/samber/lo"
)

// clampProb maps p into [0,1]. NaN degrades to 0.
func clampProb(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return lo.Clamp(p, 0, 1)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
