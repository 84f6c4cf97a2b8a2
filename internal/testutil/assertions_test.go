package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3.0000001}, 1e-6)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, math.MaxFloat64})
}

func TestRequireNonNegative(t *testing.T) {
	RequireNonNegative(t, []float64{0, 1, 2.5})
}

func TestRequireNonDecreasing(t *testing.T) {
	RequireNonDecreasing(t, []float64{0, 0, 1, 1.5}, 0)
	RequireNonDecreasing(t, []float64{1, 1 - 1e-15, 2}, 1e-12)
}
