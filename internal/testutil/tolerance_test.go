package testutil

import "testing"

func TestRequireHelpersPass(t *testing.T) {
	RequireNearlyEqual(t, "value", 1.0, 1.0+1e-13, 1e-12)
	RequireFinite(t, []float64{0, -1, 1e300})
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-13}, 1e-12)
}
