package numdiff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x float64) float64 { return x * x }

func TestFirstQuadratic(t *testing.T) {
	// d/dx x² at 1 is 2. Forward difference error is O(step):
	// ((1+e)² − 1)/e = 2 + e.
	got := First(square, 1)
	assert.InDelta(t, 2.0, got, 10*DefaultStep)

	// The forward bias is one-sided, so the estimate overshoots.
	assert.Greater(t, got, 2.0)
}

func TestFirstStepSizes(t *testing.T) {
	for _, step := range []float64{1e-3, 1e-5, 1e-7} {
		got := FirstStep(square, 1, step)
		assert.InDeltaf(t, 2.0, got, 100*step, "step %g", step)
	}
}

func TestFirstCubic(t *testing.T) {
	cube := func(x float64) float64 { return x * x * x }
	// d/dx x³ at 2 is 12.
	assert.InDelta(t, 12.0, First(cube, 2), 1e-3)
}

func TestSecondQuadratic(t *testing.T) {
	// d²/dx² x² is 2 everywhere. The nested forward difference cancels
	// almost all significant digits at step 1e-5, so the tolerance is much
	// coarser than for First.
	for _, x := range []float64{-3, 0, 1, 7.5} {
		got := Second(square, x)
		require.False(t, math.IsNaN(got))
		assert.InDeltaf(t, 2.0, got, 1e-2, "x = %v", x)
	}
}

func TestSecondSine(t *testing.T) {
	// d²/dx² sin(x) at 0 is 0; at π/2 it is −1. Use a larger step than the
	// default so cancellation noise stays below the truncation error.
	assert.InDelta(t, 0.0, SecondStep(math.Sin, 0, 1e-4), 1e-2)
	assert.InDelta(t, -1.0, SecondStep(math.Sin, math.Pi/2, 1e-4), 1e-2)
}

func TestZeroStepPropagates(t *testing.T) {
	// A zero step is deliberately not guarded; the division produces a
	// non-finite value rather than an error.
	got := FirstStep(square, 1, 0)
	assert.True(t, math.IsNaN(got) || math.IsInf(got, 0))

	got = SecondStep(square, 1, 0)
	assert.True(t, math.IsNaN(got) || math.IsInf(got, 0))
}
