package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jackyfirrest/newton-practice/write"
)

func TestStatusConverged(t *testing.T) {
	assert.False(t, Continue.Converged())
	assert.True(t, LocChangeTol.Converged())
	assert.True(t, GradAbsTol.Converged())
	assert.False(t, MaximumIterations.Converged())
	assert.False(t, SingularDerivative.Converged())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "SingularDerivative", SingularDerivative.String())
	assert.Equal(t, "UnregisteredStatus", Status(999).String())

	custom := NewStatus("Custom")
	assert.Equal(t, "Custom", custom.String())
}

type fixedStatus Status

func (f fixedStatus) Status() Status { return Status(f) }

func TestCheckStatus(t *testing.T) {
	assert.Equal(t, Continue, CheckStatus())
	assert.Equal(t, Continue, CheckStatus(fixedStatus(Continue), fixedStatus(Continue)))
	assert.Equal(t, LocChangeTol,
		CheckStatus(fixedStatus(Continue), fixedStatus(LocChangeTol), fixedStatus(MaximumIterations)))
}

func TestTolerAbs(t *testing.T) {
	tol := Toler{AbsTol: 1e-3, RelTol: -1}
	tol.Reset(math.Inf(1))
	assert.False(t, tol.AbsConverged())

	tol.Add(1)
	assert.False(t, tol.AbsConverged())

	tol.Add(1e-4)
	assert.True(t, tol.AbsConverged())

	// NaN disables the absolute check.
	tol = Toler{AbsTol: math.NaN(), RelTol: -1}
	tol.Reset(0)
	assert.False(t, tol.AbsConverged())
}

func TestTolerRel(t *testing.T) {
	tol := Toler{AbsTol: math.NaN(), RelTol: 1e-3, Window: 3}
	tol.Reset(10)

	// No relative convergence until the window fills.
	tol.Add(5)
	assert.False(t, tol.RelConverged())
	tol.Add(6)
	assert.False(t, tol.RelConverged())

	// Window filled; each value is compared with the one three Adds back.
	tol.Add(7)
	assert.False(t, tol.RelConverged())
	tol.Add(7.0001)
	assert.False(t, tol.RelConverged())

	// 7.0002 vs 7 is within the relative tolerance.
	tol.Add(7.0002)
	assert.True(t, tol.RelConverged())
}

func TestCommonBudgets(t *testing.T) {
	settings := DefaultCommonSettings()
	settings.WriteSettings = &write.WriteSettings{}
	settings.MaximumIterations = 2

	c := NewCommon()
	c.Init(settings, nil)

	assert.Equal(t, Continue, c.Status())
	c.Iterate(3)
	assert.Equal(t, Continue, c.Status())
	c.Iterate(3)
	assert.Equal(t, MaximumIterations, c.Status())

	r := c.Result(MaximumIterations)
	assert.Equal(t, 2, r.Iterations)
	assert.Equal(t, 6, r.FunctionEvaluations)

	// A zero budget trips before any iteration.
	settings.MaximumIterations = 0
	c = NewCommon()
	c.Init(settings, nil)
	assert.Equal(t, MaximumIterations, c.Status())
}

func TestCommonFunctionEvaluationBudget(t *testing.T) {
	settings := DefaultCommonSettings()
	settings.WriteSettings = &write.WriteSettings{}
	settings.MaximumFunctionEvaluations = 5

	c := NewCommon()
	c.Init(settings, nil)

	c.Iterate(4)
	assert.Equal(t, Continue, c.Status())
	c.Iterate(4)
	assert.Equal(t, MaximumFunctionEvaluations, c.Status())
}
