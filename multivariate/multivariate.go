package multivariate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Jackyfirrest/newton-practice/common"
	"github.com/Jackyfirrest/newton-practice/write"
)

// Objective is a scalar function of a vector variable
type Objective interface {
	Obj(x []float64) float64
}

// ObjectiveFunc adapts an ordinary function to the Objective interface
type ObjectiveFunc func(x []float64) float64

func (f ObjectiveFunc) Obj(x []float64) float64 { return f(x) }

// Settings is a structure containing settings for multivariate solvers
type Settings struct {
	*common.CommonSettings

	// Tolerance is the absolute tolerance on the Euclidean norm of the
	// change in location between successive iterates
	Tolerance float64

	// GradAbsTol is the absolute tolerance on the Euclidean norm of the
	// gradient approximation
	GradAbsTol float64
}

// DefaultSettings returns the default settings for multivariate solvers
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings: common.DefaultCommonSettings(),
		Tolerance:      1e-6,
		GradAbsTol:     1e-10,
	}
}

// Helper is a helper struct for solvers. Not intended for use by callers of
// the Optimize function, but exported to aid others who are building solver
// algorithms
type Helper struct {
	*common.Common

	step common.Toler
	grad common.Toler

	locCurr     []float64
	gradCurr    []float64
	gradNrmCurr float64
	stepNrmCurr float64
}

// NewHelper creates a new Helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common: common.NewCommon(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Step", Value: u.stepNrmCurr})
	v = append(v, &write.Value{Heading: "GradNorm", Value: u.gradNrmCurr})
	return v
}

func (u *Helper) Init(s *Settings, objectiveFunction interface{}, initLoc []float64) {
	u.Common.Init(s.CommonSettings, objectiveFunction)

	u.step = common.Toler{AbsTol: s.Tolerance, RelTol: -1}
	u.step.Reset(math.Inf(1))
	u.grad = common.Toler{AbsTol: s.GradAbsTol, RelTol: -1}
	u.grad.Reset(math.Inf(1))

	u.locCurr = append(u.locCurr[:0], initLoc...)
	u.gradCurr = u.gradCurr[:0]
	u.gradNrmCurr = math.NaN()
	u.stepNrmCurr = math.NaN()
}

// Iterate records the new location and its gradient approximation after an
// iteration. The step norm is measured against the previously recorded
// location.
func (u *Helper) Iterate(loc, grad []float64, nFunEvals int) {
	stepNrm := floats.Distance(loc, u.locCurr, 2)
	u.Common.Iterate(nFunEvals)

	gradNrm := floats.Norm(grad, 2)
	u.step.Add(stepNrm)
	u.grad.Add(gradNrm)

	u.locCurr = append(u.locCurr[:0], loc...)
	u.gradCurr = append(u.gradCurr[:0], grad...)
	u.gradNrmCurr = gradNrm
	u.stepNrmCurr = stepNrm
}

func (u *Helper) Status() common.Status {
	if u.grad.AbsConverged() {
		return common.GradAbsTol
	}
	if u.step.AbsConverged() {
		return common.LocChangeTol
	}
	return u.Common.Status()
}

func (u *Helper) Result(status common.Status) *Result {
	if status.Converged() {
		u.Donef("stop iteration: %v at x = %v", status, u.locCurr)
	}
	loc := make([]float64, len(u.locCurr))
	copy(loc, u.locCurr)
	grad := make([]float64, len(u.gradCurr))
	copy(grad, u.gradCurr)
	return &Result{
		CommonResult: u.Common.Result(status),
		Loc:          loc,
		Grad:         grad,
		GradNorm:     u.gradNrmCurr,
		LastStep:     u.stepNrmCurr,
	}
}

// Result is the outcome of a multivariate solver run. As in the univariate
// package, Status distinguishes convergence from budget exhaustion or
// failure; the final iterate is reported either way.
type Result struct {
	*common.CommonResult
	Loc      []float64 // Final iterate
	Grad     []float64 // Gradient approximation at the final iterate
	GradNorm float64   // Euclidean norm of Grad
	LastStep float64   // Euclidean norm of the final update step
}
