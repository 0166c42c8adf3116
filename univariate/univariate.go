package univariate

import (
	"math"

	"github.com/Jackyfirrest/newton-practice/common"
	"github.com/Jackyfirrest/newton-practice/write"
)

// Objective is a scalar function of one variable
type Objective interface {
	Obj(x float64) float64
}

// ObjectiveFunc adapts an ordinary function to the Objective interface
type ObjectiveFunc func(x float64) float64

func (f ObjectiveFunc) Obj(x float64) float64 { return f(x) }

// Settings is a structure containing settings for univariate solvers
type Settings struct {
	*common.CommonSettings

	// Tolerance is the absolute tolerance on the change in location between
	// successive iterates. The solver converges with LocChangeTol when the
	// step magnitude falls below it.
	Tolerance float64

	// GradAbsTol is the absolute tolerance on the residual driven to zero
	// by the update (the derivative estimate in stationary mode, the
	// function value in root mode). A residual below it converges with
	// GradAbsTol without taking a step.
	GradAbsTol float64

	// DivergenceThreshold is the step magnitude above which a non-fatal
	// warning is emitted. Iteration continues.
	DivergenceThreshold float64
}

// DefaultSettings returns the default settings for univariate solvers.
// The default behavior bounds the run at 100 iterations; set
// MaximumIterations to a negative value to run until convergence.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings:      common.DefaultCommonSettings(),
		Tolerance:           1e-6,
		GradAbsTol:          1e-10,
		DivergenceThreshold: 1e6,
	}
}

// Helper is a helper struct for solvers. Not intended for use by callers of
// the Optimize function, but exported to aid others who are building
// solver algorithms.
//
// Solver implementers should call Init() at the beginning of a run, should
// call Status() to check tolerances, and at the end of every iteration
// should call Iterate()
type Helper struct {
	*common.Common

	step  common.Toler
	resid common.Toler

	divergenceThreshold float64
	diverged            bool

	locCurr   float64
	residCurr float64
	curvCurr  float64
	stepCurr  float64
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
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "Step", Value: u.stepCurr})
	v = append(v, &write.Value{Heading: "Resid", Value: u.residCurr})
	v = append(v, &write.Value{Heading: "Curv", Value: u.curvCurr})
	return v
}

func (u *Helper) Init(s *Settings, objectiveFunction interface{}, initLoc float64) {
	u.Common.Init(s.CommonSettings, objectiveFunction)

	u.step = common.Toler{AbsTol: s.Tolerance, RelTol: -1}
	u.step.Reset(math.Inf(1))
	u.resid = common.Toler{AbsTol: s.GradAbsTol, RelTol: -1}
	u.resid.Reset(math.Inf(1))

	u.divergenceThreshold = s.DivergenceThreshold
	u.diverged = false

	u.locCurr = initLoc
	u.residCurr = math.NaN()
	u.curvCurr = math.NaN()
	u.stepCurr = math.NaN()
}

func (u *Helper) Iterate(loc, resid, curv float64, nFunEvals int) {
	stepMag := math.Abs(loc - u.locCurr)
	u.Common.Iterate(nFunEvals)
	u.step.Add(stepMag)
	u.resid.Add(math.Abs(resid))

	if u.divergenceThreshold > 0 && stepMag > u.divergenceThreshold {
		u.diverged = true
		u.Warningf("newton: iteration %d step magnitude %e exceeds %e, iterate may be diverging",
			u.Iterations(), stepMag, u.divergenceThreshold)
	}

	u.locCurr = loc
	u.residCurr = resid
	u.curvCurr = curv
	u.stepCurr = stepMag
}

func (u *Helper) Status() common.Status {
	if u.resid.AbsConverged() {
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
	return &Result{
		CommonResult: u.Common.Result(status),
		Loc:          u.locCurr,
		Residual:     u.residCurr,
		Curvature:    u.curvCurr,
		LastStep:     u.stepCurr,
		Diverged:     u.diverged,
	}
}

// Result is the outcome of a univariate solver run. Status distinguishes
// convergence (positive) from budget exhaustion or failure (negative);
// non-convergence within the iteration budget is reported, never silent.
type Result struct {
	*common.CommonResult
	Loc       float64 // Final iterate
	Residual  float64 // Value the update drives to zero: f'(Loc) in stationary mode, f(Loc) in root mode
	Curvature float64 // Update denominator: f''(Loc) in stationary mode, f'(Loc) in root mode
	LastStep  float64 // Magnitude of the final update step
	Diverged  bool    // Whether the divergence warning fired at any iteration
}
