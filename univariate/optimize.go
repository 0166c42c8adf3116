package univariate

import (
	"errors"
	"fmt"
	"math"

	"github.com/Jackyfirrest/newton-practice/common"
)

// Optimizer is a univariate solver algorithm. The Optimize loop checks
// Status before every Iterate, so budget exhaustion is detected before the
// next step is taken.
type Optimizer interface {
	Init(f Objective, initLoc float64) error
	Status() common.Status
	// Iterate returns the new location, the residual and denominator
	// estimates behind the step, and the objective evaluations spent
	Iterate() (loc, resid, curv float64, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// Wrapper is a convenience wrapper around an Optimizer that allows more
// fine-grained control over solver progress. See Optimize for example usage
type Wrapper struct {
	optimizer Optimizer
	helper    *Helper
}

func NewWrapper(optimizer Optimizer) *Wrapper {
	return &Wrapper{
		optimizer: optimizer,
		helper:    NewHelper(),
	}
}

func (w *Wrapper) Init(settings *Settings, fun Objective, initLoc float64) error {
	w.helper.Init(settings, fun, initLoc)
	return w.optimizer.Init(fun, initLoc)
}

func (w *Wrapper) Status() common.Status {
	return common.CheckStatus(w.helper, w.optimizer)
}

func (w *Wrapper) Iterate() (loc float64, err error) {
	loc, resid, curv, nFunEvals, err := w.optimizer.Iterate()
	if err != nil {
		return loc, fmt.Errorf("error iterating solver: %w", err)
	}
	w.helper.Iterate(loc, resid, curv, nFunEvals)
	return loc, nil
}

func (w *Wrapper) Result(status common.Status) *Result {
	w.optimizer.Result()
	return w.helper.Result(status)
}

// Optimize runs the optimizer from initLoc until it converges, a budget in
// settings is exhausted, or it fails. If optimizer is nil a Newton solver in
// its default stationary-point mode is used; if settings is nil
// DefaultSettings is used.
//
// A Result is returned alongside any error, so a failed run still reports
// its final iterate and status.
func Optimize(f Objective, initLoc float64, settings *Settings, optimizer Optimizer) (*Result, error) {
	if f == nil {
		return nil, errors.New("univariate: nil objective function")
	}
	if math.IsNaN(initLoc) || math.IsInf(initLoc, 0) {
		return nil, fmt.Errorf("univariate: initial location %v is not finite", initLoc)
	}

	if optimizer == nil {
		optimizer = &Newton{}
	}
	if settings == nil {
		settings = DefaultSettings()
	}

	wrapper := NewWrapper(optimizer)

	if err := wrapper.Init(settings, f, initLoc); err != nil {
		return nil, fmt.Errorf("error initializing: %w", err)
	}

	var status common.Status
	for {
		// Check if it has converged
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		if _, err := wrapper.Iterate(); err != nil {
			status = wrapper.Status()
			if status == common.Continue {
				status = common.OptimizerError
			}
			return wrapper.Result(status), err
		}
	}
	return wrapper.Result(status), nil
}
