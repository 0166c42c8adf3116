package multivariate

import (
	"errors"
	"fmt"

	"github.com/Jackyfirrest/newton-practice/common"
)

// Optimizer is a multivariate solver algorithm. The Optimize loop checks
// Status before every Iterate, so budget exhaustion is detected before the
// next step is taken.
type Optimizer interface {
	Init(f Objective, initLoc []float64) error
	Status() common.Status
	// Iterate stores the new location and its gradient approximation in
	// loc and grad in place
	Iterate(loc, grad []float64) (nFunEvals int, err error)
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

func (w *Wrapper) Init(settings *Settings, fun Objective, initLoc []float64) error {
	w.helper.Init(settings, fun, initLoc)
	return w.optimizer.Init(fun, initLoc)
}

func (w *Wrapper) Status() common.Status {
	return common.CheckStatus(w.helper, w.optimizer)
}

func (w *Wrapper) Iterate(loc, grad []float64) error {
	nFunEvals, err := w.optimizer.Iterate(loc, grad)
	if err != nil {
		return fmt.Errorf("error iterating solver: %w", err)
	}
	w.helper.Iterate(loc, grad, nFunEvals)
	return nil
}

func (w *Wrapper) Result(status common.Status) *Result {
	w.optimizer.Result()
	return w.helper.Result(status)
}

// Optimize runs the optimizer from initLoc until it converges, a budget in
// settings is exhausted, or it fails. If optimizer is nil a Newton solver
// with finite-difference derivatives is used; if settings is nil
// DefaultSettings is used.
//
// A Result is returned alongside any error, so a failed run still reports
// its final iterate and status.
func Optimize(f Objective, initLoc []float64, settings *Settings, optimizer Optimizer) (*Result, error) {
	if f == nil {
		return nil, errors.New("multivariate: nil objective function")
	}
	if len(initLoc) == 0 {
		return nil, errors.New("multivariate: nil or empty initial location")
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

	loc := make([]float64, len(initLoc))
	grad := make([]float64, len(initLoc))

	var status common.Status
	for {
		// Check if it has converged
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		if err := wrapper.Iterate(loc, grad); err != nil {
			status = wrapper.Status()
			if status == common.Continue {
				status = common.OptimizerError
			}
			return wrapper.Result(status), err
		}
	}
	return wrapper.Result(status), nil
}
