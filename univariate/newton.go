package univariate

import (
	"errors"

	"github.com/Jackyfirrest/newton-practice/common"
	"github.com/Jackyfirrest/newton-practice/numdiff"
)

// ErrSingular is returned when the denominator of the Newton update is
// estimated to be exactly zero, so no step can be computed.
var ErrSingular = errors.New("univariate: singular derivative estimate")

// Target selects the quantity the Newton update drives to zero
type Target int

const (
	// TargetStationary iterates x ← x − f'(x)/f''(x), driving the first
	// derivative to zero. It locates a stationary point of f, not a root of
	// f. This is Newton's method applied to f', and is the historical
	// behavior of this solver even though it was labeled root-finding.
	TargetStationary Target = iota

	// TargetRoot iterates x ← x − f(x)/f'(x), the classical Newton
	// root-finding update driving f itself to zero
	TargetRoot
)

// Newton is a Newton-iteration solver with finite-difference derivatives.
// Both derivative estimates come from the numdiff forward-difference
// estimators, so each iteration costs a fixed number of objective
// evaluations and no analytic derivative is needed.
type Newton struct {
	// Target selects stationary-point or root-finding iteration.
	// The zero value is TargetStationary.
	Target Target

	// Step is the finite-difference step size. Defaults to
	// numdiff.DefaultStep if zero.
	Step float64

	fun    Objective
	loc    float64
	status common.Status
}

func (n *Newton) Init(f Objective, initLoc float64) error {
	if f == nil {
		return errors.New("univariate: nil objective")
	}
	if n.Step == 0 {
		n.Step = numdiff.DefaultStep
	}
	n.fun = f
	n.loc = initLoc
	n.status = common.Continue
	return nil
}

// Iterate computes one Newton update. It returns the new location along
// with the residual and denominator estimates used to compute it, and the
// number of objective evaluations spent.
func (n *Newton) Iterate() (loc, resid, curv float64, nFunEvals int, err error) {
	x := n.loc
	f := n.fun.Obj

	switch n.Target {
	case TargetStationary:
		resid = numdiff.FirstStep(f, x, n.Step)
		curv = numdiff.SecondStep(f, x, n.Step)
		nFunEvals = numdiff.FirstEvals + numdiff.SecondEvals
	case TargetRoot:
		resid = f(x)
		curv = numdiff.FirstStep(f, x, n.Step)
		nFunEvals = 1 + numdiff.FirstEvals
	default:
		return x, 0, 0, 0, errors.New("univariate: unknown target")
	}

	if curv == 0 {
		n.status = common.SingularDerivative
		return x, resid, curv, nFunEvals, ErrSingular
	}

	n.loc = x - resid/curv
	return n.loc, resid, curv, nFunEvals, nil
}

func (n *Newton) Status() common.Status { return n.status }

func (n *Newton) Result() {}
