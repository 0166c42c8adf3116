package multivariate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Jackyfirrest/newton-practice/common"
)

// ErrSingular is returned when the Hessian approximation is singular and
// the Newton system has no usable solution. A singular Hessian is a known
// failure mode of this solver; there is no fallback step.
var ErrSingular = errors.New("multivariate: singular hessian approximation")

// Newton is a multivariate Newton solver. Each iteration approximates the
// gradient g and Hessian H of the objective at the current iterate, solves
// H·delta = g directly, and updates x ← x − delta. The linear system is
// solved by LU factorization; the Hessian is never explicitly inverted.
//
// There is no line search and no conditioning safeguard beyond the
// singularity check, so the iteration is only locally convergent.
type Newton struct {
	// Approx supplies the gradient and Hessian approximations.
	// Defaults to FiniteDifference{} if nil.
	Approx Approximator

	fun      Objective
	loc      []float64
	grad     []float64
	hess     *mat.SymDense
	delta    *mat.VecDense
	nEvals   int
	status   common.Status
	counting func([]float64) float64
}

func (n *Newton) Init(f Objective, initLoc []float64) error {
	if f == nil {
		return errors.New("multivariate: nil objective")
	}
	if len(initLoc) == 0 {
		return errors.New("multivariate: empty initial location")
	}
	if n.Approx == nil {
		n.Approx = FiniteDifference{}
	}

	dim := len(initLoc)
	n.fun = f
	n.loc = append(n.loc[:0], initLoc...)
	n.grad = make([]float64, dim)
	n.hess = mat.NewSymDense(dim, nil)
	n.delta = mat.NewVecDense(dim, nil)
	n.status = common.Continue

	// Count objective evaluations through the approximators rather than
	// bookkeeping each scheme's stencil size.
	n.nEvals = 0
	n.counting = func(x []float64) float64 {
		n.nEvals++
		return n.fun.Obj(x)
	}
	return nil
}

// Iterate computes one Newton step, storing the new location and the
// gradient approximation behind it in loc and grad, which must have the
// dimension given at Init.
func (n *Newton) Iterate(loc, grad []float64) (nFunEvals int, err error) {
	n.nEvals = 0

	n.Approx.Gradient(n.grad, n.counting, n.loc)
	n.Approx.Hessian(n.hess, n.counting, n.loc)

	gradVec := mat.NewVecDense(len(n.grad), n.grad)
	if err := n.delta.SolveVec(n.hess, gradVec); err != nil {
		n.status = common.SingularDerivative
		return n.nEvals, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	floats.SubTo(n.loc, n.loc, n.delta.RawVector().Data)

	copy(loc, n.loc)
	copy(grad, n.grad)
	return n.nEvals, nil
}

func (n *Newton) Status() common.Status { return n.status }

func (n *Newton) Result() {}
