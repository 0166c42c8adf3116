package multivariate

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Approximator supplies the derivative approximations consumed by the Newton
// solver. It is an injected capability: the default is finite differences,
// but analytic derivatives or an alternative numerical scheme can be
// substituted without touching the solver.
type Approximator interface {
	// Gradient stores an approximation of the gradient of f at x in dst,
	// which must have length len(x), and returns dst
	Gradient(dst []float64, f func([]float64) float64, x []float64) []float64
	// Hessian stores an approximation of the Hessian of f at x in dst,
	// which must be n×n for n = len(x), and returns dst
	Hessian(dst *mat.SymDense, f func([]float64) float64, x []float64) *mat.SymDense
}

// FiniteDifference approximates derivatives with gonum's diff/fd package.
// The Hessian is computed as the Jacobian of the finite-difference gradient
// rather than from a direct second-derivative stencil, so its error
// compounds the two step sizes.
type FiniteDifference struct {
	// GradientStep is the step for the gradient approximation.
	// Defaults to 1e-8 if zero.
	GradientStep float64
	// HessianStep is the step for differentiating the gradient.
	// Defaults to 1e-5 if zero.
	HessianStep float64
}

const (
	defaultGradientStep = 1e-8
	defaultHessianStep  = 1e-5
)

func (a FiniteDifference) gradientStep() float64 {
	if a.GradientStep == 0 {
		return defaultGradientStep
	}
	return a.GradientStep
}

func (a FiniteDifference) hessianStep() float64 {
	if a.HessianStep == 0 {
		return defaultHessianStep
	}
	return a.HessianStep
}

func (a FiniteDifference) Gradient(dst []float64, f func([]float64) float64, x []float64) []float64 {
	return fd.Gradient(dst, f, x, &fd.Settings{
		Formula: fd.Forward,
		Step:    a.gradientStep(),
	})
}

func (a FiniteDifference) Hessian(dst *mat.SymDense, f func([]float64) float64, x []float64) *mat.SymDense {
	n := len(x)
	if dst == nil {
		dst = mat.NewSymDense(n, nil)
	}

	gradStep := a.gradientStep()
	grad := func(g, y []float64) {
		fd.Gradient(g, f, y, &fd.Settings{Formula: fd.Forward, Step: gradStep})
	}

	jac := mat.NewDense(n, n, nil)
	fd.Jacobian(jac, grad, x, &fd.JacobianSettings{
		Formula: fd.Forward,
		Step:    a.hessianStep(),
	})

	// The differentiated gradient is not exactly symmetric; average the
	// off-diagonal pairs.
	for i := 0; i < n; i++ {
		dst.SetSym(i, i, jac.At(i, i))
		for j := i + 1; j < n; j++ {
			dst.SetSym(i, j, 0.5*(jac.At(i, j)+jac.At(j, i)))
		}
	}
	return dst
}
