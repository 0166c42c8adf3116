// Package numdiff estimates scalar derivatives by forward finite differences.
//
// Both estimators use one-sided (forward) differences, so the truncation
// error is O(step), not the O(step²) of a centered scheme. The second
// derivative is a forward difference of the first-derivative estimate rather
// than a direct three-point stencil, which compounds truncation and
// floating-point cancellation error. These are the semantics the solvers in
// this module are specified against; gonum's diff/fd package provides
// higher-order stencils for the vector case.
package numdiff

// DefaultStep is the step size used by First and Second.
const DefaultStep = 1e-5

// First estimates the first derivative of f at x using a forward difference
// with DefaultStep.
func First(f func(float64) float64, x float64) float64 {
	return FirstStep(f, x, DefaultStep)
}

// FirstStep estimates the first derivative of f at x as
// (f(x+step) − f(x)) / step. f must be defined at x and x+step.
//
// A step of zero is not guarded: the division yields ±Inf or NaN, which
// propagates to the caller.
func FirstStep(f func(float64) float64, x, step float64) float64 {
	return (f(x+step) - f(x)) / step
}

// Second estimates the second derivative of f at x using a nested forward
// difference with DefaultStep.
func Second(f func(float64) float64, x float64) float64 {
	return SecondStep(f, x, DefaultStep)
}

// SecondStep estimates the second derivative of f at x as the forward
// difference of FirstStep, requiring f at x, x+step and x+2·step. The
// estimate is never exact even for polynomials because the two first
// derivative estimates cancel to within floating-point error.
//
// As with FirstStep, a step of zero propagates ±Inf or NaN.
func SecondStep(f func(float64) float64, x, step float64) float64 {
	return (FirstStep(f, x+step, step) - FirstStep(f, x, step)) / step
}

// FirstEvals and SecondEvals are the objective evaluations consumed by one
// call of the corresponding estimator. The two estimators share no
// evaluations, so a solver computing both spends FirstEvals+SecondEvals per
// iteration.
const (
	FirstEvals  = 2
	SecondEvals = 4
)
