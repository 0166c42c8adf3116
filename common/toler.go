package common

import "math"

// Toler checks the convergence of a scalar diagnostic quantity against an
// absolute tolerance and, optionally, a relative tolerance over a trailing
// window of iterations. The Newton solvers use one Toler for the magnitude
// of the iteration step and one for the derivative estimate.
//
// An absolute tolerance of NaN disables the absolute check; a relative
// tolerance that is not positive disables the relative check.
type Toler struct {
	AbsTol float64
	RelTol float64
	Window int // trailing window length for the relative check

	hist   []float64
	next   int
	nAdded int
	recent float64
}

// Reset prepares the Toler for a new solver run starting from initVal.
func (t *Toler) Reset(initVal float64) {
	t.recent = initVal
	t.nAdded = 0
	if t.RelTol > 0 {
		w := t.Window
		if w < 2 {
			w = 2
		}
		if cap(t.hist) < w {
			t.hist = make([]float64, w)
		}
		t.hist = t.hist[:w]
		t.hist[0] = initVal
		t.next = 1
	}
}

// Add records the value of the quantity after an iteration.
func (t *Toler) Add(v float64) {
	t.recent = v
	t.nAdded++
	if t.RelTol > 0 {
		t.hist[t.next] = v
		t.next++
		if t.next == len(t.hist) {
			t.next = 0
		}
	}
}

// AbsConverged reports whether the most recent value is below the
// absolute tolerance.
func (t *Toler) AbsConverged() bool {
	if math.IsNaN(t.AbsTol) {
		return false
	}
	return t.recent < t.AbsTol
}

// RelConverged reports whether the most recent value differs from the value
// added Window iterations ago by less than the relative tolerance. It never
// reports convergence before the window has been filled once.
func (t *Toler) RelConverged() bool {
	if t.RelTol <= 0 || t.nAdded < len(t.hist) {
		return false
	}
	// next points at the oldest entry in the ring.
	oldest := t.hist[t.next]
	return math.Abs(oldest-t.recent) < t.RelTol
}
