package common

import (
	"time"

	"github.com/Jackyfirrest/newton-practice/write"
)

type Initer interface {
	Init()
}

type Resulter interface {
	Result()
}

// ObjectiveWrapper wraps the objective function supplied to a solver.
//
// If the function is an Initer it is initialized once at the start of the
// run. If it is a Statuser it can abort the run by returning a status other
// than Continue. If it is a Resulter it is notified when the run ends.
type ObjectiveWrapper struct {
	fun        interface{}
	initCalled bool
}

func (o *ObjectiveWrapper) Init(objectiveFunction interface{}) {
	if o.initCalled {
		return
	}
	o.initCalled = true
	o.fun = objectiveFunction

	initer, ok := objectiveFunction.(Initer)
	if ok {
		initer.Init()
	}
}

func (o *ObjectiveWrapper) Status() Status {
	statuser, isStatuser := o.fun.(Statuser)
	if isStatuser {
		return statuser.Status()
	}
	return Continue
}

func (o *ObjectiveWrapper) Result() {
	resulter, ok := o.fun.(Resulter)
	if ok {
		resulter.Result()
	}
}

func (o *ObjectiveWrapper) AppendWriteData(v []*write.Value) []*write.Value {
	dataWriter, ok := o.fun.(write.DataAdder)
	if ok {
		return dataWriter.AppendWriteData(v)
	}
	return v
}

// CommonSettings is a set of options available to all solvers
type CommonSettings struct {
	MaximumIterations          int           // Maximum number of Newton iterations that can occur
	MaximumFunctionEvaluations int           // Maximum number of objective evaluations that can occur
	MaximumRuntime             time.Duration // Maximum runtime that can elapse
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common
// structure. The iteration budget defaults to 100; negative budgets mean
// no limit.
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations:          100,
		MaximumFunctionEvaluations: -1,
		MaximumRuntime:             -1,
		WriteSettings:              write.DefaultWriteSettings(),
	}
}

// CommonResult is the part of a solver result shared by all solvers
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the solver
	FunctionEvaluations int           // Total number of objective evaluations taken by the solver
	Runtime             time.Duration // Total runtime elapsed during the run
	Status              Status        // How the solver ended
}

// Common provides routines for tracking the budgets in CommonSettings.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*write.Display
	*ObjectiveWrapper
}

// NewCommon creates a new Common structure and adds itself to the display
func NewCommon() *Common {
	c := &Common{
		Display:          write.NewDisplay(),
		ObjectiveWrapper: &ObjectiveWrapper{},
	}
	c.AddDataAdder(c, c.ObjectiveWrapper)
	return c
}

// Init initializes all of the values in Common at the start of a run
func (c *Common) Init(settings *CommonSettings, objectiveFunction interface{}) {
	c.iter = 0
	c.funEvals = 0
	c.startTime = time.Now()

	c.settings = settings

	c.Display.Init(c.settings.WriteSettings)
	c.ObjectiveWrapper.Init(objectiveFunction)
}

func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Note: These have names that are different because we want solvers
// to specifically implement all of them. If it has the name Status(), then
// a solver will implement by embedding Common

// Status checks if any of the budgets controlled by Common are exhausted.
// The iteration budget is checked before the next iteration runs, so a
// budget of zero returns MaximumIterations without the solver taking a step.
func (c *Common) Status() Status {
	status := c.ObjectiveWrapper.Status()
	if status != Continue {
		return status
	}

	if c.settings.MaximumIterations > -1 && c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	if c.settings.MaximumFunctionEvaluations > -1 && c.funEvals >= c.settings.MaximumFunctionEvaluations {
		return MaximumFunctionEvaluations
	}
	if c.settings.MaximumRuntime > -1 && time.Since(c.startTime) > c.settings.MaximumRuntime {
		return MaximumRuntime
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	c.ObjectiveWrapper.Result()
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration count, accumulating the number of function evaluations,
// and writing to the writers
func (c *Common) Iterate(nFunEvals int) {
	c.iter++
	c.funEvals += nFunEvals
	c.Display.Iterate()
}

// Iterations returns the number of iterations taken so far
func (c *Common) Iterations() int {
	return c.iter
}
