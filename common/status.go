package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of Statusers
// and returns the first result that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[LocChangeTol] = "LocChangeTol"
	statusStrings[GradAbsTol] = "GradAbsTol"

	statusStrings[UserFunctionError] = "ErrorInUserFunction"
	statusStrings[OptimizerError] = "OptimizerError"
	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
	statusStrings[MaximumRuntime] = "MaximumRuntimeElapsed"
	statusStrings[SingularDerivative] = "SingularDerivative"
}

// Status is a type for expressing if the solver has finished or not.
// Zero signifies no convergence or error so the solver should continue.
// Positive values indicate successful convergence,
// negative values express failure in some way.
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Converged returns true if the status represents successful convergence
// rather than an error or an exhausted budget
func (s Status) Converged() bool {
	return s > 0
}

const (
	Continue Status = iota
	// LocChangeTol means the change in location between successive iterates
	// fell below the tolerance
	LocChangeTol
	// GradAbsTol means the derivative estimate fell below the absolute
	// tolerance, so the current iterate is already stationary to within
	// the estimator's accuracy
	GradAbsTol
)

const (
	_                        = iota
	UserFunctionError Status = -1 * iota
	OptimizerError
	MaximumIterations
	MaximumFunctionEvaluations
	MaximumRuntime
	// SingularDerivative means the Newton step could not be computed because
	// the second derivative estimate was zero (scalar case) or the Hessian
	// approximation was singular (vector case)
	SingularDerivative
)

var lastStatus Status = 256
