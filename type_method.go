package xirr

// Method identifies which root-finding algorithm produced a result.
type Method int

const (
	NewtonRaphson Method = iota
	Bracketing
)

func (m Method) String() string {
	switch m {
	case NewtonRaphson:
		return "newton-raphson"
	case Bracketing:
		return "bracketing"
	default:
		return "unknown"
	}
}

// MethodResult is the outcome of one solver invocation. It is produced fresh
// on every call and never mutated after return.
//
// Non-convergence is not an error: the result still carries the best rate
// found and its residual, and the reconciler judges quality by the residual
// magnitude regardless of the Converged flag.
type MethodResult struct {
	Method     Method
	Rate       float64
	Iterations int // iterations actually used, >= 1
	Converged  bool
	Residual   float64 // NPV evaluated at Rate
}

// Shared solver policy. These are process-wide constants fixed at startup.
const (
	// DefaultGuess is the initial rate handed to Newton-Raphson: 10%.
	DefaultGuess = 0.10
	// maxIterations caps both solvers; it is the de facto deadline of the core.
	maxIterations = 100
	// tolerance is the absolute NPV magnitude treated as zero.
	tolerance = 1e-6
	// minRate is the lower bound of the search domain. The power term of the
	// NPV is singular at rate = -1, so no solver ever evaluates at or below it.
	minRate = -0.99
)
