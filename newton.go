package xirr

import "math"

// solveNewton runs the Newton-Raphson iteration against the schedule,
// starting from guess. Steps that would leave the search domain are clamped
// to minRate. A zero derivative stops the iteration early: the flat region
// gives Newton no direction, and the bracketing solver is the mitigation.
func solveNewton(s *schedule, guess float64) MethodResult {
	rate := guess
	for iter := 1; iter <= maxIterations; iter++ {
		value := s.npv(rate)
		if math.Abs(value) < tolerance {
			return MethodResult{
				Method:     NewtonRaphson,
				Rate:       rate,
				Iterations: iter,
				Converged:  true,
				Residual:   value,
			}
		}
		deriv := s.derivative(rate)
		if deriv == 0 {
			return MethodResult{
				Method:     NewtonRaphson,
				Rate:       rate,
				Iterations: iter,
				Residual:   value,
			}
		}
		rate -= value / deriv
		if rate <= minRate {
			rate = minRate
		}
	}
	return MethodResult{
		Method:     NewtonRaphson,
		Rate:       rate,
		Iterations: maxIterations,
		Residual:   s.npv(rate),
	}
}
