package xirr

import "math"

// Default search bracket for the bracketing solver, and the narrower rescue
// bracket tried once when the default endpoints do not straddle a root.
// The rescue is a heuristic, not a guarantee: if it fails too the solver
// proceeds anyway and may simply not converge.
const (
	bracketLo = minRate
	bracketHi = 10.0
	rescueLo  = -0.5
	rescueHi  = 5.0
)

// solveBracketing finds a root of the schedule's NPV with a Brent-style
// hybrid of bisection, secant, and inverse quadratic interpolation. It needs
// no derivative and, once a sign-changing bracket is found, always converges.
//
// The loop maintains three points: a (previous estimate), b (current best
// estimate) and c (other bracket endpoint), keeping |f(b)| <= |f(c)|.
func solveBracketing(s *schedule) MethodResult {
	a, b := bracketLo, bracketHi
	fa, fb := s.npv(a), s.npv(b)
	if sameSign(fa, fb) {
		a, b = rescueLo, rescueHi
		fa, fb = s.npv(a), s.npv(b)
	}

	c, fc := a, fa
	d := b - a // last step taken
	e := d     // step before last, used to judge interpolation quality

	for iter := 1; iter <= maxIterations; iter++ {
		if sameSign(fb, fc) {
			// b and c no longer bracket the root: fall back to [a, b].
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			// keep b the best estimate
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*tolerance*math.Abs(b) + tolerance
		m := (c - b) / 2
		if math.Abs(m) <= tol || math.Abs(fb) < tolerance {
			return MethodResult{
				Method:     Bracketing,
				Rate:       b,
				Iterations: iter,
				Converged:  true,
				Residual:   fb,
			}
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Previous steps were too small or not improving: bisect.
			d, e = m, m
		} else {
			var p, q float64
			t := fb / fa
			if a == c {
				// Only two distinct values: secant step.
				p = 2 * m * t
				q = 1 - t
			} else {
				// Inverse quadratic interpolation through (a,fa) (b,fb) (c,fc).
				u := fa / fc
				r := fb / fc
				p = t * (2*m*u*(u-r) - (b-a)*(r-1))
				q = (u - 1) * (r - 1) * (t - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			// Accept the interpolated step only if it stays inside the
			// bracket and shrinks faster than the previous steps did.
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d, e = m, m
			}
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, m)
		}
		fb = s.npv(b)
	}

	return MethodResult{
		Method:     Bracketing,
		Rate:       b,
		Iterations: maxIterations,
		Residual:   fb,
	}
}

func sameSign(x, y float64) bool {
	return (x > 0 && y > 0) || (x < 0 && y < 0)
}
