package orbital

import "math"

const (
	// keplerTolerance is the default convergence criterion on |ΔH|.
	keplerTolerance = 1e-10
	// keplerMaxIterations caps the Newton-Raphson loop.
	keplerMaxIterations = 100
)

// solveHyperbolicKepler solves M = e·sinh(H) - H for the hyperbolic anomaly H
// via Newton-Raphson. M is signed and unbounded, e must be > 1 (guaranteed by
// OrbitalElementSet construction).
//
// On non-convergence the best estimate is returned together with a
// NonConvergenceError; callers treat it as a precision warning, not a failure.
func solveHyperbolicKepler(M, e, tol float64) (H float64, err error) {
	// Initial guess from Danby: grows like asinh(M/e) for large |M|.
	H = sign(M) * math.Log(2*math.Abs(M)/e+1.8)
	var ΔH float64
	for it := 0; it < keplerMaxIterations; it++ {
		ΔH = (e*math.Sinh(H) - H - M) / (e*math.Cosh(H) - 1)
		H -= ΔH
		if math.Abs(ΔH) < tol {
			return H, nil
		}
	}
	return H, NonConvergenceError{M: M, Iterations: keplerMaxIterations, Residual: math.Abs(ΔH)}
}

// trueAnomalyFromH converts the hyperbolic anomaly to the true anomaly ν via
// tan(ν/2) = sqrt((e+1)/(e-1))·tanh(H/2).
func trueAnomalyFromH(H, e float64) float64 {
	return 2 * math.Atan(math.Sqrt((e+1)/(e-1))*math.Tanh(H/2))
}

// radiusFromH returns the heliocentric distance r = a(1 - e·cosh H) in the
// units of a. With a < 0 and e > 1 this is positive and has its minimum q at
// H = 0.
func radiusFromH(H, a, e float64) float64 {
	return a * (1 - e*math.Cosh(H))
}
