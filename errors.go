package orbital

import "fmt"

// InvalidOrbitError is returned when an element set does not describe a
// hyperbolic heliocentric orbit. It is the only fatal error of this engine.
type InvalidOrbitError struct {
	Reason string
	E, Q   float64
}

func (e InvalidOrbitError) Error() string {
	return fmt.Sprintf("invalid orbit (e=%g q=%g AU): %s", e.E, e.Q, e.Reason)
}

// NonConvergenceError reports that the hyperbolic Kepler solve hit its
// iteration budget. The accompanying value is the best estimate and remains
// usable: the dashboard tolerates minor drift better than missing data.
type NonConvergenceError struct {
	M          float64 // mean anomaly of the failed solve (radians)
	Iterations int
	Residual   float64 // |ΔH| at the last iteration
}

func (e NonConvergenceError) Error() string {
	return fmt.Sprintf("hyperbolic Kepler solve did not converge after %d iterations (M=%g, residual=%g)", e.Iterations, e.M, e.Residual)
}

// MissingElementsError marks a body requested in a batch for which no element
// set is known. Batches degrade to partial results instead of failing.
type MissingElementsError struct {
	Body string
}

func (e MissingElementsError) Error() string {
	return fmt.Sprintf("no orbital elements for body %q", e.Body)
}
