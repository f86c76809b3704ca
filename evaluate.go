package orbital

import (
	"math"
	"time"
)

const (
	// radiusSlack is the tolerated amount by which numerical error may push
	// the computed radius below the perihelion distance, in AU.
	radiusSlack = 1e-6
	// keplerTightTolerance is used for the re-solve near perihelion.
	keplerTightTolerance = 1e-14
	// EarthMeanOrbitalSpeed is Earth's mean heliocentric speed in km/s.
	EarthMeanOrbitalSpeed = 29.78
	// geoBlendAngle is the fixed angle of the geocentric speed blend, in degrees.
	geoBlendAngle = 60.0
)

// Evaluate returns the heliocentric state of the body at the provided epoch
// by solving the hyperbolic Kepler equation and applying vis-viva.
//
// A returned NonConvergenceError is a precision warning: the state vector is
// the best estimate and remains usable.
func Evaluate(o *OrbitalElementSet, epoch time.Time) (StateVector, error) {
	M := o.MeanAnomalyM(epoch)
	H, warn := solveHyperbolicKepler(M, o.e, keplerTolerance)
	a := o.SemiMajorAxisA()
	r := radiusFromH(H, a, o.e)
	if r < o.q-radiusSlack {
		// Numerical error near H≈0 can push r below perihelion. Re-solve tighter.
		H, warn = solveHyperbolicKepler(M, o.e, keplerTightTolerance)
		r = radiusFromH(H, a, o.e)
	}
	if r < o.q {
		r = o.q
	}
	ν := o.trueAnomalyν(H)
	sinν, cosν := math.Sincos(ν)
	R := PQW2Ecliptic(o.i, o.ω, o.Ω, []float64{r * cosν, r * sinν, 0})

	// Vis-viva, in km and km/s.
	v := math.Sqrt(SunGM * (2/(r*AU) - 1/(a*AU)))

	return StateVector{Epoch: epoch.UTC(), R: [3]float64{R[0], R[1], R[2]}, Speed: v}, warn
}

// trueAnomalyν derives the true anomaly of this orbit from the hyperbolic
// anomaly.
func (o OrbitalElementSet) trueAnomalyν(H float64) float64 {
	return trueAnomalyFromH(H, o.e)
}

// EvaluateWithOverride is Evaluate with an explicit authoritative override
// seam: when override is non-nil and stamped with the requested epoch, its
// measured value replaces the computed one. Fetching the override (e.g. from
// a live feed) is entirely the caller's responsibility.
func EvaluateWithOverride(o *OrbitalElementSet, epoch time.Time, override *StateVector) (StateVector, error) {
	if override != nil && override.Epoch.Equal(epoch) {
		return *override, nil
	}
	return Evaluate(o, epoch)
}

// GeocentricSpeedApprox blends a heliocentric speed with Earth's mean orbital
// speed via a fixed-angle law of cosines.
//
// NOTE: This is an approximation only, kept for continuity with the numbers
// the dashboard has always displayed. It is *not* the exact two-body relative
// velocity vector subtraction.
func GeocentricSpeedApprox(helioSpeed float64) float64 {
	cosθ := math.Cos(Deg2rad(geoBlendAngle))
	return math.Sqrt(helioSpeed*helioSpeed + EarthMeanOrbitalSpeed*EarthMeanOrbitalSpeed - 2*helioSpeed*EarthMeanOrbitalSpeed*cosθ)
}

// GeocentricDistance returns the body-Earth distance in AU at the provided
// epoch, using the supplied Earth ephemeris for the Earth position.
func GeocentricDistance(o *OrbitalElementSet, epoch time.Time, eph EarthEphemeris) (float64, error) {
	state, warn := Evaluate(o, epoch)
	earthR, err := eph.HelioPosition(epoch)
	if err != nil {
		return 0, err
	}
	Δ := []float64{state.R[0] - earthR[0], state.R[1] - earthR[1], state.R[2] - earthR[2]}
	return norm(Δ), warn
}
