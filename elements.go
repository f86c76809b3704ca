package orbital

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// SunGM is the heliocentric gravitational parameter μ☉ in km³/s².
	SunGM = 1.32712440017987e11
	// gaussK is the Gaussian gravitational constant k, in AU^(3/2)/day.
	gaussK = 0.01720209895
	// sunGMAU is μ☉ expressed in AU³/day² (k²).
	sunGMAU = gaussK * gaussK
)

// OrbitalElementSet defines a hyperbolic heliocentric orbit via its classical
// elements. It is immutable: all fields are set at construction and validated
// there, never at use time. Angles are stored in radians.
type OrbitalElementSet struct {
	e, q, i, ω, Ω float64
	T             time.Time
}

// NewOrbitalElementSet returns a validated element set.
// WARNING: Angles must be in degrees not radian. q is in AU, T in UTC.
// Only unbound orbits are accepted: e ≤ 1 (including the parabolic e = 1
// case) and q ≤ 0 are rejected with an InvalidOrbitError.
func NewOrbitalElementSet(e, q, i, ω, Ω float64, T time.Time) (*OrbitalElementSet, error) {
	if math.IsNaN(e) || math.IsNaN(q) {
		return nil, InvalidOrbitError{Reason: "eccentricity or perihelion distance is NaN", E: e, Q: q}
	}
	if e == 1 {
		return nil, InvalidOrbitError{Reason: "parabolic orbits are not supported", E: e, Q: q}
	}
	if e < 1 {
		return nil, InvalidOrbitError{Reason: "orbit is bound (elliptical), this engine is hyperbolic only", E: e, Q: q}
	}
	if q <= 0 {
		return nil, InvalidOrbitError{Reason: "perihelion distance must be positive", E: e, Q: q}
	}
	return &OrbitalElementSet{e, q, Deg2rad(i), Deg2rad(ω), Deg2rad(Ω), T.UTC()}, nil
}

// Eccentricity returns e.
func (o OrbitalElementSet) Eccentricity() float64 { return o.e }

// PerihelionDistance returns q in AU.
func (o OrbitalElementSet) PerihelionDistance() float64 { return o.q }

// PerihelionEpoch returns T in UTC.
func (o OrbitalElementSet) PerihelionEpoch() time.Time { return o.T }

// Elements returns the full element set, angles in radians.
func (o OrbitalElementSet) Elements() (e, q, i, ω, Ω float64, T time.Time) {
	return o.e, o.q, o.i, o.ω, o.Ω, o.T
}

// SemiMajorAxisA returns a = q/(1-e) in AU. It is negative for all valid
// (hyperbolic) element sets.
func (o OrbitalElementSet) SemiMajorAxisA() float64 {
	return o.q / (1 - o.e)
}

// MeanMotionN returns the hyperbolic mean motion n = sqrt(μ☉/|a|³) in
// radians per day.
func (o OrbitalElementSet) MeanMotionN() float64 {
	a := o.SemiMajorAxisA()
	return math.Sqrt(sunGMAU / math.Abs(a*a*a))
}

// MeanAnomalyM returns the mean anomaly at the provided epoch, in radians.
// It is signed and unbounded: negative before perihelion, positive after.
func (o OrbitalElementSet) MeanAnomalyM(dt time.Time) float64 {
	return o.MeanMotionN() * o.DaysSincePerihelion(dt)
}

// DaysSincePerihelion returns the signed number of days between the provided
// epoch and the perihelion passage T, computed via Julian dates.
func (o OrbitalElementSet) DaysSincePerihelion(dt time.Time) float64 {
	return julian.TimeToJD(dt.UTC()) - julian.TimeToJD(o.T)
}

// VInf returns the hyperbolic excess speed v∞ = sqrt(μ☉/|a|) in km/s.
func (o OrbitalElementSet) VInf() float64 {
	return math.Sqrt(SunGM / (math.Abs(o.SemiMajorAxisA()) * AU))
}

// String implements the stringer interface.
func (o OrbitalElementSet) String() string {
	return fmt.Sprintf("e=%.4f q=%.4f i=%.3f Ω=%.3f ω=%.3f T=%s", o.e, o.q, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω), o.T.Format("2006-01-02 15:04:05"))
}
