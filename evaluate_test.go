package orbital

import (
	"fmt"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestEvaluateAtPerihelion(t *testing.T) {
	o := ThreeIAtlas.Elements
	state, err := Evaluate(o, o.PerihelionEpoch())
	if err != nil {
		t.Fatalf("unexpected warning: %s", err)
	}
	if !floats.EqualWithinAbs(state.RNorm(), o.PerihelionDistance(), 1e-4) {
		t.Fatalf("r(T)=%f, expected q=%f", state.RNorm(), o.PerihelionDistance())
	}
	// Perihelion passage speed of 3I/ATLAS is about 68 km/s.
	if !floats.EqualWithinAbs(state.Speed, 68, 1) {
		t.Fatalf("v(T)=%f km/s", state.Speed)
	}
}

func TestEvaluateBeforePerihelion(t *testing.T) {
	o := ThreeIAtlas.Elements
	epoch := o.PerihelionEpoch().Add(-90 * 24 * time.Hour)
	state, err := Evaluate(o, epoch)
	if err != nil {
		t.Fatalf("unexpected warning: %s", err)
	}
	if state.RNorm() <= o.PerihelionDistance() {
		t.Fatalf("r=%f not above q=%f", state.RNorm(), o.PerihelionDistance())
	}
	if state.Speed >= 68 {
		t.Fatalf("v=%f km/s should be below the perihelion speed", state.Speed)
	}
	if !floats.EqualWithinAbs(state.RNorm(), 3.50, 0.02) {
		t.Fatalf("r(T-90d)=%f AU", state.RNorm())
	}
}

func TestRadiusNeverBelowPerihelion(t *testing.T) {
	for _, body := range []BodyDescriptor{ThreeIAtlas, Oumuamua, Borisov} {
		o := body.Elements
		for days := -500.0; days <= 500; days += 2.5 {
			epoch := o.PerihelionEpoch().Add(time.Duration(days * 24 * float64(time.Hour)))
			state, err := Evaluate(o, epoch)
			if err != nil {
				t.Fatalf("%s @ %+.1fd: %s", body.Name, days, err)
			}
			if state.RNorm() < o.PerihelionDistance()-1e-6 {
				t.Fatalf("%s @ %+.1fd: r=%.9f below q=%.9f", body.Name, days, state.RNorm(), o.PerihelionDistance())
			}
		}
	}
}

func TestSpeedDecaysAwayFromPerihelion(t *testing.T) {
	o := ThreeIAtlas.Elements
	for _, dir := range []float64{-1, 1} {
		prev := -1.0
		for days := 240.0; days >= 0; days -= 30 {
			epoch := o.PerihelionEpoch().Add(time.Duration(dir * days * 24 * float64(time.Hour)))
			state, err := Evaluate(o, epoch)
			if err != nil {
				t.Fatal(err)
			}
			if state.Speed <= prev {
				t.Fatalf("speed not increasing toward perihelion: v(%+.0fd)=%f <= %f", dir*days, state.Speed, prev)
			}
			prev = state.Speed
		}
	}
}

func TestEvaluateWithOverride(t *testing.T) {
	o := ThreeIAtlas.Elements
	now := o.PerihelionEpoch().Add(24 * time.Hour)
	measured := StateVector{Epoch: now, R: [3]float64{1, 2, 3}, Speed: 42}

	state, err := EvaluateWithOverride(o, now, &measured)
	if err != nil {
		t.Fatal(err)
	}
	if state.Speed != 42 || state.R != measured.R {
		t.Fatal("override not applied at its own epoch")
	}
	// The override is keyed to its epoch: any other epoch stays computed.
	other, err := EvaluateWithOverride(o, now.Add(time.Hour), &measured)
	if err != nil {
		t.Fatal(err)
	}
	if other.Speed == 42 {
		t.Fatal("override leaked to a different epoch")
	}
	// And a nil override is simply a pure evaluation.
	pure, err := EvaluateWithOverride(o, now, nil)
	if err != nil {
		t.Fatal(err)
	}
	computed, _ := Evaluate(o, now)
	if pure != computed {
		t.Fatal("nil override altered the computation")
	}
}

func TestGeocentricSpeedApprox(t *testing.T) {
	// Heliocentric 68 km/s blended with Earth's 29.78 km/s at the fixed angle.
	v := GeocentricSpeedApprox(68)
	if v <= 0 || v >= 68+EarthMeanOrbitalSpeed {
		t.Fatalf("blend out of range: %f", v)
	}
	// Law of cosines at 60 degrees: v² = a² + b² - ab.
	exp := 68.0*68.0 + EarthMeanOrbitalSpeed*EarthMeanOrbitalSpeed - 68.0*EarthMeanOrbitalSpeed
	if !floats.EqualWithinAbs(v*v, exp, 1e-9) {
		t.Fatalf("v²=%f exp=%f", v*v, exp)
	}
}

// stubEphemeris pins Earth to a fixed position, or fails on demand.
type stubEphemeris struct {
	r   [3]float64
	err error
}

func (s stubEphemeris) HelioPosition(dt time.Time) ([3]float64, error) {
	return s.r, s.err
}

func TestGeocentricDistance(t *testing.T) {
	o := ThreeIAtlas.Elements
	epoch := o.PerihelionEpoch()
	state, _ := Evaluate(o, epoch)

	// Earth pinned to the Sun: the geocentric distance degenerates to the
	// heliocentric one.
	d, err := GeocentricDistance(o, epoch, stubEphemeris{})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(d, state.RNorm(), 1e-12) {
		t.Fatalf("d=%f, expected r=%f", d, state.RNorm())
	}
	// Earth pinned onto the body: distance must vanish.
	d, err = GeocentricDistance(o, epoch, stubEphemeris{r: state.R})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(d, 0, 1e-12) {
		t.Fatalf("d=%f, expected 0", d)
	}
	// A failing provider surfaces its error.
	boom := fmt.Errorf("vsop87 data missing")
	if _, err = GeocentricDistance(o, epoch, stubEphemeris{err: boom}); err == nil {
		t.Fatal("provider error swallowed")
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	o := Borisov.Elements
	epoch := time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC)
	s1, _ := Evaluate(o, epoch)
	s2, _ := Evaluate(o, epoch)
	if s1 != s2 {
		t.Fatal("evaluation is not deterministic")
	}
}
