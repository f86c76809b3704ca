package orbital

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/meeus/planetposition"
)

// EarthEphemeris provides Earth's heliocentric ecliptic position in AU. It is
// the seam toward the external elliptical-orbit provider: the hyperbolic
// engine itself never depends on it, only the geocentric helpers do.
type EarthEphemeris interface {
	HelioPosition(dt time.Time) ([3]float64, error)
}

// VSOP87Earth is an EarthEphemeris backed by the VSOP87 theory, loading the
// data file from the configured VSOP87 directory on first use.
type VSOP87Earth struct {
	mu sync.Mutex
	pp *planetposition.V87Planet
}

// NewVSOP87Earth returns a lazy-loading VSOP87 Earth ephemeris.
func NewVSOP87Earth() *VSOP87Earth {
	return &VSOP87Earth{}
}

// HelioPosition implements EarthEphemeris.
func (v *VSOP87Earth) HelioPosition(dt time.Time) ([3]float64, error) {
	v.mu.Lock()
	if v.pp == nil {
		conf := dashConfig()
		if !conf.VSOP87 {
			v.mu.Unlock()
			return [3]float64{}, fmt.Errorf("VSOP87 is disabled in the configuration")
		}
		planet, err := planetposition.LoadPlanetPath(planetposition.Earth, conf.VSOP87Dir)
		if err != nil {
			v.mu.Unlock()
			return [3]float64{}, fmt.Errorf("could not load VSOP87 Earth data: %s", err)
		}
		v.pp = planet
	}
	pp := v.pp
	v.mu.Unlock()

	l, b, r := pp.Position2000(julian.TimeToJD(dt.UTC()))
	sB, cB := math.Sincos(b.Rad())
	sL, cL := math.Sincos(l.Rad())
	return [3]float64{r * cB * cL, r * cB * sL, r * sB}, nil
}
