package orbital

import (
	"fmt"
	"time"
)

// StateVector is the instantaneous output of the evaluator: heliocentric
// ecliptic position in AU and heliocentric speed in km/s.
type StateVector struct {
	Epoch time.Time
	R     [3]float64 // AU, x toward the reference equinox, z toward the north ecliptic pole
	Speed float64    // km/s
}

// RNorm returns the heliocentric distance in AU.
func (s StateVector) RNorm() float64 {
	return norm(s.R[:])
}

// String implements the stringer interface.
func (s StateVector) String() string {
	return fmt.Sprintf("%s r=[%.6f %.6f %.6f] AU v=%.3f km/s", s.Epoch.Format(time.RFC3339), s.R[0], s.R[1], s.R[2], s.Speed)
}

// StatePoint is one sample of a trajectory. IsObserved tells the renderer
// whether the sample lies on the observed (solid) or projected (dashed)
// segment.
type StatePoint struct {
	StateVector
	IsObserved bool
}

// Trajectory is an ordered sequence of StatePoints for one body over a
// window: strictly increasing epochs, no duplicates, and a single
// observed/projected split point.
type Trajectory struct {
	Body   string
	Points []StatePoint
}

// SplitIndex returns the index of the first projected point, which equals
// len(Points) when every sample is observed.
func (t Trajectory) SplitIndex() int {
	for i, pt := range t.Points {
		if !pt.IsObserved {
			return i
		}
	}
	return len(t.Points)
}

// Observed returns the observed (past) segment.
func (t Trajectory) Observed() []StatePoint {
	return t.Points[:t.SplitIndex()]
}

// Projected returns the projected (future) segment.
func (t Trajectory) Projected() []StatePoint {
	return t.Points[t.SplitIndex():]
}

// WellFormed checks the trajectory invariants: epochs strictly increase and
// no projected point precedes an observed one.
func (t Trajectory) WellFormed() error {
	for i := 1; i < len(t.Points); i++ {
		if !t.Points[i].Epoch.After(t.Points[i-1].Epoch) {
			return fmt.Errorf("epochs not strictly increasing at index %d (%s then %s)", i, t.Points[i-1].Epoch, t.Points[i].Epoch)
		}
		if !t.Points[i-1].IsObserved && t.Points[i].IsObserved {
			return fmt.Errorf("observed point at index %d follows a projected one", i)
		}
	}
	return nil
}
