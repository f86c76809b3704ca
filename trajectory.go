package orbital

import (
	"errors"
	"time"
)

// SampleTrajectory evaluates the orbit at fixed steps over [start, end] and
// splits the samples into observed (epoch ≤ now) and projected (epoch > now)
// segments. The sample falling exactly on now belongs to the observed
// segment; no epoch ever appears in both.
//
// Sampling is fully deterministic: now is an explicit parameter, the engine
// never reads the ambient clock. A non-fatal NonConvergenceError from any
// sample is reported once alongside the (complete) trajectory.
func SampleTrajectory(o *OrbitalElementSet, start, end time.Time, step time.Duration, now time.Time) (Trajectory, error) {
	return SampleTrajectoryWithOverride(o, start, end, step, now, nil)
}

// SampleTrajectoryWithOverride is SampleTrajectory with the authoritative
// override seam of EvaluateWithOverride: the override, when non-nil, replaces
// the computed value at the sample stamped exactly now.
func SampleTrajectoryWithOverride(o *OrbitalElementSet, start, end time.Time, step time.Duration, now time.Time, override *StateVector) (Trajectory, error) {
	if step <= 0 {
		return Trajectory{}, errors.New("sampling step must be positive")
	}
	if end.Before(start) {
		return Trajectory{}, errors.New("trajectory window ends before it starts")
	}
	var warn error
	points := make([]StatePoint, 0, int(end.Sub(start)/step)+1)
	for epoch := start.UTC(); !epoch.After(end); epoch = epoch.Add(step) {
		var state StateVector
		var err error
		if override != nil && epoch.Equal(now) {
			state, err = EvaluateWithOverride(o, epoch, override)
		} else {
			state, err = Evaluate(o, epoch)
		}
		if err != nil && warn == nil {
			warn = err
		}
		points = append(points, StatePoint{StateVector: state, IsObserved: !epoch.After(now)})
	}
	return Trajectory{Points: points}, warn
}
