package orbital

import (
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// BatchResult is the per-body outcome of a batch run. A body whose element
// set is missing is marked Unavailable with a MissingElementsError instead of
// failing the whole batch; Err may also carry a non-fatal precision warning
// for an otherwise valid result.
type BatchResult struct {
	Body        string
	State       *StateVector // set by Evaluate batches
	Trajectory  Trajectory   // set by Sample batches
	Unavailable bool
	Err         error
}

// Batcher runs the engine independently for several named bodies. The engine
// is pure, so bodies are processed concurrently with no shared mutable state.
type Batcher struct {
	logger kitlog.Logger
}

// NewBatcher returns a batch adapter logging warnings to the provided go-kit
// logger. A nil logger falls back to logfmt on stdout.
func NewBatcher(logger kitlog.Logger) Batcher {
	if logger == nil {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	}
	return Batcher{kitlog.With(logger, "subsys", "batch")}
}

// Evaluate computes the state of every body in the map at the given epoch.
func (b Batcher) Evaluate(bodies map[string]*OrbitalElementSet, epoch time.Time) map[string]BatchResult {
	return b.run(bodies, func(name string, o *OrbitalElementSet) BatchResult {
		state, err := Evaluate(o, epoch)
		return BatchResult{Body: name, State: &state, Err: err}
	})
}

// Sample computes the trajectory of every body in the map over [start, end].
func (b Batcher) Sample(bodies map[string]*OrbitalElementSet, start, end time.Time, step time.Duration, now time.Time) map[string]BatchResult {
	return b.run(bodies, func(name string, o *OrbitalElementSet) BatchResult {
		traj, err := SampleTrajectory(o, start, end, step, now)
		traj.Body = name
		return BatchResult{Body: name, Trajectory: traj, Err: err}
	})
}

func (b Batcher) run(bodies map[string]*OrbitalElementSet, eval func(string, *OrbitalElementSet) BatchResult) map[string]BatchResult {
	rsltChan := make(chan BatchResult, len(bodies))
	for name, o := range bodies {
		if o == nil {
			b.logger.Log("level", "warning", "body", name, "err", "elements missing")
			rsltChan <- BatchResult{Body: name, Unavailable: true, Err: MissingElementsError{Body: name}}
			continue
		}
		go func(name string, o *OrbitalElementSet) {
			rslt := eval(name, o)
			if rslt.Err != nil {
				b.logger.Log("level", "warning", "body", name, "err", rslt.Err)
			}
			rsltChan <- rslt
		}(name, o)
	}
	results := make(map[string]BatchResult, len(bodies))
	for range bodies {
		rslt := <-rsltChan
		results[rslt.Body] = rslt
	}
	return results
}
