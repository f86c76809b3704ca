package orbital

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// ExportConfig configures trajectory exports for the dashboard.
type ExportConfig struct {
	Filename  string
	CSV       bool
	JSON      bool
	Timestamp bool // append a generation timestamp to the file names
}

// IsUseless returns whether this configuration will output anything.
func (c ExportConfig) IsUseless() bool {
	return !c.CSV && !c.JSON
}

// TrajectoryRecord is one exported sample.
type TrajectoryRecord struct {
	Epoch    string  `json:"epoch"`
	JD       float64 `json:"jd"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	R        float64 `json:"r"`
	Speed    float64 `json:"speed"`
	Observed bool    `json:"observed"`
}

// TrajectoryDocument is the JSON shape the dashboard renderer consumes: the
// observed and projected segments are separated so they can be styled
// differently (solid vs. dashed).
type TrajectoryDocument struct {
	Body      string             `json:"body"`
	Generated string             `json:"generated"`
	Observed  []TrajectoryRecord `json:"observed"`
	Projected []TrajectoryRecord `json:"projected"`
}

func recordFromPoint(pt StatePoint) TrajectoryRecord {
	return TrajectoryRecord{
		Epoch:    pt.Epoch.Format(time.RFC3339),
		JD:       julian.TimeToJD(pt.Epoch),
		X:        pt.R[0],
		Y:        pt.R[1],
		Z:        pt.R[2],
		R:        pt.RNorm(),
		Speed:    pt.Speed,
		Observed: pt.IsObserved,
	}
}

// createCSVFile returns a file which requires a defer close statement!
func createCSVFile(conf ExportConfig) *os.File {
	cfg := dashConfig()
	filename := fmt.Sprintf("%s/traj-%s.csv", cfg.outputDir, conf.Filename)
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/traj-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", cfg.outputDir, conf.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(`# Records are <epoch> <jd> <x> <y> <z> <r> <speed> <observed>
#   Position in AU, heliocentric ecliptic frame
#   Speed in km/s, heliocentric
epoch,jd,x,y,z,r,speed,observed
`)
	return f
}

// StreamTrajectory streams the points of the channel to the configured files.
// It is meant to run in its own goroutine, feeding from the sampler, and
// returns once the channel is closed.
func StreamTrajectory(conf ExportConfig, body string, ptChan <-chan StatePoint) {
	if conf.IsUseless() {
		for range ptChan {
		}
		return
	}
	var fCSV *os.File
	if conf.CSV {
		fCSV = createCSVFile(conf)
		defer fCSV.Close()
	}
	doc := TrajectoryDocument{Body: body, Generated: time.Now().UTC().Format(time.RFC3339)}
	for pt := range ptChan {
		rec := recordFromPoint(pt)
		if fCSV != nil {
			fCSV.WriteString(fmt.Sprintf("%s,%f,%.8f,%.8f,%.8f,%.8f,%.4f,%v\n", rec.Epoch, rec.JD, rec.X, rec.Y, rec.Z, rec.R, rec.Speed, rec.Observed))
		}
		if conf.JSON {
			if pt.IsObserved {
				doc.Observed = append(doc.Observed, rec)
			} else {
				doc.Projected = append(doc.Projected, rec)
			}
		}
	}
	if conf.JSON {
		fJSON, err := os.Create(fmt.Sprintf("%s/traj-%s.json", dashConfig().outputDir, conf.Filename))
		if err != nil {
			panic(err)
		}
		defer fJSON.Close()
		marsh, err := json.Marshal(doc)
		if err != nil {
			panic(err)
		}
		fJSON.Write(marsh)
	}
}

// ExportTrajectory writes an already sampled trajectory through
// StreamTrajectory.
func ExportTrajectory(conf ExportConfig, traj Trajectory) {
	ptChan := make(chan StatePoint, 100)
	done := make(chan struct{})
	go func() {
		StreamTrajectory(conf, traj.Body, ptChan)
		close(done)
	}()
	for _, pt := range traj.Points {
		ptChan <- pt
	}
	close(ptChan)
	<-done
}
