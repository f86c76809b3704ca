package main

import (
	"flag"
	"log"
	"strings"
	"time"

	orbital "github.com/hook-365/3idashboard-sub002"
	"github.com/soniakeys/meeus/julian"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and samples the bodies.

const (
	defaultScenario = "~~unset~~"
	dateFormat      = "2006-01-02 15:04:05"
)

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "trajectory scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read window parameters
	startDT := confReadJDEorTime("window.start")
	endDT := confReadJDEorTime("window.end")
	step := viper.GetDuration("window.step")
	if step == 0 {
		step = 24 * time.Hour
	}
	// An explicit `now` keeps runs reproducible; it defaults to wall clock
	// only here, at the outermost caller.
	nowDT := confReadJDEorTime("window.now")
	if nowDT.IsZero() {
		nowDT = time.Now().UTC()
	}
	if verbose {
		log.Printf("[conf] window: %s -> %s step %s now %s\n", startDT.Format(dateFormat), endDT.Format(dateFormat), step, nowDT.Format(dateFormat))
	}

	// Read bodies
	names := viper.GetStringSlice("bodies.names")
	if len(names) == 0 {
		log.Fatal("no bodies listed in scenario")
	}
	bodies := make(map[string]*orbital.OrbitalElementSet)
	for _, name := range names {
		body, err := orbital.BodyFromString(name)
		if err != nil {
			log.Printf("[warning] %s, marking unavailable", err)
			bodies[name] = nil
			continue
		}
		bodies[body.Name] = body.Elements
	}

	batcher := orbital.NewBatcher(nil)
	results := batcher.Sample(bodies, startDT, endDT, step, nowDT)
	for name, rslt := range results {
		if rslt.Unavailable {
			log.Printf("[warning] %s: unavailable (%s)", name, rslt.Err)
			continue
		}
		if rslt.Err != nil {
			log.Printf("[warning] %s: %s", name, rslt.Err)
		}
		conf := orbital.ExportConfig{Filename: sanitize(name), CSV: viper.GetBool("export.csv"), JSON: viper.GetBool("export.json"), Timestamp: viper.GetBool("export.timestamp")}
		if !conf.IsUseless() {
			orbital.ExportTrajectory(conf, rslt.Trajectory)
		}
		obs, proj := len(rslt.Trajectory.Observed()), len(rslt.Trajectory.Projected())
		log.Printf("[info] %s: %d points (%d observed, %d projected)", name, obs+proj, obs, proj)
	}
}

// confReadJDEorTime reads a time from the scenario either as a Julian date or
// as a timestamp.
func confReadJDEorTime(key string) (dt time.Time) {
	jde := viper.GetFloat64(key)
	if jde == 0 {
		dt = viper.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return
}

func sanitize(name string) string {
	name = strings.Replace(name, "/", "-", -1)
	return strings.Replace(name, "'", "", -1)
}
