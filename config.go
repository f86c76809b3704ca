package orbital

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _dashconfig{}
)

// _dashconfig is a "hidden" struct, just use `dashConfig`
type _dashconfig struct {
	VSOP87    bool
	VSOP87Dir string
	outputDir string
}

// dashConfig returns the dashboard engine configuration. Only the ephemeris
// provider and the exporter read it; the engine itself takes every input as
// an explicit parameter.
func dashConfig() _dashconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("DASH_CONFIG")
	if confPath == "" {
		panic("environment variable `DASH_CONFIG` is missing or empty")
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}

	vsop87Enabled := viper.GetBool("VSOP87.enabled")
	vsop87Dir := viper.GetString("VSOP87.directory")
	outputDir := viper.GetString("general.output_path")

	cfgLoaded = true
	config = _dashconfig{VSOP87: vsop87Enabled, VSOP87Dir: vsop87Dir, outputDir: outputDir}
	return config
}
