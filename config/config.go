// Package config provide process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config represent activetarget process configuration.
type Config struct {
	// Variant selects the detector geometry to build.
	Variant string `env:"ACTIVETARGET_VARIANT" envDefault:"carbonStack"`

	// Events is the number of synthetic events driven by the local runner.
	Events int `env:"ACTIVETARGET_EVENTS" envDefault:"10"`

	// OutputFile receives the diagnostics histograms at run end.
	OutputFile string `env:"ACTIVETARGET_OUTPUT" envDefault:"muon_output.json"`

	// VariantsFile optionally overrides geometry variant parameters (YAML).
	VariantsFile string `env:"ACTIVETARGET_VARIANTS_FILE"`

	// PlotDir receives one plot file per histogram from the plot command.
	PlotDir string `env:"ACTIVETARGET_PLOT_DIR" envDefault:"."`

	LoggingLevel string `env:"ACTIVETARGET_LOG_LEVEL" envDefault:"info"`
}

// Read config from the environment.
// It call os.Exit, if config is incorrect.
func Read() Config {
	config := Config{}

	if err := env.Parse(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid environment: %s\n", err.Error())
		os.Exit(1)
	}

	config.LoggingLevel = strings.ToLower(config.LoggingLevel)

	invalidConfig := false
	if !validateLoggingLevel(config.LoggingLevel) {
		fmt.Fprintf(os.Stderr, "Invalid loggingLevel: \"%s\"\n", config.LoggingLevel)
		invalidConfig = true
	}

	if config.Events < 0 {
		fmt.Fprintf(os.Stderr, "Invalid events count: %d\n", config.Events)
		invalidConfig = true
	}

	if config.OutputFile == "" {
		fmt.Fprintf(os.Stderr, "Invalid output file: \"%s\"\n", config.OutputFile)
		invalidConfig = true
	}

	if invalidConfig {
		os.Exit(1)
	}

	return config
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
