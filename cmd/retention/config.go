package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/chart"
)

// Config holds the CLI configuration settings.
type Config struct {
	// Workbook is the path of the xlsx file holding the member data.
	Workbook string      `yaml:"workbook"`
	Chart    ChartConfig `yaml:"chart"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// ChartConfig holds chart rendering configuration.
type ChartConfig struct {
	TopN   int    `yaml:"top_n"`
	Output string `yaml:"output"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Workbook: "data/members.xlsx",
		Chart: ChartConfig{
			TopN:   chart.DefaultTopN,
			Output: "leaderboard.png",
		},
	}
}

// LoadConfig reads a yaml configuration file over the defaults. An
// empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
