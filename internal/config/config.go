// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/hypotheca/mortgage-forecast/pkg/constants"
	"github.com/hypotheca/mortgage-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the
// output date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for mortgage-forecast.
type Configuration struct {
	StartDate string `yaml:"startDate,omitempty"` // optional YYYY-MM label for the first month
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario holds the mortgage and property parameters for one what-if case.
type Scenario struct {
	Name     string
	Active   bool
	Mortgage MortgageConfig
	Property PropertyConfig `yaml:"property,omitempty"`
}

// MortgageConfig holds the loan terms for a scenario.
type MortgageConfig struct {
	Type         string // linear or annuity
	Principal    float64
	InterestRate float64 // nominal annual rate as a fraction, e.g. 0.04
	Years        int
}

// PropertyConfig holds the asset parameters used for overhead costs. A
// zero Value disables the overhead schedule for the scenario.
type PropertyConfig struct {
	Value            float64
	AppreciationRate float64 // yearly fraction; negative models depreciation
}

// HasProperty reports whether the scenario carries property parameters.
func (p PropertyConfig) HasProperty() bool {
	return p.Value != 0
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source, e.g. an uploaded file.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings. Hard input errors (non-positive principal or term,
// unknown mortgage type) surface when the schedules are computed.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.StartDate != "" {
		if _, err := time.Parse(DateTimeLayout, c.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("Start date '%s' is not in %s format and will be ignored",
				c.StartDate, DateTimeLayout))
		}
	}

	active := 0
	for _, scenario := range c.Scenarios {
		if !scenario.Active {
			continue
		}
		active++

		warnings = append(warnings, validation.MortgageWarnings(scenario.Name,
			scenario.Mortgage.InterestRate, scenario.Mortgage.Years)...)
		warnings = append(warnings, validation.PropertyWarnings(scenario.Name,
			scenario.Property.Value, scenario.Property.AppreciationRate)...)
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios are configured; nothing will be computed")
	}

	return warnings
}
