package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `---
startDate: 2025-09
logging:
  level: debug
  format: console
output:
  format: csv
scenarios:
  - name: annuity purchase
    active: true
    mortgage:
      type: annuity
      principal: 300000
      interestRate: 0.04
      years: 30
    property:
      value: 400000
      appreciationRate: 0.03
  - name: linear purchase
    active: false
    mortgage:
      type: linear
      principal: 300000
      interestRate: 0.04
      years: 30
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error: %v", err)
	}

	if conf.StartDate != "2025-09" {
		t.Errorf("StartDate = %q, expected 2025-09", conf.StartDate)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}

	if len(conf.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, expected 2", len(conf.Scenarios))
	}

	first := conf.Scenarios[0]
	if first.Name != "annuity purchase" || !first.Active {
		t.Errorf("first scenario = %+v, expected active annuity purchase", first)
	}
	if first.Mortgage.Type != "annuity" || first.Mortgage.Principal != 300000 ||
		first.Mortgage.InterestRate != 0.04 || first.Mortgage.Years != 30 {
		t.Errorf("first mortgage = %+v", first.Mortgage)
	}
	if first.Property.Value != 400000 || first.Property.AppreciationRate != 0.03 {
		t.Errorf("first property = %+v", first.Property)
	}
	if !first.Property.HasProperty() {
		t.Error("HasProperty() = false, expected true")
	}

	second := conf.Scenarios[1]
	if second.Active {
		t.Error("second scenario should be inactive")
	}
	if second.Property.HasProperty() {
		t.Error("HasProperty() = true for scenario without property")
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfiguration() expected error for missing file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() unexpected error: %v", err)
	}
	if len(conf.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, expected 2", len(conf.Scenarios))
	}
	if conf.Scenarios[0].Mortgage.Type != "annuity" {
		t.Errorf("mortgage type = %q, expected annuity", conf.Scenarios[0].Mortgage.Type)
	}
}

func TestLoadConfigurationFromReaderMalformed(t *testing.T) {
	if _, err := LoadConfigurationFromReader(strings.NewReader(":::not yaml")); err == nil {
		t.Error("LoadConfigurationFromReader() expected error for malformed input")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		conf          Configuration
		expectContain string
	}{
		{
			name:          "No active scenarios",
			conf:          Configuration{},
			expectContain: "No active scenarios",
		},
		{
			name: "Malformed start date",
			conf: Configuration{
				StartDate: "September 2025",
				Scenarios: []Scenario{activeScenario()},
			},
			expectContain: "not in 2006-01 format",
		},
		{
			name: "Impractically long term",
			conf: Configuration{
				Scenarios: []Scenario{func() Scenario {
					s := activeScenario()
					s.Mortgage.Years = 60
					return s
				}()},
			},
			expectContain: "practical bound",
		},
		{
			name: "Missing property value",
			conf: Configuration{
				Scenarios: []Scenario{func() Scenario {
					s := activeScenario()
					s.Property = PropertyConfig{}
					return s
				}()},
			},
			expectContain: "overhead costs will be skipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if !strings.Contains(strings.Join(warnings, "\n"), tt.expectContain) {
				t.Errorf("warnings %v do not mention %q", warnings, tt.expectContain)
			}
		})
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf := Configuration{
		StartDate: "2025-09",
		Scenarios: []Scenario{activeScenario()},
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("ValidateConfiguration() = %v, expected no warnings", warnings)
	}
}

func activeScenario() Scenario {
	return Scenario{
		Name:   "test scenario",
		Active: true,
		Mortgage: MortgageConfig{
			Type:         "annuity",
			Principal:    300000,
			InterestRate: 0.04,
			Years:        30,
		},
		Property: PropertyConfig{
			Value:            400000,
			AppreciationRate: 0.03,
		},
	}
}
