// Package config defines the quickcalc configuration and the functions for
// loading it from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/quickcalc/pkg/calc"
	"github.com/iwvelando/quickcalc/pkg/constants"
	"github.com/iwvelando/quickcalc/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for quickcalc.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, json, csv, yaml
}

// DefaultsConfig holds the values the CLI falls back to when an optional
// argument is omitted.
type DefaultsConfig struct {
	TipPercent float64 `yaml:"tipPercent,omitempty"`
	People     int     `yaml:"people,omitempty"`
	UnitSystem string  `yaml:"unitSystem,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with QUICKCALC_
// override file values, e.g. QUICKCALC_LOGGING_LEVEL=debug.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationOrDefaults behaves like LoadConfiguration but returns the
// defaults, still subject to environment overrides, when configPath does not
// exist.
func LoadConfigurationOrDefaults(configPath string) (*Configuration, error) {
	if configPath == "" {
		return decode(newViper())
	}
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return decode(newViper())
		}
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return LoadConfiguration(configPath)
}

// LoadConfigurationFromReader loads YAML configuration from an arbitrary reader.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("defaults.tipPercent", constants.DefaultTipPercent)
	v.SetDefault("defaults.people", constants.DefaultPeople)
	v.SetDefault("defaults.unitSystem", constants.DefaultUnitSystem)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration checks the configuration and returns warnings for
// values that will be ignored or corrected at runtime. An unusable output
// format is an error since no result could be rendered.
func (c *Configuration) ValidateConfiguration() ([]string, error) {
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return nil, err
	}

	var warnings []string
	if c.Defaults.TipPercent < 0 {
		warnings = append(warnings, fmt.Sprintf("defaults.tipPercent %v is negative and will be treated as 0", c.Defaults.TipPercent))
	}
	if c.Defaults.People < 1 {
		warnings = append(warnings, fmt.Sprintf("defaults.people %d is below 1 and will be treated as 1", c.Defaults.People))
	}
	if _, err := validation.ValidateUnitSystem(c.Defaults.UnitSystem); err != nil {
		warnings = append(warnings, fmt.Sprintf("defaults.unitSystem: %v; %s will be used", err, calc.Metric))
	}
	return warnings, nil
}

// UnitSystem returns the configured default unit system, falling back to metric.
func (c *Configuration) UnitSystem() calc.UnitSystem {
	u, err := validation.ValidateUnitSystem(c.Defaults.UnitSystem)
	if err != nil {
		return calc.Metric
	}
	return u
}
