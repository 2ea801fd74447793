package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/quickcalc/internal/config"
	"github.com/iwvelando/quickcalc/pkg/calc"
	"github.com/iwvelando/quickcalc/pkg/constants"
	"github.com/iwvelando/quickcalc/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the calculator API. Defaults fill in
// request fields a client leaves out.
type Config struct {
	Address          string                `yaml:"address"`
	MaxRequestSize   string                `yaml:"maxRequestSize"`
	Logging          config.LoggingConfig  `yaml:"logging"`
	Defaults         config.DefaultsConfig `yaml:"defaults"`
	requestSizeBytes int64
}

// requestDefaults is the resolved form of Config.Defaults used by handlers.
type requestDefaults struct {
	tipPercent float64
	people     int
	units      calc.UnitSystem
}

// sizeUnits is checked in order, so two-letter suffixes come before "B".
var sizeUnits = []struct {
	suffix string
	factor int64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"B", 1},
}

// DefaultConfig returns the server configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Address:        constants.DefaultServerAddress,
		MaxRequestSize: strconv.FormatInt(constants.DefaultMaxRequestSizeBytes, 10),
		Defaults: config.DefaultsConfig{
			TipPercent: constants.DefaultTipPercent,
			People:     constants.DefaultPeople,
			UnitSystem: constants.DefaultUnitSystem,
		},
		requestSizeBytes: constants.DefaultMaxRequestSizeBytes,
	}
}

// LoadConfig reads the server configuration from YAML over DefaultConfig.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config %s: %w", path, err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, fmt.Errorf("invalid server config %s: %w", path, err)
	}
	return cfg, nil
}

// RequestSizeBytes returns the request body limit in bytes.
func (c *Config) RequestSizeBytes() int64 {
	if c.requestSizeBytes <= 0 {
		return constants.DefaultMaxRequestSizeBytes
	}
	return c.requestSizeBytes
}

// SetRequestSizeBytes overrides the request body limit; non-positive sizes
// are ignored.
func (c *Config) SetRequestSizeBytes(size int64) {
	if size <= 0 {
		return
	}
	c.requestSizeBytes = size
	c.MaxRequestSize = strconv.FormatInt(size, 10)
}

// resolve fills blanks and checks the calculator defaults. An unknown unit
// system is rejected here rather than silently served as metric.
func (c *Config) resolve() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	size, err := ParseSize(c.MaxRequestSize)
	if err != nil {
		return err
	}
	c.requestSizeBytes = size

	if c.Defaults.UnitSystem == "" {
		c.Defaults.UnitSystem = constants.DefaultUnitSystem
	}
	units, err := validation.ValidateUnitSystem(c.Defaults.UnitSystem)
	if err != nil {
		return fmt.Errorf("defaults.unitSystem: %w", err)
	}
	c.Defaults.UnitSystem = string(units)

	if c.Defaults.TipPercent < 0 {
		return fmt.Errorf("defaults.tipPercent must not be negative, got %v", c.Defaults.TipPercent)
	}
	if c.Defaults.People < 1 {
		c.Defaults.People = constants.DefaultPeople
	}
	return nil
}

// requestDefaults resolves Defaults for a handler without failing, so a
// hand-built Config behaves the same as a loaded one.
func (c *Config) requestDefaults() requestDefaults {
	units, err := calc.ParseUnitSystem(c.Defaults.UnitSystem)
	if err != nil {
		units = calc.Metric
	}
	return requestDefaults{
		tipPercent: calc.Coerce(c.Defaults.TipPercent),
		people:     calc.CoercePeople(c.Defaults.People),
		units:      units,
	}
}

// ParseSize converts a byte count with an optional B, K/KB or M/MB suffix
// (case-insensitive) into bytes. A blank value yields the default limit.
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxRequestSizeBytes, nil
	}

	factor := int64(1)
	for _, u := range sizeUnits {
		if num, ok := strings.CutSuffix(s, u.suffix); ok {
			s, factor = strings.TrimSpace(num), u.factor
			break
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", value, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("size %q must be positive", value)
	}
	if n > math.MaxInt64/factor {
		return 0, fmt.Errorf("size %q overflows", value)
	}
	return n * factor, nil
}
