// Package config loads phinet settings from YAML.
//
// Every field is optional; Load and Parse fill the gaps with defaults and
// then validate. The resulting Config produces the option sets consumed by
// package network and package sia.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/phinet/network"
	"github.com/katalvlaran/phinet/sia"
)

// Defaults.
const (
	DefaultPrecision = 6
	DefaultLogLevel  = "info"
	MinPrecision     = 1
	MaxPrecision     = 15
)

// ErrInvalid signals a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level settings file.
type Config struct {
	// Precision is the number of decimal places two floats must agree to in
	// order to be considered equal.
	Precision int `yaml:"precision"`

	// CachePotentialPurviews memoizes potential purviews per network.
	CachePotentialPurviews *bool `yaml:"cache_potential_purviews,omitempty"`

	// ValidateConditionalIndependence rejects state-by-state TPMs whose
	// nodes are not conditionally independent.
	ValidateConditionalIndependence *bool `yaml:"validate_conditional_independence,omitempty"`

	// SingleMicroNodesWithSelfloopsHavePhi lets a single node with a
	// self-loop skip the null-analysis shortcut.
	SingleMicroNodesWithSelfloopsHavePhi bool `yaml:"single_micro_nodes_with_selfloops_have_phi"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"`
	Color *bool  `yaml:"color,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()

	return c
}

// Load reads, defaults and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes, defaults and validates YAML data. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: failed to parse YAML: %w", err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// ApplyDefaults fills zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Precision == 0 {
		c.Precision = DefaultPrecision
	}
	if c.CachePotentialPurviews == nil {
		c.CachePotentialPurviews = boolPtr(network.DefaultPurviewCaching)
	}
	if c.ValidateConditionalIndependence == nil {
		c.ValidateConditionalIndependence = boolPtr(true)
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Color == nil {
		c.Log.Color = boolPtr(true)
	}
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.Precision < MinPrecision || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision must be in [%d, %d], got %d", ErrInvalid, MinPrecision, MaxPrecision, c.Precision)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// Epsilon returns 10^-Precision.
func (c *Config) Epsilon() float64 { return math.Pow10(-c.Precision) }

// SlogLevel maps Log.Level to a slog level.
func (c *Config) SlogLevel() slog.Level {
	l, _ := parseLevel(c.Log.Level) // validated

	return l
}

// NetworkOptions returns the network options implied by c.
func (c *Config) NetworkOptions() []network.Option {
	return []network.Option{
		network.WithEpsilon(c.Epsilon()),
		network.WithPurviewCaching(deref(c.CachePotentialPurviews, network.DefaultPurviewCaching)),
		network.WithIndependenceCheck(deref(c.ValidateConditionalIndependence, true)),
	}
}

// SIAOptions returns the analysis options implied by c.
func (c *Config) SIAOptions() []sia.Option {
	return []sia.Option{
		sia.WithEpsilon(c.Epsilon()),
		sia.WithSingleNodeSelfLoopPhi(c.SingleMicroNodesWithSelfloopsHavePhi),
	}
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q (must be debug, info, warn or error)", ErrInvalid, name)
	}
}

func boolPtr(b bool) *bool { return &b }

func deref(p *bool, def bool) bool {
	if p == nil {
		return def
	}

	return *p
}
