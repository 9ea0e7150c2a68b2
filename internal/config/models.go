package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/muurk/sezir/internal/climate"
	"github.com/muurk/sezir/internal/ir"
	"github.com/muurk/sezir/internal/logging"
	"github.com/muurk/sezir/internal/protocol"
)

// CurrentVersion is the only config file version understood
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version   int             `yaml:"version"`
	LogLevel  string          `yaml:"log_level"` // debug|info|warn|error, empty = silent
	Tolerance ToleranceConfig `yaml:"tolerance"`
	Traits    TraitsConfig    `yaml:"traits"`
	Defaults  StateConfig     `yaml:"defaults"`
}

// ToleranceConfig is the receive timing tolerance.
type ToleranceConfig struct {
	Kind  string `yaml:"kind"`  // percent or absolute
	Value uint32 `yaml:"value"` // percent, or microseconds when absolute
}

// TraitsConfig restricts what the remote and the controller offer.
type TraitsConfig struct {
	MinTemperature int      `yaml:"min_temperature"`
	MaxTemperature int      `yaml:"max_temperature"`
	FanModes       []string `yaml:"fan_modes"`
	Modes          []string `yaml:"modes"`
}

// StateConfig is the state used when nothing else is given, such as the
// starting point of the virtual remote.
type StateConfig struct {
	Power       bool   `yaml:"power"`
	Mode        string `yaml:"mode"`
	Temperature int    `yaml:"temperature"`
	Fan         string `yaml:"fan"`
}

// Default returns a Config with the stock SEZ-KD settings.
func Default() *Config {
	traits := climate.DefaultTraits()

	modes := make([]string, 0, len(traits.Modes))
	for _, m := range traits.Modes {
		modes = append(modes, m.String())
	}
	fans := make([]string, 0, len(traits.FanSpeeds))
	for _, f := range traits.FanSpeeds {
		fans = append(fans, f.String())
	}

	return &Config{
		Version:  CurrentVersion,
		LogLevel: "",
		Tolerance: ToleranceConfig{
			Kind:  ir.DefaultTolerance.Kind.String(),
			Value: ir.DefaultTolerance.Value,
		},
		Traits: TraitsConfig{
			MinTemperature: traits.MinTemperature,
			MaxTemperature: traits.MaxTemperature,
			FanModes:       fans,
			Modes:          modes,
		},
		Defaults: StateConfig{
			Power:       true,
			Mode:        protocol.ModeCool.String(),
			Temperature: 22,
			Fan:         protocol.FanAuto.String(),
		},
	}
}

// Validate checks every section and reports the first problem found.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	if _, err := c.ToleranceValue(); err != nil {
		return fmt.Errorf("tolerance: %w", err)
	}
	traits, err := c.TraitsValue()
	if err != nil {
		return fmt.Errorf("traits: %w", err)
	}
	state, err := c.DefaultState()
	if err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if err := traits.Check(state); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

// ToleranceValue converts the tolerance section
func (c *Config) ToleranceValue() (ir.Tolerance, error) {
	switch strings.ToLower(c.Tolerance.Kind) {
	case "", "percent":
		if c.Tolerance.Value >= 100 {
			return ir.Tolerance{}, fmt.Errorf("percent tolerance must be below 100, got %d", c.Tolerance.Value)
		}
		return ir.Percent(c.Tolerance.Value), nil
	case "absolute":
		return ir.Absolute(time.Duration(c.Tolerance.Value) * time.Microsecond), nil
	default:
		return ir.Tolerance{}, fmt.Errorf("unknown tolerance kind %q (expected percent or absolute)", c.Tolerance.Kind)
	}
}

// TraitsValue converts the traits section and validates the result
func (c *Config) TraitsValue() (climate.Traits, error) {
	traits := climate.Traits{
		MinTemperature:  c.Traits.MinTemperature,
		MaxTemperature:  c.Traits.MaxTemperature,
		TemperatureStep: 1,
	}

	for _, name := range c.Traits.Modes {
		m, err := protocol.ParseMode(name)
		if err != nil {
			return climate.Traits{}, err
		}
		if m == protocol.ModeOff {
			continue
		}
		traits.Modes = append(traits.Modes, m)
	}
	for _, name := range c.Traits.FanModes {
		f, err := protocol.ParseFanSpeed(name)
		if err != nil {
			return climate.Traits{}, err
		}
		traits.FanSpeeds = append(traits.FanSpeeds, f)
	}

	if err := traits.Validate(); err != nil {
		return climate.Traits{}, err
	}
	return traits, nil
}

// DefaultState converts the defaults section
func (c *Config) DefaultState() (protocol.ClimateState, error) {
	mode, err := protocol.ParseMode(c.Defaults.Mode)
	if err != nil {
		return protocol.ClimateState{}, err
	}
	fan, err := protocol.ParseFanSpeed(c.Defaults.Fan)
	if err != nil {
		return protocol.ClimateState{}, err
	}
	if !c.Defaults.Power {
		mode = protocol.ModeOff
	}

	return protocol.ClimateState{
		Power:       c.Defaults.Power,
		Mode:        mode,
		Temperature: c.Defaults.Temperature,
		Fan:         fan,
	}, nil
}
