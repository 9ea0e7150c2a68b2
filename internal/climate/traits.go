package climate

import (
	"fmt"

	"github.com/muurk/sezir/internal/protocol"
)

// Traits describes what the host may ask of the unit
type Traits struct {
	MinTemperature  int                 // Lowest target the host offers
	MaxTemperature  int                 // Highest target the host offers
	TemperatureStep int                 // Target resolution in Celsius
	Modes           []protocol.Mode     // Modes offered besides off
	FanSpeeds       []protocol.FanSpeed // Fan settings offered
}

// DefaultTraits returns the traits of the SEZ-KD ducted units
func DefaultTraits() Traits {
	return Traits{
		MinTemperature:  protocol.TempMin,
		MaxTemperature:  protocol.TempMax,
		TemperatureStep: 1,
		Modes: []protocol.Mode{
			protocol.ModeCool,
			protocol.ModeHeat,
			protocol.ModeAuto,
			protocol.ModeFanOnly,
			protocol.ModeDry,
		},
		FanSpeeds: []protocol.FanSpeed{
			protocol.FanAuto,
			protocol.FanLow,
			protocol.FanMedium,
			protocol.FanHigh,
		},
	}
}

// Validate checks that the traits stay inside what the protocol can carry
func (t Traits) Validate() error {
	if t.MinTemperature < protocol.TempMin || t.MaxTemperature > protocol.TempMax {
		return fmt.Errorf("temperature range %d-%d outside supported %d-%d",
			t.MinTemperature, t.MaxTemperature, protocol.TempMin, protocol.TempMax)
	}
	if t.MinTemperature > t.MaxTemperature {
		return fmt.Errorf("min temperature %d above max %d", t.MinTemperature, t.MaxTemperature)
	}
	if t.TemperatureStep < 1 {
		return fmt.Errorf("temperature step must be at least 1, got %d", t.TemperatureStep)
	}
	if len(t.Modes) == 0 {
		return fmt.Errorf("at least one mode is required")
	}
	for _, m := range t.Modes {
		if _, ok := protocol.ModeCode(m); !ok {
			return fmt.Errorf("mode %s cannot be sent", m)
		}
	}
	if len(t.FanSpeeds) == 0 {
		return fmt.Errorf("at least one fan speed is required")
	}
	for _, f := range t.FanSpeeds {
		if _, ok := protocol.FanCode(f); !ok {
			return fmt.Errorf("fan speed %s cannot be sent", f)
		}
	}
	return nil
}

// SupportsMode reports whether m is offered. ModeOff is always supported.
func (t Traits) SupportsMode(m protocol.Mode) bool {
	if m == protocol.ModeOff {
		return true
	}
	for _, v := range t.Modes {
		if v == m {
			return true
		}
	}
	return false
}

// SupportsFan reports whether f is offered
func (t Traits) SupportsFan(f protocol.FanSpeed) bool {
	for _, v := range t.FanSpeeds {
		if v == f {
			return true
		}
	}
	return false
}

// SupportsCool reports whether cooling is offered
func (t Traits) SupportsCool() bool {
	return t.SupportsMode(protocol.ModeCool)
}

// SupportsHeat reports whether heating is offered
func (t Traits) SupportsHeat() bool {
	return t.SupportsMode(protocol.ModeHeat)
}

// ClampTemperature bounds a target to the offered range
func (t Traits) ClampTemperature(temp int) int {
	if temp < t.MinTemperature {
		return t.MinTemperature
	}
	if temp > t.MaxTemperature {
		return t.MaxTemperature
	}
	return temp
}

// Check validates a target state against the traits
func (t Traits) Check(s protocol.ClimateState) error {
	if s.Power {
		if s.Mode == protocol.ModeOff {
			return fmt.Errorf("powered on state needs a mode")
		}
		if !t.SupportsMode(s.Mode) {
			return fmt.Errorf("mode %s not supported", s.Mode)
		}
	}
	if s.Temperature < t.MinTemperature || s.Temperature > t.MaxTemperature {
		return fmt.Errorf("temperature %d°C outside %d-%d°C", s.Temperature, t.MinTemperature, t.MaxTemperature)
	}
	if (s.Temperature-t.MinTemperature)%t.TemperatureStep != 0 {
		return fmt.Errorf("temperature %d°C not a multiple of step %d from %d",
			s.Temperature, t.TemperatureStep, t.MinTemperature)
	}
	if !t.SupportsFan(s.Fan) {
		return fmt.Errorf("fan speed %s not supported", s.Fan)
	}
	return nil
}
