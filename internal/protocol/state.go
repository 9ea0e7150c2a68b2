package protocol

import (
	"fmt"
	"strings"
)

// Mode is the operating mode of the air conditioner as seen by the host.
type Mode int

const (
	ModeOff Mode = iota
	ModeCool
	ModeHeat
	ModeDry
	ModeFanOnly
	ModeAuto
)

// Modes lists every mode the unit can run in while powered on.
var Modes = []Mode{ModeCool, ModeHeat, ModeAuto, ModeFanOnly, ModeDry}

// String returns the lower-case name used in config files and CLI flags
func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeCool:
		return "cool"
	case ModeHeat:
		return "heat"
	case ModeDry:
		return "dry"
	case ModeFanOnly:
		return "fan_only"
	case ModeAuto:
		return "auto"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name into a Mode.
// Accepts "fan", "fan-only" and "fan_only" for ModeFanOnly.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return ModeOff, nil
	case "cool":
		return ModeCool, nil
	case "heat":
		return ModeHeat, nil
	case "dry":
		return ModeDry, nil
	case "fan", "fan_only", "fan-only", "fanonly":
		return ModeFanOnly, nil
	case "auto":
		return ModeAuto, nil
	default:
		return ModeOff, fmt.Errorf("unknown mode %q (expected off, cool, heat, dry, fan_only or auto)", s)
	}
}

// FanSpeed is the indoor fan setting.
type FanSpeed int

const (
	FanAuto FanSpeed = iota
	FanLow
	FanMedium
	FanHigh
)

// FanSpeeds lists every supported fan setting.
var FanSpeeds = []FanSpeed{FanAuto, FanLow, FanMedium, FanHigh}

func (f FanSpeed) String() string {
	switch f {
	case FanAuto:
		return "auto"
	case FanLow:
		return "low"
	case FanMedium:
		return "medium"
	case FanHigh:
		return "high"
	default:
		return fmt.Sprintf("FanSpeed(%d)", int(f))
	}
}

// ParseFanSpeed converts a fan speed name into a FanSpeed.
func ParseFanSpeed(s string) (FanSpeed, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return FanAuto, nil
	case "low":
		return FanLow, nil
	case "medium", "mid":
		return FanMedium, nil
	case "high":
		return FanHigh, nil
	default:
		return FanAuto, fmt.Errorf("unknown fan speed %q (expected auto, low, medium or high)", s)
	}
}

// ClimateState is the small discrete state carried by one IR frame.
type ClimateState struct {
	Power       bool     // Unit on/off
	Mode        Mode     // Only meaningful while Power is true
	Temperature int      // Target temperature in Celsius
	Fan         FanSpeed // Indoor fan setting
}

// Normalize returns the state a receiver would observe after this state went
// over the air: an off unit reports ModeOff and an out-of-range temperature
// is replaced by DefaultTemperature.
func (s ClimateState) Normalize() ClimateState {
	if !s.Power {
		s.Mode = ModeOff
	}
	if s.Temperature < TempMin || s.Temperature > TempMax {
		s.Temperature = DefaultTemperature
	}
	if _, ok := fanCodes[s.Fan]; !ok {
		s.Fan = FanAuto
	}
	return s
}

// String returns a debug representation of the state
func (s ClimateState) String() string {
	power := "off"
	if s.Power {
		power = "on"
	}
	return fmt.Sprintf("ClimateState{power=%s, mode=%s, temp=%d°C, fan=%s}",
		power, s.Mode, s.Temperature, s.Fan)
}
