package ir

import (
	"fmt"
	"time"
)

// SEZ consumer IR is modulated at 38 kHz
const CarrierFrequency = 38_000

// Pulse timings
const (
	HeaderMark  = 3060 * time.Microsecond
	HeaderSpace = 1580 * time.Microsecond
	BitMark     = 350 * time.Microsecond
	OneSpace    = 1150 * time.Microsecond
	ZeroSpace   = 390 * time.Microsecond
	TrailMark   = BitMark
)

// ToleranceKind selects how a Tolerance value is interpreted
type ToleranceKind int

const (
	// TolerancePercent widens every nominal duration by Value percent each way
	TolerancePercent ToleranceKind = iota
	// ToleranceAbsolute widens every nominal duration by Value microseconds each way
	ToleranceAbsolute
)

func (k ToleranceKind) String() string {
	switch k {
	case TolerancePercent:
		return "percent"
	case ToleranceAbsolute:
		return "absolute"
	default:
		return fmt.Sprintf("ToleranceKind(%d)", int(k))
	}
}

// Tolerance is the accepted deviation of a measured duration from its nominal value
type Tolerance struct {
	Kind  ToleranceKind
	Value uint32
}

// DefaultTolerance accepts ±25% around each nominal duration
var DefaultTolerance = Percent(25)

// Percent returns a relative tolerance
func Percent(v uint32) Tolerance {
	return Tolerance{Kind: TolerancePercent, Value: v}
}

// Absolute returns a fixed tolerance, truncated to whole microseconds
func Absolute(d time.Duration) Tolerance {
	return Tolerance{Kind: ToleranceAbsolute, Value: uint32(d / time.Microsecond)}
}

// Bounds returns the inclusive window accepted around nominal
func (t Tolerance) Bounds(nominal time.Duration) (lo, hi time.Duration) {
	switch t.Kind {
	case ToleranceAbsolute:
		delta := time.Duration(t.Value) * time.Microsecond
		lo, hi = nominal-delta, nominal+delta
	default:
		v := time.Duration(t.Value)
		lo = nominal * (100 - v) / 100
		hi = nominal * (100 + v) / 100
	}
	if lo < 0 {
		lo = 0
	}
	return lo, hi
}

// Matches reports whether measured falls inside the window around nominal
func (t Tolerance) Matches(measured, nominal time.Duration) bool {
	lo, hi := t.Bounds(nominal)
	return measured >= lo && measured <= hi
}

func (t Tolerance) String() string {
	if t.Kind == ToleranceAbsolute {
		return fmt.Sprintf("±%dµs", t.Value)
	}
	return fmt.Sprintf("±%d%%", t.Value)
}
