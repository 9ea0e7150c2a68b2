package ir

import (
	"errors"
	"fmt"
	"time"

	"github.com/muurk/sezir/internal/protocol"
)

// ErrFraming means the pulses do not follow the SEZ timing grammar.
// Callers trying several protocol decoders should treat it as "not mine".
var ErrFraming = errors.New("not a SEZ frame")

// FramingError reports where and why a sequence stopped matching
type FramingError struct {
	Pulse  int    // Index of the offending pulse
	Byte   int    // Payload byte being decoded, -1 while expecting the header
	Bit    int    // Bit within Byte, -1 while expecting the header
	Reason string // What did not match
}

func (e *FramingError) Error() string {
	if e.Byte < 0 {
		return fmt.Sprintf("%v: pulse %d (header): %s", ErrFraming, e.Pulse, e.Reason)
	}
	return fmt.Sprintf("%v: pulse %d (byte %d bit %d): %s", ErrFraming, e.Pulse, e.Byte, e.Bit, e.Reason)
}

func (e *FramingError) Unwrap() error {
	return ErrFraming
}

// IsFramingError checks if an error means the signal belongs to another protocol
func IsFramingError(err error) bool {
	return errors.Is(err, ErrFraming)
}

type decodeState int

const (
	expectHeader decodeState = iota
	expectBit
	done
)

// Decoder turns captured pulses back into a payload
type Decoder struct {
	Tolerance Tolerance
}

// NewDecoder returns a decoder using the given tolerance
func NewDecoder(tol Tolerance) *Decoder {
	return &Decoder{Tolerance: tol}
}

// Decode uses DefaultTolerance
func Decode(seq Sequence) (protocol.Payload, error) {
	return NewDecoder(DefaultTolerance).Decode(seq)
}

// Decode walks the sequence through header and 136 data bits. It bails out
// at the first pulse that does not fit, so it is cheap to try on any signal.
// Pulses after the last data bit, including the trailing mark, are ignored.
func (d *Decoder) Decode(seq Sequence) (protocol.Payload, error) {
	var p protocol.Payload

	state := expectHeader
	byteIdx, bitIdx := 0, 0

	for i := 0; state != done; i++ {
		if i >= len(seq) {
			return protocol.Payload{}, d.fail(i, state, byteIdx, bitIdx,
				"sequence ended after %d pulses", len(seq))
		}
		pulse := seq[i]

		switch state {
		case expectHeader:
			if !d.Tolerance.Matches(pulse.Mark, HeaderMark) {
				return protocol.Payload{}, d.mismatch(i, state, 0, 0, "mark", pulse.Mark, HeaderMark)
			}
			if !d.Tolerance.Matches(pulse.Space, HeaderSpace) {
				return protocol.Payload{}, d.mismatch(i, state, 0, 0, "space", pulse.Space, HeaderSpace)
			}
			state = expectBit

		case expectBit:
			if !d.Tolerance.Matches(pulse.Mark, BitMark) {
				return protocol.Payload{}, d.mismatch(i, state, byteIdx, bitIdx, "mark", pulse.Mark, BitMark)
			}

			switch {
			case d.Tolerance.Matches(pulse.Space, OneSpace):
				p[byteIdx] |= 1 << bitIdx
			case d.Tolerance.Matches(pulse.Space, ZeroSpace):
			default:
				return protocol.Payload{}, d.fail(i, state, byteIdx, bitIdx,
					"space %dµs is neither one (%dµs) nor zero (%dµs) %s",
					pulse.Space.Microseconds(), OneSpace.Microseconds(), ZeroSpace.Microseconds(), d.Tolerance)
			}

			bitIdx++
			if bitIdx == 8 {
				bitIdx = 0
				byteIdx++
				if byteIdx == protocol.PayloadSize {
					state = done
				}
			}
		}
	}

	return p, nil
}

func (d *Decoder) mismatch(pulse int, state decodeState, byteIdx, bitIdx int, what string, got, want time.Duration) error {
	return d.fail(pulse, state, byteIdx, bitIdx, "%s %dµs outside %dµs %s",
		what, got.Microseconds(), want.Microseconds(), d.Tolerance)
}

func (d *Decoder) fail(pulse int, state decodeState, byteIdx, bitIdx int, format string, args ...interface{}) error {
	if state == expectHeader {
		byteIdx, bitIdx = -1, -1
	}
	return &FramingError{
		Pulse:  pulse,
		Byte:   byteIdx,
		Bit:    bitIdx,
		Reason: fmt.Sprintf(format, args...),
	}
}
