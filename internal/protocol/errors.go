package protocol

import (
	"errors"
	"fmt"
)

// Sentinel errors for each failure kind. Match them with errors.Is.
var (
	ErrTooShort             = errors.New("payload length mismatch")
	ErrBadHeader            = errors.New("bad header")
	ErrChecksumMismatch     = errors.New("inverse check byte mismatch")
	ErrUnknownOperatingMode = errors.New("unknown operating mode")
	ErrUnsupportedMode      = errors.New("unsupported mode")
)

// ErrorKind represents the category of codec failure
type ErrorKind int

const (
	// KindTooShort indicates a payload that is not exactly PayloadSize bytes
	KindTooShort ErrorKind = iota
	// KindBadHeader indicates that one of the constant bytes 0-4 does not match
	KindBadHeader
	// KindChecksumMismatch indicates that an inverse byte is not the complement of its pair
	KindChecksumMismatch
	// KindUnknownOperatingMode indicates a powered-on payload with an unrecognised mode nibble
	KindUnknownOperatingMode
	// KindUnsupportedMode indicates a state whose mode cannot be encoded
	KindUnsupportedMode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTooShort:
		return "TooShort"
	case KindBadHeader:
		return "BadHeader"
	case KindChecksumMismatch:
		return "ChecksumMismatch"
	case KindUnknownOperatingMode:
		return "UnknownOperatingMode"
	case KindUnsupportedMode:
		return "UnsupportedMode"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTooShort:
		return ErrTooShort
	case KindBadHeader:
		return ErrBadHeader
	case KindChecksumMismatch:
		return ErrChecksumMismatch
	case KindUnknownOperatingMode:
		return ErrUnknownOperatingMode
	case KindUnsupportedMode:
		return ErrUnsupportedMode
	default:
		return nil
	}
}

// Error describes why a payload could not be encoded or decoded
type Error struct {
	Kind    ErrorKind // Category of error
	Index   int       // Payload byte index involved, -1 when not applicable
	Got     int       // Observed value (byte, length or enum value)
	Want    int       // Expected value, when there is a single one
	Message string    // Human-readable detail
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: byte %d: %s", e.Kind, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the sentinel for the error kind so errors.Is works
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

func newError(kind ErrorKind, index, got, want int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Index:   index,
		Got:     got,
		Want:    want,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the ErrorKind carried by err, if any
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsStructural reports whether err means the payload itself is malformed
// (wrong length, header or inverse bytes) rather than carrying an unknown value.
func IsStructural(err error) bool {
	return errors.Is(err, ErrTooShort) ||
		errors.Is(err, ErrBadHeader) ||
		errors.Is(err, ErrChecksumMismatch)
}
