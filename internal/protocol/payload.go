package protocol

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// PayloadSize is the fixed number of bytes in every SEZ frame
const PayloadSize = 17

// Payload byte layout
//
//	[0-4]   23 CB 26 21 00   Constant header
//	[5]     power            PowerOn / PowerOff
//	[6]     temp<<4 | mode   High nibble = temperature - 16, low nibble = mode code
//	[7]     fan              Fan code
//	[8-10]  reserved         Sent as 04 00 00
//	[11-16] ^[5-10]          Inverse check bytes
const (
	IndexPower    = 5
	IndexModeTemp = 6
	IndexFan      = 7
	IndexInverse  = 11

	headerSize   = 5
	checkedBytes = 6
)

// Header is the constant prefix of every payload
var Header = [headerSize]byte{0x23, 0xCB, 0x26, 0x21, 0x00}

// Power byte values
const (
	PowerOff byte = 0x00
	PowerOn  byte = 0x40
)

// Operating mode codes (low nibble of byte 6)
const (
	ModeCodeFan  byte = 0x00
	ModeCodeCool byte = 0x01
	ModeCodeHeat byte = 0x02
	ModeCodeAuto byte = 0x03
	ModeCodeDry  byte = 0x05
)

// Fan speed codes (byte 7)
const (
	FanCodeAuto   byte = 0x31
	FanCodeLow    byte = 0x33 // The stock remote only sends this as feedback
	FanCodeMedium byte = 0x35
	FanCodeHigh   byte = 0x37
)

// Temperature limits in Celsius
const (
	TempMin            = 19
	TempMax            = 30
	TempOffset         = 16
	DefaultTemperature = TempMin
)

var modeCodes = map[Mode]byte{
	ModeCool:    ModeCodeCool,
	ModeHeat:    ModeCodeHeat,
	ModeAuto:    ModeCodeAuto,
	ModeFanOnly: ModeCodeFan,
	ModeDry:     ModeCodeDry,
}

var fanCodes = map[FanSpeed]byte{
	FanAuto:   FanCodeAuto,
	FanLow:    FanCodeLow,
	FanMedium: FanCodeMedium,
	FanHigh:   FanCodeHigh,
}

// template is the starting point for every encoded frame
var template = Payload{
	0x23, 0xCB, 0x26, 0x21, 0x00, // header
	PowerOn, 0x00, 0x00, // power, mode/temp, fan
	0x04, 0x00, 0x00, // reserved
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // inverse bytes
}

// Payload is one 17-byte SEZ frame
type Payload [PayloadSize]byte

// Bytes returns a copy of the payload as a slice
func (p Payload) Bytes() []byte {
	b := make([]byte, PayloadSize)
	copy(b, p[:])
	return b
}

// String returns the payload as space separated hex
func (p Payload) String() string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}

// Validate checks the constant header and the inverse check bytes.
// It does not look at the values of the variable fields.
func (p Payload) Validate() error {
	for i, want := range Header {
		if p[i] != want {
			return newError(KindBadHeader, i, int(p[i]), int(want),
				"got 0x%02X, want 0x%02X", p[i], want)
		}
	}

	for k := 0; k < checkedBytes; k++ {
		src, inv := IndexPower+k, IndexInverse+k
		if p[inv] != ^p[src] {
			return newError(KindChecksumMismatch, inv, int(p[inv]), int(^p[src]),
				"got 0x%02X, want 0x%02X (inverse of byte %d = 0x%02X)", p[inv], ^p[src], src, p[src])
		}
	}

	return nil
}

// seal recomputes the inverse check bytes
func (p *Payload) seal() {
	for k := 0; k < checkedBytes; k++ {
		p[IndexInverse+k] = ^p[IndexPower+k]
	}
}

// PayloadFromBytes copies b into a Payload, failing with ErrTooShort when
// the length is not exactly PayloadSize.
func PayloadFromBytes(b []byte) (Payload, error) {
	var p Payload
	if len(b) != PayloadSize {
		return p, newError(KindTooShort, -1, len(b), PayloadSize,
			"got %d bytes, want %d", len(b), PayloadSize)
	}
	copy(p[:], b)
	return p, nil
}

// ParsePayload parses a hex string such as "23 CB 26 21 ..." or "23cb2621...".
// Spaces, colons, commas and 0x prefixes are ignored.
func ParsePayload(s string) (Payload, error) {
	clean := strings.NewReplacer("0x", "", "0X", "", " ", "", ":", "", ",", "", "\n", "", "\t", "").Replace(s)
	b, err := hex.DecodeString(clean)
	if err != nil {
		return Payload{}, fmt.Errorf("invalid payload hex: %w", err)
	}
	return PayloadFromBytes(b)
}
