package ir

import (
	"errors"
	"fmt"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/muurk/sezir/internal/protocol"
)

var coolMedium22 = protocol.Payload{
	0x23, 0xCB, 0x26, 0x21, 0x00, 0x40, 0x61, 0x35, 0x04,
	0x00, 0x00, 0xBF, 0x9E, 0xCA, 0xFB, 0xFF, 0xFF,
}

func TestEncode(t *testing.T) {
	c := qt.New(t)

	seq := Encode(coolMedium22)
	c.Assert(seq, qt.HasLen, FrameLength)
	c.Assert(FrameLength, qt.Equals, 138)

	c.Assert(seq[0], qt.Equals, Pulse{Mark: HeaderMark, Space: HeaderSpace})
	c.Assert(seq[len(seq)-1], qt.Equals, Pulse{Mark: BitMark, Space: 0})

	// 0x23 = 0b00100011, sent LSB first: 1 1 0 0 0 1 0 0
	wantBits := []time.Duration{OneSpace, OneSpace, ZeroSpace, ZeroSpace, ZeroSpace, OneSpace, ZeroSpace, ZeroSpace}
	for i, space := range wantBits {
		c.Assert(seq[1+i], qt.Equals, Pulse{Mark: BitMark, Space: space}, qt.Commentf("bit %d", i))
	}

	for i, p := range seq[1 : len(seq)-1] {
		c.Assert(p.Mark, qt.Equals, BitMark, qt.Commentf("pulse %d", i+1))
	}
}

func TestEncode_Duration(t *testing.T) {
	c := qt.New(t)

	var zero protocol.Payload
	seq := Encode(zero)

	want := HeaderMark + HeaderSpace + 136*(BitMark+ZeroSpace) + TrailMark
	c.Assert(seq.Duration(), qt.Equals, want)
}

func TestPulseRoundTrip(t *testing.T) {
	c := qt.New(t)

	for _, mode := range protocol.Modes {
		for temp := protocol.TempMin; temp <= protocol.TempMax; temp++ {
			for _, fan := range protocol.FanSpeeds {
				state := protocol.ClimateState{Power: true, Mode: mode, Temperature: temp, Fan: fan}
				payload, err := protocol.Encode(state)
				c.Assert(err, qt.IsNil)

				got, err := Decode(Encode(payload))
				c.Assert(err, qt.IsNil, qt.Commentf("state %s", state))
				c.Assert(got, qt.Equals, payload)
			}
		}
	}
}

func TestPulseRoundTrip_ArbitraryBytes(t *testing.T) {
	c := qt.New(t)

	for v := 0; v < 256; v++ {
		var p protocol.Payload
		for i := range p {
			p[i] = byte(v + i*37)
		}
		got, err := Decode(Encode(p))
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, p)
	}
}

func TestDecode_ToleranceBoundary(t *testing.T) {
	tests := []struct {
		name    string
		mark    time.Duration
		wantErr bool
	}{
		{"nominal", 3060 * time.Microsecond, false},
		{"upper edge", 3825 * time.Microsecond, false},
		{"just above", 3826 * time.Microsecond, true},
		{"lower edge", 2295 * time.Microsecond, false},
		{"just below", 2294 * time.Microsecond, true},
	}

	c := qt.New(t)
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			seq := Encode(coolMedium22)
			seq[0].Mark = tt.mark

			got, err := Decode(seq)
			if tt.wantErr {
				c.Assert(errors.Is(err, ErrFraming), qt.IsTrue, qt.Commentf("err = %v", err))
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, coolMedium22)
		})
	}
}

func TestDecode_Jitter(t *testing.T) {
	c := qt.New(t)

	seq := Encode(coolMedium22)
	for i := range seq {
		// alternate +20% / -20% on every duration
		factor := time.Duration(120)
		if i%2 == 1 {
			factor = 80
		}
		seq[i].Mark = seq[i].Mark * factor / 100
		seq[i].Space = seq[i].Space * factor / 100
	}

	got, err := Decode(seq)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, coolMedium22)
}

func TestDecode_FramingErrors(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name     string
		mutate   func(seq Sequence) Sequence
		wantByte int
		wantBit  int
	}{
		{
			name:     "empty",
			mutate:   func(seq Sequence) Sequence { return nil },
			wantByte: -1,
			wantBit:  -1,
		},
		{
			name: "NEC lead mark",
			mutate: func(seq Sequence) Sequence {
				seq[0] = Pulse{Mark: 9000 * time.Microsecond, Space: 4500 * time.Microsecond}
				return seq
			},
			wantByte: -1,
			wantBit:  -1,
		},
		{
			name: "header space",
			mutate: func(seq Sequence) Sequence {
				seq[0].Space = 3000 * time.Microsecond
				return seq
			},
			wantByte: -1,
			wantBit:  -1,
		},
		{
			name: "bit mark too long",
			mutate: func(seq Sequence) Sequence {
				seq[1+8*3+2].Mark = 600 * time.Microsecond
				return seq
			},
			wantByte: 3,
			wantBit:  2,
		},
		{
			name: "space between zero and one",
			mutate: func(seq Sequence) Sequence {
				seq[1+8*10+7].Space = 700 * time.Microsecond
				return seq
			},
			wantByte: 10,
			wantBit:  7,
		},
		{
			name: "truncated",
			mutate: func(seq Sequence) Sequence {
				return seq[:1+8*16+4]
			},
			wantByte: 16,
			wantBit:  4,
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			seq := tt.mutate(Encode(coolMedium22))

			_, err := Decode(seq)
			c.Assert(IsFramingError(err), qt.IsTrue, qt.Commentf("err = %v", err))

			var ferr *FramingError
			c.Assert(errors.As(err, &ferr), qt.IsTrue)
			c.Assert(ferr.Byte, qt.Equals, tt.wantByte)
			c.Assert(ferr.Bit, qt.Equals, tt.wantBit)
		})
	}
}

func TestDecode_IgnoresTrailer(t *testing.T) {
	c := qt.New(t)

	seq := Encode(coolMedium22)

	// without the trailing mark
	got, err := Decode(seq[:len(seq)-1])
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, coolMedium22)

	// with trailing garbage
	seq = append(seq, Pulse{Mark: 9000 * time.Microsecond, Space: 100 * time.Microsecond})
	got, err = Decode(seq)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, coolMedium22)
}

func TestTolerance(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		tol    Tolerance
		lo, hi time.Duration
	}{
		{Percent(25), 2295 * time.Microsecond, 3825 * time.Microsecond},
		{Percent(0), 3060 * time.Microsecond, 3060 * time.Microsecond},
		{Percent(150), 0, 7650 * time.Microsecond},
		{Absolute(200 * time.Microsecond), 2860 * time.Microsecond, 3260 * time.Microsecond},
		{Absolute(5 * time.Millisecond), 0, 8060 * time.Microsecond},
	}

	for _, tt := range tests {
		c.Run(tt.tol.String(), func(c *qt.C) {
			lo, hi := tt.tol.Bounds(HeaderMark)
			c.Assert(lo, qt.Equals, tt.lo)
			c.Assert(hi, qt.Equals, tt.hi)
			c.Assert(tt.tol.Matches(hi, HeaderMark), qt.IsTrue)
			c.Assert(tt.tol.Matches(hi+time.Microsecond, HeaderMark), qt.IsFalse)
		})
	}
}

func TestDecoder_AbsoluteTolerance(t *testing.T) {
	c := qt.New(t)

	seq := Encode(coolMedium22)
	for i := 1; i < len(seq); i++ {
		seq[i].Mark += 90 * time.Microsecond
	}

	_, err := NewDecoder(Absolute(80 * time.Microsecond)).Decode(seq)
	c.Assert(err, qt.ErrorIs, ErrFraming)

	got, err := NewDecoder(Absolute(100 * time.Microsecond)).Decode(seq)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, coolMedium22)
}

func TestFramingError_Message(t *testing.T) {
	c := qt.New(t)

	err := &FramingError{Pulse: 0, Byte: -1, Bit: -1, Reason: "mark 9000µs outside 3060µs ±25%"}
	c.Assert(err.Error(), qt.Equals, "not a SEZ frame: pulse 0 (header): mark 9000µs outside 3060µs ±25%")

	err = &FramingError{Pulse: 12, Byte: 1, Bit: 3, Reason: "sequence ended after 12 pulses"}
	c.Assert(err.Error(), qt.Equals, fmt.Sprintf("%v: pulse 12 (byte 1 bit 3): sequence ended after 12 pulses", ErrFraming))
}
