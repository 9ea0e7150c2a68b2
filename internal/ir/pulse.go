package ir

import (
	"fmt"
	"time"
)

// Pulse is one carrier burst (Mark) followed by one gap (Space)
type Pulse struct {
	Mark  time.Duration
	Space time.Duration
}

func (p Pulse) String() string {
	return fmt.Sprintf("+%d -%d", p.Mark.Microseconds(), p.Space.Microseconds())
}

// Sequence is an ordered train of pulses as sent or captured
type Sequence []Pulse

// Duration returns the total on-air time of the sequence
func (s Sequence) Duration() time.Duration {
	var total time.Duration
	for _, p := range s {
		total += p.Mark + p.Space
	}
	return total
}

// Raw returns the sequence as signed microseconds: marks positive, spaces
// negative. Zero-length spaces are omitted.
func (s Sequence) Raw() []int32 {
	raw := make([]int32, 0, len(s)*2)
	for _, p := range s {
		raw = append(raw, int32(p.Mark/time.Microsecond))
		if p.Space > 0 {
			raw = append(raw, -int32(p.Space/time.Microsecond))
		}
	}
	return raw
}

// FromRaw builds a sequence from signed microseconds. Adjacent values with
// the same sign are merged, a leading space is dropped and a trailing mark
// gets a zero space.
func FromRaw(raw []int32) Sequence {
	seq := make(Sequence, 0, len(raw)/2+1)
	var cur Pulse
	haveMark := false

	for _, v := range raw {
		switch {
		case v > 0:
			if haveMark && cur.Space > 0 {
				seq = append(seq, cur)
				cur = Pulse{}
			}
			cur.Mark += time.Duration(v) * time.Microsecond
			haveMark = true
		case v < 0:
			if !haveMark {
				continue
			}
			cur.Space += time.Duration(-v) * time.Microsecond
		}
	}

	if haveMark {
		seq = append(seq, cur)
	}
	return seq
}
