package ir

import "github.com/muurk/sezir/internal/protocol"

// FrameLength is the number of pulses Encode produces:
// header, one pulse per payload bit, trailing mark
const FrameLength = 1 + protocol.PayloadSize*8 + 1

// Encode converts a payload into the pulse train sent on the carrier.
//
// A header pulse is followed by one pulse per bit, least significant bit of
// each byte first, and a final bit mark with no space after it.
func Encode(p protocol.Payload) Sequence {
	seq := make(Sequence, 0, FrameLength)

	seq = append(seq, Pulse{Mark: HeaderMark, Space: HeaderSpace})

	for _, b := range p {
		for i := 0; i < 8; i++ {
			space := ZeroSpace
			if b&(1<<i) != 0 {
				space = OneSpace
			}
			seq = append(seq, Pulse{Mark: BitMark, Space: space})
		}
	}

	seq = append(seq, Pulse{Mark: TrailMark, Space: 0})

	return seq
}
