// Package ir converts SEZ payloads to and from infrared mark/space timings.
//
// A frame on the air is a 38 kHz carrier switched on (mark) and off (space):
//
//	header     mark 3060µs  space 1580µs
//	bit 1      mark  350µs  space 1150µs
//	bit 0      mark  350µs  space  390µs
//	trailer    mark  350µs
//
// The 17 payload bytes follow the header, each sent least significant bit
// first, for 138 pulses in total.
//
// Decoding is speculative: captured signals from any remote can be fed to
// Decode, which returns an error wrapping ErrFraming as soon as a pulse does
// not match. Every comparison accepts a Tolerance window around the nominal
// duration (±25% by default).
package ir
