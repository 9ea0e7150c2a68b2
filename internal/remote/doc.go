// Package remote implements an interactive virtual remote for SEZ-KD units
// using Bubble Tea.
//
// The remote edits a draft climate state with single key presses, shows the
// encoded payload and pulse train as they change and sends the frame through
// a climate.Controller:
//
//	p     toggle power (the last mode is restored when switching back on)
//	m     cycle through the modes offered by the traits
//	+ -   raise or lower the target within the traits' range
//	f     cycle the fan speed
//	s     send the current frame
//	q     quit
//
// TextTransmitter is a climate.Transmitter that writes frames as ESPHome raw
// lists or LIRC mode2 text, which lets the remote feed replay tooling without
// IR hardware.
package remote
