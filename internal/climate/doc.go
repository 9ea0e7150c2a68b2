// Package climate connects the SEZ codec to a host climate integration.
//
// The host owns the user-facing thermostat, the IR transmitter hardware and
// the IR receiver. This package only needs two small interfaces from it:
//   - Transmitter: emits a pulse train on a 38 kHz carrier
//   - Publisher: accepts states decoded from captured signals
//
// A Controller keeps the current target state, validates new targets against
// Traits (temperature bounds, offered modes and fan speeds) and runs the
// encode and decode paths:
//
//	ctrl, err := climate.New(climate.DefaultTraits(), nil,
//	    climate.WithTransmitter(tx),
//	    climate.WithPublisher(pub),
//	)
//	...
//	err = ctrl.SetTarget(protocol.ClimateState{Power: true, Mode: protocol.ModeCool, Temperature: 22})
//	err = ctrl.TransmitState(ctx)
//
//	// for every captured signal
//	matched, err := ctrl.OnReceive(ctx, seq)
//
// OnReceive is meant to be tried on every captured signal; signals from other
// remotes return (false, nil).
package climate
