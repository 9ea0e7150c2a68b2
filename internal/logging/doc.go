// Package logging provides structured logging for the sezir tools.
//
// This package wraps zap logger with convenience functions for common logging
// patterns. The codec packages (protocol, ir) never log; the climate
// controller and the CLI take their logger from here.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Payload hex dumps, pulse train summaries, rejected signals
//   - Info: Frames sent and states received
//   - Warn: Malformed frames that passed framing
//   - Error: Transmitter or publisher failures
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("State received",
//	    zap.Stringer("state", state),
//	)
//
// # Payload Logging
//
//	logging.LogPayload("Encoded payload", payload.Bytes())
//	logging.LogSequence("Encoded pulses", len(seq), seq.Duration())
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize(level); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When no level is given and SEZIR_LOG_LEVEL is unset the logger is a no-op,
// so CLI output stays clean. Logs go to stderr in console format.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
