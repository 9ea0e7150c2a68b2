// Package ui provides terminal output components for the sezir CLI.
//
// Components are rendered with Lipgloss and follow a "render once and print"
// pattern; the interactive remote lives in package remote.
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, failure and warning boxes
//   - RenderState: a climate state panel
//   - RenderPayload: the 17 payload bytes annotated with their meaning,
//     including header and inverse-byte mismatches
//   - RenderSequence: pulse count, duration and a short pulse preview
//
// Commands write through a Printer so their output can be captured:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Encode", "sezir encode", ui.Param{Key: "Mode", Value: "cool"})
//	p.PrintPayload(payload)
//	p.PrintSequence(seq)
//
// # Logging Integration
//
// Logging is controlled via the SEZIR_LOG_LEVEL environment variable or the
// --log-level flag. When unset, zap logging is silent so the styled output is
// displayed cleanly.
package ui
