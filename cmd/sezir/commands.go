package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/muurk/sezir/internal/climate"
	"github.com/muurk/sezir/internal/ir"
	"github.com/muurk/sezir/internal/logging"
	"github.com/muurk/sezir/internal/protocol"
	"github.com/muurk/sezir/internal/remote"
	"github.com/muurk/sezir/internal/ui"
)

// Output formats
const (
	formatPretty = "pretty"
	formatHex    = "hex"
	formatRaw    = "raw"
	formatMode2  = "mode2"
	formatJSON   = "json"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(remoteCmd)
}

// stateJSON is the JSON form of a climate state
type stateJSON struct {
	Power       bool   `json:"power"`
	Mode        string `json:"mode"`
	Temperature int    `json:"temperature"`
	Fan         string `json:"fan"`
}

func toStateJSON(s protocol.ClimateState) *stateJSON {
	return &stateJSON{
		Power:       s.Power,
		Mode:        s.Mode.String(),
		Temperature: s.Temperature,
		Fan:         s.Fan.String(),
	}
}

// frameJSON is the JSON output of encode and decode
type frameJSON struct {
	State      *stateJSON `json:"state,omitempty"`
	Payload    string     `json:"payload,omitempty"`
	Raw        []int32    `json:"raw,omitempty"`
	Pulses     int        `json:"pulses,omitempty"`
	DurationUS int64      `json:"duration_us,omitempty"`
	Tolerance  string     `json:"tolerance,omitempty"`
	Error      string     `json:"error,omitempty"`
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// newController builds a controller from the loaded config with target as
// the current state. The target is checked against the configured traits.
func newController(target protocol.ClimateState, opts ...climate.Option) (*climate.Controller, error) {
	traits, err := cfg.TraitsValue()
	if err != nil {
		return nil, fmt.Errorf("invalid traits: %w", err)
	}
	tol, err := cfg.ToleranceValue()
	if err != nil {
		return nil, fmt.Errorf("invalid tolerance: %w", err)
	}

	opts = append([]climate.Option{climate.WithLogger(logging.GetLogger())}, opts...)
	ctrl, err := climate.New(traits, ir.NewDecoder(tol), opts...)
	if err != nil {
		return nil, err
	}
	if err := ctrl.SetTarget(target); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// commandLine rebuilds the invocation from the flags that were set
func commandLine(cmd *cobra.Command) string {
	parts := []string{cmd.CommandPath()}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		parts = append(parts, fmt.Sprintf("--%s=%s", f.Name, f.Value.String()))
	})
	return strings.Join(parts, " ")
}

// Encode command flags
var (
	encodeOff    bool
	encodeMode   string
	encodeTemp   int
	encodeFan    string
	encodeFormat string
)

// encodeCmd turns settings into a payload and pulse train
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode climate settings into a frame",
	Long: `Encode climate settings into the 17-byte payload and its pulse train.

Settings not given on the command line come from the "defaults" section of
the config file. A mode of "off" or the --off flag switches the unit off.

Formats:
  pretty  annotated payload and pulse summary (default)
  hex     payload bytes only
  raw     ESPHome raw timings (+mark, -space in µs)
  mode2   LIRC mode2 pulse/space lines
  json    state, payload and raw timings`,
	Example: `  # Cool to 22°C with the fan on medium
  sezir encode --mode cool --temp 22 --fan medium

  # Raw timings for an ESPHome remote_transmitter.transmit_raw action
  sezir encode --mode heat --temp 25 --format raw

  # Switch off
  sezir encode --off --format hex`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeOff, "off", false, "Switch the unit off")
	encodeCmd.Flags().StringVar(&encodeMode, "mode", "", "Mode (cool, heat, auto, dry, fan_only, off)")
	encodeCmd.Flags().IntVar(&encodeTemp, "temp", 0, "Target temperature in °C")
	encodeCmd.Flags().StringVar(&encodeFan, "fan", "", "Fan speed (auto, low, medium, high)")
	encodeCmd.Flags().StringVar(&encodeFormat, "format", formatPretty, "Output format (pretty, hex, raw, mode2, json)")
}

// encodeState merges the command line over the configured defaults
func encodeState(cmd *cobra.Command) (protocol.ClimateState, error) {
	state, err := cfg.DefaultState()
	if err != nil {
		return protocol.ClimateState{}, err
	}

	if cmd.Flags().Changed("mode") {
		mode, err := protocol.ParseMode(encodeMode)
		if err != nil {
			return protocol.ClimateState{}, err
		}
		state.Mode = mode
		state.Power = mode != protocol.ModeOff
	}
	if cmd.Flags().Changed("temp") {
		state.Temperature = encodeTemp
	}
	if cmd.Flags().Changed("fan") {
		fan, err := protocol.ParseFanSpeed(encodeFan)
		if err != nil {
			return protocol.ClimateState{}, err
		}
		state.Fan = fan
	}
	if encodeOff {
		state.Power = false
	}

	return state, nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	switch encodeFormat {
	case formatPretty, formatHex, formatRaw, formatMode2, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (expected pretty, hex, raw, mode2 or json)", encodeFormat)
	}

	state, err := encodeState(cmd)
	if err != nil {
		return err
	}

	ctrl, err := newController(state)
	if err != nil {
		return err
	}

	payload, seq, err := ctrl.Frame(state)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch encodeFormat {
	case formatHex:
		fmt.Fprintln(out, payload.String())
	case formatRaw:
		fmt.Fprintln(out, ir.FormatRaw(seq))
	case formatMode2:
		fmt.Fprint(out, ir.FormatMode2(seq))
	case formatJSON:
		return writeJSON(out, frameJSON{
			State:      toStateJSON(state),
			Payload:    payload.String(),
			Raw:        seq.Raw(),
			Pulses:     len(seq),
			DurationUS: seq.Duration().Microseconds(),
		})
	default:
		p := ui.NewPrinter(out)
		p.PrintHeader("Encode", commandLine(cmd))
		p.PrintState(state)
		p.PrintPayload(payload)
		p.PrintSequence(seq)
	}

	return nil
}

// Decode command flags
var (
	decodeHex         string
	decodeFile        string
	decodeTolerance   uint32
	decodeToleranceUS uint32
	decodeFormat      string
)

// decodeCmd turns a captured signal or payload back into settings
var decodeCmd = &cobra.Command{
	Use:   "decode [capture-file]",
	Short: "Decode a captured signal or payload",
	Long: `Decode a captured signal into climate settings.

The capture is read from --file, the positional argument, or stdin. It may be
an ESPHome "Received Raw:" dump, a plain list of signed microsecond timings,
or LIRC mode2 output. Lines starting with # are ignored.

With --hex the pulse stage is skipped and the payload is checked directly.

Signals that do not follow the SEZ timing are reported as "not a SEZ frame".
Frames with a bad header or check bytes are reported with the offending byte.`,
	Example: `  # Decode an ESPHome log line
  echo "Received Raw: 3060, -1580, 350, -1150, ..." | sezir decode

  # Stricter timing
  sezir decode --file capture.txt --tolerance 15

  # Fixed ±200µs window
  sezir decode --file capture.txt --tolerance-us 200

  # Check a payload
  sezir decode --hex 23CB262100406131040000BF9ECEFBFFFF --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeHex, "hex", "", "Payload as hex instead of a pulse capture")
	decodeCmd.Flags().StringVar(&decodeFile, "file", "", "Capture file (default stdin)")
	decodeCmd.Flags().Uint32Var(&decodeTolerance, "tolerance", 25, "Timing tolerance in percent (overrides config)")
	decodeCmd.Flags().Uint32Var(&decodeToleranceUS, "tolerance-us", 0, "Absolute timing tolerance in µs (overrides --tolerance)")
	decodeCmd.Flags().StringVar(&decodeFormat, "format", formatPretty, "Output format (pretty, json)")
}

// decodeToleranceValue picks the tolerance from flags, falling back to the config
func decodeToleranceValue(cmd *cobra.Command) (ir.Tolerance, error) {
	switch {
	case cmd.Flags().Changed("tolerance-us"):
		return ir.Absolute(time.Duration(decodeToleranceUS) * time.Microsecond), nil
	case cmd.Flags().Changed("tolerance"):
		if decodeTolerance >= 100 {
			return ir.Tolerance{}, fmt.Errorf("tolerance must be below 100%%, got %d", decodeTolerance)
		}
		return ir.Percent(decodeTolerance), nil
	default:
		return cfg.ToleranceValue()
	}
}

func readCapture(cmd *cobra.Command, args []string) (string, error) {
	path := decodeFile
	if len(args) == 1 {
		if path != "" {
			return "", fmt.Errorf("give the capture either as argument or with --file, not both")
		}
		path = args[0]
	}

	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read capture: %w", err)
	}
	return string(data), nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	switch decodeFormat {
	case formatPretty, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (expected pretty or json)", decodeFormat)
	}

	tol, err := decodeToleranceValue(cmd)
	if err != nil {
		return err
	}

	var (
		payload protocol.Payload
		seq     ir.Sequence
	)

	if decodeHex != "" {
		if decodeFile != "" || len(args) > 0 {
			return fmt.Errorf("--hex cannot be combined with a capture file")
		}
		payload, err = protocol.ParsePayload(decodeHex)
		if err != nil {
			return err
		}
	} else {
		text, err := readCapture(cmd, args)
		if err != nil {
			return err
		}
		seq, err = ir.ParseRaw(text)
		if err != nil {
			return err
		}

		logging.LogSequence("Parsed capture", len(seq), seq.Duration())

		payload, err = ir.NewDecoder(tol).Decode(seq)
		if err != nil {
			logging.Debug("Capture rejected", zap.Stringer("tolerance", tol), zap.Error(err))
			return reportDecode(cmd, tol, nil, seq, protocol.ClimateState{}, err)
		}
	}

	logging.LogPayload("Decoded payload", payload.Bytes())

	state, err := protocol.DecodePayload(payload)
	return reportDecode(cmd, tol, &payload, seq, state, err)
}

// decodeTips returns troubleshooting hints for a decode failure
func decodeTips(err error) []string {
	switch {
	case ir.IsFramingError(err):
		return []string{
			"Check the capture comes from the SEZ-KD remote",
			"Make sure the capture starts at the 3060µs header mark",
			"Try a wider --tolerance if the receiver is noisy",
		}
	case errors.Is(err, protocol.ErrChecksumMismatch):
		return []string{
			"A bit was misread; capture the signal again",
			"Try a narrower --tolerance to reject noisy pulses",
		}
	case errors.Is(err, protocol.ErrBadHeader):
		return []string{"The signal has SEZ timing but belongs to another Mitsubishi model"}
	default:
		return nil
	}
}

func reportDecode(cmd *cobra.Command, tol ir.Tolerance, payload *protocol.Payload, seq ir.Sequence, state protocol.ClimateState, decodeErr error) error {
	out := cmd.OutOrStdout()

	if decodeFormat == formatJSON {
		result := frameJSON{Pulses: len(seq)}
		if seq != nil {
			result.DurationUS = seq.Duration().Microseconds()
			result.Tolerance = tol.String()
		}
		if payload != nil {
			result.Payload = payload.String()
		}
		if decodeErr != nil {
			result.Error = decodeErr.Error()
		} else {
			result.State = toStateJSON(state)
		}
		if err := writeJSON(out, result); err != nil {
			return err
		}
		return decodeErr
	}

	p := ui.NewPrinter(out)
	params := []ui.Param{}
	if seq != nil {
		params = append(params,
			ui.Param{Key: "Signal", Value: ui.SequenceSummary(seq)},
			ui.Param{Key: "Tolerance", Value: tol.String()},
		)
	}
	p.PrintHeader("Decode", commandLine(cmd), params...)

	if payload != nil {
		p.PrintPayload(*payload)
	}

	if decodeErr != nil {
		title := "Invalid frame"
		if ir.IsFramingError(decodeErr) {
			title = "Not a SEZ frame"
		}
		p.PrintResult(ui.NewFailureResult(title, decodeErr, decodeTips(decodeErr)))
		return decodeErr
	}

	p.PrintState(state)
	return nil
}

// Remote command flags
var (
	remoteOut    string
	remoteFormat string
)

// remoteCmd launches the virtual remote
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Interactive virtual remote",
	Long: `Launch an interactive remote for a SEZ-KD unit.

Keys change the settings, the payload and pulse train update as you go, and
"s" sends the frame. Sent frames are written as text timings to --out, or
printed to stdout when the remote exits.

The remote starts from the "defaults" section of the config file and only
offers the modes, fan speeds and temperature range allowed by its "traits".`,
	Example: `  # Frames to stdout on exit
  sezir remote

  # Append frames to a file in LIRC mode2 format
  sezir remote --out frames.txt --out-format mode2`,
	Args: cobra.NoArgs,
	RunE: runRemote,
}

func init() {
	remoteCmd.Flags().StringVar(&remoteOut, "out", "", "Append sent frames to this file (default stdout on exit)")
	remoteCmd.Flags().StringVar(&remoteFormat, "out-format", remote.FormatRaw, "Frame format (raw, mode2)")
}

func runRemote(cmd *cobra.Command, args []string) error {
	state, err := cfg.DefaultState()
	if err != nil {
		return err
	}

	var (
		buf bytes.Buffer
		w   io.Writer = &buf
	)
	if remoteOut != "" {
		f, err := os.OpenFile(remoteOut, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	tx, err := remote.NewTextTransmitter(w, remoteFormat)
	if err != nil {
		return err
	}

	ctrl, err := newController(state, climate.WithTransmitter(tx))
	if err != nil {
		return err
	}

	model := remote.NewModel(cmd.Context(), ctrl)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("remote failed: %w", err)
	}

	if remoteOut == "" && buf.Len() > 0 {
		if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	if n := tx.Frames(); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d frame(s) sent\n", n)
	}

	return nil
}
