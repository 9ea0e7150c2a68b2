// Sezir encodes and decodes the infrared remote protocol of Mitsubishi
// SEZ-KD ducted air conditioners.
//
// It turns climate settings into the 17-byte payload and pulse train sent by
// the stock remote, decodes captured signals back into settings, and offers a
// virtual remote that writes frames for replay tooling.
//
// Usage:
//
//	sezir [command] [flags]
//
// See 'sezir --help' for available commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/sezir/internal/config"
	"github.com/muurk/sezir/internal/logging"
	"github.com/muurk/sezir/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
)

// cfg is the loaded configuration, set before any subcommand runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sezir",
	Short: "Mitsubishi SEZ-KD IR protocol tool",
	Long: `Encode and decode the infrared protocol of Mitsubishi SEZ-KD ducted
air conditioners.

A frame is 17 bytes: a constant header, the power, mode, temperature and fan
settings, and the bitwise inverse of the settings as a check. It is sent as
a pulse-distance train on a 38 kHz carrier.`,
	Version: version.Version,
	Example: `  # Pulse train for cooling to 22°C
  sezir encode --mode cool --temp 22 --format raw

  # Decode an ESPHome dump
  sezir decode --file capture.txt

  # Check a payload by hand
  sezir decode --hex "23 CB 26 21 00 40 61 31 04 00 00 BF 9E CE FB FF FF"

  # Interactive remote writing frames to a file
  sezir remote --out frames.txt`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)

	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file, then starts logging. The --log-level
// flag wins over the environment, which wins over the config file.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	level := logLevel
	if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = cfg.LogLevel
	}
	return initLogging(level)
}

func initLogging(level string) error {
	if level != "" {
		if _, err := logging.ParseLevel(level); err != nil {
			return err
		}
	}
	return logging.Initialize(level)
}

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			data, err := json.MarshalIndent(version.Get(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sezir %s\n", version.Full())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build information as JSON")
}
