package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/sezir/internal/config"
	"github.com/muurk/sezir/internal/logging"
	"github.com/muurk/sezir/internal/ui"
)

var errCancelled = errors.New("cancelled")

// configCmd manages the config file. It does not load the file first, so a
// broken config can still be replaced with init --force.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Manage the sezir configuration file.

The file holds the unit's traits (temperature range, modes and fan speeds),
the decode tolerance, the default settings used by encode and remote, and the
log level. It lives in the user config directory unless --config is given.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(logLevel)
	},
}

var configForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		data, err := loaded.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file without asking")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		ok := ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Config file exists", []string{
			path,
			"The existing file will be replaced with defaults",
		})
		if !ok {
			return errCancelled
		}
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}
	logging.Info("Config written", zap.String("path", path))

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintResult(ui.NewSuccessResult("Config written",
		ui.Param{Key: "Path", Value: path},
		ui.Param{Key: "Version", Value: fmt.Sprintf("%d", config.CurrentVersion)},
	))
	return nil
}
