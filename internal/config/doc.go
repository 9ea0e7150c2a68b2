// Package config provides user configuration management for sezir.
//
// The configuration is a small YAML file holding the receive tolerance, the
// traits offered to the host (temperature bounds, modes, fan speeds), the
// log level and the default state used by the virtual remote.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/sezir/config.yaml or $HOME/.config/sezir/config.yaml
//   - macOS: $HOME/.config/sezir/config.yaml
//   - Windows: %LOCALAPPDATA%\sezir\config.yaml
//
// Every command also accepts an explicit path.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tol, _ := cfg.ToleranceValue()
//	decoder := ir.NewDecoder(tol)
//
//	traits, _ := cfg.TraitsValue()
//	ctrl, err := climate.New(traits, decoder)
//
// # Thread Safety
//
// Save holds a package mutex and writes atomically through a temporary file.
// A loaded Config is a plain value and is not synchronised.
package config
