// Package config loads the two configuration sources scrubjay knows about.
//
// The package descriptor (.scrubjay.toml) lives in a package root and
// declares where the package links land and which lifecycle hooks run.
// It is decoded strictly with go-toml so misspelled keys are reported.
//
// The user settings file ($XDG_CONFIG_HOME/scrubjay/config.toml) holds
// defaults for the command line flags. It is layered with koanf:
//
//  1. Built-in defaults
//  2. The settings file, when present
//  3. SCRUBJAY_* environment variables (SCRUBJAY_DEFAULTS__FORCE=true
//     sets defaults.force)
//
// Later layers override earlier ones.
package config
