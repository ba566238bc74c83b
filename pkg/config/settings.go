package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/logging"
	"github.com/arthur-debert/scrubjay/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into settings
const EnvPrefix = "SCRUBJAY_"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings are user level defaults for the command line
type Settings struct {
	Defaults      FlagDefaults   `koanf:"defaults"`
	DefaultTarget string         `koanf:"default_target"`
	Output        OutputSettings `koanf:"output"`
}

// FlagDefaults are the values used for flags not given on the command line
type FlagDefaults struct {
	DryRun  bool `koanf:"dry_run"`
	Force   bool `koanf:"force"`
	Verbose bool `koanf:"verbose"`
}

// OutputSettings control how results are printed
type OutputSettings struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
}

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"defaults.dry_run": false,
		"defaults.force":   false,
		"defaults.verbose": false,
		"default_target":   paths.DefaultTarget,
		"output.format":    FormatText,
		"output.color":     ColorAuto,
	}
}

// LoadSettings layers defaults, the settings file at path and SCRUBJAY_*
// environment variables. An empty path means paths.SettingsPath().
// A missing settings file is not an error.
func LoadSettings(path string) (Settings, error) {
	logger := logging.GetLogger("config")
	if path == "" {
		path = paths.SettingsPath()
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load defaults")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Settings{}, errors.Wrapf(err, errors.ErrSettingsLoad, "failed to load settings from `%s`", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Settings file loaded")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load environment")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrSettingsLoad, "invalid settings")
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// envKey maps SCRUBJAY_OUTPUT__FORMAT to output.format
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Validate checks enumerated settings
func (s Settings) Validate() error {
	switch s.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.ErrSettingsLoad, "unknown output format %q", s.Output.Format).
			WithDetail("allowed", []string{FormatText, FormatJSON, FormatYAML})
	}

	switch s.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrSettingsLoad, "unknown color mode %q", s.Output.Color).
			WithDetail("allowed", []string{ColorAuto, ColorAlways, ColorNever})
	}

	if strings.TrimSpace(s.DefaultTarget) == "" {
		return errors.New(errors.ErrSettingsLoad, "default_target must not be empty")
	}
	return nil
}

// String is used in debug logging
func (s Settings) String() string {
	return fmt.Sprintf("dry_run=%t force=%t verbose=%t default_target=%s format=%s color=%s",
		s.Defaults.DryRun, s.Defaults.Force, s.Defaults.Verbose, s.DefaultTarget, s.Output.Format, s.Output.Color)
}
