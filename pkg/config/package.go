package config

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/logging"
	"github.com/arthur-debert/scrubjay/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// DescriptorFileName is the package descriptor looked up in every package root
const DescriptorFileName = ".scrubjay.toml"

// Hook is a command or script run at a lifecycle event.
// A present command wins over a script, even when empty; when neither key
// is present the hook does nothing.
type Hook struct {
	Command *string `toml:"command"`
	Script  *string `toml:"script"`
}

// Hooks holds the optional hook of every lifecycle event
type Hooks struct {
	PreInstall    *Hook `toml:"pre_install"`
	PostInstall   *Hook `toml:"post_install"`
	PreUninstall  *Hook `toml:"pre_uninstall"`
	PostUninstall *Hook `toml:"post_uninstall"`
}

// PackageConfig is the decoded package descriptor. The zero value is the
// configuration of a package without a descriptor.
type PackageConfig struct {
	// Target overrides the root under which links are created
	Target *string `toml:"target"`
	Hooks  Hooks   `toml:"hooks"`
}

// Hook returns the hook configured for event, or nil
func (c PackageConfig) Hook(event types.HookEvent) *Hook {
	switch event {
	case types.HookPreInstall:
		return c.Hooks.PreInstall
	case types.HookPostInstall:
		return c.Hooks.PostInstall
	case types.HookPreUninstall:
		return c.Hooks.PreUninstall
	case types.HookPostUninstall:
		return c.Hooks.PostUninstall
	}
	return nil
}

// ScriptNames returns every script referenced by a hook, in event order,
// without duplicates. Hooks whose command takes precedence still count:
// the script file is package machinery either way.
func (c PackageConfig) ScriptNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, event := range types.HookEvents {
		hook := c.Hook(event)
		if hook == nil || hook.Script == nil || *hook.Script == "" || seen[*hook.Script] {
			continue
		}
		seen[*hook.Script] = true
		names = append(names, *hook.Script)
	}
	return names
}

// HasTarget reports whether the descriptor overrides the target root
func (c PackageConfig) HasTarget() bool {
	return c.Target != nil
}

// Invocation resolves how the hook runs for a package rooted at packagePath.
// A nil hook resolves to HookKindNone. Relative scripts resolve against
// packagePath, absolute ones are used as written.
func (h *Hook) Invocation(packagePath string) types.HookInvocation {
	switch {
	case h == nil:
		return types.HookInvocation{Kind: types.HookKindNone}
	case h.Command != nil:
		return types.HookInvocation{Kind: types.HookKindCommand, Descriptor: *h.Command}
	case h.Script != nil && *h.Script != "":
		path := *h.Script
		if !filepath.IsAbs(path) {
			path = filepath.Join(packagePath, path)
		}
		return types.HookInvocation{
			Kind:       types.HookKindScript,
			Descriptor: *h.Script,
			Path:       path,
		}
	}
	return types.HookInvocation{Kind: types.HookKindNone}
}

// ParsePackageConfig decodes descriptor content. Unknown keys are errors.
func ParsePackageConfig(data []byte) (PackageConfig, error) {
	var cfg PackageConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return PackageConfig{}, describeDecodeError(err)
	}
	return cfg, nil
}

// LoadPackageConfig reads the descriptor in dir. A missing descriptor
// yields the default configuration.
func LoadPackageConfig(fsys types.FS, dir string) (PackageConfig, error) {
	logger := logging.GetLogger("config")
	path := filepath.Join(dir, DescriptorFileName)

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("No package descriptor, using defaults")
			return PackageConfig{}, nil
		}
		return PackageConfig{}, errors.Wrapf(err, errors.ErrDescriptorRead, "cannot read `%s`", path).
			WithDetail("path", path)
	}

	cfg, err := ParsePackageConfig(data)
	if err != nil {
		var sjErr *errors.ScrubjayError
		if stderrors.As(err, &sjErr) {
			sjErr.Message = "`" + path + "`: " + sjErr.Message
			sjErr.WithDetail("path", path)
		}
		return PackageConfig{}, err
	}

	logger.Debug().
		Str("path", path).
		Bool("target", cfg.HasTarget()).
		Strs("scripts", cfg.ScriptNames()).
		Msg("Package descriptor loaded")

	return cfg, nil
}

func describeDecodeError(err error) error {
	var decodeErr *toml.DecodeError
	if stderrors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return errors.Newf(errors.ErrDescriptorParse, "line %d, column %d: %s", row, col, decodeErr.Error()).
			WithDetail("line", row).
			WithDetail("column", col)
	}

	var strictErr *toml.StrictMissingError
	if stderrors.As(err, &strictErr) {
		return errors.Newf(errors.ErrDescriptorParse, "unknown keys: %s", strictErr.String())
	}

	return errors.Wrap(err, errors.ErrDescriptorParse, "invalid descriptor")
}
