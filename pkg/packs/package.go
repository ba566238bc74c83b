package packs

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/scrubjay/pkg/config"
	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/filesystem"
	"github.com/arthur-debert/scrubjay/pkg/logging"
	"github.com/arthur-debert/scrubjay/pkg/paths"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

// Options tune how a package is opened
type Options struct {
	// FS defaults to the real filesystem
	FS types.FS

	// DefaultTarget is used when the descriptor does not set a target.
	// Empty means paths.DefaultTarget.
	DefaultTarget string
}

// Package is an opened package directory bound to the run configuration
// of the current invocation.
type Package struct {
	path          string
	config        config.PackageConfig
	run           *types.RunConfig
	fs            types.FS
	defaultTarget string
	logger        zerolog.Logger
}

// New validates userPath and opens it as a package. The path is made
// absolute and symlinks in it are resolved.
func New(userPath string, run *types.RunConfig, opts Options) (*Package, error) {
	logger := logging.GetLogger("packs")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if run == nil {
		run = &types.RunConfig{}
	}

	if _, err := fsys.Stat(userPath); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrPackageNotFound, "`%s` does not exist", userPath).
				WithDetail("path", userPath)
		}
		return nil, errors.Wrapf(err, errors.ErrPackageNotFound, "cannot access `%s`", userPath).
			WithDetail("path", userPath)
	}

	abs, err := filepath.Abs(userPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPackageNotFound, "cannot resolve `%s`", userPath).
			WithDetail("path", userPath)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPackageNotFound, "cannot resolve `%s`", userPath).
			WithDetail("path", userPath)
	}

	info, err := fsys.Stat(canonical)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPackageNotFound, "cannot access `%s`", userPath).
			WithDetail("path", userPath)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrPackageNotADirectory, "`%s` is not a directory", userPath).
			WithDetail("path", userPath)
	}

	cfg, err := config.LoadPackageConfig(fsys, canonical)
	if err != nil {
		return nil, err
	}

	defaultTarget := opts.DefaultTarget
	if defaultTarget == "" {
		defaultTarget = paths.DefaultTarget
	}

	p := &Package{
		path:          canonical,
		config:        cfg,
		run:           run,
		fs:            fsys,
		defaultTarget: defaultTarget,
		logger:        logger.With().Str("package", canonical).Logger(),
	}
	p.logger.Debug().
		Bool("hasTarget", cfg.HasTarget()).
		Strs("scripts", cfg.ScriptNames()).
		Msg("Opened package")
	return p, nil
}

// Path returns the canonical absolute package root
func (p *Package) Path() string {
	return p.path
}

// Name returns the base name of the package root
func (p *Package) Name() string {
	return filepath.Base(p.path)
}

// Config returns the decoded descriptor
func (p *Package) Config() config.PackageConfig {
	return p.config
}

// RunConfig returns the run configuration the package was opened with
func (p *Package) RunConfig() *types.RunConfig {
	return p.run
}

// FS returns the filesystem the package reads from
func (p *Package) FS() types.FS {
	return p.fs
}

// Hook returns the invocation configured for event
func (p *Package) Hook(event types.HookEvent) types.HookInvocation {
	return p.config.Hook(event).Invocation(p.path)
}

// TargetString is the unexpanded target root: the descriptor's target
// when set, else the default target.
func (p *Package) TargetString() string {
	if p.config.HasTarget() {
		return *p.config.Target
	}
	return p.defaultTarget
}

// TargetRoot expands TargetString. It is evaluated on every call so
// environment changes made by hooks are observed.
func (p *Package) TargetRoot() (string, error) {
	return paths.ExpandShell(p.TargetString())
}

// Matcher builds the ignore matcher for the package root.
func (p *Package) Matcher() (*Matcher, error) {
	overrides, err := BuildOverrides(p.path, p.config)
	if err != nil {
		return nil, err
	}
	return newMatcherBuilder(p.fs, p.path, p.logger).build(overrides)
}
