package symlink

import (
	stderrors "errors"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/logging"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

// Result records what happened to one link
type Result struct {
	Link    types.Link        `json:"link" yaml:"link"`
	Op      types.LinkOp      `json:"op" yaml:"op"`
	Outcome types.LinkOutcome `json:"outcome" yaml:"outcome"`
}

// Engine applies link operations under one run configuration
type Engine struct {
	fs     types.FS
	run    *types.RunConfig
	logger zerolog.Logger
}

// NewEngine returns an engine working on fsys
func NewEngine(fsys types.FS, run *types.RunConfig) *Engine {
	if run == nil {
		run = &types.RunConfig{}
	}
	return &Engine{
		fs:     fsys,
		run:    run,
		logger: logging.GetLogger("symlink"),
	}
}

// Apply dispatches to Create or Remove
func (e *Engine) Apply(op types.LinkOp, link types.Link) (Result, error) {
	if op == types.LinkOpRemove {
		return e.Remove(link)
	}
	return e.Create(link)
}

// Create links link.Target to link.Source. An existing target is an error
// unless force is set, in which case it is removed first.
func (e *Engine) Create(link types.Link) (Result, error) {
	result := Result{Link: link, Op: types.LinkOpCreate}
	logger := e.logger.With().Str("source", link.Source).Str("target", link.Target).Logger()

	if e.run.DryRun {
		logger.Debug().Msg("Dry run, not creating link")
		result.Outcome = types.OutcomeWouldCreate
		return result, nil
	}

	info, exists, err := e.lstat(link.Target)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrLinkCreate, "cannot inspect `%s`", link.Target).
			WithDetail("path", link.Target)
	}

	outcome := types.OutcomeCreated
	if exists {
		if !e.run.Force {
			return result, errors.Newf(errors.ErrTargetExists, "`%s` already exists", link.Target).
				WithDetail("path", link.Target)
		}
		logger.Debug().Str("mode", info.Mode().Type().String()).Msg("Force removing existing target")
		if err := e.removeEntry(link.Target, info); err != nil {
			return result, errors.Wrapf(err, errors.ErrLinkCreate, "cannot replace `%s`", link.Target).
				WithDetail("path", link.Target)
		}
		outcome = types.OutcomeReplaced
	}

	if err := e.fs.Symlink(link.Source, link.Target); err != nil {
		return result, errors.Wrapf(err, errors.ErrLinkCreate, "cannot link `%s`", link.Target).
			WithDetail("path", link.Target).
			WithDetail("source", link.Source)
	}
	result.Outcome = outcome
	logger.Info().Str("outcome", string(outcome)).Msg("Created link")
	return result, nil
}

// Remove deletes the symlink at link.Target. An absent target is not an
// error. A target that is not a symlink is only removed with force.
func (e *Engine) Remove(link types.Link) (Result, error) {
	result := Result{Link: link, Op: types.LinkOpRemove}
	logger := e.logger.With().Str("target", link.Target).Logger()

	if e.run.DryRun {
		logger.Debug().Msg("Dry run, not removing link")
		result.Outcome = types.OutcomeWouldRemove
		return result, nil
	}

	info, exists, err := e.lstat(link.Target)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrLinkRemove, "cannot inspect `%s`", link.Target).
			WithDetail("path", link.Target)
	}
	if !exists {
		logger.Debug().Msg("Target already absent")
		result.Outcome = types.OutcomeAbsent
		return result, nil
	}

	outcome := types.OutcomeRemoved
	if info.Mode()&fs.ModeSymlink == 0 {
		if !e.run.Force {
			return result, errors.Newf(errors.ErrNotASymlink, "`%s` is not a symlink", link.Target).
				WithDetail("path", link.Target)
		}
		logger.Warn().Msg("Force removing a target that is not a symlink")
		outcome = types.OutcomeForceRemoved
	}

	if err := e.removeEntry(link.Target, info); err != nil {
		return result, errors.Wrapf(err, errors.ErrLinkRemove, "cannot remove `%s`", link.Target).
			WithDetail("path", link.Target)
	}
	result.Outcome = outcome
	logger.Info().Str("outcome", string(outcome)).Msg("Removed link")
	return result, nil
}

// lstat reports the target's own metadata. A missing target is not an error.
func (e *Engine) lstat(path string) (fs.FileInfo, bool, error) {
	info, err := e.fs.Lstat(path)
	if err == nil {
		return info, true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	return nil, false, err
}

// removeEntry deletes path without following it. Only a real directory is
// removed recursively.
func (e *Engine) removeEntry(path string, info fs.FileInfo) error {
	if info.IsDir() {
		return e.fs.RemoveAll(path)
	}
	return e.fs.Remove(path)
}
