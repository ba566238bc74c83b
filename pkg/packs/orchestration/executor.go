package orchestration

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/filesystem"
	"github.com/arthur-debert/scrubjay/pkg/hooks"
	"github.com/arthur-debert/scrubjay/pkg/logging"
	"github.com/arthur-debert/scrubjay/pkg/packs"
	"github.com/arthur-debert/scrubjay/pkg/symlink"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

// Execute opens every package in order and runs the action of run on it.
// A failed package does not stop the ones after it; every error is
// collected into the returned error.
func Execute(ctx context.Context, run *types.RunConfig, packagePaths []string, opts Options) (*Result, error) {
	logger := logging.GetLogger("orchestration")
	logger.Debug().
		Str("action", string(run.Action)).
		Strs("packages", packagePaths).
		Bool("dryRun", run.DryRun).
		Bool("force", run.Force).
		Msg("Starting package execution")

	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}

	result := &Result{
		Action:        run.Action,
		DryRun:        run.DryRun,
		TotalPackages: len(packagePaths),
		Packages:      make([]PackageResult, 0, len(packagePaths)),
	}

	var merr *multierror.Error
	for _, path := range packagePaths {
		if err := ctx.Err(); err != nil {
			merr = multierror.Append(merr, errors.Wrap(err, errors.ErrInternal, "interrupted"))
			break
		}

		pkgResult := executeOne(ctx, run, path, opts)
		if pkgResult.Success {
			result.SuccessfulPackages++
		} else {
			result.FailedPackages++
			merr = multierror.Append(merr, pkgResult.Error)
			logger.Error().
				Err(pkgResult.Error).
				Str("package", path).
				Msg("Package failed")
		}
		result.Packages = append(result.Packages, *pkgResult)
	}

	result.Error = merr.ErrorOrNil()

	logger.Info().
		Str("action", string(run.Action)).
		Int("totalPackages", result.TotalPackages).
		Int("successful", result.SuccessfulPackages).
		Int("failed", result.FailedPackages).
		Msg("Package execution completed")

	return result, result.Error
}

func executeOne(ctx context.Context, run *types.RunConfig, path string, opts Options) *PackageResult {
	pkg, err := packs.New(path, run, packs.Options{
		FS:            opts.FileSystem,
		DefaultTarget: opts.DefaultTarget,
	})
	if err != nil {
		return &PackageResult{
			Package:   path,
			Action:    run.Action,
			Error:     err,
			ErrorLine: errors.Line(err),
		}
	}

	pkgResult, _ := Run(ctx, run.Action, pkg, opts)
	pkgResult.Package = path
	return pkgResult
}

// Install runs pre_install, links every entry, then runs post_install.
func Install(ctx context.Context, pkg *packs.Package, opts Options) (*PackageResult, error) {
	return Run(ctx, types.ActionInstall, pkg, opts)
}

// Uninstall runs pre_uninstall, removes every link, then runs post_uninstall.
func Uninstall(ctx context.Context, pkg *packs.Package, opts Options) (*PackageResult, error) {
	return Run(ctx, types.ActionUninstall, pkg, opts)
}

// Reinstall runs the uninstall sequence followed by the install sequence.
// Errors carry the phase they occurred in.
func Reinstall(ctx context.Context, pkg *packs.Package, opts Options) (*PackageResult, error) {
	return Run(ctx, types.ActionReinstall, pkg, opts)
}

// Run performs action on pkg. It stops at the first error; nothing done
// before the error is rolled back. The returned result is never nil.
func Run(ctx context.Context, action types.Action, pkg *packs.Package, opts Options) (*PackageResult, error) {
	r := newActionRunner(ctx, action, pkg, opts)

	err := r.run()
	if err != nil {
		r.result.Error = err
		r.result.ErrorLine = errors.Line(err)
		r.logger.Debug().Err(err).Msg("Action failed")
		return r.result, err
	}

	r.result.Success = true
	r.reporter.PackageFinished(action, pkg.Path())
	return r.result, nil
}

// step is one stage of an action: a hook or a link pass
type step struct {
	event types.HookEvent
	op    types.LinkOp
}

var (
	uninstallSteps = []step{
		{event: types.HookPreUninstall},
		{op: types.LinkOpRemove},
		{event: types.HookPostUninstall},
	}
	installSteps = []step{
		{event: types.HookPreInstall},
		{op: types.LinkOpCreate},
		{event: types.HookPostInstall},
	}
)

type actionRunner struct {
	ctx      context.Context
	action   types.Action
	pkg      *packs.Package
	engine   *symlink.Engine
	hooks    *hooks.Runner
	reporter types.Reporter
	result   *PackageResult
	logger   zerolog.Logger
}

func newActionRunner(ctx context.Context, action types.Action, pkg *packs.Package, opts Options) *actionRunner {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = pkg.FS()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	return &actionRunner{
		ctx:      ctx,
		action:   action,
		pkg:      pkg,
		engine:   symlink.NewEngine(fsys, pkg.RunConfig()),
		hooks:    hooks.NewRunner(pkg.RunConfig()),
		reporter: reporter,
		result: &PackageResult{
			Package: pkg.Path(),
			Path:    pkg.Path(),
			Action:  action,
			Hooks:   []hooks.Result{},
			Links:   []symlink.Result{},
		},
		logger: logging.GetLogger("orchestration").With().
			Str("action", string(action)).
			Str("package", pkg.Path()).
			Logger(),
	}
}

func (r *actionRunner) run() error {
	// The target root is only announced when the descriptor sets one, and
	// a broken one fails the action before any hook runs.
	targetRoot := ""
	if r.pkg.Config().HasTarget() {
		root, err := r.pkg.TargetRoot()
		if err != nil {
			return err
		}
		targetRoot = root
	}
	r.result.TargetRoot = targetRoot
	r.reporter.PackageStarted(r.action, r.pkg.Path(), targetRoot)

	switch r.action {
	case types.ActionInstall:
		return r.steps(installSteps)
	case types.ActionUninstall:
		return r.steps(uninstallSteps)
	case types.ActionReinstall:
		if err := r.steps(uninstallSteps); err != nil {
			return withPhase(err, PhaseUninstall)
		}
		if err := r.steps(installSteps); err != nil {
			return withPhase(err, PhaseInstall)
		}
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown action %q", r.action)
}

func (r *actionRunner) steps(steps []step) error {
	for _, s := range steps {
		var err error
		if s.op != "" {
			err = r.pass(s.op)
		} else {
			err = r.hook(s.event)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *actionRunner) hook(event types.HookEvent) error {
	invocation := r.pkg.Hook(event)
	if invocation.Kind == types.HookKindNone {
		return nil
	}

	r.reporter.HookStarted(event, invocation)
	result, err := r.hooks.Run(r.ctx, event, invocation, r.pkg.Path())
	r.result.Hooks = append(r.result.Hooks, result)
	return err
}

// pass walks the package afresh and applies op to every link.
func (r *actionRunner) pass(op types.LinkOp) error {
	done := logging.LogOperationStart(r.logger, string(op)+" pass")
	defer done()

	for link, err := range r.pkg.Links() {
		if err != nil {
			return err
		}
		result, err := r.engine.Apply(op, link)
		if err != nil {
			return err
		}
		r.result.Links = append(r.result.Links, result)
		r.reporter.LinkProcessed(r.pkg.Path(), op, link, result.Outcome)
	}
	return nil
}

// withPhase keeps the error kind and records where in a reinstall it happened.
func withPhase(err error, phase string) error {
	return errors.Wrapf(err, errors.GetErrorCode(err), "during %s", phase).
		WithDetail("phase", phase)
}
