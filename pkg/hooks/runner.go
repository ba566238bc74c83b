package hooks

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/logging"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

// Environment variables set for every hook
const (
	EnvPackage    = "SCRUBJAY_PACKAGE"
	EnvPackageDir = "SCRUBJAY_PACKAGE_DIR"
	EnvHook       = "SCRUBJAY_HOOK"
	EnvDryRun     = "SCRUBJAY_DRY_RUN"
)

const waitDelay = 2 * time.Second

// Result records one hook run
type Result struct {
	Event      types.HookEvent      `json:"event" yaml:"event"`
	Invocation types.HookInvocation `json:"invocation" yaml:"invocation"`
	// Skipped is set in dry-run mode
	Skipped bool   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Stdout  string `json:"stdout,omitempty" yaml:"stdout,omitempty"`
	Stderr  string `json:"stderr,omitempty" yaml:"stderr,omitempty"`
}

// Runner executes hooks under one run configuration
type Runner struct {
	run    *types.RunConfig
	shell  string
	logger zerolog.Logger
}

// NewRunner creates a runner using /bin/sh for command hooks
func NewRunner(run *types.RunConfig) *Runner {
	if run == nil {
		run = &types.RunConfig{}
	}
	return &Runner{
		run:    run,
		shell:  "sh",
		logger: logging.GetLogger("hooks"),
	}
}

// Run executes invocation for event in packagePath. A HookKindNone
// invocation does nothing and returns a zero Result.
func (r *Runner) Run(ctx context.Context, event types.HookEvent, invocation types.HookInvocation, packagePath string) (Result, error) {
	result := Result{Event: event, Invocation: invocation}
	if invocation.Kind == types.HookKindNone {
		return result, nil
	}

	logger := r.logger.With().
		Str("event", string(event)).
		Str("kind", string(invocation.Kind)).
		Str("hook", invocation.Descriptor).
		Logger()

	if r.run.DryRun {
		logger.Debug().Msg("Dry run, not running hook")
		result.Skipped = true
		return result, nil
	}

	var cmd *exec.Cmd
	switch invocation.Kind {
	case types.HookKindCommand:
		cmd = exec.CommandContext(ctx, r.shell, "-c", invocation.Descriptor)
		logging.LogCommand(logger, r.shell, []string{"-c", invocation.Descriptor})
	case types.HookKindScript:
		cmd = exec.CommandContext(ctx, invocation.Path)
		logging.LogCommand(logger, invocation.Path, nil)
	default:
		return result, errors.Newf(errors.ErrInvalidInput, "unknown hook kind %q", invocation.Kind)
	}

	cmd.Dir = packagePath
	// children left behind by a killed shell may hold the output pipes open
	cmd.WaitDelay = waitDelay
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("%s=%s", EnvPackage, filepath.Base(packagePath)),
		fmt.Sprintf("%s=%s", EnvPackageDir, packagePath),
		fmt.Sprintf("%s=%s", EnvHook, event),
		fmt.Sprintf("%s=%s", EnvDryRun, strconv.FormatBool(r.run.DryRun)),
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	done := logging.LogOperationStart(logger, "hook "+string(event))
	err := cmd.Run()
	done()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if stdout.Len() > 0 {
		logger.Debug().Str("output", result.Stdout).Msg("Hook stdout")
	}
	if stderr.Len() > 0 {
		logger.Debug().Str("output", result.Stderr).Msg("Hook stderr")
	}

	if err != nil {
		return result, r.failure(ctx, event, invocation, err, result.Stderr)
	}
	return result, nil
}

func (r *Runner) failure(ctx context.Context, event types.HookEvent, invocation types.HookInvocation, err error, stderr string) error {
	var exitErr *exec.ExitError
	var hookErr *errors.ScrubjayError

	switch {
	case ctx.Err() != nil:
		hookErr = errors.Wrapf(ctx.Err(), errors.ErrHookCommand, "`%s` interrupted", invocation.Descriptor)
	case stderrors.As(err, &exitErr):
		message := strings.TrimSpace(stderr)
		if message == "" {
			message = exitErr.Error()
		}
		hookErr = errors.Newf(errors.ErrHookCommand, "`%s` failed: %s", invocation.Descriptor, message).
			WithDetail("exitCode", exitErr.ExitCode())
	default:
		hookErr = errors.Wrapf(err, errors.ErrHookCommand, "`%s` failed", invocation.Descriptor)
	}

	r.logger.Error().
		Err(err).
		Str("event", string(event)).
		Str("hook", invocation.Descriptor).
		Str("stderr", stderr).
		Msg("Hook failed")

	return hookErr.
		WithDetail("event", string(event)).
		WithDetail("descriptor", invocation.Descriptor).
		WithDetail("stderr", stderr)
}
