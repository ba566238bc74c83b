package hooks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/testutil"
	"github.com/arthur-debert/scrubjay/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func command(cmd string) types.HookInvocation {
	return types.HookInvocation{Kind: types.HookKindCommand, Descriptor: cmd}
}

func script(dir, name string) types.HookInvocation {
	return types.HookInvocation{Kind: types.HookKindScript, Descriptor: name, Path: filepath.Join(dir, name)}
}

func TestRun_CommandRunsInPackageDir(t *testing.T) {
	pkg := testutil.SetupTestPackage(t, "demo")
	r := NewRunner(&types.RunConfig{})

	result, err := r.Run(context.Background(), types.HookPreInstall, command("touch marker && pwd"), pkg.Dir)
	require.NoError(t, err)

	assert.True(t, testutil.FileExists(t, pkg.Path("marker")))
	assert.Equal(t, pkg.Dir, strings.TrimSpace(result.Stdout))
	assert.False(t, result.Skipped)
	assert.Equal(t, types.HookPreInstall, result.Event)
}

func TestRun_Environment(t *testing.T) {
	pkg := testutil.SetupTestPackage(t, "demo")
	r := NewRunner(&types.RunConfig{})

	result, err := r.Run(context.Background(), types.HookPostInstall,
		command(`echo "$SCRUBJAY_PACKAGE|$SCRUBJAY_PACKAGE_DIR|$SCRUBJAY_HOOK|$SCRUBJAY_DRY_RUN"`), pkg.Dir)
	require.NoError(t, err)
	assert.Equal(t, "demo|"+pkg.Dir+"|post_install|false", strings.TrimSpace(result.Stdout))
}

func TestRun_CommandFailure(t *testing.T) {
	pkg := testutil.SetupTestPackage(t, "demo")
	r := NewRunner(&types.RunConfig{})

	t.Run("false", func(t *testing.T) {
		_, err := r.Run(context.Background(), types.HookPreInstall, command("false"), pkg.Dir)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrHookCommand))
		assert.Equal(t, 1, errors.GetErrorDetails(err)["exitCode"])
	})

	t.Run("stderr is reported", func(t *testing.T) {
		_, err := r.Run(context.Background(), types.HookPreInstall, command("echo nope >&2; exit 3"), pkg.Dir)
		require.Error(t, err)
		assert.Equal(t, "hook_command: `echo nope >&2; exit 3` failed: nope", errors.Line(err))
		details := errors.GetErrorDetails(err)
		assert.Equal(t, "nope\n", details["stderr"])
		assert.Equal(t, 3, details["exitCode"])
		assert.Equal(t, "pre_install", details["event"])
	})
}

func TestRun_Script(t *testing.T) {
	pkg := testutil.SetupTestPackage(t, "demo")
	pkg.AddExecutable(t, "setup.sh", "#!/bin/sh\necho \"script in $(pwd)\"\ntouch ran\n")
	r := NewRunner(&types.RunConfig{})

	result, err := r.Run(context.Background(), types.HookPreInstall, script(pkg.Dir, "setup.sh"), pkg.Dir)
	require.NoError(t, err)
	assert.Equal(t, "script in "+pkg.Dir, strings.TrimSpace(result.Stdout))
	assert.True(t, testutil.FileExists(t, pkg.Path("ran")))
}

func TestRun_MissingScript(t *testing.T) {
	pkg := testutil.SetupTestPackage(t, "demo")
	r := NewRunner(&types.RunConfig{})

	_, err := r.Run(context.Background(), types.HookPreInstall, script(pkg.Dir, "missing.sh"), pkg.Dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookCommand))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_DryRunSpawnsNothing(t *testing.T) {
	pkg := testutil.SetupTestPackage(t, "demo")
	r := NewRunner(&types.RunConfig{DryRun: true})

	result, err := r.Run(context.Background(), types.HookPreInstall, command("touch marker"), pkg.Dir)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.False(t, testutil.FileExists(t, pkg.Path("marker")))

	// even a broken hook is not attempted
	result, err = r.Run(context.Background(), types.HookPreInstall, script(pkg.Dir, "missing.sh"), pkg.Dir)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
}

func TestRun_None(t *testing.T) {
	r := NewRunner(nil)

	result, err := r.Run(context.Background(), types.HookPreInstall, types.HookInvocation{Kind: types.HookKindNone}, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Result{Event: types.HookPreInstall, Invocation: types.HookInvocation{Kind: types.HookKindNone}}, result)
}

func TestRun_Cancelled(t *testing.T) {
	pkg := testutil.SetupTestPackage(t, "demo")
	r := NewRunner(&types.RunConfig{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Run(ctx, types.HookPreInstall, command("sleep 10"), pkg.Dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookCommand))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
