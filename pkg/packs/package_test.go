package packs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scrubjay/pkg/errors"
	"github.com/arthur-debert/scrubjay/pkg/testutil"
	"github.com/arthur-debert/scrubjay/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pkg, _ := testutil.SetupTestPackageWithHome(t, "vim")
	pkg.AddDescriptor(t, `target = "/tmp/dest"`)

	run := &types.RunConfig{Action: types.ActionInstall}
	p, err := New(pkg.Dir, run, Options{})
	require.NoError(t, err)

	assert.Equal(t, pkg.Dir, p.Path())
	assert.Equal(t, "vim", p.Name())
	assert.Same(t, run, p.RunConfig())
	assert.True(t, p.Config().HasTarget())
	assert.Equal(t, "/tmp/dest", p.TargetString())
}

func TestNew_RelativeAndSymlinkedPath(t *testing.T) {
	pkg, _ := testutil.SetupTestPackageWithHome(t, "vim")
	alias := filepath.Join(pkg.Root, "alias")
	testutil.CreateSymlink(t, pkg.Dir, alias)

	p, err := New(alias, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, pkg.Dir, p.Path())
	assert.NotNil(t, p.RunConfig())

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(pkg.Root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	p, err = New("vim", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, pkg.Dir, p.Path())
}

func TestNew_Errors(t *testing.T) {
	pkg, _ := testutil.SetupTestPackageWithHome(t, "vim")
	file := testutil.CreateFile(t, pkg.Root, "plain.txt", "x")

	tests := []struct {
		name string
		path string
		code errors.ErrorCode
	}{
		{name: "missing", path: filepath.Join(pkg.Root, "nope"), code: errors.ErrPackageNotFound},
		{name: "dangling symlink", path: filepath.Join(pkg.Root, "dangling"), code: errors.ErrPackageNotFound},
		{name: "file", path: file, code: errors.ErrPackageNotADirectory},
	}
	testutil.CreateSymlink(t, filepath.Join(pkg.Root, "gone"), filepath.Join(pkg.Root, "dangling"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.path, nil, Options{})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, tt.path, errors.GetErrorDetails(err)["path"])
		})
	}
}

func TestNew_BadDescriptor(t *testing.T) {
	pkg, _ := testutil.SetupTestPackageWithHome(t, "vim")
	pkg.AddDescriptor(t, `targt = "/tmp"`)

	_, err := New(pkg.Dir, nil, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDescriptorParse))
}

func TestTargetRoot(t *testing.T) {
	t.Run("defaults to home", func(t *testing.T) {
		pkg, home := testutil.SetupTestPackageWithHome(t, "vim")
		p, err := New(pkg.Dir, nil, Options{})
		require.NoError(t, err)

		assert.Equal(t, "~", p.TargetString())
		root, err := p.TargetRoot()
		require.NoError(t, err)
		assert.Equal(t, home, root)
	})

	t.Run("settings default", func(t *testing.T) {
		pkg, home := testutil.SetupTestPackageWithHome(t, "vim")
		p, err := New(pkg.Dir, nil, Options{DefaultTarget: "~/.config"})
		require.NoError(t, err)

		root, err := p.TargetRoot()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config"), root)
	})

	t.Run("descriptor wins and is re-evaluated", func(t *testing.T) {
		pkg, _ := testutil.SetupTestPackageWithHome(t, "vim")
		pkg.AddDescriptor(t, `target = "$SCRUBJAY_TEST_DEST/links"`)
		t.Setenv("SCRUBJAY_TEST_DEST", "/first")

		p, err := New(pkg.Dir, nil, Options{DefaultTarget: "/ignored"})
		require.NoError(t, err)

		root, err := p.TargetRoot()
		require.NoError(t, err)
		assert.Equal(t, "/first/links", root)

		t.Setenv("SCRUBJAY_TEST_DEST", "/second")
		root, err = p.TargetRoot()
		require.NoError(t, err)
		assert.Equal(t, "/second/links", root)
	})

	t.Run("unset variable", func(t *testing.T) {
		pkg, _ := testutil.SetupTestPackageWithHome(t, "vim")
		pkg.AddDescriptor(t, `target = "$SCRUBJAY_TEST_SURELY_UNSET"`)

		p, err := New(pkg.Dir, nil, Options{})
		require.NoError(t, err)

		_, err = p.TargetRoot()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrShellExpansion))
	})
}

func TestPackageHook(t *testing.T) {
	pkg, _ := testutil.SetupTestPackageWithHome(t, "vim")
	pkg.AddDescriptor(t, `
[hooks.pre_install]
script = "setup.sh"

[hooks.post_install]
command = "echo done"
`)
	p, err := New(pkg.Dir, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, types.HookInvocation{
		Kind:       types.HookKindScript,
		Descriptor: "setup.sh",
		Path:       pkg.Path("setup.sh"),
	}, p.Hook(types.HookPreInstall))
	assert.Equal(t, types.HookKindCommand, p.Hook(types.HookPostInstall).Kind)
	assert.Equal(t, types.HookKindNone, p.Hook(types.HookPreUninstall).Kind)
}
