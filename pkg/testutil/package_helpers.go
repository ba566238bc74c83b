package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPackage represents a test package with its directory structure
type TestPackage struct {
	Root string // Directory holding the packages
	Name string // Package name
	Dir  string // Full path to package directory
}

// SetupTestPackage creates an empty package directory
func SetupTestPackage(t *testing.T, name string) *TestPackage {
	t.Helper()

	tmpDir := t.TempDir()
	// t.TempDir may itself sit behind a symlink (macOS /var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}
	root := filepath.Join(tmpDir, "dotfiles")
	dir := filepath.Join(root, name)

	require.NoError(t, os.MkdirAll(dir, 0755))

	return &TestPackage{
		Root: root,
		Name: name,
		Dir:  dir,
	}
}

// SetupTestPackageWithHome creates a package plus a home directory and
// points HOME and the XDG base directories inside it. The system git
// configuration is disabled.
func SetupTestPackageWithHome(t *testing.T, name string) (*TestPackage, string) {
	t.Helper()

	pkg := SetupTestPackage(t, name)
	homeDir := filepath.Join(filepath.Dir(pkg.Root), "home")

	require.NoError(t, os.MkdirAll(homeDir, 0755))
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(homeDir, ".local", "state"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GOPASS_HOMEDIR", "")

	return pkg, homeDir
}

// AddFile adds a file to the test package, creating parent directories
func (tp *TestPackage) AddFile(t *testing.T, filename, content string) string {
	t.Helper()
	return CreateFile(t, tp.Dir, filename, content)
}

// AddDir adds a directory to the test package
func (tp *TestPackage) AddDir(t *testing.T, name string) string {
	t.Helper()
	return CreateDir(t, tp.Dir, name)
}

// AddExecutable adds an executable file to the test package
func (tp *TestPackage) AddExecutable(t *testing.T, filename, content string) string {
	t.Helper()

	filePath := filepath.Join(tp.Dir, filename)
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0755))
	return filePath
}

// AddDescriptor writes the package's .scrubjay.toml
func (tp *TestPackage) AddDescriptor(t *testing.T, content string) string {
	t.Helper()
	return tp.AddFile(t, ".scrubjay.toml", content)
}

// AddIgnore writes the package's .ignore file
func (tp *TestPackage) AddIgnore(t *testing.T, content string) string {
	t.Helper()
	return tp.AddFile(t, ".ignore", content)
}

// InitGit turns the directory holding the package into a git work tree
func (tp *TestPackage) InitGit(t *testing.T) {
	t.Helper()
	CreateDir(t, tp.Root, ".git")
}

// Path returns the absolute path of an entry inside the package
func (tp *TestPackage) Path(name string) string {
	return filepath.Join(tp.Dir, name)
}
