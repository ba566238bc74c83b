package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "scrubjay"

	// SettingsFileName is the user settings file under $XDG_CONFIG_HOME/scrubjay
	SettingsFileName = "config.toml"

	// DefaultTarget is where links land when neither the package nor the
	// user settings name a target root
	DefaultTarget = "~"
)

// SettingsPath returns the location of the user settings file
func SettingsPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppDirName, SettingsFileName)
}

// DefaultGitExcludesPath is the global excludes file git uses when
// core.excludesFile is not set
func DefaultGitExcludesPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "git", "ignore")
}

// IsWithin reports whether path is root itself or lies below it.
// Both paths are cleaned before comparing.
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// FindGitWorkTree walks up from dir looking for a .git entry and returns
// the directory holding it. ok is false when dir is not in a work tree.
func FindGitWorkTree(dir string) (root string, ok bool) {
	current := filepath.Clean(dir)
	for {
		if _, err := os.Lstat(filepath.Join(current, ".git")); err == nil {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}
