package types

import (
	"io/fs"
)

// FS is the filesystem interface required for scrubjay operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Lstat(name string) (fs.FileInfo, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// Reporter receives progress notices from the orchestrator. Implementations
// decide what to show; the orchestrator calls every method regardless of
// verbosity.
type Reporter interface {
	// PackageStarted is called before the first hook of an action runs.
	// targetRoot is empty when the package does not override its target.
	PackageStarted(action Action, packagePath, targetRoot string)

	// HookStarted is called before a hook is run (or skipped in dry-run).
	HookStarted(event HookEvent, invocation HookInvocation)

	// LinkProcessed is called after each link is created or removed.
	LinkProcessed(packagePath string, op LinkOp, link Link, outcome LinkOutcome)

	// PackageFinished is called when an action completed successfully.
	PackageFinished(action Action, packagePath string)
}
