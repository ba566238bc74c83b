// Package orchestration sequences hooks and link passes for packages.
// It owns the outer loop: open package → run action → aggregate results.
package orchestration

import (
	"github.com/arthur-debert/scrubjay/pkg/hooks"
	"github.com/arthur-debert/scrubjay/pkg/symlink"
	"github.com/arthur-debert/scrubjay/pkg/types"
)

// Phases of a reinstall, recorded on errors under the "phase" detail
const (
	PhaseUninstall = "uninstall"
	PhaseInstall   = "install"
)

// Options contains execution options shared by every package of a run.
type Options struct {
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS

	// DefaultTarget is the target root of packages whose descriptor sets none
	DefaultTarget string

	// Reporter receives progress notices (optional)
	Reporter types.Reporter
}

// PackageResult contains the execution result for a single package.
type PackageResult struct {
	// Package is the path as given on the command line
	Package string `json:"package" yaml:"package"`

	// Path is the canonical package root, empty if the package could not be opened
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	Action types.Action `json:"action" yaml:"action"`

	// TargetRoot is set when the descriptor overrides the target root
	TargetRoot string `json:"target_root,omitempty" yaml:"target_root,omitempty"`

	Hooks []hooks.Result   `json:"hooks" yaml:"hooks"`
	Links []symlink.Result `json:"links" yaml:"links"`

	// Success indicates if the action completed for this package
	Success bool `json:"success" yaml:"success"`

	// Error if the action failed; ErrorLine is its single-line form
	Error     error  `json:"-" yaml:"-"`
	ErrorLine string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result contains the aggregated results of one action across packages.
type Result struct {
	Action types.Action `json:"action" yaml:"action"`
	DryRun bool         `json:"dry_run" yaml:"dry_run"`

	TotalPackages      int `json:"total" yaml:"total"`
	SuccessfulPackages int `json:"successful" yaml:"successful"`
	FailedPackages     int `json:"failed" yaml:"failed"`

	Packages []PackageResult `json:"packages" yaml:"packages"`

	// Error aggregates every package error
	Error error `json:"-" yaml:"-"`
}

type nopReporter struct{}

func (nopReporter) PackageStarted(types.Action, string, string) {}
func (nopReporter) HookStarted(types.HookEvent, types.HookInvocation) {}
func (nopReporter) LinkProcessed(string, types.LinkOp, types.Link, types.LinkOutcome) {}
func (nopReporter) PackageFinished(types.Action, string) {}
