// Package types defines the core types and interfaces shared across scrubjay.
// This includes the run configuration handed in by the CLI, the Link value
// produced while enumerating a package, lifecycle hook events and the
// Reporter interface used to surface progress.
package types
