// Package testutil provides utilities for testing scrubjay components.
//
// Key components:
//   - File helpers: create files, directories and symlinks under t.TempDir
//   - TestPackage: declarative package setup with an isolated home directory
//   - FaultyFS: a types.FS wrapper that injects errors per operation and path
//   - RecordingReporter: a types.Reporter that keeps every notice it receives
//
// Usage guidelines:
//   - Tests that touch links should use SetupTestPackageWithHome so HOME and
//     the XDG directories point inside the test's temp dir
//   - All test data should be defined inline, not in external files
package testutil
