// Package hooks runs package lifecycle hooks.
//
// A command hook runs through "sh -c" with the package root as working
// directory. A script hook executes the file directly, without a shell.
// Output is captured, never streamed. There is no timeout: a hook runs
// until it exits or its context is cancelled.
package hooks
