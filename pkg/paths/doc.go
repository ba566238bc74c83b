// Package paths provides centralized path handling for scrubjay.
//
// It handles:
//
//   - Shell-style expansion of configured target roots (~, $VAR, ${VAR})
//   - XDG locations of the settings file, the log file and the git
//     configuration consulted for global excludes
//   - Small containment helpers (is a path rooted under another, which
//     git work tree holds a directory)
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - HOME: used for ~ expansion
//   - XDG_CONFIG_HOME: location of scrubjay/config.toml and git/ignore
//   - XDG_STATE_HOME: location of scrubjay/scrubjay.log
package paths
