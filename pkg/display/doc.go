// Package display renders run progress and results for the terminal and
// for machine readers (JSON, YAML).
package display
