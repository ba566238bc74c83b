// Package packs opens package directories and enumerates the links they
// produce.
//
// A package is a directory whose immediate entries are each linked into a
// target root. Enumeration is depth 1: a subdirectory is linked as a unit,
// never descended into. Entries are left out when a rule source excludes
// them. Sources are consulted in this order and the first to decide wins:
//
//  1. overrides: the .ignore file, the .scrubjay.toml descriptor and every
//     hook script are always excluded
//  2. the package's .ignore file
//  3. inside a git work tree only: the package's .gitignore, then the
//     global excludes file named by core.excludesFile
//
// Ignore files use gitignore syntax. Within one file the last matching
// pattern wins and "!pattern" re-includes. Hidden entries are linked like
// any other.
package packs
