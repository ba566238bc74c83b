// Package symlink creates and removes the links of a package.
//
// Existence is always checked with Lstat, so a dangling symlink at a target
// counts as existing and a symlink is never followed when removed. Parent
// directories of a target are not created.
//
// Force is asymmetric. On create it replaces whatever sits at the target.
// On remove it also deletes entries that are not symlinks, which may be
// user data.
package symlink
