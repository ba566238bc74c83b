// Package filesystem provides filesystem implementations for scrubjay.
//
// This package contains implementations of the types.FS interface. The
// symlink engine and the link enumerator only ever touch the filesystem
// through that interface.
package filesystem
