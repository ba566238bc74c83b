package testutil

import (
	"io/fs"
	"strings"
	"sync"

	"github.com/arthur-debert/scrubjay/pkg/types"
)

// FaultyFS wraps a types.FS and fails selected operations on selected
// paths. Every call is recorded so tests can assert nothing was touched.
type FaultyFS struct {
	types.FS

	mu     sync.Mutex
	faults map[string]error
	calls  []string
}

// NewFaultyFS wraps base
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{FS: base, faults: make(map[string]error)}
}

// Fail makes op (e.g. "ReadDir", "Symlink") on path return err
func (f *FaultyFS) Fail(op, path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[op+" "+path] = err
	return f
}

// Calls returns every recorded "Op path" in call order
func (f *FaultyFS) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Mutations returns the recorded calls that change the filesystem
func (f *FaultyFS) Mutations() []string {
	var out []string
	for _, c := range f.Calls() {
		for _, op := range []string{"Symlink ", "Remove ", "RemoveAll "} {
			if strings.HasPrefix(c, op) {
				out = append(out, c)
			}
		}
	}
	return out
}

func (f *FaultyFS) check(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op+" "+path)
	return f.faults[op+" "+path]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check("Stat", name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.check("ReadFile", name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("ReadDir", name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	if err := f.check("Symlink", newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultyFS) Readlink(name string) (string, error) {
	if err := f.check("Readlink", name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check("Lstat", name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check("Remove", name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) RemoveAll(path string) error {
	if err := f.check("RemoveAll", path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}
