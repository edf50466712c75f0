// Package fsys is the filesystem collaborator used by the walker and the
// renamer: list a directory, test whether a path exists, rename without
// replacing, and create directories.
package fsys

import (
	"errors"
	"io/fs"
	"os"
)

// OS implements the filesystem operations against the local OS.
// Syscalls are held in function fields so tests can inject failures.
type OS struct {
	readDir   func(name string) ([]os.DirEntry, error)
	stat      func(name string) (os.FileInfo, error)
	lstat     func(name string) (os.FileInfo, error)
	rename    func(oldpath, newpath string) error
	noReplace func(oldpath, newpath string) error
	mkdirAll  func(path string, perm os.FileMode) error
}

// NewOS returns an OS backed by the real syscalls.
func NewOS() *OS {
	return &OS{
		readDir:   readDirUnsorted,
		stat:      os.Stat,
		lstat:     os.Lstat,
		rename:    os.Rename,
		noReplace: renameNoReplace,
		mkdirAll:  os.MkdirAll,
	}
}

// ReadDir lists the immediate children of dir in the order the OS returns
// them.
func (o *OS) ReadDir(dir string) ([]fs.DirEntry, error) {
	return o.readDir(dir)
}

// Stat returns file info for path, following symlinks.
func (o *OS) Stat(path string) (fs.FileInfo, error) {
	return o.stat(path)
}

// Exists reports whether anything, including a dangling symlink, is at path.
// Errors other than "not exist" are returned.
func (o *OS) Exists(path string) (bool, error) {
	_, err := o.lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Rename moves oldPath to newPath and never replaces an existing newPath: in
// that case the returned error matches [fs.ErrExist].
//
// On Linux the kernel enforces this atomically. Where that is unsupported the
// destination is checked first and a plain rename follows, which leaves a
// window for another process to create newPath in between.
func (o *OS) Rename(oldPath, newPath string) error {
	err := o.noReplace(oldPath, newPath)
	if !errors.Is(err, errNoReplaceUnsupported) {
		return err
	}

	exists, err := o.Exists(newPath)
	if err != nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: err}
	}
	if exists {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: fs.ErrExist}
	}
	return o.rename(oldPath, newPath)
}

// readDirUnsorted is os.ReadDir without the sort by name.
func readDirUnsorted(name string) ([]os.DirEntry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

// MkdirAll creates path and any missing parents.
func (o *OS) MkdirAll(path string) error {
	return o.mkdirAll(path, 0o755)
}

// SupportsNoReplace reports whether an atomic no-replace rename works in dir.
// It creates and removes two scratch files.
func (o *OS) SupportsNoReplace(dir string) (bool, error) {
	src, err := os.CreateTemp(dir, ".namesweep-probe-*")
	if err != nil {
		return false, err
	}
	srcPath := src.Name()
	_ = src.Close()
	defer os.Remove(srcPath)

	dst, err := os.CreateTemp(dir, ".namesweep-probe-*")
	if err != nil {
		return false, err
	}
	dstPath := dst.Name()
	_ = dst.Close()
	defer os.Remove(dstPath)

	err = o.noReplace(srcPath, dstPath)
	switch {
	case errors.Is(err, errNoReplaceUnsupported):
		return false, nil
	case errors.Is(err, fs.ErrExist):
		return true, nil
	case err == nil:
		// The kernel replaced the destination; treat as unsupported.
		return false, nil
	default:
		return false, err
	}
}
