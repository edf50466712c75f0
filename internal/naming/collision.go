package naming

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// CollisionSuffix is appended to the stem of a target on every collision.
const CollisionSuffix = "_2"

// Filesystem is the subset of filesystem operations the renamer needs.
// Rename must fail with an error matching [fs.ErrExist] rather than replace
// an existing destination.
type Filesystem interface {
	Exists(path string) (bool, error)
	Rename(oldPath, newPath string) error
}

// Logger is the minimal logging interface needed by SafeRenamer.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
}

// SafeRenamer renames entries without ever replacing an existing one. A
// taken target is resolved by appending [CollisionSuffix] until a free name is
// found. It is meant for sequential use.
type SafeRenamer struct {
	fs  Filesystem
	log Logger
}

// NewSafeRenamer creates a renamer over fsys that reports to log.
func NewSafeRenamer(fsys Filesystem, log Logger) *SafeRenamer {
	return &SafeRenamer{fs: fsys, log: log}
}

// RenameSafely moves oldPath to desiredPath, or to the first free collision
// candidate derived from it, and returns the path actually used.
//
// Every collision logs one WARN record; the final rename logs one INFO record.
// A destination that appears between the existence check and the rename is
// handled as one more collision. Any other failure is returned as a
// *RenameError and nothing is renamed.
func (r *SafeRenamer) RenameSafely(oldPath, desiredPath string) (string, error) {
	candidate := desiredPath
	for {
		exists, err := r.fs.Exists(candidate)
		if err != nil {
			return "", &RenameError{Old: oldPath, New: candidate, Cause: err}
		}
		if !exists {
			err = r.fs.Rename(oldPath, candidate)
			if err == nil {
				r.log.Info("Renamed;%s;%s", oldPath, candidate)
				return candidate, nil
			}
			if !errors.Is(err, fs.ErrExist) {
				return "", &RenameError{Old: oldPath, New: candidate, Cause: err}
			}
		}

		next := CollisionCandidate(candidate)
		r.log.Warn("Collision;%s;%s exists, trying %s", oldPath, candidate, filepath.Base(next))
		candidate = next
	}
}

// CollisionCandidate returns path with [CollisionSuffix] inserted before the
// extension of its final element: "dir/a.txt" -> "dir/a_2.txt",
// "dir/a_2.txt" -> "dir/a_2_2.txt", "dir/a" -> "dir/a_2".
func CollisionCandidate(path string) string {
	dir, base := filepath.Split(path)
	stem, ext, ok := SplitName(base)
	return dir + JoinName(stem+CollisionSuffix, ext, ok)
}
