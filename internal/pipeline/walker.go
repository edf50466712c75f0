package pipeline

import (
	"io/fs"
	"path/filepath"

	"github.com/backmassage/namesweep/internal/naming"
)

// EntryKind classifies a directory entry. Anything that is not a directory,
// symlinks included, is a file; symlinks are never followed.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "folder"
	}
	return "file"
}

func kindOf(e fs.DirEntry) EntryKind {
	if e.IsDir() {
		return KindDirectory
	}
	return KindFile
}

// Filesystem is what the walker needs to enumerate a tree.
type Filesystem interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
}

// Renamer commits one rename without overwriting.
type Renamer interface {
	RenameSafely(oldPath, desiredPath string) (string, error)
}

// Logger is the minimal logging interface needed by Walker.
type Logger interface {
	Debug(string, ...interface{})
	Error(string, ...interface{})
}

// WalkOptions holds the per-run rules applied to every entry.
type WalkOptions struct {
	Replacements  naming.ReplacementSet
	WholeDirNames bool      // transform directory names with ComputeWholeName
	SortChildren  bool      // visit siblings by name instead of filesystem order
	Exclude       *Excluder // nil excludes nothing
}

// Walker renames the entries below a root, post-order. It keeps no state
// between calls to Walk.
type Walker struct {
	fs      Filesystem
	renamer Renamer
	log     Logger
	opts    WalkOptions
}

// NewWalker creates a Walker with injected collaborators.
func NewWalker(fsys Filesystem, renamer Renamer, log Logger, opts WalkOptions) *Walker {
	return &Walker{fs: fsys, renamer: renamer, log: log, opts: opts}
}

// Walk processes every entry below root (root itself is never renamed) and
// returns the counters for the whole subtree. Folders and Files in the result
// are the number of directories and files renamed.
func (w *Walker) Walk(root string) Counters {
	return w.walkDir(root, root)
}

func (w *Walker) walkDir(root, dir string) Counters {
	var c Counters

	children, err := listChildren(w.fs, dir, w.opts.SortChildren)
	if err != nil {
		w.log.Error("List failed;%s;%v", dir, err)
		c.Failed++
		return c
	}

	for _, child := range children {
		name := child.Name()
		path := filepath.Join(dir, name)
		kind := kindOf(child)

		if w.opts.Exclude != nil {
			if rel, err := filepath.Rel(root, path); err == nil && w.opts.Exclude.Match(rel, kind == KindDirectory) {
				w.log.Debug("Skip (excluded);%s", path)
				c.Skipped++
				continue
			}
		}

		// Children first: the directory's path must stay valid until its
		// subtree is done.
		if kind == KindDirectory {
			c.Add(w.walkDir(root, path))
		}
		c.record(kind, w.renameEntry(path, name, kind))
	}
	return c
}

// renameEntry applies the rename policy to one entry.
func (w *Walker) renameEntry(path, name string, kind EntryKind) Outcome {
	if isHidden(name) {
		w.log.Debug("Skip (hidden);%s", path)
		return OutcomeSkipped
	}

	newName := w.targetName(name, kind)
	if newName == name {
		w.log.Debug("Skip (unchanged);%s", path)
		return OutcomeSkipped
	}

	if _, err := w.renamer.RenameSafely(path, filepath.Join(filepath.Dir(path), newName)); err != nil {
		w.log.Error("Rename failed;%s;%v", path, err)
		return OutcomeFailed
	}
	return OutcomeRenamed
}

func (w *Walker) targetName(name string, kind EntryKind) string {
	if kind == KindDirectory && w.opts.WholeDirNames {
		return naming.ComputeWholeName(name, w.opts.Replacements)
	}
	return naming.ComputeName(name, w.opts.Replacements)
}
