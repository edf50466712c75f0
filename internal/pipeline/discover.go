package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// hiddenPrefix marks entries that are never renamed.
const hiddenPrefix = "."

func isHidden(name string) bool {
	return strings.HasPrefix(name, hiddenPrefix)
}

// Excluder matches paths relative to the walk root against gitignore-style
// patterns. A nil *Excluder matches nothing.
type Excluder struct {
	matcher gitignore.Matcher
}

// NewExcluder compiles patterns; it returns nil when there are none.
func NewExcluder(patterns []string) *Excluder {
	if len(patterns) == 0 {
		return nil
	}
	ps := make([]gitignore.Pattern, 0, len(patterns))
	for _, p := range patterns {
		ps = append(ps, gitignore.ParsePattern(strings.TrimSpace(p), nil))
	}
	return &Excluder{matcher: gitignore.NewMatcher(ps)}
}

// Match reports whether rel (slash or OS separated, relative to the root) is
// excluded.
func (e *Excluder) Match(rel string, isDir bool) bool {
	if e == nil || rel == "" || rel == "." {
		return false
	}
	return e.matcher.Match(strings.Split(filepath.ToSlash(rel), "/"), isDir)
}

// listChildren returns the immediate children of dir, sorted by name when
// sorted is set, otherwise in the order the filesystem reports them.
func listChildren(fsys Filesystem, dir string, sorted bool) ([]fs.DirEntry, error) {
	children, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	if sorted {
		sort.Slice(children, func(i, j int) bool {
			return children[i].Name() < children[j].Name()
		})
	}
	return children, nil
}
