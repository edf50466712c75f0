// Package check provides the pre-walk root validation (PrepareRoot) and the
// --check diagnostics (RunCheck).
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/backmassage/namesweep/internal/config"
)

// Sentinel causes wrapped by ConfigurationError.
var (
	ErrRootNotDirectory = errors.New("not a directory")
	ErrRootUnreadable   = errors.New("cannot list directory")
)

// ConfigurationError reports a root path that cannot be used. It aborts the
// run before any traversal.
type ConfigurationError struct {
	Root  string
	Cause error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("root %s: %v", e.Root, e.Cause)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// Filesystem is the subset of filesystem operations preflight needs.
type Filesystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(dir string) ([]fs.DirEntry, error)
	MkdirAll(path string) error
	SupportsNoReplace(dir string) (bool, error)
}

// Logger is the minimal logging interface needed by this package.
// Defined here (rather than importing the logging package) so that check
// stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// PrepareRoot resolves root to an absolute path ("~" expanded), creates it when
// missing, and verifies it is a listable directory. Creating the root is
// logged at WARN. Every failure is a *ConfigurationError.
func PrepareRoot(root string, filesystem Filesystem, log Logger) (string, error) {
	expanded, err := config.ExpandPath(root)
	if err != nil {
		return "", &ConfigurationError{Root: root, Cause: err}
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", &ConfigurationError{Root: root, Cause: err}
	}

	info, err := filesystem.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := filesystem.MkdirAll(abs); err != nil {
			return "", &ConfigurationError{Root: abs, Cause: err}
		}
		log.Warn("Created missing root;%s", abs)
		return abs, nil
	case err != nil:
		return "", &ConfigurationError{Root: abs, Cause: err}
	case !info.IsDir():
		return "", &ConfigurationError{Root: abs, Cause: ErrRootNotDirectory}
	}

	if _, err := filesystem.ReadDir(abs); err != nil {
		return "", &ConfigurationError{Root: abs, Cause: fmt.Errorf("%w: %v", ErrRootUnreadable, err)}
	}
	return abs, nil
}

// RunCheck runs the --check flow: it reports the resolved root, the
// replacement set, the log sink, and whether renames in the root can be made
// atomic-no-replace. Nothing in the tree is renamed and a missing root is not
// created. Returns false when the root is unusable.
func RunCheck(cfg *config.Config, filesystem Filesystem, log Logger, logFile string) bool {
	log.Info("=== System Check ===")
	ok := true

	root, err := resolveRoot(cfg.Root)
	if err != nil {
		log.Error("Root;%s;%v", cfg.Root, err)
		return false
	}

	info, err := filesystem.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("Root;%s;missing (would be created)", root)
	case err != nil:
		log.Error("Root;%s;%v", root, err)
		ok = false
	case !info.IsDir():
		log.Error("Root;%s;%v", root, ErrRootNotDirectory)
		ok = false
	default:
		if _, err := filesystem.ReadDir(root); err != nil {
			log.Error("Root;%s;%v", root, err)
			ok = false
		} else {
			log.Info("Root;%s;ok", root)
		}
		checkNoReplace(filesystem, root, log)
	}

	set := cfg.Replacements()
	if set.Len() == 0 {
		log.Warn("Replacing;%s;nothing will be renamed", set)
	} else {
		log.Info("Replacing;%s", set)
	}

	if logFile != "" {
		log.Info("Log file;%s", logFile)
	} else {
		log.Info("Log file;none")
	}
	return ok
}

func resolveRoot(root string) (string, error) {
	expanded, err := config.ExpandPath(root)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// checkNoReplace reports whether the filesystem holding root supports
// renames that refuse to replace an existing entry.
func checkNoReplace(filesystem Filesystem, root string, log Logger) {
	supported, err := filesystem.SupportsNoReplace(root)
	switch {
	case err != nil:
		log.Warn("No-replace rename;cannot probe %s: %v", root, err)
	case supported:
		log.Info("No-replace rename;supported")
	default:
		log.Warn("No-replace rename;unsupported, falling back to check-then-rename")
	}
}
