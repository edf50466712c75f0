// Package config holds runtime configuration: defaults, the optional JSON
// config file, CLI flag parsing, and validation. Defaults reproduce the classic
// rename script: current directory as root, {space, period, hyphen} replaced.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/backmassage/namesweep/internal/naming"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DirNameMode selects how directory names are transformed.
type DirNameMode string

const (
	DirNamesSplit DirNameMode = "split" // Same stem/extension rule as files (default).
	DirNamesWhole DirNameMode = "whole" // Replace across the whole name; directories have no extension.
)

// DefaultReplacementCharacters is the reference set: space, period, hyphen.
const DefaultReplacementCharacters = " .-"

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// by [LoadFile] and [ParseFlags], in that order of precedence.
type Config struct {
	// Traversal.
	Root                  string      // Default: "." (working directory).
	ReplacementCharacters string      // Default: " .-". Every rune is replaced by '_'.
	Exclude               []string    // gitignore-style patterns, relative to Root.
	SortChildren          bool        // Default: true. False keeps filesystem order.
	DirectoryNames        DirNameMode // Default: "split".

	// Display and logging.
	Verbose   bool      // Emit DEBUG records for skipped entries.
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path (appended).

	// Utility.
	ConfigFile string // Path given with --config, if any.
	CheckOnly  bool   // Run --check diagnostics and exit.
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Root:                  ".",
		ReplacementCharacters: DefaultReplacementCharacters,
		SortChildren:          true,
		DirectoryNames:        DirNamesSplit,
		ColorMode:             ColorAuto,
	}
}

// Replacements returns the configured characters as a [naming.ReplacementSet].
func (c *Config) Replacements() naming.ReplacementSet {
	return naming.NewReplacementSet(c.ReplacementCharacters)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ExpandPath expands a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return homedir.Expand(path)
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		errs = append(errs, fmt.Sprintf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode))
	}

	switch c.DirectoryNames {
	case DirNamesSplit, DirNamesWhole:
		// valid
	default:
		errs = append(errs, fmt.Sprintf("invalid directory name mode %q (use 'split' or 'whole')", c.DirectoryNames))
	}

	if strings.ContainsRune(c.ReplacementCharacters, naming.Placeholder) {
		errs = append(errs, "replacement characters must not contain '_'")
	}
	if strings.ContainsAny(c.ReplacementCharacters, "/\x00") {
		errs = append(errs, "replacement characters must not contain '/' or NUL")
	}

	for i, p := range c.Exclude {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Sprintf("exclude pattern %d is empty", i+1))
		}
	}

	if !c.CheckOnly && c.Root == "" {
		errs = append(errs, "root path must not be empty")
	}

	if len(errs) > 0 {
		return errors.New("invalid configuration: " + strings.Join(errs, "; "))
	}
	return nil
}
