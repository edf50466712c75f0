package config

// This file implements CLI parsing with go-arg. Fields left unset on the
// command line keep the value from the config file or the defaults, so most
// fields are pointers or bools that only ever switch a default off.

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexflint/go-arg"
)

// ErrUsageShown is returned by [ParseFlags] after --help or --version output
// has been written. Callers should exit successfully.
var ErrUsageShown = errors.New("usage shown")

// cliArgs is the go-arg description of the command line.
type cliArgs struct {
	Root           string   `arg:"positional" placeholder:"ROOT" help:"directory to sweep (default: current directory)"`
	Replace        *string  `arg:"-r,--replace" placeholder:"CHARS" help:"characters replaced by '_' (default: \" .-\")"`
	Config         string   `arg:"-c,--config" placeholder:"PATH" help:"JSON config file applied before flags"`
	Log            *string  `arg:"-l,--log" placeholder:"PATH" help:"append logs to file"`
	Color          *string  `arg:"--color" placeholder:"MODE" help:"colored logs: auto | always | never"`
	NoColor        bool     `arg:"--no-color" help:"disable colored logs"`
	Verbose        bool     `arg:"-v,--verbose" help:"also log skipped entries"`
	NoSort         bool     `arg:"--no-sort" help:"process entries in filesystem order instead of by name"`
	DirectoryNames *string  `arg:"--directory-names" placeholder:"MODE" help:"split (stem/extension, default) | whole"`
	Exclude        []string `arg:"-x,--exclude,separate" placeholder:"PATTERN" help:"gitignore-style pattern to leave alone (repeatable)"`
	Check          bool     `arg:"--check" help:"run diagnostics and exit"`

	version string
}

func (cliArgs) Description() string {
	return "namesweep replaces unwanted characters in file and folder names with '_', recursively and without overwriting."
}

func (a cliArgs) Version() string {
	return "namesweep v" + a.version
}

// ParseFlags parses argv (without the program name) into cfg. A --config file
// is applied first, then the flags. Help and version text go to out and
// ErrUsageShown is returned.
func ParseFlags(cfg *Config, argv []string, version string, out io.Writer) error {
	a := cliArgs{version: version}
	p, err := arg.NewParser(arg.Config{Program: "namesweep", IgnoreEnv: true}, &a)
	if err != nil {
		return err
	}

	switch err := p.Parse(argv); {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(out)
		return ErrUsageShown
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(out, a.Version())
		return ErrUsageShown
	case err != nil:
		return err
	}

	if a.Config != "" {
		if err := LoadFile(cfg, a.Config); err != nil {
			return err
		}
	}

	applyArgs(cfg, &a)
	return nil
}

// applyArgs copies the flags the user actually passed into cfg.
func applyArgs(cfg *Config, a *cliArgs) {
	if a.Root != "" {
		cfg.Root = NormalizeDirArg(a.Root)
	}
	if a.Replace != nil {
		cfg.ReplacementCharacters = *a.Replace
	}
	if a.Log != nil {
		cfg.LogFile = *a.Log
	}
	if a.NoColor {
		cfg.ColorMode = ColorNever
	} else if a.Color != nil {
		cfg.ColorMode = ColorMode(strings.ToLower(*a.Color))
	}
	if a.Verbose {
		cfg.Verbose = true
	}
	if a.NoSort {
		cfg.SortChildren = false
	}
	if a.DirectoryNames != nil {
		cfg.DirectoryNames = DirNameMode(strings.ToLower(*a.DirectoryNames))
	}
	cfg.Exclude = append(cfg.Exclude, a.Exclude...)
	if a.Check {
		cfg.CheckOnly = true
	}
}
