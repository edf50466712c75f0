// Command namesweep is the CLI entrypoint for the namesweep renamer.
//
// It parses flags, validates configuration and the root directory, and either
// runs diagnostics (--check) or walks the tree renaming every entry whose name
// contains a replaceable character.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/namesweep/internal/check"
	"github.com/backmassage/namesweep/internal/config"
	"github.com/backmassage/namesweep/internal/display"
	"github.com/backmassage/namesweep/internal/fsys"
	"github.com/backmassage/namesweep/internal/logging"
	"github.com/backmassage/namesweep/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: no logger yet, so errors go straight to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version, os.Stdout); err != nil {
		if errors.Is(err, config.ErrUsageShown) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "namesweep: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "namesweep: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "namesweep: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)

	osfs := fsys.NewOS()
	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, osfs, log, log.FilePath()) {
			return 1
		}
		return 0
	}

	root, err := check.PrepareRoot(cfg.Root, osfs, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== namesweep v%s (%s) ===", version, commit)
	stats := pipeline.Run(&cfg, root, osfs, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}
