package pipeline

import (
	"strings"
	"time"

	"github.com/backmassage/namesweep/internal/config"
	"github.com/backmassage/namesweep/internal/display"
	"github.com/backmassage/namesweep/internal/logging"
	"github.com/backmassage/namesweep/internal/naming"
)

// RunFilesystem is everything a run needs from the filesystem collaborator.
type RunFilesystem interface {
	Filesystem
	naming.Filesystem
}

// Run is the top-level entry point. root must already be validated (see
// check.PrepareRoot). It logs the configuration, walks root, logs a summary,
// and returns the aggregate stats. Per-entry failures are counted, never
// returned.
func Run(cfg *config.Config, root string, fsys RunFilesystem, log *logging.Logger) RunStats {
	stats := RunStats{Root: root}
	opts := WalkOptions{
		Replacements:  cfg.Replacements(),
		WholeDirNames: cfg.DirectoryNames == config.DirNamesWhole,
		SortChildren:  cfg.SortChildren,
		Exclude:       NewExcluder(cfg.Exclude),
	}

	logRunHeader(cfg, log, root, opts)

	start := time.Now()
	renamer := naming.NewSafeRenamer(fsys, log)
	stats.Counters = NewWalker(fsys, renamer, log, opts).Walk(root)
	stats.Duration = time.Since(start)

	logSummary(log, &stats)
	return stats
}

func logRunHeader(cfg *config.Config, log *logging.Logger, root string, opts WalkOptions) {
	log.Info("Root;%s", root)
	log.Info("Replacing;%s", opts.Replacements)
	log.Info("Directory names;%s", cfg.DirectoryNames)
	if opts.SortChildren {
		log.Info("Order;by name")
	} else {
		log.Info("Order;filesystem")
	}
	if len(cfg.Exclude) > 0 {
		log.Info("Exclude;%s", strings.Join(cfg.Exclude, ", "))
	}
	if cfg.ConfigFile != "" {
		log.Info("Config file;%s", cfg.ConfigFile)
	}
	if p := log.FilePath(); p != "" {
		log.Info("Log file;%s", p)
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done;%s renamed;%s renamed;%d skipped;%d failed",
		display.FormatCount(stats.Folders, "folder", "folders"),
		display.FormatCount(stats.Files, "file", "files"),
		stats.Skipped, stats.Failed)
	log.Info("Elapsed;%s", display.FormatDuration(stats.Duration))
	if stats.Failed > 0 {
		log.Warn("Some entries could not be processed; see ERROR records above")
	}
}
