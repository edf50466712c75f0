// Package logging writes leveled, semicolon-delimited records to the console
// and optionally to an append-only log file:
//
//	2026-10-16 14:03:11;INFO;Renamed;/data/a b.txt;/data/a_b.txt
//
// DEBUG records are only written in verbose mode. ERROR records go to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rogpeppe/go-internal/lockedfile"

	"github.com/backmassage/namesweep/internal/config"
	"github.com/backmassage/namesweep/internal/term"
)

const timeLayout = "2006-01-02 15:04:05"

// Level names as they appear in records.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var levelColors = map[string]lipgloss.Color{
	LevelDebug: term.Cyan,
	LevelInfo:  term.Blue,
	LevelWarn:  term.Yellow,
	LevelError: term.Red,
}

// Logger provides leveled, optionally colored logging with an optional file
// sink. It is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	verbose  bool
	out      io.Writer
	errOut   io.Writer
	file     *lockedfile.File
	filePath string
	now      func() time.Time
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile for
// appending. The file stays exclusively locked until Close, so concurrent runs
// sharing a log file never interleave records.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := New(os.Stdout, os.Stderr, cfg.Verbose)

	if cfg.LogFile != "" {
		path, err := config.ExpandPath(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		f, err := lockedfile.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = path
	}
	return l, nil
}

// New returns a console-only logger writing to out (and errOut for ERROR).
func New(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{
		verbose: verbose,
		out:     out,
		errOut:  errOut,
		now:     time.Now,
	}
}

// FilePath returns the path of the log file, or "" when there is none.
func (l *Logger) FilePath() string { return l.filePath }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, text string) {
	ts := l.now().Format(timeLayout)
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.out
	if level == LevelError {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+";"+term.Paint(levelColors[level], level)+";"+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+";"+level+";"+text+"\n")
	}
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line(LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(LevelError, fmt.Sprintf(format, args...))
}
