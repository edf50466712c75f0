// Package term provides color state and terminal detection.
//
// [Configure] resolves the color mode once during startup and sets the
// profile of the shared lipgloss renderer; when colors are disabled every
// style renders as plain text.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/backmassage/namesweep/internal/config"
)

// ANSI color numbers used for level tags and the banner.
const (
	Red     = lipgloss.Color("9")
	Yellow  = lipgloss.Color("11")
	Blue    = lipgloss.Color("12")
	Magenta = lipgloss.Color("13")
	Cyan    = lipgloss.Color("14")
)

var (
	renderer = lipgloss.NewRenderer(os.Stdout)
	enabled  bool
)

func init() {
	renderer.SetColorProfile(termenv.Ascii)
}

// Configure resolves the color mode and sets the renderer profile.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if enabled {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
}

// Paint renders text bold in color c, or returns text unchanged when colors
// are disabled.
func Paint(c lipgloss.Color, text string) string {
	if !enabled {
		return text
	}
	return renderer.NewStyle().Bold(true).Foreground(c).Render(text)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
