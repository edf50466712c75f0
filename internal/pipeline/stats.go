package pipeline

import "time"

// Outcome is the result of handling one entry. It only feeds [Counters].
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeRenamed
	OutcomeFailed
)

// Counters accumulates per-entry outcomes over a subtree. Folders and Files
// count successful renames only.
type Counters struct {
	Folders int
	Files   int
	Skipped int
	Failed  int
}

// Add sums o into c.
func (c *Counters) Add(o Counters) {
	c.Folders += o.Folders
	c.Files += o.Files
	c.Skipped += o.Skipped
	c.Failed += o.Failed
}

// Renamed returns the total number of renamed entries.
func (c Counters) Renamed() int {
	return c.Folders + c.Files
}

func (c *Counters) record(kind EntryKind, o Outcome) {
	switch o {
	case OutcomeRenamed:
		if kind == KindDirectory {
			c.Folders++
		} else {
			c.Files++
		}
	case OutcomeSkipped:
		c.Skipped++
	case OutcomeFailed:
		c.Failed++
	}
}

// RunStats is what a whole run reports back to the caller.
type RunStats struct {
	Counters
	Root     string
	Duration time.Duration
}
