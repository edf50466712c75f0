package naming

import "fmt"

// RenameError is returned by [SafeRenamer.RenameSafely] when an entry cannot be
// renamed for a reason other than a destination collision.
type RenameError struct {
	Old   string
	New   string
	Cause error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s to %s: %v", e.Old, e.New, e.Cause)
}

func (e *RenameError) Unwrap() error {
	return e.Cause
}
