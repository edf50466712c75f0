package display

import (
	"fmt"
	"io"

	"github.com/backmassage/namesweep/internal/term"
)

const banner = ` _ __   __ _ _ __ ___   ___  _____      _____  ___ _ __
| '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \/ __\ \ /\ / / _ \/ _ \ '_ \
| | | | (_| | | | | | |  __/\__ \\ V  V /  __/  __/ |_) |
|_| |_|\__,_|_| |_| |_|\___||___/ \_/\_/ \___|\___| .__/
                                                  |_|`

// PrintBanner writes the ASCII art banner to w; magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Paint(term.Magenta, banner))
}
