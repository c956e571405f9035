package diagfmt

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DetectColor reports whether the writer is an interactive terminal that
// can take ANSI colors. NO_COLOR always wins.
func DetectColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
