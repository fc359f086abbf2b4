package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

// Render writes a human-readable report of errs to w, one diagnostic per
// line with related locations indented beneath. ANSI color is used only
// when w is a terminal.
func Render(w io.Writer, errs []*DiagnosticError) {
	RenderColor(w, errs, isTerminal(w))
}

// RenderColor is Render with an explicit color switch, for callers that
// configure color from the pipeline configuration rather than the TTY.
func RenderColor(w io.Writer, errs []*DiagnosticError, color bool) {
	red, dim, reset := "", "", ""
	if color {
		red, dim, reset = ansiRed, ansiDim, ansiReset
	}
	for _, e := range errs {
		fmt.Fprintf(w, "%serror[%s]%s %s: %s\n", red, e.Code, reset, e.Loc, e.Message)
		for _, loc := range e.Related {
			fmt.Fprintf(w, "  %scandidate at %s%s\n", dim, loc, reset)
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
