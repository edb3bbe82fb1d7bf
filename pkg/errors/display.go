package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Display prints errs to w in a terminal-friendly format: the header and
// caret marker in red, one blank line between errors. Unlike Lines, the caret
// is aligned by display width rather than byte count, so it stays under the
// token when the prefix holds multi-byte or wide runes. Color is disabled
// automatically when the process is not attached to a terminal.
func Display(w io.Writer, errs ...*ParseError) {
	header := color.New(color.FgRed, color.Bold)
	marker := color.New(color.FgRed)

	for i, e := range errs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header.Fprintf(w, "Error at [%d, %d]\n", e.Line, e.Column)
		for _, msg := range e.Msgs {
			fmt.Fprintln(w, msg)
		}
		fmt.Fprintf(w, "| %s%s%s\n", e.Prefix, e.Token, e.Suffix)

		pad := strings.Repeat(" ", runewidth.StringWidth(e.Prefix))
		carets := strings.Repeat("^", max(runewidth.StringWidth(e.Token), 1))
		marker.Fprintf(w, "| %s%s\n", pad, carets)
	}
}
