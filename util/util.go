// Package util holds small helpers shared by the CLI commands.
package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// DefaultWidth is used when stdout is not a terminal.
const DefaultWidth = 80

// Capitalize upper-cases the first byte of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsTerminalFd reports whether fd is attached to a terminal.
func IsTerminalFd(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// TerminalWidth returns the width of stdout, or DefaultWidth.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Wrap word-wraps s to width and indents continuation lines by hang columns.
func Wrap(s string, width int, hang uint) string {
	width = max(width-int(hang), 20)
	wrapped := wordwrap.String(s, width)

	first, rest, found := strings.Cut(wrapped, "\n")
	if !found || hang == 0 {
		return wrapped
	}
	return first + "\n" + indent.String(rest, hang)
}

// PrintErasable writes msg to w and returns a func that blanks it out again.
func PrintErasable(w io.Writer, msg string) (eraser func()) {
	_, _ = fmt.Fprintf(w, "\r%s", msg)
	return func() {
		_, _ = fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore calls f and drops its error.
func Ignore(f func() error) {
	_ = f()
}
