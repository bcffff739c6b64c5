package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalWidth reports the column count of w when it is a terminal, and
// fallback otherwise. Help rendering wraps its output to this width.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
