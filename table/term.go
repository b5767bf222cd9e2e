package table

import (
	"io"

	"golang.org/x/term"
)

// The fixed fallback when the output is not a terminal or the size query fails.
const DefaultWidth = 80

type fdWriter interface {
	Fd() uintptr
}

// Detect the width of the terminal behind the writer, falling back to DefaultWidth.
func TerminalWidth(out io.Writer) int {
	f, ok := out.(fdWriter)
	if !ok {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
