// ABOUTME: Terminal detection via golang.org/x/term: interactive check and width query
// ABOUTME: Lets the CLI fall back to print mode when stdin or stdout is not a TTY

package terminal

import "golang.org/x/term"

// File is anything backed by a file descriptor, such as *os.File.
type File interface {
	Fd() uintptr
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Interactive reports whether both ends are terminals, so a full-screen
// UI can run.
func Interactive(in, out File) bool {
	return IsTerminal(in) && IsTerminal(out)
}

// Width returns the column count of f, or fallback when f is not a
// terminal or the size cannot be read.
func Width(f File, fallback int) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
