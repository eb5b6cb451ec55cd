// ABOUTME: RestoreOnPanic recovers from panics, resets the screen, and prints the stack trace
// ABOUTME: Intended for use as a deferred call in main

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// resetSequence turns off mouse reporting, leaves the alternate screen and
// shows the cursor.
const resetSequence = "\033[?1002l\033[?1006l\033[?1049l\033[?25h"

// Reset writes the escape sequence that undoes full-screen mode.
func Reset(w io.Writer) {
	_, _ = io.WriteString(w, resetSequence)
}

// RestoreOnPanic should be deferred at the top of main. On panic it resets
// the screen, prints the panic value and stack trace, then exits with code 1.
func RestoreOnPanic() {
	r := recover()
	if r == nil {
		return
	}

	Reset(os.Stderr)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
