// ABOUTME: Column-addressed line composition for styled terminal text
// ABOUTME: Widths skip ANSI escapes and count grapheme clusters via uniseg + runewidth

package canvas

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells s occupies. ANSI escape
// sequences contribute nothing.
func Width(s string) int {
	plain := StripANSI(s)
	if isASCII(plain) {
		return len(plain)
	}
	w := 0
	state := -1
	for len(plain) > 0 {
		var cluster string
		cluster, plain, _, state = uniseg.FirstGraphemeClusterInString(plain, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
	}
	return w
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// StripANSI removes CSI escape sequences (ESC '[' ... final byte).
func StripANSI(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Line builds one row of output by placing fragments at absolute columns.
type Line struct {
	b   strings.Builder
	col int
}

// At writes s starting at column col. If the line already extends past col,
// s is appended where the line ends.
func (l *Line) At(col int, s string) {
	if col > l.col {
		l.b.WriteString(strings.Repeat(" ", col-l.col))
		l.col = col
	}
	l.b.WriteString(s)
	l.col += Width(s)
}

// Col returns the column after the last written cell.
func (l *Line) Col() int { return l.col }

// String returns the composed line.
func (l *Line) String() string { return l.b.String() }

// Center pads s with spaces so that it sits in the middle of width cells.
func Center(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
