package ui

import (
	"github.com/charmbracelet/x/ansi"
)

// Strip removes escape sequences, leaving only the visible text.
//
// Example: a composed line "\x1b[1;48;2;68;71;90mCtrl p\x1b[m pane" strips
// to "Ctrl p pane", which is what a log line or a monochrome sink shows.
func Strip(s string) string {
	return ansi.Strip(s)
}
