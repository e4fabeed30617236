// Package help builds keybinding hints for the current mode and the help
// components of the preview program.
package help

import (
	"charm.land/bubbles/v2/key"

	"github.com/chatter/zjhints/internal/keys"
)

// Category represents a logical grouping of keybindings for help display
type Category string

const (
	CategoryHints   Category = "Mode hints"
	CategoryPreview Category = "Preview"
	CategoryState   Category = "Session state"
)

// Hint is one resolved (key label, description) pair.
type Hint struct {
	Key    string
	Desc   string
	Chords []keys.Chord
}

// HelpBinding contains display information for a keybinding.
// This is the display-only version; app.ActionBinding adds the Action field.
type HelpBinding struct {
	Binding  key.Binding
	Category Category
	Order    int  // lower = higher priority for inline status bar
	Pinned   bool // if true, always shown in status bar (never truncated)
}
