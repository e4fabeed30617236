package plugin

import (
	"fmt"

	"github.com/chatter/zjhints/internal/event"
	"github.com/chatter/zjhints/internal/keys"
	"github.com/chatter/zjhints/internal/ui"
	"github.com/chatter/zjhints/internal/ui/help"
)

// Status message texts.
const (
	textPiped          = "Text piped to external command"
	textCopiedPrimary  = "Text copied to system primary selection"
	textCopiedSystem   = "Text copied to system clipboard"
	textClipboardError = "Error using the system clipboard."

	textLocked          = "LOCKED"
	textFullscreen      = "FULLSCREEN"
	textFloatingVisible = "FLOATING PANES VISIBLE"
	tagFullscreen       = "(FULLSCREEN)"
	tagFloating         = "(FLOATING PANES)"
	descUnlock          = "unlock"

	// unboundKey stands in for a key the user has not bound.
	unboundKey = "?"
)

// StatusBuilder renders the status messages that outrank mode hints.
type StatusBuilder struct {
	Styler  ui.Styler
	Grouper help.Grouper
}

func (b StatusBuilder) plain(text string, accent ui.Accent) ui.Segment {
	return b.Styler.Plain(text, accent)
}

// ClipboardMessage renders a successful copy.
func (b StatusBuilder) ClipboardMessage(dest event.Destination) []ui.Segment {
	text := textCopiedSystem
	switch dest {
	case event.DestinationCommand:
		text = textPiped
	case event.DestinationPrimary:
		text = textCopiedPrimary
	}
	return []ui.Segment{b.plain(text, ui.AccentSuccess)}
}

// ClipboardError renders a failed copy.
func (b StatusBuilder) ClipboardError() []ui.Segment {
	return []ui.Segment{b.plain(textClipboardError, ui.AccentError)}
}

// Locked renders the locked notice, folding in the pane-state tags and
// the key that leaves locked mode when one is bound.
func (b StatusBuilder) Locked(s *State) []ui.Segment {
	segs := []ui.Segment{b.plain(textLocked, ui.AccentWarning)}
	segs = append(segs, b.tags(s)...)

	if unlock := s.Catalog.Lookup(keys.ModeLocked, keys.ToNormal); len(unlock) > 0 {
		segs = append(segs, b.Styler.Hint(b.Grouper.Label(unlock), descUnlock)...)
	}
	return segs
}

// PaneState renders the fullscreen and floating-pane messages. In normal
// mode the full messages are shown; in any other mode only the tags,
// followed by that mode's hints.
func (b StatusBuilder) PaneState(s *State, hints []ui.Segment) []ui.Segment {
	if s.Mode != keys.ModeNormal {
		return append(b.tags(s), hints...)
	}

	var segs []ui.Segment
	if s.Fullscreen() {
		segs = append(segs,
			b.plain(textFullscreen, ui.AccentWarning),
			b.plain(fmt.Sprintf("+ %d hidden panes", s.FullscreenHidden), ui.AccentNormal),
		)
	}
	if s.FloatingVisible {
		paneKey, floatKey := b.floatingKeys(s)
		segs = append(segs,
			b.plain(textFloatingVisible, ui.AccentWarning),
			b.plain(fmt.Sprintf("Press %s, %s to hide", paneKey, floatKey), ui.AccentNormal),
		)
	}
	return segs
}

func (b StatusBuilder) tags(s *State) []ui.Segment {
	var segs []ui.Segment
	if s.Fullscreen() {
		segs = append(segs, b.plain(tagFullscreen, ui.AccentWarning))
	}
	if s.FloatingVisible {
		segs = append(segs, b.plain(tagFloating, ui.AccentWarning))
	}
	return segs
}

// floatingKeys returns the key entering pane mode and the key toggling
// floating panes from there.
func (b StatusBuilder) floatingKeys(s *State) (string, string) {
	pane, toggle := unboundKey, unboundKey
	if c, ok := s.Catalog.First(keys.ModeNormal, keys.SwitchTo(keys.ModePane)); ok {
		pane = c.String()
	}
	if c, ok := s.Catalog.First(keys.ModePane, keys.Act("ToggleFloatingPanes")); ok {
		toggle = c.String()
	}
	return pane, toggle
}
