// Package plugin holds the renderer's state and turns host events into
// rendered lines.
package plugin

import (
	"time"

	"github.com/chatter/zjhints/internal/catalog"
	"github.com/chatter/zjhints/internal/config"
	"github.com/chatter/zjhints/internal/event"
	"github.com/chatter/zjhints/internal/keys"
	"github.com/chatter/zjhints/internal/ui"
)

// ClipboardMessage is the most recent successful copy.
type ClipboardMessage struct {
	Destination event.Destination
	Seq         uint64
	Expires     time.Time // zero means it lasts until the next input
}

// Expired reports whether the message is past its expiry at now.
func (m ClipboardMessage) Expired(now time.Time) bool {
	return !m.Expires.IsZero() && !now.Before(m.Expires)
}

// ClipboardError is the most recent failed copy.
type ClipboardError struct {
	Seq uint64
}

// State is everything a render reads. Two renders of equal states at the
// same clock reading produce the same line.
type State struct {
	Mode     keys.Mode
	BaseMode keys.Mode
	Locked   bool

	FullscreenHidden int
	FloatingVisible  bool

	Clipboard      *ClipboardMessage
	ClipboardError *ClipboardError

	Options  config.Options
	Palette  ui.Palette
	Clusters []string
	Catalog  *catalog.Catalog

	seq uint64
}

// NewState returns the initial state for cfg. The catalog is empty until
// bindings are loaded.
func NewState(cfg config.Config) State {
	return State{
		Mode:     cfg.Options.BaseMode,
		BaseMode: cfg.Options.BaseMode,
		Options:  cfg.Options,
		Palette:  cfg.Palette,
		Clusters: cfg.Clusters,
		Catalog:  catalog.New(),
	}
}

// Fullscreen reports whether the focused pane hides others.
func (s *State) Fullscreen() bool {
	return s.FullscreenHidden > 0
}

func (s *State) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// ApplyMode records a mode change. The locked flag follows the mode: the
// session counts as locked only when Locked is not its resting mode.
func (s *State) ApplyMode(ev event.Mode) {
	s.Mode = ev.Mode
	if ev.BaseMode != nil {
		s.BaseMode = *ev.BaseMode
	}
	s.Locked = s.Mode == keys.ModeLocked && s.BaseMode != keys.ModeLocked
}

// ApplyOptions replaces the options. A changed base_mode becomes the base
// mode at once, as if a mode event had carried it.
func (s *State) ApplyOptions(o config.Options) {
	if o.BaseMode != s.Options.BaseMode {
		s.BaseMode = o.BaseMode
		s.Locked = s.Mode == keys.ModeLocked && s.BaseMode != keys.ModeLocked
	}
	s.Options = o
}

// ApplyTabs records the focused tab's pane layout.
func (s *State) ApplyTabs(ev event.Tabs) {
	s.FullscreenHidden = max(ev.FullscreenHidden, 0)
	s.FloatingVisible = ev.FloatingVisible
	if ev.Locked != nil {
		s.Locked = *ev.Locked
	}
}

// ApplyClipboard records a successful copy at now.
func (s *State) ApplyClipboard(ev event.Clipboard, now time.Time) {
	msg := &ClipboardMessage{Destination: ev.Destination, Seq: s.nextSeq()}
	if ttl := s.Options.ClipboardTTL; ttl > 0 {
		msg.Expires = now.Add(ttl)
	}
	s.Clipboard = msg
}

// ApplyClipboardError records a failed copy.
func (s *State) ApplyClipboardError() {
	s.ClipboardError = &ClipboardError{Seq: s.nextSeq()}
}

// ApplyInput clears both clipboard messages.
func (s *State) ApplyInput() {
	s.Clipboard = nil
	s.ClipboardError = nil
}

// Styler returns the styler for the current palette.
func (s *State) Styler() ui.Styler {
	return ui.NewStyler(s.Palette)
}
