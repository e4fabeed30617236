package help

import (
	"charm.land/bubbles/v2/key"

	"github.com/chatter/zjhints/internal/catalog"
	"github.com/chatter/zjhints/internal/keys"
	"github.com/chatter/zjhints/internal/ui"
)

// Builder turns a mode's catalogue into styled hint segments.
type Builder struct {
	Grouper Grouper
	Styler  ui.Styler

	// HideInBaseMode suppresses all hints while mode equals BaseMode.
	HideInBaseMode bool
	BaseMode       keys.Mode
}

// Hints resolves the catalogue of mode against cat. Entries with no bound
// chord are skipped.
func (b Builder) Hints(mode keys.Mode, cat *catalog.Catalog) []Hint {
	var hints []Hint
	for _, e := range Catalogue(mode) {
		chords := e.Resolve(mode, cat)
		if len(chords) == 0 {
			continue
		}
		hints = append(hints, Hint{Key: b.Grouper.Label(chords), Desc: e.Desc, Chords: chords})
	}
	return hints
}

// Build returns a key segment followed by a description segment for every
// hint of mode. It returns nil when hints are hidden in the base mode.
func (b Builder) Build(mode keys.Mode, cat *catalog.Catalog) []ui.Segment {
	if b.HideInBaseMode && mode == b.BaseMode {
		return nil
	}

	var segments []ui.Segment
	for _, h := range b.Hints(mode, cat) {
		segments = append(segments, b.Styler.Hint(h.Key, h.Desc)...)
	}
	return segments
}

// Bindings exposes the hints of mode as help bindings, in catalogue order.
func (b Builder) Bindings(mode keys.Mode, cat *catalog.Catalog) []HelpBinding {
	hints := b.Hints(mode, cat)
	out := make([]HelpBinding, len(hints))
	for i, h := range hints {
		names := make([]string, len(h.Chords))
		for j, c := range h.Chords {
			names[j] = c.String()
		}
		out[i] = HelpBinding{
			Binding:  key.NewBinding(key.WithKeys(names...), key.WithHelp(h.Key, h.Desc)),
			Category: CategoryHints,
			Order:    i,
		}
	}
	return out
}
