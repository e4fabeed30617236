package plugin

import (
	"time"

	"github.com/chatter/zjhints/internal/keys"
	"github.com/chatter/zjhints/internal/ui"
	"github.com/chatter/zjhints/internal/ui/help"
)

// Tier identifies what a render shows. Tiers are listed in priority order.
type Tier int

const (
	TierClipboard Tier = iota
	TierClipboardError
	TierLocked
	TierPaneState
	TierHints
)

func (t Tier) String() string {
	switch t {
	case TierClipboard:
		return "clipboard"
	case TierClipboardError:
		return "clipboard_error"
	case TierLocked:
		return "locked"
	case TierPaneState:
		return "pane_state"
	default:
		return "hints"
	}
}

// renderer builds the segments for one cycle.
type renderer struct {
	state  *State
	status StatusBuilder
	hints  help.Builder
}

func newRenderer(s *State) renderer {
	styler := s.Styler()
	grouper := help.Grouper{Clusters: s.Clusters}
	return renderer{
		state:  s,
		status: StatusBuilder{Styler: styler, Grouper: grouper},
		hints: help.Builder{
			Grouper:        grouper,
			Styler:         styler,
			HideInBaseMode: s.Options.HideInBaseMode,
			BaseMode:       s.BaseMode,
		},
	}
}

// tier is one guarded entry of the priority list.
type tier struct {
	kind  Tier
	when  func(s *State, now time.Time) bool
	build func(r renderer) []ui.Segment
}

// tiers are evaluated in order; the first whose guard holds is rendered.
// Overlapping lower-tier information is folded into the winner's message.
var tiers = []tier{
	{
		kind: TierClipboard,
		when: func(s *State, now time.Time) bool {
			msg := s.Clipboard
			if msg == nil || msg.Expired(now) {
				return false
			}
			return s.ClipboardError == nil || msg.Seq > s.ClipboardError.Seq
		},
		build: func(r renderer) []ui.Segment {
			return r.status.ClipboardMessage(r.state.Clipboard.Destination)
		},
	},
	{
		kind: TierClipboardError,
		when: func(s *State, _ time.Time) bool {
			e := s.ClipboardError
			return e != nil && (s.Clipboard == nil || s.Clipboard.Seq < e.Seq)
		},
		build: func(r renderer) []ui.Segment {
			return r.status.ClipboardError()
		},
	},
	{
		kind: TierLocked,
		when: func(s *State, _ time.Time) bool {
			return s.Locked
		},
		build: func(r renderer) []ui.Segment {
			return r.status.Locked(r.state)
		},
	},
	{
		kind: TierPaneState,
		when: func(s *State, _ time.Time) bool {
			return s.Fullscreen() || s.FloatingVisible
		},
		build: func(r renderer) []ui.Segment {
			return r.status.PaneState(r.state, r.modeHints())
		},
	},
	{
		kind: TierHints,
		when: func(*State, time.Time) bool {
			return true
		},
		build: func(r renderer) []ui.Segment {
			return r.modeHints()
		},
	},
}

// modeHints renders the current mode's hints. A session resting in locked
// mode shows nothing while locked.
func (r renderer) modeHints() []ui.Segment {
	s := r.state
	if s.Mode == keys.ModeLocked && s.BaseMode == keys.ModeLocked {
		return nil
	}
	return r.hints.Build(s.Mode, s.Catalog)
}

// Resolve returns the tier shown for s at now.
func Resolve(s *State, now time.Time) Tier {
	return resolve(s, now).kind
}

func resolve(s *State, now time.Time) tier {
	for _, t := range tiers {
		if t.when(s, now) {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
