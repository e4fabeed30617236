package help

import (
	"slices"

	"github.com/chatter/zjhints/internal/catalog"
	"github.com/chatter/zjhints/internal/keys"
)

// LookupKind selects how an entry resolves its chords.
type LookupKind int

const (
	// LookupAll takes every chord of the first bound action.
	LookupAll LookupKind = iota
	// LookupFirst takes the first chord of the first bound action.
	LookupFirst
	// LookupGroup takes the first chord of each action, in order.
	LookupGroup
	// LookupSelect takes the return-to-normal chord, preferring Enter.
	LookupSelect
	// LookupLeftRight shows "←→" when both arrows are among the chords of
	// the actions, otherwise behaves like LookupGroup.
	LookupLeftRight
)

// Entry is one line of a mode's hint catalogue. For LookupAll and
// LookupFirst, Actions are alternatives tried in order.
type Entry struct {
	Desc    string
	Kind    LookupKind
	Actions []keys.Action
}

func all(desc string, actions ...keys.Action) Entry {
	return Entry{Desc: desc, Kind: LookupAll, Actions: actions}
}

func first(desc string, actions ...keys.Action) Entry {
	return Entry{Desc: desc, Kind: LookupFirst, Actions: actions}
}

func group(desc string, actions ...keys.Action) Entry {
	return Entry{Desc: desc, Kind: LookupGroup, Actions: actions}
}

func directions(name string, prefix ...string) []keys.Action {
	var out []keys.Action
	for _, dir := range []string{"Left", "Down", "Up", "Right"} {
		out = append(out, keys.Act(name, append(slices.Clone(prefix), dir)...))
	}
	return out
}

var (
	selectEntry = Entry{Desc: "select", Kind: LookupSelect, Actions: []keys.Action{keys.ToNormal}}
	normalEntry = all("normal", keys.ToNormal)

	scrollEntries = []Entry{
		all("search", keys.SwitchTo(keys.ModeEnterSearch)),
		group("scroll", keys.Act("ScrollDown"), keys.Act("ScrollUp")),
		group("page", keys.Act("PageScrollDown"), keys.Act("PageScrollUp")),
		group("half page", keys.Act("HalfPageScrollDown"), keys.Act("HalfPageScrollUp")),
	}
)

// catalogues lists, per mode, the hints shown in that mode in order.
var catalogues = map[keys.Mode][]Entry{
	keys.ModeNormal: {
		all("pane", keys.SwitchTo(keys.ModePane), keys.Act("NewPane")),
		all("tab", keys.SwitchTo(keys.ModeTab), keys.Act("NewTab")),
		all("resize", keys.SwitchTo(keys.ModeResize)),
		all("move", keys.SwitchTo(keys.ModeMove)),
		all("scroll", keys.SwitchTo(keys.ModeScroll)),
		all("search", keys.SwitchTo(keys.ModeSearch)),
		all("session", keys.SwitchTo(keys.ModeSession)),
		all("quit", keys.Act("Quit")),
	},
	keys.ModePane: {
		first("new", keys.Act("NewPane")),
		first("close", keys.Act("CloseFocus")),
		first("fullscreen", keys.Act("ToggleFocusFullscreen")),
		first("floating", keys.Act("ToggleFloatingPanes")),
		first("embed", keys.Act("TogglePaneEmbedOrFloating")),
		first("split right", keys.Act("NewPane", "Right")),
		first("split down", keys.Act("NewPane", "Down")),
		first("rename", keys.SwitchTo(keys.ModeRenamePane)),
		group("move", directions("MoveFocus")...),
		selectEntry,
	},
	keys.ModeTab: {
		first("new", keys.Act("NewTab")),
		first("close", keys.Act("CloseTab")),
		first("break pane", keys.Act("BreakPane")),
		first("sync", keys.Act("ToggleActiveSyncTab")),
		first("rename", keys.SwitchTo(keys.ModeRenameTab)),
		{Desc: "move", Kind: LookupLeftRight, Actions: []keys.Action{keys.Act("GoToPreviousTab"), keys.Act("GoToNextTab")}},
		selectEntry,
	},
	keys.ModeResize: {
		group("resize", keys.Act("Resize", "Increase"), keys.Act("Resize", "Decrease")),
		group("increase", directions("Resize", "Increase")...),
		group("decrease", directions("Resize", "Decrease")...),
		selectEntry,
	},
	keys.ModeMove: {
		group("move", directions("MovePane")...),
		selectEntry,
	},
	keys.ModeScroll: append(slices.Clone(scrollEntries),
		first("edit", keys.Act("EditScrollback")),
		selectEntry,
	),
	keys.ModeSearch: append(slices.Clone(scrollEntries),
		first("down", keys.Act("Search", "Down")),
		first("up", keys.Act("Search", "Up")),
		selectEntry,
	),
	keys.ModeSession: {
		all("detach", keys.Act("Detach")),
		normalEntry,
	},
}

// Catalogue returns the hint entries for mode. Modes without their own
// catalogue only offer the way back to normal mode.
func Catalogue(mode keys.Mode) []Entry {
	if entries, ok := catalogues[mode]; ok {
		return entries
	}
	return []Entry{normalEntry}
}

var (
	enter = keys.NewChord(keys.SpecialKey(keys.CodeEnter))
	left  = keys.NewChord(keys.SpecialKey(keys.CodeLeft))
	right = keys.NewChord(keys.SpecialKey(keys.CodeRight))
)

// Resolve returns the chords entry e shows in mode. The result is empty
// when nothing is bound.
func (e Entry) Resolve(mode keys.Mode, cat *catalog.Catalog) []keys.Chord {
	switch e.Kind {
	case LookupFirst:
		for _, a := range e.Actions {
			if c, ok := cat.First(mode, a); ok {
				return []keys.Chord{c}
			}
		}
		return nil

	case LookupGroup:
		return cat.LookupGroup(mode, e.Actions)

	case LookupSelect:
		chords := cat.Lookup(mode, keys.ToNormal)
		if len(chords) == 0 {
			return nil
		}
		if slices.Contains(chords, enter) {
			return []keys.Chord{enter}
		}
		return chords[:1]

	case LookupLeftRight:
		var bound []keys.Chord
		for _, a := range e.Actions {
			bound = append(bound, cat.Lookup(mode, a)...)
		}
		if slices.Contains(bound, left) && slices.Contains(bound, right) {
			return []keys.Chord{left, right}
		}
		return cat.LookupGroup(mode, e.Actions)

	default:
		for _, a := range e.Actions {
			if chords := cat.Lookup(mode, a); len(chords) > 0 {
				return chords
			}
		}
		return nil
	}
}
