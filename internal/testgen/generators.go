// Package testgen provides rapid generators for key chords and raw
// keybinding configurations.
package testgen

import (
	"pgregory.net/rapid"

	"github.com/chatter/zjhints/internal/catalog"
	"github.com/chatter/zjhints/internal/keys"
)

// ChordOption transforms a Chord generator.
type ChordOption func(*rapid.Generator[keys.Chord]) *rapid.Generator[keys.Chord]

var chordRunes = []rune("abcdefghijklmnopqrstuvwxyzHJKL0123456789[]=-/?")

var specialCodes = []keys.Code{
	keys.CodeEnter, keys.CodeEsc, keys.CodeTab, keys.CodeLeft, keys.CodeRight,
	keys.CodeUp, keys.CodeDown, keys.CodePageUp, keys.CodePageDown, keys.CodeF1,
}

// Chord generates a key chord.
//
// By default, generates a character or special key with any modifier set.
// Options are transformers that modify the generator.
//
// Examples:
//
//	Chord()                  // Ctrl Alt k, ENTER, x ...
//	Chord(WithMods(ModCtrl)) // Ctrl <key>
//	Chord(WithoutMods)       // bare key
func Chord(opts ...ChordOption) *rapid.Generator[keys.Chord] {
	gen := rapid.Custom(func(t *rapid.T) keys.Chord {
		var k keys.Key
		if rapid.IntRange(0, 3).Draw(t, "special") == 0 {
			k = keys.SpecialKey(rapid.SampledFrom(specialCodes).Draw(t, "code"))
		} else {
			k = keys.RuneKey(rapid.SampledFrom(chordRunes).Draw(t, "rune"))
		}
		mods := keys.Modifier(rapid.IntRange(0, 15).Draw(t, "mods"))
		return keys.Chord{Key: k, Mods: mods}
	})
	for _, opt := range opts {
		gen = opt(gen)
	}
	return gen
}

// WithMods replaces the generated modifier set with mods.
func WithMods(mods keys.Modifier) ChordOption {
	return func(gen *rapid.Generator[keys.Chord]) *rapid.Generator[keys.Chord] {
		return rapid.Custom(func(t *rapid.T) keys.Chord {
			c := gen.Draw(t, "chord")
			c.Mods = mods
			return c
		})
	}
}

// WithoutMods strips modifiers from the generated chord.
func WithoutMods(gen *rapid.Generator[keys.Chord]) *rapid.Generator[keys.Chord] {
	return WithMods(keys.ModNone)(gen)
}

// Chords generates a non-empty chord sequence of at most max chords.
func Chords(max int, opts ...ChordOption) *rapid.Generator[[]keys.Chord] {
	return rapid.SliceOfN(Chord(opts...), 1, max)
}

// KnownActions returns the actions the generators bind. Tests iterate over
// it to probe every action a generated catalog can contain.
func KnownActions() []keys.Action {
	return []keys.Action{
		keys.ToNormal,
		keys.SwitchTo(keys.ModePane),
		keys.SwitchTo(keys.ModeTab),
		keys.SwitchTo(keys.ModeResize),
		keys.SwitchTo(keys.ModeScroll),
		keys.Act("NewPane"),
		keys.Act("CloseFocus"),
		keys.Act("ToggleFocusFullscreen"),
		keys.Act("ToggleFloatingPanes"),
		keys.Act("MoveFocus", "Left"),
		keys.Act("MoveFocus", "Right"),
		keys.Act("NewTab"),
		keys.Act("Quit"),
		keys.Act("Detach"),
	}
}

// actionSpecs are the textual forms of KnownActions plus an unknown one.
var actionSpecs = []string{
	`SwitchToMode "Normal"`, `SwitchToMode "Pane"`, `SwitchToMode "Tab"`,
	`SwitchToMode "Resize"`, `SwitchToMode "Scroll"`, "NewPane", "CloseFocus",
	"ToggleFocusFullscreen", "ToggleFloatingPanes", `MoveFocus "Left"`,
	`MoveFocus "Right"`, "NewTab", "Quit", "Detach", "Teleport",
}

var modeNames = []string{"normal", "pane", "tab", "resize", "scroll", "locked", "session", "visual"}

// ChordString generates a chord in textual form. Roughly one in ten is
// malformed so that callers exercise their error paths.
func ChordString() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		if rapid.IntRange(0, 9).Draw(t, "malformed") == 0 {
			return rapid.SampledFrom([]string{"Hyper x", "", "F99", "Ctrl"}).Draw(t, "bad")
		}
		return Chord().Draw(t, "chord").String()
	})
}

// Binding generates one raw binding, occasionally with an unknown mode,
// action or malformed chord.
func Binding() *rapid.Generator[catalog.Binding] {
	return rapid.Custom(func(t *rapid.T) catalog.Binding {
		return catalog.Binding{
			Modes:   rapid.SliceOfN(rapid.SampledFrom(modeNames), 1, 3).Draw(t, "modes"),
			Keys:    rapid.SliceOfN(ChordString(), 1, 4).Draw(t, "keys"),
			Actions: rapid.SliceOfN(rapid.SampledFrom(actionSpecs), 1, 2).Draw(t, "actions"),
		}
	})
}

// Bindings generates a keybinding configuration.
func Bindings() *rapid.Generator[[]catalog.Binding] {
	return rapid.SliceOfN(Binding(), 0, 20)
}
