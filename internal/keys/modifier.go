// Package keys holds the value types the hint renderer works on: modes,
// key chords with their modifiers, and the host's abstract actions.
package keys

import "strings"

// Modifier is a set of keyboard modifiers.
type Modifier uint8

const (
	// ModNone is the empty modifier set.
	ModNone Modifier = 0

	// ModCtrl is the Control key.
	ModCtrl Modifier = 1 << (iota - 1)

	// ModAlt is the Alt key (Option on macOS).
	ModAlt

	// ModShift is the Shift key.
	ModShift

	// ModSuper is the Super key (Cmd on macOS).
	ModSuper
)

// modifierOrder is the display order of modifiers.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModSuper, "Super"},
}

// modifierNames maps lowercase modifier spellings to their Modifier.
var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"meta":    ModSuper,
	"win":     ModSuper,
}

// Has reports whether m contains every modifier in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty reports whether no modifier is set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Names returns the modifier names in display order.
func (m Modifier) Names() []string {
	var names []string
	for _, entry := range modifierOrder {
		if m.Has(entry.mod) {
			names = append(names, entry.name)
		}
	}
	return names
}

// Join returns the modifier names joined by sep, e.g. "Ctrl-Alt".
func (m Modifier) Join(sep string) string {
	return strings.Join(m.Names(), sep)
}

// String returns the modifier names separated by spaces, e.g. "Ctrl Alt".
func (m Modifier) String() string {
	return m.Join(" ")
}

// ModifierFromName returns the Modifier for a case-insensitive name.
// The second result is false if the name is not a modifier.
func ModifierFromName(name string) (Modifier, bool) {
	mod, ok := modifierNames[strings.ToLower(name)]
	return mod, ok
}
