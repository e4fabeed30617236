// Package catalog builds the reverse index from actions to the key chords
// the user bound to them.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chatter/zjhints/internal/keys"
)

// Binding is one raw keybinding as it arrives from the host configuration:
// every key in Keys triggers the Actions sequence in every mode of Modes.
type Binding struct {
	Modes   []string `json:"modes" toml:"modes"`
	Keys    []string `json:"keys" toml:"keys"`
	Actions []string `json:"actions" toml:"actions"`
}

// ConfigError describes a binding that was skipped, fully or in part,
// while rebuilding the catalog.
type ConfigError struct {
	Index int    // position of the binding in the configuration
	Field string // "modes", "keys" or "actions"
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("binding %d: %s %q: %v", e.Index, e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Catalog maps, per mode, the leading action of every bound sequence to the
// chords that trigger it. A binding "n" -> [NewPane, SwitchToMode Normal]
// is indexed under NewPane. It is read-only once built.
type Catalog struct {
	modes map[keys.Mode]map[keys.Action][]keys.Chord
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{modes: make(map[keys.Mode]map[keys.Action][]keys.Chord)}
}

// Rebuild parses raw bindings into a new catalog. Invalid bindings are
// skipped: an unknown action or an empty action list drops the whole
// binding, an unknown mode drops that mode and a malformed chord drops that
// chord. Every skipped item is reported as a *ConfigError in the joined
// error; the returned catalog is always usable.
func Rebuild(bindings []Binding) (*Catalog, error) {
	c := New()
	var errs []error

	for i, b := range bindings {
		actions, err := keys.ParseActions(b.Actions)
		if err == nil && len(actions) == 0 {
			err = fmt.Errorf("%w: no actions", keys.ErrUnknownAction)
		}
		if err != nil {
			errs = append(errs, &ConfigError{Index: i, Field: "actions", Value: fmt.Sprint(b.Actions), Err: err})
			continue
		}

		var modes []keys.Mode
		for _, name := range b.Modes {
			mode, err := keys.ParseMode(name)
			if err != nil {
				errs = append(errs, &ConfigError{Index: i, Field: "modes", Value: name, Err: err})
				continue
			}
			modes = append(modes, mode)
		}

		for _, spec := range b.Keys {
			chord, err := keys.ParseChord(spec)
			if err != nil {
				errs = append(errs, &ConfigError{Index: i, Field: "keys", Value: spec, Err: err})
				continue
			}
			for _, mode := range modes {
				c.add(mode, actions[0], chord)
			}
		}
	}

	return c, errors.Join(errs...)
}

func (c *Catalog) add(mode keys.Mode, action keys.Action, chord keys.Chord) {
	byAction, ok := c.modes[mode]
	if !ok {
		byAction = make(map[keys.Action][]keys.Chord)
		c.modes[mode] = byAction
	}
	if slices.Contains(byAction[action], chord) {
		return
	}
	byAction[action] = append(byAction[action], chord)
}

// Lookup returns the chords bound to action in mode, in configuration
// order. The result is empty if the action is unbound. A nil catalog has
// no bindings.
func (c *Catalog) Lookup(mode keys.Mode, action keys.Action) []keys.Chord {
	if c == nil {
		return nil
	}
	return slices.Clone(c.modes[mode][action])
}

// First returns the first chord bound to action in mode.
func (c *Catalog) First(mode keys.Mode, action keys.Action) (keys.Chord, bool) {
	if c == nil {
		return keys.Chord{}, false
	}
	chords := c.modes[mode][action]
	if len(chords) == 0 {
		return keys.Chord{}, false
	}
	return chords[0], true
}

// LookupGroup returns the first chord of each action, in the order the
// actions are listed. Unbound actions are skipped.
func (c *Catalog) LookupGroup(mode keys.Mode, actions []keys.Action) []keys.Chord {
	var chords []keys.Chord
	for _, a := range actions {
		if chord, ok := c.First(mode, a); ok {
			chords = append(chords, chord)
		}
	}
	return chords
}

// Modes returns the modes that have at least one binding, in mode order.
func (c *Catalog) Modes() []keys.Mode {
	if c == nil {
		return nil
	}
	modes := make([]keys.Mode, 0, len(c.modes))
	for m := range c.modes {
		modes = append(modes, m)
	}
	slices.Sort(modes)
	return modes
}

// Len returns the number of indexed (mode, action) pairs.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, byAction := range c.modes {
		n += len(byAction)
	}
	return n
}
