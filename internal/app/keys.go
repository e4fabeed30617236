package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/zjhints/internal/ui/help"
)

// Action is a function that executes a keybinding's behavior
type Action func(m *Model) (Model, tea.Cmd)

// ActionBinding combines a display binding with its action for dispatch.
type ActionBinding struct {
	help.HelpBinding        // embedded for display (Binding, Category, Order)
	Action           Action // nil = display-only (no action)
}

// dispatchKey iterates through bindings and executes the first matching action.
// Returns nil, nil if no binding matches.
func dispatchKey(m *Model, msg tea.KeyPressMsg, bindings []ActionBinding) (*Model, tea.Cmd) {
	for _, ab := range bindings {
		if key.Matches(msg, ab.Binding) && ab.Action != nil {
			newModel, cmd := ab.Action(m)
			return &newModel, cmd
		}
	}
	return nil, nil
}

// ToHelpBindings extracts display-only bindings from action bindings.
func ToHelpBindings(abs []ActionBinding) []help.HelpBinding {
	result := make([]help.HelpBinding, len(abs))
	for i, ab := range abs {
		result[i] = ab.HelpBinding
	}
	return result
}

// KeyMap defines the preview's own key bindings. They simulate the host
// events the hint line reacts to.
type KeyMap struct {
	// Mode
	NextMode key.Binding
	PrevMode key.Binding
	Lock     key.Binding
	BaseMode key.Binding

	// Session state
	Fullscreen key.Binding
	Floating   key.Binding
	Copy       key.Binding
	CopyError  key.Binding
	Input      key.Binding

	// Preview
	History  key.Binding
	Narrower key.Binding
	Wider    key.Binding
	Reload   key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("⇥/→", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("⇧⇥/←", "prev mode"),
		),
		Lock: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lock"),
		),
		BaseMode: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle base mode"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Floating: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "floating panes"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		CopyError: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "copy error"),
		),
		Input: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "input"),
		),
		History: key.NewBinding(
			key.WithKeys("j", "k", "up", "down", "g", "G"),
			key.WithHelp("j/k", "scroll history"),
		),
		Narrower: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrower"),
		),
		Wider: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wider"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload config"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
