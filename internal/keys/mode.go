package keys

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode name is not recognised.
var ErrUnknownMode = errors.New("unknown mode")

// Mode is an input mode of the session manager.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeLocked
	ModeResize
	ModePane
	ModeTab
	ModeScroll
	ModeEnterSearch
	ModeSearch
	ModeRenameTab
	ModeRenamePane
	ModeSession
	ModeMove
	ModePrompt
	ModeTmux
)

var modeNames = [...]string{
	ModeNormal:      "Normal",
	ModeLocked:      "Locked",
	ModeResize:      "Resize",
	ModePane:        "Pane",
	ModeTab:         "Tab",
	ModeScroll:      "Scroll",
	ModeEnterSearch: "EnterSearch",
	ModeSearch:      "Search",
	ModeRenameTab:   "RenameTab",
	ModeRenamePane:  "RenamePane",
	ModeSession:     "Session",
	ModeMove:        "Move",
	ModePrompt:      "Prompt",
	ModeTmux:        "Tmux",
}

// AllModes lists every mode in declaration order.
func AllModes() []Mode {
	modes := make([]Mode, len(modeNames))
	for i := range modeNames {
		modes[i] = Mode(i)
	}
	return modes
}

// String returns the canonical mode name, e.g. "EnterSearch".
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode parses a mode name case-insensitively. Underscores and dashes
// are ignored, so "enter_search" and "EnterSearch" are the same mode.
func ParseMode(s string) (Mode, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for i, name := range modeNames {
		if strings.ToLower(name) == norm {
			return Mode(i), nil
		}
	}
	return ModeNormal, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so modes can be read
// directly from JSON events and TOML files.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
