// Package event decodes the host events that drive the renderer. Events
// arrive as JSON objects, one per line, discriminated by their "type"
// field:
//
//	{"type":"mode","mode":"pane","base_mode":"normal"}
//	{"type":"tabs","fullscreen_hidden":2,"floating_visible":false}
//	{"type":"clipboard","destination":"primary"}
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/chatter/zjhints/internal/catalog"
	"github.com/chatter/zjhints/internal/keys"
)

var (
	// ErrUnknownEvent is returned for a well-formed line whose type is not
	// recognised.
	ErrUnknownEvent = errors.New("unknown event type")

	// ErrMalformedEvent is returned for a line that is not a JSON object
	// with a string "type" field.
	ErrMalformedEvent = errors.New("malformed event")

	// ErrUnknownDestination is returned for an unrecognised clipboard
	// destination.
	ErrUnknownDestination = errors.New("unknown clipboard destination")
)

// Type discriminates events on the wire.
type Type string

const (
	TypeMode           Type = "mode"
	TypeKeybinds       Type = "keybinds"
	TypeTabs           Type = "tabs"
	TypeClipboard      Type = "clipboard"
	TypeClipboardError Type = "clipboard_error"
	TypeInput          Type = "input"
	TypeTick           Type = "tick"
	TypeReload         Type = "reload"
)

// Event is one decoded host event.
type Event interface {
	Type() Type
}

// Mode reports a mode change. BaseMode and Palette are optional and leave
// the current values alone when absent.
type Mode struct {
	Mode     keys.Mode         `json:"mode"`
	BaseMode *keys.Mode        `json:"base_mode,omitempty"`
	Palette  map[string]string `json:"palette,omitempty"`
}

// Keybinds replaces the whole keybinding configuration.
type Keybinds struct {
	Bindings []catalog.Binding `json:"bindings"`
}

// Tabs reports the active tab's pane layout. Locked overrides the flag
// derived from the mode when present.
type Tabs struct {
	FullscreenHidden int   `json:"fullscreen_hidden"`
	FloatingVisible  bool  `json:"floating_visible"`
	Locked           *bool `json:"locked,omitempty"`
}

// Clipboard reports a successful copy.
type Clipboard struct {
	Destination Destination `json:"destination"`
}

// ClipboardError reports a failed copy.
type ClipboardError struct{}

// Input reports user input; it clears clipboard messages.
type Input struct{}

// Tick asks for a redraw without changing state.
type Tick struct{}

// Reload asks for the configuration file to be read again.
type Reload struct{}

func (Mode) Type() Type           { return TypeMode }
func (Keybinds) Type() Type       { return TypeKeybinds }
func (Tabs) Type() Type           { return TypeTabs }
func (Clipboard) Type() Type      { return TypeClipboard }
func (ClipboardError) Type() Type { return TypeClipboardError }
func (Input) Type() Type          { return TypeInput }
func (Tick) Type() Type           { return TypeTick }
func (Reload) Type() Type         { return TypeReload }

// Destination is where copied text went.
type Destination int

const (
	DestinationSystem Destination = iota
	DestinationPrimary
	DestinationCommand
)

var destinationNames = map[Destination]string{
	DestinationSystem:  "system",
	DestinationPrimary: "primary",
	DestinationCommand: "command",
}

func (d Destination) String() string {
	if name, ok := destinationNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Destination(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Destination) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value means
// the system clipboard.
func (d *Destination) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "" {
		*d = DestinationSystem
		return nil
	}
	for dest, name := range destinationNames {
		if name == s {
			*d = dest
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownDestination, string(text))
}

// Decode parses one line. The type field is read first so unknown event
// types are rejected without decoding the payload.
func Decode(line []byte) (Event, error) {
	if !gjson.ValidBytes(line) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedEvent)
	}
	typ := gjson.GetBytes(line, "type")
	if typ.Type != gjson.String {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedEvent)
	}

	var ev Event
	switch Type(typ.Str) {
	case TypeMode:
		ev = &Mode{}
	case TypeKeybinds:
		ev = &Keybinds{}
	case TypeTabs:
		ev = &Tabs{}
	case TypeClipboard:
		ev = &Clipboard{}
	case TypeClipboardError:
		return ClipboardError{}, nil
	case TypeInput:
		return Input{}, nil
	case TypeTick:
		return Tick{}, nil
	case TypeReload:
		return Reload{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, typ.Str)
	}

	if err := json.Unmarshal(line, ev); err != nil {
		return nil, fmt.Errorf("%w: decoding %s event: %w", ErrMalformedEvent, typ.Str, err)
	}

	switch e := ev.(type) {
	case *Mode:
		return *e, nil
	case *Keybinds:
		return *e, nil
	case *Tabs:
		if e.FullscreenHidden < 0 {
			e.FullscreenHidden = 0
		}
		return *e, nil
	case *Clipboard:
		return *e, nil
	}
	return ev, nil
}
