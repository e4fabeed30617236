package keys

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when an action name is not one the host knows.
var ErrUnknownAction = errors.New("unknown action")

// Action is an abstract host operation such as "NewPane" or
// "SwitchToMode Pane". Actions are comparable.
type Action struct {
	Name string
	Arg  string
}

// knownActions is the set of action names the host accepts.
var knownActions = []string{
	"BreakPane", "BreakPaneLeft", "BreakPaneRight", "ClearScreen", "CloseFocus",
	"CloseTab", "Copy", "Detach", "DumpScreen", "EditScrollback", "FocusNextPane",
	"FocusPreviousPane", "GoToNextTab", "GoToPreviousTab", "GoToTab",
	"HalfPageScrollDown", "HalfPageScrollUp", "LaunchOrFocusPlugin", "LaunchPlugin",
	"MessagePlugin", "MoveFocus", "MoveFocusOrTab", "MovePane", "MovePaneBackwards",
	"MoveTab", "NewPane", "NewTab", "NextSwapLayout", "NoOp", "PageScrollDown",
	"PageScrollUp", "PaneNameInput", "PreviousSwapLayout", "Quit", "RenameSession",
	"Resize", "Run", "ScrollDown", "ScrollDownAt", "ScrollToBottom", "ScrollToTop",
	"ScrollUp", "ScrollUpAt", "Search", "SearchInput", "SearchToggleOption",
	"SwitchFocus", "SwitchToMode", "TabNameInput", "ToggleActiveSyncTab",
	"ToggleFloatingPanes", "ToggleFocusFullscreen", "ToggleGroupMarking",
	"ToggleMouseMode", "TogglePaneEmbedOrFloating", "TogglePaneFrames",
	"TogglePaneInGroup", "TogglePanePinned", "ToggleTab", "UndoRenamePane",
	"UndoRenameTab", "Write", "WriteChars",
}

// verbatimArgs lists actions whose argument is free-form and must not be
// case-normalised.
var verbatimArgs = map[string]bool{
	"GoToTab":             true,
	"LaunchOrFocusPlugin": true,
	"LaunchPlugin":        true,
	"MessagePlugin":       true,
	"PaneNameInput":       true,
	"RenameSession":       true,
	"Run":                 true,
	"SearchInput":         true,
	"TabNameInput":        true,
	"Write":               true,
	"WriteChars":          true,
}

var actionIndex = func() map[string]string {
	idx := make(map[string]string, len(knownActions))
	for _, name := range knownActions {
		idx[strings.ToLower(name)] = name
	}
	return idx
}()

// Act builds an action from a name and optional argument words.
func Act(name string, args ...string) Action {
	return Action{Name: name, Arg: strings.Join(args, " ")}
}

// SwitchTo is shorthand for the SwitchToMode action.
func SwitchTo(m Mode) Action {
	return Action{Name: "SwitchToMode", Arg: m.String()}
}

// ToNormal is the "return to normal mode" action.
var ToNormal = SwitchTo(ModeNormal)

// String renders the action as "Name Arg".
func (a Action) String() string {
	if a.Arg == "" {
		return a.Name
	}
	return a.Name + " " + a.Arg
}

// ParseAction parses `NewPane`, `MoveFocus Left`, `SwitchToMode "pane";`
// and similar forms. Names are matched case-insensitively against the known
// action table. Arguments are unquoted and, except for free-form actions,
// title-cased so that "left" and "Left" compare equal.
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ";"))
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("%w: empty", ErrUnknownAction)
	}

	name, ok := actionIndex[strings.ToLower(fields[0])]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, fields[0])
	}

	args := make([]string, 0, len(fields)-1)
	for _, f := range fields[1:] {
		f = strings.Trim(f, `"'`)
		if f == "" {
			continue
		}
		if !verbatimArgs[name] {
			f = titleWord(f)
		}
		args = append(args, f)
	}

	if name == "SwitchToMode" {
		if len(args) != 1 {
			return Action{}, fmt.Errorf("%w: SwitchToMode needs one mode, got %q", ErrUnknownMode, s)
		}
		mode, err := ParseMode(args[0])
		if err != nil {
			return Action{}, err
		}
		return SwitchTo(mode), nil
	}

	return Act(name, args...), nil
}

// ParseActions parses an action sequence. It stops at the first error.
func ParseActions(specs []string) ([]Action, error) {
	actions := make([]Action, 0, len(specs))
	for _, spec := range specs {
		a, err := ParseAction(spec)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	lower := strings.ToLower(w)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
