package catalog

// allButLocked lists the modes that share the "leave to normal" bindings.
var allButLocked = []string{
	"pane", "tab", "resize", "move", "scroll", "search", "session", "rename_tab", "rename_pane", "tmux",
}

// DefaultBindings returns the host's stock keybindings. They are used when
// no keybinding configuration has been received yet.
func DefaultBindings() []Binding {
	return []Binding{
		// Normal mode: mode switches.
		{Modes: []string{"normal"}, Keys: []string{"Ctrl g"}, Actions: []string{`SwitchToMode "Locked"`}},
		{Modes: []string{"normal"}, Keys: []string{"Ctrl p"}, Actions: []string{`SwitchToMode "Pane"`}},
		{Modes: []string{"normal"}, Keys: []string{"Ctrl t"}, Actions: []string{`SwitchToMode "Tab"`}},
		{Modes: []string{"normal"}, Keys: []string{"Ctrl n"}, Actions: []string{`SwitchToMode "Resize"`}},
		{Modes: []string{"normal"}, Keys: []string{"Ctrl h"}, Actions: []string{`SwitchToMode "Move"`}},
		{Modes: []string{"normal"}, Keys: []string{"Ctrl s"}, Actions: []string{`SwitchToMode "Scroll"`}},
		{Modes: []string{"normal"}, Keys: []string{"Ctrl o"}, Actions: []string{`SwitchToMode "Session"`}},
		{Modes: []string{"normal"}, Keys: []string{"Ctrl q"}, Actions: []string{"Quit"}},
		{Modes: []string{"normal"}, Keys: []string{"Alt n"}, Actions: []string{"NewPane"}},
		{Modes: []string{"normal"}, Keys: []string{"Alt f"}, Actions: []string{"ToggleFloatingPanes"}},
		{Modes: []string{"normal"}, Keys: []string{"Alt h", "Alt Left"}, Actions: []string{`MoveFocusOrTab "Left"`}},
		{Modes: []string{"normal"}, Keys: []string{"Alt l", "Alt Right"}, Actions: []string{`MoveFocusOrTab "Right"`}},
		{Modes: []string{"normal"}, Keys: []string{"Alt j", "Alt Down"}, Actions: []string{`MoveFocus "Down"`}},
		{Modes: []string{"normal"}, Keys: []string{"Alt k", "Alt Up"}, Actions: []string{`MoveFocus "Up"`}},

		// Locked mode.
		{Modes: []string{"locked"}, Keys: []string{"Ctrl g"}, Actions: []string{`SwitchToMode "Normal"`}},

		// Shared "back to normal" keys.
		{Modes: allButLocked, Keys: []string{"Enter", "Esc"}, Actions: []string{`SwitchToMode "Normal"`}},

		// Pane mode.
		{Modes: []string{"pane"}, Keys: []string{"Ctrl p"}, Actions: []string{`SwitchToMode "Normal"`}},
		{Modes: []string{"pane"}, Keys: []string{"h", "Left"}, Actions: []string{`MoveFocus "Left"`}},
		{Modes: []string{"pane"}, Keys: []string{"j", "Down"}, Actions: []string{`MoveFocus "Down"`}},
		{Modes: []string{"pane"}, Keys: []string{"k", "Up"}, Actions: []string{`MoveFocus "Up"`}},
		{Modes: []string{"pane"}, Keys: []string{"l", "Right"}, Actions: []string{`MoveFocus "Right"`}},
		{Modes: []string{"pane"}, Keys: []string{"p"}, Actions: []string{"SwitchFocus"}},
		{Modes: []string{"pane"}, Keys: []string{"n"}, Actions: []string{"NewPane", `SwitchToMode "Normal"`}},
		{Modes: []string{"pane"}, Keys: []string{"d"}, Actions: []string{`NewPane "Down"`, `SwitchToMode "Normal"`}},
		{Modes: []string{"pane"}, Keys: []string{"r"}, Actions: []string{`NewPane "Right"`, `SwitchToMode "Normal"`}},
		{Modes: []string{"pane"}, Keys: []string{"x"}, Actions: []string{"CloseFocus", `SwitchToMode "Normal"`}},
		{Modes: []string{"pane"}, Keys: []string{"f"}, Actions: []string{"ToggleFocusFullscreen", `SwitchToMode "Normal"`}},
		{Modes: []string{"pane"}, Keys: []string{"z"}, Actions: []string{"TogglePaneFrames", `SwitchToMode "Normal"`}},
		{Modes: []string{"pane"}, Keys: []string{"w"}, Actions: []string{"ToggleFloatingPanes", `SwitchToMode "Normal"`}},
		{Modes: []string{"pane"}, Keys: []string{"e"}, Actions: []string{"TogglePaneEmbedOrFloating", `SwitchToMode "Normal"`}},
		{Modes: []string{"pane"}, Keys: []string{"c"}, Actions: []string{`SwitchToMode "RenamePane"`, "PaneNameInput 0"}},

		// Tab mode.
		{Modes: []string{"tab"}, Keys: []string{"Ctrl t"}, Actions: []string{`SwitchToMode "Normal"`}},
		{Modes: []string{"tab"}, Keys: []string{"r"}, Actions: []string{`SwitchToMode "RenameTab"`, "TabNameInput 0"}},
		{Modes: []string{"tab"}, Keys: []string{"h", "Left", "Up", "k"}, Actions: []string{"GoToPreviousTab"}},
		{Modes: []string{"tab"}, Keys: []string{"l", "Right", "Down", "j"}, Actions: []string{"GoToNextTab"}},
		{Modes: []string{"tab"}, Keys: []string{"n"}, Actions: []string{"NewTab", `SwitchToMode "Normal"`}},
		{Modes: []string{"tab"}, Keys: []string{"x"}, Actions: []string{"CloseTab", `SwitchToMode "Normal"`}},
		{Modes: []string{"tab"}, Keys: []string{"s"}, Actions: []string{"ToggleActiveSyncTab", `SwitchToMode "Normal"`}},
		{Modes: []string{"tab"}, Keys: []string{"b"}, Actions: []string{"BreakPane", `SwitchToMode "Normal"`}},
		{Modes: []string{"tab"}, Keys: []string{"Tab"}, Actions: []string{"ToggleTab"}},

		// Resize mode.
		{Modes: []string{"resize"}, Keys: []string{"Ctrl n"}, Actions: []string{`SwitchToMode "Normal"`}},
		{Modes: []string{"resize"}, Keys: []string{"h", "Left"}, Actions: []string{`Resize "Increase Left"`}},
		{Modes: []string{"resize"}, Keys: []string{"j", "Down"}, Actions: []string{`Resize "Increase Down"`}},
		{Modes: []string{"resize"}, Keys: []string{"k", "Up"}, Actions: []string{`Resize "Increase Up"`}},
		{Modes: []string{"resize"}, Keys: []string{"l", "Right"}, Actions: []string{`Resize "Increase Right"`}},
		{Modes: []string{"resize"}, Keys: []string{"H"}, Actions: []string{`Resize "Decrease Left"`}},
		{Modes: []string{"resize"}, Keys: []string{"J"}, Actions: []string{`Resize "Decrease Down"`}},
		{Modes: []string{"resize"}, Keys: []string{"K"}, Actions: []string{`Resize "Decrease Up"`}},
		{Modes: []string{"resize"}, Keys: []string{"L"}, Actions: []string{`Resize "Decrease Right"`}},
		{Modes: []string{"resize"}, Keys: []string{"=", "+"}, Actions: []string{`Resize "Increase"`}},
		{Modes: []string{"resize"}, Keys: []string{"-"}, Actions: []string{`Resize "Decrease"`}},

		// Move mode.
		{Modes: []string{"move"}, Keys: []string{"Ctrl h"}, Actions: []string{`SwitchToMode "Normal"`}},
		{Modes: []string{"move"}, Keys: []string{"n", "Tab"}, Actions: []string{"MovePane"}},
		{Modes: []string{"move"}, Keys: []string{"p"}, Actions: []string{"MovePaneBackwards"}},
		{Modes: []string{"move"}, Keys: []string{"h", "Left"}, Actions: []string{`MovePane "Left"`}},
		{Modes: []string{"move"}, Keys: []string{"j", "Down"}, Actions: []string{`MovePane "Down"`}},
		{Modes: []string{"move"}, Keys: []string{"k", "Up"}, Actions: []string{`MovePane "Up"`}},
		{Modes: []string{"move"}, Keys: []string{"l", "Right"}, Actions: []string{`MovePane "Right"`}},

		// Scroll and search modes.
		{Modes: []string{"scroll"}, Keys: []string{"Ctrl s"}, Actions: []string{`SwitchToMode "Normal"`}},
		{Modes: []string{"scroll"}, Keys: []string{"e"}, Actions: []string{"EditScrollback", `SwitchToMode "Normal"`}},
		{Modes: []string{"scroll"}, Keys: []string{"s"}, Actions: []string{`SwitchToMode "EnterSearch"`, "SearchInput 0"}},
		{Modes: []string{"search"}, Keys: []string{"Ctrl s"}, Actions: []string{`SwitchToMode "Normal"`}},
		{Modes: []string{"search"}, Keys: []string{"s"}, Actions: []string{`SwitchToMode "EnterSearch"`, "SearchInput 0"}},
		{Modes: []string{"search"}, Keys: []string{"n"}, Actions: []string{`Search "down"`}},
		{Modes: []string{"search"}, Keys: []string{"p"}, Actions: []string{`Search "up"`}},
		{Modes: []string{"scroll", "search"}, Keys: []string{"j", "Down"}, Actions: []string{"ScrollDown"}},
		{Modes: []string{"scroll", "search"}, Keys: []string{"k", "Up"}, Actions: []string{"ScrollUp"}},
		{Modes: []string{"scroll", "search"}, Keys: []string{"Ctrl f", "PageDown", "Right", "l"}, Actions: []string{"PageScrollDown"}},
		{Modes: []string{"scroll", "search"}, Keys: []string{"Ctrl b", "PageUp", "Left", "h"}, Actions: []string{"PageScrollUp"}},
		{Modes: []string{"scroll", "search"}, Keys: []string{"d"}, Actions: []string{"HalfPageScrollDown"}},
		{Modes: []string{"scroll", "search"}, Keys: []string{"u"}, Actions: []string{"HalfPageScrollUp"}},
		{Modes: []string{"enter_search"}, Keys: []string{"Ctrl c", "Esc"}, Actions: []string{`SwitchToMode "Scroll"`}},
		{Modes: []string{"enter_search"}, Keys: []string{"Enter"}, Actions: []string{`SwitchToMode "Search"`}},

		// Session mode.
		{Modes: []string{"session"}, Keys: []string{"Ctrl o"}, Actions: []string{`SwitchToMode "Normal"`}},
		{Modes: []string{"session"}, Keys: []string{"d"}, Actions: []string{"Detach"}},

		// Rename modes.
		{Modes: []string{"rename_tab"}, Keys: []string{"Ctrl c"}, Actions: []string{`SwitchToMode "Normal"`}},
		{Modes: []string{"rename_pane"}, Keys: []string{"Ctrl c"}, Actions: []string{`SwitchToMode "Normal"`}},
	}
}
