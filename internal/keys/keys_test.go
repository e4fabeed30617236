package keys

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

// =============================================================================
// Unit Tests - Chords
// =============================================================================

func TestParseChord(t *testing.T) {
	tests := []struct {
		input    string
		expected Chord
	}{
		{"p", NewChord(RuneKey('p'))},
		{"P", NewChord(RuneKey('P'))},
		{"Ctrl p", NewChord(RuneKey('p'), ModCtrl)},
		{"ctrl+p", NewChord(RuneKey('p'), ModCtrl)},
		{"Alt Shift Left", NewChord(SpecialKey(CodeLeft), ModAlt, ModShift)},
		{"Enter", NewChord(SpecialKey(CodeEnter))},
		{"esc", NewChord(SpecialKey(CodeEsc))},
		{"PageDown", NewChord(SpecialKey(CodePageDown))},
		{"F5", NewChord(SpecialKey(CodeF5))},
		{"f12", NewChord(SpecialKey(CodeF12))},
		{"←", NewChord(SpecialKey(CodeLeft))},
		{"+", NewChord(RuneKey('+'))},
		{"Ctrl++", NewChord(RuneKey('+'), ModCtrl)},
		{"  Alt   [  ", NewChord(RuneKey('['), ModAlt)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChord(tt.input)
			if err != nil {
				t.Fatalf("ParseChord(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseChord(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseChord_Malformed(t *testing.T) {
	inputs := []string{"", "   ", "Hyper p", "Ctrl", "Ctrl pp", "F13", "f0", "Ctrl \x01"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseChord(input)
			if !errors.Is(err, ErrMalformedChord) {
				t.Errorf("ParseChord(%q) error = %v, want ErrMalformedChord", input, err)
			}
		})
	}
}

func TestChordString(t *testing.T) {
	tests := []struct {
		chord    Chord
		expected string
	}{
		{NewChord(RuneKey('p')), "p"},
		{NewChord(RuneKey('p'), ModCtrl), "Ctrl p"},
		{NewChord(RuneKey('x'), ModAlt, ModCtrl), "Ctrl Alt x"},
		{NewChord(SpecialKey(CodeEnter)), "ENTER"},
		{NewChord(SpecialKey(CodeDown), ModAlt), "Alt ↓"},
		{NewChord(SpecialKey(CodeF3)), "F3"},
		{NewChord(SpecialKey(CodePageUp)), "PgUp"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.chord.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestModifierJoin(t *testing.T) {
	m := ModNone.With(ModSuper).With(ModCtrl).With(ModShift)
	if got := m.Join("-"); got != "Ctrl-Shift-Super" {
		t.Errorf("Join = %q, want %q", got, "Ctrl-Shift-Super")
	}
	if ModNone.String() != "" {
		t.Errorf("empty modifier should render as empty string, got %q", ModNone.String())
	}
}

// =============================================================================
// Unit Tests - Modes and Actions
// =============================================================================

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"normal", ModeNormal},
		{"Locked", ModeLocked},
		{"enter_search", ModeEnterSearch},
		{"EnterSearch", ModeEnterSearch},
		{"rename-pane", ModeRenamePane},
		{"TMUX", ModeTmux},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if err != nil {
				t.Fatalf("ParseMode(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}

	if _, err := ParseMode("visual"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(visual) error = %v, want ErrUnknownMode", err)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected Action
	}{
		{"NewPane", Act("NewPane")},
		{"newpane;", Act("NewPane")},
		{`MoveFocus "left"`, Act("MoveFocus", "Left")},
		{`Resize "Increase" "Left"`, Act("Resize", "Increase", "Left")},
		{`SwitchToMode "pane"`, SwitchTo(ModePane)},
		{"SwitchToMode enter_search", SwitchTo(ModeEnterSearch)},
		{`Search "down"`, Act("Search", "Down")},
		{`SearchInput 0`, Act("SearchInput", "0")},
		{`Run "htop"`, Act("Run", "htop")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if err != nil {
				t.Fatalf("ParseAction(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseAction(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseAction_Errors(t *testing.T) {
	if _, err := ParseAction("Teleport"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
	if _, err := ParseAction(""); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction for empty action, got %v", err)
	}
	if _, err := ParseAction("SwitchToMode Visual"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	if _, err := ParseActions([]string{"NewPane", "Bogus"}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction from sequence, got %v", err)
	}
}

// =============================================================================
// Property Tests
// =============================================================================

// Property: a chord's display form parses back to the same chord for
// character keys with any modifier set.
func TestChord_RoundTripsThroughDisplay(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.RuneFrom([]rune("abcdefghijklmnopqrstuvwxyz0123456789[]/?")).Draw(t, "rune")
		mods := Modifier(rapid.IntRange(0, 15).Draw(t, "mods"))
		chord := NewChord(RuneKey(r), mods)

		parsed, err := ParseChord(chord.String())
		if err != nil {
			t.Fatalf("ParseChord(%q) failed: %v", chord.String(), err)
		}
		if parsed != chord {
			t.Fatalf("round trip changed chord: %+v -> %q -> %+v", chord, chord.String(), parsed)
		}
	})
}

func TestMode_RoundTripsThroughText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mode := rapid.SampledFrom(AllModes()).Draw(t, "mode")
		text, _ := mode.MarshalText()

		var parsed Mode
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if parsed != mode {
			t.Fatalf("round trip changed mode: %v -> %v", mode, parsed)
		}
	})
}
