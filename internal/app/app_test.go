package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/chatter/zjhints/internal/config"
	"github.com/chatter/zjhints/internal/keys"
	"github.com/chatter/zjhints/internal/logger"
	"github.com/chatter/zjhints/internal/plugin"
	"github.com/chatter/zjhints/internal/ui"
)

var previewTime = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Config{Options: config.Default(), Palette: ui.DefaultPalette()}
	p := plugin.New(cfg, plugin.WithClock(func() time.Time { return previewTime }))

	m := New(p, logger.Nop(), "", "test")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return next.(Model)
}

func sendKey(t *testing.T, m Model, msg tea.KeyPressMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_InitialLine(t *testing.T) {
	m := newTestModel(t)

	got := ui.Strip(m.line.Text)
	if !strings.HasPrefix(got, "Ctrl p pane") {
		t.Errorf("initial line = %q", got)
	}
}

func TestModel_ModeCycling(t *testing.T) {
	m := newTestModel(t)
	modes := keys.AllModes()

	m = sendKey(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	if got := m.plugin.State().Mode; got != modes[1] {
		t.Errorf("after tab mode = %v, want %v", got, modes[1])
	}

	m = sendKey(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	m = sendKey(t, m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if got := m.plugin.State().Mode; got != modes[len(modes)-1] {
		t.Errorf("prev mode wraps to %v, got %v", modes[len(modes)-1], got)
	}
}

func TestModel_StateKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []rune
		expected string
	}{
		{"copy", []rune{'c'}, "Text copied to system clipboard"},
		{"copy error", []rune{'e'}, "Error using the system clipboard."},
		{"input clears", []rune{'c', 'i'}, "Ctrl p pane"},
		{"fullscreen", []rune{'f'}, "FULLSCREEN + 2 hidden panes"},
		{"floating", []rune{'w'}, "FLOATING PANES VISIBLE"},
		{"lock", []rune{'l'}, "LOCKED"},
		{"unlock", []rune{'l', 'l'}, "Ctrl p pane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			for _, r := range tt.keys {
				m = sendKey(t, m, press(r))
			}
			if got := ui.Strip(m.line.Text); !strings.HasPrefix(got, tt.expected) {
				t.Errorf("line = %q, want prefix %q", got, tt.expected)
			}
		})
	}
}

func TestModel_BaseModeToggle(t *testing.T) {
	m := newTestModel(t)

	m = sendKey(t, m, press('b'))
	if got := m.plugin.State().BaseMode; got != keys.ModeLocked {
		t.Errorf("base mode = %v, want locked", got)
	}

	m = sendKey(t, m, press('l'))
	if m.line.Text != "" {
		t.Errorf("locked with locked base mode should be empty, got %q", ui.Strip(m.line.Text))
	}
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel(t)
	full := m.line.Width

	m = sendKey(t, m, press('-'))
	if m.plugin.State().Options.MaxLength != full-widthStep {
		t.Errorf("max_length = %d, want %d", m.plugin.State().Options.MaxLength, full-widthStep)
	}
	if !m.line.Truncated || m.line.Width > full-widthStep {
		t.Errorf("line not truncated to %d: %+v", full-widthStep, m.line)
	}

	m = sendKey(t, m, press('+'))
	if m.line.Truncated {
		t.Errorf("line still truncated at full width")
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)

	m = sendKey(t, m, press('?'))
	if !m.showHelp {
		t.Fatal("expected help to open")
	}

	// Keys other than ? and esc are absorbed while help is open.
	m = sendKey(t, m, press('c'))
	if m.plugin.State().Clipboard != nil {
		t.Error("key leaked through the help modal")
	}

	m = sendKey(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.showHelp {
		t.Error("expected esc to close help")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(press('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)

	out := ui.Strip(m.render())
	for _, want := range []string{"Hint line", "Ctrl p pane", "mode Normal", "showing hints", "? help"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = sendKey(t, m, press('?'))
	if out := ui.Strip(m.render()); !strings.Contains(out, "Mode hints") {
		t.Error("help overlay should list the mode hints")
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	cfg := config.Config{Options: config.Default()}
	m := New(plugin.New(cfg), logger.Nop(), "", "test")

	if got := m.render(); got != "Loading..." {
		t.Errorf("render() = %q", got)
	}
	if !m.View().AltScreen {
		t.Error("preview should use the alternate screen")
	}
}
