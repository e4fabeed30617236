package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"pgregory.net/rapid"
)

// =============================================================================
// Unit Tests
// =============================================================================

func TestHistoryPanel_Empty(t *testing.T) {
	p := NewHistoryPanel()
	p.SetSize(60, 10)

	if p.Selected() != nil {
		t.Error("empty panel should have no selection")
	}
	if !strings.Contains(Strip(p.View()), "No events yet") {
		t.Error("empty panel should say so")
	}
}

func TestHistoryPanel_AddSelectsNewest(t *testing.T) {
	p := NewHistoryPanel()
	p.SetSize(80, 10)

	p.Add(Entry{Event: "mode", Tier: "hints", Line: Line{Text: "Ctrl p pane"}})
	p.Add(Entry{Event: "clipboard", Tier: "clipboard", Line: Line{Text: "Text copied"}})

	if got := p.Selected(); got == nil || got.Event != "clipboard" {
		t.Fatalf("Selected() = %+v, want the newest entry", got)
	}

	view := Strip(p.View())
	for _, want := range []string{"History", "mode", "Ctrl p pane", "→ clipboard"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHistoryPanel_EmptyLineShown(t *testing.T) {
	p := NewHistoryPanel()
	p.SetSize(80, 10)
	p.Add(Entry{Event: "mode", Tier: "hints"})

	if !strings.Contains(Strip(p.View()), "(empty)") {
		t.Error("an empty render should be marked")
	}
}

func TestHistoryPanel_Navigation(t *testing.T) {
	p := NewHistoryPanel()
	p.SetSize(80, 10)
	for i := range 3 {
		p.Add(Entry{Event: fmt.Sprintf("e%d", i)})
	}

	tests := []struct {
		key      string
		expected string
	}{
		{"k", "e1"},
		{"up", "e0"},
		{"k", "e0"},
		{"j", "e1"},
		{"G", "e2"},
		{"down", "e2"},
		{"g", "e0"},
	}

	for _, tt := range tests {
		var msg tea.KeyPressMsg
		switch tt.key {
		case "up":
			msg = tea.KeyPressMsg{Code: tea.KeyUp}
		case "down":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		default:
			msg = tea.KeyPressMsg{Code: rune(tt.key[0]), Text: tt.key}
		}
		p.Update(msg)

		if got := p.Selected().Event; got != tt.expected {
			t.Errorf("after %q selected %q, want %q", tt.key, got, tt.expected)
		}
	}
}

// =============================================================================
// Property Tests
// =============================================================================

// Property: the panel never keeps more than the limit and always keeps the
// newest entries.
func TestHistoryPanel_Bounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, historyLimit*2).Draw(t, "n")
		p := NewHistoryPanel()
		for i := range n {
			p.Add(Entry{Event: fmt.Sprint(i)})
		}

		if p.Len() != min(n, historyLimit) {
			t.Fatalf("Len() = %d, want %d", p.Len(), min(n, historyLimit))
		}
		if n > 0 && p.Selected().Event != fmt.Sprint(n-1) {
			t.Fatalf("newest entry not selected: %q", p.Selected().Event)
		}
	})
}
