package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// historyLimit bounds how many renders the panel keeps.
const historyLimit = 200

// Entry is one render shown in the history panel.
type Entry struct {
	Event string
	Tier  string
	Line  Line
}

// HistoryPanel lists past renders, newest last.
type HistoryPanel struct {
	viewport viewport.Model
	entries  []Entry
	cursor   int
	width    int
	height   int
}

// NewHistoryPanel creates an empty history panel
func NewHistoryPanel() HistoryPanel {
	return HistoryPanel{viewport: viewport.New()}
}

// SetSize sets the panel dimensions
func (p *HistoryPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	// Account for border (2) and title (1)
	p.viewport.SetWidth(max(width-2, 0))
	p.viewport.SetHeight(max(height-3, 0))
	p.updateViewport()
}

// Add appends a render and moves the cursor to it. The oldest entries
// are dropped past the limit.
func (p *HistoryPanel) Add(e Entry) {
	p.entries = append(p.entries, e)
	if over := len(p.entries) - historyLimit; over > 0 {
		p.entries = append(p.entries[:0:0], p.entries[over:]...)
	}
	p.cursor = len(p.entries) - 1
	p.updateViewport()
}

// Len returns the number of entries kept.
func (p *HistoryPanel) Len() int {
	return len(p.entries)
}

// Selected returns the entry under the cursor
func (p *HistoryPanel) Selected() *Entry {
	if p.cursor >= 0 && p.cursor < len(p.entries) {
		return &p.entries[p.cursor]
	}
	return nil
}

// CursorUp moves the cursor up
func (p *HistoryPanel) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
		p.updateViewport()
	}
}

// CursorDown moves the cursor down
func (p *HistoryPanel) CursorDown() {
	if p.cursor < len(p.entries)-1 {
		p.cursor++
		p.updateViewport()
	}
}

// GotoTop moves to the oldest entry
func (p *HistoryPanel) GotoTop() {
	p.cursor = 0
	p.updateViewport()
}

// GotoBottom moves to the newest entry
func (p *HistoryPanel) GotoBottom() {
	if len(p.entries) > 0 {
		p.cursor = len(p.entries) - 1
		p.updateViewport()
	}
}

func (p *HistoryPanel) updateViewport() {
	if len(p.entries) == 0 {
		p.viewport.SetContent("No events yet")
		return
	}

	lines := make([]string, len(p.entries))
	for i, e := range p.entries {
		marker := "  "
		if i == p.cursor {
			marker = "→ "
		}
		text := e.Line.Text
		if text == "" {
			text = DimStyle.Render("(empty)")
		}
		lines[i] = fmt.Sprintf("%s%s %s %s",
			marker,
			LabelStyle.Render(fmt.Sprintf("%-15s", e.Event)),
			DimStyle.Render(fmt.Sprintf("%-15s", e.Tier)),
			text,
		)
	}
	p.viewport.SetContentLines(lines)
	p.viewport.EnsureVisible(p.cursor, 0, 0)
}

// Update handles input
func (p *HistoryPanel) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "j", "down":
			p.CursorDown()
		case "k", "up":
			p.CursorUp()
		case "g", "home":
			p.GotoTop()
		case "G", "end":
			p.GotoBottom()
		}
	}
	return nil
}

// View renders the panel
func (p HistoryPanel) View() string {
	style := PanelStyle
	if p.width > 0 {
		style = style.Width(p.width)
	}
	content := PanelTitle("History") + "\n" + strings.TrimRight(p.viewport.View(), "\n")
	return style.Render(content)
}
