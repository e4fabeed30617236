package help

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"
)

// sheetSections is the order sections appear on the sheet.
var sheetSections = []Category{CategoryHints, CategoryState, CategoryPreview}

// Sheet is the help overlay: every enabled binding, one table row each,
// under a row naming its category.
type Sheet struct {
	width, height int
	title         string
	bindings      []HelpBinding

	frame   lipgloss.Style
	heading lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	muted   lipgloss.Style
}

// NewSheet returns an empty sheet titled "Help".
func NewSheet() *Sheet {
	return &Sheet{
		title:   "Help",
		frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 2),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("86")).PaddingLeft(2).PaddingRight(2),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// SetSize bounds the sheet, border included.
func (s *Sheet) SetSize(width, height int) {
	s.width, s.height = width, height
}

// SetTitle replaces the heading.
func (s *Sheet) SetTitle(title string) {
	s.title = title
}

// SetBindings replaces the listed bindings.
func (s *Sheet) SetBindings(bindings []HelpBinding) {
	s.bindings = bindings
}

// View renders the sheet. Rows that do not fit are counted in the footer.
func (s *Sheet) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	w := s.width - s.frame.GetHorizontalFrameSize()
	h := s.height - s.frame.GetVerticalFrameSize()
	if w < 20 || h < 5 {
		return s.frame.Width(max(w, 10)).Render("...")
	}

	body := s.rows()
	room := h - 2 // heading and footer
	hidden := 0
	if len(body) > room {
		hidden = len(body) - room
		body = body[:room]
	}
	for i, line := range body {
		body[i] = ansi.Truncate(line, w, "…")
	}

	footer := "? to close"
	if hidden > 0 {
		footer = fmt.Sprintf("%d more · %s", hidden, footer)
	}

	top := lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(s.heading.Render(s.title), w, "…"),
		strings.Join(body, "\n"),
	)
	inner := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceVertical(h-1, lipgloss.Top, top),
		lipgloss.PlaceHorizontal(w, lipgloss.Right, s.muted.Render(footer)),
	)
	return s.frame.Render(inner)
}

// rows lays the enabled bindings out as a borderless two-column table and
// returns its lines.
func (s *Sheet) rows() []string {
	bySection := make(map[Category][]HelpBinding)
	for _, hb := range s.bindings {
		if hb.Binding.Enabled() {
			bySection[hb.Category] = append(bySection[hb.Category], hb)
		}
	}

	t := table.New().
		BorderTop(false).BorderBottom(false).
		BorderLeft(false).BorderRight(false).
		BorderColumn(false).BorderHeader(false).
		Wrap(false)

	headers := make(map[int]bool)
	n := 0
	for _, cat := range sheetSections {
		list := bySection[cat]
		if len(list) == 0 {
			continue
		}
		slices.SortStableFunc(list, func(a, b HelpBinding) int { return a.Order - b.Order })

		if n > 0 {
			t.Row("", "")
			n++
		}
		t.Row(string(cat), "")
		headers[n] = true
		n++
		for _, hb := range list {
			help := hb.Binding.Help()
			t.Row(help.Key, help.Desc)
			n++
		}
	}
	if n == 0 {
		return []string{s.muted.Render("No keys bound in this mode")}
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case headers[row]:
			return s.section
		case col == 0:
			return s.key
		default:
			return s.desc
		}
	})
	return strings.Split(t.Render(), "\n")
}
