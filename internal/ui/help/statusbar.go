package help

import (
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBar renders the preview's bottom line: key hints on the left and a
// right-aligned label (the current mode).
type StatusBar struct {
	width    int
	label    string
	bindings []HelpBinding

	// Styles
	keyStyle  lipgloss.Style
	descStyle lipgloss.Style
	sepStyle  lipgloss.Style
}

// NewStatusBar creates a new status bar that displays the given label.
func NewStatusBar(label string) *StatusBar {
	return &StatusBar{
		label:     label,
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
		sepStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
	}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetLabel replaces the right-aligned label.
func (s *StatusBar) SetLabel(label string) {
	s.label = label
}

// SetBindings sets the keybindings shown as inline hints.
func (s *StatusBar) SetBindings(bindings []HelpBinding) {
	s.bindings = bindings
}

// View renders the status bar. Pinned bindings are always kept; the others
// are shown by Order until the width runs out, then "…" marks the cut.
func (s *StatusBar) View() string {
	if s.width <= 0 {
		return ""
	}

	var pinned, regular []HelpBinding
	for _, hb := range s.bindings {
		if !hb.Binding.Enabled() {
			continue
		}
		if hb.Pinned {
			pinned = append(pinned, hb)
		} else {
			regular = append(regular, hb)
		}
	}
	sort.SliceStable(regular, func(i, j int) bool { return regular[i].Order < regular[j].Order })
	sort.SliceStable(pinned, func(i, j int) bool { return pinned[i].Order < pinned[j].Order })

	sep := s.sepStyle.Render(" • ")
	ellipsis := s.sepStyle.Render(" …")

	const minGap = 1

	label := s.label
	labelWidth := lipgloss.Width(label)

	pinnedParts := s.render(pinned)
	pinnedText := strings.Join(pinnedParts, sep)

	budget := s.width - labelWidth - minGap
	if budget < lipgloss.Width(pinnedText) {
		budget = s.width
		label, labelWidth = "", 0
	}

	var shown []string
	truncated := false
	for _, part := range s.render(regular) {
		candidate := strings.Join(append(append(shown[:len(shown):len(shown)], part), pinnedParts...), sep)
		if lipgloss.Width(candidate)+lipgloss.Width(ellipsis) > budget {
			truncated = true
			break
		}
		shown = append(shown, part)
	}

	left := strings.Join(append(shown, pinnedParts...), sep)
	if truncated {
		left += ellipsis
	}
	leftWidth := lipgloss.Width(left)

	if leftWidth > s.width {
		return ""
	}
	if label == "" {
		return left + strings.Repeat(" ", s.width-leftWidth)
	}

	padding := max(s.width-leftWidth-labelWidth, minGap)
	return left + strings.Repeat(" ", padding) + label
}

func (s *StatusBar) render(bindings []HelpBinding) []string {
	parts := make([]string, len(bindings))
	for i, hb := range bindings {
		help := hb.Binding.Help()
		parts[i] = s.keyStyle.Render(help.Key) + " " + s.descStyle.Render(help.Desc)
	}
	return parts
}
