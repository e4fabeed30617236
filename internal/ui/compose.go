package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Delimiter separates rendered segments.
const Delimiter = " "

// Line is a composed output line.
type Line struct {
	Text      string
	Width     int
	Truncated bool
}

// Composer serializes segments into a single width-bounded line.
type Composer struct {
	// MaxLength is the maximum visible width. Zero disables truncation.
	MaxLength int
	// Overflow is appended whenever segments had to be cut.
	Overflow string
	// Styler styles the overflow marker.
	Styler Styler
}

// Compose joins the rendered segments with Delimiter. When the line is
// wider than MaxLength, whole segments are dropped from the end until the
// remaining prefix, a delimiter and the overflow marker fit. If not even
// the first segment fits it is cut at MaxLength minus the marker width.
// A MaxLength no wider than the marker yields the marker alone.
func (c Composer) Compose(segments []Segment) Line {
	rendered := make([]string, 0, len(segments))
	for _, s := range segments {
		if r := s.Render(); r != "" {
			rendered = append(rendered, r)
		}
	}

	full := strings.Join(rendered, Delimiter)
	width := ansi.StringWidth(full)
	if c.MaxLength <= 0 || width <= c.MaxLength {
		return Line{Text: full, Width: width}
	}

	// An empty marker also drops the delimiter before it.
	var marker, sep string
	if c.Overflow != "" {
		marker = c.Styler.Plain(c.Overflow, AccentNormal).Render()
		sep = Delimiter
	}
	markerWidth := ansi.StringWidth(c.Overflow)
	if c.MaxLength <= markerWidth {
		return Line{Text: marker, Width: ansi.StringWidth(marker), Truncated: true}
	}

	sepWidth := ansi.StringWidth(sep)
	for n := len(rendered) - 1; n >= 1; n-- {
		prefix := strings.Join(rendered[:n], Delimiter)
		if ansi.StringWidth(prefix)+sepWidth+markerWidth <= c.MaxLength {
			text := prefix + sep + marker
			return Line{Text: text, Width: ansi.StringWidth(text), Truncated: true}
		}
	}

	head := ansi.Truncate(rendered[0], c.MaxLength-markerWidth, "")
	if strings.Contains(head, "\x1b") {
		head += ansi.ResetStyle
	}
	text := head + marker
	return Line{Text: text, Width: ansi.StringWidth(text), Truncated: true}
}

// Width is the visible cell width of s, ignoring escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}
