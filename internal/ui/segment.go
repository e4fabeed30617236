package ui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Role is the visual role of a segment.
type Role int

const (
	RolePlain Role = iota
	RoleKey
	RoleDescription
)

// Accent selects the foreground of plain segments.
type Accent int

const (
	AccentNormal Accent = iota
	AccentWarning
	AccentError
	AccentSuccess
)

// Segment is one styled span of the output line. Text is literal; Style is
// applied when the segment is rendered.
type Segment struct {
	Role   Role
	Accent Accent
	Text   string
	Style  lipgloss.Style
}

// Render returns the segment text with its style applied.
func (s Segment) Render() string {
	if s.Text == "" {
		return ""
	}
	return s.Style.Render(s.Text)
}

// Texts returns the unstyled text of each segment.
func Texts(segments []Segment) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = s.Text
	}
	return out
}

// PlainText joins the unstyled segment texts with single spaces.
func PlainText(segments []Segment) string {
	return strings.Join(Texts(segments), " ")
}

// minContrast is the WCAG AA ratio for normal text.
const minContrast = 4.5

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Styler turns text into segments styled from a palette.
type Styler struct {
	palette Palette
}

// NewStyler returns a styler for the given palette.
func NewStyler(p Palette) Styler {
	return Styler{palette: p}
}

// Palette returns the palette the styler uses.
func (s Styler) Palette() Palette {
	return s.palette
}

// Key styles a key label.
func (s Styler) Key(label string) Segment {
	style, ok := pairStyle(s.palette.KeyFg, s.palette.KeyBg)
	if ok {
		style = style.Bold(true)
	}
	return Segment{Role: RoleKey, Text: label, Style: style}
}

// Description styles the text that follows a key.
func (s Styler) Description(text string) Segment {
	style, _ := pairStyle(s.palette.DescFg, s.palette.DescBg)
	return Segment{Role: RoleDescription, Text: text, Style: style}
}

// Plain styles free text with the accent's foreground and no background.
func (s Styler) Plain(text string, accent Accent) Segment {
	var fg color.Color
	switch accent {
	case AccentWarning:
		fg = s.palette.Warning
	case AccentError:
		fg = s.palette.Error
	case AccentSuccess:
		fg = s.palette.Success
	default:
		fg = s.palette.Text
	}

	style := lipgloss.NewStyle()
	if fg != nil {
		style = style.Foreground(fg)
	}
	return Segment{Role: RolePlain, Accent: accent, Text: text, Style: style}
}

// Hint returns the key segment followed by its description segment.
func (s Styler) Hint(key, desc string) []Segment {
	return []Segment{s.Key(key), s.Description(desc)}
}

// pairStyle builds a background style whose foreground stays readable. If
// either color is missing the segment is left unstyled.
func pairStyle(fg, bg color.Color) (lipgloss.Style, bool) {
	style := lipgloss.NewStyle()
	if fg == nil || bg == nil {
		return style, false
	}
	return style.Background(bg).Foreground(ReadableOn(fg, bg)), true
}

// ReadableOn returns fg when it meets the minimum contrast against bg,
// otherwise black or white, whichever contrasts more.
func ReadableOn(fg, bg color.Color) color.Color {
	b, ok := colorful.MakeColor(bg)
	if !ok {
		return fg
	}
	if f, ok := colorful.MakeColor(fg); ok && ContrastRatio(f, b) >= minContrast {
		return fg
	}
	if ContrastRatio(black, b) >= ContrastRatio(white, b) {
		return black
	}
	return white
}

// ContrastRatio is the WCAG 2 contrast ratio between two colors, from 1
// (identical luminance) to 21 (black on white).
func ContrastRatio(a, b colorful.Color) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
