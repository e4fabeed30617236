package ui

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a palette entry is neither a hex color
// nor an ANSI color index.
var ErrInvalidColor = errors.New("invalid color")

// Palette holds the theme colors hints are styled with. A nil entry means
// the host did not supply that color.
type Palette struct {
	KeyBg   color.Color
	KeyFg   color.Color
	DescBg  color.Color
	DescFg  color.Color
	Text    color.Color
	Warning color.Color
	Error   color.Color
	Success color.Color
}

// paletteFields maps configuration names to palette entries.
var paletteFields = map[string]func(*Palette) *color.Color{
	"key_bg":  func(p *Palette) *color.Color { return &p.KeyBg },
	"key_fg":  func(p *Palette) *color.Color { return &p.KeyFg },
	"desc_bg": func(p *Palette) *color.Color { return &p.DescBg },
	"desc_fg": func(p *Palette) *color.Color { return &p.DescFg },
	"text":    func(p *Palette) *color.Color { return &p.Text },
	"warning": func(p *Palette) *color.Color { return &p.Warning },
	"error":   func(p *Palette) *color.Color { return &p.Error },
	"success": func(p *Palette) *color.Color { return &p.Success },
}

// DefaultPalette is used until the host sends its theme.
func DefaultPalette() Palette {
	return Palette{
		KeyBg:   lipgloss.Color("#44475a"),
		KeyFg:   lipgloss.Color("#f1fa8c"),
		DescBg:  lipgloss.Color("#282a36"),
		DescFg:  lipgloss.Color("#f8f8f2"),
		Text:    lipgloss.Color("#f8f8f2"),
		Warning: lipgloss.Color("#ffb86c"),
		Error:   lipgloss.Color("#ff5555"),
		Success: lipgloss.Color("#50fa7b"),
	}
}

// ParseColor accepts "#rgb", "#rrggbb" or an ANSI color index 0-255.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(expandShortHex(s))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		return c, nil
	}

	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i > 255 {
		return nil, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	return lipgloss.Color(s), nil
}

func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
}

// ParsePalette builds a palette from role names to color strings. Unknown
// roles and invalid colors are reported in the joined error and left unset.
func ParsePalette(entries map[string]string) (Palette, error) {
	var p Palette
	var errs []error

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field, ok := paletteFields[strings.ToLower(name)]
		if !ok {
			errs = append(errs, fmt.Errorf("palette: unknown role %q", name))
			continue
		}
		c, err := ParseColor(entries[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("palette %s: %w", name, err))
			continue
		}
		*field(&p) = c
	}

	return p, errors.Join(errs...)
}

// Merge returns p with every entry that is set in other replaced.
func (p Palette) Merge(other Palette) Palette {
	for _, field := range paletteFields {
		if c := *field(&other); c != nil {
			*field(&p) = c
		}
	}
	return p
}

// Preview chrome colors.
var (
	primaryColor   = lipgloss.Color("62")  // Purple
	secondaryColor = lipgloss.Color("241") // Gray
	accentColor    = lipgloss.Color("86")  // Cyan
	borderColor    = lipgloss.Color("240") // Dark gray
	errorColor     = lipgloss.Color("203") // Red
)

// Styles for the preview program.
var (
	// Panel holding the rendered line
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// State summary below the panel
	LabelStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// PanelTitle returns a formatted panel title.
func PanelTitle(title string) string {
	return TitleStyle.Render(title)
}
