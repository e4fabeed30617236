package plugin

import (
	"time"

	"github.com/chatter/zjhints/internal/ui"
)

// Segments returns the unserialized segments shown for s at now.
func Segments(s *State, now time.Time) []ui.Segment {
	return resolve(s, now).build(newRenderer(s))
}

// Render composes the line shown for s at now. It reads s only.
func Render(s *State, now time.Time) ui.Line {
	composer := ui.Composer{
		MaxLength: s.Options.MaxLength,
		Overflow:  s.Options.Overflow,
		Styler:    s.Styler(),
	}
	return composer.Compose(Segments(s, now))
}
