package ui

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// =============================================================================
// Unit Tests
// =============================================================================

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips foreground",
			input:    "\x1b[38;5;205mtext\x1b[0m",
			expected: "text",
		},
		{
			name:     "strips combined attributes",
			input:    "\x1b[1;48;2;68;71;90mCtrl p\x1b[m pane",
			expected: "Ctrl p pane",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text no ansi",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "arrows survive",
			input:    "\x1b[1m←↓↑→\x1b[m move",
			expected: "←↓↑→ move",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.expected {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// =============================================================================
// Property Tests
// =============================================================================

// Generator for strings mixing SGR sequences and visible text
func ansiString() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		parts := rapid.SliceOf(rapid.OneOf(
			rapid.Just("\x1b[31m"),       // red
			rapid.Just("\x1b[0m"),        // reset
			rapid.Just("\x1b[1;32m"),     // bold green
			rapid.Just("\x1b[38;5;196m"), // 256-color red
			rapid.StringMatching(`[a-zA-Z0-9 ]{0,10}`),
		)).Draw(t, "parts")
		return strings.Join(parts, "")
	})
}

// Property: stripped output never contains an escape character
func TestStrip_NoEscapesRemain(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := ansiString().Draw(t, "input")
		if got := Strip(input); strings.Contains(got, "\x1b") {
			t.Fatalf("Strip(%q) = %q still contains escapes", input, got)
		}
	})
}

// Property: width of a string equals the width of its stripped form
func TestWidth_IgnoresEscapes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := ansiString().Draw(t, "input")
		if Width(input) != len(Strip(input)) {
			t.Fatalf("Width(%q) = %d, want %d", input, Width(input), len(Strip(input)))
		}
	})
}

// Property: plain text passes through unchanged
func TestStrip_PlainTextUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.StringMatching(`[a-zA-Z0-9 ]{0,50}`).Draw(t, "plainText")
		if got := Strip(input); got != input {
			t.Fatalf("plain text was modified: input=%q, result=%q", input, got)
		}
	})
}
