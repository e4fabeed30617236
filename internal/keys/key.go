package keys

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMalformedChord is returned when a chord string cannot be parsed.
var ErrMalformedChord = errors.New("malformed key chord")

// Code identifies a key. Character keys use CodeRune with the rune stored
// on the Key.
type Code uint8

const (
	CodeNone Code = iota
	CodeRune
	CodeEnter
	CodeEsc
	CodeTab
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeSpace
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// codeLabels is how special keys are displayed in hints.
var codeLabels = map[Code]string{
	CodeEnter:     "ENTER",
	CodeEsc:       "ESC",
	CodeTab:       "TAB",
	CodeBackspace: "BACKSPACE",
	CodeDelete:    "DEL",
	CodeInsert:    "INS",
	CodeHome:      "Home",
	CodeEnd:       "End",
	CodePageUp:    "PgUp",
	CodePageDown:  "PgDn",
	CodeUp:        "↑",
	CodeDown:      "↓",
	CodeLeft:      "←",
	CodeRight:     "→",
	CodeSpace:     "SPACE",
}

// codeNames maps lowercase key names accepted by the parser to codes.
var codeNames = map[string]Code{
	"enter":     CodeEnter,
	"return":    CodeEnter,
	"esc":       CodeEsc,
	"escape":    CodeEsc,
	"tab":       CodeTab,
	"backspace": CodeBackspace,
	"delete":    CodeDelete,
	"del":       CodeDelete,
	"insert":    CodeInsert,
	"ins":       CodeInsert,
	"home":      CodeHome,
	"end":       CodeEnd,
	"pageup":    CodePageUp,
	"pgup":      CodePageUp,
	"pagedown":  CodePageDown,
	"pgdn":      CodePageDown,
	"up":        CodeUp,
	"down":      CodeDown,
	"left":      CodeLeft,
	"right":     CodeRight,
	"space":     CodeSpace,
	"↑":         CodeUp,
	"↓":         CodeDown,
	"←":         CodeLeft,
	"→":         CodeRight,
}

// Key is a single physical key without modifiers.
type Key struct {
	Code Code
	Rune rune
}

// RuneKey returns the Key for a character.
func RuneKey(r rune) Key {
	return Key{Code: CodeRune, Rune: r}
}

// SpecialKey returns the Key for a non-character code.
func SpecialKey(code Code) Key {
	return Key{Code: code}
}

// String returns the key as it is displayed in hints.
func (k Key) String() string {
	switch {
	case k.Code == CodeRune:
		return string(k.Rune)
	case k.Code >= CodeF1 && k.Code <= CodeF12:
		return fmt.Sprintf("F%d", int(k.Code-CodeF1)+1)
	}
	if label, ok := codeLabels[k.Code]; ok {
		return label
	}
	return ""
}

// Chord is a key together with its modifier set. Chords are comparable and
// can be used as map keys.
type Chord struct {
	Key  Key
	Mods Modifier
}

// NewChord builds a chord from a key and modifiers.
func NewChord(k Key, mods ...Modifier) Chord {
	c := Chord{Key: k}
	for _, m := range mods {
		c.Mods = c.Mods.With(m)
	}
	return c
}

// String renders the chord as "<mods> <key>", or the bare key when there
// are no modifiers.
func (c Chord) String() string {
	if c.Mods.IsEmpty() {
		return c.Key.String()
	}
	return c.Mods.String() + " " + c.Key.String()
}

// ParseChord parses chords such as "Ctrl p", "Ctrl+p", "Alt Shift Left",
// "Enter" or "F5". Key names are case-insensitive; single characters are
// taken literally, so "P" and "p" are different keys.
func ParseChord(s string) (Chord, error) {
	fields := splitChord(strings.TrimSpace(s))
	if len(fields) == 0 {
		return Chord{}, fmt.Errorf("%w: empty", ErrMalformedChord)
	}

	var chord Chord
	for _, f := range fields[:len(fields)-1] {
		mod, ok := ModifierFromName(f)
		if !ok {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrMalformedChord, f, s)
		}
		chord.Mods = chord.Mods.With(mod)
	}

	k, err := parseKey(fields[len(fields)-1])
	if err != nil {
		return Chord{}, fmt.Errorf("%w in %q", err, s)
	}
	chord.Key = k

	return chord, nil
}

// MustParseChord is ParseChord for literals known to be valid.
func MustParseChord(s string) Chord {
	c, err := ParseChord(s)
	if err != nil {
		panic(err)
	}
	return c
}

// splitChord splits on whitespace, or on '+' when the chord is written
// as a single token like "Ctrl+p". A lone "+" or a trailing "+" key
// ("Ctrl++") is kept as the key.
func splitChord(s string) []string {
	fields := strings.Fields(s)
	if len(fields) != 1 || !strings.Contains(s, "+") || s == "+" {
		return fields
	}

	if strings.HasSuffix(s, "++") {
		parts := strings.Split(strings.TrimSuffix(s, "++"), "+")
		return append(parts, "+")
	}

	return strings.Split(s, "+")
}

func parseKey(token string) (Key, error) {
	if utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(token)
		if code, ok := codeNames[token]; ok {
			return SpecialKey(code), nil
		}
		if unicode.IsControl(r) {
			return Key{}, fmt.Errorf("%w: control character %q", ErrMalformedChord, token)
		}
		return RuneKey(r), nil
	}

	lower := strings.ToLower(token)
	if code, ok := codeNames[lower]; ok {
		return SpecialKey(code), nil
	}

	var n int
	if _, err := fmt.Sscanf(lower, "f%d", &n); err == nil && n >= 1 && n <= 12 && lower == fmt.Sprintf("f%d", n) {
		return SpecialKey(CodeF1 + Code(n-1)), nil
	}

	return Key{}, fmt.Errorf("%w: unknown key %q", ErrMalformedChord, token)
}
