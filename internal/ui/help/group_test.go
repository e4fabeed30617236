package help

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/chatter/zjhints/internal/keys"
	"github.com/chatter/zjhints/internal/testgen"
)

func chords(specs ...string) []keys.Chord {
	out := make([]keys.Chord, len(specs))
	for i, s := range specs {
		out[i] = keys.MustParseChord(s)
	}
	return out
}

// =============================================================================
// Unit Tests
// =============================================================================

func TestGrouper_Label(t *testing.T) {
	tests := []struct {
		name     string
		chords   []keys.Chord
		kind     GroupKind
		expected string
	}{
		{"shared modifier", chords("Ctrl p", "Ctrl t", "Ctrl r"), GroupUniform, "Ctrl + p|t|r"},
		{"shared modifier pair", chords("Ctrl Alt h", "Alt Ctrl l"), GroupUniform, "Ctrl-Alt + h|l"},
		{"shared modifier on arrows", chords("Alt Left", "Alt Right"), GroupUniform, "Alt + ←|→"},
		{"vim cluster", chords("h", "j", "k", "l"), GroupCluster, "hjkl"},
		{"shifted vim cluster", chords("H", "J", "K", "L"), GroupCluster, "HJKL"},
		{"arrow cluster", chords("Left", "Down", "Up", "Right"), GroupCluster, "←↓↑→"},
		{"left right", chords("Left", "Right"), GroupCluster, "←→"},
		{"down up", chords("Down", "Up"), GroupCluster, "↓↑"},
		{"brackets", chords("[", "]"), GroupCluster, "[]"},
		{"cluster ignores mixed modifiers", chords("Alt h", "j", "k", "Ctrl l"), GroupCluster, "hjkl"},
		{"mixed modifiers", chords("Alt a", "Ctrl b", "c"), GroupMixed, "Alt a|Ctrl b|c"},
		{"bare keys", chords("=", "-"), GroupMixed, "=|-"},
		{"out of order cluster", chords("l", "k", "j", "h"), GroupMixed, "l|k|j|h"},
		{"single bare key", chords("p"), GroupMixed, "p"},
		{"single chord with modifier", chords("Ctrl p"), GroupMixed, "Ctrl p"},
		{"single special key", chords("Enter"), GroupMixed, "ENTER"},
	}

	var g Grouper
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Classify(tt.chords).Kind; got != tt.kind {
				t.Errorf("Classify(%v) = %v, want %v", tt.chords, got, tt.kind)
			}
			if got := g.Label(tt.chords); got != tt.expected {
				t.Errorf("Label(%v) = %q, want %q", tt.chords, got, tt.expected)
			}
		})
	}
}

func TestGrouper_CustomClusters(t *testing.T) {
	g := Grouper{Clusters: []string{"wasd"}}

	if got := g.Label(chords("w", "a", "s", "d")); got != "wasd" {
		t.Errorf("Label(wasd) = %q, want %q", got, "wasd")
	}
	if got := g.Label(chords("h", "j", "k", "l")); got != "h|j|k|l" {
		t.Errorf("default clusters should not apply, got %q", got)
	}
}

func TestGrouper_EmptyInput(t *testing.T) {
	var g Grouper
	if got := g.Label(nil); got != "" {
		t.Errorf("Label(nil) = %q, want empty", got)
	}
}

// =============================================================================
// Property Tests
// =============================================================================

// Property: labelling is a pure function of the chord sequence.
func TestGrouper_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cs := testgen.Chords(6).Draw(t, "chords")
		var g Grouper
		if g.Label(cs) != g.Label(cs) {
			t.Fatalf("Label(%v) not deterministic", cs)
		}
	})
}

// Property: chords sharing a non-empty modifier set render the modifiers
// exactly once, followed by every key in order.
func TestGrouper_UniformRendersModifiersOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mods := keys.Modifier(rapid.IntRange(1, 15).Draw(t, "mods"))
		cs := rapid.SliceOfN(testgen.Chord(testgen.WithMods(mods)), 2, 6).Draw(t, "chords")

		var g Grouper
		label := g.Label(cs)
		prefix := mods.Join("-") + " + "
		if !strings.HasPrefix(label, prefix) {
			t.Fatalf("Label(%v) = %q, want prefix %q", cs, label, prefix)
		}
		parts := strings.Split(strings.TrimPrefix(label, prefix), "|")
		if len(parts) != len(cs) {
			t.Fatalf("Label(%v) = %q has %d keys, want %d", cs, label, len(parts), len(cs))
		}
		for i, c := range cs {
			if parts[i] != c.Key.String() {
				t.Fatalf("key %d = %q, want %q", i, parts[i], c.Key.String())
			}
		}
	})
}

// Property: a mixed label lists every chord in input order.
func TestGrouper_MixedListsEveryChord(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cs := testgen.Chords(6).Draw(t, "chords")

		var g Grouper
		grouping := g.Classify(cs)
		if grouping.Kind != GroupMixed {
			return
		}

		names := make([]string, len(cs))
		for i, c := range cs {
			names[i] = c.String()
		}
		if got := grouping.String(); got != strings.Join(names, "|") {
			t.Fatalf("Label(%v) = %q, want %q", cs, got, strings.Join(names, "|"))
		}
	})
}
