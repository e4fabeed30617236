package help

import (
	"slices"
	"strings"

	"github.com/chatter/zjhints/internal/keys"
)

// GroupKind classifies how a chord set is labelled.
type GroupKind int

const (
	// GroupMixed joins each chord as "<mods> <key>" with "|".
	GroupMixed GroupKind = iota
	// GroupUniform renders the shared modifiers once: "Ctrl + p|t|r".
	GroupUniform
	// GroupCluster renders a known key run without separators: "hjkl".
	GroupCluster
)

func (k GroupKind) String() string {
	switch k {
	case GroupUniform:
		return "uniform"
	case GroupCluster:
		return "cluster"
	default:
		return "mixed"
	}
}

// Grouping is the classified form of a chord set.
type Grouping struct {
	Kind   GroupKind
	Mods   keys.Modifier // shared modifiers, GroupUniform only
	Chords []keys.Chord
}

// DefaultClusters are the key runs shown without separators.
var DefaultClusters = []string{"HJKL", "hjkl", "←↓↑→", "←→", "↓↑", "[]"}

// Grouper labels chord sets. Clusters lists the key runs that are shown
// as one word; nil means DefaultClusters.
type Grouper struct {
	Clusters []string
}

func (g Grouper) clusters() []string {
	if g.Clusters == nil {
		return DefaultClusters
	}
	return g.Clusters
}

// Classify decides how chords should be labelled. Rules are tried in
// order: shared non-empty modifiers, then a known cluster, then mixed.
// A single chord is always mixed.
func (g Grouper) Classify(chords []keys.Chord) Grouping {
	if len(chords) > 1 {
		mods := chords[0].Mods
		uniform := !mods.IsEmpty()
		for _, c := range chords[1:] {
			if c.Mods != mods {
				uniform = false
				break
			}
		}
		if uniform {
			return Grouping{Kind: GroupUniform, Mods: mods, Chords: chords}
		}

		if slices.Contains(g.clusters(), rawKeys(chords)) {
			return Grouping{Kind: GroupCluster, Chords: chords}
		}
	}

	return Grouping{Kind: GroupMixed, Chords: chords}
}

// Label returns the display label for chords. An empty set labels as "".
func (g Grouper) Label(chords []keys.Chord) string {
	if len(chords) == 0 {
		return ""
	}
	return g.Classify(chords).String()
}

// String formats the grouping.
func (gr Grouping) String() string {
	switch gr.Kind {
	case GroupUniform:
		names := make([]string, len(gr.Chords))
		for i, c := range gr.Chords {
			names[i] = c.Key.String()
		}
		return gr.Mods.Join("-") + " + " + strings.Join(names, "|")
	case GroupCluster:
		return rawKeys(gr.Chords)
	default:
		names := make([]string, len(gr.Chords))
		for i, c := range gr.Chords {
			names[i] = c.String()
		}
		return strings.Join(names, "|")
	}
}

func rawKeys(chords []keys.Chord) string {
	var b strings.Builder
	for _, c := range chords {
		b.WriteString(c.Key.String())
	}
	return b.String()
}
