package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/charmbracelet/colorprofile"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/chatter/zjhints/internal/keys"
	"github.com/chatter/zjhints/internal/ui"
)

// =============================================================================
// Unit Tests
// =============================================================================

func TestDefault(t *testing.T) {
	o := Default()
	require.Equal(t, 0, o.MaxLength)
	require.Equal(t, "...", o.Overflow)
	require.Equal(t, "zjstatus_hints", o.PipeName)
	require.False(t, o.HideInBaseMode)
	require.Equal(t, keys.ModeNormal, o.BaseMode)
	require.Zero(t, o.ClipboardTTL)
	require.Equal(t, "zjstatus::pipe", o.ChannelPrefix)
	require.Equal(t, ProfileAuto, o.ColorProfile)
}

func TestFromMap_ValidValues(t *testing.T) {
	o, err := FromMap(map[string]string{
		"max_length":        "80",
		"overflow_str":      " …",
		"pipe_name":         "hints",
		"hide_in_base_mode": "true",
		"base_mode":         "locked",
		"clipboard_ttl":     "3s",
		"channel_prefix":    "bar::pipe",
		"color_profile":     "ANSI256",
		"classic":           "true",
	})
	require.NoError(t, err)
	require.Equal(t, 80, o.MaxLength)
	require.Equal(t, " …", o.Overflow)
	require.Equal(t, "hints", o.PipeName)
	require.True(t, o.HideInBaseMode)
	require.Equal(t, keys.ModeLocked, o.BaseMode)
	require.Equal(t, 3*time.Second, o.ClipboardTTL)
	require.Equal(t, "bar::pipe", o.ChannelPrefix)
	require.Equal(t, ProfileANSI256, o.ColorProfile)
}

func TestFromMap_InvalidValuesKeepDefaults(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyMaxLength, "-1"},
		{KeyMaxLength, "wide"},
		{KeyPipeName, ""},
		{KeyHideInBaseMode, "sometimes"},
		{KeyBaseMode, "visual"},
		{KeyClipboardTTL, "soon"},
		{KeyClipboardTTL, "-2s"},
		{KeyChannelPrefix, ""},
		{KeyColorProfile, "sepia"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			o, err := FromMap(map[string]string{tt.key: tt.value})
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidOption)

			var optErr *OptionError
			require.True(t, errors.As(err, &optErr))
			require.Equal(t, tt.key, optErr.Key)
			require.Equal(t, Default(), o)
		})
	}
}

func TestFromMap_CollectsEveryError(t *testing.T) {
	o, err := FromMap(map[string]string{
		"max_length": "x",
		"base_mode":  "nope",
		"pipe_name":  "ok",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "max_length")
	require.Contains(t, err.Error(), "base_mode")
	require.Equal(t, "ok", o.PipeName)
}

func TestOptions_MapRoundTrip(t *testing.T) {
	o := Default()
	o.MaxLength = 42
	o.HideInBaseMode = true
	o.BaseMode = keys.ModeEnterSearch
	o.ClipboardTTL = 1500 * time.Millisecond

	back, err := Default().Apply(o.Map())
	require.NoError(t, err)
	require.Equal(t, o, back)
}

func TestKeys_Sorted(t *testing.T) {
	require.Equal(t, []string{
		KeyBaseMode, KeyChannelPrefix, KeyClipboardTTL, KeyColorProfile,
		KeyHideInBaseMode, KeyMaxLength, KeyOverflow, KeyPipeName,
	}, Keys())
}

func TestProfile_Resolve(t *testing.T) {
	var buf bytes.Buffer
	require.Equal(t, colorprofile.TrueColor, ProfileTrueColor.Resolve(&buf, nil))
	require.Equal(t, colorprofile.ANSI256, ProfileANSI256.Resolve(&buf, nil))
	require.Equal(t, colorprofile.ANSI, ProfileANSI.Resolve(&buf, nil))
	require.Equal(t, colorprofile.NoTTY, ProfileNone.Resolve(&buf, nil))
	// A buffer is not a terminal.
	require.Equal(t, colorprofile.NoTTY, ProfileAuto.Resolve(&buf, nil))
}

const sampleFile = `
clusters = ["wasd"]

[options]
max_length = 60
hide_in_base_mode = true
clipboard_ttl = "2s"

[palette]
key_bg = "#000000"
warning = "3"

[[bind]]
modes = ["normal"]
keys = ["Ctrl p"]
actions = ["SwitchToMode Pane"]

[[bind]]
modes = ["pane"]
keys = ["Esc"]
actions = ["SwitchToMode Normal"]
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile(writeFile(t, sampleFile))
	require.NoError(t, err)
	require.Len(t, f.Bind, 2)
	require.Equal(t, []string{"Ctrl p"}, f.Bind[0].Keys)
	require.Equal(t, []string{"wasd"}, f.Clusters)
	require.Equal(t, "60", f.StringOptions()["max_length"])
	require.Equal(t, "true", f.StringOptions()["hide_in_base_mode"])
	require.Empty(t, f.Undecoded)
}

func TestLoadFile_Malformed(t *testing.T) {
	_, err := LoadFile(writeFile(t, "[options\nmax_length = "))
	require.Error(t, err)
}

func TestLoad_LayersOverrideInOrder(t *testing.T) {
	path := writeFile(t, sampleFile)

	cfg, err := Load(path,
		map[string]string{"max_length": "70", "pipe_name": "host"},
		map[string]string{"max_length": "90"},
	)
	require.NoError(t, err)
	require.Equal(t, 90, cfg.Options.MaxLength)
	require.Equal(t, "host", cfg.Options.PipeName)
	require.True(t, cfg.Options.HideInBaseMode)
	require.Equal(t, 2*time.Second, cfg.Options.ClipboardTTL)
	require.Len(t, cfg.Bindings, 2)
	require.Equal(t, []string{"wasd"}, cfg.Clusters)

	black, _ := ui.ParseColor("#000000")
	require.Equal(t, black, cfg.Palette.KeyBg)
	require.Equal(t, ui.DefaultPalette().DescBg, cfg.Palette.DescBg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg.Options)
	require.Nil(t, cfg.Bindings)
	require.Equal(t, ui.DefaultPalette(), cfg.Palette)
}

func TestLoad_ReportsProblemsButStaysUsable(t *testing.T) {
	path := writeFile(t, `
flavour = "mint"

[options]
max_length = "long"
pipe_name = "kept"

[palette]
key_bg = "not-a-color"
glow = "#fff"
`)

	cfg, err := Load(path)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidOption)
	require.ErrorIs(t, err, ui.ErrInvalidColor)
	require.Contains(t, err.Error(), "flavour")
	require.Contains(t, err.Error(), "glow")

	require.Equal(t, 0, cfg.Options.MaxLength)
	require.Equal(t, "kept", cfg.Options.PipeName)
	require.Equal(t, ui.DefaultPalette().KeyBg, cfg.Palette.KeyBg)
}

func TestUnknown(t *testing.T) {
	require.NoError(t, Unknown(Default().Map()))
	require.NoError(t, Unknown(nil))

	err := Unknown(map[string]string{"overflow": "X", "max_length": "5", "max_lenght": "5"})
	require.ErrorIs(t, err, ErrInvalidOption)
	require.Contains(t, err.Error(), `option max_lenght="5": unknown option`)
	require.Contains(t, err.Error(), `option overflow="X": unknown option`)
	require.NotContains(t, err.Error(), "max_length=")
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "zjhints", "config.toml"), path)
}

// =============================================================================
// Property Tests
// =============================================================================

// Property: any non-negative max_length is accepted verbatim and nothing
// else changes.
func TestFromMap_MaxLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10000).Draw(t, "n")
		o, err := FromMap(map[string]string{KeyMaxLength: strconv.Itoa(n)})
		if err != nil {
			t.Fatalf("FromMap(%d) error: %v", n, err)
		}
		want := Default()
		want.MaxLength = n
		if o != want {
			t.Fatalf("FromMap(%d) = %+v, want %+v", n, o, want)
		}
	})
}

// Property: keys outside the known set never produce errors.
func TestFromMap_IgnoresUnknownKeys(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.StringMatching(`x_[a-z]{1,8}`).Draw(t, "key")
		value := rapid.String().Draw(t, "value")
		o, err := FromMap(map[string]string{key: value})
		if err != nil || o != Default() {
			t.Fatalf("FromMap(%q=%q) = %+v, %v", key, value, o, err)
		}
	})
}

// Property: Unknown flags exactly the keys outside the known set.
func TestUnknown_FlagsOnlyStrangers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		known := rapid.SampledFrom(Keys()).Draw(t, "known")
		stranger := rapid.StringMatching(`x_[a-z]{1,8}`).Draw(t, "stranger")
		withStranger := rapid.Bool().Draw(t, "withStranger")

		m := map[string]string{known: "v"}
		if withStranger {
			m[stranger] = "v"
		}

		err := Unknown(m)
		var optErr *OptionError
		if withStranger != errors.As(err, &optErr) {
			t.Fatalf("Unknown(%v) = %v", m, err)
		}
		if withStranger && optErr.Key != stranger {
			t.Fatalf("reported %q, want %q", optErr.Key, stranger)
		}
	})
}
