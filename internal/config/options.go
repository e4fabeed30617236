// Package config resolves the renderer's options from the host option
// map, the TOML config file and command-line flags.
//
// Layers are applied in order, each overriding the previous one:
//
//   - built-in defaults
//   - the [options] table of the config file
//   - the host option map (key=value pairs handed over at load time)
//   - command-line flags
//
// A bad value never aborts loading: it is reported and the previous layer's
// value is kept.
package config

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/colorprofile"

	"github.com/chatter/zjhints/internal/keys"
)

// ErrInvalidOption is wrapped by every *OptionError.
var ErrInvalidOption = errors.New("invalid option")

// Option keys, shared by the host map, the [options] table and the flags.
const (
	KeyMaxLength      = "max_length"
	KeyOverflow       = "overflow_str"
	KeyPipeName       = "pipe_name"
	KeyHideInBaseMode = "hide_in_base_mode"
	KeyBaseMode       = "base_mode"
	KeyClipboardTTL   = "clipboard_ttl"
	KeyChannelPrefix  = "channel_prefix"
	KeyColorProfile   = "color_profile"
)

// Profile names a color profile for the stdout sink.
type Profile string

const (
	ProfileAuto      Profile = "auto"
	ProfileTrueColor Profile = "truecolor"
	ProfileANSI256   Profile = "ansi256"
	ProfileANSI      Profile = "ansi"
	ProfileNone      Profile = "none"
)

var profiles = map[Profile]colorprofile.Profile{
	ProfileTrueColor: colorprofile.TrueColor,
	ProfileANSI256:   colorprofile.ANSI256,
	ProfileANSI:      colorprofile.ANSI,
	ProfileNone:      colorprofile.NoTTY,
}

// Resolve maps the profile to a colorprofile value. ProfileAuto detects it
// from w and environ.
func (p Profile) Resolve(w io.Writer, environ []string) colorprofile.Profile {
	if cp, ok := profiles[p]; ok {
		return cp
	}
	return colorprofile.Detect(w, environ)
}

// Options are the resolved rendering options.
type Options struct {
	MaxLength      int           // 0 disables truncation
	Overflow       string        // marker appended to truncated lines
	PipeName       string        // zjstatus pipe widget name, without the "pipe_" prefix
	HideInBaseMode bool          // render nothing while in BaseMode
	BaseMode       keys.Mode     // the session's resting mode
	ClipboardTTL   time.Duration // 0 keeps clipboard messages until the next input
	ChannelPrefix  string        // leading envelope field
	ColorProfile   Profile
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		MaxLength:     0,
		Overflow:      "...",
		PipeName:      "zjstatus_hints",
		BaseMode:      keys.ModeNormal,
		ChannelPrefix: "zjstatus::pipe",
		ColorProfile:  ProfileAuto,
	}
}

// OptionError describes a rejected option value.
type OptionError struct {
	Key    string
	Value  string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %s=%q: %s", e.Key, e.Value, e.Reason)
}

func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}

// setters parse one option value into o.
var setters = map[string]func(o *Options, v string) string{
	KeyMaxLength: func(o *Options, v string) string {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return "want a non-negative integer"
		}
		o.MaxLength = n
		return ""
	},
	KeyOverflow: func(o *Options, v string) string {
		o.Overflow = v
		return ""
	},
	KeyPipeName: func(o *Options, v string) string {
		if v == "" {
			return "must not be empty"
		}
		o.PipeName = v
		return ""
	},
	KeyHideInBaseMode: func(o *Options, v string) string {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "want true or false"
		}
		o.HideInBaseMode = b
		return ""
	},
	KeyBaseMode: func(o *Options, v string) string {
		m, err := keys.ParseMode(v)
		if err != nil {
			return err.Error()
		}
		o.BaseMode = m
		return ""
	},
	KeyClipboardTTL: func(o *Options, v string) string {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return "want a non-negative duration such as 3s"
		}
		o.ClipboardTTL = d
		return ""
	},
	KeyChannelPrefix: func(o *Options, v string) string {
		if v == "" {
			return "must not be empty"
		}
		o.ChannelPrefix = v
		return ""
	},
	KeyColorProfile: func(o *Options, v string) string {
		p := Profile(strings.ToLower(v))
		if _, ok := profiles[p]; !ok && p != ProfileAuto {
			return "want auto, truecolor, ansi256, ansi or none"
		}
		o.ColorProfile = p
		return ""
	},
}

// Keys lists every recognised option key, sorted.
func Keys() []string {
	out := make([]string, 0, len(setters))
	for k := range setters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Unknown reports every key of m that names no option, as *OptionError
// values in one joined error.
func Unknown(m map[string]string) error {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	var errs []error
	for _, k := range names {
		if _, ok := setters[k]; !ok {
			errs = append(errs, &OptionError{Key: k, Value: m[k], Reason: "unknown option"})
		}
	}
	return errors.Join(errs...)
}

// Apply returns o with the values of m applied on top. Unknown keys are
// ignored. Rejected values keep o's value and are reported as *OptionError
// in the joined error.
func (o Options) Apply(m map[string]string) (Options, error) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	var errs []error
	for _, k := range names {
		set, ok := setters[k]
		if !ok {
			continue
		}
		v := strings.TrimSpace(m[k])
		if k == KeyOverflow {
			v = m[k]
		}
		if reason := set(&o, v); reason != "" {
			errs = append(errs, &OptionError{Key: k, Value: m[k], Reason: reason})
		}
	}
	return o, errors.Join(errs...)
}

// FromMap applies the host option map on top of the defaults.
func FromMap(m map[string]string) (Options, error) {
	return Default().Apply(m)
}

// Map renders o back into option-map form.
func (o Options) Map() map[string]string {
	return map[string]string{
		KeyMaxLength:      strconv.Itoa(o.MaxLength),
		KeyOverflow:       o.Overflow,
		KeyPipeName:       o.PipeName,
		KeyHideInBaseMode: strconv.FormatBool(o.HideInBaseMode),
		KeyBaseMode:       strings.ToLower(o.BaseMode.String()),
		KeyClipboardTTL:   o.ClipboardTTL.String(),
		KeyChannelPrefix:  o.ChannelPrefix,
		KeyColorProfile:   string(o.ColorProfile),
	}
}
