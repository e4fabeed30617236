package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chatter/zjhints/internal/catalog"
	"github.com/chatter/zjhints/internal/ui"
)

// File is the on-disk TOML configuration:
//
//	[options]
//	max_length = 80
//	hide_in_base_mode = true
//
//	[palette]
//	key_bg = "#44475a"
//
//	[[bind]]
//	modes = ["normal"]
//	keys = ["Ctrl p"]
//	actions = ["SwitchToMode Pane"]
//
//	clusters = ["hjkl", "wasd"]
type File struct {
	Options  map[string]any    `toml:"options"`
	Palette  map[string]string `toml:"palette"`
	Bind     []catalog.Binding `toml:"bind"`
	Clusters []string          `toml:"clusters"`

	// Undecoded lists keys present in the file that no field consumed.
	Undecoded []string `toml:"-"`
}

// Config is everything the renderer reads from configuration.
type Config struct {
	Options Options
	Palette ui.Palette

	// Bindings are the keybindings from the file. Nil means none were
	// configured and the host (or the built-in defaults) supplies them.
	Bindings []catalog.Binding
	Clusters []string
}

// DefaultPath returns $XDG_CONFIG_HOME/zjhints/config.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "zjhints", "config.toml"), nil
}

// LoadFile decodes the TOML file at path.
func LoadFile(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		f.Undecoded = append(f.Undecoded, k.String())
	}
	return &f, nil
}

// StringOptions converts the [options] table into option-map form.
// Numbers and booleans are accepted as well as strings.
func (f *File) StringOptions() map[string]string {
	out := make(map[string]string, len(f.Options))
	for k, v := range f.Options {
		out[strings.ToLower(k)] = fmt.Sprint(v)
	}
	return out
}

// Load builds the configuration from the defaults, the file at path (if
// path is non-empty and the file exists) and the override layers, applied
// in order. The returned Config is always usable; problems are reported in
// the joined error.
func Load(path string, layers ...map[string]string) (Config, error) {
	cfg := Config{Options: Default(), Palette: ui.DefaultPalette()}
	var errs []error

	if path != "" {
		f, err := LoadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			errs = append(errs, err)
		default:
			if err := cfg.applyFile(f); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, layer := range layers {
		opts, err := cfg.Options.Apply(layer)
		cfg.Options = opts
		if err != nil {
			errs = append(errs, err)
		}
	}

	return cfg, errors.Join(errs...)
}

func (c *Config) applyFile(f *File) error {
	var errs []error

	opts, err := c.Options.Apply(f.StringOptions())
	c.Options = opts
	if err != nil {
		errs = append(errs, err)
	}

	if len(f.Palette) > 0 {
		p, err := ui.ParsePalette(f.Palette)
		c.Palette = c.Palette.Merge(p)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if f.Bind != nil {
		c.Bindings = f.Bind
	}
	if len(f.Clusters) > 0 {
		c.Clusters = f.Clusters
	}
	for _, k := range f.Undecoded {
		errs = append(errs, fmt.Errorf("config: unknown key %q", k))
	}

	return errors.Join(errs...)
}
