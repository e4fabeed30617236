package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/chatter/zjhints/internal/app"
	"github.com/chatter/zjhints/internal/config"
	"github.com/chatter/zjhints/internal/event"
	"github.com/chatter/zjhints/internal/keys"
	"github.com/chatter/zjhints/internal/logger"
	"github.com/chatter/zjhints/internal/pipe"
	"github.com/chatter/zjhints/internal/plugin"
	"github.com/chatter/zjhints/internal/watch"
)

// version is set from build info or falls back to "dev"
var version = "dev"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zjhints",
	Short: "Render zellij key hints as a single status line",
	Long: `zjhints reads host events as JSON lines on stdin and renders one hint
line per event. Lines are piped to zellij and echoed on stdout.

Examples:
  zjhints < events.jsonl                 # Render every event
  zjhints --no-pipe --max-length 80      # Print only, cut at 80 cells
  zjhints -o overflow_str=… -o pipe_name=bar # Override options
  zjhints render --mode pane             # Render one state and exit
  zjhints preview                        # Interactive preview`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLoop(cmd)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the line for one session state and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRender(cmd)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactively preview the hint line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPreview(cmd)
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the effective options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOptions(cmd)
	},
}

// Global flags
var (
	flagConfig   string
	flagLogLevel string
	flagLogJSON  bool
	flagOptions  []string

	flagMaxLength      int
	flagOverflow       string
	flagPipeName       string
	flagHideInBaseMode bool
	flagBaseMode       string
	flagColorProfile   string
)

// Flags for the event loop
var (
	flagNoPipe   bool
	flagNoStdout bool
	flagWatch    bool
)

// Flags for render
var (
	flagMode      string
	flagHidden    int
	flagFloating  bool
	flagLocked    bool
	flagCopied    string
	flagCopyError bool
)

// optionFlags maps shorthand flags onto option keys.
var optionFlags = map[string]string{
	"max-length":        config.KeyMaxLength,
	"overflow":          config.KeyOverflow,
	"pipe-name":         config.KeyPipeName,
	"hide-in-base-mode": config.KeyHideInBaseMode,
	"base-mode":         config.KeyBaseMode,
	"color-profile":     config.KeyColorProfile,
}

func init() {
	defaultConfig, _ := config.DefaultPath()

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", defaultConfig, "Config file (TOML)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error); empty disables logging")
	pf.BoolVar(&flagLogJSON, "log-json", false, "Write log records as JSON lines")
	pf.StringArrayVarP(&flagOptions, "option", "o", []string{}, "Set option (key=value), can be repeated")
	pf.IntVar(&flagMaxLength, "max-length", 0, "Maximum line width in cells (0 = unlimited)")
	pf.StringVar(&flagOverflow, "overflow", "...", "Marker appended to a cut line")
	pf.StringVar(&flagPipeName, "pipe-name", "", "Pipe name the line is sent to")
	pf.BoolVar(&flagHideInBaseMode, "hide-in-base-mode", false, "Show nothing while in the base mode")
	pf.StringVar(&flagBaseMode, "base-mode", "normal", "Mode the session rests in")
	pf.StringVar(&flagColorProfile, "color-profile", "auto", "Color profile for stdout (auto/truecolor/ansi256/ansi/none)")

	rootCmd.Flags().BoolVar(&flagNoPipe, "no-pipe", false, "Do not send lines to zellij")
	rootCmd.Flags().BoolVar(&flagNoStdout, "no-stdout", false, "Do not echo lines on stdout")
	rootCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Reload when the config file changes")

	rf := renderCmd.Flags()
	rf.StringVarP(&flagMode, "mode", "m", "normal", "Input mode")
	rf.IntVar(&flagHidden, "hidden", 0, "Panes hidden by a fullscreen pane")
	rf.BoolVar(&flagFloating, "floating", false, "Floating panes are visible")
	rf.BoolVar(&flagLocked, "locked", false, "Session is locked")
	rf.StringVar(&flagCopied, "copied", "", "Show a clipboard message (system/primary/command)")
	rf.BoolVar(&flagCopyError, "copy-error", false, "Show the clipboard error")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(optionsCmd)
}

// overrides collects -o key=value pairs and changed shorthand flags into
// one option layer. Shorthand flags win over -o.
func overrides(cmd *cobra.Command) (map[string]string, error) {
	layer, err := parseOptionPairs(flagOptions)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	for name, key := range optionFlags {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		layer[key] = f.Value.String()
	}
	return layer, nil
}

// parseOptionPairs splits key=value strings. The value may be empty; the
// key must name an option.
func parseOptionPairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid option %q: expected key=value", p)
		}
		out[strings.ToLower(k)] = v
	}
	if err := config.Unknown(out); err != nil {
		return nil, err
	}
	return out, nil
}

// setup loads the logger and the configuration. Config problems are
// logged and printed but never fatal.
func setup(cmd *cobra.Command) (*logger.Logger, config.Config, plugin.Loader, error) {
	log, err := logger.Open(logger.Options{Level: flagLogLevel, JSON: flagLogJSON})
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	layer, err := overrides(cmd)
	if err != nil {
		log.Close()
		return nil, config.Config{}, nil, err
	}

	loader := func() (config.Config, error) {
		return config.Load(flagConfig, layer)
	}

	cfg, err := loader()
	if err != nil {
		log.Warn("config problems", "path", flagConfig, "err", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	return log, cfg, loader, nil
}

func runLoop(cmd *cobra.Command) error {
	log, cfg, loader, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		p        *plugin.Plugin
		emitters pipe.Multi
	)
	if !flagNoPipe {
		zellij := pipe.NewZellij(cfg.Options.ChannelPrefix, cfg.Options.PipeName, log)
		// The pipe name may change on reload.
		emitters = append(emitters, pipe.Func(func(ctx context.Context, line string) error {
			opts := p.State().Options
			zellij.Prefix, zellij.Name = opts.ChannelPrefix, opts.PipeName
			return zellij.Emit(ctx, line)
		}))
	}
	if !flagNoStdout {
		out := cmd.OutOrStdout()
		emitters = append(emitters, pipe.NewWriter(out, cfg.Options.ColorProfile.Resolve(out, os.Environ())))
	}

	p = plugin.New(cfg,
		plugin.WithEmitter(emitters),
		plugin.WithLogger(log),
		plugin.WithLoader(loader),
	)

	events := make(chan event.Event, 16)
	producerCtx, stopProducers := context.WithCancel(ctx)
	defer stopProducers()

	var (
		wg      sync.WaitGroup
		readErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer stopProducers()
		readErr = readEvents(producerCtx, cmd.InOrStdin(), events, log)
	}()

	if flagWatch {
		w, err := watch.New(flagConfig, log)
		if err != nil {
			log.Warn("config watch disabled", "err", err)
		} else {
			defer w.Close()
			wg.Add(1)
			go func() {
				defer wg.Done()
				w.Reloads(producerCtx, events, watch.DefaultSettle)
			}()
		}
	}

	go func() {
		wg.Wait()
		close(events)
	}()

	// Render the initial state before any event arrives.
	if _, err := p.Handle(ctx, event.Tick{}); err != nil {
		log.Warn("initial render", "err", err)
	}

	if err := p.Run(ctx, events); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	wg.Wait()
	return readErr
}

// readEvents decodes stdin into out until EOF. Malformed lines are logged
// and skipped.
func readEvents(ctx context.Context, r io.Reader, out chan<- event.Event, log *logger.Logger) error {
	dec := event.NewDecoder(r)
	for {
		ev, err := dec.Next()
		var lineErr *event.LineError
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.As(err, &lineErr):
			log.Warn("skipping event", "line", lineErr.Line, "err", lineErr.Err)
			continue
		case err != nil:
			return fmt.Errorf("reading events: %w", err)
		}

		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func runRender(cmd *cobra.Command) error {
	log, cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	evs, err := renderEvents()
	if err != nil {
		return err
	}

	p := plugin.New(cfg, plugin.WithLogger(log))
	for _, ev := range evs {
		_, _ = p.Handle(cmd.Context(), ev)
	}

	out := cmd.OutOrStdout()
	w := pipe.NewWriter(out, cfg.Options.ColorProfile.Resolve(out, os.Environ()))
	return w.Emit(cmd.Context(), p.Render().Text)
}

// renderEvents turns the render flags into the event sequence that leads
// to that state.
func renderEvents() ([]event.Event, error) {
	mode, err := keys.ParseMode(flagMode)
	if err != nil {
		return nil, err
	}

	evs := []event.Event{
		event.Mode{Mode: mode},
		event.Tabs{FullscreenHidden: flagHidden, FloatingVisible: flagFloating, Locked: lockedFlag()},
	}
	if flagCopyError {
		evs = append(evs, event.ClipboardError{})
	}
	if flagCopied != "" {
		var dest event.Destination
		if err := dest.UnmarshalText([]byte(flagCopied)); err != nil {
			return nil, err
		}
		evs = append(evs, event.Clipboard{Destination: dest})
	}
	return evs, nil
}

func lockedFlag() *bool {
	if !flagLocked {
		return nil
	}
	locked := true
	return &locked
}

func runPreview(cmd *cobra.Command) error {
	log, cfg, loader, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	p := plugin.New(cfg, plugin.WithLogger(log), plugin.WithLoader(loader))

	program := tea.NewProgram(
		app.New(p, log, flagConfig, version),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

func runOptions(cmd *cobra.Command) error {
	log, cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	values := cfg.Options.Map()
	out := cmd.OutOrStdout()
	for _, k := range config.Keys() {
		fmt.Fprintf(out, "%s = %s\n", k, strconv.Quote(values[k]))
	}
	return nil
}
