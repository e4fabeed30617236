package plugin

import (
	"context"
	"time"

	"github.com/chatter/zjhints/internal/catalog"
	"github.com/chatter/zjhints/internal/config"
	"github.com/chatter/zjhints/internal/event"
	"github.com/chatter/zjhints/internal/logger"
	"github.com/chatter/zjhints/internal/pipe"
	"github.com/chatter/zjhints/internal/ui"
)

// Loader re-reads the configuration on a reload event.
type Loader func() (config.Config, error)

// Plugin owns the state and runs one render cycle per event. It is not
// safe for concurrent use; feed it from a single goroutine.
type Plugin struct {
	state State

	cfgPalette  ui.Palette
	hostPalette ui.Palette

	now    func() time.Time
	emit   pipe.Emitter
	log    *logger.Logger
	loader Loader
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Plugin) { p.now = now }
}

// WithEmitter sets where rendered lines go.
func WithEmitter(e pipe.Emitter) Option {
	return func(p *Plugin) { p.emit = e }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(p *Plugin) { p.log = l }
}

// WithLoader sets the function used on reload events.
func WithLoader(l Loader) Option {
	return func(p *Plugin) { p.loader = l }
}

// New returns a plugin configured from cfg. Bindings from cfg are used
// when present, otherwise the built-in defaults.
func New(cfg config.Config, opts ...Option) *Plugin {
	p := &Plugin{
		state:      NewState(cfg),
		cfgPalette: cfg.Palette,
		now:        time.Now,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	bindings := cfg.Bindings
	if bindings == nil {
		bindings = catalog.DefaultBindings()
	}
	p.rebuild(bindings)

	return p
}

// State returns a copy of the current state.
func (p *Plugin) State() State {
	return p.state
}

// SetOptions replaces the options in effect. The next render uses them.
func (p *Plugin) SetOptions(opts config.Options) {
	p.state.ApplyOptions(opts)
}

// Render composes the current line without changing state.
func (p *Plugin) Render() ui.Line {
	return Render(&p.state, p.now())
}

// Tier returns what the current line shows.
func (p *Plugin) Tier() Tier {
	return Resolve(&p.state, p.now())
}

// Handle applies ev, renders and emits the line. Emission failures are
// logged and returned; the state is updated either way.
func (p *Plugin) Handle(ctx context.Context, ev event.Event) (ui.Line, error) {
	now := p.now()
	p.apply(ev, now)

	line := Render(&p.state, now)
	p.log.Debug("rendered",
		"event", ev.Type(),
		"tier", Resolve(&p.state, now).String(),
		"width", line.Width,
		"truncated", line.Truncated,
	)

	if p.emit == nil {
		return line, nil
	}
	if err := p.emit.Emit(ctx, line.Text); err != nil {
		p.log.Warn("emit failed", "err", err)
		return line, err
	}
	return line, nil
}

// Run handles events until the channel closes or ctx is done. Emission
// errors do not stop the loop.
func (p *Plugin) Run(ctx context.Context, events <-chan event.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			_, _ = p.Handle(ctx, ev)
		}
	}
}

func (p *Plugin) apply(ev event.Event, now time.Time) {
	s := &p.state

	switch e := ev.(type) {
	case event.Mode:
		s.ApplyMode(e)
		if e.Palette != nil {
			pal, err := ui.ParsePalette(e.Palette)
			if err != nil {
				p.log.Warn("host palette", "err", err)
			}
			p.hostPalette = p.hostPalette.Merge(pal)
			s.Palette = p.cfgPalette.Merge(p.hostPalette)
		}
	case event.Keybinds:
		p.rebuild(e.Bindings)
	case event.Tabs:
		s.ApplyTabs(e)
	case event.Clipboard:
		s.ApplyClipboard(e, now)
	case event.ClipboardError:
		s.ApplyClipboardError()
	case event.Input:
		s.ApplyInput()
	case event.Reload:
		p.reload()
	case event.Tick:
	default:
		p.log.Debug("ignoring event", "type", ev.Type())
	}
}

func (p *Plugin) rebuild(bindings []catalog.Binding) {
	cat, err := catalog.Rebuild(bindings)
	if err != nil {
		p.log.Warn("skipped invalid bindings", "err", err)
	}
	p.state.Catalog = cat
	p.log.Info("catalog rebuilt", "bindings", len(bindings), "entries", cat.Len())
}

func (p *Plugin) reload() {
	if p.loader == nil {
		return
	}

	cfg, err := p.loader()
	if err != nil {
		p.log.Warn("config reload", "err", err)
	}

	s := &p.state
	s.ApplyOptions(cfg.Options)
	s.Clusters = cfg.Clusters
	p.cfgPalette = cfg.Palette
	s.Palette = p.cfgPalette.Merge(p.hostPalette)
	if cfg.Bindings != nil {
		p.rebuild(cfg.Bindings)
	}
	p.log.Info("config reloaded")
}
