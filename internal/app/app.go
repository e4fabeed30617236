// Package app is the interactive preview: it renders the hint line in a
// terminal and lets the user simulate host events from the keyboard.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatter/zjhints/internal/event"
	"github.com/chatter/zjhints/internal/keys"
	"github.com/chatter/zjhints/internal/logger"
	"github.com/chatter/zjhints/internal/plugin"
	"github.com/chatter/zjhints/internal/ui"
	"github.com/chatter/zjhints/internal/ui/help"
	"github.com/chatter/zjhints/internal/watch"
)

// tickInterval drives clipboard expiry while the preview is idle.
const tickInterval = time.Second

// widthStep is how much - and + change max_length.
const widthStep = 5

// Model is the preview application model
type Model struct {
	version    string
	configPath string
	keys       KeyMap

	plugin  *plugin.Plugin
	watcher *watch.Watcher
	log     *logger.Logger

	line     ui.Line
	history  ui.HistoryPanel
	showHelp bool

	// Help
	statusBar *help.StatusBar
	sheet     *help.Sheet

	// Window size
	width  int
	height int

	// Error state
	lastError string
}

// New creates a preview around p. When configPath is not empty the file is
// watched and every change is fed to the plugin as a reload.
func New(p *plugin.Plugin, log *logger.Logger, configPath, version string) Model {
	return Model{
		log:        log,
		version:    version,
		configPath: configPath,
		keys:       DefaultKeyMap(),
		plugin:     p,
		line:       p.Render(),
		history:    ui.NewHistoryPanel(),
		statusBar:  help.NewStatusBar("zjhints " + version),
		sheet:      help.NewSheet(),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.startWatcher(),
		tick(),
	)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// startWatcher starts watching the config file
func (m Model) startWatcher() tea.Cmd {
	if m.configPath == "" {
		return nil
	}
	return func() tea.Msg {
		w, err := watch.New(m.configPath, m.log)
		return watcherStartedMsg{watcher: w, err: err}
	}
}

// waitForChange waits for the config file to change
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	return func() tea.Msg {
		if _, ok := <-m.watcher.Events(); !ok {
			return nil
		}
		time.Sleep(watch.DefaultSettle)
		return configChangedMsg{}
	}
}

// Message types
type tickMsg struct{}

type configChangedMsg struct{}

type watcherStartedMsg struct {
	watcher *watch.Watcher
	err     error
}

// handle feeds ev to the plugin and keeps the rendered line.
func (m *Model) handle(ev event.Event) {
	line, err := m.plugin.Handle(context.Background(), ev)
	m.line = line
	if ev.Type() != event.TypeTick {
		m.history.Add(ui.Entry{Event: string(ev.Type()), Tier: m.plugin.Tier().String(), Line: line})
	}
	if err != nil {
		m.lastError = err.Error()
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// When help modal is open, only handle ? and esc
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		if newModel, cmd := dispatchKey(&m, msg, m.globalBindings()); newModel != nil {
			m = *newModel
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		} else {
			// No binding matched, scroll the history
			cmds = append(cmds, m.history.Update(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Line panel (3), summary (1), status bar (1)
		m.history.SetSize(m.width, max(m.height-5, 3))

	case tickMsg:
		m.handle(event.Tick{})
		cmds = append(cmds, tick())

	case watcherStartedMsg:
		m.watcher = msg.watcher
		if msg.err != nil {
			m.lastError = fmt.Sprintf("watch %s: %v", m.configPath, msg.err)
		}
		cmds = append(cmds, m.waitForChange())

	case configChangedMsg:
		m.handle(event.Reload{})
		cmds = append(cmds, m.waitForChange())
	}

	return m, tea.Batch(cmds...)
}

// Action methods for keybindings

func (m *Model) actionQuit() (Model, tea.Cmd) {
	if m.watcher != nil {
		m.watcher.Close()
	}
	return *m, tea.Quit
}

func (m *Model) switchMode(step int) (Model, tea.Cmd) {
	modes := keys.AllModes()
	current := m.plugin.State().Mode
	idx := 0
	for i, mode := range modes {
		if mode == current {
			idx = i
			break
		}
	}
	next := modes[(idx+step+len(modes))%len(modes)]
	m.handle(event.Mode{Mode: next})
	return *m, nil
}

func (m *Model) actionNextMode() (Model, tea.Cmd) {
	return m.switchMode(1)
}

func (m *Model) actionPrevMode() (Model, tea.Cmd) {
	return m.switchMode(-1)
}

func (m *Model) actionLock() (Model, tea.Cmd) {
	st := m.plugin.State()
	next := keys.ModeLocked
	if st.Mode == keys.ModeLocked {
		next = keys.ModeNormal
	}
	m.handle(event.Mode{Mode: next})
	return *m, nil
}

func (m *Model) actionBaseMode() (Model, tea.Cmd) {
	st := m.plugin.State()
	base := keys.ModeLocked
	if st.BaseMode == keys.ModeLocked {
		base = keys.ModeNormal
	}
	m.handle(event.Mode{Mode: st.Mode, BaseMode: &base})
	return *m, nil
}

func (m *Model) actionFullscreen() (Model, tea.Cmd) {
	st := m.plugin.State()
	hidden := 0
	if !st.Fullscreen() {
		hidden = 2
	}
	m.handle(event.Tabs{FullscreenHidden: hidden, FloatingVisible: st.FloatingVisible})
	return *m, nil
}

func (m *Model) actionFloating() (Model, tea.Cmd) {
	st := m.plugin.State()
	m.handle(event.Tabs{FullscreenHidden: st.FullscreenHidden, FloatingVisible: !st.FloatingVisible})
	return *m, nil
}

func (m *Model) actionCopy() (Model, tea.Cmd) {
	m.handle(event.Clipboard{})
	return *m, nil
}

func (m *Model) actionCopyError() (Model, tea.Cmd) {
	m.handle(event.ClipboardError{})
	return *m, nil
}

func (m *Model) actionInput() (Model, tea.Cmd) {
	m.handle(event.Input{})
	return *m, nil
}

func (m *Model) resize(delta int) (Model, tea.Cmd) {
	opts := m.plugin.State().Options
	if opts.MaxLength == 0 {
		opts.MaxLength = ui.Width(ui.Strip(m.line.Text))
	}
	opts.MaxLength = max(opts.MaxLength+delta, 1)
	m.plugin.SetOptions(opts)
	m.line = m.plugin.Render()
	return *m, nil
}

func (m *Model) actionNarrower() (Model, tea.Cmd) {
	return m.resize(-widthStep)
}

func (m *Model) actionWider() (Model, tea.Cmd) {
	return m.resize(widthStep)
}

func (m *Model) actionReload() (Model, tea.Cmd) {
	m.lastError = ""
	m.handle(event.Reload{})
	return *m, nil
}

func (m *Model) actionToggleHelp() (Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	return *m, nil
}

// activeHelpBindings returns the preview keys followed by the hints of the
// mode being previewed.
func (m *Model) activeHelpBindings() []help.HelpBinding {
	st := m.plugin.State()
	builder := help.Builder{Grouper: help.Grouper{Clusters: st.Clusters}}

	bindings := ToHelpBindings(m.globalBindings())
	return append(bindings, builder.Bindings(st.Mode, st.Catalog)...)
}

// globalBindings returns the app-level keybindings with their actions.
func (m *Model) globalBindings() []ActionBinding {
	bind := func(b ActionBinding, cat help.Category, order int) ActionBinding {
		b.Category = cat
		b.Order = order
		return b
	}
	k := m.keys

	return []ActionBinding{
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.Quit}, Action: (*Model).actionQuit}, help.CategoryPreview, 100),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.NextMode}, Action: (*Model).actionNextMode}, help.CategoryState, 10),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.PrevMode}, Action: (*Model).actionPrevMode}, help.CategoryState, 11),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.Lock}, Action: (*Model).actionLock}, help.CategoryState, 12),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.BaseMode}, Action: (*Model).actionBaseMode}, help.CategoryState, 13),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.Fullscreen}, Action: (*Model).actionFullscreen}, help.CategoryState, 20),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.Floating}, Action: (*Model).actionFloating}, help.CategoryState, 21),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.Copy}, Action: (*Model).actionCopy}, help.CategoryState, 30),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.CopyError}, Action: (*Model).actionCopyError}, help.CategoryState, 31),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.Input}, Action: (*Model).actionInput}, help.CategoryState, 32),
		// Display-only: handled by the history panel
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.History}}, help.CategoryPreview, 35),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.Narrower}, Action: (*Model).actionNarrower}, help.CategoryPreview, 40),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.Wider}, Action: (*Model).actionWider}, help.CategoryPreview, 41),
		bind(ActionBinding{HelpBinding: help.HelpBinding{Binding: k.Reload}, Action: (*Model).actionReload}, help.CategoryPreview, 50),
		// Help toggle - pinned, always visible
		{
			HelpBinding: help.HelpBinding{
				Binding:  k.Help,
				Category: help.CategoryPreview,
				Order:    99,
				Pinned:   true,
			},
			Action: (*Model).actionToggleHelp,
		},
	}
}

// View renders the application
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	st := m.plugin.State()

	line := m.line.Text
	if line == "" {
		line = ui.DimStyle.Render("(empty)")
	}
	panel := ui.PanelStyle.Render(ui.PanelTitle("Hint line") + "\n" + line)

	limit := "off"
	if st.Options.MaxLength > 0 {
		limit = fmt.Sprint(st.Options.MaxLength)
	}
	summary := []string{
		m.field("mode", st.Mode.String()),
		m.field("base", st.BaseMode.String()),
		m.field("showing", m.plugin.Tier().String()),
		m.field("width", fmt.Sprintf("%d/%s", m.line.Width, limit)),
	}
	if m.line.Truncated {
		summary = append(summary, ui.DimStyle.Render("truncated"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, panel, strings.Join(summary, "  "), m.history.View())
	if m.lastError != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, ui.ErrorStyle.Render(m.lastError))
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceVertical(max(m.height-1, 1), lipgloss.Top, body),
		m.renderStatusBar(),
	)

	if m.showHelp {
		return m.renderWithOverlay()
	}
	return base
}

func (m Model) field(name, value string) string {
	return ui.LabelStyle.Render(name) + " " + value
}

func (m Model) renderWithOverlay() string {
	// The sheet takes most of the screen but never less than 40x10.
	w := clamp(m.width*4/5, min(40, m.width-4), m.width)
	h := clamp(m.height*7/10, min(10, m.height-4), m.height)

	m.sheet.SetSize(w, h)
	m.sheet.SetTitle("Help: " + m.plugin.State().Mode.String())
	m.sheet.SetBindings(m.activeHelpBindings())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.sheet.View(), lipgloss.WithWhitespaceChars(" "))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func (m Model) renderStatusBar() string {
	m.statusBar.SetWidth(m.width)
	m.statusBar.SetBindings(m.activeHelpBindings())
	return m.statusBar.View()
}
