package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/deck"
	"github.com/five82/carousel/internal/prefs"
	"github.com/five82/carousel/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Sliders   []config.SliderSpec
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	// Now drives animations. Nil means time.Now.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	prefsPath string
	pollTick  time.Duration
	now       func() time.Time

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Sliders
	sched   *scheduler
	panels  []*panel
	focus   int
	drag    int
	framing bool

	// Page prompt
	prompt    textinput.Model
	prompting bool

	// Footer status, cleared by the next key
	status    string
	statusErr bool
}

// New creates a new Bubble Tea model and mounts a slider for every deck
// already in the store.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultPollInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	prompt := textinput.New()
	prompt.Prompt = "page: "
	prompt.CharLimit = 6

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		now:       now,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		sched:     newScheduler(),
		drag:      -1,
		prompt:    prompt,
	}
	m.applyTheme()

	for i, spec := range opts.Sliders {
		m.panels = append(m.panels, newPanel(spec, i))
	}
	if m.store != nil {
		m.applySnapshot(m.store.Snapshot())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.pollTick), m.pump())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	nm := next.(Model)
	pumped := nm.pump()
	return nm, tea.Batch(cmd, pumped)
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = max(m.width-2, 0)
		m.layoutPanels()
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case timerMsg:
		m.sched.fire(msg.id)
		return m, nil

	case frameMsg:
		m.framing = false
		now := m.now()
		for _, p := range m.panels {
			if p.surface != nil {
				p.surface.step(now)
			}
		}
		return m, nil
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// pump hands pending slider timers to the runtime and keeps frames coming
// while any strip is moving.
func (m *Model) pump() tea.Cmd {
	cmds := []tea.Cmd{m.sched.flush()}
	if !m.framing {
		for _, p := range m.panels {
			if p.animating() {
				m.framing = true
				cmds = append(cmds, frameCmd())
				break
			}
		}
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.prompting {
		return m.handlePromptKey(msg)
	}
	m.status, m.statusErr = "", false

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Escape) {
		m.cancelDrag()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				log.Printf("save prefs: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.store == nil {
			return m, nil
		}
		m.setStatus("Reloading decks", false)
		return m, reloadCmd(m.store, m.deckPaths())

	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFocus(-1)
		return m, nil
	}

	p := m.focused()
	if p == nil || p.slider == nil {
		return m, nil
	}
	s := p.slider

	switch {
	case key.Matches(msg, m.keys.Next):
		s.PressNext()

	case key.Matches(msg, m.keys.Previous):
		s.PressPrevious()

	case key.Matches(msg, m.keys.First):
		s.SelectPage(0)

	case key.Matches(msg, m.keys.Last):
		s.SelectPage(s.ItemCount() - s.Options().ItemsToDisplay)

	case key.Matches(msg, m.keys.Stop):
		if s.Autoplaying() {
			s.Stop()
			m.setStatus("Autoplay stopped", false)
		}

	case key.Matches(msg, m.keys.More):
		if err := p.setItemsToDisplay(1); err != nil {
			m.setStatus(err.Error(), true)
		}

	case key.Matches(msg, m.keys.Fewer):
		if err := p.setItemsToDisplay(-1); err != nil {
			m.setStatus(err.Error(), true)
		}

	case key.Matches(msg, m.keys.GoTo):
		m.prompting = true
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	}
	return m, nil
}

// handlePromptKey edits the page prompt. Pages are 1-based on screen.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			m.setStatus(fmt.Sprintf("Invalid page %q", value), true)
			return m, nil
		}
		if p := m.focused(); p != nil && p.slider != nil {
			p.slider.SelectPage(n - 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// cancelDrag ends a drag in progress and lets the slider re-settle.
func (m *Model) cancelDrag() {
	if m.drag < 0 || m.drag >= len(m.panels) {
		return
	}
	if s := m.panels[m.drag].slider; s != nil {
		s.PointerCancel()
	}
	m.drag = -1
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) cycleFocus(delta int) {
	if len(m.panels) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.panels)) % len(m.panels)
}

func (m Model) focused() *panel {
	if m.focus < 0 || m.focus >= len(m.panels) {
		return nil
	}
	return m.panels[m.focus]
}

// applyTheme restyles the bubbles components for the current theme.
func (m *Model) applyTheme() {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.FullSeparator = sepStyle

	m.prompt.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.prompt.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
}

// applySnapshot remounts every panel whose deck changed.
func (m *Model) applySnapshot(snap state.Snapshot) {
	for _, p := range m.panels {
		if p.sync(snap) {
			p.mount(m.sched, m.now)
		}
	}
}

// layoutPanels stacks the panels in the window and re-measures them.
func (m *Model) layoutPanels() {
	rects := panelRects(m.width, m.height, len(m.panels))
	for i, p := range m.panels {
		p.resize(rects[i])
	}
}

func (m Model) deckPaths() []string {
	seen := make(map[string]bool, len(m.panels))
	var paths []string
	for _, p := range m.panels {
		if !seen[p.spec.Deck] {
			seen[p.spec.Deck] = true
			paths = append(paths, p.spec.Deck)
		}
	}
	return paths
}

// destroy tears down every slider.
func (m Model) destroy() {
	for _, p := range m.panels {
		p.destroy()
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type frameMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// reloadCmd re-reads every deck into the store and returns the result.
func reloadCmd(store *state.Store, paths []string) tea.Cmd {
	return func() tea.Msg {
		for _, path := range paths {
			d, err := deck.Load(path)
			if err != nil {
				log.Printf("reload %s: %v", path, err)
			}
			store.Update(path, d, err)
		}
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.destroy()
	}
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
