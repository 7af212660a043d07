package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/neuromind/internal/insights"
	"github.com/javiermolinar/neuromind/internal/scheduler"
	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/tui/theme"
)

// Store is the storage the dashboard writes to.
type Store interface {
	CreateTask(ctx context.Context, t *task.Task) error
	SetCompleted(ctx context.Context, id int64, completed bool) error
}

// Feed delivers recomputed plans. scheduler.Live implements it.
type Feed interface {
	Results() <-chan scheduler.Result
	Refresh()
}

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
)

// Messages.
type (
	resultMsg scheduler.Result
	tickMsg   time.Time
	actionMsg struct {
		status string
		err    error
	}
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx    context.Context
	store  Store
	feed   Feed
	logger *slog.Logger
	now    func() time.Time

	dash    *insights.Dashboard
	err     error
	loading bool
	cursor  int // index into the plan's schedule
	status  string

	mode    Mode
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  *Styles

	width  int
	height int
}

// ModelOption configures optional Model behavior.
type ModelOption func(*Model)

// WithStyles sets the styles used to render.
func WithStyles(s *Styles) ModelOption {
	return func(m *Model) {
		if s != nil {
			m.styles = s
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger *slog.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithNow overrides the clock.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a dashboard model reading plans from feed.
func New(ctx context.Context, store Store, feed Feed, opts ...ModelOption) Model {
	input := textinput.New()
	input.Placeholder = "Task title"
	input.CharLimit = 120
	input.Prompt = "New task: "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:     ctx,
		store:   store,
		feed:    feed,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
		loading: true,
		input:   input,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeyMap(),
		styles:  NewStyles(theme.NewPalette(nil)),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts listening for plans.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForResult(), m.spinner.Tick, tick())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case resultMsg:
		return m.handleResult(scheduler.Result(msg)), m.waitForResult()

	case actionMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = ""
			m.err = msg.err
			m.logger.Error("dashboard action failed", "error", msg.err)
		}
		return m, nil

	case tickMsg:
		// A new day needs a new plan.
		if m.dash != nil && !sameDay(m.dash.Now, time.Time(msg)) {
			m.loading = true
			m.feed.Refresh()
			return m, tea.Batch(tick(), m.spinner.Tick)
		}
		return m, tick()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		m.logger.Debug("key", "key", msg.String(), "mode", int(m.mode))
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == ModePrompt {
			return m.handlePromptKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

func (m Model) handleResult(r scheduler.Result) Model {
	m.loading = false
	if r.Err != nil {
		m.err = r.Err
		return m
	}
	m.err = nil
	at := r.At
	if at.IsZero() {
		at = m.now()
	}
	m.dash = insights.BuildDashboard(at, r.Snapshot, r.Plan)
	m.cursor = clamp(m.cursor, 0, len(m.schedule())-1)
	m.logger.Debug("dashboard updated", "placed", len(m.schedule()), "pending", m.dash.Pending)
	return m
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, 0, len(m.schedule())-1)

	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, 0, len(m.schedule())-1)

	case key.Matches(msg, m.keys.Done):
		if t := m.selected(); t != nil {
			return m, m.completeTask(t)
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = ModePrompt
		m.status = ""
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Copy):
		if m.dash != nil && m.dash.Plan != nil {
			return m, copyPlan(m.dash.Plan)
		}

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.feed.Refresh()
		return m, m.spinner.Tick

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		title := m.input.Value()
		m.mode = ModeNormal
		m.input.Blur()
		m.input.Reset()
		return m, m.createTask(title)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) schedule() scheduler.Schedule {
	if m.dash == nil || m.dash.Plan == nil {
		return nil
	}
	return m.dash.Plan.Schedule
}

// selected returns the task under the cursor, if any.
func (m Model) selected() *task.Task {
	s := m.schedule()
	if m.cursor < 0 || m.cursor >= len(s) {
		return nil
	}
	return s[m.cursor].Task
}

func (m Model) waitForResult() tea.Cmd {
	results := m.feed.Results()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case r := <-results:
			return resultMsg(r)
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) completeTask(t *task.Task) tea.Cmd {
	ctx, store := m.ctx, m.store
	id, title := t.ID, t.Title
	return func() tea.Msg {
		if err := store.SetCompleted(ctx, id, true); err != nil {
			return actionMsg{err: fmt.Errorf("completing task: %w", err)}
		}
		return actionMsg{status: fmt.Sprintf("Completed #%d %s", id, title)}
	}
}

func (m Model) createTask(title string) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		t, err := task.New(title, "", "", "", 0)
		if err != nil {
			return actionMsg{err: err}
		}
		if err := store.CreateTask(ctx, t); err != nil {
			return actionMsg{err: fmt.Errorf("creating task: %w", err)}
		}
		return actionMsg{status: fmt.Sprintf("Added #%d %s", t.ID, t.Title)}
	}
}

func copyPlan(p *scheduler.Plan) tea.Cmd {
	text := p.Text()
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return actionMsg{err: fmt.Errorf("copying plan: %w", err)}
		}
		return actionMsg{status: "Plan copied to clipboard"}
	}
}

func tick() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(hi, max(lo, v))
}
