package viewui

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loggraph/loggraph/core/query"
	"github.com/loggraph/loggraph/core/view"
	"github.com/loggraph/loggraph/internal/contract"
	"github.com/loggraph/loggraph/schema"
)

// tickMsg is the periodic refresh event. gen guards against ticks
// scheduled under an older cadence.
type tickMsg struct {
	gen int
	at  time.Time
}

// queryDoneMsg delivers a completed windowed query back into the event
// loop. gen ties it to the flight slot that launched it.
type queryDoneMsg struct {
	gen    int
	result *schema.QueryResult
	err    error
}

// Model is the viewer's bubbletea model. The interactive control path is
// the bubbletea loop itself: navigation keys, ticks and query completions
// arrive as messages and are serialized by construction.
type Model struct {
	cfg    *contract.Config
	reader contract.RecordReader
	now    func() time.Time

	state   view.State
	flight  view.Flight
	tickGen int

	// Last successful query content. fingerprint dedups redraws; a
	// failed query sets noData without touching either one.
	fingerprint string
	result      *schema.QueryResult
	noData      bool

	// Rendered plot tabs, rebuilt only when content or geometry change.
	plotCache []string
	redraws   int

	width     int
	height    int
	activeTab int
	showGrid  bool

	dialogOpen bool
	dialogErr  string
	input      textinput.Model
}

// NewModel builds the viewer model over an open read handle.
func NewModel(cfg *contract.Config, reader contract.RecordReader, now func() time.Time) Model {
	input := textinput.New()
	input.Placeholder = "Seconds..."
	input.CharLimit = 5

	return Model{
		cfg:    cfg,
		reader: reader,
		now:    now,
		state: view.State{
			WindowSeconds:  cfg.WindowSeconds,
			RefreshSeconds: cfg.RefreshSeconds,
		},
		plotCache: make([]string, len(plotTabs)),
		input:     input,
	}
}

// initMsg kicks off the first snap-to-now once the program is running.
type initMsg struct{}

// Init snaps the view to now and arms the refresh ticker.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		model, cmd := m.apply(view.SnapToNow)
		return model, tea.Batch(cmd, model.scheduleTick())

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.rebuildPlots()
		return m, nil

	case tickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		model, cmd := m.applyAt(view.Tick, msg.at)
		return model, tea.Batch(cmd, model.scheduleTick())

	case queryDoneMsg:
		return m.completeQuery(msg)

	case tea.KeyMsg:
		if m.dialogOpen {
			return m.updateDialog(msg)
		}
		return m.handleKey(msg)
	}
	if m.dialogOpen {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches the navigation bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Follow):
		return m.apply(view.ToggleFollow)
	case key.Matches(msg, keys.StepBack):
		return m.apply(view.StepBack)
	case key.Matches(msg, keys.StepFwd):
		return m.apply(view.StepForward)
	case key.Matches(msg, keys.DayBack):
		return m.apply(view.DayBack)
	case key.Matches(msg, keys.DayFwd):
		return m.apply(view.DayForward)
	case key.Matches(msg, keys.Grid):
		m.showGrid = !m.showGrid
		m.rebuildPlots()
		return m, nil
	case key.Matches(msg, keys.Refresh):
		m.dialogOpen = true
		m.dialogErr = ""
		m.input.SetValue(strconv.Itoa(m.state.RefreshSeconds))
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.NextTab):
		m.activeTab = (m.activeTab + 1) % (len(plotTabs) + 1)
		return m, nil
	case key.Matches(msg, keys.Indicators):
		m.activeTab = 0
		return m, nil
	case key.Matches(msg, keys.Tab1):
		m.activeTab = 1
		return m, nil
	case key.Matches(msg, keys.Tab2):
		m.activeTab = 2
		return m, nil
	}
	return m, nil
}

// updateDialog routes input while the refresh-rate prompt is open. The
// prior refresh value stays untouched until a valid value is submitted.
func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dialogOpen = false
		return m, nil
	case "enter":
		seconds, err := strconv.Atoi(m.input.Value())
		if err != nil || seconds <= 0 {
			m.dialogErr = "must be a positive number of seconds"
			return m, bell
		}
		m.dialogOpen = false
		var effects []view.Effect
		m.state, effects = view.SetRefresh(m.state, seconds)
		return m, m.runEffects(effects, m.now())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply runs a transition against the wall clock.
func (m Model) apply(cmd view.Command) (Model, tea.Cmd) {
	return m.applyAt(cmd, m.now())
}

// applyAt runs a transition and performs its effects.
func (m Model) applyAt(cmd view.Command, now time.Time) (Model, tea.Cmd) {
	var effects []view.Effect
	m.state, effects = view.Apply(m.state, cmd, now)
	return m, m.runEffects(effects, now)
}

// runEffects turns transition effects into bubbletea commands. The ticker
// restart bumps the tick generation so stale scheduled ticks fall through.
func (m *Model) runEffects(effects []view.Effect, now time.Time) tea.Cmd {
	var cmds []tea.Cmd
	for _, effect := range effects {
		switch effect {
		case view.EffectQuery:
			if cmd := m.launchQuery(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case view.EffectRestartTicker:
			m.tickGen++
			if cmd := m.scheduleTick(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

// launchQuery claims the single flight slot and dispatches the blocking
// store read off the UI loop. While a query is outstanding this is a
// no-op; the outstanding result is reconciled on completion.
func (m *Model) launchQuery() tea.Cmd {
	gen, ok := m.flight.TryLaunch(m.state)
	if !ok {
		return nil
	}
	reader := m.reader
	start, end := m.state.WindowStart(), m.state.WindowEnd
	return func() tea.Msg {
		result, err := query.Window(context.Background(), reader, start, end)
		return queryDoneMsg{gen: gen, result: result, err: err}
	}
}

// completeQuery reconciles a finished query with the current state:
// stale generations are dropped, a window the view has moved past is
// discarded and re-queried, failures render as no-data without touching
// the fingerprint, and unchanged fingerprints skip the redraw.
func (m Model) completeQuery(msg queryDoneMsg) (tea.Model, tea.Cmd) {
	if !m.flight.Complete(msg.gen) {
		return m, nil
	}
	if !m.flight.Matches(m.state) {
		return m, m.launchQuery()
	}
	if msg.err != nil {
		m.noData = true
		return m, nil
	}

	m.noData = false
	fingerprint := view.Fingerprint(msg.result)
	if fingerprint == m.fingerprint {
		return m, nil
	}
	m.fingerprint = fingerprint
	m.result = msg.result
	m.rebuildPlots()
	return m, nil
}

// scheduleTick arms one tick at the current cadence. A cadence of zero
// leaves the ticker off.
func (m *Model) scheduleTick() tea.Cmd {
	if m.state.RefreshSeconds <= 0 {
		return nil
	}
	gen := m.tickGen
	interval := time.Duration(m.state.RefreshSeconds) * time.Second
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

// bell rings the terminal bell for rejected input.
func bell() tea.Msg {
	_, _ = os.Stdout.WriteString("\a")
	return nil
}
