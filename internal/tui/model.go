// Package tui implements the Bubble Tea model for the list demo: a header,
// the item list, an info panel with a progress gauge, and a footer.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/listdemo/internal/core/state"
	"github.com/colonyops/listdemo/internal/core/styles"
)

// DefaultName is the emphasized name in the header.
const DefaultName = "Bubble Tea"

// Fallback viewport used until the first size is known.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Opts configures the TUI.
type Opts struct {
	Width  int    // initial viewport width, 0 if unknown
	Height int    // initial viewport height, 0 if unknown
	Name   string // header name, defaults to DefaultName
}

// Model is the main Bubble Tea model. It owns the application state: no
// other code mutates it while the program runs.
type Model struct {
	state  *state.State
	keys   KeyMap
	gauge  progress.Model
	name   string
	width  int
	height int
}

// New creates a model around the given state.
func New(st *state.State, opts Opts) Model {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	gauge := progress.New(progress.WithSolidFill(string(styles.CurrentPalette.Success)))
	gauge.PercentFormat = " %.0f%%"

	return Model{
		state:  st,
		keys:   DefaultKeyMap(),
		gauge:  gauge,
		name:   name,
		width:  opts.Width,
		height: opts.Height,
	}
}

// State returns the application state driven by the model.
func (m Model) State() *state.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key presses drive the state; window sizes
// feed the layout. Every other message is dropped.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg)
	if action == state.ActionNone {
		return m, nil
	}

	m.state.Apply(action)
	log.Debug().
		Str("key", msg.String()).
		Stringer("action", action).
		Int("selected", m.state.Selected).
		Int("items", len(m.state.Items)).
		Msg("key dispatched")

	if m.state.ShouldQuit {
		log.Info().Uint8("counter", m.state.Counter).Msg("quit requested")
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w = fallbackWidth
	}
	if h == 0 {
		h = fallbackHeight
	}

	return m.renderScreen(w, h)
}
