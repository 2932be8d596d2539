package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/listdemo/internal/core/state"
	"github.com/colonyops/listdemo/pkg/tuitest"
)

func newTestModel(st *state.State) Model {
	return New(st, Opts{Width: 80, Height: 24})
}

// send feeds messages through Update and returns the resulting model and
// the command of the last message.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_Defaults(t *testing.T) {
	m := New(state.New(), Opts{})

	assert.Equal(t, DefaultName, m.name)
	assert.Nil(t, m.Init())
	assert.Len(t, m.State().Items, 5)
}

func TestUpdate_QuitKeys(t *testing.T) {
	for name, msg := range map[string]tea.KeyMsg{
		"q":      tuitest.KeyPress('q'),
		"esc":    tuitest.KeyEsc(),
		"ctrl+c": {Type: tea.KeyCtrlC},
	} {
		t.Run(name, func(t *testing.T) {
			m, cmd := send(t, newTestModel(state.New()), msg)
			assert.True(t, m.State().ShouldQuit)
			assert.True(t, isQuit(cmd))
		})
	}
}

func TestUpdate_NonQuitKeysKeepRunning(t *testing.T) {
	m, cmd := send(t, newTestModel(state.New()), tuitest.KeySpace())
	assert.False(t, m.State().ShouldQuit)
	assert.False(t, isQuit(cmd))
	assert.Equal(t, uint8(1), m.State().Counter)
}

func TestUpdate_IgnoresOtherMessages(t *testing.T) {
	st := state.New()
	m := newTestModel(st)

	m, cmd := send(t, m,
		tea.MouseMsg{X: 3, Y: 4},
		tea.FocusMsg{},
		tuitest.KeyPress('x'),
		tuitest.KeyEnter(),
	)

	assert.Nil(t, cmd)
	assert.Equal(t, state.New(), m.State())
}

func TestUpdate_WindowSizeOnlyTouchesViewport(t *testing.T) {
	m, _ := send(t, newTestModel(state.New()), tuitest.WindowSize(120, 40))

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, state.New(), m.State())

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 40)
	// Wide enough for the untruncated list title.
	assert.Contains(t, tuitest.StripANSI(view), "┌List (↑/↓ to navigate, 'a' to add, 'd' to delete)─")
}

func TestUpdate_Scenario(t *testing.T) {
	m := newTestModel(state.New())

	m, _ = send(t, m, tuitest.KeyDown(), tuitest.KeyDown())
	require.Equal(t, 2, m.State().Selected)

	m, _ = send(t, m, tuitest.KeyPress('d'))
	require.Len(t, m.State().Items, 4)
	assert.Equal(t, []string{"Item 1", "Item 2", "Item 4", "Item 5"}, m.State().Items)
	assert.Equal(t, 2, m.State().Selected)

	m, _ = send(t, m, tuitest.KeyPress('a'))
	require.Len(t, m.State().Items, 5)
	assert.Equal(t, "New Item 5", m.State().Items[4])

	m, _ = send(t, m, tuitest.KeySpace(), tuitest.KeySpace(), tuitest.KeySpace())
	assert.Equal(t, uint8(3), m.State().Counter)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "> Item 4")
	assert.Contains(t, view, "Counter: 3")
	assert.Contains(t, view, "3%")

	m, cmd := send(t, m, tuitest.KeyPress('q'))
	assert.True(t, m.State().ShouldQuit)
	assert.True(t, isQuit(cmd))
}

func TestView_InitialFrame(t *testing.T) {
	view := tuitest.StripANSI(newTestModel(state.New()).View())

	for _, want := range []string{
		"┌Header",
		"Welcome to Bubble Tea Example!",
		"┌List (↑/↓ to navigate, 'a' to add,",
		"│> Item 1",
		"│  Item 2",
		"│  Item 5",
		"┌Info",
		"Counter: 0",
		"Selected: 0",
		"Items: 5",
		"┌Progress",
		"0%",
		"Press q to quit, Space to increment counter",
	} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, 1, strings.Count(view, "> "))
}

func TestView_FillsViewport(t *testing.T) {
	view := newTestModel(state.New()).View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 24)
	for i, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 80, "line %d", i)
	}

	// Margin: first row blank, panels start one cell in.
	assert.Empty(t, strings.TrimSpace(ansi.Strip(lines[0])))
	assert.True(t, strings.HasPrefix(ansi.Strip(lines[1]), " ┌Header"))
}

func TestView_FallbackSize(t *testing.T) {
	view := New(state.New(), Opts{}).View()
	assert.Len(t, strings.Split(view, "\n"), fallbackHeight)
}

func TestView_GaugeClampsAtFull(t *testing.T) {
	st := state.New()
	st.Counter = 200

	view := tuitest.StripANSI(newTestModel(st).View())
	assert.Contains(t, view, "Counter: 200")
	assert.Contains(t, view, "100%")
	assert.NotContains(t, view, "200%")
}

func TestView_EmptyList(t *testing.T) {
	st := &state.State{Items: []string{"only"}}
	m := newTestModel(st)

	m, _ = send(t, m, tuitest.KeyPress('d'))
	require.Empty(t, m.State().Items)

	var view string
	require.NotPanics(t, func() { view = tuitest.StripANSI(m.View()) })
	assert.Contains(t, view, "Items: 0")
	assert.NotContains(t, view, "> ")

	// Navigation on the empty list stays harmless.
	m, _ = send(t, m, tuitest.KeyDown(), tuitest.KeyUp(), tuitest.KeyPress('d'))
	assert.Equal(t, 0, m.State().Selected)
}

func TestView_TinyTerminals(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 2}, {5, 5}, {12, 9}, {30, 8}} {
		m, _ := send(t, newTestModel(state.New()), tuitest.WindowSize(size[0], size[1]))
		assert.NotPanics(t, func() { _ = m.View() }, "size %v", size)
	}
}
