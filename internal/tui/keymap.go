package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/listdemo/internal/core/state"
)

// KeyMap holds the fixed key bindings of the demo.
type KeyMap struct {
	Quit   key.Binding
	Tick   key.Binding
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
}

// DefaultKeyMap returns the built-in bindings. They are not configurable.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Tick: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "increment counter"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

// Resolve maps a key press to the state action it triggers.
// Keys outside the vocabulary resolve to state.ActionNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) state.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return state.ActionQuit
	case key.Matches(msg, k.Tick):
		return state.ActionTick
	case key.Matches(msg, k.Up):
		return state.ActionUp
	case key.Matches(msg, k.Down):
		return state.ActionDown
	case key.Matches(msg, k.Add):
		return state.ActionAdd
	case key.Matches(msg, k.Delete):
		return state.ActionDelete
	default:
		return state.ActionNone
	}
}

// ListHint is the title of the list panel.
func (k KeyMap) ListHint() string {
	return fmt.Sprintf("List (%s/%s to navigate, '%s' to add, '%s' to delete)",
		k.Up.Help().Key, k.Down.Help().Key, k.Add.Help().Key, k.Delete.Help().Key)
}
